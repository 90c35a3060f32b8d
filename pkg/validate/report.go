package validate

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/acarl005/stripansi"
	"github.com/traefik-tools/go-traefik-validator/pkg/cprint"
)

// Issue is a single structural mismatch between a document and its schema.
// Path is the ordered sequence of keys from the document root to the
// offending node; an empty path means the root itself.
type Issue struct {
	Path    []string `json:"path"`
	Message string   `json:"message"`
}

// PathString renders the issue path the way it is shown to users.
func (i Issue) PathString() string {
	if len(i.Path) == 0 {
		return "root"
	}
	return strings.Join(i.Path, " → ")
}

// RoleResult is the outcome of validating one schema role. Err is set when
// the role could not be validated at all (schema acquisition or document
// parse failure); Issues hold structural mismatches from the matcher.
type RoleResult struct {
	Role        Role
	SchemaTitle string
	Err         error
	Issues      []Issue
}

// Ok reports whether the role validated successfully.
func (r RoleResult) Ok() bool {
	return r.Err == nil && len(r.Issues) == 0
}

// Report collects the results of all requested roles.
type Report struct {
	Results []RoleResult
}

// Ok reports whether every requested role validated successfully.
func (r *Report) Ok() bool {
	for _, res := range r.Results {
		if !res.Ok() {
			return false
		}
	}
	return true
}

// Render writes a human-readable summary of the report to w, one line per
// role plus the offending path for each structural issue.
func (r *Report) Render(w io.Writer) {
	for _, res := range r.Results {
		switch {
		case res.Ok():
			line := fmt.Sprintf("✓ %s configuration is valid", res.Role.Title())
			if res.SchemaTitle != "" {
				line = fmt.Sprintf("%s (%s)", line, res.SchemaTitle)
			}
			cprint.SuccessFprintln(w, line)
		case res.Err != nil:
			cprint.ErrorFprintln(w, fmt.Sprintf("✗ %s configuration error: %v", res.Role.Title(), res.Err))
		default:
			for _, issue := range res.Issues {
				cprint.ErrorFprintln(w, fmt.Sprintf("✗ %s configuration error: %s", res.Role.Title(), issue.Message))
				fmt.Fprintf(w, "   at: %s\n", issue.PathString())
			}
		}
	}

	if r.Ok() {
		cprint.SuccessFprintln(w, "\n✓ All configurations are valid")
	} else {
		cprint.ErrorFprintln(w, "\n✗ Configuration validation failed")
	}
}

// Message returns a one-line summary suitable for machine-readable output.
func (r *Report) Message() string {
	if r.Ok() {
		return "Configuration is valid"
	}
	var parts []string
	for _, res := range r.Results {
		switch {
		case res.Ok():
			continue
		case res.Err != nil:
			parts = append(parts, fmt.Sprintf("%s configuration: %v", res.Role.Title(), res.Err))
		default:
			for _, issue := range res.Issues {
				parts = append(parts, fmt.Sprintf("%s configuration at %s: %s",
					res.Role.Title(), issue.PathString(), issue.Message))
			}
		}
	}
	return strings.Join(parts, "; ")
}

type jsonReport struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// JSON renders the report as a single machine-readable object. Messages are
// stripped of any ANSI escapes so downstream consumers get plain text.
func (r *Report) JSON() ([]byte, error) {
	return json.Marshal(jsonReport{
		Success: r.Ok(),
		Message: stripansi.Strip(r.Message()),
	})
}
