// Package validate ties the schema provider to the schema matcher: it parses
// user configuration files, acquires the matching published schema, and
// reports every structural mismatch found.
package validate

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/traefik-tools/go-traefik-validator/pkg/schema"
	"github.com/xeipuuv/gojsonschema"
)

// Role names a schema role: every configuration file is validated as either
// Traefik static configuration or Traefik dynamic configuration.
type Role string

const (
	RoleStatic  Role = "static"
	RoleDynamic Role = "dynamic"
)

// Title returns the role name capitalized for messages.
func (r Role) Title() string {
	if len(r) == 0 {
		return ""
	}
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

// ErrNoConfigFiles is returned when a Validator is constructed without any
// configuration file to validate.
var ErrNoConfigFiles = errors.New("either a static config file or a dynamic config file is required")

// Opts holds the inputs of a Validator. At least one of StaticConfig and
// DynamicConfig must be set.
type Opts struct {
	Provider      *schema.Provider
	StaticConfig  io.Reader
	DynamicConfig io.Reader
	Offline       bool
}

// Validator validates Traefik configuration files against their published
// schemas.
type Validator struct {
	provider      *schema.Provider
	staticConfig  io.Reader
	dynamicConfig io.Reader
	offline       bool
}

// NewValidator creates a Validator for the given inputs.
func NewValidator(opts Opts) (*Validator, error) {
	if opts.StaticConfig == nil && opts.DynamicConfig == nil {
		return nil, ErrNoConfigFiles
	}
	return &Validator{
		provider:      opts.Provider,
		staticConfig:  opts.StaticConfig,
		dynamicConfig: opts.DynamicConfig,
		offline:       opts.Offline,
	}, nil
}

// Validate checks every provided configuration file against its schema and
// returns the collected results. Both roles are always attempted: a failure
// in one role, including a schema acquisition failure, does not stop the
// other role from being validated.
func (v *Validator) Validate(ctx context.Context) *Report {
	report := &Report{}
	if v.staticConfig != nil {
		report.Results = append(report.Results,
			v.validateRole(ctx, RoleStatic, v.staticConfig, v.provider.StaticSchema))
	}
	if v.dynamicConfig != nil {
		report.Results = append(report.Results,
			v.validateRole(ctx, RoleDynamic, v.dynamicConfig, v.provider.DynamicSchema))
	}
	return report
}

func (v *Validator) validateRole(
	ctx context.Context, role Role, config io.Reader,
	getSchema func(context.Context, bool) (map[string]interface{}, error),
) RoleResult {
	schemaDoc, err := getSchema(ctx, v.offline)
	if err != nil {
		return RoleResult{Role: role, Err: err}
	}

	doc, err := ParseDocument(config)
	if err != nil {
		return RoleResult{Role: role, Err: err}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(schemaDoc),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return RoleResult{Role: role, Err: err}
	}

	res := RoleResult{Role: role, SchemaTitle: schema.Describe(schemaDoc)}
	for _, resultError := range result.Errors() {
		res.Issues = append(res.Issues, Issue{
			Path:    pathFromField(resultError.Field()),
			Message: resultError.Description(),
		})
	}
	return res
}

// pathFromField converts gojsonschema's dotted field notation into an
// ordered key path. The synthetic "(root)" field maps to an empty path.
func pathFromField(field string) []string {
	if field == "" || field == "(root)" {
		return nil
	}
	return strings.Split(field, ".")
}
