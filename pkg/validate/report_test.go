package validate

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuePathString(t *testing.T) {
	assert.Equal(t, "root", Issue{}.PathString())
	assert.Equal(t, "http → routers → r1",
		Issue{Path: []string{"http", "routers", "r1"}}.PathString())
}

func TestReportOk(t *testing.T) {
	report := &Report{Results: []RoleResult{
		{Role: RoleStatic},
		{Role: RoleDynamic},
	}}
	assert.True(t, report.Ok())

	report.Results[1].Issues = []Issue{{Message: "rule is required"}}
	assert.False(t, report.Ok())

	report = &Report{Results: []RoleResult{
		{Role: RoleStatic, Err: errors.New("no cached schema")},
	}}
	assert.False(t, report.Ok())
}

func TestReportMessage(t *testing.T) {
	report := &Report{Results: []RoleResult{{Role: RoleStatic}}}
	assert.Equal(t, "Configuration is valid", report.Message())

	report = &Report{Results: []RoleResult{
		{Role: RoleStatic},
		{Role: RoleDynamic, Issues: []Issue{{
			Path:    []string{"http", "routers", "r1"},
			Message: "rule is required",
		}}},
	}}
	assert.Equal(t, "Dynamic configuration at http → routers → r1: rule is required",
		report.Message())
}

func TestReportJSON(t *testing.T) {
	report := &Report{Results: []RoleResult{{Role: RoleDynamic}}}
	out, err := report.JSON()
	require.NoError(t, err)

	var decoded struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.True(t, decoded.Success)
	assert.Equal(t, "Configuration is valid", decoded.Message)
}

func TestReportJSONStripsANSIEscapes(t *testing.T) {
	report := &Report{Results: []RoleResult{
		{Role: RoleStatic, Err: errors.New("\x1b[31mconnection refused\x1b[0m")},
	}}
	out, err := report.JSON()
	require.NoError(t, err)
	assert.NotContains(t, string(out), "\x1b[")
	assert.Contains(t, string(out), "connection refused")
}

func TestReportRenderShowsOffendingPath(t *testing.T) {
	report := &Report{Results: []RoleResult{
		{Role: RoleDynamic, Issues: []Issue{{
			Path:    []string{"http", "routers", "r1"},
			Message: "Additional property test is not allowed",
		}}},
	}}

	var out bytes.Buffer
	report.Render(&out)
	assert.Contains(t, out.String(), "Dynamic configuration error: Additional property test is not allowed")
	assert.Contains(t, out.String(), "   at: http → routers → r1")
	assert.Contains(t, out.String(), "✗ Configuration validation failed")
}

func TestReportRenderShowsSchemaTitle(t *testing.T) {
	report := &Report{Results: []RoleResult{
		{Role: RoleDynamic, SchemaTitle: "Traefik v3 Dynamic Configuration"},
	}}

	var out bytes.Buffer
	report.Render(&out)
	assert.Contains(t, out.String(),
		"✓ Dynamic configuration is valid (Traefik v3 Dynamic Configuration)")

	// An anonymous schema renders the bare role line.
	report = &Report{Results: []RoleResult{{Role: RoleStatic}}}
	out.Reset()
	report.Render(&out)
	assert.Contains(t, out.String(), "✓ Static configuration is valid\n")
}

func TestReportRenderWritesOnlyToTheGivenWriter(t *testing.T) {
	backup := color.Output
	var stray bytes.Buffer
	color.Output = &stray
	defer func() { color.Output = backup }()

	report := &Report{Results: []RoleResult{
		{Role: RoleStatic, Err: errors.New("no cached schema")},
		{Role: RoleDynamic, SchemaTitle: "Traefik v3 Dynamic Configuration"},
	}}

	var out bytes.Buffer
	report.Render(&out)
	assert.Contains(t, out.String(), "Static configuration error: no cached schema")
	assert.Contains(t, out.String(), "Dynamic configuration is valid")
	assert.Empty(t, stray.String(), "the whole report must go to the given writer")
}
