// Package tmpl provides template rendering for user-configurable text such as
// the welcome greeting.
package tmpl

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// fallback returns value unless it is blank, in which case def is returned.
func fallback(def, value string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}

var funcs = template.FuncMap{
	"upper":   strings.ToUpper,
	"lower":   strings.ToLower,
	"trim":    strings.TrimSpace,
	"default": fallback,
}

// Render executes a Go template string with the given data.
// Returns an error if the template is invalid or references undefined keys.
//
// Available template functions:
//   - upper, lower, trim: string case and whitespace helpers
//   - default: `{{ .Name | default "friend" }}` substitutes blank values
func Render(tmpl string, data any) (string, error) {
	t, err := template.New("").Funcs(funcs).Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}

	return buf.String(), nil
}
