package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/glamour/styles"
	"github.com/hay-kot/criterio"

	"github.com/hay-kot/chatbox/internal/router"
	"github.com/hay-kot/chatbox/pkg/tmpl"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// GreetingData defines available fields for the greeting template.
type GreetingData struct {
	Name    string
	Version string
}

// Validate checks that the configuration is valid. The returned error, if
// any, is a criterio.FieldErrors listing every invalid field.
func (c *Config) Validate() error {
	var errs criterio.FieldErrorsBuilder
	add := func(field string, err error) {
		errs = errs.Append(field, err)
	}

	if strings.TrimSpace(c.Chat.TimestampFormat) == "" {
		add("chat.timestamp_format", fmt.Errorf("cannot be empty"))
	} else if !hasTimeVerb(c.Chat.TimestampFormat) {
		add("chat.timestamp_format", fmt.Errorf("layout %q contains no time fields", c.Chat.TimestampFormat))
	}

	for i, r := range c.Chat.Responses {
		field := fmt.Sprintf("chat.responses[%d]", i)
		if strings.TrimSpace(r.Content) == "" {
			add(field+".content", fmt.Errorf("cannot be empty"))
		}
		if r.TokenLength < 0 {
			add(field+".token_length", fmt.Errorf("must not be negative"))
		}
	}

	if _, ok := router.Default().Resolve(c.UI.StartRoute); !ok {
		add("ui.start_route", fmt.Errorf("unknown route %q (available: %s)", c.UI.StartRoute, routePaths()))
	}

	if _, err := tmpl.Render(c.UI.Greeting, GreetingData{}); err != nil {
		add("ui.greeting", fmt.Errorf("template error: %w", err))
	}

	if c.UI.InputMaxHeight < 1 {
		add("ui.input_max_height", fmt.Errorf("must be at least 1"))
	}

	if !isValidMarkdownStyle(c.UI.MarkdownStyle) {
		add("ui.markdown_style", fmt.Errorf("unknown style %q (available: %s)", c.UI.MarkdownStyle, strings.Join(markdownStyles(), ", ")))
	}

	return errs.ToError()
}

// FieldErrors unpacks the error returned by Validate. An error that is not a
// criterio.FieldErrors comes back as a single entry without a field.
func FieldErrors(err error) criterio.FieldErrors {
	if err == nil {
		return nil
	}
	var fieldErrs criterio.FieldErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs
	}
	return criterio.FieldErrors{{Err: err}}
}

// Warnings returns non-fatal issues worth surfacing to the user.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	for i, r := range c.Chat.Responses {
		chars := len([]rune(r.Content))
		if r.TokenLength == 0 && chars > 0 {
			warnings = append(warnings, ValidationWarning{
				Category: "Responses",
				Item:     fmt.Sprintf("chat.responses[%d]", i),
				Message:  fmt.Sprintf("token_length is 0 for a %d character reply", chars),
			})
		}
	}

	if c.Chat.Seed != 0 {
		warnings = append(warnings, ValidationWarning{
			Category: "Responses",
			Item:     "chat.seed",
			Message:  "seed is set; replies repeat the same sequence every run",
		})
	}

	return warnings
}

// hasTimeVerb reports whether layout changes the output of time.Format, i.e.
// it references at least one time field.
func hasTimeVerb(layout string) bool {
	a := time.Date(2001, 2, 3, 4, 5, 6, 0, time.UTC).Format(layout)
	b := time.Date(2011, 12, 13, 14, 15, 16, 0, time.UTC).Format(layout)
	return a != b
}

func routePaths() string {
	routes := router.Default().Routes()
	paths := make([]string, len(routes))
	for i, r := range routes {
		paths[i] = r.Path
	}
	return strings.Join(paths, ", ")
}

func markdownStyles() []string {
	names := []string{styles.AutoStyle}
	for name := range styles.DefaultStyles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func isValidMarkdownStyle(style string) bool {
	if style == styles.AutoStyle {
		return true
	}
	_, ok := styles.DefaultStyles[style]
	return ok
}
