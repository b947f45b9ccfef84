package tui

import (
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/hay-kot/chatbox/internal/core/validate"
	"github.com/hay-kot/chatbox/internal/styles"
)

// LoginForm wraps a huh.Form that asks for the display name shown on the
// user's messages.
type LoginForm struct {
	form      *huh.Form
	name      string
	submitted bool
	cancelled bool
}

// NewLoginForm creates a login form prefilled with current.
func NewLoginForm(current string) *LoginForm {
	f := &LoginForm{name: current}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Display Name").
				Description("Shown next to your messages.").
				Placeholder("you").
				Value(&f.name).
				Validate(validate.DisplayName),
		),
	).WithTheme(styles.FormTheme()).
		WithShowHelp(false)

	return f
}

// Form returns the underlying huh.Form for tea.Model integration.
func (f *LoginForm) Form() *huh.Form {
	return f.form
}

// Submitted returns true if the form was submitted.
func (f *LoginForm) Submitted() bool {
	return f.submitted
}

// Cancelled returns true if the form was cancelled.
func (f *LoginForm) Cancelled() bool {
	return f.cancelled
}

// SetSubmitted marks the form as submitted.
func (f *LoginForm) SetSubmitted() {
	f.submitted = true
}

// SetCancelled marks the form as cancelled.
func (f *LoginForm) SetCancelled() {
	f.cancelled = true
}

// Name returns the entered display name, trimmed. Only valid if Submitted()
// is true.
func (f *LoginForm) Name() string {
	return strings.TrimSpace(f.name)
}

// View renders the form.
func (f *LoginForm) View() string {
	return f.form.View()
}
