// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"strings"
)

// MessageText validates that chat text contains something other than
// whitespace.
func MessageText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("message text is required")
	}
	return nil
}

// DisplayName validates a display name entered on the login view.
func DisplayName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if len([]rune(name)) > 32 {
		return fmt.Errorf("name must be 32 characters or fewer")
	}
	return nil
}
