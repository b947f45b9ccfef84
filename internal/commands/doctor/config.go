package doctor

import (
	"context"
	"os"

	"github.com/hay-kot/chatbox/internal/core/config"
)

// ConfigCheck reports where the config came from and whether it is valid.
type ConfigCheck struct {
	path   string
	config *config.Config
}

// NewConfigCheck creates a check for cfg, loaded from path.
func NewConfigCheck(path string, cfg *config.Config) *ConfigCheck {
	return &ConfigCheck{path: path, config: cfg}
}

func (c *ConfigCheck) Name() string {
	return "Configuration"
}

func (c *ConfigCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	if c.config == nil {
		result.add("Config file", StatusFail, "configuration not loaded")
		return result
	}

	switch _, err := os.Stat(c.path); {
	case c.path == "":
		result.add("Config file", StatusPass, "built-in defaults")
	case err != nil:
		result.add("Config file", StatusPass, c.path+" not found, using defaults")
	default:
		result.add("Config file", StatusPass, c.path)
	}

	fieldErrs := config.FieldErrors(c.config.Validate())
	for _, fe := range fieldErrs {
		label := fe.Field
		if label == "" {
			label = "config"
		}
		result.add(label, StatusFail, fe.Err.Error())
	}

	for _, w := range c.config.Warnings() {
		label := w.Item
		if label == "" {
			label = w.Category
		}
		result.add(label, StatusWarn, w.Message)
	}

	if result.Status == StatusPass {
		result.add("Settings", StatusPass, "valid")
	}

	return result
}
