package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/chatbox/internal/core/config"
	"github.com/hay-kot/chatbox/internal/printer"
)

// ConfigValidateCmd reports every problem in the config file at once.
type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "chatbox config validate [options]",
				Description: `Reports every invalid setting in the config file, grouped by section, plus
warnings for settings that are valid but probably unintended. A missing file
is not an error; the built-in defaults are validated instead.`,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

// validation is the outcome of validating the loaded config.
type validation struct {
	Path      string                     `json:"path"`
	FileFound bool                       `json:"file_found"`
	Replies   int                        `json:"replies"`
	Valid     bool                       `json:"valid"`
	Errors    []validationError          `json:"errors,omitempty"`
	Warnings  []config.ValidationWarning `json:"warnings,omitempty"`
}

type validationError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config
	if cfg == nil {
		return fmt.Errorf("configuration not loaded")
	}

	v := validation{
		Path:     cmd.flags.ConfigPath,
		Replies:  len(cfg.ResponseTable()),
		Warnings: cfg.Warnings(),
	}
	if v.Path != "" {
		_, err := os.Stat(v.Path)
		v.FileFound = err == nil
	}
	for _, fe := range config.FieldErrors(cfg.Validate()) {
		v.Errors = append(v.Errors, validationError{Field: fe.Field, Message: fe.Err.Error()})
	}
	v.Valid = len(v.Errors) == 0

	if cmd.format == "json" {
		enc := json.NewEncoder(c.Root().Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	printValidation(printer.Ctx(ctx), v)
	if !v.Valid {
		return cli.Exit("", 1)
	}
	return nil
}

// printValidation groups errors by their top level config section.
func printValidation(p *printer.Printer, v validation) {
	switch {
	case v.Path == "":
		p.Infof("No config file, using built-in defaults")
	case !v.FileFound:
		p.Infof("%s not found, using built-in defaults", v.Path)
	default:
		p.Infof("Config: %s", v.Path)
	}
	p.Infof("Reply table: %d replies", v.Replies)
	p.Printf("")

	var sections []string
	bySection := make(map[string][]validationError)
	for _, e := range v.Errors {
		section, _, _ := strings.Cut(e.Field, ".")
		if section == "" {
			section = "config"
		}
		if _, ok := bySection[section]; !ok {
			sections = append(sections, section)
		}
		bySection[section] = append(bySection[section], e)
	}

	for _, section := range sections {
		p.Section(section)
		for _, e := range bySection[section] {
			p.FailItem(e.Field, e.Message)
		}
		p.Printf("")
	}

	if len(v.Warnings) > 0 {
		p.Section("warnings")
		for _, w := range v.Warnings {
			p.WarnItem(w.Item, w.Message)
		}
		p.Printf("")
	}

	if v.Valid {
		p.Successf("Configuration is valid")
		return
	}
	p.Errorf("%d invalid setting(s)", len(v.Errors))
}
