// Package config handles configuration loading and validation for chatbox.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hay-kot/chatbox/internal/core/chat"
)

// DefaultGreeting is the welcome view template.
const DefaultGreeting = `Welcome{{ with .Name }}, {{ . }}{{ end }}! Press enter to start chatting.`

// Config holds the application configuration.
type Config struct {
	Chat ChatConfig `yaml:"chat"`
	UI   UIConfig   `yaml:"ui"`
}

// ChatConfig controls the conversation store and reply table.
type ChatConfig struct {
	// RejectEmpty refuses blank submissions instead of appending them.
	RejectEmpty bool `yaml:"reject_empty"`
	// TimestampFormat is a Go time layout used when displaying messages.
	TimestampFormat string `yaml:"timestamp_format"`
	// Seed makes reply selection reproducible. Zero means random.
	Seed uint64 `yaml:"seed"`
	// Responses overrides the built-in reply table when non-empty.
	Responses []chat.MockResponse `yaml:"responses"`
}

// UIConfig controls the terminal UI.
type UIConfig struct {
	StartRoute     string `yaml:"start_route"`
	Greeting       string `yaml:"greeting"`
	InputMaxHeight int    `yaml:"input_max_height"`
	RenderMarkdown bool   `yaml:"render_markdown"`
	MarkdownStyle  string `yaml:"markdown_style"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Chat: ChatConfig{
			RejectEmpty:     false,
			TimestampFormat: chat.DefaultTimestampFormat,
		},
		UI: UIConfig{
			StartRoute:     "/",
			Greeting:       DefaultGreeting,
			InputMaxHeight: 8,
			RenderMarkdown: true,
			MarkdownStyle:  "tokyo-night",
		},
	}
}

// Load reads configuration from the given path and validates it. If
// configPath is empty or doesn't exist, defaults are returned.
func Load(configPath string) (*Config, error) {
	cfg, err := Parse(configPath)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Parse reads configuration from the given path and fills in defaults without
// validating it, so that callers can report every problem themselves.
func Parse(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Chat.TimestampFormat == "" {
		c.Chat.TimestampFormat = defaults.Chat.TimestampFormat
	}
	if c.UI.StartRoute == "" {
		c.UI.StartRoute = defaults.UI.StartRoute
	}
	if c.UI.Greeting == "" {
		c.UI.Greeting = defaults.UI.Greeting
	}
	if c.UI.InputMaxHeight == 0 {
		c.UI.InputMaxHeight = defaults.UI.InputMaxHeight
	}
	if c.UI.MarkdownStyle == "" {
		c.UI.MarkdownStyle = defaults.UI.MarkdownStyle
	}
}

// ResponseTable returns the reply table in effect.
func (c *Config) ResponseTable() []chat.MockResponse {
	if len(c.Chat.Responses) == 0 {
		return chat.DefaultResponses()
	}
	return append([]chat.MockResponse(nil), c.Chat.Responses...)
}
