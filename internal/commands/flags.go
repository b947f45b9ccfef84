package commands

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/hay-kot/chatbox/internal/core/chat"
	"github.com/hay-kot/chatbox/internal/core/config"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "chatbox", "config.yaml")
}

// NewChat builds a fresh conversation from the loaded config. A non-zero seed
// overrides chat.seed.
func (f *Flags) NewChat(seed uint64, logger zerolog.Logger) *chat.Chat {
	if seed == 0 {
		seed = f.Config.Chat.Seed
	}

	store := chat.NewStore(
		chat.WithReplier(chat.NewMockReplier(f.Config.ResponseTable(), chat.NewRandSource(seed))),
		chat.WithLogger(logger),
	)

	return chat.New(store, chat.WithRejectEmpty(f.Config.Chat.RejectEmpty))
}
