package tui

import (
	"github.com/hay-kot/chatbox/internal/core/config"
	"github.com/hay-kot/chatbox/pkg/tmpl"
)

// welcomeView renders the configured greeting. Config validation already
// rendered the template once, so a failure here only logs and falls back to
// the built-in greeting.
func (m Model) welcomeView() string {
	data := config.GreetingData{
		Name:    m.userName,
		Version: m.version,
	}

	greeting, err := tmpl.Render(m.cfg.UI.Greeting, data)
	if err != nil {
		m.log.Warn().Err(err).Msg("render greeting")
		greeting, _ = tmpl.Render(config.DefaultGreeting, data)
	}

	hints := metaStyle.Render("enter chat " + iconDot + " l sign in " + iconDot + " a about")
	return greetingStyle.Width(max(m.width-1, 1)).Render(greeting + "\n\n" + hints)
}
