package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/hay-kot/chatbox/internal/router"
)

// keyMap holds every binding the TUI responds to outside of forms.
type keyMap struct {
	Quit      key.Binding
	Back      key.Binding
	OpenChat  key.Binding
	OpenAbout key.Binding
	OpenLogin key.Binding
	Submit    key.Binding
	Newline   key.Binding
	PageUp    key.Binding
	PageDown  key.Binding

	HistoryPrev key.Binding
	HistoryNext key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		OpenChat: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "chat"),
		),
		OpenAbout: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "about"),
		),
		OpenLogin: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "sign in"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "send"),
		),
		Newline: key.NewBinding(
			key.WithKeys("alt+enter", "ctrl+j"),
			key.WithHelp("alt+enter", "newline"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll down"),
		),
		HistoryPrev: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p/n", "history"),
		),
		HistoryNext: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "next in history"),
		),
	}
}

// ShortHelp returns the bindings shown in the help bar for a route.
func (k keyMap) ShortHelp(route string) []key.Binding {
	switch route {
	case router.NameChat:
		return []key.Binding{k.Submit, k.Newline, k.HistoryPrev, k.PageUp, k.PageDown, k.Back, k.Quit}
	case router.NameLogin:
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
			k.Back,
			k.Quit,
		}
	case router.NameAbout:
		return []key.Binding{k.OpenChat, k.Back, k.Quit}
	default:
		return []key.Binding{k.OpenChat, k.OpenLogin, k.OpenAbout, k.Quit}
	}
}
