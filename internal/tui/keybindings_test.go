package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/hay-kot/chatbox/internal/router"
)

func helpKeys(bindings []key.Binding) []string {
	keys := make([]string, len(bindings))
	for i, b := range bindings {
		keys[i] = b.Help().Key
	}
	return keys
}

func TestKeyMap_ShortHelp(t *testing.T) {
	km := defaultKeyMap()

	tests := []struct {
		route string
		want  []string
	}{
		{route: router.NameWelcome, want: []string{"enter", "l", "a", "ctrl+c"}},
		{route: router.NameAbout, want: []string{"enter", "esc", "ctrl+c"}},
		{route: router.NameLogin, want: []string{"enter", "esc", "ctrl+c"}},
		{route: router.NameChat, want: []string{"enter", "alt+enter", "ctrl+p/n", "pgup", "pgdn", "esc", "ctrl+c"}},
	}

	for _, tt := range tests {
		t.Run(tt.route, func(t *testing.T) {
			assert.Equal(t, tt.want, helpKeys(km.ShortHelp(tt.route)))
		})
	}
}

func TestKeyMap_SubmitVsNewline(t *testing.T) {
	km := defaultKeyMap()

	enter := tea.KeyMsg{Type: tea.KeyEnter}
	altEnter := tea.KeyMsg{Type: tea.KeyEnter, Alt: true}

	assert.True(t, key.Matches(enter, km.Submit))
	assert.False(t, key.Matches(enter, km.Newline))
	assert.True(t, key.Matches(altEnter, km.Newline))
	assert.False(t, key.Matches(altEnter, km.Submit))
}
