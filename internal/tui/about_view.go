package tui

import (
	"fmt"
	"strings"
)

const aboutText = `# About chatbox

chatbox is a small terminal chat client. Messages you send are answered
by a **mock assistant** that picks a canned reply at random, so nothing
leaves your machine.

## Keys

| Key         | Action                     |
|-------------|----------------------------|
| enter       | send the message           |
| alt+enter   | insert a newline           |
| ctrl+p/n    | recall sent messages       |
| pgup/pgdown | scroll the conversation    |
| esc         | go back                    |
| ctrl+c      | quit                       |

Replies come from the built-in table unless ` + "`chat.responses`" + ` is set
in the config file. Set ` + "`chat.seed`" + ` to make them repeat.
`

// aboutView renders the about page as markdown, or as raw text when
// markdown rendering is disabled.
func (m Model) aboutView() string {
	text := aboutText
	if m.version != "" {
		text += fmt.Sprintf("\nVersion %s\n", m.version)
	}

	if m.md == nil {
		return contentStyle.Render(strings.TrimSpace(text))
	}
	return m.md.Render(text, max(m.width-2, 1))
}
