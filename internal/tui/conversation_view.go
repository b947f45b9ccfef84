package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/chatbox/internal/core/chat"
)

// ConversationView renders the message list in a scrollable viewport. Each
// entry is a header line (sender, timestamp, token count) followed by the
// content.
type ConversationView struct {
	viewport        viewport.Model
	messages        []chat.Message
	timestampFormat string
	userName        string
	md              *markdown // nil renders replies as plain text
	rendered        map[string]string
	renderedWidth   int
}

// NewConversationView creates an empty conversation view. When markdownStyle
// is empty, replies are shown as plain text.
func NewConversationView(timestampFormat, markdownStyle string) *ConversationView {
	v := &ConversationView{
		viewport:        viewport.New(0, 0),
		timestampFormat: timestampFormat,
		rendered:        make(map[string]string),
	}
	if markdownStyle != "" {
		v.md = newMarkdown(markdownStyle)
	}
	return v
}

// SetUserName replaces "You" as the label for the user's messages.
func (v *ConversationView) SetUserName(name string) {
	v.userName = name
	v.refresh()
}

// SetMessages replaces the displayed conversation. The scroll position is
// kept; scrolling to new messages is up to the caller.
func (v *ConversationView) SetMessages(msgs []chat.Message) {
	v.messages = msgs
	v.refresh()
}

// SetSize sets the viewport dimensions.
func (v *ConversationView) SetSize(width, height int) {
	v.viewport.Width = max(width, 1)
	v.viewport.Height = max(height, 1)
	v.refresh()
}

// ScrollToBottom moves the viewport so the newest message is visible.
func (v *ConversationView) ScrollToBottom() {
	v.viewport.GotoBottom()
}

// AtBottom reports whether the newest line is visible.
func (v *ConversationView) AtBottom() bool {
	return v.viewport.AtBottom()
}

// YOffset returns the index of the first visible line.
func (v *ConversationView) YOffset() int {
	return v.viewport.YOffset
}

// PageUp scrolls up one page.
func (v *ConversationView) PageUp() {
	v.viewport.PageUp()
}

// PageDown scrolls down one page.
func (v *ConversationView) PageDown() {
	v.viewport.PageDown()
}

// Update forwards mouse wheel events to the viewport.
func (v *ConversationView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return cmd
}

// View renders the visible portion of the conversation.
func (v *ConversationView) View() string {
	return v.viewport.View()
}

func (v *ConversationView) refresh() {
	width := v.viewport.Width
	if width != v.renderedWidth {
		clear(v.rendered)
		v.renderedWidth = width
	}

	if len(v.messages) == 0 {
		v.viewport.SetContent(emptyStyle.Render("  No messages yet. Say hello!"))
		return
	}

	entries := make([]string, len(v.messages))
	for i, msg := range v.messages {
		entries[i] = v.header(msg) + "\n" + v.body(msg, width)
	}
	v.viewport.SetContent(strings.Join(entries, "\n\n"))
}

func (v *ConversationView) header(msg chat.Message) string {
	label := aiLabelStyle.Render(msg.Sender.DisplayName())
	if msg.Sender == chat.SenderUser {
		name := msg.Sender.DisplayName()
		if v.userName != "" {
			name = v.userName
		}
		label = userLabelStyle.Render(name)
	}

	meta := metaStyle.Render(fmt.Sprintf(" %s %s %s %d tokens",
		iconDot, msg.Timestamp(v.timestampFormat), iconDot, msg.TokenLength))
	return label + meta
}

func (v *ConversationView) body(msg chat.Message, width int) string {
	if msg.Content == "" {
		return contentStyle.Render(emptyStyle.Render("(empty)"))
	}

	inner := max(width-contentStyle.GetHorizontalFrameSize(), 1)

	if msg.Sender == chat.SenderAI && v.md != nil {
		if out, ok := v.rendered[msg.ID]; ok && msg.ID != "" {
			return out
		}
		out := lipgloss.NewStyle().PaddingLeft(2).Render(v.md.Render(msg.Content, inner))
		if msg.ID != "" {
			v.rendered[msg.ID] = out
		}
		return out
	}

	return contentStyle.Width(width).Render(msg.Content)
}
