package tui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Resizable is a multi-line input whose height can be set and whose natural
// content height can be measured.
type Resizable interface {
	SetHeight(h int)
	ContentHeight() int
}

// AdjustTextareaHeight fits el to its content. The height is collapsed first
// so the measurement never includes space left over from a previous, taller
// value. A nil element is a no-op.
func AdjustTextareaHeight(el Resizable) {
	if el == nil {
		return
	}
	el.SetHeight(0)
	el.SetHeight(el.ContentHeight())
}

// inputBox is the chat composer: a textarea that grows with its content up to
// a maximum height.
type inputBox struct {
	ta        textarea.Model
	maxHeight int
}

func newInputBox(maxHeight int) *inputBox {
	ta := textarea.New()
	ta.Placeholder = "Type a message..."
	ta.Prompt = "┃ "
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	// enter submits; newline needs a modifier
	ta.KeyMap.InsertNewline = key.NewBinding(
		key.WithKeys("alt+enter", "ctrl+j"),
		key.WithHelp("alt+enter", "newline"),
	)
	ta.FocusedStyle.CursorLine = ta.FocusedStyle.CursorLine.UnsetBackground()
	ta.SetHeight(1)

	return &inputBox{ta: ta, maxHeight: max(maxHeight, 1)}
}

// SetHeight sets the visible row count, clamped to [1, maxHeight]. The
// textarea's own MaxHeight also caps logical lines, so it is left alone.
func (b *inputBox) SetHeight(h int) {
	b.ta.SetHeight(min(max(h, 1), b.maxHeight))
}

// Height returns the visible row count.
func (b *inputBox) Height() int {
	return b.ta.Height()
}

// SetWidth sets the outer width, prompt included.
func (b *inputBox) SetWidth(w int) {
	b.ta.SetWidth(w)
}

// ContentHeight returns the number of rows the current value occupies once
// soft-wrapped at the textarea width.
func (b *inputBox) ContentHeight() int {
	return wrappedRows(b.ta.Value(), b.ta.Width())
}

func (b *inputBox) Value() string {
	return b.ta.Value()
}

func (b *inputBox) SetValue(s string) {
	b.ta.SetValue(s)
}

func (b *inputBox) Reset() {
	b.ta.Reset()
}

func (b *inputBox) Focus() tea.Cmd {
	return b.ta.Focus()
}

func (b *inputBox) Blur() {
	b.ta.Blur()
}

func (b *inputBox) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	b.ta, cmd = b.ta.Update(msg)
	return cmd
}

func (b *inputBox) View() string {
	return b.ta.View()
}

// wrappedRows counts display rows for value wrapped at width cells, the way
// the textarea lays it out: words move to the next row whole, words wider
// than a row are broken, and a trailing cursor cell is reserved on the last
// row so a line that fills the width exactly spills onto a second row.
func wrappedRows(value string, width int) int {
	if width < 1 {
		width = 1
	}

	rows := 0
	for _, line := range strings.Split(value, "\n") {
		rows += lineRows([]rune(line), width)
	}
	return rows
}

// lineRows counts the rows one logical line occupies.
func lineRows(line []rune, width int) int {
	var (
		rows   = 1
		row    []rune
		word   []rune
		spaces int
	)

	for _, r := range line {
		if unicode.IsSpace(r) {
			spaces++
		} else {
			word = append(word, r)
		}

		if spaces > 0 {
			if uniseg.StringWidth(string(row))+uniseg.StringWidth(string(word))+spaces > width {
				rows++
				row = row[:0]
			}
			row = append(row, word...)
			row = append(row, []rune(strings.Repeat(" ", spaces))...)
			spaces = 0
			word = word[:0]
			continue
		}

		last := runewidth.RuneWidth(word[len(word)-1])
		if uniseg.StringWidth(string(word))+last > width {
			if len(row) > 0 {
				rows++
				row = row[:0]
			}
			row = append(row, word...)
			word = word[:0]
		}
	}

	if uniseg.StringWidth(string(row))+uniseg.StringWidth(string(word))+spaces >= width {
		rows++
	}
	return rows
}
