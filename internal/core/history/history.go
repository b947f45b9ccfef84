// Package history keeps the messages a user has sent so they can be recalled
// into the input box, newest first.
package history

import "strings"

// DefaultMaxEntries bounds the history when New is given a non-positive size.
const DefaultMaxEntries = 100

// History is an in-memory list of sent messages with a browsing cursor. It is
// not safe for concurrent use; the TUI owns it on the update loop.
type History struct {
	entries []string
	limit   int

	// cursor indexes entries while browsing; len(entries) means not browsing.
	cursor int
	draft  string
}

// New creates an empty history holding at most size entries.
func New(size int) *History {
	if size <= 0 {
		size = DefaultMaxEntries
	}
	return &History{limit: size}
}

// Add records text and stops browsing. Blank text and a repeat of the newest
// entry are ignored. The oldest entries are pruned past the maximum.
func (h *History) Add(text string) {
	defer h.reset()

	if strings.TrimSpace(text) == "" {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == text {
		return
	}

	h.entries = append(h.entries, text)
	if over := len(h.entries) - h.limit; over > 0 {
		h.entries = append(h.entries[:0], h.entries[over:]...)
	}
}

// Prev moves to the next older entry. current is kept as the draft when
// browsing starts so Next can restore it. It reports false at the oldest
// entry or when the history is empty.
func (h *History) Prev(current string) (string, bool) {
	if h.cursor == 0 {
		return "", false
	}
	if !h.Browsing() {
		h.draft = current
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Next moves to the next newer entry. Moving past the newest entry returns
// the draft and stops browsing. It reports false when not browsing.
func (h *History) Next() (string, bool) {
	if !h.Browsing() {
		return "", false
	}
	h.cursor++
	if h.cursor == len(h.entries) {
		draft := h.draft
		h.draft = ""
		return draft, true
	}
	return h.entries[h.cursor], true
}

// Browsing reports whether Prev has moved the cursor off the draft.
func (h *History) Browsing() bool {
	return h.cursor < len(h.entries)
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the entries, oldest first.
func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}

func (h *History) reset() {
	h.cursor = len(h.entries)
	h.draft = ""
}
