// Package chat holds the conversation model: messages, the canned reply
// table, the append-only conversation store, and the submit facade used by
// the UI.
package chat

import (
	"time"
	"unicode/utf8"
)

// Sender identifies who authored a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// DisplayName returns a human-readable label for the sender.
func (s Sender) DisplayName() string {
	switch s {
	case SenderUser:
		return "You"
	case SenderAI:
		return "Assistant"
	default:
		return string(s)
	}
}

// DefaultTimestampFormat approximates a locale date-time string.
const DefaultTimestampFormat = "2006/1/2 15:04:05"

// Message is a single entry in the conversation. Messages are values and are
// never modified after they are appended.
type Message struct {
	ID          string    `json:"id"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	TokenLength int       `json:"token_length"`
	Sender      Sender    `json:"sender"`
}

// Timestamp formats CreatedAt with layout, falling back to
// DefaultTimestampFormat when layout is empty.
func (m Message) Timestamp(layout string) string {
	if layout == "" {
		layout = DefaultTimestampFormat
	}
	return m.CreatedAt.Local().Format(layout)
}

// CharCount is the token length assigned to user text: the number of Unicode
// code points, not a tokenizer count. A character outside the Basic
// Multilingual Plane counts once.
func CharCount(s string) int {
	return utf8.RuneCountInString(s)
}
