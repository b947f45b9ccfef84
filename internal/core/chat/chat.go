package chat

import (
	"sync"

	"github.com/hay-kot/chatbox/internal/core/validate"
)

// Conversation is the store surface the facade needs.
type Conversation interface {
	SendMessage(text string) Message
	SendMockResponse() (Message, error)
	Messages() []Message
	Subscribe(fn func(Event)) (stop func())
}

// Chat bridges UI submit actions to the conversation store.
type Chat struct {
	mu          sync.Mutex // serializes Submit so each user message is followed by its reply
	conv        Conversation
	rejectEmpty bool
}

// Option configures a Chat.
type Option func(*Chat)

// WithRejectEmpty makes Submit refuse blank text with ErrEmptyMessage.
func WithRejectEmpty(reject bool) Option {
	return func(c *Chat) { c.rejectEmpty = reject }
}

// New creates a facade over conv.
func New(conv Conversation, opts ...Option) *Chat {
	c := &Chat{conv: conv}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit records text as a user message and immediately appends a reply.
// If the reply fails the user message remains in the conversation.
// Concurrent calls never interleave their pairs. Observers must not call
// Submit.
func (c *Chat) Submit(text string) error {
	if c.rejectEmpty {
		if err := validate.MessageText(text); err != nil {
			return ErrEmptyMessage
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.conv.SendMessage(text)
	_, err := c.conv.SendMockResponse()
	return err
}

// Messages returns the current conversation.
func (c *Chat) Messages() []Message {
	return c.conv.Messages()
}

// Subscribe observes conversation changes.
func (c *Chat) Subscribe(fn func(Event)) (stop func()) {
	return c.conv.Subscribe(fn)
}
