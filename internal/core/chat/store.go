package chat

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hay-kot/chatbox/pkg/notify"
)

// Event is delivered to observers after a message is appended.
type Event struct {
	Message Message
	Len     int // conversation length after the append
}

// Store owns the conversation for a session. It is an append-only log with
// two mutation entry points and an observer registry. It is safe for
// concurrent use.
type Store struct {
	mu       sync.RWMutex
	messages []Message

	replier Replier
	now     func() time.Time
	newID   func() string
	logger  zerolog.Logger
	changes notify.Notifier[Event]
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithReplier sets the source of AI replies.
func WithReplier(r Replier) StoreOption {
	return func(s *Store) { s.replier = r }
}

// WithClock overrides the time source used to stamp messages.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// WithIDFunc overrides message ID generation.
func WithIDFunc(fn func() string) StoreOption {
	return func(s *Store) { s.newID = fn }
}

// WithLogger sets the store logger.
func WithLogger(l zerolog.Logger) StoreOption {
	return func(s *Store) { s.logger = l }
}

// NewStore creates an empty conversation store. Without WithReplier the store
// draws from DefaultResponses with a randomly seeded source.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		now:    time.Now,
		newID:  func() string { return uuid.New().String() },
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.replier == nil {
		s.replier = NewMockReplier(nil, nil)
	}
	return s
}

// SendMessage appends a user message. Text is not validated.
func (s *Store) SendMessage(text string) Message {
	s.mu.Lock()
	msg, n := s.appendLocked(Message{
		Content:     text,
		TokenLength: CharCount(text),
		Sender:      SenderUser,
	})
	s.mu.Unlock()

	s.appended(msg, n)
	return msg
}

// SendMockResponse appends a reply chosen by the store's replier. On replier
// failure nothing is appended and the error wraps ErrReplyUnavailable.
func (s *Store) SendMockResponse() (Message, error) {
	s.mu.Lock()
	// The replier's random source is not safe for concurrent use.
	resp, err := s.replier.Reply()
	if err != nil {
		s.mu.Unlock()
		s.logger.Warn().Err(err).Msg("replier failed")
		return Message{}, fmt.Errorf("%w: %w", ErrReplyUnavailable, err)
	}
	msg, n := s.appendLocked(Message{
		Content:     resp.Content,
		TokenLength: resp.TokenLength,
		Sender:      SenderAI,
	})
	s.mu.Unlock()

	s.appended(msg, n)
	return msg, nil
}

// Messages returns a snapshot of the conversation in insertion order.
func (s *Store) Messages() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of messages in the conversation.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}

// Subscribe registers fn to be called after every append. The returned
// function detaches fn.
func (s *Store) Subscribe(fn func(Event)) (stop func()) {
	return s.changes.Subscribe(fn)
}

// appendLocked stamps msg and appends it. Stamping under the lock keeps
// CreatedAt in insertion order. s.mu must be held.
func (s *Store) appendLocked(msg Message) (Message, int) {
	msg.ID = s.newID()
	msg.CreatedAt = s.now()
	s.messages = append(s.messages, msg)
	return msg, len(s.messages)
}

// appended logs msg and notifies observers. It runs without the lock so
// observers may read the store.
func (s *Store) appended(msg Message, n int) {
	s.logger.Debug().
		Str("id", msg.ID).
		Str("sender", string(msg.Sender)).
		Int("token_length", msg.TokenLength).
		Int("len", n).
		Msg("message appended")

	s.changes.Notify(Event{Message: msg, Len: n})
}
