package chat

import "errors"

var (
	// ErrEmptyMessage is returned by Submit when empty-message rejection is
	// enabled and the text is blank.
	ErrEmptyMessage = errors.New("message is empty")

	// ErrReplyUnavailable is returned when the replier fails to produce a reply.
	ErrReplyUnavailable = errors.New("reply unavailable")
)
