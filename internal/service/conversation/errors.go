package conversation

import "errors"

var (
	ErrNotFound        = errors.New("conversation not found")
	ErrMessageNotFound = errors.New("message not found")
	ErrNotParticipant  = errors.New("not a participant of this conversation")
	ErrForbidden       = errors.New("forbidden")
	ErrEmptyMessage    = errors.New("message content is empty")
)
