package appointment

import "errors"

var (
	ErrNotFound             = errors.New("appointment not found")
	ErrForbidden            = errors.New("not allowed")
	ErrSlotUnavailable      = errors.New("Slot unavailable")
	ErrInvalidTransition    = errors.New("appointment status does not allow this transition")
	ErrCalendarNotConnected = errors.New("Connect Google Calendar to confirm appointments")
	ErrMeetingLinkMissing   = errors.New("calendar provider returned no meeting link")
	ErrRescheduleNotFound   = errors.New("reschedule request not found")
	ErrRescheduleNotPending = errors.New("reschedule request is not pending")
)
