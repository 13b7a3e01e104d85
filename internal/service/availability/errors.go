package availability

import "errors"

var (
	ErrSlotNotFound     = errors.New("availability slot not found")
	ErrTimeOffNotFound  = errors.New("time off not found")
	ErrInvalidTimeRange = errors.New("end_time must be after start_time")
	ErrForbidden        = errors.New("not allowed")
)
