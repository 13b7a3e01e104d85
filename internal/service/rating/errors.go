package rating

import "errors"

var (
	ErrNotFound       = errors.New("rating not found")
	ErrDoctorNotFound = errors.New("doctor not found")
	ErrAlreadyRated   = errors.New("You have already rated this doctor")
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrForbidden      = errors.New("forbidden")
)
