package user

import "errors"

var (
	ErrNotFound             = errors.New("user not found")
	ErrForbidden            = errors.New("forbidden")
	ErrCalendarNotConnected = errors.New("no calendar connected")
	ErrCalendarExchange     = errors.New("could not exchange authorization code")
)
