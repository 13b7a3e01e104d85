package records

import "errors"

var (
	ErrNotFound        = errors.New("record not found")
	ErrForbidden       = errors.New("forbidden")
	ErrNotLinked       = errors.New("doctor is not linked to this patient")
	ErrPatientNotFound = errors.New("patient not found")
)
