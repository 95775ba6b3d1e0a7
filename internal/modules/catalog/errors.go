package catalog

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrForbidden  = errors.New("forbidden")
	ErrNotFound   = errors.New("course not found")

	// Scheduling validator failures. Both are validation errors but callers
	// need to tell the submitter which condition failed.
	ErrRoundTimeRequired = errors.New("start and end time are required when days are selected")
	ErrRoundTimeOrder    = errors.New("end time must be after start time")
	ErrInvalidDay        = errors.New("weekday index out of range")
	ErrInvalidTime       = errors.New("invalid time format, expected HH:MM")
	ErrUnknownRound      = errors.New("round does not belong to this course")
)
