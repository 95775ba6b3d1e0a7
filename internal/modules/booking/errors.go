package booking

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrForbidden     = errors.New("forbidden")
	ErrNotFound      = errors.New("booking not found")
	ErrStateConflict = errors.New("booking already decided")

	ErrSelfBooking  = errors.New("cannot book your own course")
	ErrRoundMissing = errors.New("a round must be selected for this course")
	ErrWrongRound   = errors.New("round does not belong to this course")
)
