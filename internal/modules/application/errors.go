package application

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrForbidden     = errors.New("forbidden")
	ErrNotFound      = errors.New("application not found")
	ErrStateConflict = errors.New("application already reviewed")

	// ErrAlreadyApplied blocks resubmission while the latest application is
	// still pending or was approved; a rejected one frees the user to retry.
	ErrAlreadyApplied = errors.New("an application is already pending or approved")
)
