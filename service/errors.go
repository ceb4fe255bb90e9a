package services

import "errors"

var (
	ErrLocationNotFound = errors.New("location not found")
	ErrAlertNotFound    = errors.New("alert not found")
	ErrTooManyLocations = errors.New("too many locations to compare")
	ErrInvalidRequest   = errors.New("invalid request")
)
