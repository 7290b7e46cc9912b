package services

import "errors"

// ErrNotFound is returned when an id does not match any stored record.
var ErrNotFound = errors.New("not found")

// ValidationError reports malformed input on create/update.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }
