package service

import "errors"

// ErrNotFound covers both an absent record and one hidden by the access
// policy: callers must not be able to tell other users' data exists.
var ErrNotFound = errors.New("record not found")

// ValidationError is a rule violation reported against one field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
