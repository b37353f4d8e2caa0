package domain

import (
	"errors"
	"fmt"
)

// ValidationError carries every field rule violated by a request so the
// caller can surface all of them at once.
type ValidationError struct {
	Fields []string
	Err    error
}

func (e ValidationError) Error() string {
	if len(e.Fields) == 1 {
		return e.Fields[0]
	}
	if len(e.Fields) > 1 {
		return fmt.Sprintf("%d invalid fields", len(e.Fields))
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// PastDateError rejects bookings whose date/time is not in the future.
type PastDateError struct{}

func (e PastDateError) Error() string {
	return "booking date and time cannot be in the past"
}

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

// AuthError covers both a missing credential and an invalid or expired one.
type AuthError struct {
	Missing bool
	Msg     string
	Err     error
}

func (e AuthError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Missing {
		return "missing credential"
	}
	return "invalid credential"
}

func (e AuthError) Unwrap() error { return e.Err }

type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

// PersistenceError wraps storage failures. The underlying cause is logged
// server-side but never leaked to clients.
type PersistenceError struct {
	Op  string
	Err error
}

func (e PersistenceError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("persistence failure during %s", e.Op)
	}
	return "persistence failure"
}

func (e PersistenceError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsPastDate(err error) bool {
	var target PastDateError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsAuth(err error) bool {
	var target AuthError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsPersistence(err error) bool {
	var target PersistenceError
	return errors.As(err, &target)
}

// FieldErrors extracts the collected messages from a ValidationError, or
// nil when err is of another kind.
func FieldErrors(err error) []string {
	var target ValidationError
	if errors.As(err, &target) {
		return target.Fields
	}
	return nil
}
