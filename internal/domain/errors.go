package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies domain failures so the HTTP boundary can map them to status codes.
type ErrorKind string

const (
	KindValidation       ErrorKind = "validation"
	KindNotFound         ErrorKind = "not_found"
	KindConflict         ErrorKind = "conflict"
	KindInvalidOperation ErrorKind = "invalid_operation"
	KindForbidden        ErrorKind = "forbidden"
	KindInvalidState     ErrorKind = "invalid_state"
	KindInternal         ErrorKind = "internal"
)

// Sentinels for errors.Is comparisons against a kind.
var (
	ErrValidation       = &Error{Kind: KindValidation}
	ErrNotFound         = &Error{Kind: KindNotFound}
	ErrConflict         = &Error{Kind: KindConflict}
	ErrInvalidOperation = &Error{Kind: KindInvalidOperation}
	ErrForbidden        = &Error{Kind: KindForbidden}
	ErrInvalidState     = &Error{Kind: KindInvalidState}
	ErrInternal         = &Error{Kind: KindInternal}
)

// Error is a typed domain error.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Validationf returns a KindValidation error.
func Validationf(format string, args ...any) error {
	return newError(KindValidation, format, args...)
}

// NotFoundf returns a KindNotFound error.
func NotFoundf(format string, args ...any) error {
	return newError(KindNotFound, format, args...)
}

// Conflictf returns a KindConflict error.
func Conflictf(format string, args ...any) error {
	return newError(KindConflict, format, args...)
}

// InvalidOperationf returns a KindInvalidOperation error.
func InvalidOperationf(format string, args ...any) error {
	return newError(KindInvalidOperation, format, args...)
}

// Forbiddenf returns a KindForbidden error.
func Forbiddenf(format string, args ...any) error {
	return newError(KindForbidden, format, args...)
}

// InvalidStatef returns a KindInvalidState error.
func InvalidStatef(format string, args ...any) error {
	return newError(KindInvalidState, format, args...)
}

// Internal wraps an unexpected failure.
func Internal(msg string, err error) error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// KindOf returns the kind of err. Errors that are not domain errors are internal.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}
