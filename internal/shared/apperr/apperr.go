package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an application error for HTTP translation.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindUnauthorized
	KindNotFound
	KindConflict
)

// Error is an application error carrying a kind and a user-facing message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New constructs an error of the given kind.
func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

// Validation returns a KindValidation error.
func Validation(message string) error {
	return New(KindValidation, message)
}

// Validationf returns a KindValidation error with a formatted message.
func Validationf(format string, args ...any) error {
	return New(KindValidation, fmt.Sprintf(format, args...))
}

// Unauthorized returns a KindUnauthorized error.
func Unauthorized(message string) error {
	return New(KindUnauthorized, message)
}

// NotFound returns a KindNotFound error.
func NotFound(message string) error {
	return New(KindNotFound, message)
}

// NotFoundf returns a KindNotFound error with a formatted message.
func NotFoundf(format string, args ...any) error {
	return New(KindNotFound, fmt.Sprintf(format, args...))
}

// Conflict returns a KindConflict error.
func Conflict(message string) error {
	return New(KindConflict, message)
}

// Wrap attaches a cause to an application error.
func Wrap(kind Kind, message string, err error) error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind from err, or KindUnknown if err is not an
// application error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// MessageOf returns the user-facing message for err, or the fallback when err
// is not an application error.
func MessageOf(err error, fallback string) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return fallback
}
