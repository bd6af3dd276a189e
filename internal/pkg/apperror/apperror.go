// Package apperror carries typed error kinds from the service layer to the
// HTTP edge. Services wrap causes here; the error handler middleware maps
// kinds to status codes so controllers can just return errors.
package apperror

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindAuthRequired    Kind = "AUTH_REQUIRED"
	KindNotFound        Kind = "NOT_FOUND"
	KindInvalidInput    Kind = "INVALID_INPUT"
	KindUpstreamRewrite Kind = "AI_PROCESSING_ERROR"
	KindRateLimited     Kind = "RATE_LIMIT_EXCEEDED"
	KindStore           Kind = "STORE_ERROR"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func AuthRequired(message string) *Error {
	return New(KindAuthRequired, message)
}

func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

func InvalidInput(message string) *Error {
	return New(KindInvalidInput, message)
}

func UpstreamRewrite(message string, err error) *Error {
	return Wrap(KindUpstreamRewrite, message, err)
}

func RateLimited(message string) *Error {
	return New(KindRateLimited, message)
}

func Store(message string, err error) *Error {
	return Wrap(KindStore, message, err)
}

// KindOf reports the kind of err, defaulting to KindStore for errors that
// did not come through this package.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStore
}

func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}
