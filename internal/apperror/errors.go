// Package apperror defines the error taxonomy shared by the application
// workflow and the HTTP API.
package apperror

import (
	"errors"
	"fmt"
	"strings"
)

type Kind string

const (
	KindClientValidation Kind = "CLIENT_VALIDATION"
	KindNetwork          Kind = "NETWORK"
	KindServerValidation Kind = "SERVER_VALIDATION"
	KindUpload           Kind = "UPLOAD"
	KindNotFound         Kind = "NOT_FOUND"
	KindConflict         Kind = "CONFLICT"
	KindForbidden        Kind = "FORBIDDEN"
	KindInternal         Kind = "INTERNAL"
)

// Error is a classified error. Details carries field-level messages in the
// order they should be shown.
type Error struct {
	Kind    Kind
	Message string
	Details []string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if len(e.Details) > 0 {
		msg = fmt.Sprintf("%s: %s", msg, strings.Join(e.Details, ", "))
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Retryable reports whether repeating the same request may succeed without
// the user changing anything.
func (e *Error) Retryable() bool {
	return e.Kind == KindNetwork || e.Kind == KindInternal
}

func New(kind Kind, message string, details ...string) *Error {
	return &Error{Kind: kind, Message: message, Details: details}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func NotFound(message string) *Error  { return New(KindNotFound, message) }
func Conflict(message string) *Error  { return New(KindConflict, message) }
func Forbidden(message string) *Error { return New(KindForbidden, message) }

func Validation(message string, details ...string) *Error {
	return New(KindServerValidation, message, details...)
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
