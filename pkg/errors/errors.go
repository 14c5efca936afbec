// Package errors defines the coded error type shared by services and the
// HTTP layer. Every error crossing a package boundary carries a Code; the
// code alone decides the HTTP status, the public message, and whether
// structured details may leak to the client.
package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeValidation    Code = "VALIDATION_ERROR"
	CodeUnauthorized  Code = "UNAUTHORIZED"
	CodeForbidden     Code = "FORBIDDEN"
	CodeNotFound      Code = "NOT_FOUND"
	CodeConflict      Code = "CONFLICT"
	CodeStateConflict Code = "STATE_CONFLICT"
	CodeIdempotency   Code = "IDEMPOTENCY_KEY_REUSED"
	CodeInternal      Code = "INTERNAL_ERROR"
	CodeDependency    Code = "DEPENDENCY_ERROR"
)

// Metadata is the per-code rendering contract.
type Metadata struct {
	HTTPStatus     int
	Retryable      bool
	PublicMessage  string
	DetailsAllowed bool
}

// MetadataFor maps a code to its rendering contract. Unknown codes render
// as internal errors so a missing table entry never exposes anything.
func MetadataFor(code Code) Metadata {
	switch code {
	case CodeValidation:
		return Metadata{http.StatusBadRequest, false, "validation failed", true}
	case CodeUnauthorized:
		return Metadata{http.StatusUnauthorized, false, "authentication required", false}
	case CodeForbidden:
		return Metadata{http.StatusForbidden, false, "access denied", false}
	case CodeNotFound:
		return Metadata{http.StatusNotFound, false, "resource not found", false}
	case CodeConflict:
		return Metadata{http.StatusConflict, false, "conflict detected", false}
	case CodeStateConflict:
		return Metadata{http.StatusUnprocessableEntity, false, "state transition disallowed", true}
	case CodeIdempotency:
		return Metadata{http.StatusConflict, false, "idempotency key reused", true}
	case CodeDependency:
		return Metadata{http.StatusServiceUnavailable, true, "dependency unavailable", true}
	default:
		return Metadata{http.StatusInternalServerError, true, "internal server error", false}
	}
}

// Error is a coded error with an internal message and optional details.
// The message is for logs; clients only ever see the code's PublicMessage
// unless the code explicitly passes messages through.
type Error struct {
	code    Code
	message string
	details any
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

// Wrap attaches a code and message to an underlying cause, preserving the
// chain for errors.Is / errors.As.
func Wrap(code Code, err error, message string) *Error {
	e := New(code, message)
	e.cause = err
	return e
}

// WithDetails sets the structured details payload. Details are only
// rendered when the code's metadata allows them.
func (e *Error) WithDetails(details any) *Error {
	if e == nil {
		return nil
	}
	e.details = details
	return e
}

func (e *Error) Code() Code {
	if e == nil {
		return CodeInternal
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Details() any {
	if e == nil {
		return nil
	}
	return e.details
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// As extracts a coded *Error from err's chain, or nil if there is none.
func As(err error) *Error {
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}
