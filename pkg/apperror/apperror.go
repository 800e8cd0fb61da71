package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Machine-readable error codes. One code per variant, fixed at construction.
const (
	CodeUnauthorized        = "unauthorized"
	CodeForbidden           = "forbidden"
	CodeNotFound            = "not found"
	CodeMethodNotAllowed    = "method not allowed"
	CodeRequestTimeout      = "request timeout"
	CodeValidation          = "validation error"
	CodeTokenInvalid        = "token invalid"
	CodeTokenExpired        = "token expired"
	CodeRefreshTokenExpired = "refresh token expired"
	CodeResourceCreated     = "resource created"
	CodeInternalServerError = "internal server error"
)

// Error is the application error type. Every failure that reaches the
// response layer is one of the constructors below; Status and Code are
// fixed per variant, Message and Details vary per instance.
type Error struct {
	Status  int
	Code    string
	Message string

	// Errors holds field name -> messages, set only for validation errors.
	Errors map[string][]string

	// Details carries diagnostic context for logging. Never rendered to
	// the caller.
	Details map[string]interface{}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Status == t.Status && e.Code == t.Code
}

// As extracts an *Error from an error chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	ok := errors.As(err, &appErr)
	return appErr, ok
}

// Passthrough reports whether the error must cross handler boundaries
// verbatim instead of being wrapped into an internal server error.
func (e *Error) Passthrough() bool {
	return e.Code == CodeNotFound || e.Code == CodeRequestTimeout
}

func NewUnauthorized() *Error {
	return &Error{
		Status:  http.StatusUnauthorized,
		Code:    CodeUnauthorized,
		Message: "Unauthorized",
	}
}

func NewForbidden() *Error {
	return &Error{
		Status:  http.StatusForbidden,
		Code:    CodeForbidden,
		Message: "Forbidden",
	}
}

func NewNotFound(resource string, id string) *Error {
	return &Error{
		Status:  http.StatusNotFound,
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with id %s not found", resource, id),
	}
}

func NewMethodNotAllowed() *Error {
	return &Error{
		Status:  http.StatusMethodNotAllowed,
		Code:    CodeMethodNotAllowed,
		Message: "Method not allowed",
	}
}

func NewRequestTimeout() *Error {
	return &Error{
		Status:  http.StatusRequestTimeout,
		Code:    CodeRequestTimeout,
		Message: "Request timed out",
	}
}

func NewValidation(fieldErrors map[string][]string) *Error {
	return &Error{
		Status:  http.StatusUnprocessableEntity,
		Code:    CodeValidation,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

func NewTokenInvalid(tokenName string, reason string) *Error {
	return &Error{
		Status:  http.StatusUnauthorized,
		Code:    CodeTokenInvalid,
		Message: fmt.Sprintf("%s is invalid: %s", tokenName, reason),
	}
}

func NewTokenExpired() *Error {
	return &Error{
		Status:  http.StatusUnauthorized,
		Code:    CodeTokenExpired,
		Message: "Access token has expired",
	}
}

func NewRefreshTokenExpired() *Error {
	return &Error{
		Status:  http.StatusUnauthorized,
		Code:    CodeRefreshTokenExpired,
		Message: "Refresh token has expired",
	}
}

// NewResourceCreated is an early-exit signal carried through the error
// channel. Kept for caller-driven flows; the blog handlers never raise it.
func NewResourceCreated(message string) *Error {
	return &Error{
		Status:  http.StatusCreated,
		Code:    CodeResourceCreated,
		Message: message,
	}
}

func NewInternal(message string, details map[string]interface{}) *Error {
	return &Error{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalServerError,
		Message: message,
		Details: details,
	}
}

// Wrap converts an unexpected failure into an internal server error,
// keeping the cause message as diagnostic detail. Errors marked as
// passthrough (not found, request timeout) are returned unchanged so they
// are never masked as 500s.
func Wrap(message string, err error) error {
	if appErr, ok := As(err); ok && appErr.Passthrough() {
		return err
	}
	return NewInternal(message, map[string]interface{}{"error": err.Error()})
}
