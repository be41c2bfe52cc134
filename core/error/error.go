// File: error.go
// Title: Core Error Implementation
// Description: Implements the structured Error type used across the procyon
//              utility packages. Errors carry a code, the failing operation,
//              and a detail map while staying compatible with Go's standard
//              error interface and unwrapping.
// Author: delafer
// Version: v0.2.0
// Created: 2026-06-18
// Modified: 2026-08-11
//
// Change History:
// - 2026-06-18 v0.1.0: Initial implementation with contextual errors
// - 2026-08-11 v0.2.0: Dropped severity/stack machinery not needed by leaf libraries

package error

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Error represents a structured error with a code, operation, and detail map.
type Error struct {
	message   string
	cause     error
	code      Code
	operation string
	details   map[string]any
}

// New creates a new Error with the given message.
func New(message string) *Error {
	return &Error{
		message: message,
		code:    CodeUnknown,
		details: make(map[string]any),
	}
}

// Newf creates a new Error with a formatted message.
func Newf(format string, args ...any) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with additional context. Wrapping nil yields nil.
// When err is already a structured Error, its code and details carry over.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{
		message: message,
		cause:   err,
		code:    CodeUnknown,
		details: make(map[string]any),
	}

	var inner *Error
	if stderrors.As(err, &inner) {
		wrapped.code = inner.code
		wrapped.operation = inner.operation
		for k, v := range inner.details {
			wrapped.details[k] = v
		}
	}

	return wrapped
}

// Error implements the standard error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap returns the underlying cause for error unwrapping.
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the error code.
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	return e
}

// WithOperation sets the operation that produced the error.
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// WithDetail adds a key-value detail to the error.
func (e *Error) WithDetail(key string, value any) *Error {
	e.details[key] = value
	return e
}

// WithDetails adds multiple key-value details to the error.
func (e *Error) WithDetails(details map[string]any) *Error {
	for k, v := range details {
		e.details[k] = v
	}
	return e
}

// Message returns the error message without the cause chain.
func (e *Error) Message() string {
	return e.message
}

// Code returns the error code.
func (e *Error) Code() Code {
	return e.code
}

// Operation returns the operation that produced the error.
func (e *Error) Operation() string {
	return e.operation
}

// Details returns a copy of the error details.
func (e *Error) Details() map[string]any {
	result := make(map[string]any, len(e.details))
	for k, v := range e.details {
		result[k] = v
	}
	return result
}

// Detail returns a single detail value and whether it was present.
func (e *Error) Detail(key string) (any, bool) {
	v, ok := e.details[key]
	return v, ok
}

// RootCause returns the deepest error in the chain.
func (e *Error) RootCause() error {
	var last error = e
	cause := e.cause
	for cause != nil {
		last = cause
		inner, ok := cause.(*Error)
		if !ok {
			break
		}
		cause = inner.cause
	}
	return last
}

// String returns a detailed multi-line representation of the error.
func (e *Error) String() string {
	parts := []string{
		fmt.Sprintf("Error: %s", e.message),
		fmt.Sprintf("Code: %s", e.code),
	}

	if e.operation != "" {
		parts = append(parts, fmt.Sprintf("Operation: %s", e.operation))
	}

	if len(e.details) > 0 {
		detailStrs := make([]string, 0, len(e.details))
		for k, v := range e.details {
			detailStrs = append(detailStrs, fmt.Sprintf("%s=%v", k, v))
		}
		parts = append(parts, fmt.Sprintf("Details: {%s}", strings.Join(detailStrs, ", ")))
	}

	if e.cause != nil {
		parts = append(parts, fmt.Sprintf("Cause: %s", e.cause.Error()))
	}

	return strings.Join(parts, "\n")
}

// HasCode checks whether err carries the given code anywhere in its chain.
func HasCode(err error, code Code) bool {
	var e *Error
	return stderrors.As(err, &e) && e.code == code
}

// GetCode returns the code of err, or CodeUnknown for unstructured errors.
func GetCode(err error) Code {
	var e *Error
	if stderrors.As(err, &e) {
		return e.code
	}
	return CodeUnknown
}
