// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by the procyon utility packages.
//              Every code names a programming-contract violation or an internal
//              fault; the utilities never signal data errors through codes.
// Author: delafer
// Version: v0.1.0
// Created: 2026-06-18
// Modified: 2026-06-18
//
// Change History:
// - 2026-06-18 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors.
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"

	// Argument-contract violations
	CodeInvalidInput    Code = "INVALID_INPUT"
	CodeRequiredField   Code = "REQUIRED_FIELD"
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"
	CodeInvalidFormat   Code = "INVALID_FORMAT"
)

// String returns the string representation of the error code.
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code.
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal,
		CodeInvalidInput, CodeRequiredField, CodeValueOutOfRange, CodeInvalidFormat:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code.
func (c Code) Category() string {
	switch c {
	case CodeInvalidInput, CodeRequiredField, CodeValueOutOfRange, CodeInvalidFormat:
		return "validation"
	default:
		return "generic"
	}
}
