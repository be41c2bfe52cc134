// File: standards.go
// Title: Standardized Error Constructors
// Description: Provides standardized error constructors shared by the procyon
//              utility packages so every argument-contract violation carries
//              the same code, operation, and detail layout.
// Author: delafer
// Version: v0.1.0
// Created: 2026-06-18
// Modified: 2026-08-11
//
// Change History:
// - 2026-06-18 v0.1.0: Initial implementation for error standardization

package errors

import (
	"fmt"

	procerror "github.com/delafer/procyon/core/error"
)

// Module identifiers for error categorization.
const (
	ModuleStrutil = "strutil"
	ModuleSlicex  = "slicex"
	ModuleVerify  = "verify"
)

// InputError creates a standardized invalid-argument error.
func InputError(module, operation string, input any, expected string) *procerror.Error {
	return procerror.Newf("invalid input for %s.%s", module, operation).
		WithCode(procerror.CodeInvalidInput).
		WithOperation(module + "." + operation).
		WithDetails(map[string]any{
			"module":    module,
			"operation": operation,
			"input":     input,
			"expected":  expected,
		})
}

// RequiredError creates a standardized absent-required-argument error.
func RequiredError(module, operation, name string) *procerror.Error {
	return procerror.Newf("%s must not be nil in %s.%s", name, module, operation).
		WithCode(procerror.CodeRequiredField).
		WithOperation(module + "." + operation).
		WithDetails(map[string]any{
			"module":    module,
			"operation": operation,
			"argument":  name,
		})
}

// OutOfRange creates a standardized out-of-range numeric argument error.
func OutOfRange(module, operation, name string, value any, expected string) *procerror.Error {
	return procerror.Newf("validation failed: %s is out of range in %s.%s", name, module, operation).
		WithCode(procerror.CodeValueOutOfRange).
		WithOperation(module + "." + operation).
		WithDetails(map[string]any{
			"module":    module,
			"operation": operation,
			"argument":  name,
			"value":     value,
			"expected":  expected,
		})
}

// FormatError creates a standardized malformed-input error.
func FormatError(module string, input any, expectedFormat string) *procerror.Error {
	return procerror.Newf("invalid format in %s: %v", module, input).
		WithCode(procerror.CodeInvalidFormat).
		WithDetails(map[string]any{
			"module":          module,
			"input":           fmt.Sprint(input),
			"expected_format": expectedFormat,
		})
}

// IsModuleError checks if an error belongs to a specific module.
func IsModuleError(err error, module string) bool {
	return ErrorModule(err) == module
}

// ErrorModule extracts the module name from a standardized error.
func ErrorModule(err error) string {
	return detailString(err, "module")
}

// ErrorOperation extracts the operation name from a standardized error.
func ErrorOperation(err error) string {
	return detailString(err, "operation")
}

func detailString(err error, key string) string {
	structured, ok := err.(*procerror.Error)
	if !ok {
		return ""
	}
	if v, ok := structured.Detail(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
