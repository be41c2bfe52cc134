// File: verify.go
// Title: Fail-Fast Argument Contract Checks
// Description: Implements eager argument validation for the procyon utility
//              packages. Violations are programming errors, so the checks
//              panic with a structured error before any work is performed.
// Author: delafer
// Version: v0.1.0
// Created: 2026-06-20
// Modified: 2026-08-11
//
// Change History:
// - 2026-06-20 v0.1.0: Initial implementation with presence and range checks

package verify

import (
	procerrors "github.com/delafer/procyon/core/errors"
)

// NonNegative panics when value is negative and returns it otherwise, so the
// check composes inline at the top of an operation.
func NonNegative(value int, name string) int {
	if value < 0 {
		panic(procerrors.OutOfRange(procerrors.ModuleVerify, "NonNegative", name, value, "a non-negative value"))
	}
	return value
}

// NotNil panics when value is nil and returns it otherwise.
func NotNil[T any](value *T, name string) *T {
	if value == nil {
		panic(procerrors.RequiredError(procerrors.ModuleVerify, "NotNil", name))
	}
	return value
}

// NotNilSlice panics when value is a nil slice and returns it otherwise.
// An empty non-nil slice passes.
func NotNilSlice[T any](value []T, name string) []T {
	if value == nil {
		panic(procerrors.RequiredError(procerrors.ModuleVerify, "NotNilSlice", name))
	}
	return value
}
