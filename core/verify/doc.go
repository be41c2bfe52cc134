// File: doc.go
// Title: Package Documentation for verify
// Description: Package documentation for the argument-contract checks.
// Author: delafer
// Version: v0.1.0
// Created: 2026-06-20
// Modified: 2026-06-20

// Package verify provides eager, fail-fast argument-contract checks.
//
// The checks cover the two argument classes the utility packages reject:
// required values that are absent and numeric arguments that are negative.
// A violation is a programming error, never a data error, so the checks
// panic with a structured *error.Error (code REQUIRED_FIELD or
// VALUE_OUT_OF_RANGE) instead of returning it. Each check returns its
// argument on success so it can wrap a parameter inline:
//
//	func Repeat(ch rune, count int) string {
//	    verify.NonNegative(count, "count")
//	    ...
//	}
package verify
