// File: doc.go
// Title: Package Documentation for error
// Description: Package documentation for the structured error type shared by
//              the procyon utility packages.
// Author: delafer
// Version: v0.1.0
// Created: 2026-06-18
// Modified: 2026-08-11

// Package error provides the structured error type shared by the procyon
// utility packages.
//
// An *Error carries a message, a Code, the operation that failed, and a
// free-form detail map. It implements the standard error interface and
// supports errors.Is/errors.As unwrapping through its cause chain:
//
//	err := error.New("width must not be negative").
//	    WithCode(error.CodeValueOutOfRange).
//	    WithOperation("strutil.PadLeft").
//	    WithDetail("width", -3)
//
// The utility packages raise these errors only for programming-contract
// violations (absent required arguments, negative lengths or offsets); they
// are created eagerly, before any work is performed, and surface as panics
// from the verify package. Legitimate "no match" outcomes never produce an
// error.
package error
