// File: doc.go
// Title: Package Documentation for errors
// Description: Package documentation for the standardized error constructors.
// Author: delafer
// Version: v0.1.0
// Created: 2026-06-18
// Modified: 2026-06-18

// Package errors provides standardized constructors for the structured errors
// raised by the procyon utility packages.
//
// Each constructor stamps the module and operation into the error's detail
// map so callers (and tests) can classify failures without string matching:
//
//	err := errors.OutOfRange(errors.ModuleStrutil, "PadLeft", "width", -3, "a non-negative value")
//	errors.ErrorModule(err)    // "strutil"
//	errors.ErrorOperation(err) // "PadLeft"
package errors
