// File: doc.go
// Title: Package Documentation for slicex
// Description: Package documentation for the generic slice helpers.
// Author: delafer
// Version: v0.1.0
// Created: 2026-06-20
// Modified: 2026-06-20

// Package slicex provides generic slice search helpers.
//
// The strutil package uses Contains as its character-set membership test for
// delimiter matching and edge trimming; the helpers are exported because they
// are useful on their own. All helpers treat a nil slice as empty.
package slicex
