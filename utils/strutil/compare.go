// File: compare.go
// Title: Ordinal Comparison Modes and Strategies
// Description: Implements the two interchangeable comparison behaviors of the
//              package: exact ordinal comparison over UTF-16 code units and
//              its simple-lowercase-folding variant. The mode enumeration
//              resolves to a strategy through an explicit switch so the two
//              can never desynchronize.
// Author: delafer
// Version: v0.2.0
// Created: 2026-06-22
// Modified: 2026-08-14
//
// Change History:
// - 2026-06-22 v0.1.0: Initial implementation with ordinal comparers
// - 2026-07-30 v0.2.0: Added text marshalling for configuration use

package strutil

import (
	procerrors "github.com/delafer/procyon/core/errors"
)

// Comparison selects one of the two comparison behaviors of the package.
type Comparison int

const (
	// Ordinal compares by raw UTF-16 code unit value, with no locale or
	// collation rules applied.
	Ordinal Comparison = iota

	// OrdinalIgnoreCase compares after folding each code unit with the simple
	// lowercase mapping. It performs no full Unicode case folding: there are
	// no multi-codepoint expansions, and surrogate halves never fold.
	OrdinalIgnoreCase
)

// Comparer is a comparison strategy over possibly-absent text values.
// Compare and Equal never fail: a nil value is a legal input that sorts
// before any present value and equals only another nil.
type Comparer interface {
	Compare(s1, s2 *string) int
	Equal(s1, s2 *string) bool
}

// The two comparison strategies, exported for callers that hold a strategy
// directly instead of dispatching through a Comparison value.
var (
	OrdinalComparer           Comparer = ordinalComparer{}
	OrdinalIgnoreCaseComparer Comparer = ordinalIgnoreCaseComparer{}
)

// Comparer resolves the mode to its strategy. An undeclared mode value is a
// programming error and panics with an invalid-argument error.
func (c Comparison) Comparer() Comparer {
	switch c {
	case Ordinal:
		return OrdinalComparer
	case OrdinalIgnoreCase:
		return OrdinalIgnoreCaseComparer
	}
	panic(procerrors.InputError(procerrors.ModuleStrutil, "Comparer", int(c), "a declared Comparison value"))
}

// Compare compares s1 and s2 under this mode.
func (c Comparison) Compare(s1, s2 *string) int {
	return c.Comparer().Compare(s1, s2)
}

// Equal reports whether s1 and s2 are equal under this mode.
func (c Comparison) Equal(s1, s2 *string) bool {
	return c.Comparer().Equal(s1, s2)
}

// foldsCase reports whether the mode lowercases code units before comparing,
// validating the mode value on the way.
func (c Comparison) foldsCase() bool {
	return c.Comparer() == OrdinalIgnoreCaseComparer
}

// String returns the textual form of the mode.
func (c Comparison) String() string {
	switch c {
	case Ordinal:
		return "ordinal"
	case OrdinalIgnoreCase:
		return "ordinalIgnoreCase"
	}
	return "invalid"
}

// MarshalText implements encoding.TextMarshaler so a mode can appear in
// configuration files.
func (c Comparison) MarshalText() ([]byte, error) {
	switch c {
	case Ordinal, OrdinalIgnoreCase:
		return []byte(c.String()), nil
	}
	return nil, procerrors.FormatError(procerrors.ModuleStrutil, int(c), `"ordinal" or "ordinalIgnoreCase"`)
}

// UnmarshalText implements encoding.TextUnmarshaler. Mode names match
// case-insensitively.
func (c *Comparison) UnmarshalText(text []byte) error {
	name := string(text)
	for _, candidate := range []Comparison{Ordinal, OrdinalIgnoreCase} {
		want := candidate.String()
		if OrdinalIgnoreCaseComparer.Equal(&name, &want) {
			*c = candidate
			return nil
		}
	}
	return procerrors.FormatError(procerrors.ModuleStrutil, name, `"ordinal" or "ordinalIgnoreCase"`)
}

// Equal reports whether s1 and s2 are equal by exact code unit values.
func Equal(s1, s2 *string) bool {
	return OrdinalComparer.Equal(s1, s2)
}

// EqualComparison reports whether s1 and s2 are equal under the given mode.
func EqualComparison(s1, s2 *string, comparison Comparison) bool {
	return comparison.Equal(s1, s2)
}

// Compare orders s1 and s2 by exact code unit values.
func Compare(s1, s2 *string) int {
	return OrdinalComparer.Compare(s1, s2)
}

// CompareComparison orders s1 and s2 under the given mode.
func CompareComparison(s1, s2 *string, comparison Comparison) int {
	return comparison.Compare(s1, s2)
}

type ordinalComparer struct{}

func (ordinalComparer) Compare(s1, s2 *string) int {
	if s1 == s2 {
		return 0
	}
	if s1 == nil {
		return -1
	}
	if s2 == nil {
		return 1
	}
	return compareCodeUnits(*s1, *s2, false)
}

func (ordinalComparer) Equal(s1, s2 *string) bool {
	if s1 == nil || s2 == nil {
		return s1 == s2
	}
	return *s1 == *s2
}

type ordinalIgnoreCaseComparer struct{}

func (ordinalIgnoreCaseComparer) Compare(s1, s2 *string) int {
	if s1 == s2 {
		return 0
	}
	if s1 == nil {
		return -1
	}
	if s2 == nil {
		return 1
	}
	return compareCodeUnits(*s1, *s2, true)
}

func (ordinalIgnoreCaseComparer) Equal(s1, s2 *string) bool {
	if s1 == nil || s2 == nil {
		return s1 == s2
	}
	return compareCodeUnits(*s1, *s2, true) == 0
}
