// File: strutil.go
// Title: Text Predicates, Hashing, and Truth Parsing
// Description: Implements the null/empty/whitespace predicates, the 32-bit
//              polynomial string hashes, and the lenient boolean-literal
//              parsers. Hashes are defined over UTF-16 code units so hash
//              equality tracks ordinal equality for interoperating callers.
// Author: delafer
// Version: v0.1.0
// Created: 2026-06-22
// Modified: 2026-08-14
//
// Change History:
// - 2026-06-22 v0.1.0: Initial implementation

package strutil

import (
	"unicode"
)

// IsNilOrEmpty returns true iff s is absent or has length 0.
func IsNilOrEmpty(s *string) bool {
	return s == nil || len(*s) == 0
}

// IsNilOrWhitespace returns true iff s is absent, empty, or consists entirely
// of Unicode whitespace. This is a broader test than IsNilOrEmpty and the two
// are deliberately distinct.
func IsNilOrWhitespace(s *string) bool {
	if IsNilOrEmpty(s) {
		return true
	}
	for _, r := range *s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsEmpty returns true if s has length 0.
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if s is empty or contains only Unicode whitespace.
func IsBlank(s string) bool {
	return IsNilOrWhitespace(&s)
}

// Hash returns the 32-bit polynomial hash of value: h = 31*h + u over the
// UTF-16 code units, left to right, with wraparound arithmetic. The empty
// string hashes to 0. Values equal under Ordinal comparison hash equal.
func Hash(value string) int32 {
	if value == "" {
		return 0
	}
	var h int32
	if isASCII(value) {
		for i := 0; i < len(value); i++ {
			h = 31*h + int32(value[i])
		}
		return h
	}
	for _, u := range encodeUTF16(value) {
		h = 31*h + int32(u)
	}
	return h
}

// HashIgnoreCase returns the same polynomial hash as Hash computed over
// simple-lowercased code units. Values equal under OrdinalIgnoreCase
// comparison hash equal.
func HashIgnoreCase(value string) int32 {
	if value == "" {
		return 0
	}
	var h int32
	if isASCII(value) {
		for i := 0; i < len(value); i++ {
			h = 31*h + int32(toLowerASCII(value[i]))
		}
		return h
	}
	for _, u := range encodeUTF16(value) {
		h = 31*h + int32(foldCodeUnit(u))
	}
	return h
}

var (
	wordTrue  = "true"
	wordYes   = "yes"
	wordFalse = "false"
	wordNo    = "no"
)

// IsTrue reports whether value spells an affirmative boolean literal: after
// trimming, a single code unit from {t, y, 1} or one of the words "true" and
// "yes", matched case-insensitively. Blank input is false. IsTrue and IsFalse
// are not complements; unrecognized input is false for both.
func IsTrue(value string) bool {
	if IsBlank(value) {
		return false
	}

	trimmed := Trim(value)

	if r, ok := singleCodeUnit(trimmed); ok {
		r = unicode.ToLower(r)
		return r == 't' || r == 'y' || r == '1'
	}

	return OrdinalIgnoreCase.Equal(&trimmed, &wordTrue) ||
		OrdinalIgnoreCase.Equal(&trimmed, &wordYes)
}

// IsFalse reports whether value spells a negative boolean literal: after
// trimming, a single code unit from {f, n, 0} or one of the words "false"
// and "no", matched case-insensitively. Blank input is false.
func IsFalse(value string) bool {
	if IsBlank(value) {
		return false
	}

	trimmed := Trim(value)

	if r, ok := singleCodeUnit(trimmed); ok {
		r = unicode.ToLower(r)
		return r == 'f' || r == 'n' || r == '0'
	}

	return OrdinalIgnoreCase.Equal(&trimmed, &wordFalse) ||
		OrdinalIgnoreCase.Equal(&trimmed, &wordNo)
}
