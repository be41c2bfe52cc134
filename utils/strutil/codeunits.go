// File: codeunits.go
// Title: UTF-16 Code Unit Helpers
// Description: Internal helpers for viewing Go strings as UTF-16 code unit
//              sequences. Every length, offset, and per-unit transform in the
//              package is defined over code units, with an ASCII fast path
//              that avoids transcoding (one ASCII byte is one code unit).
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
	"unicode/utf16"
	"unicode/utf8"
)

// maxBMP is the highest code point representable as a single UTF-16 code unit.
const maxBMP = 0xFFFF

// isASCII reports whether s contains only ASCII bytes.
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// codeUnitCount returns the length of s in UTF-16 code units. Characters
// outside the Basic Multilingual Plane count as two units.
func codeUnitCount(s string) int {
	if isASCII(s) {
		return len(s)
	}
	n := 0
	for _, r := range s {
		n++
		if r > maxBMP {
			n++
		}
	}
	return n
}

// encodeUTF16 converts s to its UTF-16 code unit sequence.
func encodeUTF16(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// byteLenOfCodeUnits returns the byte offset in s just past the first n code
// units. Callers only pass offsets that fall on rune boundaries.
func byteLenOfCodeUnits(s string, n int) int {
	for i, r := range s {
		if n <= 0 {
			return i
		}
		n--
		if r > maxBMP {
			n--
		}
	}
	return len(s)
}

// foldCodeUnit applies the simple per-code-unit lowercase mapping. Surrogate
// halves and units without a single-unit lowercase form map to themselves.
func foldCodeUnit(u uint16) uint16 {
	r := unicode.ToLower(rune(u))
	if r < 0 || r > maxBMP {
		return u
	}
	return uint16(r)
}

// toLowerASCII lowercases a single ASCII byte.
func toLowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// singleCodeUnit returns the sole code unit of s when s is exactly one unit
// long. A single character outside the BMP occupies two units and fails.
func singleCodeUnit(s string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if size > 0 && size == len(s) && r <= maxBMP {
		return r, true
	}
	return 0, false
}

// compareCodeUnits orders a and b by their UTF-16 code unit sequences,
// optionally folding each unit to lowercase first. The result is -1, 0, or 1.
// This differs from Go's native string order for values containing
// supplementary-plane characters, which sort by surrogate value here.
func compareCodeUnits(a, b string, fold bool) int {
	if isASCII(a) && isASCII(b) {
		for i := 0; i < len(a) && i < len(b); i++ {
			ca, cb := a[i], b[i]
			if fold {
				ca, cb = toLowerASCII(ca), toLowerASCII(cb)
			}
			if ca != cb {
				if ca < cb {
					return -1
				}
				return 1
			}
		}
		return compareLengths(len(a), len(b))
	}

	ua, ub := encodeUTF16(a), encodeUTF16(b)
	for i := 0; i < len(ua) && i < len(ub); i++ {
		ca, cb := ua[i], ub[i]
		if fold {
			ca, cb = foldCodeUnit(ca), foldCodeUnit(cb)
		}
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
	}
	return compareLengths(len(ua), len(ub))
}

func compareLengths(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
