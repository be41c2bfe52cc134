// File: trim.go
// Title: Edge Trimming and Affix Removal
// Description: Implements ASCII-style edge trimming (code units at or below
//              the space character) and single-occurrence prefix/suffix
//              removal with exact and case-folding variants, plus removal of
//              a contiguous run of set members from one edge. The trim
//              predicate here is narrower than the Unicode whitespace test
//              used by IsNilOrWhitespace; the asymmetry is intentional.
// Author: delafer
// Version: v0.1.0
// Created: 2026-06-24
// Modified: 2026-08-14
//
// Change History:
// - 2026-06-24 v0.1.0: Initial implementation

package strutil

import (
	"unicode/utf8"

	"github.com/delafer/procyon/core/verify"
	"github.com/delafer/procyon/utils/slicex"
)

// TrimLeft removes leading code units with values at or below the space
// character.
func TrimLeft(value string) string {
	start := 0
	for start < len(value) && value[start] <= ' ' {
		start++
	}
	if start == 0 {
		return value
	}
	return value[start:]
}

// TrimRight removes trailing code units with values at or below the space
// character.
func TrimRight(value string) string {
	end := len(value)
	for end > 0 && value[end-1] <= ' ' {
		end--
	}
	if end == len(value) {
		return value
	}
	return value[:end]
}

// Trim removes code units at or below the space character from both edges.
func Trim(value string) string {
	return TrimRight(TrimLeft(value))
}

// RemoveLeft removes one occurrence of prefix from the start of value by
// exact comparison. An empty prefix, or a prefix that does not match, leaves
// value unchanged; a value equal to the prefix becomes empty.
func RemoveLeft(value, prefix string) string {
	return removeLeft(value, prefix, false)
}

// RemoveLeftIgnoreCase is RemoveLeft under simple lowercase folding.
func RemoveLeftIgnoreCase(value, prefix string) string {
	return removeLeft(value, prefix, true)
}

func removeLeft(value, prefix string, fold bool) string {
	if prefix == "" {
		return value
	}

	prefixLength := codeUnitCount(prefix)
	remaining := codeUnitCount(value) - prefixLength

	if remaining < 0 {
		return value
	}

	if remaining == 0 {
		if equalWholeValue(value, prefix, fold) {
			return ""
		}
		return value
	}

	if fold {
		if StartsWithIgnoreCase(value, prefix) {
			return value[byteLenOfCodeUnits(value, prefixLength):]
		}
		return value
	}

	if StartsWith(value, prefix) {
		// Exact code unit equality implies byte equality of the matched run.
		return value[len(prefix):]
	}
	return value
}

// RemoveRight removes one occurrence of suffix from the end of value by
// exact comparison. An empty suffix, or a suffix that does not match, leaves
// value unchanged; a value equal to the suffix becomes empty.
func RemoveRight(value, suffix string) string {
	return removeRight(value, suffix, false)
}

// RemoveRightIgnoreCase is RemoveRight under simple lowercase folding.
func RemoveRightIgnoreCase(value, suffix string) string {
	return removeRight(value, suffix, true)
}

func removeRight(value, suffix string, fold bool) string {
	if suffix == "" {
		return value
	}

	suffixLength := codeUnitCount(suffix)
	end := codeUnitCount(value) - suffixLength

	if end < 0 {
		return value
	}

	if end == 0 {
		if equalWholeValue(value, suffix, fold) {
			return ""
		}
		return value
	}

	if fold {
		if EndsWithIgnoreCase(value, suffix) {
			return value[:byteLenOfCodeUnits(value, end)]
		}
		return value
	}

	if EndsWith(value, suffix) {
		return value[:len(value)-len(suffix)]
	}
	return value
}

func equalWholeValue(value, affix string, fold bool) bool {
	if fold {
		return OrdinalIgnoreCaseComparer.Equal(&value, &affix)
	}
	return value == affix
}

// RemoveLeftChars removes the leading run of code units that belong to the
// chars set, stopping at the first non-member. A nil chars set panics with an
// invalid-argument error; an empty set is a no-op.
func RemoveLeftChars(value string, chars []rune) string {
	verify.NotNilSlice(chars, "chars")

	for i, r := range value {
		if !slicex.Contains(chars, r) {
			if i == 0 {
				return value
			}
			return value[i:]
		}
	}
	return ""
}

// RemoveRightChars removes the trailing run of code units that belong to the
// chars set, stopping at the first non-member. A nil chars set panics with an
// invalid-argument error; an empty set is a no-op.
func RemoveRightChars(value string, chars []rune) string {
	verify.NotNilSlice(chars, "chars")

	end := len(value)
	for end > 0 {
		r, size := utf8.DecodeLastRuneInString(value[:end])
		if !slicex.Contains(chars, r) {
			break
		}
		end -= size
	}
	if end == len(value) {
		return value
	}
	return value[:end]
}

// TrimAndRemoveLeft trims value, removes prefix from the trimmed result by
// exact comparison, then re-trims the left edge only if removal changed the
// value.
func TrimAndRemoveLeft(value, prefix string) string {
	return trimAndRemoveLeft(value, prefix, false)
}

// TrimAndRemoveLeftIgnoreCase is TrimAndRemoveLeft under simple lowercase
// folding.
func TrimAndRemoveLeftIgnoreCase(value, prefix string) string {
	return trimAndRemoveLeft(value, prefix, true)
}

func trimAndRemoveLeft(value, prefix string, fold bool) string {
	trimmed := Trim(value)
	result := removeLeft(trimmed, prefix, fold)

	if result == trimmed {
		return trimmed
	}
	return TrimLeft(result)
}

// TrimAndRemoveLeftChars trims value, strips the leading run of set members
// from the trimmed result, then re-trims the left edge only if the strip
// changed the value.
func TrimAndRemoveLeftChars(value string, chars []rune) string {
	trimmed := Trim(value)
	result := RemoveLeftChars(trimmed, chars)

	if result == trimmed {
		return trimmed
	}
	return TrimLeft(result)
}

// TrimAndRemoveRight trims value, removes suffix from the trimmed result by
// exact comparison, then re-trims the right edge only if removal changed the
// value.
func TrimAndRemoveRight(value, suffix string) string {
	return trimAndRemoveRight(value, suffix, false)
}

// TrimAndRemoveRightIgnoreCase is TrimAndRemoveRight under simple lowercase
// folding.
func TrimAndRemoveRightIgnoreCase(value, suffix string) string {
	return trimAndRemoveRight(value, suffix, true)
}

func trimAndRemoveRight(value, suffix string, fold bool) string {
	trimmed := Trim(value)
	result := removeRight(trimmed, suffix, fold)

	if result == trimmed {
		return trimmed
	}
	return TrimRight(result)
}

// TrimAndRemoveRightChars trims value, strips the trailing run of set members
// from the trimmed result, then re-trims the right edge only if the strip
// changed the value.
func TrimAndRemoveRightChars(value string, chars []rune) string {
	trimmed := Trim(value)
	result := RemoveRightChars(trimmed, chars)

	if result == trimmed {
		return trimmed
	}
	return TrimRight(result)
}
