// File: substring.go
// Title: Bounds-Safe Substring Comparison
// Description: Implements the substring-window comparison primitive and the
//              prefix/suffix tests defined in terms of it. Out-of-range
//              windows are a legal "no match" outcome, never an error;
//              negative offsets and lengths are contract violations.
// Author: delafer
// Version: v0.1.0
// Created: 2026-06-24
// Modified: 2026-08-14
//
// Change History:
// - 2026-06-24 v0.1.0: Initial implementation

package strutil

import (
	"github.com/delafer/procyon/core/verify"
)

// SubstringEquals compares length code units of value starting at offset
// against length code units of comparand starting at comparandOffset, under
// the given comparison mode.
//
// A window that exceeds either sequence returns false. Negative offset,
// comparandOffset, or length panics with an invalid-argument error.
func SubstringEquals(value string, offset int, comparand string, comparandOffset, length int, comparison Comparison) bool {
	verify.NonNegative(offset, "offset")
	verify.NonNegative(comparandOffset, "comparandOffset")
	verify.NonNegative(length, "length")

	fold := comparison.foldsCase()

	if isASCII(value) && isASCII(comparand) {
		if offset+length > len(value) || comparandOffset+length > len(comparand) {
			return false
		}
		for i := 0; i < length; i++ {
			vc, cc := value[offset+i], comparand[comparandOffset+i]
			if vc == cc || fold && toLowerASCII(vc) == toLowerASCII(cc) {
				continue
			}
			return false
		}
		return true
	}

	uv, uc := encodeUTF16(value), encodeUTF16(comparand)
	if offset+length > len(uv) || comparandOffset+length > len(uc) {
		return false
	}
	for i := 0; i < length; i++ {
		vc, cc := uv[offset+i], uc[comparandOffset+i]
		if vc == cc || fold && foldCodeUnit(vc) == foldCodeUnit(cc) {
			continue
		}
		return false
	}
	return true
}

// StartsWith reports whether value begins with prefix by exact code unit
// comparison. A prefix longer than value is false, never an error.
func StartsWith(value, prefix string) bool {
	return SubstringEquals(value, 0, prefix, 0, codeUnitCount(prefix), Ordinal)
}

// StartsWithIgnoreCase is StartsWith under simple lowercase folding.
func StartsWithIgnoreCase(value, prefix string) bool {
	return SubstringEquals(value, 0, prefix, 0, codeUnitCount(prefix), OrdinalIgnoreCase)
}

// EndsWith reports whether value ends with suffix by exact code unit
// comparison. A suffix longer than value is false, never an error.
func EndsWith(value, suffix string) bool {
	suffixLength := codeUnitCount(suffix)
	offset := codeUnitCount(value) - suffixLength

	return offset >= 0 &&
		SubstringEquals(value, offset, suffix, 0, suffixLength, Ordinal)
}

// EndsWithIgnoreCase is EndsWith under simple lowercase folding.
func EndsWithIgnoreCase(value, suffix string) bool {
	suffixLength := codeUnitCount(suffix)
	offset := codeUnitCount(value) - suffixLength

	return offset >= 0 &&
		SubstringEquals(value, offset, suffix, 0, suffixLength, OrdinalIgnoreCase)
}
