// File: pad.go
// Title: Padding, Repetition, and UTF-8 Size Estimation
// Description: Implements space padding to a minimum width, character
//              repetition, and the estimated UTF-8 byte count of a value.
//              Widths and counts are measured in UTF-16 code units.
// Author: delafer
// Version: v0.1.0
// Created: 2026-06-26
// Modified: 2026-08-14
//
// Change History:
// - 2026-06-26 v0.1.0: Initial implementation

package strutil

import (
	"strings"

	"github.com/delafer/procyon/core/verify"
)

// PadLeft prepends spaces to value until it is at least width code units
// long. A value already at or beyond the width is returned unchanged; the
// function never truncates. A negative width panics with an invalid-argument
// error.
func PadLeft(value string, width int) string {
	verify.NonNegative(width, "width")

	n := codeUnitCount(value)
	if n >= width {
		return value
	}
	return strings.Repeat(" ", width-n) + value
}

// PadRight appends spaces to value until it is at least width code units
// long. A value already at or beyond the width is returned unchanged; the
// function never truncates. A negative width panics with an invalid-argument
// error.
func PadRight(value string, width int) string {
	verify.NonNegative(width, "width")

	n := codeUnitCount(value)
	if n >= width {
		return value
	}
	return value + strings.Repeat(" ", width-n)
}

// Repeat returns count copies of ch. A count of zero yields the empty
// string; a negative count panics with an invalid-argument error.
func Repeat(ch rune, count int) string {
	verify.NonNegative(count, "count")

	if count == 0 {
		return ""
	}
	return strings.Repeat(string(ch), count)
}

// UTF8ByteCount estimates the UTF-8 encoded size of value: one byte per code
// unit up to 0x7F, two bytes through 0x07FF, three bytes above. Each half of
// a surrogate pair is counted as an independent three-byte unit, so
// characters outside the BMP count six bytes rather than the four a real
// encoder produces. The approximation is part of the contract; do not
// "correct" it.
func UTF8ByteCount(value string) int {
	if isASCII(value) {
		return len(value)
	}

	count := 0
	for _, r := range value {
		switch {
		case r > maxBMP:
			count += 6
		case r > 0x07FF:
			count += 3
		case r > 0x7F:
			count += 2
		default:
			count++
		}
	}
	return count
}
