// File: escape.go
// Title: Character and String Escaping
// Description: Implements the structural two-character escapes and hex
//              escaping for single code units and whole values. The two
//              surfaces deliberately diverge: the rune form escapes a broad
//              class of units as \uXXXX, while the string form hex-escapes
//              only units at or above 0xC0 and appends a trailing semicolon.
// Author: delafer
// Version: v0.1.0
// Created: 2026-06-26
// Modified: 2026-08-14
//
// Change History:
// - 2026-06-26 v0.1.0: Initial implementation

package strutil

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf16"
)

// hexEscapeFloor is the lowest code unit the escapers hex-escape
// unconditionally.
const hexEscapeFloor = 0xC0

// EscapeRune renders a single code unit in escaped form. The structural
// units map to fixed two-character sequences; units at or above 0xC0, ISO
// control characters, surrogate halves, and Unicode whitespace other than
// the plain space render as \uXXXX with four lowercase hex digits; everything
// else passes through unchanged.
//
// Values above the BMP are not single code units and format with more than
// four digits.
func EscapeRune(ch rune) string {
	switch ch {
	case '\\':
		return `\\`
	case 0:
		return `\0`
	case '\b':
		return `\b`
	case '\f':
		return `\f`
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\t':
		return `\t`
	case '"':
		return `\"`
	}

	if needsHexEscape(ch) {
		return fmt.Sprintf(`\u%04x`, ch)
	}
	return string(ch)
}

// QuoteRune renders a single code unit the way EscapeRune does, wrapped in
// single quotes, escaped form included.
func QuoteRune(ch rune) string {
	return "'" + EscapeRune(ch) + "'"
}

func needsHexEscape(ch rune) bool {
	return ch >= hexEscapeFloor ||
		unicode.IsControl(ch) ||
		utf16.IsSurrogate(ch) ||
		unicode.IsSpace(ch) && ch != ' '
}

// Escape renders every code unit of value. The seven structural units shared
// with EscapeRune use their two-character escapes; units at or above 0xC0
// render as \uXXXX followed by a semicolon. All other units pass through
// unchanged, including NUL, sub-0xC0 control characters, and non-space
// whitespace that EscapeRune would hex-escape. The narrower catch-all is
// part of the contract and must not be harmonized with the rune form.
func Escape(value string) string {
	return escapeString(value, false)
}

// Quote renders value the way Escape does, wrapped in double quotes.
func Quote(value string) string {
	return escapeString(value, true)
}

func escapeString(value string, quote bool) string {
	var sb strings.Builder

	if quote {
		sb.WriteByte('"')
	}

	for _, r := range value {
		if r > maxBMP {
			hi, lo := utf16.EncodeRune(r)
			writeEscapedCodeUnit(&sb, uint16(hi))
			writeEscapedCodeUnit(&sb, uint16(lo))
			continue
		}
		writeEscapedCodeUnit(&sb, uint16(r))
	}

	if quote {
		sb.WriteByte('"')
	}

	return sb.String()
}

func writeEscapedCodeUnit(sb *strings.Builder, u uint16) {
	switch u {
	case '\t':
		sb.WriteString(`\t`)
	case '\b':
		sb.WriteString(`\b`)
	case '\n':
		sb.WriteString(`\n`)
	case '\r':
		sb.WriteString(`\r`)
	case '\f':
		sb.WriteString(`\f`)
	case '"':
		sb.WriteString(`\"`)
	case '\\':
		sb.WriteString(`\\`)
	default:
		if u >= hexEscapeFloor {
			fmt.Fprintf(sb, `\u%04x;`, u)
		} else {
			sb.WriteRune(rune(u))
		}
	}
}
