// File: split.go
// Title: Delimiter Splitting, Joining, and Concatenation
// Description: Implements single-scan splitting on a delimiter set and the
//              two join surfaces. The sequence join and the positional join
//              apply different separator rules around skipped nil entries;
//              both behaviors are part of the contract and stay distinct.
// Author: delafer
// Version: v0.1.0
// Created: 2026-06-28
// Modified: 2026-08-14
//
// Change History:
// - 2026-06-28 v0.1.0: Initial implementation

package strutil

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/delafer/procyon/utils/slicex"
)

// Split splits value at every code unit found in delimiters and drops empty
// segments, so consecutive delimiters and leading or trailing delimiters
// produce nothing. An empty value yields a nil result.
func Split(value string, delimiters ...rune) []string {
	return split(value, true, delimiters)
}

// SplitPreserveEmpty splits value at every code unit found in delimiters and
// keeps empty segments: consecutive delimiters produce empty entries and a
// delimiter at the very end produces one trailing empty entry. An empty
// value still yields a nil result.
func SplitPreserveEmpty(value string, delimiters ...rune) []string {
	return split(value, false, delimiters)
}

func split(value string, removeEmptyEntries bool, delimiters []rune) []string {
	if value == "" {
		return nil
	}

	var parts []string
	start := 0

	for i, r := range value {
		if !slicex.Contains(delimiters, r) {
			continue
		}

		if i != start || !removeEmptyEntries {
			parts = append(parts, value[start:i])
		}

		start = i + utf8.RuneLen(r)

		if !removeEmptyEntries && start == len(value) {
			parts = append(parts, "")
		}
	}

	if start < len(value) {
		parts = append(parts, value[start:])
	}

	return parts
}

// Join concatenates the string forms of values, skipping nil entries.
// The separator is inserted only between two consecutive appended entries,
// so skipped entries never produce doubled or leading separators.
func Join(separator string, values ...any) string {
	var sb strings.Builder
	appendSeparator := false

	for _, v := range values {
		s, ok := stringForm(v)
		if !ok {
			continue
		}
		if appendSeparator {
			sb.WriteString(separator)
		}
		appendSeparator = true
		sb.WriteString(s)
	}

	return sb.String()
}

// JoinStrings concatenates the present entries of a positional list. Nil
// entries are skipped in the output, but the separator decision is keyed on
// the position (index not zero), not on whether anything was already
// appended. A nil entry at position zero therefore still causes a separator
// before the first appended entry, unlike Join. Both rules are deliberate.
func JoinStrings(separator string, values ...*string) string {
	if len(values) == 0 {
		return ""
	}

	var sb strings.Builder

	for i, v := range values {
		if v == nil {
			continue
		}
		if i != 0 {
			sb.WriteString(separator)
		}
		sb.WriteString(*v)
	}

	return sb.String()
}

// Concat is Join with no separator.
func Concat(values ...any) string {
	return Join("", values...)
}

// ConcatStrings is JoinStrings with no separator.
func ConcatStrings(values ...*string) string {
	return JoinStrings("", values...)
}

// stringForm resolves a join entry to its textual form. Untyped nil and nil
// *string entries are absent; everything else renders via fmt.
func stringForm(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case *string:
		if t == nil {
			return "", false
		}
		return *t, true
	default:
		return fmt.Sprint(t), true
	}
}
