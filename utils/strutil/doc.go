// File: doc.go
// Title: Package Documentation for strutil
// Description: Package strutil provides the locale-independent text utilities
//              of the procyon foundation: ordinal comparison, predicates,
//              hashing, affix trimming, padding, escaping, and splitting.
// Author: delafer
// Version: v0.2.0
// Created: 2026-06-22
// Modified: 2026-08-14
//
// Change History:
// - 2026-06-22 v0.1.0: Initial implementation
// - 2026-07-30 v0.2.0: Comparison text marshalling, documentation pass

// Package strutil provides locale-independent text utilities.
//
// Overview
//
// The package is a leaf library of pure functions over text values. It
// offers ordinal (raw code unit) string comparison with an optional simple
// lowercase fold, null/empty/whitespace predicates, 32-bit polynomial
// hashing, prefix/suffix tests built on a bounds-safe substring comparison,
// affix trimming and removal, space padding, character and string escaping,
// UTF-8 size estimation, and delimiter-based splitting.
//
// Every operation is deterministic and total once its argument contract is
// satisfied, and the results are stable across platforms and locales, which
// makes the package suitable for wire formats, cache keys, and other
// contexts where two independent implementations must agree bit for bit.
//
// Code units
//
// All lengths, offsets, and per-character transforms are defined over UTF-16
// code units, not bytes and not runes. A character outside the Basic
// Multilingual Plane counts as two units. This keeps comparison results,
// hash values, and escape output aligned with the reference implementation
// this package interoperates with. ASCII-only inputs take a fast path that
// never transcodes.
//
// Absent values
//
// Operations where an absent value is a legal, semantically distinct input
// accept *string: Equal, Compare, IsNilOrEmpty, IsNilOrWhitespace, and the
// entries of JoinStrings. A nil pointer equals only another nil and sorts
// before any present value. Operations that require a present value take
// plain string; for them the type system replaces the presence check.
//
// Comparison modes
//
// Comparison-sensitive operations are parameterized by a Comparison mode,
// Ordinal or OrdinalIgnoreCase, which resolves to a Comparer strategy:
//
//	a, b := "Straße", "STRASSE"
//	strutil.OrdinalIgnoreCase.Equal(&a, &b) // false: simple fold only
//
// The ignore-case fold lowercases one code unit at a time; there is no full
// Unicode case folding and no multi-codepoint expansion.
//
// Error handling
//
// There are exactly two failure classes. Contract violations (a negative
// length, offset, width, or count, or a nil character set) panic immediately
// with a structured error from core/errors, before any work is performed.
// Everything that could merely "not match" (an out-of-range substring
// window, an affix longer than the value, an unrecognized boolean literal)
// returns a defined false or unchanged result and never fails:
//
//	strutil.SubstringEquals("abc", 2, "cd", 0, 2, strutil.Ordinal) // false
//	strutil.RemoveLeft("value", "longer-than-value")               // "value"
//
// Known asymmetries
//
// Several deliberate asymmetries are part of the contract and documented on
// the functions involved: Trim strips by the ASCII-style "at or below
// space" rule while IsNilOrWhitespace uses the Unicode whitespace predicate;
// Escape applies a narrower hex-escape rule (and a different hex format)
// than EscapeRune; Join and JoinStrings place separators differently around
// skipped nil entries; and UTF8ByteCount counts each surrogate half as an
// independent three-byte unit.
//
// Thread safety
//
// The package holds no mutable state. Every function allocates and returns
// fresh results and may be called concurrently without locking.
package strutil
