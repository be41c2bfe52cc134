// File: slicex_test.go
// Title: Unit Tests for Slice Membership Helpers
// Description: Tests membership and search behavior over typed slices,
//              including nil-slice and empty-slice handling.
// Author: delafer
// Version: v0.1.0
// Created: 2026-06-20
// Modified: 2026-08-11

package slicex

import "testing"

func TestContains(t *testing.T) {
	tests := []struct {
		name     string
		slice    []rune
		element  rune
		expected bool
	}{
		{"present", []rune{',', ';', '\t'}, ';', true},
		{"absent", []rune{',', ';'}, '.', false},
		{"empty slice", []rune{}, ',', false},
		{"nil slice", nil, ',', false},
		{"single element match", []rune{' '}, ' ', true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Contains(tt.slice, tt.element); got != tt.expected {
				t.Errorf("Contains(%q, %q) = %v; want %v", string(tt.slice), tt.element, got, tt.expected)
			}
		})
	}
}

func TestContainsStrings(t *testing.T) {
	values := []string{"alpha", "beta"}

	if !Contains(values, "beta") {
		t.Error("Contains(values, beta) = false; want true")
	}
	if Contains(values, "gamma") {
		t.Error("Contains(values, gamma) = true; want false")
	}
}

func TestContainsBy(t *testing.T) {
	values := []int{1, 3, 5, 8}

	if !ContainsBy(values, func(v int) bool { return v%2 == 0 }) {
		t.Error("ContainsBy(even) = false; want true")
	}
	if ContainsBy(values, func(v int) bool { return v > 100 }) {
		t.Error("ContainsBy(>100) = true; want false")
	}
	if ContainsBy(values, nil) {
		t.Error("ContainsBy(nil predicate) = true; want false")
	}
}

func TestIndexOf(t *testing.T) {
	tests := []struct {
		name     string
		slice    []string
		element  string
		expected int
	}{
		{"first", []string{"a", "b", "c"}, "a", 0},
		{"middle", []string{"a", "b", "c"}, "b", 1},
		{"absent", []string{"a", "b"}, "z", -1},
		{"nil slice", nil, "a", -1},
		{"first occurrence wins", []string{"x", "y", "x"}, "x", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IndexOf(tt.slice, tt.element); got != tt.expected {
				t.Errorf("IndexOf(%v, %q) = %d; want %d", tt.slice, tt.element, got, tt.expected)
			}
		})
	}
}
