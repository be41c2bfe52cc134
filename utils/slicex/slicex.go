// File: slicex.go
// Title: Generic Slice Membership Helpers
// Description: Implements the small set of generic slice search helpers the
//              procyon text utilities delegate to, chiefly "is this element a
//              member of this fixed set" for character sets.
// Author: delafer
// Version: v0.1.0
// Created: 2026-06-20
// Modified: 2026-08-11
//
// Change History:
// - 2026-06-20 v0.1.0: Initial implementation with membership and search helpers

package slicex

// Contains reports whether element is present in slice. A nil slice contains
// nothing.
func Contains[T comparable](slice []T, element T) bool {
	for _, item := range slice {
		if item == element {
			return true
		}
	}
	return false
}

// ContainsBy reports whether any element of slice matches the predicate.
func ContainsBy[T any](slice []T, predicate func(T) bool) bool {
	if predicate == nil {
		return false
	}
	for _, item := range slice {
		if predicate(item) {
			return true
		}
	}
	return false
}

// IndexOf returns the index of the first occurrence of element in slice,
// or -1 when it is not present.
func IndexOf[T comparable](slice []T, element T) int {
	for i, item := range slice {
		if item == element {
			return i
		}
	}
	return -1
}
