// File: verify_test.go
// Title: Unit Tests for Argument Contract Checks
// Description: Tests that contract violations panic with the expected
//              structured error and that valid arguments pass through.
// Author: delafer
// Version: v0.1.0
// Created: 2026-06-20
// Modified: 2026-08-11

package verify

import (
	"testing"

	procerror "github.com/delafer/procyon/core/error"
)

// panicCode runs fn and returns the code of the structured error it panicked
// with, or CodeUnknown when fn returned normally.
func panicCode(t *testing.T, fn func()) (code procerror.Code) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %v is not an error", r)
		}
		code = procerror.GetCode(err)
	}()
	fn()
	return procerror.CodeUnknown
}

func TestNonNegative(t *testing.T) {
	tests := []struct {
		name     string
		value    int
		expected procerror.Code
	}{
		{"zero passes", 0, procerror.CodeUnknown},
		{"positive passes", 42, procerror.CodeUnknown},
		{"negative panics", -1, procerror.CodeValueOutOfRange},
		{"large negative panics", -1 << 30, procerror.CodeValueOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := panicCode(t, func() { NonNegative(tt.value, "length") })
			if code != tt.expected {
				t.Errorf("NonNegative(%d) panic code = %v; want %v", tt.value, code, tt.expected)
			}
		})
	}
}

func TestNonNegativeReturnsValue(t *testing.T) {
	if got := NonNegative(7, "width"); got != 7 {
		t.Errorf("NonNegative(7) = %d; want 7", got)
	}
}

func TestNotNil(t *testing.T) {
	s := "value"
	if got := NotNil(&s, "value"); got != &s {
		t.Error("NotNil() did not return its argument")
	}

	code := panicCode(t, func() { NotNil[string](nil, "value") })
	if code != procerror.CodeRequiredField {
		t.Errorf("NotNil(nil) panic code = %v; want %v", code, procerror.CodeRequiredField)
	}
}

func TestNotNilSlice(t *testing.T) {
	t.Run("non-nil passes", func(t *testing.T) {
		chars := []rune{'a', 'b'}
		if got := NotNilSlice(chars, "chars"); len(got) != 2 {
			t.Errorf("NotNilSlice() = %v; want original slice", got)
		}
	})

	t.Run("empty non-nil passes", func(t *testing.T) {
		code := panicCode(t, func() { NotNilSlice([]rune{}, "chars") })
		if code != procerror.CodeUnknown {
			t.Errorf("NotNilSlice(empty) panicked with %v; want no panic", code)
		}
	})

	t.Run("nil panics", func(t *testing.T) {
		code := panicCode(t, func() { NotNilSlice[rune](nil, "chars") })
		if code != procerror.CodeRequiredField {
			t.Errorf("NotNilSlice(nil) panic code = %v; want %v", code, procerror.CodeRequiredField)
		}
	})
}
