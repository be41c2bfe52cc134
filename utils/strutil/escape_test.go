// File: escape_test.go
// Title: Unit Tests for Character and String Escaping
// Description: Tests the structural and hex escape rules for single code
//              units and whole values against a golden vector file, and pins
//              down the deliberate divergence between the two surfaces.
// Author: delafer
// Version: v0.1.0
// Created: 2026-06-26
// Modified: 2026-08-14

package strutil

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

type escapeVector struct {
	Input   string `yaml:"input"`
	Escaped string `yaml:"escaped"`
	Quoted  string `yaml:"quoted"`
}

type escapeVectors struct {
	Runes   []escapeVector `yaml:"runes"`
	Strings []escapeVector `yaml:"strings"`
}

func loadEscapeVectors(t *testing.T) escapeVectors {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", "escape_vectors.yaml"))
	if err != nil {
		t.Fatalf("reading escape vectors: %v", err)
	}

	var vectors escapeVectors
	if err := yaml.Unmarshal(data, &vectors); err != nil {
		t.Fatalf("decoding escape vectors: %v", err)
	}
	if len(vectors.Runes) == 0 || len(vectors.Strings) == 0 {
		t.Fatal("escape vector file is incomplete")
	}
	return vectors
}

func TestEscapeVectors(t *testing.T) {
	vectors := loadEscapeVectors(t)

	for _, v := range vectors.Runes {
		ch := []rune(v.Input)[0]
		if got := EscapeRune(ch); got != v.Escaped {
			t.Errorf("EscapeRune(%q) = %q; want %q", ch, got, v.Escaped)
		}
		if got := QuoteRune(ch); got != v.Quoted {
			t.Errorf("QuoteRune(%q) = %q; want %q", ch, got, v.Quoted)
		}
	}

	for _, v := range vectors.Strings {
		if got := Escape(v.Input); got != v.Escaped {
			t.Errorf("Escape(%q) = %q; want %q", v.Input, got, v.Escaped)
		}
		if got := Quote(v.Input); got != v.Quoted {
			t.Errorf("Quote(%q) = %q; want %q", v.Input, got, v.Quoted)
		}
	}
}

func TestEscapeRuneStructural(t *testing.T) {
	tests := []struct {
		ch       rune
		expected string
	}{
		{'\\', `\\`},
		{0, `\0`},
		{'\b', `\b`},
		{'\f', `\f`},
		{'\n', `\n`},
		{'\r', `\r`},
		{'\t', `\t`},
		{'"', `\"`},
	}

	for _, tt := range tests {
		if got := EscapeRune(tt.ch); got != tt.expected {
			t.Errorf("EscapeRune(%U) = %q; want %q", tt.ch, got, tt.expected)
		}
	}
}

func TestEscapeRuneSurrogate(t *testing.T) {
	if got := EscapeRune(rune(0xD800)); got != `\ud800` {
		t.Errorf("EscapeRune(U+D800) = %q; want %q", got, `\ud800`)
	}
}

// The rune and string surfaces do not escape the same set of units. NUL and
// sub-0xC0 controls are structural or hex-escaped for runes but pass through
// strings untouched, and the string hex form carries a trailing semicolon.
func TestEscapeSurfaceDivergence(t *testing.T) {
	if got := EscapeRune(0); got != `\0` {
		t.Errorf("EscapeRune(NUL) = %q; want %q", got, `\0`)
	}
	if got := Escape("a\x00b"); got != "a\x00b" {
		t.Errorf("Escape with NUL = %q; want it passed through", got)
	}

	if got := EscapeRune('\a'); got != "\\u0007" {
		t.Errorf("EscapeRune(BEL) = %q; want %q", got, "\\u0007")
	}
	if got := Escape("\a"); got != "\a" {
		t.Errorf("Escape(BEL) = %q; want it passed through", got)
	}

	if got := EscapeRune('é'); got != "\\u00e9" {
		t.Errorf("EscapeRune(é) = %q; want %q", got, "\\u00e9")
	}
	if got := Escape("é"); got != "\\u00e9;" {
		t.Errorf("Escape(é) = %q; want %q", got, "\\u00e9;")
	}
}
