// File: performance_test.go
// Title: Procyon Performance Integration Tests
// Description: Benchmarks for realistic multi-package text processing
//              pipelines, measuring the combined cost of trimming, affix
//              removal, splitting and hashing.
// Author: delafer
// Version: v0.1.0
// Created: 2026-06-30
// Modified: 2026-08-14
//
// Change History:
// - 2026-06-30 v0.1.0: Initial implementation of performance integration tests

package integration

import (
	"strings"
	"testing"

	"github.com/delafer/procyon/utils/strutil"
)

// BenchmarkFieldPipeline benchmarks the common pattern of cleaning a raw
// line, stripping its prefix, and splitting it into fields.
func BenchmarkFieldPipeline(b *testing.B) {
	lines := []string{
		"  env:alpha,beta,gamma  ",
		"\tenv:one,two,three,four\n",
		"env:single",
		"  env:a,,b,,c  ",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		line := lines[i%len(lines)]
		cleaned := strutil.TrimAndRemoveLeft(line, "env:")
		_ = strutil.Split(cleaned, ',')
	}
}

// BenchmarkHashDeduplication benchmarks hashing a batch of fields the way a
// case-insensitive de-duplication pass would.
func BenchmarkHashDeduplication(b *testing.B) {
	fields := strings.Split(strings.Repeat("Alpha,beta,GAMMA,delta,", 8), ",")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, f := range fields {
			_ = strutil.HashIgnoreCase(f)
		}
	}
}

// BenchmarkEscapePipeline benchmarks quoting values for log-style output.
func BenchmarkEscapePipeline(b *testing.B) {
	values := []string{
		"plain value",
		"tab\tseparated\tvalue",
		"quoted \"value\" with café",
		"multi\nline\nvalue",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = strutil.Quote(values[i%len(values)])
	}
}
