// Package integration provides integration tests for the procyon library.
//
// Package: integration
// Title: Procyon Integration Tests
// Description: This package contains integration tests that verify the correct
//              interaction between the procyon packages, ensuring consistent
//              error handling, contract-violation reporting, and performance
//              characteristics across package boundaries.
// Author: delafer
// Version: v0.1.0
// Created: 2026-06-30
// Modified: 2026-08-14
//
// Change History:
// - 2026-06-30 v0.1.0: Initial implementation of integration test suite
//
// Test Categories:
//
// Module Integration Tests (module_integration_test.go):
// - Structured error flow from verify contract checks through strutil panics
// - Error code and detail consistency across core/error and core/errors
// - Realistic text pipelines combining trimming, removal, splitting and hashing
// - Comparison mode decoding from configuration text
//
// Performance Tests (performance_test.go):
// - Benchmarks for realistic multi-package text processing pipelines
package integration
