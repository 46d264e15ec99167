// Package faults defines the sentinel error taxonomy shared across the
// catalog engine and CLI tools.
//
// Errors are tagged with one of the exported markers so callers can classify
// failures with errors.Is: configuration problems are fatal for batch tools
// but only skip the affected catalog during a library load, filesystem
// problems are skipped silently, and malformed per-record data never aborts a
// load at all.
package faults
