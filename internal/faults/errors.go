package faults

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfig marks missing or unreadable configuration and metadata files.
	ErrConfig = errors.New("configuration error")
	// ErrFilesystem marks unreadable directories or failed file operations.
	ErrFilesystem = errors.New("filesystem error")
	// ErrEncoding marks text that could not be decoded.
	ErrEncoding = errors.New("encoding error")
	// ErrData marks malformed per-record values such as RA/Dec strings.
	ErrData = errors.New("data error")
)

// Wrap builds an error message carrying component context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrFilesystem
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "failure"
	}
	return strings.Join(parts, ": ")
}
