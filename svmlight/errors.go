// SPDX-License-Identifier: MIT
// Package svmlight: sentinel error set and the ParseError wrapper.
// Sentinels classify the syntax failure; ParseError pins it to a line.
// Tests and callers match both through errors.Is / errors.As.

package svmlight

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyLine is returned for a zero-length input line. The format
	// has no blank-line separator; emptiness is always a mistake.
	ErrEmptyLine = errors.New("svmlight: empty line")

	// ErrInvalidLabel indicates the first token is missing or does not
	// parse as a finite real number.
	ErrInvalidLabel = errors.New("svmlight: non-numeric or missing label")

	// ErrMalformedToken indicates the qid-style token after the label
	// parsed neither as qid:<number> nor as <index>:<value>.
	ErrMalformedToken = errors.New("svmlight: malformed token after label")

	// ErrMalformedFeature indicates a feature token that is not
	// <non-negative integer>:<finite real> with a ':' separator.
	ErrMalformedFeature = errors.New("svmlight: malformed feature pair")

	// ErrIndexUnderflow is returned when rebasing to zero-based indices
	// meets a stored index 0 (the input was not one-based after all).
	ErrIndexUnderflow = errors.New("svmlight: index underflow while rebasing")
)

// ParseError is a syntax failure pinned to its input line. Line is
// 1-based; Text is the raw line as read (newline stripped). Err wraps one
// of the sentinel errors above, possibly with token context.
type ParseError struct {
	Line int
	Text string
	Err  error
}

// Error renders the underlying failure with the line diagnostics attached.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%v [line %d: %q]", e.Err, e.Line, e.Text)
}

// Unwrap exposes the wrapped sentinel for errors.Is.
func (e *ParseError) Unwrap() error { return e.Err }
