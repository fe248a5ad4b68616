// SPDX-License-Identifier: MIT
// Package: lexical/core
//
// errors.go — the shared parse-failure vocabulary.
//
// Both text → integer and text → float conversion report failures through
// the same ParseError wrapper so callers branch with errors.Is on a single
// set of sentinels regardless of the numeric kind being parsed.

package core

import (
	"errors"
	"strconv"
)

// Sentinel causes carried inside a ParseError.
var (
	// ErrEmpty reports input with no digits at all (empty string, or a bare
	// sign / separator run).
	ErrEmpty = errors.New("lexical: empty input")
	// ErrSyntax reports a malformed numeral (stray byte, misplaced
	// separator, dangling exponent, trailing garbage in complete mode).
	ErrSyntax = errors.New("lexical: invalid syntax")
	// ErrRange reports a numeral whose value does not fit the target
	// integer type.
	ErrRange = errors.New("lexical: value out of range")
)

// ParseError locates a parse failure: Err is one of the sentinels above and
// Offset is the byte index where the scanner gave up (len(input) for
// truncated input such as a dangling exponent).
type ParseError struct {
	Offset int
	Err    error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return e.Err.Error() + " at offset " + strconv.Itoa(e.Offset)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError wraps a sentinel with the failing byte offset.
func NewParseError(offset int, err error) error {
	return &ParseError{Offset: offset, Err: err}
}
