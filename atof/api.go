// SPDX-License-Identifier: MIT
// Package: lexical/atof
//
// api.go — complete-mode and partial-mode float parsers.

package atof

import (
	"math"

	"github.com/katalvlaran/lexical/core"
	"github.com/katalvlaran/lexical/options"
)

// Parse64 parses s as a float64, requiring the whole input to be one
// numeral. Failures come back as *core.ParseError with the byte offset
// where scanning stopped.
func Parse64(s string, opts options.ParseFloatOptions) (float64, error) {
	tok, ok := scan(s, opts)
	if !ok {
		return 0, scanFailure(s)
	}
	if tok.consumed != len(s) {
		return 0, core.NewParseError(tok.consumed, core.ErrSyntax)
	}
	return finish64(&tok, opts), nil
}

// Parse32 parses s as a float32, requiring the whole input to be one
// numeral.
func Parse32(s string, opts options.ParseFloatOptions) (float32, error) {
	tok, ok := scan(s, opts)
	if !ok {
		return 0, scanFailure(s)
	}
	if tok.consumed != len(s) {
		return 0, core.NewParseError(tok.consumed, core.ErrSyntax)
	}
	return finish32(&tok, opts), nil
}

// Parse64Partial parses the longest valid numeral prefix of s and returns
// the value with the number of bytes consumed; (0, 0) when no prefix
// parses.
func Parse64Partial(s string, opts options.ParseFloatOptions) (float64, int) {
	tok, ok := scan(s, opts)
	if !ok {
		return 0, 0
	}
	return finish64(&tok, opts), tok.consumed
}

// Parse32Partial parses the longest valid numeral prefix of s and returns
// the value with the number of bytes consumed; (0, 0) when no prefix
// parses.
func Parse32Partial(s string, opts options.ParseFloatOptions) (float32, int) {
	tok, ok := scan(s, opts)
	if !ok {
		return 0, 0
	}
	return finish32(&tok, opts), tok.consumed
}

// finish64 resolves special tokens, then hands digits to the converter.
func finish64(tok *token, opts options.ParseFloatOptions) float64 {
	switch tok.special {
	case specialNaN:
		return math.NaN()
	case specialInf:
		return signed64(math.Inf(1), tok.neg)
	}
	return convert64(tok, opts)
}

func finish32(tok *token, opts options.ParseFloatOptions) float32 {
	switch tok.special {
	case specialNaN:
		return float32(math.NaN())
	case specialInf:
		return float32(signed64(math.Inf(1), tok.neg))
	}
	return convert32(tok, opts)
}

// scanFailure classifies an input with no numeral at all: empty (possibly
// after a sign) or plain malformed.
func scanFailure(s string) error {
	off := 0
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		off = 1
	}
	if off == len(s) {
		return core.NewParseError(off, core.ErrEmpty)
	}
	return core.NewParseError(off, core.ErrSyntax)
}
