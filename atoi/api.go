// SPDX-License-Identifier: MIT
// Package: lexical/atoi
//
// api.go — complete-mode and partial-mode integer parsers.

package atoi

import (
	"math"

	"github.com/katalvlaran/lexical/core"
	"github.com/katalvlaran/lexical/options"
)

// ParseUint64 parses s as an unsigned 64-bit integer, requiring the whole
// input to be consumed.
func ParseUint64(s string, opts options.ParseIntegerOptions) (uint64, error) {
	v, n, err := parseUnsigned(s, opts, math.MaxUint64)
	if err != nil {
		return 0, err
	}
	if n != len(s) {
		return 0, core.NewParseError(n, core.ErrSyntax)
	}
	return v, nil
}

// ParseUint32 parses s as an unsigned 32-bit integer, requiring the whole
// input to be consumed.
func ParseUint32(s string, opts options.ParseIntegerOptions) (uint32, error) {
	v, n, err := parseUnsigned(s, opts, math.MaxUint32)
	if err != nil {
		return 0, err
	}
	if n != len(s) {
		return 0, core.NewParseError(n, core.ErrSyntax)
	}
	return uint32(v), nil
}

// ParseInt64 parses s as a signed 64-bit integer, requiring the whole
// input to be consumed.
func ParseInt64(s string, opts options.ParseIntegerOptions) (int64, error) {
	v, neg, n, err := parseSigned(s, opts, math.MaxInt64)
	if err != nil {
		return 0, err
	}
	if n != len(s) {
		return 0, core.NewParseError(n, core.ErrSyntax)
	}
	return applySign64(v, neg), nil
}

// ParseInt32 parses s as a signed 32-bit integer, requiring the whole
// input to be consumed.
func ParseInt32(s string, opts options.ParseIntegerOptions) (int32, error) {
	v, neg, n, err := parseSigned(s, opts, math.MaxInt32)
	if err != nil {
		return 0, err
	}
	if n != len(s) {
		return 0, core.NewParseError(n, core.ErrSyntax)
	}
	return int32(applySign64(v, neg)), nil
}

// ParseUint64Partial parses the longest valid numeral prefix of s and
// returns the value alongside the number of bytes consumed.
func ParseUint64Partial(s string, opts options.ParseIntegerOptions) (uint64, int, error) {
	return parseUnsigned(s, opts, math.MaxUint64)
}

// ParseUint32Partial parses the longest valid numeral prefix of s and
// returns the value alongside the number of bytes consumed.
func ParseUint32Partial(s string, opts options.ParseIntegerOptions) (uint32, int, error) {
	v, n, err := parseUnsigned(s, opts, math.MaxUint32)
	return uint32(v), n, err
}

// ParseInt64Partial parses the longest valid numeral prefix of s and
// returns the value alongside the number of bytes consumed.
func ParseInt64Partial(s string, opts options.ParseIntegerOptions) (int64, int, error) {
	v, neg, n, err := parseSigned(s, opts, math.MaxInt64)
	if err != nil {
		return 0, 0, err
	}
	return applySign64(v, neg), n, nil
}

// ParseInt32Partial parses the longest valid numeral prefix of s and
// returns the value alongside the number of bytes consumed.
func ParseInt32Partial(s string, opts options.ParseIntegerOptions) (int32, int, error) {
	v, neg, n, err := parseSigned(s, opts, math.MaxInt32)
	if err != nil {
		return 0, 0, err
	}
	return int32(applySign64(v, neg)), n, nil
}

// applySign64 folds the scanned magnitude into a signed value. The wrap at
// 1<<63 is exactly the minimum-value case, so the plain negation is right
// for every admitted magnitude.
func applySign64(v uint64, neg bool) int64 {
	if neg {
		return -int64(v)
	}
	return int64(v)
}
