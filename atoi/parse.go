// SPDX-License-Identifier: MIT
// Package: lexical/atoi
//
// parse.go — the sign and magnitude scanners behind every entry point.

package atoi

import (
	"github.com/katalvlaran/lexical/core"
	"github.com/katalvlaran/lexical/options"
)

// scanMagnitude consumes the longest run of digits (and permitted
// separators) at the head of s, accumulating their value in the given
// radix. It stops at the first byte it cannot take and returns the value
// together with the number of bytes consumed.
//
// limit is the largest magnitude the caller can represent; a digit that
// would push the accumulator past it yields core.ErrRange at that digit's
// offset. A head with no digits at all yields core.ErrEmpty (empty input)
// or core.ErrSyntax (input starting with a non-digit).
func scanMagnitude(s string, radix int, sep options.SeparatorPolicy, limit uint64) (uint64, int, error) {
	var (
		value     uint64
		lastDigit = -1 // index one past the most recent digit
		prevSep   bool
	)
	base := uint64(radix)
	cutoff := limit / base

	i := 0
	for ; i < len(s); i++ {
		c := s[i]
		if sep.Enabled() && c == sep.Separator {
			if lastDigit < 0 && !sep.AllowLeading {
				break
			}
			if prevSep && !sep.AllowConsecutive {
				break
			}
			prevSep = true
			continue
		}
		d, ok := core.DigitValue(c)
		if !ok || d >= radix {
			break
		}
		prevSep = false
		if value > cutoff {
			return 0, 0, core.NewParseError(i, core.ErrRange)
		}
		value *= base
		if value > limit-uint64(d) {
			return 0, 0, core.NewParseError(i, core.ErrRange)
		}
		value += uint64(d)
		lastDigit = i + 1
	}

	if lastDigit < 0 {
		if len(s) == 0 {
			return 0, 0, core.NewParseError(0, core.ErrEmpty)
		}
		return 0, 0, core.NewParseError(i, core.ErrSyntax)
	}
	consumed := i
	if prevSep && !sep.AllowTrailing {
		// Hand trailing separators back; they belong to whatever follows.
		consumed = lastDigit
	}
	return value, consumed, nil
}

// parseUnsigned handles an optional '+' then delegates to scanMagnitude.
func parseUnsigned(s string, opts options.ParseIntegerOptions, limit uint64) (uint64, int, error) {
	start := 0
	if len(s) > 0 && s[0] == '+' {
		start = 1
	}
	v, n, err := scanMagnitude(s[start:], opts.Radix(), opts.Separator(), limit)
	if err != nil {
		return 0, 0, shiftOffset(err, start)
	}
	return v, start + n, nil
}

// parseSigned handles an optional sign then delegates to scanMagnitude.
// max is the positive limit; the negative range admits one more magnitude
// step, which is why the result stays a (magnitude, neg) pair.
func parseSigned(s string, opts options.ParseIntegerOptions, max uint64) (uint64, bool, int, error) {
	start, neg := 0, false
	if len(s) > 0 {
		switch s[0] {
		case '+':
			start = 1
		case '-':
			start, neg = 1, true
		}
	}
	limit := max
	if neg {
		limit++
	}
	v, n, err := scanMagnitude(s[start:], opts.Radix(), opts.Separator(), limit)
	if err != nil {
		return 0, false, 0, shiftOffset(err, start)
	}
	return v, neg, start + n, nil
}

// shiftOffset rebases a ParseError produced on a sub-slice of the input.
func shiftOffset(err error, by int) error {
	if pe, ok := err.(*core.ParseError); ok && by != 0 {
		pe.Offset += by
	}
	return err
}
