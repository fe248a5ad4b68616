// SPDX-License-Identifier: MIT
// Package: lexical/core
//
// constants.go — radix limits, digit alphabet, and the buffer contract.
//
// Design:
//   • Every published Max*Size constant is an upper bound across ALL radixes
//     in [MinRadix, MaxRadix] and both layout shapes (fixed and exponential).
//   • Writers abort (panic) when handed a destination smaller than the bound;
//     the bound is therefore part of the public API surface and must never
//     shrink between releases.

package core

// Radix limits accepted by every conversion entry point.
const (
	// MinRadix is the smallest supported numeral base.
	MinRadix = 2
	// MaxRadix is the largest supported numeral base (digits 0-9 then a-z).
	MaxRadix = 36
	// DecimalRadix is the default base used by all preset option sets.
	DecimalRadix = 10
)

// Maximum output sizes, in bytes, for the slice-mode writers.
//
// The float bounds cover: sign, up to 54 significand digits (radix 2,
// float64), a decimal point, leading fixed-layout zeros, the exponent marker,
// an exponent sign, and up to 11 exponent digits (radix 2 spelling of 1074).
// The integer bounds cover a sign plus 64 radix-2 digits.
const (
	// MaxFloat32Size bounds WriteFloat32 output for any radix and options.
	MaxFloat32Size = 64
	// MaxFloat64Size bounds WriteFloat64 output for any radix and options.
	MaxFloat64Size = 128
	// MaxInt32Size bounds WriteInt32 output: sign + 32 radix-2 digits.
	MaxInt32Size = 33
	// MaxInt64Size bounds WriteInt64 output: sign + 64 radix-2 digits.
	MaxInt64Size = 65
	// MaxUint32Size bounds WriteUint32 output: 32 radix-2 digits.
	MaxUint32Size = 32
	// MaxUint64Size bounds WriteUint64 output: 64 radix-2 digits.
	MaxUint64Size = 64
)

// digitAlphabet maps a digit value to its byte; lower-case beyond 9.
const digitAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// DigitByte returns the textual digit for value v, 0 <= v < MaxRadix.
func DigitByte(v int) byte {
	return digitAlphabet[v]
}

// DigitValue returns the numeric value of c as a digit and whether c is a
// digit at all (in any radix up to 36). Upper- and lower-case letters map to
// the same values.
func DigitValue(c byte) (int, bool) {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0'), true
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10, true
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10, true
	}
	return 0, false
}

// IsDigit reports whether c is a valid digit in the given radix.
func IsDigit(c byte, radix int) bool {
	v, ok := DigitValue(c)
	return ok && v < radix
}

// ValidRadix reports whether radix lies in [MinRadix, MaxRadix].
func ValidRadix(radix int) bool {
	return radix >= MinRadix && radix <= MaxRadix
}
