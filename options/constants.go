// SPDX-License-Identifier: MIT
// Package: lexical/options
//
// constants.go — deterministic defaults (named, no magic numbers).

package options

import "github.com/katalvlaran/lexical/core"

// Default string constants, overridable per builder subject to validation.
const (
	// DefaultNaN is the default Not-a-Number spelling.
	DefaultNaN = "NaN"
	// DefaultInf is the default short infinity spelling.
	DefaultInf = "inf"
	// DefaultInfinity is the default long infinity spelling.
	DefaultInfinity = "infinity"
	// DefaultRadix is the numeral base used when none is chosen.
	DefaultRadix = core.DecimalRadix
)

// Exponent marker fallbacks, chosen so the default can never be a digit of
// its radix: 'e' is a digit from radix 15 on, 'p' from radix 26 on.
const (
	markerE     = 'e'
	markerP     = 'p'
	markerCaret = '^'
)

// DefaultExponentChar returns the default exponent marker for a radix:
// 'e' up to base 14, 'p' up to base 25, '^' beyond.
func DefaultExponentChar(radix int) byte {
	switch {
	case radix <= 14:
		return markerE
	case radix <= 25:
		return markerP
	default:
		return markerCaret
	}
}
