// SPDX-License-Identifier: MIT
// Package: lexical/options
//
// rounding.go — the tie-breaking rules a parse may be configured with.

package options

// RoundingKind selects the rule applied when a textual value falls between
// two representable binary floats.
type RoundingKind uint8

const (
	// NearestTieEven rounds to the nearest neighbor; ties go to the
	// neighbor with an even mantissa (IEEE-754 default).
	NearestTieEven RoundingKind = iota
	// NearestTieAwayZero rounds to the nearest neighbor; ties go away
	// from zero.
	NearestTieAwayZero
	// TowardPositiveInfinity always rounds up.
	TowardPositiveInfinity
	// TowardNegativeInfinity always rounds down.
	TowardNegativeInfinity
	// TowardZero truncates toward zero.
	TowardZero

	roundingKindCount // sentinel for validation; keep last
)

// String returns the canonical name of the rounding mode.
func (k RoundingKind) String() string {
	switch k {
	case NearestTieEven:
		return "NearestTieEven"
	case NearestTieAwayZero:
		return "NearestTieAwayZero"
	case TowardPositiveInfinity:
		return "TowardPositiveInfinity"
	case TowardNegativeInfinity:
		return "TowardNegativeInfinity"
	case TowardZero:
		return "TowardZero"
	default:
		return "RoundingKind(?)"
	}
}

// valid reports whether k names a declared rounding mode.
func (k RoundingKind) valid() bool {
	return k < roundingKindCount
}
