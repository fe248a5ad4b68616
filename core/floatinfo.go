// SPDX-License-Identifier: MIT
// Package: lexical/core
//
// floatinfo.go — IEEE-754 bit geometry for the two supported widths.
//
// Contract (strict):
//   • Decompose assumes a FINITE input; callers filter NaN/Inf first.
//   • The returned mantissa includes the implicit leading bit for normal
//     values; exp is the unbiased exponent of the implicit-bit position, so
//     the value equals mant · 2^(exp-MantBits) exactly.

package core

// FloatInfo describes the bit layout of a binary floating-point width.
type FloatInfo struct {
	// MantBits is the number of stored mantissa bits (23 or 52).
	MantBits uint
	// ExpBits is the number of exponent bits (8 or 11).
	ExpBits uint
	// Bias is the exponent bias as a signed offset (-127 or -1023).
	Bias int
}

// Bit geometry of the supported widths.
var (
	// Float32Info describes IEEE-754 binary32.
	Float32Info = FloatInfo{MantBits: 23, ExpBits: 8, Bias: -127}
	// Float64Info describes IEEE-754 binary64.
	Float64Info = FloatInfo{MantBits: 52, ExpBits: 11, Bias: -1023}
)

// MinExp returns the smallest unbiased exponent a (sub)normal value can
// carry before the mantissa shift, i.e. Bias+1.
func (fi *FloatInfo) MinExp() int {
	return fi.Bias + 1
}

// Decompose splits the raw bits of a finite float into sign, mantissa and
// the unbiased exponent such that |value| == mant · 2^(exp-MantBits).
// Subnormals are reported with the minimum exponent and no implicit bit.
func (fi *FloatInfo) Decompose(bits uint64) (neg bool, mant uint64, exp int) {
	neg = bits>>(fi.ExpBits+fi.MantBits) != 0
	exp = int(bits>>fi.MantBits) & (1<<fi.ExpBits - 1)
	mant = bits & (uint64(1)<<fi.MantBits - 1)
	if exp == 0 {
		// Subnormal: value = mant · 2^(bias+1-mantbits).
		exp++
	} else {
		// Normal: restore the implicit top bit.
		mant |= uint64(1) << fi.MantBits
	}
	exp += fi.Bias
	return neg, mant, exp
}

// Assemble packs a mantissa (including the implicit bit position) and an
// unbiased exponent back into raw float bits. The mantissa must already be
// rounded to at most MantBits+1 bits; exponent overflow must be handled by
// the caller before assembly.
func (fi *FloatInfo) Assemble(mant uint64, exp int, neg bool) uint64 {
	bits := mant & (uint64(1)<<fi.MantBits - 1)
	bits |= uint64((exp-fi.Bias)&(1<<fi.ExpBits-1)) << fi.MantBits
	if neg {
		bits |= 1 << (fi.MantBits + fi.ExpBits)
	}
	return bits
}

// InfBits returns the raw bit pattern of ±Inf for this width.
func (fi *FloatInfo) InfBits(neg bool) uint64 {
	bits := uint64(1<<fi.ExpBits-1) << fi.MantBits
	if neg {
		bits |= 1 << (fi.MantBits + fi.ExpBits)
	}
	return bits
}

// MaxFiniteBits returns the raw bit pattern of the largest finite value,
// with the requested sign. Directed rounding modes saturate here instead of
// overflowing to infinity.
func (fi *FloatInfo) MaxFiniteBits(neg bool) uint64 {
	return fi.InfBits(neg) - 1
}
