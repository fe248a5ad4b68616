// SPDX-License-Identifier: MIT
// Package: lexical/core
//
// extfloat.go — extended-precision floating point (64-bit mantissa).
//
// Design:
//   • ExtFloat carries a full 64-bit mantissa next to a binary exponent, so
//     the value is Mant·2^Exp with 11 guard bits over float64 precision.
//   • Multiply keeps 64 result bits with round-to-nearest on the dropped
//     half; the callers track the accumulated error in ulp-scaled units.
//   • Instances live on the stack of one conversion call; nothing escapes.

package core

import "math/bits"

// ExtFloat is an extended floating-point number: the value is Mant·2^Exp,
// negative when Neg is set. It does not try to save bits — the mantissa is
// kept un-normalized unless Normalize is called.
type ExtFloat struct {
	Mant uint64
	Exp  int
	Neg  bool
}

// Normalize shifts the mantissa so its highest bit is set and returns the
// shift amount. A zero mantissa is left untouched.
func (f *ExtFloat) Normalize() uint {
	if f.Mant == 0 {
		return 0
	}
	shift := uint(bits.LeadingZeros64(f.Mant))
	f.Mant <<= shift
	f.Exp -= int(shift)
	return shift
}

// Multiply sets f to the product f·g, rounded to 64 mantissa bits.
func (f *ExtFloat) Multiply(g ExtFloat) {
	hi, lo := bits.Mul64(f.Mant, g.Mant)
	// Round to nearest on the dropped 64 bits.
	if lo >= 1<<63 {
		hi++
	}
	f.Mant = hi
	f.Exp += g.Exp + 64
}

// AssignComputeBounds sets f to the float defined by mant·2^(exp-MantBits)
// and returns lower, upper such that every number in the closed interval
// [lower, upper] converts back to the same machine float.
//
// The bounds are asymmetric at exact powers of two: the gap to the previous
// representable value is half the gap to the next one, so the lower bound
// sits a quarter-ulp away instead of a half-ulp.
func (f *ExtFloat) AssignComputeBounds(mant uint64, exp int, neg bool, fi *FloatInfo) (lower, upper ExtFloat) {
	f.Mant = mant
	f.Exp = exp - int(fi.MantBits)
	f.Neg = neg
	if f.Exp <= 0 && mant == (mant>>uint(-f.Exp))<<uint(-f.Exp) {
		// An exact integer: the value is its own pair of bounds.
		f.Mant >>= uint(-f.Exp)
		f.Exp = 0
		return *f, *f
	}
	expBiased := exp - fi.Bias

	upper = ExtFloat{Mant: 2*f.Mant + 1, Exp: f.Exp - 1, Neg: f.Neg}
	if mant != 1<<fi.MantBits || expBiased == 1 {
		lower = ExtFloat{Mant: 2*f.Mant - 1, Exp: f.Exp - 1, Neg: f.Neg}
	} else {
		// Power-of-two mantissa: previous neighbor is twice as close.
		lower = ExtFloat{Mant: 4*f.Mant - 1, Exp: f.Exp - 2, Neg: f.Neg}
	}
	return lower, upper
}

// FloatBits returns the raw bits of the machine float (of geometry fi) that
// best approximates f, rounding the 64-bit mantissa to MantBits+1 bits.
// Overflow reports whether the result is ±Inf.
func (f *ExtFloat) FloatBits(fi *FloatInfo) (bits uint64, overflow bool) {
	f.Normalize()

	exp := f.Exp + 63

	// Exponent too small: shift mantissa into the subnormal range.
	if exp < fi.Bias+1 {
		n := fi.Bias + 1 - exp
		f.Mant >>= uint(n)
		exp += n
	}

	// Extract 1+MantBits bits from the 64-bit mantissa, rounding on the
	// highest dropped bit.
	mant := f.Mant >> (63 - fi.MantBits)
	if f.Mant&(1<<(62-fi.MantBits)) != 0 {
		mant++
	}

	// Rounding may have produced an extra bit.
	if mant == 2<<fi.MantBits {
		mant >>= 1
		exp++
	}

	if exp-fi.Bias >= 1<<fi.ExpBits-1 {
		mant = 0
		exp = 1<<fi.ExpBits - 1 + fi.Bias
		overflow = true
	} else if mant&(1<<fi.MantBits) == 0 {
		// Subnormal.
		exp = fi.Bias
	}
	return fi.Assemble(mant, exp, f.Neg), overflow
}

// AssignDecimal sets f to an approximation of mantissa·10^exp10 and reports
// whether f is guaranteed to round to the correct machine float of geometry
// fi. When it returns false the caller must fall back to exact arithmetic.
func (f *ExtFloat) AssignDecimal(mantissa uint64, exp10 int, neg bool, trunc bool, fi *FloatInfo) bool {
	const uint64digits = 19
	const errorscale = 8
	errs := 0 // accumulated error bound, in errorscale-ths of an ulp
	if trunc {
		errs += errorscale / 2
	}

	f.Mant = mantissa
	f.Exp = 0
	f.Neg = neg

	// Multiply by powers of ten.
	i := (exp10 - firstPowerOfTen) / stepPowerOfTen
	if exp10 < firstPowerOfTen || i >= len(powersOfTen) {
		return false
	}
	adjExp := (exp10 - firstPowerOfTen) % stepPowerOfTen

	if adjExp < uint64digits && mantissa < Uint64PowersOfTen[uint64digits-adjExp] {
		// The residual power fits: multiply the mantissa exactly.
		f.Mant *= Uint64PowersOfTen[adjExp]
		f.Normalize()
	} else {
		f.Normalize()
		f.Multiply(smallPowersOfTen[adjExp])
		errs += errorscale / 2
	}

	f.Multiply(powersOfTen[i])
	if errs > 0 {
		errs++
	}
	errs += errorscale / 2

	shift := f.Normalize()
	errs <<= shift

	// f now approximates the decimal. Certify that perturbing the mantissa
	// by the error bound cannot change the rounded machine float: the bits
	// below the target precision must sit clear of the halfway point.
	denormalExp := fi.Bias - 63
	var extrabits uint
	if f.Exp <= denormalExp {
		extrabits = 63 - fi.MantBits + 1 + uint(denormalExp-f.Exp)
	} else {
		extrabits = 63 - fi.MantBits
	}

	halfway := uint64(1) << (extrabits - 1)
	mantExtra := f.Mant & (1<<extrabits - 1)

	if int64(halfway)-int64(errs) < int64(mantExtra) &&
		int64(mantExtra) < int64(halfway)+int64(errs) {
		return false
	}
	return true
}

// Frexp10 is an analogue of math.Frexp for decimal powers: it scales f by an
// approximate power of ten so that the binary exponent lands in [-60, -32],
// and returns the decimal exponent removed along with the table index used.
// The target window keeps the integral part small so digit extraction can
// proceed by repeated multiplication instead of division.
func (f *ExtFloat) Frexp10() (exp10, index int) {
	const expMin = -60
	const expMax = -32
	// log(10)/log(2) is close to 93/28.
	approxExp10 := ((expMin+expMax)/2 - f.Exp) * 28 / 93
	i := (approxExp10 - firstPowerOfTen) / stepPowerOfTen
Loop:
	for {
		exp := f.Exp + powersOfTen[i].Exp + 64
		switch {
		case exp < expMin:
			i++
		case exp > expMax:
			i--
		default:
			break Loop
		}
	}
	f.Multiply(powersOfTen[i])
	return -(firstPowerOfTen + i*stepPowerOfTen), i
}

// Frexp10Many applies a common decimal shift to a, b and c, chosen so that
// c's binary exponent lands in Frexp10's window; it returns the decimal
// exponent removed from all three.
func Frexp10Many(a, b, c *ExtFloat) (exp10 int) {
	exp10, i := c.Frexp10()
	a.Multiply(powersOfTen[i])
	b.Multiply(powersOfTen[i])
	return exp10
}
