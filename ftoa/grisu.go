// SPDX-License-Identifier: MIT
// Package: lexical/ftoa
//
// grisu.go — Grisu3 shortest-digit generation for base 10.
//
// The generator walks the digits of the upper boundary and stops as soon as
// the emitted prefix, read back as a decimal, falls inside the rounding
// interval of the source float. Extended-float arithmetic carries a bounded
// error; whenever that error could flip the final digit the function
// reports failure and the caller reruns the conversion through the exact
// big-integer generator.

package ftoa

import (
	"github.com/katalvlaran/lexical/core"
)

// grisuShortest fills d with the shortest base-10 digit string for the
// finite, positive float mant·2^(exp-MantBits). It reports whether the
// result is certified correct.
func grisuShortest(d *digits, mant uint64, exp int, fi *core.FloatInfo) bool {
	if mant == 0 {
		d.nd, d.dp = 0, 0
		return true
	}

	var f core.ExtFloat
	lower, upper := f.AssignComputeBounds(mant, exp, false, fi)

	if f.Exp == 0 && lower == f && upper == f {
		// An exact integer: emit its digits directly.
		var buf [24]byte
		n := len(buf) - 1
		for v := f.Mant; v > 0; {
			v1 := v / 10
			v -= 10 * v1
			buf[n] = byte(v + '0')
			n--
			v = v1
		}
		d.nd = len(buf) - 1 - n
		copy(d.d[:d.nd], buf[n+1:])
		d.dp = d.nd
		d.trimTrailingZeros()
		return true
	}

	upper.Normalize()
	// Bring all three numbers onto the upper bound's exponent.
	if f.Exp > upper.Exp {
		f.Mant <<= uint(f.Exp - upper.Exp)
		f.Exp = upper.Exp
	}
	if lower.Exp > upper.Exp {
		lower.Mant <<= uint(lower.Exp - upper.Exp)
		lower.Exp = upper.Exp
	}

	exp10 := core.Frexp10Many(&lower, &f, &upper)
	// Margin for the rounding performed by the table multiplication.
	upper.Mant++
	lower.Mant--

	// The shortest representation is a truncation of the upper bound,
	// possibly with its last digit decremented.
	shift := uint(-upper.Exp)
	integer := uint32(upper.Mant >> shift)
	fraction := upper.Mant - (uint64(integer) << shift)

	// allowance spans the admissible interval; targetDiff is where the
	// actual value sits inside it.
	allowance := upper.Mant - lower.Mant
	targetDiff := upper.Mant - f.Mant

	// Integral digits, at most 10 of them.
	var integerDigits int
	for i, pow := range core.Uint64PowersOfTen {
		if uint64(integer) >= pow {
			integerDigits = i + 1
		}
	}
	for i := 0; i < integerDigits; i++ {
		pow := core.Uint64PowersOfTen[integerDigits-i-1]
		digit := integer / uint32(pow)
		d.d[i] = byte(digit + '0')
		integer -= digit * uint32(pow)
		if currentDiff := uint64(integer)<<shift + fraction; currentDiff < allowance {
			d.nd = i + 1
			d.dp = integerDigits + exp10
			return adjustLastDigit(d, currentDiff, targetDiff, allowance, pow<<shift, 2)
		}
	}
	d.nd = integerDigits
	d.dp = d.nd + exp10

	// Fractional digits. fraction stays below 2^60 by the choice of the
	// exponent window, so the ×10 never overflows.
	var digit int
	multiplier := uint64(1)
	for {
		fraction *= 10
		multiplier *= 10
		digit = int(fraction >> shift)
		d.d[d.nd] = byte(digit + '0')
		d.nd++
		fraction -= uint64(digit) << shift
		if fraction < allowance*multiplier {
			return adjustLastDigit(d, fraction,
				targetDiff*multiplier, allowance*multiplier,
				1<<shift, multiplier*2)
		}
	}
}

// adjustLastDigit decrements the last emitted digit until the value lies
// closest to the target, keeping clear of both interval ends. It reports
// failure when the extended-float error bound (ulpBinary) makes the choice
// ambiguous.
func adjustLastDigit(d *digits, currentDiff, targetDiff, maxDiff, ulpDecimal, ulpBinary uint64) bool {
	if ulpDecimal < 2*ulpBinary {
		// The decimal ulp does not dominate the error bound.
		return false
	}
	for currentDiff+ulpDecimal/2+ulpBinary < targetDiff {
		d.d[d.nd-1]--
		currentDiff += ulpDecimal
	}
	if currentDiff+ulpDecimal <= targetDiff+ulpDecimal/2+ulpBinary {
		// Two candidates remain equally plausible.
		return false
	}
	if currentDiff < ulpBinary || currentDiff > maxDiff-ulpBinary {
		// Too close to an interval end to certify the round trip.
		return false
	}
	d.trimTrailingZeros()
	return true
}
