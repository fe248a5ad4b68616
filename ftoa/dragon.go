// SPDX-License-Identifier: MIT
// Package: lexical/ftoa
//
// dragon.go — exact shortest-digit generation for any radix.
//
// Dragon4 keeps the value and both rounding margins as big-integer ratios
// over a common denominator, so every comparison in the digit loop is
// exact. It is the only generator for radixes other than 10 and the
// fallback when Grisu3 cannot certify its answer.

package ftoa

import (
	"math"
	"math/big"

	"github.com/katalvlaran/lexical/core"
)

// dragonShortest fills d with the shortest base-radix digit string for the
// finite, positive float mant·2^(exp-MantBits). The result is exact.
func dragonShortest(d *digits, mant uint64, exp int, fi *core.FloatInfo, radix int) {
	if mant == 0 {
		d.nd, d.dp = 0, 0
		return
	}

	bexp := exp - int(fi.MantBits)

	// value = num/den; the rounding interval reaches mMinus/den below and
	// mPlus/den above. Everything is pre-doubled so half-ulp margins stay
	// integral.
	num := new(big.Int).SetUint64(mant)
	den := big.NewInt(1)
	mPlus := big.NewInt(1)
	mMinus := big.NewInt(1)
	if bexp >= 0 {
		be := new(big.Int).Lsh(big.NewInt(1), uint(bexp))
		num.Mul(num, be)
		num.Lsh(num, 1)
		den.Lsh(den, 1)
		mPlus.Set(be)
		mMinus.Set(be)
	} else {
		num.Lsh(num, 1)
		den.Lsh(den, uint(-bexp)+1)
	}

	// At an exact power of two the gap below is half the gap above.
	if mant == uint64(1)<<fi.MantBits && exp > fi.MinExp() {
		num.Lsh(num, 1)
		den.Lsh(den, 1)
		mPlus.Lsh(mPlus, 1)
	}

	// An even mantissa owns its interval ends; an odd one does not.
	even := mant&1 == 0
	bigRadix := big.NewInt(int64(radix))

	// First guess at the digit count left of the radix point, refined by
	// the fixup loop below.
	estimate := int(math.Ceil(
		(math.Log2(float64(mant)) + float64(bexp)) / math.Log2(float64(radix))))
	if estimate > 0 {
		den.Mul(den, new(big.Int).Exp(bigRadix, big.NewInt(int64(estimate)), nil))
	} else if estimate < 0 {
		scale := new(big.Int).Exp(bigRadix, big.NewInt(int64(-estimate)), nil)
		num.Mul(num, scale)
		mPlus.Mul(mPlus, scale)
		mMinus.Mul(mMinus, scale)
	}

	// Fixup: after this loop the upper boundary sits in (1/radix, 1] of
	// den, so the first generated digit is significant.
	t := new(big.Int)
	for {
		t.Add(num, mPlus)
		if c := t.Cmp(den); c > 0 || (even && c == 0) {
			den.Mul(den, bigRadix)
			estimate++
			continue
		}
		t.Mul(t, bigRadix)
		if c := t.Cmp(den); c < 0 || (!even && c == 0) {
			num.Mul(num, bigRadix)
			mPlus.Mul(mPlus, bigRadix)
			mMinus.Mul(mMinus, bigRadix)
			estimate--
			continue
		}
		break
	}
	d.dp = estimate

	// Digit loop: emit floor(num·radix/den), stop once the remainder sits
	// inside the rounding interval, then pick the closer endpoint.
	q := new(big.Int)
	for i := 0; ; i++ {
		num.Mul(num, bigRadix)
		mPlus.Mul(mPlus, bigRadix)
		mMinus.Mul(mMinus, bigRadix)
		q.QuoRem(num, den, num)
		digit := int(q.Int64())

		cLow := num.Cmp(mMinus)
		low := cLow < 0 || (even && cLow == 0)
		t.Add(num, mPlus)
		cHigh := t.Cmp(den)
		high := cHigh > 0 || (even && cHigh == 0)

		d.d[i] = core.DigitByte(digit)
		d.nd = i + 1
		if !low && !high {
			continue
		}

		switch {
		case low && !high:
			// Rounding down already lands inside the interval.
		case high && !low:
			d.bump(radix)
		default:
			// Both ends reachable: take the closer one, even digit on an
			// exact tie.
			num.Lsh(num, 1)
			if c := num.Cmp(den); c > 0 || (c == 0 && digit&1 == 1) {
				d.bump(radix)
			}
		}
		break
	}

	// The asymmetric-boundary fixup can leave one insignificant leading
	// digit behind; shortest output has none.
	for d.nd > 0 && d.d[0] == '0' {
		copy(d.d, d.d[1:d.nd])
		d.nd--
		d.dp--
	}
	d.trimTrailingZeros()
}

// bump increments the last digit, carrying leftwards. Digits that overflow
// to zero are dropped; a carry past the leading digit leaves the single
// digit 1 with the radix point moved up.
func (d *digits) bump(radix int) {
	for i := d.nd - 1; i >= 0; i-- {
		v, _ := core.DigitValue(d.d[i])
		if v+1 < radix {
			d.d[i] = core.DigitByte(v + 1)
			d.nd = i + 1
			return
		}
	}
	d.d[0] = core.DigitByte(1)
	d.nd = 1
	d.dp++
}
