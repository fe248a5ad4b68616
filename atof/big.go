// SPDX-License-Identifier: MIT
// Package: lexical/atof
//
// big.go — the exact fallback: big-integer ratio, any radix, any mode.
//
// The full significand is rebuilt from the raw digit span, the value is
// expressed as an integer ratio, and the target mantissa is cut from the
// quotient with explicit round and sticky information. Every comparison
// is exact, so any RoundingKind can be honoured bit for bit.

package atof

import (
	"math/big"

	"github.com/katalvlaran/lexical/core"
	"github.com/katalvlaran/lexical/options"
)

const (
	// maxBigDigits caps significand reconstruction for EVEN radixes: a
	// rounding boundary terminates within ~770 such digits, so further
	// digits can only feed the sticky bit. Odd-radix boundaries never
	// terminate and every digit is kept.
	maxBigDigits = 1200

	// Radix-point positions beyond these bounds decide the result by
	// magnitude alone, for every radix and both widths.
	overflowDP  = 1100
	underflowDP = -1100
)

// bigConvert produces the correctly rounded raw bits for the token's
// magnitude under the given mode. The sign is carried into the bits but
// otherwise only consulted by the directed modes.
func bigConvert(tok *token, radix int, fi *core.FloatInfo, mode options.RoundingKind) uint64 {
	if tok.dp > overflowDP {
		return overflowBits(fi, tok.neg, mode)
	}
	if tok.dp < underflowDP {
		return underflowBits(fi, tok.neg, mode)
	}

	digitCap := maxBigDigits
	if radix&1 == 1 {
		digitCap = len(tok.digits) + 1
	}

	// Rebuild the untruncated significand. Non-digit bytes in the span
	// (the radix point, grouping separators) are skipped.
	num := new(big.Int)
	bigRadix := big.NewInt(int64(radix))
	scratch := new(big.Int)
	n := 0
	sticky := false
	for j := 0; j < len(tok.digits); j++ {
		d, isDigit := core.DigitValue(tok.digits[j])
		if !isDigit || d >= radix {
			continue
		}
		if d == 0 && n == 0 {
			continue
		}
		if n < digitCap {
			num.Mul(num, bigRadix)
			scratch.SetInt64(int64(d))
			num.Add(num, scratch)
			n++
		} else if d != 0 {
			sticky = true
		}
	}
	if num.Sign() == 0 {
		return fi.Assemble(0, fi.Bias, tok.neg)
	}

	// value = num · radix^exp, plus a sub-unit tail when sticky.
	exp := tok.dp - n
	den := big.NewInt(1)
	if exp > 0 {
		num.Mul(num, scratch.Exp(bigRadix, big.NewInt(int64(exp)), nil))
	} else if exp < 0 {
		den.Exp(bigRadix, big.NewInt(int64(-exp)), nil)
	}

	// Cut a mantissa of MantBits+1 significant bits (fewer only against
	// the subnormal floor) from the quotient, adjusting the cut point
	// until the width is right.
	minQ := fi.MinExp() - int(fi.MantBits)
	q := num.BitLen() - den.BitLen() - 1 - int(fi.MantBits)
	if q < minQ {
		q = minQ
	}
	quo, rem := new(big.Int), new(big.Int)
	scaledNum, scaledDen := new(big.Int), new(big.Int)
	for {
		scaledNum.Set(num)
		scaledDen.Set(den)
		if q > 0 {
			scaledDen.Lsh(scaledDen, uint(q))
		} else if q < 0 {
			scaledNum.Lsh(scaledNum, uint(-q))
		}
		quo.QuoRem(scaledNum, scaledDen, rem)
		width := quo.BitLen()
		if width > int(fi.MantBits)+1 {
			q++
			continue
		}
		if width < int(fi.MantBits)+1 && q > minQ {
			q--
			continue
		}
		break
	}

	inexact := sticky || rem.Sign() != 0
	rem.Lsh(rem, 1)
	cmpHalf := rem.Cmp(scaledDen)

	mant := quo.Uint64()
	var roundUp bool
	switch mode {
	case options.NearestTieEven:
		roundUp = cmpHalf > 0 || (cmpHalf == 0 && (sticky || mant&1 == 1))
	case options.NearestTieAwayZero:
		roundUp = cmpHalf >= 0
	case options.TowardZero:
		roundUp = false
	case options.TowardPositiveInfinity:
		roundUp = !tok.neg && inexact
	case options.TowardNegativeInfinity:
		roundUp = tok.neg && inexact
	}
	if roundUp {
		mant++
		if mant == uint64(1)<<(fi.MantBits+1) {
			mant >>= 1
			q++
		}
	}

	var finalExp int
	if mant&(uint64(1)<<fi.MantBits) == 0 {
		finalExp = fi.Bias // subnormal, or zero
	} else {
		finalExp = q + int(fi.MantBits)
	}
	if finalExp-fi.Bias >= 1<<fi.ExpBits-1 {
		return overflowBits(fi, tok.neg, mode)
	}
	return fi.Assemble(mant, finalExp, tok.neg)
}

// overflowBits saturates per mode: infinity for the nearest modes and the
// away direction, the largest finite value otherwise.
func overflowBits(fi *core.FloatInfo, neg bool, mode options.RoundingKind) uint64 {
	switch mode {
	case options.NearestTieEven, options.NearestTieAwayZero:
		return fi.InfBits(neg)
	}
	if roundsAway(mode, neg) {
		return fi.InfBits(neg)
	}
	return fi.MaxFiniteBits(neg)
}

// underflowBits resolves magnitudes below half of the smallest subnormal:
// zero everywhere except the away-directed mode, which must not drop a
// nonzero value to zero.
func underflowBits(fi *core.FloatInfo, neg bool, mode options.RoundingKind) uint64 {
	if roundsAway(mode, neg) {
		return fi.Assemble(1, fi.Bias, neg)
	}
	return fi.Assemble(0, fi.Bias, neg)
}

// roundsAway reports whether the directed mode points away from zero for
// a value of the given sign.
func roundsAway(mode options.RoundingKind, neg bool) bool {
	switch mode {
	case options.TowardPositiveInfinity:
		return !neg
	case options.TowardNegativeInfinity:
		return neg
	}
	return false
}
