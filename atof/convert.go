// SPDX-License-Identifier: MIT
// Package: lexical/atof
//
// convert.go — token to float conversion, cheapest sufficient path first.
//
// Every shortcut here rides the hardware's round-to-nearest-even, so the
// shortcuts are reserved for that mode; any other RoundingKind goes
// straight to the exact big-integer path.

package atof

import (
	"math"
	"math/bits"

	"github.com/katalvlaran/lexical/core"
	"github.com/katalvlaran/lexical/options"
)

// convert64 turns a digit token into the correctly rounded float64.
func convert64(tok *token, opts options.ParseFloatOptions) float64 {
	if tok.mantissa == 0 {
		return zero64(tok.neg)
	}
	radix := opts.Radix()
	if opts.Lossy() {
		return lossy64(tok, radix)
	}
	if opts.Rounding() == options.NearestTieEven {
		if f, ok := exactNative64(tok, radix); ok {
			return signed64(f, tok.neg)
		}
		if radix&(radix-1) == 0 {
			if f, ok := pow2Native64(tok, radix); ok {
				return signed64(f, tok.neg)
			}
		}
		if radix == core.DecimalRadix {
			var ext core.ExtFloat
			if ext.AssignDecimal(tok.mantissa, tok.exp, tok.neg, tok.trunc, &core.Float64Info) {
				b, _ := ext.FloatBits(&core.Float64Info)
				return math.Float64frombits(b)
			}
		}
	}
	return math.Float64frombits(bigConvert(tok, radix, &core.Float64Info, opts.Rounding()))
}

// convert32 turns a digit token into the correctly rounded float32.
func convert32(tok *token, opts options.ParseFloatOptions) float32 {
	if tok.mantissa == 0 {
		return zero32(tok.neg)
	}
	radix := opts.Radix()
	if opts.Lossy() {
		return float32(lossy64(tok, radix))
	}
	if opts.Rounding() == options.NearestTieEven {
		if f, ok := exactNative32(tok, radix); ok {
			if tok.neg {
				return -f
			}
			return f
		}
		if radix&(radix-1) == 0 {
			if f, ok := pow2Native32(tok, radix); ok {
				if tok.neg {
					return -f
				}
				return f
			}
		}
	}
	return math.Float32frombits(uint32(bigConvert(tok, radix, &core.Float32Info, opts.Rounding())))
}

// exactNative64 converts with a single native multiply or divide when both
// the significand and the radix power are exactly representable; one
// rounding means a correctly rounded result.
func exactNative64(tok *token, radix int) (float64, bool) {
	if tok.trunc || tok.mantissa>>53 != 0 {
		return 0, false
	}
	f := float64(tok.mantissa)
	switch {
	case tok.exp == 0:
		return f, true
	case tok.exp > 0:
		p, ok := core.ExactPow64(radix, tok.exp)
		if !ok {
			return 0, false
		}
		return f * p, true
	default:
		p, ok := core.ExactPow64(radix, -tok.exp)
		if !ok {
			return 0, false
		}
		return f / p, true
	}
}

// exactNative32 is exactNative64 in float32 arithmetic, so the single
// rounding happens at the target precision.
func exactNative32(tok *token, radix int) (float32, bool) {
	if tok.trunc || tok.mantissa>>24 != 0 {
		return 0, false
	}
	f := float32(tok.mantissa)
	switch {
	case tok.exp == 0:
		return f, true
	case tok.exp > 0:
		p, ok := core.ExactPow32(radix, tok.exp)
		if !ok {
			return 0, false
		}
		return f * p, true
	default:
		p, ok := core.ExactPow32(radix, -tok.exp)
		if !ok {
			return 0, false
		}
		return f / p, true
	}
}

// pow2Native64 handles power-of-two radixes by moving the binary exponent
// alone. Ldexp of an exact significand rounds exactly once, including into
// the subnormal range and on overflow to infinity.
func pow2Native64(tok *token, radix int) (float64, bool) {
	if tok.trunc || tok.mantissa>>53 != 0 {
		return 0, false
	}
	shift := bits.TrailingZeros(uint(radix)) * tok.exp
	return math.Ldexp(float64(tok.mantissa), shift), true
}

// pow2Native32 is the float32 analogue of pow2Native64. The float64
// intermediate is exact everywhere a float32 result can be inexact, so
// the final conversion is the only rounding step.
func pow2Native32(tok *token, radix int) (float32, bool) {
	if tok.trunc || tok.mantissa>>24 != 0 {
		return 0, false
	}
	shift := bits.TrailingZeros(uint(radix)) * tok.exp
	return float32(math.Ldexp(float64(tok.mantissa), shift)), true
}

// lossy64 trades correctness guarantees for speed: native accumulation
// with a relative error of a few ulps.
func lossy64(tok *token, radix int) float64 {
	f := float64(tok.mantissa) * math.Pow(float64(radix), float64(tok.exp))
	return signed64(f, tok.neg)
}

func signed64(f float64, neg bool) float64 {
	if neg {
		return -f
	}
	return f
}

func zero64(neg bool) float64 {
	if neg {
		return math.Copysign(0, -1)
	}
	return 0
}

func zero32(neg bool) float32 {
	if neg {
		return float32(math.Copysign(0, -1))
	}
	return 0
}
