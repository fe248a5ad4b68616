// SPDX-License-Identifier: MIT
// Package: lexical/core
//
// pow.go — per-radix tables of exactly representable powers.
//
// A power radix^k (radix = odd·2^t) is exactly representable in a binary
// float whenever odd^k fits the mantissa; the 2^(t·k) factor only moves the
// exponent. The tables below are built once in init and drive the parse
// path's exact-native shortcut: one correctly rounded multiply or divide by
// an exact power is itself correctly rounded.

package core

import "math"

// mantissaLimit64/32 bound the odd part of an exactly representable power.
const (
	mantissaLimit64 = uint64(1) << 53
	mantissaLimit32 = uint64(1) << 24
	// maxBinaryExp64 caps table growth for power-of-two radixes.
	maxBinaryExp64 = 1023
)

var (
	exactPow64 [MaxRadix + 1][]float64
	exactPow32 [MaxRadix + 1][]float32
)

func init() {
	for radix := MinRadix; radix <= MaxRadix; radix++ {
		exactPow64[radix] = buildExact64(radix)
		exactPow32[radix] = buildExact32(radix)
	}
}

// oddSplit factors radix into odd·2^t.
func oddSplit(radix int) (odd uint64, twos int) {
	odd = uint64(radix)
	for odd%2 == 0 {
		odd /= 2
		twos++
	}
	return odd, twos
}

func buildExact64(radix int) []float64 {
	odd, twos := oddSplit(radix)
	var out []float64
	acc := uint64(1)
	for k := 0; ; k++ {
		if twos*k > maxBinaryExp64 {
			break
		}
		out = append(out, math.Ldexp(float64(acc), twos*k))
		if odd > 1 {
			next := acc * odd
			if next/odd != acc || next > mantissaLimit64 {
				break
			}
			acc = next
		}
	}
	return out
}

func buildExact32(radix int) []float32 {
	odd, twos := oddSplit(radix)
	var out []float32
	acc := uint64(1)
	for k := 0; ; k++ {
		if twos*k > 127 {
			break
		}
		out = append(out, float32(math.Ldexp(float64(acc), twos*k)))
		if odd > 1 {
			next := acc * odd
			if next > mantissaLimit32 {
				break
			}
			acc = next
		}
	}
	return out
}

// ExactPow64 returns radix^k as a float64 and whether that value is exact.
func ExactPow64(radix, k int) (float64, bool) {
	t := exactPow64[radix]
	if k < 0 || k >= len(t) {
		return 0, false
	}
	return t[k], true
}

// ExactPow32 returns radix^k as a float32 and whether that value is exact.
func ExactPow32(radix, k int) (float32, bool) {
	t := exactPow32[radix]
	if k < 0 || k >= len(t) {
		return 0, false
	}
	return t[k], true
}

// MaxExactPow64 returns the largest k for which radix^k is exact in float64.
func MaxExactPow64(radix int) int {
	return len(exactPow64[radix]) - 1
}

// MaxExactPow32 returns the largest k for which radix^k is exact in float32.
func MaxExactPow32(radix int) int {
	return len(exactPow32[radix]) - 1
}
