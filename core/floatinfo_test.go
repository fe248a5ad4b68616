// SPDX-License-Identifier: MIT
// Package: lexical/core — tests for the bit-geometry helpers.

package core_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/lexical/core"
)

// TestDecompose_Float64 verifies that sign, mantissa and exponent recompose
// into the original value for normals, subnormals, zero and extremes.
func TestDecompose_Float64(t *testing.T) {
	values := []float64{
		0, 1, -1, 1.5, 0.1, 2, 0.5, 123456789,
		math.MaxFloat64, -math.MaxFloat64,
		5e-324,                  // smallest subnormal
		2.2250738585072014e-308, // smallest normal
		1e-310,                  // mid subnormal
	}
	fi := &core.Float64Info
	for _, v := range values {
		bits := math.Float64bits(v)
		neg, mant, exp := fi.Decompose(bits)
		if neg != math.Signbit(v) {
			t.Errorf("Decompose(%g): neg = %v", v, neg)
		}
		if got := math.Ldexp(float64(mant), exp-int(fi.MantBits)); got != math.Abs(v) {
			t.Errorf("Decompose(%g): mant·2^exp = %g", v, got)
		}
		// Reassembly: subnormals (and zero) carry the bias exponent.
		back := exp
		if mant>>fi.MantBits == 0 {
			back = fi.Bias
		}
		if got := fi.Assemble(mant, back, neg); got != bits {
			t.Errorf("Assemble(Decompose(%g)) = %#x; want %#x", v, got, bits)
		}
	}
}

// TestDecompose_Float32 mirrors the float64 coverage on the narrow width.
func TestDecompose_Float32(t *testing.T) {
	values := []float32{0, 1, -2.5, 0.1, math.MaxFloat32, 1e-45, 1.1754944e-38}
	fi := &core.Float32Info
	for _, v := range values {
		bits := uint64(math.Float32bits(v))
		neg, mant, exp := fi.Decompose(bits)
		got := math.Ldexp(float64(mant), exp-int(fi.MantBits))
		if got != math.Abs(float64(v)) {
			t.Errorf("Decompose(%g): mant·2^exp = %g", v, got)
		}
		back := exp
		if mant>>fi.MantBits == 0 {
			back = fi.Bias
		}
		if got := fi.Assemble(mant, back, neg); got != bits {
			t.Errorf("Assemble(Decompose(%g)) = %#x; want %#x", v, got, bits)
		}
	}
}

// TestSpecialBits pins the infinity and largest-finite bit patterns.
func TestSpecialBits(t *testing.T) {
	if got := core.Float64Info.InfBits(false); got != math.Float64bits(math.Inf(1)) {
		t.Errorf("InfBits(false) = %#x", got)
	}
	if got := core.Float64Info.InfBits(true); got != math.Float64bits(math.Inf(-1)) {
		t.Errorf("InfBits(true) = %#x", got)
	}
	if got := core.Float64Info.MaxFiniteBits(false); got != math.Float64bits(math.MaxFloat64) {
		t.Errorf("MaxFiniteBits(false) = %#x", got)
	}
	if got := core.Float32Info.MaxFiniteBits(false); got != uint64(math.Float32bits(math.MaxFloat32)) {
		t.Errorf("float32 MaxFiniteBits(false) = %#x", got)
	}
}

// TestDigitAlphabet covers both directions of the digit mapping.
func TestDigitAlphabet(t *testing.T) {
	if core.DigitByte(0) != '0' || core.DigitByte(9) != '9' || core.DigitByte(10) != 'a' || core.DigitByte(35) != 'z' {
		t.Fatal("DigitByte mapping broken")
	}
	cases := []struct {
		c    byte
		v    int
		isDig bool
	}{
		{'0', 0, true}, {'9', 9, true}, {'a', 10, true}, {'f', 15, true},
		{'F', 15, true}, {'z', 35, true}, {'Z', 35, true}, {'.', 0, false}, {'_', 0, false},
	}
	for _, c := range cases {
		v, ok := core.DigitValue(c.c)
		if ok != c.isDig || (ok && v != c.v) {
			t.Errorf("DigitValue(%q) = %d,%v; want %d,%v", c.c, v, ok, c.v, c.isDig)
		}
	}
	if !core.IsDigit('f', 16) || core.IsDigit('g', 16) || core.IsDigit('2', 2) {
		t.Error("IsDigit radix bound broken")
	}
	if core.ValidRadix(1) || core.ValidRadix(37) || !core.ValidRadix(2) || !core.ValidRadix(36) {
		t.Error("ValidRadix bounds broken")
	}
}

// TestParseError checks sentinel unwrapping and the offset in the message.
func TestParseError(t *testing.T) {
	err := core.NewParseError(7, core.ErrSyntax)
	if !errors.Is(err, core.ErrSyntax) {
		t.Fatal("errors.Is(ErrSyntax) failed")
	}
	var pe *core.ParseError
	if !errors.As(err, &pe) || pe.Offset != 7 {
		t.Fatalf("ParseError offset = %+v", err)
	}
	if !strings.Contains(err.Error(), "7") {
		t.Errorf("Error() = %q; offset missing", err.Error())
	}
}
