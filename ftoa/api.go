// SPDX-License-Identifier: MIT
// Package: lexical/ftoa
//
// api.go — public slice-mode and append-mode float writers.

package ftoa

import (
	"math"

	"github.com/katalvlaran/lexical/core"
	"github.com/katalvlaran/lexical/options"
)

// WriteFloat64 writes the shortest round-tripping text of v into buf and
// returns the number of bytes written. Panics when
// len(buf) < core.MaxFloat64Size.
func WriteFloat64(buf []byte, v float64, opts options.WriteFloatOptions) int {
	checkCapacity(len(buf), core.MaxFloat64Size)
	return len(appendFloat(buf[:0], math.Float64bits(v), &core.Float64Info, opts))
}

// WriteFloat32 writes the shortest round-tripping text of v into buf and
// returns the number of bytes written. Panics when
// len(buf) < core.MaxFloat32Size.
func WriteFloat32(buf []byte, v float32, opts options.WriteFloatOptions) int {
	checkCapacity(len(buf), core.MaxFloat32Size)
	return len(appendFloat(buf[:0], uint64(math.Float32bits(v)), &core.Float32Info, opts))
}

// AppendFloat64 appends the shortest round-tripping text of v to dst and
// returns the extended slice.
func AppendFloat64(dst []byte, v float64, opts options.WriteFloatOptions) []byte {
	return appendFloat(dst, math.Float64bits(v), &core.Float64Info, opts)
}

// AppendFloat32 appends the shortest round-tripping text of v to dst and
// returns the extended slice.
func AppendFloat32(dst []byte, v float32, opts options.WriteFloatOptions) []byte {
	return appendFloat(dst, uint64(math.Float32bits(v)), &core.Float32Info, opts)
}

// appendFloat filters the special values, emits the sign, then runs the
// digit generators and the layout stage.
//
// Filter order: NaN keeps its configured spelling regardless of the sign
// bit; infinities carry their sign; a zero collapses to "0" (either sign)
// when trimming, "0.0"/"-0.0" otherwise.
func appendFloat(dst []byte, bits uint64, fi *core.FloatInfo, opts options.WriteFloatOptions) []byte {
	expMask := uint64(1)<<fi.ExpBits - 1
	rawExp := bits >> fi.MantBits & expMask
	neg := bits>>(fi.ExpBits+fi.MantBits) != 0

	if rawExp == expMask {
		if bits&(uint64(1)<<fi.MantBits-1) != 0 {
			return append(dst, opts.NaN()...)
		}
		if neg {
			dst = append(dst, '-')
		}
		return append(dst, opts.Inf()...)
	}

	if bits&^(uint64(1)<<(fi.ExpBits+fi.MantBits)) == 0 {
		if opts.TrimFloats() {
			return append(dst, '0')
		}
		if neg {
			dst = append(dst, '-')
		}
		return append(dst, '0', '.', '0')
	}

	if neg {
		dst = append(dst, '-')
	}

	_, mant, exp := fi.Decompose(bits)
	var scratch [core.MaxFloat64Size]byte
	d := digits{d: scratch[:]}
	if opts.Radix() == core.DecimalRadix {
		if !grisuShortest(&d, mant, exp, fi) {
			dragonShortest(&d, mant, exp, fi, core.DecimalRadix)
		}
	} else {
		dragonShortest(&d, mant, exp, fi, opts.Radix())
	}
	return appendLayout(dst, &d, opts)
}

// checkCapacity aborts slice-mode writers handed an undersized buffer.
func checkCapacity(have, need int) {
	if have < need {
		panic("ftoa: destination buffer smaller than the published maximum size")
	}
}
