// SPDX-License-Identifier: MIT
// Package: lexical/ftoa
//
// layout.go — rendering a digit string as fixed or exponential text.

package ftoa

import (
	"github.com/katalvlaran/lexical/core"
	"github.com/katalvlaran/lexical/options"
)

// Fixed notation is used while the radix point lands in [fixedDPMin,
// fixedDPMax] relative to the first digit; outside that window the text
// switches to exponential form. The window matches the familiar decimal
// convention and applies to every radix.
const (
	fixedDPMin = -4
	fixedDPMax = 21
)

// appendLayout renders d (at least one digit, sign already emitted) after
// dst. The exponent of the exponential form is written in the same radix
// as the digits.
func appendLayout(dst []byte, d *digits, opts options.WriteFloatOptions) []byte {
	if d.dp >= fixedDPMin && d.dp <= fixedDPMax {
		return appendFixed(dst, d, opts)
	}
	return appendExponential(dst, d, opts)
}

// appendFixed renders positional notation: leading zeros below the radix
// point, or trailing zeros (and an optional ".0") above it.
func appendFixed(dst []byte, d *digits, opts options.WriteFloatOptions) []byte {
	switch {
	case d.dp <= 0:
		dst = append(dst, '0', '.')
		for i := d.dp; i < 0; i++ {
			dst = append(dst, '0')
		}
		return append(dst, d.d[:d.nd]...)

	case d.dp >= d.nd:
		dst = append(dst, d.d[:d.nd]...)
		for i := d.nd; i < d.dp; i++ {
			dst = append(dst, '0')
		}
		if !opts.TrimFloats() {
			dst = append(dst, '.', '0')
		}
		return dst

	default:
		dst = append(dst, d.d[:d.dp]...)
		dst = append(dst, '.')
		return append(dst, d.d[d.dp:d.nd]...)
	}
}

// appendExponential renders d₀.d₁…<marker><exponent> with the exponent in
// the active radix; a lone digit keeps a ".0" tail unless trimming.
func appendExponential(dst []byte, d *digits, opts options.WriteFloatOptions) []byte {
	dst = append(dst, d.d[0])
	if d.nd > 1 {
		dst = append(dst, '.')
		dst = append(dst, d.d[1:d.nd]...)
	} else if !opts.TrimFloats() {
		dst = append(dst, '.', '0')
	}
	dst = append(dst, opts.ExponentChar())
	return appendExponent(dst, d.dp-1, opts.Radix())
}

// appendExponent writes a signed exponent magnitude in the given radix.
// The magnitude never exceeds a few thousand, so 16 digit bytes suffice
// even in base 2.
func appendExponent(dst []byte, e, radix int) []byte {
	if e < 0 {
		dst = append(dst, '-')
		e = -e
	}
	var buf [16]byte
	i := len(buf)
	for {
		i--
		buf[i] = core.DigitByte(e % radix)
		e /= radix
		if e == 0 {
			break
		}
	}
	return append(dst, buf[i:]...)
}
