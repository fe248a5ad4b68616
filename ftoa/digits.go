// SPDX-License-Identifier: MIT
// Package: lexical/ftoa
//
// digits.go — the digit-string form shared by both generators.

package ftoa

// digits is a not-yet-laid-out numeral: d[:nd] holds digit BYTES (already
// in the output alphabet) and the radix point sits dp positions after the
// first digit, so the value reads 0.d₀d₁… × radix^dp. Sign, layout and
// exponent rendering happen later.
type digits struct {
	d  []byte
	nd int
	dp int
}

// trimTrailingZeros drops redundant trailing zero digits; a numeral that
// collapses entirely is canonicalized to nd=0, dp=0.
func (d *digits) trimTrailingZeros() {
	for d.nd > 0 && d.d[d.nd-1] == '0' {
		d.nd--
	}
	if d.nd == 0 {
		d.dp = 0
	}
}
