// SPDX-License-Identifier: MIT
// Package: lexical/itoa
//
// format.go — the radix-generic digit generator shared by every writer.

package itoa

import (
	"math/bits"

	"github.com/katalvlaran/lexical/core"
)

// smallsString holds the concatenated two-digit decimal spellings 00..99,
// letting the base-10 loop peel two digits per division.
const smallsString = "00010203040506070809" +
	"10111213141516171819" +
	"20212223242526272829" +
	"30313233343536373839" +
	"40414243444546474849" +
	"50515253545556575859" +
	"60616263646566676869" +
	"70717273747576777879" +
	"80818283848586878889" +
	"90919293949596979899"

// formatBits fills the tail of scratch with the base-radix text of u,
// prepends '-' when neg, and returns the populated sub-slice. The scratch
// array is sized for the worst case (sign plus 64 binary digits), so the
// backwards loop can never underrun.
func formatBits(scratch *[core.MaxInt64Size]byte, u uint64, radix int, neg bool) []byte {
	i := len(scratch)

	switch {
	case radix == core.DecimalRadix:
		for u >= 100 {
			is := u % 100 * 2
			u /= 100
			i -= 2
			scratch[i+1] = smallsString[is+1]
			scratch[i+0] = smallsString[is+0]
		}
		if u >= 10 {
			is := u * 2
			i -= 2
			scratch[i+1] = smallsString[is+1]
			scratch[i+0] = smallsString[is+0]
		} else {
			i--
			scratch[i] = byte('0' + u)
		}

	case radix&(radix-1) == 0:
		// Power-of-two radix: shift and mask instead of dividing.
		shift := uint(bits.TrailingZeros(uint(radix)))
		mask := uint64(radix) - 1
		for u >= uint64(radix) {
			i--
			scratch[i] = core.DigitByte(int(u & mask))
			u >>= shift
		}
		i--
		scratch[i] = core.DigitByte(int(u))

	default:
		b := uint64(radix)
		for u >= b {
			i--
			q := u / b
			scratch[i] = core.DigitByte(int(u - q*b))
			u = q
		}
		i--
		scratch[i] = core.DigitByte(int(u))
	}

	if neg {
		i--
		scratch[i] = '-'
	}
	return scratch[i:]
}
