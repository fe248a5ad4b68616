// SPDX-License-Identifier: MIT
// Package: lexical/atof
//
// scan.go — the radix-aware float tokenizer.
//
// One forward pass splits the input into sign, special spelling or digit
// string, radix point and exponent, accumulating as much of the
// significand as fits a uint64. The full digit span is retained so the
// exact fallback can rebuild the untruncated significand later.

package atof

import (
	"github.com/katalvlaran/lexical/core"
	"github.com/katalvlaran/lexical/options"
)

// Special spellings recognized by the tokenizer.
const (
	specialNone = iota
	specialNaN
	specialInf
)

// maxExponent clamps explicit exponent accumulation; anything beyond is
// far outside every float range and only its sign matters.
const maxExponent = 1 << 20

// token is the tokenizer's digested view of one numeral.
type token struct {
	mantissa uint64 // leading significant digits, as many as fit
	ndMant   int    // digit count accumulated into mantissa
	exp      int    // radix power of mantissa's last digit
	dp       int    // radix-point position among ALL significant digits
	neg      bool
	trunc    bool   // nonzero digits beyond mantissa capacity were dropped
	special  int    // specialNone, specialNaN or specialInf
	digits   string // raw digit span (with point/separators) for the fallback
	consumed int
}

// scan tokenizes the longest numeral prefix of s. ok reports whether any
// numeral (digits or a special spelling) was found; consumed is valid
// either way.
func scan(s string, opts options.ParseFloatOptions) (tok token, ok bool) {
	radix := opts.Radix()
	sep := opts.Separator()
	marker := opts.ExponentChar()

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		tok.neg = s[i] == '-'
		i++
	}

	// Special spellings, longest first so "infinity" wins over "inf".
	switch {
	case hasPrefix(s[i:], opts.Infinity()):
		tok.special = specialInf
		tok.consumed = i + len(opts.Infinity())
		return tok, true
	case hasPrefix(s[i:], opts.Inf()):
		tok.special = specialInf
		tok.consumed = i + len(opts.Inf())
		return tok, true
	case hasPrefix(s[i:], opts.NaN()):
		tok.special = specialNaN
		tok.consumed = i + len(opts.NaN())
		return tok, true
	}

	digitsStart := i
	var (
		sawDot   bool
		anyDigit bool
		nd       int // significant digits seen
		dp       int
		prevSep  bool
		sepStart int
	)
	// Accumulation stays safe while mantissa*radix+digit cannot overflow.
	maxMant := (^uint64(0) - uint64(radix-1)) / uint64(radix)

	for ; i < len(s); i++ {
		c := s[i]
		if sep.Enabled() && c == sep.Separator {
			if !anyDigit && !sep.AllowLeading {
				break
			}
			if prevSep && !sep.AllowConsecutive {
				break
			}
			if !prevSep {
				sepStart = i
			}
			prevSep = true
			continue
		}
		if c == '.' {
			if sawDot {
				break
			}
			if prevSep && !sep.AllowTrailing {
				break
			}
			prevSep = false
			sawDot = true
			dp = nd
			continue
		}
		d, isDigit := core.DigitValue(c)
		if !isDigit || d >= radix {
			break
		}
		prevSep = false
		anyDigit = true
		if d == 0 && nd == 0 {
			// Leading zero: pure scale, not a significant digit.
			dp--
			continue
		}
		nd++
		if tok.mantissa <= maxMant {
			tok.mantissa = tok.mantissa*uint64(radix) + uint64(d)
			tok.ndMant++
		} else if d != 0 {
			tok.trunc = true
		}
	}
	if prevSep && !sep.AllowTrailing {
		// Trailing separators belong to whatever follows.
		i = sepStart
	}
	if !anyDigit {
		tok.consumed = 0
		return tok, false
	}
	if !sawDot {
		dp = nd
	}
	digitsEnd := i

	// Optional exponent: marker (either letter case), sign, digits in the
	// active radix. A dangling marker is handed back whole.
	if i < len(s) && markerMatch(s[i], marker) {
		markerAt := i
		i++
		esign := 1
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			if s[i] == '-' {
				esign = -1
			}
			i++
		}
		e, seen := 0, false
		prevSep = false
		for ; i < len(s); i++ {
			c := s[i]
			if sep.Enabled() && c == sep.Separator {
				if !seen && !sep.AllowLeading {
					break
				}
				if prevSep && !sep.AllowConsecutive {
					break
				}
				if !prevSep {
					sepStart = i
				}
				prevSep = true
				continue
			}
			d, isDigit := core.DigitValue(c)
			if !isDigit || d >= radix {
				break
			}
			prevSep = false
			seen = true
			if e < maxExponent {
				e = e*radix + d
			}
		}
		if prevSep && !sep.AllowTrailing {
			i = sepStart
		}
		if seen {
			dp += esign * e
		} else {
			i = markerAt
		}
	}

	tok.dp = dp
	tok.exp = dp - tok.ndMant
	tok.digits = s[digitsStart:digitsEnd]
	tok.consumed = i
	return tok, true
}

// hasPrefix is a case-sensitive, allocation-free prefix test; an empty
// pattern never matches.
func hasPrefix(s, prefix string) bool {
	return prefix != "" && len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

// markerMatch accepts the configured exponent marker in either letter
// case; non-letter markers must match exactly.
func markerMatch(c, marker byte) bool {
	if c == marker {
		return true
	}
	lc := c | 0x20
	if lc < 'a' || lc > 'z' {
		return false
	}
	return lc == marker|0x20
}
