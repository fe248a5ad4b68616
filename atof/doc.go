// SPDX-License-Identifier: MIT

// Package atof converts text to floats in any radix from 2 to 36, with
// correct rounding under the configured rounding mode.
//
// What this package provides:
//
//	✔ Parse64 / Parse32 — complete-mode parsers that require the whole
//	  input to be one numeral and report failures as *core.ParseError with
//	  a byte offset.
//	✔ Parse64Partial / Parse32Partial — partial-mode parsers that consume
//	  the longest valid prefix and return the value with the byte count.
//
// The pipeline behind every entry point:
//
//	1. Tokenize: sign, the configured special spellings (long infinity
//	   before short, all case-sensitive), digit runs with the separator
//	   policy, an optional radix point, and an optional exponent whose
//	   digits are written in the active radix.
//	2. Convert, cheapest sufficient path first:
//	   • lossy native arithmetic when the options ask for speed;
//	   • one exact native multiply or divide when the significand and the
//	     radix power are both exactly representable;
//	   • pure exponent arithmetic for power-of-two radixes;
//	   • a certified extended-float pass for base 10;
//	   • an exact big-integer ratio otherwise, folding any truncated
//	     digit tail into a sticky bit.
//
// The native and extended-float shortcuts fire only under NearestTieEven;
// every other rounding mode routes through the exact path, which honours
// the mode bit for bit. Float overflow saturates silently: to infinity
// under the nearest modes, to the largest finite value under modes that
// round toward zero for the input's sign.
package atof
