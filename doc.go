// Package lexical converts machine numbers to and from their textual form —
// in either direction, in any radix from 2 to 36 — with two promises that
// usually fight each other: exact round-trips and raw speed.
//
// 🚀 What is lexical?
//
//	A small, allocation-conscious conversion engine that brings together:
//		• Shortest round-trip float formatting (Grisu3 fast path, Dragon4 exact path)
//		• Correctly rounded float parsing with a certified fast path and a
//		  big-integer fallback for the cases the fast path cannot prove
//		• Integer formatting and parsing for every radix in [2,36]
//		• Builder-validated, immutable option sets (radix, exponent marker,
//		  digit separators, NaN/Infinity spellings, rounding mode)
//		• Fixed, published maximum output sizes so callers can stack-allocate
//
// ✨ Why choose lexical?
//
//   - Round-trip fidelity – parse(format(f)) reproduces the exact bit pattern
//   - Shortest output – never a digit more than uniqueness requires
//   - Deterministic – pure functions; no hidden state, no locks, no surprises
//   - Heap-friendly – callers own every buffer; the slice APIs never allocate
//
// Everything is organized under six subpackages:
//
//	core/    — float bit layout, extended-precision arithmetic, size constants
//	options/ — validated ParseFloat/ParseInteger/WriteFloat/WriteInteger options
//	ftoa/    — float → text (shortest round-trip digit generation)
//	atof/    — text → float (checked and partial parsing, rounding modes)
//	itoa/    — integer → text
//	atoi/    — text → integer
//
// Quick taste:
//
//	var buf [core.MaxFloat64Size]byte
//	opts := options.WriteFloatDecimal()
//	n := ftoa.WriteFloat64(buf[:], 1.2345e+38, opts) // buf[:n] == "1.2345e38"
//	back, err := atof.Parse64(string(buf[:n]), options.ParseFloatDecimal())
//	// back == 1.2345e+38, bit for bit
//
// Dive into the per-package documentation for contracts, invariants and the
// exact grammar accepted by the parsers.
//
//	go get github.com/katalvlaran/lexical
package lexical
