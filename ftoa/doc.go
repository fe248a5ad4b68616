// SPDX-License-Identifier: MIT

// Package ftoa converts floats to their shortest round-tripping text in any
// radix from 2 to 36.
//
// What this package provides:
//
//	✔ WriteFloat64 / WriteFloat32 — slice-mode writers that fill a
//	  caller-supplied buffer and return the byte count.
//	✔ AppendFloat64 / AppendFloat32 — append-mode writers in the manner of
//	  strconv.AppendFloat.
//
// The emitted digit string is the SHORTEST one that parses back to exactly
// the input float, with correct rounding among the candidates of that
// length. Two generators cooperate:
//
//	• Grisu3 over 64-bit extended floats handles base 10. It is fast but
//	  occasionally uncertain; it reports failure rather than guess.
//	• Dragon4 over math/big integers handles every radix and doubles as the
//	  fallback whenever Grisu3 declines. It is exact by construction.
//
// Layout follows the familiar decimal convention in every base: fixed
// notation while the radix point lands within (-5, 21], exponential
// otherwise, with the exponent digits themselves written in the active
// radix. Special values and the exponent marker byte come from
// options.WriteFloatOptions.
//
// Contract:
//
//	• Slice-mode writers panic when the destination is shorter than
//	  core.MaxFloat64Size (resp. core.MaxFloat32Size). An undersized buffer
//	  is a programmer error, not a runtime condition.
//	• Output is deterministic: same value, same options, same bytes.
package ftoa
