// SPDX-License-Identifier: MIT

// Package itoa converts machine integers to text in any radix from 2 to 36.
//
// What this package provides:
//
//	✔ WriteUint64 / WriteInt64 / WriteUint32 / WriteInt32 — slice-mode
//	  writers that fill a caller-supplied buffer and return the byte count.
//	✔ AppendUint64 / AppendInt64 / AppendUint32 / AppendInt32 — append-mode
//	  writers that grow a destination slice, in the manner of strconv.
//
// Contract:
//
//	• Slice-mode writers panic when the destination is shorter than the
//	  matching core.Max*Size bound. Sizing the buffer is a static property
//	  of the call site, so an undersized buffer is a programmer error, not
//	  a runtime condition to report.
//	• Output uses lower-case digits beyond 9 and carries no sign for the
//	  unsigned writers; signed writers emit a leading '-' for negatives.
//	• The radix comes from options.WriteIntegerOptions, which can only be
//	  constructed in a validated state; no entry point re-checks it.
//
// The radix-10 path runs on a two-digit lookup table; every other radix
// divides digit by digit, with a shift fast path for powers of two.
package itoa
