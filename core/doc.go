// Package core provides the shared numeric plumbing for lexical:
// IEEE-754 bit layout descriptors, the 64-bit extended-precision float used by
// the fast conversion paths, digit alphabets, per-radix exact power tables,
// and the published maximum output sizes that define the buffer contract.
//
// What
//
//   - FloatInfo: mantissa/exponent geometry for float32 and float64, plus
//     decomposition of finite, non-zero values into (mantissa, exponent).
//   - ExtFloat: mant·2^exp with a full 64-bit mantissa — wide enough that
//     multiplication and digit extraction never lose bits relative to the
//     native float's precision. Constructed per call, never persisted.
//   - Digit alphabet helpers shared by every radix-aware package.
//   - MaxFloat64Size and friends: compile-time upper bounds on output length,
//     valid for every radix in [MinRadix, MaxRadix]. A destination buffer of
//     at least this size can never be overrun.
//
// Determinism & concurrency
//
//	Every table in this package is built once in init and never mutated.
//	All functions are pure; concurrent use requires no synchronization.
//
// Complexity
//
//	All operations are O(1) in the bit width of the type; nothing here
//	iterates over input content.
package core
