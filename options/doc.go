// Package options provides the immutable, builder-validated configuration
// records consumed by every lexical conversion call: ParseFloatOptions,
// ParseIntegerOptions, WriteFloatOptions and WriteIntegerOptions.
//
// What
//
//   - A mutable draft builder per record, with independent setters and one
//     terminal Build that re-runs every cross-field invariant in a fixed
//     order and stops at the first violation.
//   - Validated invariants (checked once, never re-checked per call):
//   - radix ∈ [2,36]
//   - exponent marker is not a valid digit of the radix
//   - digit separator (when enabled) is not a digit and differs from the marker
//   - NaN spelling starts with 'N'/'n'
//   - short-infinity spelling starts with 'I'/'i'
//   - long-infinity is at least as long as short-infinity and shares its prefix
//   - rounding mode is a declared RoundingKind
//   - Preset constructors (Decimal, Binary, Hexadecimal) that route through
//     the same Build path, so a preset can never encode an invalid state.
//
// Why
//
//	Validating once at build time keeps the conversion hot paths free of
//	per-call checks, and makes an invalid configuration unrepresentable:
//	the only way to obtain an options value is through Build.
//
// Determinism
//
//	Option records are plain values; callers copy them freely. Nothing in
//	this package mutates after Build returns.
package options
