// SPDX-License-Identifier: MIT
// Package: lexical/options
//
// errors.go — sentinel errors for the options builders.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Build methods wrap sentinels with field context via %w; they never
//     panic. Preset constructors panic on an impossible failure, because a
//     failing preset is a programmer error inside this package.

package options

import "errors"

// ErrInvalidRadix indicates a radix outside [2,36].
// Usage: if errors.Is(err, ErrInvalidRadix) { /* fix the radix */ }.
var ErrInvalidRadix = errors.New("options: radix out of range")

// ErrInvalidExponentChar indicates an exponent marker that is a valid digit
// in the configured radix and would be indistinguishable from mantissa text.
var ErrInvalidExponentChar = errors.New("options: exponent marker collides with a digit")

// ErrInvalidSeparator indicates a digit separator that is a valid digit in
// the configured radix, or equal to the exponent marker.
var ErrInvalidSeparator = errors.New("options: digit separator collides with a digit or marker")

// ErrInvalidNaN indicates a NaN spelling that does not begin with 'N'/'n'.
var ErrInvalidNaN = errors.New("options: NaN spelling must begin with N")

// ErrInvalidInf indicates a short-infinity spelling that does not begin
// with 'I'/'i'.
var ErrInvalidInf = errors.New("options: infinity spelling must begin with I")

// ErrInvalidInfinity indicates a long-infinity spelling shorter than the
// short spelling or with a mismatched prefix letter.
var ErrInvalidInfinity = errors.New("options: long infinity spelling inconsistent with short spelling")

// ErrInvalidRounding indicates an undeclared rounding mode value.
var ErrInvalidRounding = errors.New("options: unknown rounding mode")
