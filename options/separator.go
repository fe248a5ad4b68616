// SPDX-License-Identifier: MIT
// Package: lexical/options
//
// separator.go — digit-grouping policy attached to parse options.

package options

// SeparatorPolicy describes where a digit-grouping byte may legally appear
// inside a run of digits. The zero value disables grouping entirely.
//
// A separator in a position the policy forbids is a parse failure at that
// byte's offset, never a silent skip.
type SeparatorPolicy struct {
	// Separator is the grouping byte, e.g. '_'. Zero disables grouping.
	Separator byte
	// AllowLeading permits a separator before the first digit of a run
	// (after any sign), e.g. "_123".
	AllowLeading bool
	// AllowTrailing permits a separator after the last digit of a run,
	// e.g. "123_".
	AllowTrailing bool
	// AllowConsecutive permits runs of adjacent separators, e.g. "1__2".
	AllowConsecutive bool
}

// Enabled reports whether digit grouping is active.
func (p SeparatorPolicy) Enabled() bool {
	return p.Separator != 0
}
