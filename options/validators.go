// SPDX-License-Identifier: MIT
// Package: lexical/options
//
// validators.go — cross-field invariant checks shared by every Build.
//
// Each validator returns a wrapped sentinel on violation; Build methods run
// them in a fixed order (radix → marker → separator → rounding → spellings)
// and stop at the first failure.

package options

import (
	"fmt"

	"github.com/katalvlaran/lexical/core"
)

// validateRadix ensures radix ∈ [core.MinRadix, core.MaxRadix].
func validateRadix(radix int) error {
	if !core.ValidRadix(radix) {
		return fmt.Errorf("%w: got %d, want [%d,%d]", ErrInvalidRadix, radix, core.MinRadix, core.MaxRadix)
	}
	return nil
}

// validateExponentChar ensures the marker cannot be mistaken for a digit
// or for the radix point.
func validateExponentChar(marker byte, radix int) error {
	if core.IsDigit(marker, radix) {
		return fmt.Errorf("%w: %q is a digit in base %d", ErrInvalidExponentChar, marker, radix)
	}
	if marker == '.' {
		return fmt.Errorf("%w: %q is the radix point", ErrInvalidExponentChar, marker)
	}
	return nil
}

// validateSeparator ensures an enabled separator is not a digit of the
// radix, the exponent marker or the radix point.
func validateSeparator(p SeparatorPolicy, radix int, marker byte) error {
	if !p.Enabled() {
		return nil
	}
	if core.IsDigit(p.Separator, radix) {
		return fmt.Errorf("%w: %q is a digit in base %d", ErrInvalidSeparator, p.Separator, radix)
	}
	if p.Separator == marker {
		return fmt.Errorf("%w: %q equals the exponent marker", ErrInvalidSeparator, p.Separator)
	}
	if p.Separator == '.' {
		return fmt.Errorf("%w: %q is the radix point", ErrInvalidSeparator, p.Separator)
	}
	return nil
}

// validateRounding ensures the mode is one of the declared kinds.
func validateRounding(k RoundingKind) error {
	if !k.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidRounding, uint8(k))
	}
	return nil
}

// validateNaN ensures the NaN spelling starts with 'N'/'n'.
func validateNaN(s string) error {
	if len(s) == 0 || (s[0] != 'N' && s[0] != 'n') {
		return fmt.Errorf("%w: got %q", ErrInvalidNaN, s)
	}
	return nil
}

// validateInf ensures the short infinity spelling starts with 'I'/'i'.
func validateInf(s string) error {
	if len(s) == 0 || (s[0] != 'I' && s[0] != 'i') {
		return fmt.Errorf("%w: got %q", ErrInvalidInf, s)
	}
	return nil
}

// validateInfinity ensures the long spelling is no shorter than the short
// one and begins with the same letter class.
func validateInfinity(long, short string) error {
	if err := validateInf(long); err != nil {
		return fmt.Errorf("%w: long spelling %q", ErrInvalidInfinity, long)
	}
	if len(long) < len(short) {
		return fmt.Errorf("%w: %q shorter than %q", ErrInvalidInfinity, long, short)
	}
	return nil
}
