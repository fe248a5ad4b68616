// SPDX-License-Identifier: MIT
// Package: lexical/options — builder, preset and validation tests.

package options_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lexical/options"
)

// TestParseFloatDefaults verifies the deterministic defaults of the parse
// builder and the decimal preset.
func TestParseFloatDefaults(t *testing.T) {
	o, err := options.NewParseFloatBuilder().Build()
	require.NoError(t, err)
	require.Equal(t, 10, o.Radix())
	require.False(t, o.Lossy())
	require.Equal(t, byte('e'), o.ExponentChar())
	require.Equal(t, options.NearestTieEven, o.Rounding())
	require.False(t, o.Separator().Enabled())
	require.Equal(t, "NaN", o.NaN())
	require.Equal(t, "inf", o.Inf())
	require.Equal(t, "infinity", o.Infinity())

	require.Equal(t, o, options.ParseFloatDecimal())
}

// TestPresets pins radix and marker of every preset constructor.
func TestPresets(t *testing.T) {
	require.Equal(t, 2, options.ParseFloatBinary().Radix())
	require.Equal(t, byte('e'), options.ParseFloatBinary().ExponentChar())
	require.Equal(t, 16, options.ParseFloatHexadecimal().Radix())
	require.Equal(t, byte('p'), options.ParseFloatHexadecimal().ExponentChar())

	require.Equal(t, 2, options.WriteFloatBinary().Radix())
	require.Equal(t, 16, options.WriteFloatHexadecimal().Radix())
	require.Equal(t, byte('p'), options.WriteFloatHexadecimal().ExponentChar())

	require.Equal(t, 10, options.ParseIntegerDecimal().Radix())
	require.Equal(t, 2, options.ParseIntegerBinary().Radix())
	require.Equal(t, 16, options.WriteIntegerHexadecimal().Radix())
}

// TestDefaultExponentChar covers the three marker bands.
func TestDefaultExponentChar(t *testing.T) {
	require.Equal(t, byte('e'), options.DefaultExponentChar(10))
	require.Equal(t, byte('e'), options.DefaultExponentChar(14))
	require.Equal(t, byte('p'), options.DefaultExponentChar(15))
	require.Equal(t, byte('p'), options.DefaultExponentChar(16))
	require.Equal(t, byte('p'), options.DefaultExponentChar(25))
	require.Equal(t, byte('^'), options.DefaultExponentChar(26))
	require.Equal(t, byte('^'), options.DefaultExponentChar(36))
}

// TestBuildRejections walks every invariant violation and matches it to
// its sentinel with errors.Is.
func TestBuildRejections(t *testing.T) {
	cases := []struct {
		name string
		b    *options.ParseFloatBuilder
		want error
	}{
		{"radix too small", options.NewParseFloatBuilder().Radix(1), options.ErrInvalidRadix},
		{"radix too large", options.NewParseFloatBuilder().Radix(37), options.ErrInvalidRadix},
		{"marker is a digit", options.NewParseFloatBuilder().ExponentChar('5'), options.ErrInvalidExponentChar},
		{"marker digit in base 16", options.NewParseFloatBuilder().Radix(16).ExponentChar('e'), options.ErrInvalidExponentChar},
		{"marker is the radix point", options.NewParseFloatBuilder().ExponentChar('.'), options.ErrInvalidExponentChar},
		{"separator is a digit", options.NewParseFloatBuilder().Separator(options.SeparatorPolicy{Separator: '0'}), options.ErrInvalidSeparator},
		{"separator is the radix point", options.NewParseFloatBuilder().Separator(options.SeparatorPolicy{Separator: '.'}), options.ErrInvalidSeparator},
		{"separator equals marker", options.NewParseFloatBuilder().Separator(options.SeparatorPolicy{Separator: 'e'}), options.ErrInvalidSeparator},
		{"unknown rounding", options.NewParseFloatBuilder().Rounding(options.RoundingKind(99)), options.ErrInvalidRounding},
		{"bad NaN spelling", options.NewParseFloatBuilder().NaN("foo"), options.ErrInvalidNaN},
		{"empty NaN spelling", options.NewParseFloatBuilder().NaN(""), options.ErrInvalidNaN},
		{"bad inf spelling", options.NewParseFloatBuilder().Inf("oo"), options.ErrInvalidInf},
		{"bad long infinity", options.NewParseFloatBuilder().Infinity("boundless"), options.ErrInvalidInfinity},
		{"short long infinity", options.NewParseFloatBuilder().Infinity("in"), options.ErrInvalidInfinity},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := c.b.Build()
			require.ErrorIs(t, err, c.want)
		})
	}
}

// TestBuildOrder ensures the first violation in the fixed validation order
// wins when several fields are wrong.
func TestBuildOrder(t *testing.T) {
	_, err := options.NewParseFloatBuilder().Radix(99).NaN("junk").Build()
	require.ErrorIs(t, err, options.ErrInvalidRadix)

	_, err = options.NewParseFloatBuilder().ExponentChar('7').NaN("junk").Build()
	require.ErrorIs(t, err, options.ErrInvalidExponentChar)
}

// TestMarkerFollowsRadix checks that an unset marker is resolved from the
// final radix at Build time, not from the default radix.
func TestMarkerFollowsRadix(t *testing.T) {
	o, err := options.NewParseFloatBuilder().Radix(16).Build()
	require.NoError(t, err)
	require.Equal(t, byte('p'), o.ExponentChar())

	w, err := options.NewWriteFloatBuilder().Radix(36).Build()
	require.NoError(t, err)
	require.Equal(t, byte('^'), w.ExponentChar())
}

// TestWriteFloatBuilder covers the write-side record.
func TestWriteFloatBuilder(t *testing.T) {
	o, err := options.NewWriteFloatBuilder().TrimFloats(true).NaN("nan").Inf("Inf").Build()
	require.NoError(t, err)
	require.True(t, o.TrimFloats())
	require.Equal(t, "nan", o.NaN())
	require.Equal(t, "Inf", o.Inf())
	require.Equal(t, byte('e'), o.ExponentChar())
}

// TestIntegerBuilders covers the slim integer records.
func TestIntegerBuilders(t *testing.T) {
	_, err := options.NewWriteIntegerBuilder().Radix(0).Build()
	require.ErrorIs(t, err, options.ErrInvalidRadix)

	p, err := options.NewParseIntegerBuilder().
		Radix(16).
		Separator(options.SeparatorPolicy{Separator: '_', AllowConsecutive: true}).
		Build()
	require.NoError(t, err)
	require.Equal(t, 16, p.Radix())
	require.True(t, p.Separator().Enabled())
	require.True(t, p.Separator().AllowConsecutive)

	_, err = options.NewParseIntegerBuilder().
		Radix(36).
		Separator(options.SeparatorPolicy{Separator: 'x'}).
		Build()
	require.ErrorIs(t, err, options.ErrInvalidSeparator)
}

// TestRoundingString pins the mode names.
func TestRoundingString(t *testing.T) {
	require.Equal(t, "NearestTieEven", options.NearestTieEven.String())
	require.Equal(t, "TowardZero", options.TowardZero.String())
	require.Equal(t, "RoundingKind(?)", options.RoundingKind(200).String())
}
