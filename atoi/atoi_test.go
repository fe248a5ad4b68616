// SPDX-License-Identifier: MIT
// Package: lexical/atoi — parser tests: oracle checks, separators, offsets.

package atoi_test

import (
	"errors"
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lexical/atoi"
	"github.com/katalvlaran/lexical/core"
	"github.com/katalvlaran/lexical/itoa"
	"github.com/katalvlaran/lexical/options"
)

func parseOpts(t *testing.T, radix int) options.ParseIntegerOptions {
	t.Helper()
	o, err := options.NewParseIntegerBuilder().Radix(radix).Build()
	require.NoError(t, err)
	return o
}

// TestParseUint64_Oracle cross-checks plain numerals against strconv over
// every radix.
func TestParseUint64_Oracle(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	values := []uint64{0, 1, 35, 12345, math.MaxUint64}
	for i := 0; i < 30; i++ {
		values = append(values, rng.Uint64())
	}
	for radix := core.MinRadix; radix <= core.MaxRadix; radix++ {
		o := parseOpts(t, radix)
		for _, v := range values {
			s := strconv.FormatUint(v, radix)
			got, err := atoi.ParseUint64(s, o)
			require.NoError(t, err, "radix %d, %q", radix, s)
			require.Equal(t, v, got, "radix %d, %q", radix, s)
		}
	}
}

// TestParseInt64_RoundTrip feeds the itoa writer's output back through the
// parser, signs included.
func TestParseInt64_RoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, math.MaxInt64, math.MinInt64, 42, -987654321}
	for _, radix := range []int{2, 10, 16, 36} {
		wo, err := options.NewWriteIntegerBuilder().Radix(radix).Build()
		require.NoError(t, err)
		po := parseOpts(t, radix)
		for _, v := range values {
			s := string(itoa.AppendInt64(nil, v, wo))
			got, err := atoi.ParseInt64(s, po)
			require.NoError(t, err, "radix %d, %q", radix, s)
			require.Equal(t, v, got)
		}
	}
}

// TestParse_Signs covers explicit '+' and the sign rules per kind.
func TestParse_Signs(t *testing.T) {
	o := parseOpts(t, 10)

	v, err := atoi.ParseInt64("+42", o)
	require.NoError(t, err)
	require.Equal(t, int64(42), v)

	u, err := atoi.ParseUint64("+42", o)
	require.NoError(t, err)
	require.Equal(t, uint64(42), u)

	// '-' is not a digit for the unsigned parsers.
	_, err = atoi.ParseUint64("-42", o)
	require.ErrorIs(t, err, core.ErrSyntax)
}

// TestParse_Errors pins the sentinel and byte offset of each failure class.
func TestParse_Errors(t *testing.T) {
	o := parseOpts(t, 10)

	cases := []struct {
		in     string
		want   error
		offset int
	}{
		{"", core.ErrEmpty, 0},
		{"+", core.ErrEmpty, 1},
		{"-", core.ErrEmpty, 1},
		{"abc", core.ErrSyntax, 0},
		{"12a", core.ErrSyntax, 2},
		{"1 2", core.ErrSyntax, 1},
		{"18446744073709551616", core.ErrRange, 19}, // MaxUint64+1
		{"99999999999999999999999", core.ErrRange, 19},
	}
	for _, c := range cases {
		_, err := atoi.ParseUint64(c.in, o)
		require.ErrorIs(t, err, c.want, "input %q", c.in)
		var pe *core.ParseError
		require.True(t, errors.As(err, &pe), "input %q", c.in)
		require.Equal(t, c.offset, pe.Offset, "input %q", c.in)
	}
}

// TestParseInt64_Range covers both signed boundaries and one step past.
func TestParseInt64_Range(t *testing.T) {
	o := parseOpts(t, 10)

	v, err := atoi.ParseInt64("-9223372036854775808", o)
	require.NoError(t, err)
	require.Equal(t, int64(math.MinInt64), v)

	_, err = atoi.ParseInt64("9223372036854775808", o)
	require.ErrorIs(t, err, core.ErrRange)

	_, err = atoi.ParseInt64("-9223372036854775809", o)
	require.ErrorIs(t, err, core.ErrRange)

	w, err := atoi.ParseInt32("-2147483648", o)
	require.NoError(t, err)
	require.Equal(t, int32(math.MinInt32), w)

	_, err = atoi.ParseInt32("2147483648", o)
	require.ErrorIs(t, err, core.ErrRange)

	_, err = atoi.ParseUint32("4294967296", o)
	require.ErrorIs(t, err, core.ErrRange)
}

// TestParsePartial consumes the longest valid prefix and reports the count.
func TestParsePartial(t *testing.T) {
	o := parseOpts(t, 10)

	v, n, err := atoi.ParseUint64Partial("1a", o)
	require.NoError(t, err)
	require.Equal(t, uint64(1), v)
	require.Equal(t, 1, n)

	s, n, err := atoi.ParseInt64Partial("-123 apples", o)
	require.NoError(t, err)
	require.Equal(t, int64(-123), s)
	require.Equal(t, 4, n)

	_, _, err = atoi.ParseUint64Partial("x1", o)
	require.ErrorIs(t, err, core.ErrSyntax)

	// Overflow is an error even in partial mode.
	_, _, err = atoi.ParseUint64Partial("18446744073709551616xyz", o)
	require.ErrorIs(t, err, core.ErrRange)
}

// TestSeparators exercises every grouping flag combination the policy
// distinguishes.
func TestSeparators(t *testing.T) {
	build := func(p options.SeparatorPolicy) options.ParseIntegerOptions {
		o, err := options.NewParseIntegerBuilder().Separator(p).Build()
		require.NoError(t, err)
		return o
	}
	internal := build(options.SeparatorPolicy{Separator: '_'})

	v, err := atoi.ParseUint64("1_000_000", internal)
	require.NoError(t, err)
	require.Equal(t, uint64(1000000), v)

	// Leading separator needs its flag.
	_, err = atoi.ParseUint64("_100", internal)
	require.ErrorIs(t, err, core.ErrSyntax)
	leading := build(options.SeparatorPolicy{Separator: '_', AllowLeading: true})
	v, err = atoi.ParseUint64("_100", leading)
	require.NoError(t, err)
	require.Equal(t, uint64(100), v)

	// Trailing separator needs its flag.
	_, err = atoi.ParseUint64("100_", internal)
	require.ErrorIs(t, err, core.ErrSyntax)
	trailing := build(options.SeparatorPolicy{Separator: '_', AllowTrailing: true})
	v, err = atoi.ParseUint64("100_", trailing)
	require.NoError(t, err)
	require.Equal(t, uint64(100), v)

	// Consecutive separators need theirs.
	_, err = atoi.ParseUint64("1__2", internal)
	require.ErrorIs(t, err, core.ErrSyntax)
	consecutive := build(options.SeparatorPolicy{Separator: '_', AllowConsecutive: true})
	v, err = atoi.ParseUint64("1__2", consecutive)
	require.NoError(t, err)
	require.Equal(t, uint64(12), v)

	// Partial mode hands trailing separators back instead of failing.
	v, n, err := atoi.ParseUint64Partial("12_", internal)
	require.NoError(t, err)
	require.Equal(t, uint64(12), v)
	require.Equal(t, 2, n)
}
