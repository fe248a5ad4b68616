// SPDX-License-Identifier: MIT
// Package: lexical/itoa — writer tests against the strconv oracle.

package itoa_test

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lexical/core"
	"github.com/katalvlaran/lexical/itoa"
	"github.com/katalvlaran/lexical/options"
)

func intOpts(t *testing.T, radix int) options.WriteIntegerOptions {
	t.Helper()
	o, err := options.NewWriteIntegerBuilder().Radix(radix).Build()
	require.NoError(t, err)
	return o
}

// TestAppendUint64_AllRadixes cross-checks every radix against strconv on
// edge values and a deterministic random sample.
func TestAppendUint64_AllRadixes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	values := []uint64{0, 1, 9, 10, 35, 36, 99, 100, 12345, math.MaxUint32, math.MaxUint64}
	for i := 0; i < 50; i++ {
		values = append(values, rng.Uint64())
	}
	for radix := core.MinRadix; radix <= core.MaxRadix; radix++ {
		o := intOpts(t, radix)
		for _, v := range values {
			got := string(itoa.AppendUint64(nil, v, o))
			want := strconv.FormatUint(v, radix)
			require.Equal(t, want, got, "radix %d, value %d", radix, v)
		}
	}
}

// TestAppendInt64 covers signs, including the minimum value whose
// magnitude does not fit int64.
func TestAppendInt64(t *testing.T) {
	values := []int64{0, 1, -1, 42, -42, math.MaxInt64, math.MinInt64}
	for _, radix := range []int{2, 8, 10, 16, 36} {
		o := intOpts(t, radix)
		for _, v := range values {
			got := string(itoa.AppendInt64(nil, v, o))
			require.Equal(t, strconv.FormatInt(v, radix), got, "radix %d, value %d", radix, v)
		}
	}
}

// TestAppend32 covers the narrow widths.
func TestAppend32(t *testing.T) {
	o := intOpts(t, 16)
	require.Equal(t, "ffffffff", string(itoa.AppendUint32(nil, math.MaxUint32, o)))
	require.Equal(t, "-80000000", string(itoa.AppendInt32(nil, math.MinInt32, o)))
	require.Equal(t, "0", string(itoa.AppendUint32(nil, 0, o)))
}

// TestAppendExtends appends after existing content without clobbering it.
func TestAppendExtends(t *testing.T) {
	o := intOpts(t, 10)
	dst := []byte("x=")
	dst = itoa.AppendInt64(dst, -7, o)
	require.Equal(t, "x=-7", string(dst))
}

// TestWriteSliceMode checks the count-returning writers and their panic on
// an undersized destination.
func TestWriteSliceMode(t *testing.T) {
	o := intOpts(t, 10)

	buf := make([]byte, core.MaxUint64Size)
	n := itoa.WriteUint64(buf, 123456, o)
	require.Equal(t, "123456", string(buf[:n]))

	buf64 := make([]byte, core.MaxInt64Size)
	n = itoa.WriteInt64(buf64, math.MinInt64, o)
	require.Equal(t, "-9223372036854775808", string(buf64[:n]))

	buf32 := make([]byte, core.MaxInt32Size)
	n = itoa.WriteInt32(buf32, -12, intOpts(t, 2))
	require.Equal(t, "-1100", string(buf32[:n]))

	n = itoa.WriteUint32(buf32[:core.MaxUint32Size], 7, o)
	require.Equal(t, "7", string(buf32[:n]))

	require.Panics(t, func() {
		itoa.WriteUint64(make([]byte, core.MaxUint64Size-1), 1, o)
	})
	require.Panics(t, func() {
		itoa.WriteInt32(make([]byte, 0), 1, o)
	})
}
