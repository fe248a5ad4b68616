// SPDX-License-Identifier: MIT
// Package: lexical/itoa
//
// api.go — public slice-mode and append-mode integer writers.

package itoa

import (
	"github.com/katalvlaran/lexical/core"
	"github.com/katalvlaran/lexical/options"
)

// WriteUint64 writes v in the configured radix into buf and returns the
// number of bytes written. Panics when len(buf) < core.MaxUint64Size.
func WriteUint64(buf []byte, v uint64, opts options.WriteIntegerOptions) int {
	checkCapacity(len(buf), core.MaxUint64Size)
	var scratch [core.MaxInt64Size]byte
	return copy(buf, formatBits(&scratch, v, opts.Radix(), false))
}

// WriteInt64 writes v in the configured radix into buf and returns the
// number of bytes written. Panics when len(buf) < core.MaxInt64Size.
func WriteInt64(buf []byte, v int64, opts options.WriteIntegerOptions) int {
	checkCapacity(len(buf), core.MaxInt64Size)
	u, neg := unsignedAbs(v)
	var scratch [core.MaxInt64Size]byte
	return copy(buf, formatBits(&scratch, u, opts.Radix(), neg))
}

// WriteUint32 writes v in the configured radix into buf and returns the
// number of bytes written. Panics when len(buf) < core.MaxUint32Size.
func WriteUint32(buf []byte, v uint32, opts options.WriteIntegerOptions) int {
	checkCapacity(len(buf), core.MaxUint32Size)
	var scratch [core.MaxInt64Size]byte
	return copy(buf, formatBits(&scratch, uint64(v), opts.Radix(), false))
}

// WriteInt32 writes v in the configured radix into buf and returns the
// number of bytes written. Panics when len(buf) < core.MaxInt32Size.
func WriteInt32(buf []byte, v int32, opts options.WriteIntegerOptions) int {
	checkCapacity(len(buf), core.MaxInt32Size)
	u, neg := unsignedAbs(int64(v))
	var scratch [core.MaxInt64Size]byte
	return copy(buf, formatBits(&scratch, u, opts.Radix(), neg))
}

// AppendUint64 appends v in the configured radix to dst and returns the
// extended slice.
func AppendUint64(dst []byte, v uint64, opts options.WriteIntegerOptions) []byte {
	var scratch [core.MaxInt64Size]byte
	return append(dst, formatBits(&scratch, v, opts.Radix(), false)...)
}

// AppendInt64 appends v in the configured radix to dst and returns the
// extended slice.
func AppendInt64(dst []byte, v int64, opts options.WriteIntegerOptions) []byte {
	u, neg := unsignedAbs(v)
	var scratch [core.MaxInt64Size]byte
	return append(dst, formatBits(&scratch, u, opts.Radix(), neg)...)
}

// AppendUint32 appends v in the configured radix to dst and returns the
// extended slice.
func AppendUint32(dst []byte, v uint32, opts options.WriteIntegerOptions) []byte {
	var scratch [core.MaxInt64Size]byte
	return append(dst, formatBits(&scratch, uint64(v), opts.Radix(), false)...)
}

// AppendInt32 appends v in the configured radix to dst and returns the
// extended slice.
func AppendInt32(dst []byte, v int32, opts options.WriteIntegerOptions) []byte {
	u, neg := unsignedAbs(int64(v))
	var scratch [core.MaxInt64Size]byte
	return append(dst, formatBits(&scratch, u, opts.Radix(), neg)...)
}

// unsignedAbs splits v into magnitude and sign; the two's complement
// negation is exact even for math.MinInt64.
func unsignedAbs(v int64) (uint64, bool) {
	if v < 0 {
		return uint64(-v), true
	}
	return uint64(v), false
}

// checkCapacity aborts slice-mode writers handed an undersized buffer.
func checkCapacity(have, need int) {
	if have < need {
		panic("itoa: destination buffer smaller than the published maximum size")
	}
}
