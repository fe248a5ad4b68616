// SPDX-License-Identifier: MIT
// Package: lexical/ftoa — allocation-free formatting benchmarks.

package ftoa_test

import (
	"testing"

	"github.com/katalvlaran/lexical/core"
	"github.com/katalvlaran/lexical/ftoa"
	"github.com/katalvlaran/lexical/options"
)

func BenchmarkAppendFloat64Decimal(b *testing.B) {
	o := options.WriteFloatDecimal()
	buf := make([]byte, 0, core.MaxFloat64Size)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf = ftoa.AppendFloat64(buf[:0], 3.141592653589793, o)
	}
	_ = buf
}

func BenchmarkAppendFloat64DecimalShort(b *testing.B) {
	o := options.WriteFloatDecimal()
	buf := make([]byte, 0, core.MaxFloat64Size)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf = ftoa.AppendFloat64(buf[:0], 1.5, o)
	}
	_ = buf
}

func BenchmarkAppendFloat64Hexadecimal(b *testing.B) {
	o := options.WriteFloatHexadecimal()
	buf := make([]byte, 0, core.MaxFloat64Size)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf = ftoa.AppendFloat64(buf[:0], 3.141592653589793, o)
	}
	_ = buf
}

func BenchmarkWriteFloat32Decimal(b *testing.B) {
	o := options.WriteFloatDecimal()
	buf := make([]byte, core.MaxFloat32Size)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ftoa.WriteFloat32(buf, 0.1, o)
	}
}
