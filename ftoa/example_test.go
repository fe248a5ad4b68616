// SPDX-License-Identifier: MIT
// Package: lexical/ftoa — runnable documentation examples.

package ftoa_test

import (
	"fmt"

	"github.com/katalvlaran/lexical/ftoa"
	"github.com/katalvlaran/lexical/options"
)

func ExampleAppendFloat64() {
	fmt.Println(string(ftoa.AppendFloat64(nil, 1.5, options.WriteFloatDecimal())))
	fmt.Println(string(ftoa.AppendFloat64(nil, 255.5, options.WriteFloatHexadecimal())))
	fmt.Println(string(ftoa.AppendFloat64(nil, 1.5, options.WriteFloatBinary())))
	// Output:
	// 1.5
	// ff.8
	// 1.1
}

func ExampleAppendFloat64_trimmed() {
	trim, _ := options.NewWriteFloatBuilder().TrimFloats(true).Build()
	plain := options.WriteFloatDecimal()
	fmt.Println(string(ftoa.AppendFloat64(nil, 100, plain)))
	fmt.Println(string(ftoa.AppendFloat64(nil, 100, trim)))
	// Output:
	// 100.0
	// 100
}
