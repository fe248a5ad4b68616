// SPDX-License-Identifier: MIT
// Package: lexical/options
//
// write_integer.go — WriteIntegerOptions and its builder.

package options

// WriteIntegerOptions configures integer → text conversion.
type WriteIntegerOptions struct {
	radix int
}

// Radix returns the numeral base, in [2,36].
func (o WriteIntegerOptions) Radix() int { return o.radix }

// WriteIntegerBuilder is the mutable draft for WriteIntegerOptions.
type WriteIntegerBuilder struct {
	radix int
}

// NewWriteIntegerBuilder returns a draft with base 10.
func NewWriteIntegerBuilder() *WriteIntegerBuilder {
	return &WriteIntegerBuilder{radix: DefaultRadix}
}

// Radix sets the numeral base.
func (b *WriteIntegerBuilder) Radix(radix int) *WriteIntegerBuilder {
	b.radix = radix
	return b
}

// Build validates the draft and returns the immutable options record.
func (b *WriteIntegerBuilder) Build() (WriteIntegerOptions, error) {
	if err := validateRadix(b.radix); err != nil {
		return WriteIntegerOptions{}, err
	}
	return WriteIntegerOptions{radix: b.radix}, nil
}

// WriteIntegerDecimal returns the validated base-10 preset.
func WriteIntegerDecimal() WriteIntegerOptions {
	return mustWriteInteger(NewWriteIntegerBuilder())
}

// WriteIntegerBinary returns the validated base-2 preset.
func WriteIntegerBinary() WriteIntegerOptions {
	return mustWriteInteger(NewWriteIntegerBuilder().Radix(2))
}

// WriteIntegerHexadecimal returns the validated base-16 preset.
func WriteIntegerHexadecimal() WriteIntegerOptions {
	return mustWriteInteger(NewWriteIntegerBuilder().Radix(16))
}

func mustWriteInteger(b *WriteIntegerBuilder) WriteIntegerOptions {
	o, err := b.Build()
	if err != nil {
		panic("options: invalid WriteIntegerOptions preset: " + err.Error())
	}
	return o
}
