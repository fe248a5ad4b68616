// SPDX-License-Identifier: MIT
// Package: lexical/options
//
// parse_integer.go — ParseIntegerOptions and its builder.

package options

// ParseIntegerOptions configures text → integer conversion.
type ParseIntegerOptions struct {
	radix     int
	separator SeparatorPolicy
}

// Radix returns the numeral base, in [2,36].
func (o ParseIntegerOptions) Radix() int { return o.radix }

// Separator returns the digit-grouping policy.
func (o ParseIntegerOptions) Separator() SeparatorPolicy { return o.separator }

// ParseIntegerBuilder is the mutable draft for ParseIntegerOptions.
type ParseIntegerBuilder struct {
	radix     int
	separator SeparatorPolicy
}

// NewParseIntegerBuilder returns a draft with base 10 and no grouping.
func NewParseIntegerBuilder() *ParseIntegerBuilder {
	return &ParseIntegerBuilder{radix: DefaultRadix}
}

// Radix sets the numeral base.
func (b *ParseIntegerBuilder) Radix(radix int) *ParseIntegerBuilder {
	b.radix = radix
	return b
}

// Separator sets the digit-grouping policy.
func (b *ParseIntegerBuilder) Separator(p SeparatorPolicy) *ParseIntegerBuilder {
	b.separator = p
	return b
}

// Build validates the draft and returns the immutable options record.
// Integer text never carries an exponent, so the separator is checked
// against the digit alphabet only (marker byte 0 never collides).
func (b *ParseIntegerBuilder) Build() (ParseIntegerOptions, error) {
	if err := validateRadix(b.radix); err != nil {
		return ParseIntegerOptions{}, err
	}
	if err := validateSeparator(b.separator, b.radix, 0); err != nil {
		return ParseIntegerOptions{}, err
	}
	return ParseIntegerOptions{radix: b.radix, separator: b.separator}, nil
}

// ParseIntegerDecimal returns the validated base-10 preset.
func ParseIntegerDecimal() ParseIntegerOptions {
	return mustParseInteger(NewParseIntegerBuilder())
}

// ParseIntegerBinary returns the validated base-2 preset.
func ParseIntegerBinary() ParseIntegerOptions {
	return mustParseInteger(NewParseIntegerBuilder().Radix(2))
}

// ParseIntegerHexadecimal returns the validated base-16 preset.
func ParseIntegerHexadecimal() ParseIntegerOptions {
	return mustParseInteger(NewParseIntegerBuilder().Radix(16))
}

func mustParseInteger(b *ParseIntegerBuilder) ParseIntegerOptions {
	o, err := b.Build()
	if err != nil {
		panic("options: invalid ParseIntegerOptions preset: " + err.Error())
	}
	return o
}
