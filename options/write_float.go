// SPDX-License-Identifier: MIT
// Package: lexical/options
//
// write_float.go — WriteFloatOptions and its builder.

package options

// WriteFloatOptions configures float → text conversion.
type WriteFloatOptions struct {
	radix        int
	exponentChar byte
	trimFloats   bool
	nan          string
	inf          string
}

// Radix returns the numeral base, in [2,36].
func (o WriteFloatOptions) Radix() int { return o.radix }

// ExponentChar returns the exponent marker byte.
func (o WriteFloatOptions) ExponentChar() byte { return o.exponentChar }

// TrimFloats reports whether integral values drop their ".0" suffix.
func (o WriteFloatOptions) TrimFloats() bool { return o.trimFloats }

// NaN returns the spelling emitted for Not-a-Number.
func (o WriteFloatOptions) NaN() string { return o.nan }

// Inf returns the spelling emitted for infinity (sign prepended separately).
func (o WriteFloatOptions) Inf() string { return o.inf }

// WriteFloatBuilder is the mutable draft for WriteFloatOptions.
type WriteFloatBuilder struct {
	radix        int
	exponentChar byte
	markerSet    bool
	trimFloats   bool
	nan          string
	inf          string
}

// NewWriteFloatBuilder returns a draft with base 10, untrimmed output, and
// the standard NaN/inf spellings.
func NewWriteFloatBuilder() *WriteFloatBuilder {
	return &WriteFloatBuilder{
		radix: DefaultRadix,
		nan:   DefaultNaN,
		inf:   DefaultInf,
	}
}

// Radix sets the numeral base.
func (b *WriteFloatBuilder) Radix(radix int) *WriteFloatBuilder {
	b.radix = radix
	return b
}

// ExponentChar sets the exponent marker. When never called, Build resolves
// the marker from the final radix via DefaultExponentChar.
func (b *WriteFloatBuilder) ExponentChar(c byte) *WriteFloatBuilder {
	b.exponentChar = c
	b.markerSet = true
	return b
}

// TrimFloats controls whether integral values drop the ".0" suffix.
func (b *WriteFloatBuilder) TrimFloats(trim bool) *WriteFloatBuilder {
	b.trimFloats = trim
	return b
}

// NaN overrides the Not-a-Number spelling.
func (b *WriteFloatBuilder) NaN(s string) *WriteFloatBuilder {
	b.nan = s
	return b
}

// Inf overrides the infinity spelling.
func (b *WriteFloatBuilder) Inf(s string) *WriteFloatBuilder {
	b.inf = s
	return b
}

// Build validates the draft and returns the immutable options record.
func (b *WriteFloatBuilder) Build() (WriteFloatOptions, error) {
	marker := b.exponentChar
	if !b.markerSet {
		marker = DefaultExponentChar(b.radix)
	}
	if err := validateRadix(b.radix); err != nil {
		return WriteFloatOptions{}, err
	}
	if err := validateExponentChar(marker, b.radix); err != nil {
		return WriteFloatOptions{}, err
	}
	if err := validateNaN(b.nan); err != nil {
		return WriteFloatOptions{}, err
	}
	if err := validateInf(b.inf); err != nil {
		return WriteFloatOptions{}, err
	}
	return WriteFloatOptions{
		radix:        b.radix,
		exponentChar: marker,
		trimFloats:   b.trimFloats,
		nan:          b.nan,
		inf:          b.inf,
	}, nil
}

// WriteFloatDecimal returns the validated base-10 preset.
func WriteFloatDecimal() WriteFloatOptions {
	return mustWriteFloat(NewWriteFloatBuilder())
}

// WriteFloatBinary returns the validated base-2 preset.
func WriteFloatBinary() WriteFloatOptions {
	return mustWriteFloat(NewWriteFloatBuilder().Radix(2))
}

// WriteFloatHexadecimal returns the validated base-16 preset with the 'p'
// exponent marker.
func WriteFloatHexadecimal() WriteFloatOptions {
	return mustWriteFloat(NewWriteFloatBuilder().Radix(16).ExponentChar(markerP))
}

func mustWriteFloat(b *WriteFloatBuilder) WriteFloatOptions {
	o, err := b.Build()
	if err != nil {
		panic("options: invalid WriteFloatOptions preset: " + err.Error())
	}
	return o
}
