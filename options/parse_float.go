// SPDX-License-Identifier: MIT
// Package: lexical/options
//
// parse_float.go — ParseFloatOptions and its builder.

package options

// ParseFloatOptions configures text → float conversion. Values are obtained
// exclusively through ParseFloatBuilder.Build or a preset constructor, so
// every instance in circulation satisfies the package invariants.
type ParseFloatOptions struct {
	radix        int
	lossy        bool
	exponentChar byte
	rounding     RoundingKind
	separator    SeparatorPolicy
	nan          string
	inf          string
	infinity     string
}

// Radix returns the numeral base, in [2,36].
func (o ParseFloatOptions) Radix() int { return o.radix }

// Lossy reports whether the fast native-float path may be used without the
// exact fallback, trading worst-case accuracy for speed.
func (o ParseFloatOptions) Lossy() bool { return o.lossy }

// ExponentChar returns the exponent marker byte.
func (o ParseFloatOptions) ExponentChar() byte { return o.exponentChar }

// Rounding returns the configured tie-breaking rule.
func (o ParseFloatOptions) Rounding() RoundingKind { return o.rounding }

// Separator returns the digit-grouping policy.
func (o ParseFloatOptions) Separator() SeparatorPolicy { return o.separator }

// NaN returns the Not-a-Number spelling matched case-sensitively.
func (o ParseFloatOptions) NaN() string { return o.nan }

// Inf returns the short infinity spelling.
func (o ParseFloatOptions) Inf() string { return o.inf }

// Infinity returns the long infinity spelling.
func (o ParseFloatOptions) Infinity() string { return o.infinity }

// ParseFloatBuilder is the mutable draft for ParseFloatOptions. Setters
// record values without checking them; Build re-runs every invariant.
type ParseFloatBuilder struct {
	radix        int
	lossy        bool
	exponentChar byte
	markerSet    bool
	rounding     RoundingKind
	separator    SeparatorPolicy
	nan          string
	inf          string
	infinity     string
}

// NewParseFloatBuilder returns a draft pre-loaded with the deterministic
// defaults: base 10, correct (non-lossy) parsing, NearestTieEven, no digit
// grouping, and the standard NaN/inf/infinity spellings.
func NewParseFloatBuilder() *ParseFloatBuilder {
	return &ParseFloatBuilder{
		radix:    DefaultRadix,
		rounding: NearestTieEven,
		nan:      DefaultNaN,
		inf:      DefaultInf,
		infinity: DefaultInfinity,
	}
}

// Radix sets the numeral base.
func (b *ParseFloatBuilder) Radix(radix int) *ParseFloatBuilder {
	b.radix = radix
	return b
}

// Lossy enables the fast, bounded-error parse path.
func (b *ParseFloatBuilder) Lossy(lossy bool) *ParseFloatBuilder {
	b.lossy = lossy
	return b
}

// ExponentChar sets the exponent marker. When never called, Build resolves
// the marker from the final radix via DefaultExponentChar.
func (b *ParseFloatBuilder) ExponentChar(c byte) *ParseFloatBuilder {
	b.exponentChar = c
	b.markerSet = true
	return b
}

// Rounding sets the tie-breaking rule.
func (b *ParseFloatBuilder) Rounding(k RoundingKind) *ParseFloatBuilder {
	b.rounding = k
	return b
}

// Separator sets the digit-grouping policy.
func (b *ParseFloatBuilder) Separator(p SeparatorPolicy) *ParseFloatBuilder {
	b.separator = p
	return b
}

// NaN overrides the Not-a-Number spelling.
func (b *ParseFloatBuilder) NaN(s string) *ParseFloatBuilder {
	b.nan = s
	return b
}

// Inf overrides the short infinity spelling.
func (b *ParseFloatBuilder) Inf(s string) *ParseFloatBuilder {
	b.inf = s
	return b
}

// Infinity overrides the long infinity spelling.
func (b *ParseFloatBuilder) Infinity(s string) *ParseFloatBuilder {
	b.infinity = s
	return b
}

// Build validates the draft and returns the immutable options record.
// Validation runs in a fixed order and stops at the first violation; the
// zero ParseFloatOptions is returned alongside the error in that case.
func (b *ParseFloatBuilder) Build() (ParseFloatOptions, error) {
	marker := b.exponentChar
	if !b.markerSet {
		marker = DefaultExponentChar(b.radix)
	}
	if err := validateRadix(b.radix); err != nil {
		return ParseFloatOptions{}, err
	}
	if err := validateExponentChar(marker, b.radix); err != nil {
		return ParseFloatOptions{}, err
	}
	if err := validateSeparator(b.separator, b.radix, marker); err != nil {
		return ParseFloatOptions{}, err
	}
	if err := validateRounding(b.rounding); err != nil {
		return ParseFloatOptions{}, err
	}
	if err := validateNaN(b.nan); err != nil {
		return ParseFloatOptions{}, err
	}
	if err := validateInf(b.inf); err != nil {
		return ParseFloatOptions{}, err
	}
	if err := validateInfinity(b.infinity, b.inf); err != nil {
		return ParseFloatOptions{}, err
	}
	return ParseFloatOptions{
		radix:        b.radix,
		lossy:        b.lossy,
		exponentChar: marker,
		rounding:     b.rounding,
		separator:    b.separator,
		nan:          b.nan,
		inf:          b.inf,
		infinity:     b.infinity,
	}, nil
}

// ParseFloatDecimal returns the validated base-10 preset.
func ParseFloatDecimal() ParseFloatOptions {
	return mustParseFloat(NewParseFloatBuilder())
}

// ParseFloatBinary returns the validated base-2 preset.
func ParseFloatBinary() ParseFloatOptions {
	return mustParseFloat(NewParseFloatBuilder().Radix(2))
}

// ParseFloatHexadecimal returns the validated base-16 preset with the 'p'
// exponent marker.
func ParseFloatHexadecimal() ParseFloatOptions {
	return mustParseFloat(NewParseFloatBuilder().Radix(16).ExponentChar(markerP))
}

// mustParseFloat materializes a preset; a failure here is a bug in this
// package, not a caller error, hence the panic.
func mustParseFloat(b *ParseFloatBuilder) ParseFloatOptions {
	o, err := b.Build()
	if err != nil {
		panic("options: invalid ParseFloatOptions preset: " + err.Error())
	}
	return o
}
