// SPDX-License-Identifier: MIT

// Package atoi converts text to machine integers in any radix from 2 to 36.
//
// What this package provides:
//
//	✔ ParseUint64 / ParseInt64 / ParseUint32 / ParseInt32 — complete-mode
//	  parsers that require the whole input to be one numeral.
//	✔ ParseUint64Partial / ParseInt64Partial / ParseUint32Partial /
//	  ParseInt32Partial — partial-mode parsers that consume the longest
//	  valid prefix and report how many bytes they used.
//
// Contract:
//
//	• Failures come back as *core.ParseError carrying the byte offset where
//	  the scanner stopped, wrapping core.ErrEmpty, core.ErrSyntax, or
//	  core.ErrRange for errors.Is dispatch.
//	• Overflow is an error in both modes; integer parsing never saturates.
//	• A leading '+' is accepted everywhere; '-' only by the signed parsers.
//	• Digit-grouping separators follow the options.SeparatorPolicy in
//	  force: leading, trailing, and consecutive separators are each
//	  rejected unless their flag is set.
//
// All entry points take options.ParseIntegerOptions, which can only be
// constructed in a validated state, so no radix re-checking happens here.
package atoi
