// Copyright 2024 The Lex Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package lex provides a total, whitespace-significant parser for the Lex
// markup language: source text in, a [Document] AST out, never an error
// for malformed input.
package lex

//go:generate stringer -type=TokenKind,LineType,NodeKind,InlineKindTag -output=kind_string.go

// Span is an inclusive-exclusive byte range over the original source.
// Spans are never mutated once created: the Immutable Log invariant
// (spec.md §3) requires that every byte range traces back to the exact
// bytes the tokenizer first saw.
type Span struct {
	Start int
	End   int
}

// NullSpan returns the span used by synthetic nodes that own no bytes of
// their own (e.g. a Dedent).
func NullSpan() Span {
	return Span{Start: -1, End: -1}
}

// IsValid reports whether the span covers at least zero bytes at a
// non-negative offset.
func (s Span) IsValid() bool {
	return s.Start >= 0 && s.End >= s.Start
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	if !s.IsValid() {
		return 0
	}
	return s.End - s.Start
}

// Union returns the bounding box of s and o: the smallest span containing
// both. Used throughout the AST builder to compute a parent's span as the
// bounding box of its children (spec.md §3).
func (s Span) Union(o Span) Span {
	if !s.IsValid() {
		return o
	}
	if !o.IsValid() {
		return s
	}
	u := s
	if o.Start < u.Start {
		u.Start = o.Start
	}
	if o.End > u.End {
		u.End = o.End
	}
	return u
}

// TokenKind classifies a single token produced by the core tokenizer, or
// one of the synthetic kinds introduced by later pipeline stages.
type TokenKind uint16

const (
	// Raw kinds, produced directly by Tokenize. Every source byte ends up
	// in exactly one of these.
	TextTok TokenKind = 1 + iota
	WhitespaceTok
	TabTok
	NewlineTok
	ColonTok
	DashTok
	DigitsTok
	DotTok
	ParenTok
	LexMarkerTok // "::"
	BracketOpenTok
	BracketCloseTok
	StarTok
	UnderscoreTok
	BacktickTok
	HashTok

	// Synthetic kinds, introduced by later stages. They carry no span of
	// their own (Span is NullSpan except where noted) and instead own an
	// ordered slice of the raw tokens they aggregate, via Token.Source.
	IndentTok
	DedentTok
	BlankLineTok
)

// Token is a single element of the flat token stream. Raw tokens carry a
// valid Span into the source buffer. Synthetic tokens (Indent, Dedent,
// BlankLine) carry Source instead: the ordered raw tokens they replace.
// Indent additionally reuses Source to retain the indentation bytes it
// consumed, per spec.md §4.3; Dedent's Source is always empty.
type Token struct {
	Kind   TokenKind
	Span   Span
	Source []Token
}

// Flatten expands a synthetic token into the raw tokens underlying it,
// recursively. Raw tokens flatten to themselves. This is the "unroll"
// step spec.md §4.10(a) requires before any byte-range math is done.
func (t Token) Flatten() []Token {
	if len(t.Source) == 0 && t.Span.IsValid() {
		return []Token{t}
	}
	out := make([]Token, 0, len(t.Source))
	for _, s := range t.Source {
		out = append(out, s.Flatten()...)
	}
	return out
}

// FlattenAll flattens a whole token slice in order.
func FlattenAll(toks []Token) []Token {
	out := make([]Token, 0, len(toks))
	for _, t := range toks {
		out = append(out, t.Flatten()...)
	}
	return out
}

// BoundingSpan computes the bounding box span (min start, max end) over a
// slice of tokens, first flattening any synthetic tokens. Returns
// NullSpan for an empty or entirely-synthetic-empty input (e.g. a lone
// Dedent).
func BoundingSpan(toks []Token) Span {
	var box Span = NullSpan()
	for _, t := range FlattenAll(toks) {
		box = box.Union(t.Span)
	}
	return box
}

// IsWhitespaceLike reports whether the token kind never contributes
// non-blank content to a line (used by the line classifier to skip
// leading/trailing padding when scanning for the first meaningful token).
func (k TokenKind) IsWhitespaceLike() bool {
	switch k {
	case WhitespaceTok, TabTok:
		return true
	default:
		return false
	}
}
