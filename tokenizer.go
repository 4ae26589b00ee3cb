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

package lex

import "regexp"

// tokenRule is one entry of the tokenizer's declarative rule table.
// Rules are tried in order at the current offset; the first match wins.
// A rule that matches zero bytes is never installed (see init).
type tokenRule struct {
	kind TokenKind
	re   *regexp.Regexp
}

// Tab and space runs are split to single characters (rather than one
// token per run) so that indent.go can account for tab expansion and the
// "remainder becomes content" rule (spec.md §4.3, DESIGN.md) one column
// at a time without ever needing to split a token mid-byte-range.
var tokenRules = []tokenRule{
	{NewlineTok, regexp.MustCompile(`^(\r\n|\n)`)},
	{LexMarkerTok, regexp.MustCompile(`^::`)},
	{TabTok, regexp.MustCompile(`^\t`)},
	{WhitespaceTok, regexp.MustCompile(`^[ ]`)},
	{ColonTok, regexp.MustCompile(`^:`)},
	{DashTok, regexp.MustCompile(`^-`)},
	{DigitsTok, regexp.MustCompile(`^[0-9]+`)},
	{DotTok, regexp.MustCompile(`^\.`)},
	{ParenTok, regexp.MustCompile(`^[()]`)},
	{BracketOpenTok, regexp.MustCompile(`^\[`)},
	{BracketCloseTok, regexp.MustCompile(`^\]`)},
	{StarTok, regexp.MustCompile(`^\*`)},
	{UnderscoreTok, regexp.MustCompile(`^_`)},
	{BacktickTok, regexp.MustCompile("^`")},
	{HashTok, regexp.MustCompile(`^#`)},
	// Anything else that looks like a word (letters and everything not
	// already claimed above, except other whitespace) becomes Text.
	{TextTok, regexp.MustCompile(`^[^ \t\r\n\v\f:\-.()\[\]*_` + "`" + `#0-9]+`)},
}

// EnsureTrailingNewline appends a newline to src if it does not already
// end in one, per spec.md §4.1/§6. The returned slice is the ground truth
// buffer every byte range in the resulting token stream (and, downstream,
// every AST node's span) refers into.
func EnsureTrailingNewline(src []byte) []byte {
	if len(src) == 0 || src[len(src)-1] != '\n' {
		out := make([]byte, len(src)+1)
		copy(out, src)
		out[len(src)] = '\n'
		return out
	}
	return src
}

// Tokenize runs the Core Tokenizer stage (spec.md §4.1): source bytes in,
// a flat sequence of (kind, byte-range) pairs out, covering every byte
// exactly once. src must already end in a newline; callers needing that
// invariant enforced should call EnsureTrailingNewline first (Parse does
// this automatically).
func Tokenize(src []byte) []Token {
	var toks []Token
	pos := 0
	for pos < len(src) {
		matched := false
		for _, rule := range tokenRules {
			loc := rule.re.FindIndex(src[pos:])
			if loc == nil || loc[0] != 0 || loc[1] == 0 {
				continue
			}
			end := pos + loc[1]
			toks = append(toks, Token{Kind: rule.kind, Span: Span{Start: pos, End: end}})
			pos = end
			matched = true
			break
		}
		if !matched {
			// TokenizerAnomaly (spec.md §7): any byte not matched by a
			// core rule becomes a single-byte Text token, guaranteeing
			// forward progress and full byte coverage.
			_, size := decodeRuneSize(src[pos:])
			toks = append(toks, Token{Kind: TextTok, Span: Span{Start: pos, End: pos + size}})
			pos += size
		}
	}
	return toks
}

// decodeRuneSize returns a safe advance width for an unrecognized byte
// sequence, preferring to stay on a UTF-8 boundary so downstream span
// slicing remains valid (spec.md §3 invariant: spans are valid UTF-8
// boundaries).
func decodeRuneSize(b []byte) (rune, int) {
	if len(b) == 0 {
		return 0, 0
	}
	c := b[0]
	switch {
	case c < 0x80:
		return rune(c), 1
	case c&0xE0 == 0xC0 && len(b) >= 2:
		return 0, 2
	case c&0xF0 == 0xE0 && len(b) >= 3:
		return 0, 3
	case c&0xF8 == 0xF0 && len(b) >= 4:
		return 0, 4
	default:
		return 0, 1
	}
}
