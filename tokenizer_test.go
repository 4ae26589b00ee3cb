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

import "testing"

import "github.com/stretchr/testify/require"

func TestEnsureTrailingNewlineAppends(t *testing.T) {
	out := EnsureTrailingNewline([]byte("no newline"))
	require.Equal(t, "no newline\n", string(out))
}

func TestEnsureTrailingNewlineNoop(t *testing.T) {
	in := []byte("already has one\n")
	out := EnsureTrailingNewline(in)
	require.Equal(t, "already has one\n", string(out))
}

func TestEnsureTrailingNewlineEmpty(t *testing.T) {
	require.Equal(t, "\n", string(EnsureTrailingNewline(nil)))
}

// TestTokenizeCoversEveryByte checks the tokenizer's ground-truth
// guarantee (spec.md §4.1): every source byte appears in exactly one
// token's span, in order, with no gaps or overlaps.
func TestTokenizeCoversEveryByte(t *testing.T) {
	src := EnsureTrailingNewline([]byte("1. Intro:\n\tWelcome, *world*!\n"))
	toks := Tokenize(src)
	require.NotEmpty(t, toks)
	pos := 0
	for _, tok := range toks {
		require.Equal(t, pos, tok.Span.Start, "token %+v does not start where the previous one ended", tok)
		require.GreaterOrEqual(t, tok.Span.End, tok.Span.Start)
		pos = tok.Span.End
	}
	require.Equal(t, len(src), pos)
}

func TestTokenizeKinds(t *testing.T) {
	src := EnsureTrailingNewline([]byte(":: note ::\n"))
	toks := Tokenize(src)
	require.Equal(t, LexMarkerTok, toks[0].Kind)
	found := false
	for _, tok := range toks {
		if tok.Kind == LexMarkerTok && tok.Span.Start > 0 {
			found = true
		}
	}
	require.True(t, found, "expected a second LexMarkerTok for the closing '::'")
}

func TestTokenizeDigitsAndDot(t *testing.T) {
	src := EnsureTrailingNewline([]byte("1. Intro\n"))
	toks := Tokenize(src)
	require.Equal(t, DigitsTok, toks[0].Kind)
	require.Equal(t, DotTok, toks[1].Kind)
}

func TestTokenizeUnrecognizedByteBecomesText(t *testing.T) {
	src := EnsureTrailingNewline([]byte("café\n"))
	toks := Tokenize(src)
	var text string
	for _, tok := range toks {
		if tok.Kind != NewlineTok {
			text += string(src[tok.Span.Start:tok.Span.End])
		}
	}
	require.Equal(t, "café", text)
}

func TestNormalizeWhitespaceIsIdempotent(t *testing.T) {
	src := EnsureTrailingNewline([]byte("a\vb\n"))
	toks := Tokenize(src)
	once := NormalizeWhitespace(toks, src)
	twice := NormalizeWhitespace(once, src)
	require.Equal(t, once, twice)
	var sawVTab bool
	for i, tok := range once {
		if src[tok.Span.Start] == '\v' {
			sawVTab = true
			require.Equal(t, WhitespaceTok, tok.Kind, "token %d", i)
		}
	}
	require.True(t, sawVTab)
}
