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

func lexAndIndent(t *testing.T, source string) []Token {
	t.Helper()
	src := EnsureTrailingNewline([]byte(source))
	toks := NormalizeWhitespace(Tokenize(src), src)
	return ApplyIndentation(toks)
}

func kindSequence(toks []Token) []TokenKind {
	out := make([]TokenKind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestApplyIndentationFlatNoEvents(t *testing.T) {
	toks := lexAndIndent(t, "a\nb\n")
	for _, k := range kindSequence(toks) {
		require.NotEqual(t, IndentTok, k)
		require.NotEqual(t, DedentTok, k)
	}
}

func TestApplyIndentationOneLevel(t *testing.T) {
	toks := lexAndIndent(t, "a\n\tb\n")
	var indents, dedents int
	for _, k := range kindSequence(toks) {
		if k == IndentTok {
			indents++
		}
		if k == DedentTok {
			dedents++
		}
	}
	require.Equal(t, 1, indents)
	require.Equal(t, 1, dedents, "end of input must close the open level")
}

func TestApplyIndentationDedentMidDocument(t *testing.T) {
	toks := lexAndIndent(t, "a\n\tb\nc\n")
	dedentCount := 0
	for _, k := range kindSequence(toks) {
		if k == DedentTok {
			dedentCount++
		}
	}
	require.Equal(t, 1, dedentCount, "only one level was ever opened, by 'b'; 'c' at depth 0 closes it")
}

func TestApplyIndentationIndentTokenRetainsSourceBytes(t *testing.T) {
	toks := lexAndIndent(t, "a\n\tb\n")
	for _, tok := range toks {
		if tok.Kind == IndentTok {
			require.NotEmpty(t, tok.Source, "Indent must retain the whitespace bytes it consumed")
			require.Equal(t, TabTok, tok.Source[0].Kind)
		}
	}
}

func TestApplyIndentationDedentCarriesNoSource(t *testing.T) {
	toks := lexAndIndent(t, "a\n\tb\n")
	for _, tok := range toks {
		if tok.Kind == DedentTok {
			require.Empty(t, tok.Source, "Dedent is synthetic and owns no source tokens")
		}
	}
}

func TestApplyIndentationBlankLineDoesNotChangeStack(t *testing.T) {
	toks := lexAndIndent(t, "a\n\n\tb\n")
	var indents int
	for _, k := range kindSequence(toks) {
		if k == IndentTok {
			indents++
		}
	}
	require.Equal(t, 1, indents, "the blank line in between must not itself open or close a level")
}

func TestApplyIndentationRemainderBecomesContent(t *testing.T) {
	// 6 spaces of indentation with a 4-column indent width: one level is
	// opened (4 columns consumed) and the remaining 2 columns of
	// whitespace become part of the line's own content, per spec.md
	// §4.3/§9's resolved Open Question (see DESIGN.md).
	toks := lexAndIndent(t, "a\n      b\n")
	var sawIndent bool
	for _, tok := range toks {
		if tok.Kind == IndentTok {
			sawIndent = true
			require.Equal(t, 4, len(tok.Source), "exactly one IndentWidth step is consumed into the Indent token")
		}
	}
	require.True(t, sawIndent)
}

func TestColumnWidthTabExpansion(t *testing.T) {
	require.Equal(t, 4, columnWidth(Token{Kind: TabTok}, 0))
	require.Equal(t, 2, columnWidth(Token{Kind: TabTok}, 2))
	require.Equal(t, 1, columnWidth(Token{Kind: WhitespaceTok}, 0))
}
