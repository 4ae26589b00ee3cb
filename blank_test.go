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

func lexFull(source string) []Token {
	src := EnsureTrailingNewline([]byte(source))
	toks := NormalizeWhitespace(Tokenize(src), src)
	toks = ApplyIndentation(toks)
	return GroupBlankLines(toks)
}

func TestGroupBlankLinesSingle(t *testing.T) {
	toks := lexFull("a\n\nb\n")
	var blanks []Token
	for _, tok := range toks {
		if tok.Kind == BlankLineTok {
			blanks = append(blanks, tok)
		}
	}
	require.Len(t, blanks, 1)
	require.Equal(t, 1, blanks[0].BlankLineCount())
}

func TestGroupBlankLinesRun(t *testing.T) {
	toks := lexFull("a\n\n\n\nb\n")
	var blanks []Token
	for _, tok := range toks {
		if tok.Kind == BlankLineTok {
			blanks = append(blanks, tok)
		}
	}
	require.Len(t, blanks, 1, "a run of blank lines coalesces into one BlankLineTok")
	require.Equal(t, 3, blanks[0].BlankLineCount())
}

func TestGroupBlankLinesNoneForNonBlank(t *testing.T) {
	require.Equal(t, 0, Token{Kind: TextTok}.BlankLineCount())
}

func TestGroupBlankLinesAroundIndentDedent(t *testing.T) {
	toks := lexFull("a\n\tb\n\nc\n")
	var kinds []TokenKind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	require.Contains(t, kinds, IndentTok)
	require.Contains(t, kinds, DedentTok)
	require.Contains(t, kinds, BlankLineTok)
}
