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

// GroupBlankLines runs the Blank-Line Grouper stage (spec.md §4.4). It
// scans the (already indentation-processed) token stream one source line
// at a time and coalesces every maximal run of N>=1 consecutive blank
// lines into a single BlankLineTok carrying the whole run as Source, so
// that later stages see "one blank gap" rather than N blank Line records.
// Indent/Dedent tokens (which never appear mid-blank-run; indent.go only
// emits them at the head of a non-blank line) pass through untouched and
// flush any run in progress.
func GroupBlankLines(toks []Token) []Token {
	out := make([]Token, 0, len(toks))
	var run []Token

	flush := func() {
		if len(run) == 0 {
			return
		}
		out = append(out, Token{Kind: BlankLineTok, Span: NullSpan(), Source: run})
		run = nil
	}

	i, n := 0, len(toks)
	for i < n {
		switch toks[i].Kind {
		case IndentTok, DedentTok:
			flush()
			out = append(out, toks[i])
			i++
			continue
		}

		j := i
		for j < n && toks[j].Kind != NewlineTok {
			j++
		}
		if j >= n {
			// No trailing newline found; shouldn't happen once
			// EnsureTrailingNewline has run, but fail safe rather than
			// panic (spec.md §7: the parser never fails).
			flush()
			out = append(out, toks[i:]...)
			return out
		}
		line := toks[i : j+1] // include the newline itself
		if isBlankLineTokens(toks[i:j]) {
			run = append(run, line...)
		} else {
			flush()
			out = append(out, line...)
		}
		i = j + 1
	}
	flush()
	return out
}

// BlankLineCount returns the number of coalesced blank lines a
// BlankLineTok represents, computed from the number of Newline tokens in
// its Source. Returns 0 for any other token kind.
func (t Token) BlankLineCount() int {
	if t.Kind != BlankLineTok {
		return 0
	}
	n := 0
	for _, s := range t.Source {
		if s.Kind == NewlineTok {
			n++
		}
	}
	if n == 0 {
		n = 1
	}
	return n
}
