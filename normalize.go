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

// vertTab, formFeed and bareCR are the "remainder" whitespace bytes the
// core tokenizer's rule table doesn't name explicitly; they fall through
// to the single-byte TextTok rule and get reclassified here.
const (
	vertTab  = '\v'
	formFeed = '\f'
	bareCR   = '\r'
)

// NormalizeWhitespace runs the Whitespace Normalizer stage (spec.md §4.2):
// any single-byte TextTok produced by the tokenizer's catch-all rule for
// a non-newline whitespace byte is rewritten to a canonical WhitespaceTok
// of the identical span. Idempotent: running it twice is a no-op, since a
// token already bearing WhitespaceTok or TabTok is left untouched.
func NormalizeWhitespace(toks []Token, src []byte) []Token {
	out := make([]Token, len(toks))
	for i, t := range toks {
		out[i] = t
		if t.Kind != TextTok || t.Span.Len() != 1 {
			continue
		}
		switch src[t.Span.Start] {
		case vertTab, formFeed, bareCR:
			out[i].Kind = WhitespaceTok
		}
	}
	return out
}
