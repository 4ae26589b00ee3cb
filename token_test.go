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

func TestSpanUnion(t *testing.T) {
	a := Span{Start: 3, End: 7}
	b := Span{Start: 1, End: 5}
	require.Equal(t, Span{Start: 1, End: 7}, a.Union(b))
	require.Equal(t, Span{Start: 1, End: 7}, b.Union(a))
}

func TestSpanUnionWithInvalid(t *testing.T) {
	a := Span{Start: 3, End: 7}
	require.Equal(t, a, a.Union(NullSpan()))
	require.Equal(t, a, NullSpan().Union(a))
}

func TestSpanLen(t *testing.T) {
	require.Equal(t, 4, Span{Start: 3, End: 7}.Len())
	require.Equal(t, 0, NullSpan().Len())
}

func TestTokenFlattenRaw(t *testing.T) {
	raw := Token{Kind: TextTok, Span: Span{Start: 0, End: 3}}
	require.Equal(t, []Token{raw}, raw.Flatten())
}

func TestTokenFlattenSynthetic(t *testing.T) {
	a := Token{Kind: TextTok, Span: Span{Start: 0, End: 1}}
	b := Token{Kind: WhitespaceTok, Span: Span{Start: 1, End: 2}}
	indent := Token{Kind: IndentTok, Span: NullSpan(), Source: []Token{a, b}}
	require.Equal(t, []Token{a, b}, indent.Flatten())
}

func TestTokenFlattenDedentIsEmpty(t *testing.T) {
	dedent := Token{Kind: DedentTok, Span: NullSpan()}
	require.Empty(t, dedent.Flatten())
}

func TestBoundingSpanFlattensNested(t *testing.T) {
	a := Token{Kind: TextTok, Span: Span{Start: 5, End: 9}}
	dedent := Token{Kind: DedentTok, Span: NullSpan()}
	b := Token{Kind: TextTok, Span: Span{Start: 1, End: 3}}
	require.Equal(t, Span{Start: 1, End: 9}, BoundingSpan([]Token{a, dedent, b}))
}

func TestBoundingSpanAllSynthetic(t *testing.T) {
	require.Equal(t, NullSpan(), BoundingSpan([]Token{{Kind: DedentTok, Span: NullSpan()}}))
}

func TestIsWhitespaceLike(t *testing.T) {
	require.True(t, WhitespaceTok.IsWhitespaceLike())
	require.True(t, TabTok.IsWhitespaceLike())
	require.False(t, TextTok.IsWhitespaceLike())
	require.False(t, NewlineTok.IsWhitespaceLike())
}
