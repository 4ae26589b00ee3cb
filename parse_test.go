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

package lex_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	lex "github.com/lex-fmt/core"
	"github.com/lex-fmt/core/internal/roundtrip"
)

// TestSessionWithNestedParagraph is spec.md §8 Scenario A.
func TestSessionWithNestedParagraph(t *testing.T) {
	doc := lex.Parse([]byte("Welcome\n\n\tWelcome.\n"))
	sessions := lex.NodesOfKind(doc.Root, lex.SessionNode)
	// sessions[0] is the implicit root session itself, always present.
	require.Len(t, sessions, 2)
	s := sessions[1].(*lex.Session)
	require.Equal(t, "Welcome", s.Title)
	require.Len(t, s.Children, 1)
	_, ok := s.Children[0].(*lex.Paragraph)
	require.True(t, ok)
}

// TestAnnotationTieBreaker is spec.md §8 Scenario B.
func TestAnnotationTieBreaker(t *testing.T) {
	doc := lex.Parse([]byte("A.\n\n:: note ::\n\nB.\n"))
	paras := lex.NodesOfKind(doc.Root, lex.ParagraphNode)
	require.Len(t, paras, 2)
	require.Empty(t, paras[0].(*lex.Paragraph).Annotations())
	require.Len(t, paras[1].(*lex.Paragraph).Annotations(), 1)
}

// TestVerbatimScenario is spec.md §8 Scenario C.
func TestVerbatimScenario(t *testing.T) {
	doc := lex.Parse([]byte("Code:\n\tdef hello():\n\t\tprint(\"hello\")\n:: python ::\n"))
	vbs := lex.NodesOfKind(doc.Root, lex.VerbatimBlockNode)
	require.Len(t, vbs, 1)
	require.Equal(t, lex.InFlowMode, vbs[0].(*lex.VerbatimBlock).Mode)
}

// TestTwoLineListPlusNestedList is spec.md §8 Scenario D.
func TestTwoLineListPlusNestedList(t *testing.T) {
	doc := lex.Parse([]byte("1. Packing\n2. Groceries\n\t2.1 Milk\n\t2.2 Eggs\n"))
	lists := lex.NodesOfKind(doc.Root, lex.ListNode)
	require.Len(t, lists, 2)
}

// TestDocumentTitleVsLeadingParagraph is spec.md §8 Scenario E.
func TestDocumentTitleVsLeadingParagraph(t *testing.T) {
	doc := lex.Parse([]byte("My Document\n\nIntro text.\n"))
	titles := lex.NodesOfKind(doc.Root, lex.DocumentTitleNode)
	require.Len(t, titles, 1)
}

func TestDocumentTitleAbsentWithoutSeparation(t *testing.T) {
	doc := lex.Parse([]byte("Just a paragraph.\nSecond line.\n"))
	require.Empty(t, lex.NodesOfKind(doc.Root, lex.DocumentTitleNode))
}

// TestElementAtLookup is spec.md §8 Scenario F.
func TestElementAtLookup(t *testing.T) {
	doc := lex.Parse([]byte("Welcome\n\n\tWelcome.\n"))
	paras := lex.NodesOfKind(doc.Root, lex.ParagraphNode)
	require.Len(t, paras, 1)
	line := paras[0].(*lex.Paragraph).Lines[0]
	path := lex.ElementAt(doc, line.Location().Start)
	require.NotEmpty(t, path)
	require.Equal(t, lex.TextLineNode, path[0].Kind())
}

// roundtripSig flattens a Node tree into exported-field-only data so two
// parses of the same logical document compare equal under go-cmp without
// tripping over Location or other unexported bookkeeping.
type roundtripSig struct {
	Kind     string
	Text     string
	Children []roundtripSig
}

func signature(n lex.Node) roundtripSig {
	sig := roundtripSig{Kind: n.Kind().String()}
	switch v := n.(type) {
	case *lex.Session:
		sig.Text = v.Title
	case *lex.Definition:
		sig.Text = v.Subject
	case *lex.VerbatimBlock:
		sig.Text = v.Subject + "|" + v.Label
		for _, l := range v.Lines {
			sig.Children = append(sig.Children, roundtripSig{Kind: "VerbatimLine", Text: l.Text})
		}
	case *lex.List:
		sig.Text = v.Decoration
		for _, item := range v.Items {
			sig.Children = append(sig.Children, signature(item))
		}
		return sig
	case *lex.ListItem:
		sig.Text = v.Marker
		for _, tc := range v.Text {
			sig.Children = append(sig.Children, roundtripSig{Kind: "ItemText", Text: inlineText(tc.Inlines)})
		}
	case *lex.Annotation:
		sig.Text = v.Label
	case *lex.BlankLineGroup:
		sig.Text = itoa(v.Count)
	case *lex.TextLine:
		sig.Text = inlineText(v.Content.Inlines)
		return sig
	case *lex.Document:
		sig.Children = append(sig.Children, signature(v.Root))
		return sig
	}
	for i := 0; i < n.ChildCount(); i++ {
		sig.Children = append(sig.Children, signature(n.Child(i)))
	}
	return sig
}

func inlineText(ins []*lex.Inline) string {
	out := ""
	for _, in := range ins {
		switch in.InlineKind() {
		case lex.TextInline, lex.CodeInline, lex.MathInline:
			out += in.Text
		case lex.ReferenceInline:
			out += "[" + in.Payload + "]"
		default:
			out += inlineText(in.Children)
		}
	}
	return out
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := ""
	neg := n < 0
	if neg {
		n = -n
	}
	for n > 0 {
		digits = string(rune('0'+n%10)) + digits
		n /= 10
	}
	if neg {
		digits = "-" + digits
	}
	return digits
}

func TestRoundTripPreservesStructure(t *testing.T) {
	sources := []string{
		"Welcome\n\n\tWelcome.\n",
		"Code:\n\tdef hello():\n\t\tprint(\"hello\")\n:: python ::\n",
		"1. Packing\n2. Groceries\n\t2.1 Milk\n\t2.2 Eggs\n",
		"My Document\n\nIntro text.\n",
		"Ingredients:\n\tFlour.\n",
		"say *hello* to the _world_ and run `x+1`.\n",
	}
	for _, src := range sources {
		first := lex.Parse([]byte(src))
		serialized := roundtrip.Serialize(first)
		second := lex.Parse([]byte(serialized))

		want := signature(first)
		got := signature(second)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("round-trip mismatch for %q (serialized: %q):\n%s", src, serialized, diff)
		}
	}
}
