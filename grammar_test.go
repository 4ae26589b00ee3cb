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

func TestSingleListItemBecomesParagraph(t *testing.T) {
	doc := Parse([]byte("- only one item\n"))
	require.Empty(t, NodesOfKind(doc.Root, ListNode), "a lone marked line is a paragraph, not a list")
	require.Len(t, NodesOfKind(doc.Root, ParagraphNode), 1)
}

func TestListRequiresTwoItems(t *testing.T) {
	doc := Parse([]byte("- first\n- second\n"))
	lists := NodesOfKind(doc.Root, ListNode)
	require.Len(t, lists, 1)
	require.Len(t, lists[0].(*List).Items, 2)
}

func TestDefinitionRequiresNoBlankBeforeBody(t *testing.T) {
	doc := Parse([]byte("Ingredients:\n\tFlour.\n"))
	defs := NodesOfKind(doc.Root, DefinitionNode)
	require.Len(t, defs, 1)
	require.Equal(t, "Ingredients", defs[0].(*Definition).Subject)
}

func TestSubjectWithBlankBecomesSessionOrParagraph(t *testing.T) {
	// A Subject-shaped head followed by a blank line and a child
	// container satisfies the Session preconditions instead of
	// Definition's (spec.md §4.8: "if a blank line appears, it becomes
	// a Session... or a Paragraph").
	doc := Parse([]byte("Ingredients:\n\n\tFlour.\n"))
	require.Empty(t, NodesOfKind(doc.Root, DefinitionNode))
	sessions := NodesOfKind(doc.Root, SessionNode)
	// sessions[0] is the implicit root session NodesOfKind always includes;
	// sessions[1] is the real one built from "Ingredients:".
	require.Len(t, sessions, 2)
	require.Equal(t, "Ingredients", sessions[1].(*Session).Title)
}

func TestSessionRequiresPrecedingSeparator(t *testing.T) {
	// Without a preceding blank-line or container-edge separator, a
	// paragraph-like head followed by a blank and a container does not
	// qualify as a session head on its own line: it is the second line
	// of the surrounding paragraph run instead.
	doc := Parse([]byte("Intro\n1. Chapter\n\n\tBody.\n"))
	sessions := NodesOfKind(doc.Root, SessionNode)
	require.Len(t, sessions, 1, "only the implicit root session; the second line never gets separator status")
}

func TestVerbatimTakesPriorityOverDefinition(t *testing.T) {
	doc := Parse([]byte("Code:\n\tprint(1)\n:: python ::\n"))
	require.Empty(t, NodesOfKind(doc.Root, DefinitionNode))
	vbs := NodesOfKind(doc.Root, VerbatimBlockNode)
	require.Len(t, vbs, 1)
}

func TestUnterminatedVerbatimFallsBackToDefinition(t *testing.T) {
	doc := Parse([]byte("Code:\n\tprint(1)\n"))
	require.Empty(t, NodesOfKind(doc.Root, VerbatimBlockNode))
	require.Len(t, NodesOfKind(doc.Root, DefinitionNode), 1)
}

func TestNestedListUnderSecondItem(t *testing.T) {
	doc := Parse([]byte("1. Packing\n2. Groceries\n\t2.1 Milk\n\t2.2 Eggs\n"))
	lists := NodesOfKind(doc.Root, ListNode)
	require.Len(t, lists, 2, "one outer list, one nested list under the second item")
	outer := lists[0].(*List)
	require.Len(t, outer.Items, 2)
	require.Empty(t, outer.Items[0].Children)
	require.Len(t, outer.Items[1].Children, 1)
	inner, ok := outer.Items[1].Children[0].(*List)
	require.True(t, ok)
	require.Len(t, inner.Items, 2)
}

func TestDialogShapedDashLinesStillFormList(t *testing.T) {
	// Both lines classify as DialogLine (spec.md §4.5 rule 8's local
	// shape check: a dash marker followed by "label: more text"), but
	// nothing feeds the classifier a real contextual override, so they
	// must behave like ordinary list items rather than silently merging
	// into one Paragraph.
	doc := Parse([]byte("- TODO: buy milk\n- TODO: walk dog\n"))
	require.Empty(t, NodesOfKind(doc.Root, ParagraphNode))
	lists := NodesOfKind(doc.Root, ListNode)
	require.Len(t, lists, 1)
	require.Len(t, lists[0].(*List).Items, 2)
}

func TestSessionNeverNestsInsideAnnotation(t *testing.T) {
	// A head + blank + indented container inside an annotation body
	// satisfies trySession's own preconditions regardless of its
	// container, so the grammar engine builds a Session IRNode there
	// too; filterChildren must still drop it since only sessions may
	// contain sessions (spec.md §3).
	doc := Parse([]byte(":: note ::\n\tTitle\n\n\t\tBody.\n::\n"))
	// Only the container edge follows the annotation, so it attaches to
	// the root session.
	anns := doc.Root.Annotations()
	require.Len(t, anns, 1)
	require.Empty(t, NodesOfKind(anns[0], SessionNode))
}
