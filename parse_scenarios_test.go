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

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"

	lex "github.com/lex-fmt/core"
)

// TestScenarioShapesSnapshot golden-tests the full node tree produced for
// each of spec.md §8's worked scenarios, caught as one signature per
// scenario so a change to any pipeline stage that reshapes one of these
// canonical documents shows up as a readable diff.
func TestScenarioShapesSnapshot(t *testing.T) {
	scenarios := map[string]string{
		"A-session-with-nested-paragraph": "Welcome\n\n\tWelcome.\n",
		"B-annotation-tie-breaker":        "A.\n\n:: note ::\n\nB.\n",
		"C-verbatim-in-flow":              "Code:\n\tdef hello():\n\t\tprint(\"hello\")\n:: python ::\n",
		"D-two-line-list-plus-nested":     "1. Packing\n2. Groceries\n\t2.1 Milk\n\t2.2 Eggs\n",
		"E-document-title":                "My Document\n\nIntro text.\n",
	}
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sortStrings(names)

	for _, name := range names {
		doc := lex.Parse([]byte(scenarios[name]))
		// go-snaps distinguishes repeated calls within one test by an
		// internal counter, so each scenario lands as its own entry in
		// the same snapshot file; name is folded into the snapshotted
		// value itself so the entries stay identifiable in a diff.
		snaps.MatchJSON(t, struct {
			Scenario string
			Doc      roundtripSig
		}{name, signature(doc)})
	}
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

func TestElementAtLookupSnapshot(t *testing.T) {
	doc := lex.Parse([]byte("Welcome\n\n\tWelcome.\n"))
	paras := lex.NodesOfKind(doc.Root, lex.ParagraphNode)
	require.Len(t, paras, 1)
	line := paras[0].(*lex.Paragraph).Lines[0]
	path := lex.ElementAt(doc, line.Location().Start)

	kinds := make([]string, len(path))
	for i, n := range path {
		kinds[i] = n.Kind().String()
	}
	snaps.MatchJSON(t, kinds)
}
