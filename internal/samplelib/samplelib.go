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

// Package samplelib loads the sample-library fixtures spec.md §6
// describes: a directory hierarchy under specs/<version>/ holding
// isolated per-element fixtures (elements/<kind>/<kind>-NN-<flat|nested>-
// <hint>.lex) plus in-document variants (elements/<kind>/<kind>-document-
// simple.lex, -tricky.lex), a trifecta/ directory of session/list/
// paragraph-ambiguity fixtures, and a benchmark/ directory of larger
// documents.
//
// This is a test-tooling package, not library surface: it is adapted
// from the teacher's internal/spec package (spec.go), which embeds one
// fixed JSON test-suite file per format version and unmarshals it
// wholesale. Lex's sample library is a directory of individual .lex
// files named by convention rather than one JSON blob, so Load here
// walks the embedded tree with doublestar instead of decoding JSON, but
// plays the same "go:embed once, hand fixtures to _test.go files" role.
package samplelib

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	lex "github.com/lex-fmt/core"
)

//go:embed specs
var specsFS embed.FS

// Sample is one fixture file: its path within the embedded tree, the
// parsed naming-convention fields, and its raw source bytes.
type Sample struct {
	Path   string
	Kind   string
	Number int    // 0 for document-simple/-tricky fixtures and for names with fewer than four dash-separated parts
	Shape  string // "flat", "nested", "document-simple", "document-tricky"; the third name part for other four-part names
	Hint   string
	Source []byte
}

// kindKinds maps a fixture directory's <kind> name to the NodeKind the
// caller most likely wants element_at-style access to.
var kindKinds = map[string]lex.NodeKind{
	"annotation": lex.AnnotationNode,
	"definition": lex.DefinitionNode,
	"list":       lex.ListNode,
	"paragraph":  lex.ParagraphNode,
	"session":    lex.SessionNode,
	"verbatim":   lex.VerbatimBlockNode,
}

// ListElements returns every fixture under specs/<version>/elements/<kind>/,
// sorted by file name (which sorts by fixture number since names are
// zero-padded "NN").
func ListElements(version, kind string) ([]Sample, error) {
	return listGlob(fmt.Sprintf("specs/%s/elements/%s/*.lex", version, kind))
}

// ListTrifecta returns every fixture under specs/<version>/trifecta/.
func ListTrifecta(version string) ([]Sample, error) {
	return listGlob(fmt.Sprintf("specs/%s/trifecta/*.lex", version))
}

// ListBenchmark returns every fixture under specs/<version>/benchmark/.
func ListBenchmark(version string) ([]Sample, error) {
	return listGlob(fmt.Sprintf("specs/%s/benchmark/*.lex", version))
}

func listGlob(pattern string) ([]Sample, error) {
	matches, err := doublestar.Glob(specsFS, pattern)
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	out := make([]Sample, 0, len(matches))
	for _, m := range matches {
		data, err := fs.ReadFile(specsFS, m)
		if err != nil {
			return nil, err
		}
		out = append(out, parseSampleName(m, data))
	}
	return out, nil
}

// parseSampleName decodes spec.md §6's file-naming convention:
// <kind>-<NN>-<flat|nested>-<hint>.lex for isolated elements,
// <kind>-document-simple.lex / -tricky.lex for in-document variants, and
// an unconstrained name for trifecta/benchmark fixtures.
func parseSampleName(path string, data []byte) Sample {
	base := path[strings.LastIndex(path, "/")+1:]
	base = strings.TrimSuffix(base, ".lex")
	parts := strings.SplitN(base, "-", 4)
	s := Sample{Path: path, Source: data}
	if len(parts) == 0 {
		return s
	}
	s.Kind = parts[0]
	if len(parts) >= 2 && (parts[1] == "document" || strings.HasPrefix(base, parts[0]+"-document-")) {
		rest := strings.TrimPrefix(base, parts[0]+"-document-")
		s.Shape = "document-" + rest
		return s
	}
	if len(parts) >= 4 {
		if n, err := strconv.Atoi(parts[1]); err == nil {
			s.Number = n
		}
		s.Shape = parts[2]
		s.Hint = parts[3]
	}
	return s
}

// LoadElement parses the fixture at specs/<version>/elements/<kind>/ whose
// file name embeds the given number (<kind>-<NN>-...), returning the
// parsed Document and, when kind names a NodeKind samplelib knows how to
// look for, the first matching node reachable from the document root
// (spec.md §6: "returns the Document and, where applicable, the first
// node of the requested kind").
func LoadElement(version, kind string, number int) (*lex.Document, lex.Node, error) {
	samples, err := ListElements(version, kind)
	if err != nil {
		return nil, nil, err
	}
	for _, s := range samples {
		if s.Number == number {
			doc := lex.Parse(s.Source)
			var node lex.Node
			if nk, ok := kindKinds[kind]; ok {
				found := lex.NodesOfKind(doc.Root, nk)
				// doc.Root is itself a Session, so a session lookup's
				// first match is always the implicit root; skip it to
				// reach the fixture's own session.
				if nk == lex.SessionNode && len(found) > 0 && found[0] == lex.Node(doc.Root) {
					found = found[1:]
				}
				if nk == lex.AnnotationNode && len(found) == 0 {
					// Attached annotations hang off their target node, not
					// off the child list that NodesOfKind walks.
					for _, a := range doc.Annotations() {
						found = append(found, a)
					}
					lex.Walk(doc.Root, &lex.WalkOptions{Pre: func(c *lex.Cursor) bool {
						if at, ok := c.Node().(lex.Annotated); ok {
							for _, a := range at.Annotations() {
								found = append(found, a)
							}
						}
						return true
					}})
				}
				if len(found) > 0 {
					node = found[0]
				}
			}
			return doc, node, nil
		}
	}
	return nil, nil, fmt.Errorf("samplelib: no %s-%02d fixture under version %s", kind, number, version)
}

// LoadDocumentVariant parses specs/<version>/elements/<kind>/<kind>-document-
// <variant>.lex (variant is "simple" or "tricky") and returns the parsed
// Document.
func LoadDocumentVariant(version, kind, variant string) (*lex.Document, error) {
	samples, err := ListElements(version, kind)
	if err != nil {
		return nil, err
	}
	want := "document-" + variant
	for _, s := range samples {
		if s.Shape == want {
			return lex.Parse(s.Source), nil
		}
	}
	return nil, fmt.Errorf("samplelib: no %s fixture under version %s", want, version)
}
