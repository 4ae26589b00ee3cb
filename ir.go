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

// NodeKind is the tag on an IR node (grammar engine output, spec.md
// §4.8) and, unchanged, on the AST node it becomes (spec.md §3).
type NodeKind uint8

const (
	ParagraphNode NodeKind = 1 + iota
	ListNode
	ListItemNode
	SessionNode
	DefinitionNode
	AnnotationNode
	VerbatimBlockNode
	VerbatimLineNode
	BlankLineGroupNode
	DocumentTitleNode

	// The remaining kinds only ever appear on AST nodes, never as IR
	// output: DocumentNode and TextLineNode round out the structural
	// tree (spec.md §3's Document/TextLine types have no IR-stage
	// counterpart), and the inline kinds tag [Inline] leaves produced by
	// the inline parser (§4.12) rather than the grammar engine.
	DocumentNode
	TextLineNode

	TextInlineNode
	StrongInlineNode
	EmphasisInlineNode
	CodeInlineNode
	MathInlineNode
	ReferenceInlineNode
)

// VerbatimMode selects the wall position a verbatim block's content is
// stripped against (spec.md §4.9).
type VerbatimMode uint8

const (
	InFlowMode VerbatimMode = 1 + iota
	FullWidthMode
)

// IRNode is the grammar engine's output (spec.md §3): a node kind plus
// the Lines it directly matched (owning their source_tokens byte-exact)
// and, for container-matching patterns, the recursively-parsed IR of the
// nested LineContainer it consumed.
type IRNode struct {
	Kind     NodeKind
	Lines    []*Line   // the classified Lines this node directly matched
	Children []*IRNode // nested content, already recursively parsed

	Label  string  // Session/Definition/Annotation/VerbatimBlock title-ish text
	Params []Param // Annotation/VerbatimBlock closing-Data parameters
	Marker string  // ListItem's raw marker text

	Mode          VerbatimMode
	VerbatimWall  int     // column at/after which content is preserved
	VerbatimLines []*Line // one entry per content line, in document order
}

// OwnSpan returns the bounding box of this node's directly-owned Lines,
// ignoring Children (build.go unions those in separately). Synthetic
// lines (e.g. a DocumentStart marker) contribute nothing.
func (n *IRNode) OwnSpan() Span {
	box := NullSpan()
	for _, l := range n.Lines {
		box = box.Union(BoundingSpan(l.Tokens))
	}
	for _, l := range n.VerbatimLines {
		box = box.Union(BoundingSpan(l.Tokens))
	}
	return box
}
