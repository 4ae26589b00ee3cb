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

// lineTypeAt returns the LineType of children[i] if it is a Line, or 0
// if it is a nested LineContainer (the grammar engine's rules treat
// "child-container present" as its own symbol, per spec.md §4.8).
func lineTypeAt(children []ContainerChild, i int) LineType {
	if i < 0 || i >= len(children) || !children[i].IsLine() {
		return 0
	}
	return children[i].Line.Type
}

func isContainerAt(children []ContainerChild, i int) bool {
	return i >= 0 && i < len(children) && !children[i].IsLine()
}

// ParseContainer runs the Grammar Engine stage (spec.md §4.8) over one
// LineContainer's direct children, producing the matching IR nodes in
// document order. Rules are tried in the priority order spec.md §4.8
// lists; the first one that matches at the current position wins and
// its consumed-length is used to advance. A position that matches
// nothing structural still makes forward progress, per spec.md §7's
// PatternMiss guarantee that the parser never stalls: a line there is
// emitted as a single-line Paragraph, and a nested container that no
// pattern claimed has its children parsed in place, so no content is
// dropped.
func ParseContainer(c *LineContainer) []*IRNode {
	var out []*IRNode
	children := c.Children
	for i := 0; i < len(children); {
		if lineTypeAt(children, i) == DocumentStartLine {
			i++
			continue
		}
		if node, n, ok := tryVerbatim(children, i); ok {
			out, i = append(out, node), i+n
			continue
		}
		if node, n, ok := tryAnnotation(children, i); ok {
			out, i = append(out, node), i+n
			continue
		}
		if node, n, ok := trySession(children, i); ok {
			out, i = append(out, node), i+n
			continue
		}
		if node, n, ok := tryDefinition(children, i); ok {
			out, i = append(out, node), i+n
			continue
		}
		if node, n, ok := tryList(children, i); ok {
			out, i = append(out, node), i+n
			continue
		}
		if node, n, ok := tryParagraph(children, i); ok {
			out, i = append(out, node), i+n
			continue
		}
		if node, n, ok := tryBlankGroup(children, i); ok {
			out, i = append(out, node), i+n
			continue
		}
		// Forward-progress guard; see doc comment above.
		if children[i].IsLine() {
			out = append(out, &IRNode{Kind: ParagraphNode, Lines: []*Line{children[i].Line}})
		} else {
			out = append(out, ParseContainer(children[i].Container)...)
		}
		i++
	}
	return out
}

// ParseDocument runs ParseContainer over the document's root container
// and then applies the DocumentTitle reinterpretation (spec.md §4.8
// rule 8): if the first top-level node is a single-line Paragraph
// immediately followed (in source order) by a standalone
// BlankLineGroup, and more content follows after that, it is relabeled
// DocumentTitle rather than Paragraph. This is deliberately a
// post-process over the normal parse, not a higher-priority pattern: a
// title is textually indistinguishable from an ordinary one-line
// paragraph-before-a-blank-line, so the distinction is "is this the
// very first thing in the document," which only the top level can know.
//
// The node right after that blank group must be ordinary body content,
// not an Annotation: spec.md §4.8 Scenario B opens with exactly this
// shape (a one-line paragraph, a blank group, then a standalone
// annotation) and expects two ordinary paragraphs, not a title — an
// annotation there is metadata about what follows, never the "body" a
// title precedes.
func ParseDocument(root *LineContainer) []*IRNode {
	nodes := ParseContainer(root)
	if len(nodes) < 3 {
		return nodes
	}
	first := nodes[0]
	if first.Kind != ParagraphNode || len(first.Lines) != 1 {
		return nodes
	}
	if nodes[1].Kind != BlankLineGroupNode {
		return nodes
	}
	if nodes[2].Kind == AnnotationNode {
		return nodes
	}
	first.Kind = DocumentTitleNode
	return nodes
}

// trySession's head accepts any "paragraph-like" line type, not just a
// bare ParagraphLine: spec.md §4.8's Scenario A heads a session with "1.
// Intro", a marker line with no trailing colon that the classifier
// assigns ListLine (§4.5 rule 7), and its own note that "a Definition
// head... if a blank line appears, it becomes a Session" extends the
// same treatment to SubjectLine. What actually distinguishes a Session
// head from a List/Definition/Paragraph is never the line's own type,
// only what follows it, which the checks below already enforce.
func trySession(children []ContainerChild, i int) (*IRNode, int, bool) {
	head := lineTypeAt(children, i)
	if !isParagraphResidual(head) {
		return nil, 0, false
	}
	if !children[i].Line.AfterSeparator {
		return nil, 0, false
	}
	if lineTypeAt(children, i+1) != BlankLine || !isContainerAt(children, i+2) {
		return nil, 0, false
	}
	body := ParseContainer(children[i+2].Container)
	node := &IRNode{
		Kind:     SessionNode,
		Lines:    []*Line{children[i].Line},
		Children: body,
	}
	return node, 3, true
}

func tryDefinition(children []ContainerChild, i int) (*IRNode, int, bool) {
	if lineTypeAt(children, i) != SubjectLine {
		return nil, 0, false
	}
	if !isContainerAt(children, i+1) {
		return nil, 0, false
	}
	body := ParseContainer(children[i+1].Container)
	node := &IRNode{
		Kind:     DefinitionNode,
		Lines:    []*Line{children[i].Line},
		Children: body,
	}
	return node, 2, true
}

// isDialogShape's classification runs with no contextual override signal
// available to it (spec.md §4.5 rule 8 reaches Dialog only "by context,"
// but no caller threads one into the line classifier), so a dash line
// that merely looks dialog-shaped must still behave like any other list
// item absent that override — otherwise two such lines in a row collapse
// into a Paragraph instead of forming a List.
func isListItemLine(t LineType) bool {
	return t == ListLine || t == SubjectOrListItemLine || t == DialogLine
}

func tryList(children []ContainerChild, i int) (*IRNode, int, bool) {
	start := i
	var items []*IRNode
	for i < len(children) {
		if !isListItemLine(lineTypeAt(children, i)) {
			break
		}
		item := &IRNode{Kind: ListItemNode, Lines: []*Line{children[i].Line}, Marker: children[i].Line.Marker}
		i++
		if isContainerAt(children, i) {
			item.Children = ParseContainer(children[i].Container)
			i++
		}
		for lineTypeAt(children, i) == ParagraphLine {
			item.Lines = append(item.Lines, children[i].Line)
			i++
		}
		items = append(items, item)
	}
	if len(items) < 2 {
		return nil, 0, false
	}
	node := &IRNode{Kind: ListNode, Children: items, Marker: items[0].Marker}
	return node, i - start, true
}

func isParagraphResidual(t LineType) bool {
	switch t {
	case ParagraphLine, DialogLine, SubjectLine, ListLine, SubjectOrListItemLine:
		return true
	default:
		return false
	}
}

func tryParagraph(children []ContainerChild, i int) (*IRNode, int, bool) {
	if !isParagraphResidual(lineTypeAt(children, i)) {
		return nil, 0, false
	}
	start := i
	var lines []*Line
	for isParagraphResidual(lineTypeAt(children, i)) {
		lines = append(lines, children[i].Line)
		i++
	}
	return &IRNode{Kind: ParagraphNode, Lines: lines}, i - start, true
}

func tryBlankGroup(children []ContainerChild, i int) (*IRNode, int, bool) {
	if lineTypeAt(children, i) != BlankLine {
		return nil, 0, false
	}
	return &IRNode{Kind: BlankLineGroupNode, Lines: []*Line{children[i].Line}}, 1, true
}

// tryAnnotation matches both the "document-level annotation with
// content" and "inline annotation" shapes from spec.md §4.8 (rules 2-3):
// an AnnotationStartLine, then any mixture of nested content containers
// and plain text lines as its body, closed by a bare AnnotationEndLine
// at this same position in the children list. An AnnotationStart line
// already carries its own trailing marker ("::label::"), so when no
// later bare "::" ever closes it (spec.md §4.8 Scenario B's standalone
// ":: note ::" between two blank-separated paragraphs, which never gets
// a second closing line), it is its own complete, zero-body annotation
// rather than a VerbatimNoClose-style degradation to Paragraph: the line
// already reads as a full annotation on its own, and whatever content
// tentatively looked like body text is left for the next pass to parse
// normally as ordinary siblings.
func tryAnnotation(children []ContainerChild, i int) (*IRNode, int, bool) {
	if lineTypeAt(children, i) != AnnotationStartLine {
		return nil, 0, false
	}
	start := children[i].Line
	j := i + 1
	var body []*IRNode
	for j < len(children) {
		if lineTypeAt(children, j) == AnnotationEndLine {
			node := &IRNode{
				Kind:     AnnotationNode,
				Lines:    []*Line{start, children[j].Line},
				Children: body,
				Label:    start.Label,
				Params:   start.Params,
			}
			return node, j - i + 1, true
		}
		if isContainerAt(children, j) {
			body = append(body, ParseContainer(children[j].Container)...)
			j++
			continue
		}
		if lineTypeAt(children, j) == BlankLine {
			body = append(body, &IRNode{Kind: BlankLineGroupNode, Lines: []*Line{children[j].Line}})
			j++
			continue
		}
		if isParagraphResidual(lineTypeAt(children, j)) {
			body = append(body, &IRNode{Kind: ParagraphNode, Lines: []*Line{children[j].Line}})
			j++
			continue
		}
		break
	}
	return &IRNode{Kind: AnnotationNode, Lines: []*Line{start}, Label: start.Label, Params: start.Params}, 1, true
}
