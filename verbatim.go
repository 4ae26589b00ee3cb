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

// tryVerbatim implements the Verbatim-Block sub-parser (spec.md §4.9). It
// is tried before every other grammar pattern, since verbatim content
// must never be reinterpreted as Lex once its subject line is recognized.
//
// Shape: a SubjectLine S, then either a single nested LineContainer
// (in-flow content) or full-width content, then a closing Data or
// AnnotationEnd line T back at S's depth. Full-width content starts at
// column 1: the indentation stage opens a container for its first line
// and returns to S's level for the lines after it, so the content is that
// container plus every following child up to T. Multiple (subject,
// content) groups may repeat, separated by one blank line, before the
// single closing T. An S with no eventual T
// degrades to ordinary Subject-as-paragraph handling: this function
// reports no match and lets tryDefinition/tryParagraph pick the line up.
//
// States (spec.md §4.9): Idle (not yet entered) -> SawSubject ->
// CollectingContent -> ExpectingNextSubjectOrClose -> Closed. The states
// are threaded through as plain Go control flow below rather than an
// explicit state value, since the whole match happens in one pass with
// no external re-entry.
// isVerbatimClosing reports whether t is a line shape that can terminate
// a verbatim block: a bare Data line ("::label params", spec.md §4.5
// rule 4), a bare AnnotationEnd line ("::"), or an AnnotationStart line
// ("::label params::") — spec.md §4.8 Scenario C's closer (":: python
// ::") carries a trailing marker and so classifies as AnnotationStart,
// the same line shape an inline annotation opens with, not as the
// no-trailing-marker Data line §4.9's prose names. All three close a
// verbatim block identically: only the label/params are taken.
func isVerbatimClosing(t LineType) bool {
	switch t {
	case DataLine, AnnotationEndLine, AnnotationStartLine:
		return true
	default:
		return false
	}
}

func tryVerbatim(children []ContainerChild, i int) (*IRNode, int, bool) {
	if lineTypeAt(children, i) != SubjectLine {
		return nil, 0, false
	}

	start := i
	node := &IRNode{Kind: VerbatimBlockNode}
	j := i
	firstGroup := true

	for {
		subject := children[j].Line
		j++

		var group []*Line
		var mode VerbatimMode
		var wall int

		if isContainerAt(children, j) {
			k := j + 1
			group, mode, wall = flatVerbatimLines(children[j:k], subject.Depth)
			if mode == FullWidthMode {
				for k < len(children) && !(children[k].IsLine() && isVerbatimClosing(children[k].Line.Type)) {
					k++
				}
				group, mode, wall = flatVerbatimLines(children[j:k], subject.Depth)
			}
			j = k
		} else {
			var flat []ContainerChild
			k := j
			for k < len(children) && children[k].IsLine() && !isVerbatimClosing(children[k].Line.Type) {
				flat = append(flat, children[k])
				k++
			}
			group, mode, wall = flatVerbatimLines(flat, subject.Depth)
			j = k
		}

		node.Lines = append(node.Lines, subject)
		node.VerbatimLines = append(node.VerbatimLines, group...)
		if firstGroup {
			node.Mode, node.VerbatimWall = mode, wall
			firstGroup = false
		}

		if isVerbatimClosing(lineTypeAt(children, j)) {
			closing := children[j].Line
			node.Lines = append(node.Lines, closing)
			node.Label = closing.Label
			node.Params = closing.Params
			return node, j - start + 1, true
		}

		// Multi-group continuation: exactly one BlankLine then another
		// SubjectLine at this same depth keeps the block open.
		if lineTypeAt(children, j) == BlankLine && lineTypeAt(children, j+1) == SubjectLine &&
			children[j+1].Line.Depth == subject.Depth {
			j++
			continue
		}
		// The indentation stage usually leaves that blank line at the end
		// of the previous group's container; it is then dropped from the
		// content instead.
		if n := len(node.VerbatimLines); n > 0 && node.VerbatimLines[n-1].Type == BlankLine &&
			lineTypeAt(children, j) == SubjectLine && children[j].Line.Depth == subject.Depth {
			node.VerbatimLines = node.VerbatimLines[:n-1]
			continue
		}

		// VerbatimNoClose: no terminator was ever found.
		return nil, 0, false
	}
}

// flattenVerbatimContent walks a verbatim block's content area in
// document order, descending into further-nested LineContainers: a
// content line indented deeper than its siblings (spec.md §4.9's "beyond
// the wall" case, see Scenario C) still gets grouped into its own nested
// container by the generic indentation stage, even though semantically
// it is flat verbatim content, not real structure. The container's
// opening Indent event consumed one IndentWidth step of raw whitespace
// from that line's own prefix before classification ever saw it (see
// LineContainer.WallTokens); it is reattached here so stripWall measures
// the line's true original column rather than only the remainder
// ApplyIndentation left behind.
func flattenVerbatimContent(children []ContainerChild) []*Line {
	var out []*Line
	for _, c := range children {
		if c.IsLine() {
			out = append(out, c.Line)
			continue
		}
		nested := flattenVerbatimContent(c.Container.Children)
		if len(nested) > 0 && len(c.Container.WallTokens) > 0 {
			first := *nested[0]
			first.Tokens = append(append([]Token{}, c.Container.WallTokens...), first.Tokens...)
			nested[0] = &first
		}
		out = append(out, nested...)
	}
	return out
}

// flatVerbatimLines converts a run of already-classified lines (either a
// verbatim block's in-flow child container or its full-width flat run)
// into VerbatimLine content, determined by examining the first non-blank
// line's indentation column (spec.md §4.9's mode-determination rule).
func flatVerbatimLines(content []ContainerChild, subjectDepth int) ([]*Line, VerbatimMode, int) {
	lines := flattenVerbatimContent(content)
	mode := InFlowMode
	wall := (subjectDepth + 1) * IndentWidth

	for _, l := range lines {
		if l.Type == BlankLine {
			continue
		}
		col, _ := lineIndentWidth(l.Tokens)
		if col == 1 {
			mode, wall = FullWidthMode, 1
		}
		break
	}

	out := make([]*Line, 0, len(lines))
	for _, l := range lines {
		out = append(out, stripWall(l, wall))
	}
	return out, mode, wall
}

// stripWall returns a VerbatimLine-bound copy of l whose Tokens have had
// the first wall columns of leading whitespace removed; everything at or
// beyond the wall (including further whitespace) is preserved literally,
// per spec.md §4.9.
func stripWall(l *Line, wall int) *Line {
	if l.Type == BlankLine {
		cp := *l
		return &cp
	}
	_, prefixLen := lineIndentWidth(l.Tokens)
	_, rest := splitByWidth(l.Tokens[:prefixLen], wall)
	toks := append(append([]Token{}, rest...), l.Tokens[prefixLen:]...)
	return &Line{Type: VerbatimContentLine, Tokens: toks, Depth: l.Depth}
}
