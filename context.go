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

// InjectContext runs the Context Injector stage (spec.md §4.7). It does
// two things to the line-container tree, turning context-sensitive
// grammar decisions into locally-visible facts:
//
//  1. Marks every Line with whether it is preceded by a blank-line
//     separator or sits at a container edge (AfterSeparator), so the
//     grammar engine's Session-head rule never needs to look behind
//     itself.
//  2. Inserts a synthetic DocumentStartLine into the root container
//     immediately after the last leading document-prefix Annotation, or
//     at position 0 if there is none.
func InjectContext(root *LineContainer) *LineContainer {
	markSeparators(root)
	insertDocumentStart(root)
	return root
}

func markSeparators(c *LineContainer) {
	afterSeparator := true // container edge counts as a separator
	for i := range c.Children {
		child := &c.Children[i]
		if child.IsLine() {
			child.Line.AfterSeparator = afterSeparator
			afterSeparator = child.Line.Type == BlankLine
			continue
		}
		markSeparators(child.Container)
		afterSeparator = false
	}
}

// prefixAnnotationEnd returns the index just past the leading run of
// document-prefix Annotations (AnnotationStartLine ... AnnotationEndLine,
// optionally interspersed with their own nested body container and blank
// separators between consecutive annotations; a start line that no later
// AnnotationEndLine closes counts as a complete annotation by itself), or
// 0 if the document has no such prefix.
func prefixAnnotationEnd(children []ContainerChild) int {
	i := 0
	last := 0
	for i < len(children) {
		c := children[i]
		if c.IsLine() && c.Line.Type == BlankLine {
			i++
			continue
		}
		if !c.IsLine() || c.Line.Type != AnnotationStartLine {
			break
		}
		s := i
		i++
		closed := false
		for i < len(children) {
			if !children[i].IsLine() {
				i++ // nested annotation body container
				continue
			}
			i++
			if children[i-1].Line.Type == AnnotationEndLine {
				closed = true
				break
			}
		}
		if !closed {
			i = s + 1
			last = i
			continue
		}
		last = i
	}
	return last
}

func insertDocumentStart(root *LineContainer) {
	at := prefixAnnotationEnd(root.Children)
	marker := ContainerChild{Line: &Line{Type: DocumentStartLine, AfterSeparator: true}}
	root.Children = append(root.Children, ContainerChild{})
	copy(root.Children[at+1:], root.Children[at:])
	root.Children[at] = marker
}
