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

// ContainerChild is one child of a LineContainer: either a classified
// Line or a nested LineContainer, never both (spec.md §3).
type ContainerChild struct {
	Line      *Line
	Container *LineContainer
}

func (c ContainerChild) IsLine() bool { return c.Line != nil }

// LineContainer is a tree node grouping lines at the same indentation
// level; the tree shape mirrors Indent/Dedent boundaries exactly
// (spec.md §3, §4.6).
type LineContainer struct {
	Children []ContainerChild

	// WallTokens holds the one IndentWidth step of raw whitespace tokens
	// the Indent event that opened this container consumed from its
	// first line (empty for the root container). A plain line's own
	// Tokens already reflect this after classification; verbatim.go's
	// wall-stripping is the one consumer that needs the bytes back, to
	// recover a nested content line's true original indentation.
	WallTokens []Token
}

// BuildContainers runs the Line-Container Builder stage (spec.md §4.6):
// it walks the classified flat stream with a container stack (root at
// the bottom), appending each Line to the top of the stack, pushing a
// fresh empty LineContainer on Indent, and popping on Dedent.
func BuildContainers(items []StreamItem) *LineContainer {
	root := &LineContainer{}
	stack := []*LineContainer{root}

	for _, it := range items {
		top := stack[len(stack)-1]
		switch {
		case !it.IsMarker():
			line := it.Line
			top.Children = append(top.Children, ContainerChild{Line: &line})
		case it.Marker == IndentTok:
			child := &LineContainer{WallTokens: it.IndentSource}
			top.Children = append(top.Children, ContainerChild{Container: child})
			stack = append(stack, child)
		case it.Marker == DedentTok:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		}
	}
	return root
}
