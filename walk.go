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

// A Cursor describes a [Node] encountered during [Walk].
type Cursor struct {
	node   Node
	parent Node
	index  int
	depth  int
}

// Node returns the current [Node].
func (c *Cursor) Node() Node { return c.node }

// Parent returns the parent of the current [Node], or nil at the root.
func (c *Cursor) Parent() Node { return c.parent }

// Index returns the index of the current [Node] in its parent's
// children, or -1 at the root.
func (c *Cursor) Index() int { return c.index }

// Depth returns the current [Node]'s depth, the root being 0.
func (c *Cursor) Depth() int { return c.depth }

// WalkOptions is the set of parameters to [Walk].
type WalkOptions struct {
	// Pre is called for each node before its children are traversed. If
	// Pre returns false, the node's children are skipped and Post is not
	// called for it.
	Pre func(c *Cursor) bool
	// Post is called for each node after its children are traversed. If
	// Post returns false, traversal stops immediately.
	Post func(c *Cursor) bool
}

// Walk traverses root and every descendant reachable through [Node]'s
// Child/ChildCount, in depth-first pre/post order, the same iterative
// two-phase stack walk the teacher's library uses for its Block/Inline
// tree (this module's Node interface plays the same unifying role their
// [Node] type does, so the traversal itself needed no new design).
func Walk(root Node, opts *WalkOptions) {
	type walkFrame struct {
		Cursor
		post bool
	}

	stack := []walkFrame{{Cursor: Cursor{node: root, index: -1}}}
	cursor := new(Cursor)
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if curr.post {
			if opts.Post != nil {
				*cursor = curr.Cursor
				if !opts.Post(cursor) {
					return
				}
			}
			continue
		}

		if opts.Pre != nil {
			*cursor = curr.Cursor
			if !opts.Pre(cursor) {
				continue
			}
		}
		curr.post = true
		stack = append(stack, curr)
		for i := curr.node.ChildCount() - 1; i >= 0; i-- {
			stack = append(stack, walkFrame{
				Cursor: Cursor{
					parent: curr.node,
					node:   curr.node.Child(i),
					index:  i,
					depth:  curr.depth + 1,
				},
			})
		}
	}
}
