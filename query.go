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

// NodesOfKind returns every node of the given kind reachable from root,
// in document order, descending recursively through the whole tree.
func NodesOfKind(root Node, kind NodeKind) []Node {
	var out []Node
	Walk(root, &WalkOptions{
		Pre: func(c *Cursor) bool {
			if c.Node().Kind() == kind {
				out = append(out, c.Node())
			}
			return true
		},
	})
	return out
}

// ChildrenOfKind returns root's direct children of the given kind,
// without descending into their subtrees (spec.md §4.13's "shallow"
// iteration).
func ChildrenOfKind(root Node, kind NodeKind) []Node {
	var out []Node
	for i := 0; i < root.ChildCount(); i++ {
		if c := root.Child(i); c.Kind() == kind {
			out = append(out, c)
		}
	}
	return out
}

// AtDepth returns every node at exactly the given depth below root (root
// itself is depth 0).
func AtDepth(root Node, depth int) []Node {
	var out []Node
	Walk(root, &WalkOptions{
		Pre: func(c *Cursor) bool {
			if c.Depth() == depth {
				out = append(out, c.Node())
				return false // nothing below depth can also be at depth
			}
			return c.Depth() < depth
		},
	})
	return out
}

// InRange returns every node whose Location.Span falls entirely within
// [start, end), in document order.
func InRange(root Node, start, end int) []Node {
	var out []Node
	Walk(root, &WalkOptions{
		Pre: func(c *Cursor) bool {
			sp := c.Node().Location().Span
			if sp.IsValid() && sp.Start >= start && sp.End <= end {
				out = append(out, c.Node())
			}
			return true
		},
	})
	return out
}

// ElementAt returns the deepest node whose location contains pos, along
// with every ancestor above it, deepest first (spec.md §4.13). The search
// stops at a TextLine: the inline nodes inside it are not candidates. It
// returns nil if no node in the tree contains pos.
func ElementAt(root Node, pos Position) []Node {
	var path []Node
	var walk func(n Node)
	walk = func(n Node) {
		if !n.Location().Contains(pos) {
			return
		}
		path = append(path, n)
		if n.Kind() == TextLineNode {
			return
		}
		for i := 0; i < n.ChildCount(); i++ {
			walk(n.Child(i))
		}
	}
	walk(root)

	// path is currently root-first (shallowest first); reverse it so the
	// deepest match comes first, per spec.md §4.13.
	out := make([]Node, len(path))
	for i, n := range path {
		out[len(path)-1-i] = n
	}
	return out
}
