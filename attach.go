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

// AttachAnnotations runs the Annotation Attacher stage (spec.md §4.11).
// Every Annotation node the AST builder placed as an ordinary sibling is
// relocated to the node it most plausibly documents, using a
// distance-from-neighbors heuristic, and removed from its original
// position in the child list.
func AttachAnnotations(doc *Document) {
	// The root's own children are handled once, below, with the
	// document-prefix case enabled; only its descendants recurse here.
	for _, c := range doc.Root.Children {
		recurseAnnotations(c, doc)
	}
	doc.Root.Children = attachInChildren(doc.Root.Children, doc.Root, true, doc)
}

// recurseAnnotations resolves nested containers' own annotations first
// (post-order), since relocating an annotation at this level never
// changes what its descendants look like.
func recurseAnnotations(n Node, doc *Document) {
	switch v := n.(type) {
	case *Session:
		for _, c := range v.Children {
			recurseAnnotations(c, doc)
		}
		v.Children = attachInChildren(v.Children, v, false, doc)
	case *Definition:
		for _, c := range v.Children {
			recurseAnnotations(c, doc)
		}
		v.Children = attachInChildren(v.Children, v, false, doc)
	case *Annotation:
		for _, c := range v.Children {
			recurseAnnotations(c, doc)
		}
		// An Annotation is not itself an annotation target, so it has no
		// owner to fall back to.
		v.Children = attachInChildren(v.Children, nil, false, doc)
	case *List:
		for _, item := range v.Items {
			recurseAnnotations(item, doc)
		}
	case *ListItem:
		for _, c := range v.Children {
			recurseAnnotations(c, doc)
		}
		// ListItem is not an annotation target (spec.md §3 names only
		// Session, Paragraph, List, Definition, VerbatimBlock); an
		// annotation with nothing to attach to here is left in place by
		// attachInChildren's nil-owner fallback.
		v.Children = attachInChildren(v.Children, nil, false, doc)
	}
}

// attachInChildren removes every direct Annotation child from children
// and relocates it per spec.md §4.11's distance rule, returning the
// remaining children in order. owner is the Annotated node these
// children belong to (for the "attach to the container itself" case);
// it may be nil where the container kind cannot itself carry
// annotations. isDocumentRoot enables the document-prefix special case.
func attachInChildren(children []Node, owner Annotated, isDocumentRoot bool, doc *Document) []Node {
	var out []Node
	for i, c := range children {
		ann, ok := c.(*Annotation)
		if !ok {
			out = append(out, c)
			continue
		}

		if isDocumentRoot && isDocumentPrefix(children, i) {
			doc.addAnnotation(ann)
			continue
		}

		prevIdx, dPrev := scanForTarget(children, i, -1)
		nextIdx, dNext := scanForTarget(children, i, +1)

		targetIdx := prevIdx
		if dNext <= dPrev {
			targetIdx = nextIdx
		}

		switch {
		case targetIdx >= 0:
			if at, ok := children[targetIdx].(Annotated); ok {
				at.addAnnotation(ann)
			} else {
				out = append(out, ann)
			}
		case owner != nil:
			owner.addAnnotation(ann)
		default:
			out = append(out, ann)
		}
	}
	return out
}

// isDocumentPrefix reports whether children[i] is an Annotation preceded
// only by other Annotations/BlankLineGroups (i.e. nothing has started
// the document's real content yet) and immediately followed by a
// BlankLineGroup, the shape spec.md §4.11 calls a document-prefix
// annotation.
func isDocumentPrefix(children []Node, i int) bool {
	for _, c := range children[:i] {
		switch c.(type) {
		case *Annotation, *BlankLineGroup:
			continue
		default:
			return false
		}
	}
	if i+1 >= len(children) {
		return false
	}
	_, isBlank := children[i+1].(*BlankLineGroup)
	return isBlank
}

// scanForTarget walks from i in the given direction (-1 or +1), skipping
// over other Annotation siblings (transparent to each other's distance
// calculations) and counting intervening BlankLineGroups. It returns the
// index of the first real content sibling and its distance, or -1 and
// the number of blank-line groups seen before running off the container
// edge (spec.md §4.11's virtual-edge-element rule).
func scanForTarget(children []Node, i, step int) (idx, dist int) {
	blanks := 0
	for j := i + step; j >= 0 && j < len(children); j += step {
		switch children[j].(type) {
		case *BlankLineGroup:
			blanks++
		case *Annotation:
			// transparent: does not count toward distance either way
		default:
			if blanks == 0 {
				return j, 0
			}
			return j, blanks + 1
		}
	}
	return -1, blanks
}
