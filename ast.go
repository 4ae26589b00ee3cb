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

import "go4.org/intern"

// internString folds repeated identifier-shaped strings (annotation
// labels, list decoration tags, reference payload kinds) onto shared
// storage. A large document reuses the same handful of annotation
// labels and list marker styles hundreds of times over; go4.org/intern
// is already part of the module's dependency closure for exactly this
// niche, so AST construction reaches for it instead of letting each
// occurrence allocate its own copy.
func internString(s string) string {
	if s == "" {
		return s
	}
	return intern.GetByString(s).Get().(string)
}

// allowedInSession, allowedInAnnotation and the like encode spec.md §3's
// typed-container nesting rules: "only sessions may contain sessions;
// annotations may not contain annotations; lists contain only list
// items; verbatim contains only verbatim lines." build.go calls
// filterChildren once per container as it instantiates each node, so a
// rule violation (which the grammar engine should never produce, since
// its own patterns already shape what can nest where) is silently
// dropped rather than surfacing a second failure mode alongside
// spec.md §7's existing one.
func allowedInSession(k NodeKind) bool {
	switch k {
	case SessionNode, ParagraphNode, DocumentTitleNode, ListNode, DefinitionNode,
		AnnotationNode, VerbatimBlockNode, BlankLineGroupNode:
		return true
	default:
		return false
	}
}

func allowedInDefinition(k NodeKind) bool {
	return allowedInSession(k) && k != SessionNode
}

func allowedInAnnotation(k NodeKind) bool {
	switch k {
	case AnnotationNode, SessionNode:
		return false
	default:
		return allowedInSession(k)
	}
}

func allowedInListItem(k NodeKind) bool {
	return allowedInAnnotation(k)
}

// filterChildren keeps only the nodes containerKind is allowed to own,
// per the functions above.
func filterChildren(containerKind NodeKind, children []Node) []Node {
	var allowed func(NodeKind) bool
	switch containerKind {
	case SessionNode, DocumentNode:
		allowed = allowedInSession
	case DefinitionNode:
		allowed = allowedInDefinition
	case AnnotationNode:
		allowed = allowedInAnnotation
	case ListItemNode:
		allowed = allowedInListItem
	default:
		return children
	}
	out := children[:0:0]
	for _, c := range children {
		if allowed(c.Kind()) {
			out = append(out, c)
		}
	}
	return out
}
