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

import "sort"

// Position is a zero-based line and column pair. Column is counted in
// UTF-8 characters (runes) from the start of the line, not bytes.
type Position struct {
	Line   int
	Column int
}

// Location is the position information a built AST node carries
// (spec.md §3): a byte span plus its start/end line:column, the latter
// resolved once per document via a SourceLocation cache.
type Location struct {
	Start Position
	End   Position
	Span  Span
}

// SourceLocation resolves byte offsets to line:column positions against
// one immutable source buffer. It is built once per document (spec.md
// §4.10(c): "a shared SourceLocation cache built once per document") and
// reused for every node's Location.
type SourceLocation struct {
	src        []byte
	lineStarts []int // byte offset of the first byte of each line
}

// NewSourceLocation scans src once for newline boundaries and returns a
// cache ready to resolve any offset within src.
func NewSourceLocation(src []byte) *SourceLocation {
	starts := []int{0}
	for i, b := range src {
		if b == '\n' && i+1 < len(src) {
			starts = append(starts, i+1)
		}
	}
	return &SourceLocation{src: src, lineStarts: starts}
}

// Position resolves a byte offset to its zero-based line and
// UTF-8-rune-counted column. Offsets past the end of the source clamp to
// the last valid position.
func (sl *SourceLocation) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(sl.src) {
		offset = len(sl.src)
	}
	line := sort.Search(len(sl.lineStarts), func(i int) bool {
		return sl.lineStarts[i] > offset
	}) - 1
	if line < 0 {
		line = 0
	}
	col := countRunes(sl.src[sl.lineStarts[line]:offset])
	return Position{Line: line, Column: col}
}

// Locate resolves a byte span to a full Location.
func (sl *SourceLocation) Locate(span Span) Location {
	if !span.IsValid() {
		return Location{}
	}
	return Location{
		Start: sl.Position(span.Start),
		End:   sl.Position(span.End),
		Span:  span,
	}
}

func countRunes(b []byte) int {
	n := 0
	for range string(b) {
		n++
	}
	return n
}

// Contains reports whether p falls within [l.Start, l.End), the
// half-open convention ElementAt uses to decide node containment.
func (l Location) Contains(p Position) bool {
	if p.Line < l.Start.Line || (p.Line == l.Start.Line && p.Column < l.Start.Column) {
		return false
	}
	if p.Line > l.End.Line || (p.Line == l.End.Line && p.Column >= l.End.Column) {
		return false
	}
	return true
}
