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

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// PopulateInlines runs the Inline Parser stage (spec.md §4.12) over every
// TextContent already built by build.go, filling in each one's Inlines.
// It runs as its own pass after block parsing and annotation attachment,
// exactly as spec.md §4.12 ("runs after block parsing") and §2's stage
// ordering require.
func PopulateInlines(doc *Document, sl *SourceLocation) {
	walkTextContents(doc.Root, sl)
}

func walkTextContents(n Node, sl *SourceLocation) {
	switch v := n.(type) {
	case *Session:
		for _, c := range v.Children {
			walkTextContents(c, sl)
		}
	case *Definition:
		for _, c := range v.Children {
			walkTextContents(c, sl)
		}
	case *Annotation:
		for _, c := range v.Children {
			walkTextContents(c, sl)
		}
	case *List:
		for _, item := range v.Items {
			walkTextContents(item, sl)
		}
	case *ListItem:
		for _, tc := range v.Text {
			populateOne(tc, sl)
		}
		for _, c := range v.Children {
			walkTextContents(c, sl)
		}
	case *Paragraph:
		for _, tl := range v.Lines {
			populateOne(tl.Content, sl)
		}
	case *DocumentTitle:
		for _, tl := range v.Lines {
			populateOne(tl.Content, sl)
		}
	}
}

func populateOne(tc *TextContent, sl *SourceLocation) {
	if tc == nil {
		return
	}
	sc := &inlineScanner{text: tc.rawText, base: tc.baseOffset, sl: sl}
	tc.Inlines = sc.parse(0, len(tc.rawText))
}

// inlineScanner scans one TextContent's raw text for the spans spec.md
// §4.12 enumerates. It keeps a running absolute byte offset (base) so
// every emitted Inline's Location points back at the original source
// rather than at an offset local to this one line's extracted text.
type inlineScanner struct {
	text string
	base int
	sl   *SourceLocation
}

// parse scans text[start:end] left to right. Priority order follows
// spec.md §4.12: literal spans (code, math) first, then references, then
// formatting (strong, emphasis), then plain text for anything left over.
func (sc *inlineScanner) parse(start, end int) []*Inline {
	var out []*Inline
	runStart := start
	i := start
	for i < end {
		if node, next, ok := sc.tryLiteral(i, end, '`', CodeInline); ok {
			out = sc.flushText(out, runStart, i)
			out = append(out, node)
			i, runStart = next, next
			continue
		}
		if node, next, ok := sc.tryLiteral(i, end, '#', MathInline); ok {
			out = sc.flushText(out, runStart, i)
			out = append(out, node)
			i, runStart = next, next
			continue
		}
		if node, next, ok := sc.tryReference(i, end); ok {
			out = sc.flushText(out, runStart, i)
			out = append(out, node)
			i, runStart = next, next
			continue
		}
		if node, next, ok := sc.tryFormatting(i, end, '*', StrongInline); ok {
			out = sc.flushText(out, runStart, i)
			out = append(out, node)
			i, runStart = next, next
			continue
		}
		if node, next, ok := sc.tryFormatting(i, end, '_', EmphasisInline); ok {
			out = sc.flushText(out, runStart, i)
			out = append(out, node)
			i, runStart = next, next
			continue
		}
		i += runeLen(sc.text, i)
	}
	return sc.flushText(out, runStart, end)
}

// tryLiteral matches a ` or # delimited span whose contents are kept
// verbatim (spec.md §4.12: "literal inlines' contents are preserved
// verbatim"), never recursing into them.
func (sc *inlineScanner) tryLiteral(i, end int, delim byte, kind InlineKindTag) (*Inline, int, bool) {
	if sc.text[i] != delim || !validStart(sc.text, i, 1) {
		return nil, 0, false
	}
	for j := i + 1; j < end; j++ {
		if sc.text[j] != delim || j == i+1 || !validEnd(sc.text, j, 1) {
			continue
		}
		node := &Inline{kind: kind, Text: sc.text[i+1 : j]}
		node.loc = sc.locFor(i, j+1)
		return node, j + 1, true
	}
	return nil, 0, false
}

// tryFormatting matches a * or _ delimited span, recursively parsing its
// content so nested opposite-type delimiters resolve (spec.md §4.12:
// "opposite-type delimiters may nest; same-type may not" — same-type
// nesting is excluded simply by stopping at the first valid closer).
func (sc *inlineScanner) tryFormatting(i, end int, delim byte, kind InlineKindTag) (*Inline, int, bool) {
	if sc.text[i] != delim || !validStart(sc.text, i, 1) {
		return nil, 0, false
	}
	for j := i + 1; j < end; j++ {
		if sc.text[j] != delim || j == i+1 || !validEnd(sc.text, j, 1) {
			continue
		}
		node := &Inline{kind: kind, Children: sc.parse(i+1, j)}
		node.loc = sc.locFor(i, j+1)
		return node, j + 1, true
	}
	return nil, 0, false
}

// tryReference matches a [...] span and classifies its payload (spec.md
// §4.12's reference-payload rules).
func (sc *inlineScanner) tryReference(i, end int) (*Inline, int, bool) {
	if sc.text[i] != '[' || !validStart(sc.text, i, 1) {
		return nil, 0, false
	}
	for j := i + 1; j < end; j++ {
		if sc.text[j] != ']' || j == i+1 || !validEnd(sc.text, j, 1) {
			continue
		}
		refKind, payload := classifyReference(sc.text[i+1 : j])
		node := &Inline{kind: ReferenceInline, RefKind: refKind, Payload: internString(payload)}
		node.loc = sc.locFor(i, j+1)
		return node, j + 1, true
	}
	return nil, 0, false
}

func (sc *inlineScanner) flushText(out []*Inline, start, end int) []*Inline {
	if end <= start {
		return out
	}
	node := &Inline{kind: TextInline, Text: sc.text[start:end]}
	node.loc = sc.locFor(start, end)
	return append(out, node)
}

func (sc *inlineScanner) locFor(start, end int) Location {
	return sc.sl.Locate(Span{Start: sc.base + start, End: sc.base + end})
}

// classifyReference implements spec.md §4.12's payload classification.
// Keys are NFC-normalized first so citation/footnote keys typed with
// differently-composed combining marks compare equal downstream.
func classifyReference(raw string) (ReferenceKind, string) {
	p := norm.NFC.String(raw)
	switch {
	case strings.HasPrefix(p, "@"):
		return CitationReference, p[1:]
	case strings.HasPrefix(p, "^"):
		return FootnoteReference, p[1:]
	case isAllDigits(p):
		return FootnoteReference, p
	case strings.HasPrefix(p, "http"):
		return URLReference, p
	case strings.HasPrefix(p, "/"), strings.HasPrefix(p, "."):
		return FileReference, p
	default:
		return InternalReference, p
	}
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// validStart reports whether a delimLen-byte delimiter starting at i is a
// valid opener (spec.md §4.12): the character before it must not be a
// word character, and the character immediately after it must be one.
func validStart(text string, i, delimLen int) bool {
	before, hasBefore := runeBefore(text, i)
	after, hasAfter := runeAt(text, i+delimLen)
	return (!hasBefore || !isWordRune(before)) && hasAfter && isWordRune(after)
}

// validEnd reports whether a delimLen-byte delimiter starting at i is a
// valid closer: the character before it must be a word character, and
// the one after it must not be.
func validEnd(text string, i, delimLen int) bool {
	before, hasBefore := runeBefore(text, i)
	after, hasAfter := runeAt(text, i+delimLen)
	return hasBefore && isWordRune(before) && (!hasAfter || !isWordRune(after))
}

func runeBefore(text string, i int) (rune, bool) {
	if i <= 0 || i > len(text) {
		return 0, false
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return r, true
}

func runeAt(text string, i int) (rune, bool) {
	if i < 0 || i >= len(text) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return r, true
}

func runeLen(s string, i int) int {
	_, size := utf8.DecodeRuneInString(s[i:])
	if size == 0 {
		return 1
	}
	return size
}
