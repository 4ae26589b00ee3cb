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

// Node is satisfied by every AST element, structural and inline alike:
// the teacher unifies its Block and Inline kinds behind one traversal
// surface ([Node].Child/ChildCount in commonmark's node.go); Lex has no
// block/inline split in its NodeKind vocabulary (spec.md §3 enumerates
// both under one namespace), so the two trees here share a single
// interface instead of a second wrapper type.
type Node interface {
	Kind() NodeKind
	Location() Location
	ChildCount() int
	Child(i int) Node
}

// Annotated is satisfied by the AST node kinds spec.md §3 allows an
// Annotation to attach to: Session, Paragraph, List, Definition, and
// VerbatimBlock.
type Annotated interface {
	Node
	Annotations() []*Annotation
	addAnnotation(a *Annotation)
}

type base struct {
	loc Location
}

func (b base) Location() Location { return b.loc }

// Document is the AST root (spec.md §3): it owns exactly one child, the
// top-level Session every document implicitly has even when the source
// never writes an explicit session head.
type Document struct {
	base
	Root        *Session
	annotations []*Annotation
}

func (d *Document) Kind() NodeKind             { return DocumentNode }
func (d *Document) ChildCount() int            { return 1 }
func (d *Document) Child(i int) Node           { return d.Root }
func (d *Document) Annotations() []*Annotation { return d.annotations }
func (d *Document) addAnnotation(a *Annotation) { d.annotations = append(d.annotations, a) }

// Session is a titled, nestable region (spec.md §3): only sessions may
// contain sessions; Children otherwise holds any structural node kind.
type Session struct {
	base
	Title       string
	Children    []Node
	annotations []*Annotation
}

// EffectiveTitle returns s.Title, falling back to the first child
// Session's EffectiveTitle when s.Title is empty (spec.md §4.10: "the
// root session title is empty, with an accessor that falls back to the
// first child session's title when the root is empty").
func (s *Session) EffectiveTitle() string {
	if s.Title != "" {
		return s.Title
	}
	for _, c := range s.Children {
		if child, ok := c.(*Session); ok {
			return child.EffectiveTitle()
		}
	}
	return ""
}

func (s *Session) Kind() NodeKind            { return SessionNode }
func (s *Session) ChildCount() int           { return len(s.Children) }
func (s *Session) Child(i int) Node          { return s.Children[i] }
func (s *Session) Annotations() []*Annotation { return s.annotations }
func (s *Session) addAnnotation(a *Annotation) { s.annotations = append(s.annotations, a) }

// Paragraph is an ordered run of TextLines (spec.md §3).
type Paragraph struct {
	base
	Lines       []*TextLine
	annotations []*Annotation
}

func (p *Paragraph) Kind() NodeKind             { return ParagraphNode }
func (p *Paragraph) ChildCount() int            { return len(p.Lines) }
func (p *Paragraph) Child(i int) Node           { return p.Lines[i] }
func (p *Paragraph) Annotations() []*Annotation { return p.annotations }
func (p *Paragraph) addAnnotation(a *Annotation) { p.annotations = append(p.annotations, a) }

// DocumentTitle is a Paragraph reinterpreted as the document's title by
// the grammar engine's top-level pass (spec.md §4.8 rule 8, grammar.go's
// ParseDocument). It carries the same shape as Paragraph.
type DocumentTitle struct {
	base
	Lines       []*TextLine
	annotations []*Annotation
	rawTitle    string
}

func (t *DocumentTitle) Kind() NodeKind             { return DocumentTitleNode }
func (t *DocumentTitle) ChildCount() int            { return len(t.Lines) }
func (t *DocumentTitle) Child(i int) Node           { return t.Lines[i] }
func (t *DocumentTitle) Annotations() []*Annotation { return t.annotations }
func (t *DocumentTitle) addAnnotation(a *Annotation) { t.annotations = append(t.annotations, a) }

// TextLine pairs one source line's extracted inline content with its
// own location (spec.md §3).
type TextLine struct {
	base
	Content *TextContent
}

func (t *TextLine) Kind() NodeKind { return TextLineNode }
func (t *TextLine) ChildCount() int {
	if t.Content == nil {
		return 0
	}
	return len(t.Content.Inlines)
}
func (t *TextLine) Child(i int) Node { return t.Content.Inlines[i] }

// TextContent is the ordered sequence of inline spans a TextLine (or a
// ListItem's item text) extracts from its source (spec.md §3). It is
// plain data, not itself a traversable Node: callers reach its Inlines
// through the owning TextLine or ListItem.
type TextContent struct {
	Inlines []*Inline

	// rawText is the text the inline parser (inline.go) scans to populate
	// Inlines; it is retained because AST building (§4.10) and inline
	// parsing (§4.12) are separate passes run in sequence by parse.go.
	rawText string

	// baseOffset is rawText's absolute byte offset in the source buffer,
	// letting inline.go translate its local scan positions back into
	// real Spans without re-deriving them from tokens.
	baseOffset int
}

// List holds two or more ListItems sharing an observed marker style
// (spec.md §3; a single marked line is a Paragraph, never a List — see
// grammar.go's tryList, which refuses to match fewer than two items).
type List struct {
	base
	Items       []*ListItem
	Decoration  string // the first item's observed marker style
	annotations []*Annotation
}

func (l *List) Kind() NodeKind             { return ListNode }
func (l *List) ChildCount() int            { return len(l.Items) }
func (l *List) Child(i int) Node           { return l.Items[i] }
func (l *List) Annotations() []*Annotation { return l.annotations }
func (l *List) addAnnotation(a *Annotation) { l.annotations = append(l.annotations, a) }

// ListItem is one entry of a List: its own marker text, its item text
// (one TextContent per source line), and any nested typed container
// (spec.md §3).
type ListItem struct {
	base
	Marker   string
	Text     []*TextContent
	Children []Node
}

func (li *ListItem) Kind() NodeKind  { return ListItemNode }
func (li *ListItem) ChildCount() int { return len(li.Children) }
func (li *ListItem) Child(i int) Node { return li.Children[i] }

// Definition pairs a subject line with its typed child container
// (spec.md §3).
type Definition struct {
	base
	Subject     string
	Children    []Node
	annotations []*Annotation
}

func (d *Definition) Kind() NodeKind             { return DefinitionNode }
func (d *Definition) ChildCount() int            { return len(d.Children) }
func (d *Definition) Child(i int) Node           { return d.Children[i] }
func (d *Definition) Annotations() []*Annotation { return d.annotations }
func (d *Definition) addAnnotation(a *Annotation) { d.annotations = append(d.annotations, a) }

// Annotation is a labeled metadata block (spec.md §3): label, ordered
// parameters, and a typed child container that may never itself contain
// another Annotation.
type Annotation struct {
	base
	Label      string
	Parameters []Param
	Children   []Node
}

func (a *Annotation) Kind() NodeKind  { return AnnotationNode }
func (a *Annotation) ChildCount() int { return len(a.Children) }
func (a *Annotation) Child(i int) Node { return a.Children[i] }

// VerbatimBlock preserves one or more (subject, content) groups whose
// content bytes are never tokenized or parsed as Lex (spec.md §3, §4.9).
type VerbatimBlock struct {
	base
	Subject     string
	Lines       []*VerbatimLine
	Label       string
	Parameters  []Param
	Mode        VerbatimMode
	annotations []*Annotation
}

func (v *VerbatimBlock) Kind() NodeKind             { return VerbatimBlockNode }
func (v *VerbatimBlock) ChildCount() int            { return len(v.Lines) }
func (v *VerbatimBlock) Child(i int) Node           { return v.Lines[i] }
func (v *VerbatimBlock) Annotations() []*Annotation { return v.annotations }
func (v *VerbatimBlock) addAnnotation(a *Annotation) { v.annotations = append(v.annotations, a) }

// VerbatimLine is one content line of a VerbatimBlock, its text already
// stripped of the verbatim wall (spec.md §3, §4.9).
type VerbatimLine struct {
	base
	Text string
}

func (vl *VerbatimLine) Kind() NodeKind    { return VerbatimLineNode }
func (vl *VerbatimLine) ChildCount() int   { return 0 }
func (vl *VerbatimLine) Child(int) Node    { panic("lex: VerbatimLine has no children") }

// BlankLineGroup records a run of one or more blank lines as a single
// AST node (spec.md §3), so downstream consumers can reconstruct
// original vertical spacing without counting raw newlines themselves.
type BlankLineGroup struct {
	base
	Count int
}

func (b *BlankLineGroup) Kind() NodeKind  { return BlankLineGroupNode }
func (b *BlankLineGroup) ChildCount() int { return 0 }
func (b *BlankLineGroup) Child(int) Node  { panic("lex: BlankLineGroup has no children") }

// ReferenceKind selects which payload shape a Reference inline carries
// (spec.md §3).
type ReferenceKind uint8

const (
	FootnoteReference ReferenceKind = 1 + iota
	CitationReference
	InternalReference
	URLReference
	FileReference
)

// Inline is one inline span produced by the inline parser (spec.md §3,
// §4.12): plain text, a delimited span (Strong/Emphasis/Code/Math)
// wrapping further Inlines, or a Reference carrying a classified
// payload. It satisfies [Node] so query.go's traversal helpers can
// descend from a TextLine straight into inline content.
type Inline struct {
	base
	kind InlineKindTag

	Text     string // Text/Code/Math literal content
	Children []*Inline // Strong/Emphasis delimited content

	RefKind ReferenceKind
	Payload string
}

// InlineKindTag distinguishes the Inline variants listed in spec.md §3.
// It is a distinct type from [NodeKind] (whose Inline-tagged constants
// it maps onto via Kind()) because spec.md enumerates inline variants as
// their own closed vocabulary, independent of the structural IR/AST
// kinds the grammar engine produces.
type InlineKindTag uint8

const (
	TextInline InlineKindTag = 1 + iota
	StrongInline
	EmphasisInline
	CodeInline
	MathInline
	ReferenceInline
)

func (ik InlineKindTag) asNodeKind() NodeKind {
	switch ik {
	case StrongInline:
		return StrongInlineNode
	case EmphasisInline:
		return EmphasisInlineNode
	case CodeInline:
		return CodeInlineNode
	case MathInline:
		return MathInlineNode
	case ReferenceInline:
		return ReferenceInlineNode
	default:
		return TextInlineNode
	}
}

// InlineKind reports which of the spec's closed inline variants this
// span is.
func (in *Inline) InlineKind() InlineKindTag { return in.kind }

func (in *Inline) Kind() NodeKind  { return in.kind.asNodeKind() }
func (in *Inline) ChildCount() int { return len(in.Children) }
func (in *Inline) Child(i int) Node { return in.Children[i] }
