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

// BuildDocument runs the AST Builder stage (spec.md §4.10) over the
// grammar engine's top-level IR list, producing the finished Document.
// The three layers spec.md names - normalization (token unrolling),
// extraction (bounding boxes and text) and instantiation (typed nodes) -
// are not separate passes here: Token.Flatten/BoundingSpan/tokensText
// already do normalization and extraction on demand, so instantiation
// calls them inline as it walks the IR tree bottom-up.
func BuildDocument(irNodes []*IRNode, sl *SourceLocation, src []byte) *Document {
	children := buildChildren(irNodes, sl, src)

	title := ""
	if len(children) > 0 {
		if dt, ok := children[0].(*DocumentTitle); ok {
			title = dt.rawTitle
		}
	}

	root := &Session{Title: title, Children: filterChildren(SessionNode, children)}
	root.base.loc = sl.Locate(unionChildSpans(children))

	doc := &Document{Root: root}
	doc.base.loc = root.base.loc
	return doc
}

func buildChildren(irs []*IRNode, sl *SourceLocation, src []byte) []Node {
	var out []Node
	for _, ir := range irs {
		if n := buildNode(ir, sl, src); n != nil {
			out = append(out, n)
		}
	}
	return out
}

func unionChildSpans(children []Node) Span {
	box := NullSpan()
	for _, c := range children {
		box = box.Union(c.Location().Span)
	}
	return box
}

func nodeSpan(ir *IRNode, children []Node) Span {
	return ir.OwnSpan().Union(unionChildSpans(children))
}

func buildNode(ir *IRNode, sl *SourceLocation, src []byte) Node {
	switch ir.Kind {
	case ParagraphNode:
		return buildParagraph(ir, sl, src)
	case DocumentTitleNode:
		return buildDocumentTitle(ir, sl, src)
	case ListNode:
		return buildList(ir, sl, src)
	case SessionNode:
		return buildSession(ir, sl, src)
	case DefinitionNode:
		return buildDefinition(ir, sl, src)
	case AnnotationNode:
		return buildAnnotation(ir, sl, src)
	case VerbatimBlockNode:
		return buildVerbatimBlock(ir, sl, src)
	case BlankLineGroupNode:
		return buildBlankLineGroup(ir, sl, src)
	default:
		return nil
	}
}

func buildTextLine(l *Line, sl *SourceLocation, src []byte) *TextLine {
	core := coreTokens(l.Tokens)
	text := tokensText(core, src)
	tl := &TextLine{Content: &TextContent{rawText: text, baseOffset: textBaseOffset(core)}}
	tl.base.loc = sl.Locate(BoundingSpan(l.Tokens))
	return tl
}

// textBaseOffset returns the absolute byte offset of a token run's
// extracted text, or 0 for an empty/entirely-synthetic run (the
// resulting text is then empty too, so the offset is never dereferenced).
func textBaseOffset(toks []Token) int {
	box := BoundingSpan(toks)
	if !box.IsValid() {
		return 0
	}
	return box.Start
}

func buildParagraph(ir *IRNode, sl *SourceLocation, src []byte) Node {
	p := &Paragraph{}
	for _, l := range ir.Lines {
		p.Lines = append(p.Lines, buildTextLine(l, sl, src))
	}
	p.base.loc = sl.Locate(ir.OwnSpan())
	return p
}

func buildDocumentTitle(ir *IRNode, sl *SourceLocation, src []byte) Node {
	dt := &DocumentTitle{}
	for _, l := range ir.Lines {
		dt.Lines = append(dt.Lines, buildTextLine(l, sl, src))
	}
	if len(dt.Lines) > 0 {
		dt.rawTitle = dt.Lines[0].Content.rawText
	}
	dt.base.loc = sl.Locate(ir.OwnSpan())
	return dt
}

func buildList(ir *IRNode, sl *SourceLocation, src []byte) Node {
	l := &List{}
	for _, item := range ir.Children {
		l.Items = append(l.Items, buildListItem(item, sl, src))
	}
	if len(l.Items) > 0 {
		l.Decoration = internString(l.Items[0].Marker)
	}
	children := make([]Node, len(l.Items))
	for i, it := range l.Items {
		children[i] = it
	}
	l.base.loc = sl.Locate(unionChildSpans(children))
	return l
}

// buildListItem separates each item line into its raw marker and its
// item text, per spec.md §4.10(b)'s boundary policy ("list-item marker
// is separated from item text"): the first line's marker prefix
// (already located once by the classifier's sequenceMarkerPrefix) is
// excluded from Text; continuation lines contribute their full core
// text unchanged.
func buildListItem(ir *IRNode, sl *SourceLocation, src []byte) *ListItem {
	item := &ListItem{Marker: ir.Marker}
	for i, l := range ir.Lines {
		core := coreTokens(l.Tokens)
		if i == 0 {
			if n, _, ok := sequenceMarkerPrefix(core, src); ok {
				core = trimLeadingWS(core[n:])
			}
		}
		item.Text = append(item.Text, &TextContent{rawText: tokensText(core, src), baseOffset: textBaseOffset(core)})
	}
	item.Children = buildChildren(ir.Children, sl, src)
	item.Children = filterChildren(ListItemNode, item.Children)
	item.base.loc = sl.Locate(nodeSpan(ir, item.Children))
	return item
}

func buildSession(ir *IRNode, sl *SourceLocation, src []byte) Node {
	s := &Session{}
	if len(ir.Lines) > 0 {
		s.Title = subjectText(ir.Lines[0], src)
	}
	s.Children = filterChildren(SessionNode, buildChildren(ir.Children, sl, src))
	s.base.loc = sl.Locate(nodeSpan(ir, s.Children))
	return s
}

func buildDefinition(ir *IRNode, sl *SourceLocation, src []byte) Node {
	d := &Definition{}
	if len(ir.Lines) > 0 {
		d.Subject = subjectText(ir.Lines[0], src)
	}
	d.Children = filterChildren(DefinitionNode, buildChildren(ir.Children, sl, src))
	d.base.loc = sl.Locate(nodeSpan(ir, d.Children))
	return d
}

func buildAnnotation(ir *IRNode, sl *SourceLocation, src []byte) Node {
	a := &Annotation{Label: internString(ir.Label), Parameters: ir.Params}
	a.Children = filterChildren(AnnotationNode, buildChildren(ir.Children, sl, src))
	a.base.loc = sl.Locate(nodeSpan(ir, a.Children))
	return a
}

func buildVerbatimBlock(ir *IRNode, sl *SourceLocation, src []byte) Node {
	v := &VerbatimBlock{Label: internString(ir.Label), Parameters: ir.Params, Mode: ir.Mode}
	if len(ir.Lines) > 0 {
		v.Subject = subjectText(ir.Lines[0], src)
	}
	for _, l := range ir.VerbatimLines {
		toks := l.Tokens
		if n := len(toks); n > 0 && toks[n-1].Kind == NewlineTok {
			toks = toks[:n-1]
		}
		vl := &VerbatimLine{Text: tokensText(toks, src)}
		vl.base.loc = sl.Locate(BoundingSpan(l.Tokens))
		v.Lines = append(v.Lines, vl)
	}
	v.base.loc = sl.Locate(ir.OwnSpan())
	return v
}

func buildBlankLineGroup(ir *IRNode, sl *SourceLocation, src []byte) Node {
	b := &BlankLineGroup{}
	if len(ir.Lines) > 0 && len(ir.Lines[0].Tokens) > 0 {
		b.Count = ir.Lines[0].Tokens[0].BlankLineCount()
	}
	b.base.loc = sl.Locate(ir.OwnSpan())
	return b
}

// subjectText extracts a Session/Definition/VerbatimBlock head's title,
// excluding the trailing colon per spec.md §4.10(b)'s boundary policy.
func subjectText(l *Line, src []byte) string {
	core := coreTokens(l.Tokens)
	if n := len(core); n > 0 && core[n-1].Kind == ColonTok {
		core = trimTrailingWS(core[:n-1])
	}
	return tokensText(core, src)
}

func trimLeadingWS(toks []Token) []Token {
	i := 0
	for i < len(toks) && toks[i].Kind.IsWhitespaceLike() {
		i++
	}
	return toks[i:]
}

func trimTrailingWS(toks []Token) []Token {
	n := len(toks)
	for n > 0 && toks[n-1].Kind.IsWhitespaceLike() {
		n--
	}
	return toks[:n]
}
