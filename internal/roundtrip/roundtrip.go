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

// Package roundtrip re-emits a [lex.Document] as Lex source text. It
// exists only to drive the round-trip property test
// (parse(serialize(parse(x))) == parse(x)): it has no formatting
// preferences, no public configuration, and is not the AST_TO_*
// exporter a real collaborator package would provide.
package roundtrip

import (
	"bytes"
	"strconv"
	"strings"

	lex "github.com/lex-fmt/core"
)

// Serialize re-emits doc as Lex source text.
func Serialize(doc *lex.Document) string {
	var buf bytes.Buffer
	for _, a := range doc.Annotations() {
		writeAnnotation(&buf, a, 0)
	}
	writeChildren(&buf, doc.Root.Children, 0)
	return buf.String()
}

func writeIndent(buf *bytes.Buffer, depth int) {
	buf.WriteString(strings.Repeat(" ", depth*lex.IndentWidth))
}

func writeChildren(buf *bytes.Buffer, children []lex.Node, depth int) {
	for _, c := range children {
		writeNode(buf, c, depth)
	}
}

// writeNode dispatches on the concrete AST type, mirroring the stack of
// per-kind cases the teacher's format.go switches over its Block tree
// one level at a time; Lex's tree is shallow enough per call that plain
// recursion replaces the teacher's explicit work stack.
func writeNode(buf *bytes.Buffer, n lex.Node, depth int) {
	switch v := n.(type) {
	case *lex.Session:
		writeSession(buf, v, depth)
	case *lex.Paragraph:
		writeTextLines(buf, v.Lines, depth)
		writeAnnotations(buf, v.Annotations(), depth)
	case *lex.DocumentTitle:
		writeTextLines(buf, v.Lines, depth)
		writeAnnotations(buf, v.Annotations(), depth)
	case *lex.List:
		writeList(buf, v, depth)
		writeAnnotations(buf, v.Annotations(), depth)
	case *lex.Definition:
		writeDefinition(buf, v, depth)
		writeAnnotations(buf, v.Annotations(), depth)
	case *lex.Annotation:
		writeAnnotation(buf, v, depth)
	case *lex.VerbatimBlock:
		writeVerbatimBlock(buf, v, depth)
		writeAnnotations(buf, v.Annotations(), depth)
	case *lex.BlankLineGroup:
		for i := 0; i < v.Count; i++ {
			buf.WriteString("\n")
		}
	}
}

func writeAnnotations(buf *bytes.Buffer, anns []*lex.Annotation, depth int) {
	for _, a := range anns {
		writeAnnotation(buf, a, depth)
	}
}

func writeSession(buf *bytes.Buffer, s *lex.Session, depth int) {
	writeIndent(buf, depth)
	buf.WriteString(s.Title)
	buf.WriteString(":\n\n")
	writeChildren(buf, s.Children, depth+1)
	writeAnnotations(buf, s.Annotations(), depth)
}

func writeDefinition(buf *bytes.Buffer, d *lex.Definition, depth int) {
	writeIndent(buf, depth)
	buf.WriteString(d.Subject)
	buf.WriteString(":\n")
	writeChildren(buf, d.Children, depth+1)
}

func writeTextLines(buf *bytes.Buffer, lines []*lex.TextLine, depth int) {
	for _, l := range lines {
		writeIndent(buf, depth)
		writeInlines(buf, l.Content.Inlines)
		buf.WriteString("\n")
	}
}

func writeList(buf *bytes.Buffer, l *lex.List, depth int) {
	for _, item := range l.Items {
		for i, tc := range item.Text {
			if i == 0 {
				writeIndent(buf, depth)
				buf.WriteString(item.Marker)
				buf.WriteString(" ")
			} else {
				writeIndent(buf, depth)
				buf.WriteString(strings.Repeat(" ", len(item.Marker)+1))
			}
			writeInlines(buf, tc.Inlines)
			buf.WriteString("\n")
		}
		writeChildren(buf, item.Children, depth+1)
	}
}

func writeVerbatimBlock(buf *bytes.Buffer, v *lex.VerbatimBlock, depth int) {
	writeIndent(buf, depth)
	buf.WriteString(v.Subject)
	buf.WriteString(":\n")
	wall := (depth + 1) * lex.IndentWidth
	if v.Mode == lex.FullWidthMode {
		wall = 1
	}
	for _, l := range v.Lines {
		buf.WriteString(strings.Repeat(" ", wall))
		buf.WriteString(l.Text)
		buf.WriteString("\n")
	}
	writeIndent(buf, depth)
	buf.WriteString("::")
	buf.WriteString(v.Label)
	writeParams(buf, v.Parameters)
	buf.WriteString("\n")
}

func writeAnnotation(buf *bytes.Buffer, a *lex.Annotation, depth int) {
	writeIndent(buf, depth)
	buf.WriteString("::")
	buf.WriteString(a.Label)
	writeParams(buf, a.Parameters)
	buf.WriteString("::\n")
	writeChildren(buf, a.Children, depth)
	writeIndent(buf, depth)
	buf.WriteString("::\n")
}

func writeParams(buf *bytes.Buffer, params []lex.Param) {
	for _, p := range params {
		buf.WriteString(" ")
		buf.WriteString(p.Key)
		buf.WriteString("=")
		if p.Quoted {
			buf.WriteString(strconv.Quote(p.Value))
		} else {
			buf.WriteString(p.Value)
		}
	}
}

// writeInlines reconstructs the delimited-span syntax inline.go parses,
// recursing into formatting spans so nested emphasis round-trips.
func writeInlines(buf *bytes.Buffer, ins []*lex.Inline) {
	for _, in := range ins {
		switch in.InlineKind() {
		case lex.TextInline:
			buf.WriteString(in.Text)
		case lex.StrongInline:
			buf.WriteString("*")
			writeInlines(buf, in.Children)
			buf.WriteString("*")
		case lex.EmphasisInline:
			buf.WriteString("_")
			writeInlines(buf, in.Children)
			buf.WriteString("_")
		case lex.CodeInline:
			buf.WriteString("`")
			buf.WriteString(in.Text)
			buf.WriteString("`")
		case lex.MathInline:
			buf.WriteString("#")
			buf.WriteString(in.Text)
			buf.WriteString("#")
		case lex.ReferenceInline:
			buf.WriteString("[")
			buf.WriteString(referencePrefix(in))
			buf.WriteString(in.Payload)
			buf.WriteString("]")
		}
	}
}

func referencePrefix(in *lex.Inline) string {
	switch in.RefKind {
	case lex.CitationReference:
		return "@"
	case lex.FootnoteReference:
		if isAllDigits(in.Payload) {
			return ""
		}
		return "^"
	default:
		return ""
	}
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
