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

// Package lex provides a parser for Lex, a whitespace-significant,
// line-oriented, indentation-structured markup language.
package lex

import "io"

// A Parser reads a single Lex document from an [io.Reader].
//
// Unlike a block-oriented format where each top-level block can be
// parsed as soon as its lines are read, indentation structure,
// blank-line grouping and annotation attachment are all whole-document
// properties (spec.md §4.3-§4.11 all look at lines other than the one
// in hand), so a Parser cannot incrementally hand back pieces of a
// document the way the teacher's block-at-a-time NextBlock does. It
// instead reads its Reader to completion once and runs the full
// pipeline over the result, exposed as a single NextDocument call that
// returns io.EOF on every call after the first, mirroring the
// exhausted-Reader contract NextBlock uses without its line-by-line
// buffering.
type Parser struct {
	r    io.Reader
	done bool
}

// NewParser returns a Parser that reads a Lex document from r.
func NewParser(r io.Reader) *Parser {
	return &Parser{r: r}
}

// NextDocument reads r to completion and parses it as a single Lex
// document. It returns io.EOF on every call after the first.
func (p *Parser) NextDocument() (*Document, error) {
	if p.done {
		return nil, io.EOF
	}
	p.done = true
	data, err := io.ReadAll(p.r)
	if err != nil {
		return nil, err
	}
	return StringToAST(data), nil
}

// CoreTokenization runs spec.md §6's CORE_TOKENIZATION transform: source
// bytes to the raw token stream, before whitespace normalization,
// indentation or line classification. The returned source is src with a
// trailing newline guaranteed (spec.md §4.1's EOF rule), the same
// buffer every Span in the returned tokens indexes into.
func CoreTokenization(source []byte) (toks []Token, src []byte) {
	src = EnsureTrailingNewline(source)
	return Tokenize(src), src
}

// Lexing runs spec.md §6's LEXING transform: source bytes to the fully
// transformed token stream, up to and including line classification,
// stopping short of container construction and grammar.
func Lexing(source []byte) (items []StreamItem, src []byte) {
	toks, src := CoreTokenization(source)
	toks = NormalizeWhitespace(toks, src)
	toks = ApplyIndentation(toks)
	toks = GroupBlankLines(toks)
	return ClassifyLines(toks, src), src
}

// StringToAST runs spec.md §6's STRING_TO_AST transform, the full
// pipeline from source bytes to a finished [Document]: tokenization,
// whitespace normalization, semantic indentation, blank-line grouping,
// line classification, container construction, context injection,
// grammar, AST building, annotation attachment and inline parsing, in
// that order (spec.md §2).
func StringToAST(source []byte) *Document {
	items, src := Lexing(source)
	root := BuildContainers(items)
	root = InjectContext(root)
	ir := ParseDocument(root)

	sl := NewSourceLocation(src)
	doc := BuildDocument(ir, sl, src)
	AttachAnnotations(doc)
	PopulateInlines(doc, sl)
	return doc
}

// Parse is a convenience alias for [StringToAST], named to match the
// single-call entry point the rest of the pipeline's stage functions
// (Tokenize, ClassifyLines, BuildContainers, ...) are named after.
func Parse(source []byte) *Document {
	return StringToAST(source)
}
