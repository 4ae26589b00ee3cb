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

import "strconv"

func (k TokenKind) String() string {
	switch k {
	case TextTok:
		return "TextTok"
	case WhitespaceTok:
		return "WhitespaceTok"
	case TabTok:
		return "TabTok"
	case NewlineTok:
		return "NewlineTok"
	case ColonTok:
		return "ColonTok"
	case DashTok:
		return "DashTok"
	case DigitsTok:
		return "DigitsTok"
	case DotTok:
		return "DotTok"
	case ParenTok:
		return "ParenTok"
	case LexMarkerTok:
		return "LexMarkerTok"
	case BracketOpenTok:
		return "BracketOpenTok"
	case BracketCloseTok:
		return "BracketCloseTok"
	case StarTok:
		return "StarTok"
	case UnderscoreTok:
		return "UnderscoreTok"
	case BacktickTok:
		return "BacktickTok"
	case HashTok:
		return "HashTok"
	case IndentTok:
		return "IndentTok"
	case DedentTok:
		return "DedentTok"
	case BlankLineTok:
		return "BlankLineTok"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (t LineType) String() string {
	switch t {
	case BlankLine:
		return "BlankLine"
	case AnnotationEndLine:
		return "AnnotationEndLine"
	case AnnotationStartLine:
		return "AnnotationStartLine"
	case DataLine:
		return "DataLine"
	case SubjectOrListItemLine:
		return "SubjectOrListItemLine"
	case SubjectLine:
		return "SubjectLine"
	case ListLine:
		return "ListLine"
	case DialogLine:
		return "DialogLine"
	case ParagraphLine:
		return "ParagraphLine"
	case DocumentStartLine:
		return "DocumentStartLine"
	case VerbatimContentLine:
		return "VerbatimContentLine"
	default:
		return "LineType(" + strconv.Itoa(int(t)) + ")"
	}
}

func (k NodeKind) String() string {
	switch k {
	case ParagraphNode:
		return "ParagraphNode"
	case ListNode:
		return "ListNode"
	case ListItemNode:
		return "ListItemNode"
	case SessionNode:
		return "SessionNode"
	case DefinitionNode:
		return "DefinitionNode"
	case AnnotationNode:
		return "AnnotationNode"
	case VerbatimBlockNode:
		return "VerbatimBlockNode"
	case VerbatimLineNode:
		return "VerbatimLineNode"
	case BlankLineGroupNode:
		return "BlankLineGroupNode"
	case DocumentTitleNode:
		return "DocumentTitleNode"
	case DocumentNode:
		return "DocumentNode"
	case TextLineNode:
		return "TextLineNode"
	case TextInlineNode:
		return "TextInlineNode"
	case StrongInlineNode:
		return "StrongInlineNode"
	case EmphasisInlineNode:
		return "EmphasisInlineNode"
	case CodeInlineNode:
		return "CodeInlineNode"
	case MathInlineNode:
		return "MathInlineNode"
	case ReferenceInlineNode:
		return "ReferenceInlineNode"
	default:
		return "NodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (ik InlineKindTag) String() string {
	switch ik {
	case TextInline:
		return "TextInline"
	case StrongInline:
		return "StrongInline"
	case EmphasisInline:
		return "EmphasisInline"
	case CodeInline:
		return "CodeInline"
	case MathInline:
		return "MathInline"
	case ReferenceInline:
		return "ReferenceInline"
	default:
		return "InlineKindTag(" + strconv.Itoa(int(ik)) + ")"
	}
}
