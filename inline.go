// Copyright 2023 Ross Light
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

package commonmark

import "strings"

// An Inline is a span of text within a leaf block,
// such as emphasized text, a link, or a code span.
type Inline struct {
	kind InlineKind
	span Span

	children []*Inline

	// indent is the number of columns of whitespace represented by an [IndentKind] node.
	indent int

	// ref is the normalized reference label.
	// It is set on [LinkLabelKind] nodes
	// and on [LinkKind]/[ImageKind] nodes that use the reference form.
	ref string

	// text holds already-decoded content
	// for node kinds that do not support further inline markup:
	// [InfoStringKind], [LinkDestinationKind], [LinkTitleKind],
	// [LinkLabelKind], and [CodeSpanKind].
	// Backslash escapes and entity references have already been resolved,
	// except in [CodeSpanKind] text, which is kept literally.
	text string
}

// InlineKind is an enumeration of values returned by [*Inline.Kind].
type InlineKind uint16

const (
	// TextKind is used for runs of literal text.
	TextKind InlineKind = 1 + iota
	// SoftLineBreakKind is used for line breaks within a paragraph
	// that are rendered as either a space or a newline.
	SoftLineBreakKind
	// HardLineBreakKind is used for line breaks that must be preserved in rendered output.
	HardLineBreakKind
	// IndentKind is used for runs of whitespace
	// that occur at the beginning of a continuation line within inline content.
	IndentKind
	// CharacterReferenceKind is used for entity and numeric character references.
	CharacterReferenceKind
	// InfoStringKind is used for the info string of a [FencedCodeBlockKind] block.
	InfoStringKind
	// EmphasisKind is used for emphasized text.
	EmphasisKind
	// StrongKind is used for strongly emphasized text.
	StrongKind
	// LinkKind is used for links.
	LinkKind
	// ImageKind is used for images.
	ImageKind
	// LinkDestinationKind is used for the destination of a [LinkKind], [ImageKind],
	// or [LinkReferenceDefinitionKind].
	LinkDestinationKind
	// LinkTitleKind is used for the title of a [LinkKind], [ImageKind],
	// or [LinkReferenceDefinitionKind].
	LinkTitleKind
	// LinkLabelKind is used for the label of a [LinkReferenceDefinitionKind]
	// or the optional reference label of a [LinkKind]/[ImageKind].
	LinkLabelKind
	// CodeSpanKind is used for code spans.
	CodeSpanKind
	// AutolinkKind is used for autolinks.
	AutolinkKind
	// HTMLTagKind is used to wrap a sequence of raw HTML tags and their content.
	// The inline parser does not produce it;
	// raw HTML always becomes [RawHTMLKind].
	HTMLTagKind
	// RawHTMLKind is used for a single raw HTML tag, comment,
	// processing instruction, declaration, or CDATA section
	// encountered during inline parsing.
	RawHTMLKind
	// UnparsedKind is used for block text that has not yet been run
	// through the inline parser.
	UnparsedKind
)

// Kind returns the type of the inline node
// or zero if the node is nil.
func (in *Inline) Kind() InlineKind {
	if in == nil {
		return 0
	}
	return in.kind
}

// Span returns the position information relative to the [RootBlock]'s Source field.
func (in *Inline) Span() Span {
	if in == nil {
		return NullSpan()
	}
	return in.span
}

// ChildCount returns the number of children the node has.
// Calling ChildCount on nil returns 0.
func (in *Inline) ChildCount() int {
	if in == nil {
		return 0
	}
	return len(in.children)
}

// Child returns the i'th child of the node.
func (in *Inline) Child(i int) Node {
	return in.children[i].AsNode()
}

// IndentWidth returns the number of columns of whitespace
// an [IndentKind] node represents, or zero otherwise.
func (in *Inline) IndentWidth() int {
	if in.Kind() != IndentKind {
		return 0
	}
	return in.indent
}

// LinkReference returns the normalized reference label
// used by a [LinkKind], [ImageKind], or [LinkLabelKind] node,
// or an empty string if the node does not use the reference form.
func (in *Inline) LinkReference() string {
	if in == nil {
		return ""
	}
	switch in.kind {
	case LinkLabelKind:
		return in.ref
	case LinkKind, ImageKind:
		if label := in.findChild(LinkLabelKind); label != nil {
			return label.ref
		}
	}
	return ""
}

// LinkDestination returns the destination node of a [LinkKind] or [ImageKind] node,
// or nil if the node has no inline destination
// (for example, because it uses the reference form).
func (in *Inline) LinkDestination() *Inline {
	return in.findChild(LinkDestinationKind)
}

// LinkTitle returns the title node of a [LinkKind] or [ImageKind] node,
// or nil if the node has no title.
func (in *Inline) LinkTitle() *Inline {
	return in.findChild(LinkTitleKind)
}

func (in *Inline) findChild(kind InlineKind) *Inline {
	if in == nil {
		return nil
	}
	for _, c := range in.children {
		if c.kind == kind {
			return c
		}
	}
	return nil
}

// Text returns the decoded text of the inline node and its descendants,
// resolving any entity references and backslash escapes.
func (in *Inline) Text(source []byte) string {
	if in == nil {
		return ""
	}
	switch in.kind {
	case TextKind, UnparsedKind, RawHTMLKind:
		return string(spanSlice(source, in.span))
	case CharacterReferenceKind:
		return decodeEntity(spanSlice(source, in.span))
	case IndentKind:
		return strings.Repeat(" ", in.indent)
	case InfoStringKind, LinkDestinationKind, LinkTitleKind, LinkLabelKind, CodeSpanKind:
		return in.text
	case SoftLineBreakKind, HardLineBreakKind:
		return "\n"
	default:
		sb := new(strings.Builder)
		for _, c := range in.children {
			sb.WriteString(c.Text(source))
		}
		return sb.String()
	}
}
