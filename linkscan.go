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

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

// spanRange is the result of scanning a bracketed construct,
// such as a link label.
type spanRange struct {
	span  Span // the full range, including delimiters
	inner Span // the range of the content between the delimiters
}

var invalidSpanRange = spanRange{span: NullSpan(), inner: NullSpan()}

// spanTextRange is the result of scanning a link destination or title.
type spanTextRange struct {
	span Span // the full range, including any delimiters
	text Span // the range to decode into the node's text
}

var invalidSpanTextRange = spanTextRange{span: NullSpan(), text: NullSpan()}

// parseLinkLabel parses a [link label] starting at r's current position.
//
// [link label]: https://spec.commonmark.org/0.30/#link-label
func parseLinkLabel(r *inlineByteReader) spanRange {
	if r.current() != '[' {
		return invalidSpanRange
	}
	start := r.pos
	r.next()
	innerStart := r.pos
	nonBlank := false
	length := 0
	for {
		switch c := r.current(); c {
		case 0:
			return invalidSpanRange
		case ']':
			inner := Span{Start: innerStart, End: r.pos}
			end := r.pos + 1
			r.next()
			if !nonBlank || length > 999 {
				return invalidSpanRange
			}
			return spanRange{span: Span{Start: start, End: end}, inner: inner}
		case '[':
			return invalidSpanRange
		case '\\':
			r.next()
			if c := r.current(); c != 0 {
				if !isSpaceTabOrLineEnding(c) {
					nonBlank = true
				}
				r.next()
			}
			length += 2
		default:
			if !isSpaceTabOrLineEnding(c) {
				nonBlank = true
			}
			length++
			r.next()
		}
		if length > 999 {
			return invalidSpanRange
		}
	}
}

// parseLinkDestination parses a [link destination] starting at r's current position.
//
// [link destination]: https://spec.commonmark.org/0.30/#link-destination
func parseLinkDestination(r *inlineByteReader) spanTextRange {
	start := r.pos
	if r.current() == '<' {
		r.next()
		textStart := r.pos
		for {
			switch c := r.current(); c {
			case '>':
				textEnd := r.pos
				end := r.pos + 1
				r.next()
				return spanTextRange{span: Span{Start: start, End: end}, text: Span{Start: textStart, End: textEnd}}
			case 0, '<', '\r', '\n':
				return invalidSpanTextRange
			case '\\':
				r.next()
				if r.current() != 0 {
					r.next()
				}
			default:
				r.next()
			}
		}
	}

	depth := 0
	for {
		switch c := r.current(); {
		case c == '(':
			depth++
			r.next()
		case c == ')':
			if depth == 0 {
				if r.pos == start {
					return invalidSpanTextRange
				}
				return spanTextRange{span: Span{Start: start, End: r.pos}, text: Span{Start: start, End: r.pos}}
			}
			depth--
			r.next()
		case c == '\\':
			r.next()
			if r.current() != 0 {
				r.next()
			}
		case c == 0 || isSpaceTabOrLineEnding(c) || c < 0x20 || c == 0x7f:
			if r.pos == start || depth != 0 {
				return invalidSpanTextRange
			}
			return spanTextRange{span: Span{Start: start, End: r.pos}, text: Span{Start: start, End: r.pos}}
		default:
			r.next()
		}
	}
}

// parseLinkTitle parses a [link title] starting at r's current position.
//
// [link title]: https://spec.commonmark.org/0.30/#link-title
func parseLinkTitle(r *inlineByteReader) spanTextRange {
	start := r.pos
	var closer byte
	switch r.current() {
	case '"':
		closer = '"'
	case '\'':
		closer = '\''
	case '(':
		closer = ')'
	default:
		return invalidSpanTextRange
	}
	r.next()
	textStart := r.pos
	for {
		switch c := r.current(); {
		case c == 0:
			return invalidSpanTextRange
		case c == closer:
			textEnd := r.pos
			end := r.pos + 1
			r.next()
			return spanTextRange{span: Span{Start: start, End: end}, text: Span{Start: textStart, End: textEnd}}
		case closer == ')' && c == '(':
			return invalidSpanTextRange
		case c == '\\':
			r.next()
			if r.current() != 0 {
				r.next()
			}
		default:
			r.next()
			if r.jumped() && isBlankLine(r.remainingNodeBytes()) {
				// Titles may not contain a blank line.
				return invalidSpanTextRange
			}
		}
	}
}

// skipLinkSpace skips zero or more spaces and tabs,
// optionally followed by a single line ending (and the indentation that follows it),
// optionally followed by more spaces and tabs.
// It reports whether it stopped before reaching the end of the content.
func skipLinkSpace(r *inlineByteReader) bool {
	lineEndings := 0
	if r.jumped() {
		lineEndings++
	}
	for c := r.current(); c == ' ' || c == '\t' || c == '\n' || c == '\r'; c = r.current() {
		r.next()
		if r.jumped() {
			lineEndings++
		}
	}
	if lineEndings > 1 {
		return false
	}
	return r.current() != 0
}

// nodeIndexForPosition returns the index of the child in children
// whose span contains pos, or -1 if none does.
func nodeIndexForPosition(children []*Inline, pos int) int {
	for i, c := range children {
		sp := c.Span()
		if pos < sp.End || sp.Start == sp.End && pos == sp.Start {
			return i
		}
	}
	return -1
}

// decodeLinkRunText reads from r up to the absolute position end,
// resolving backslash escapes and entity references along the way.
func decodeLinkRunText(r *inlineByteReader, end int) string {
	sb := new(strings.Builder)
	for r.pos < end {
		switch c := r.current(); c {
		case '\\':
			r.next()
			if r.pos < end && isASCIIPunctuation(r.current()) {
				sb.WriteByte(r.current())
				r.next()
			} else {
				sb.WriteByte('\\')
			}
		case '&':
			if refEnd, ok := scanEntityReference(r.source, r.pos, end); ok {
				sb.WriteString(decodeEntity(r.source[r.pos:refEnd]))
				for r.pos < refEnd {
					r.next()
				}
			} else {
				sb.WriteByte('&')
				r.next()
			}
		default:
			sb.WriteByte(c)
			r.next()
		}
	}
	return sb.String()
}

// collectLinkLabelText decodes the content of a link label into dst.text.
func collectLinkLabelText(dst *Inline, r *inlineByteReader, end int) {
	dst.text = decodeLinkRunText(r, end)
}

// collectLinkAttributeText decodes the content of a link destination or title into dst.text.
func collectLinkAttributeText(dst *Inline, r *inlineByteReader, end int) {
	dst.text = decodeLinkRunText(r, end)
}

var labelFold = cases.Fold()

// transformLinkReferenceSpan computes the normalized form of a link label
// used to match it against a [ReferenceMap]:
// backslash escapes and entities are resolved,
// runs of whitespace are collapsed to a single space,
// leading and trailing whitespace is trimmed,
// and the result is Unicode case-folded.
func transformLinkReferenceSpan(source []byte, children []*Inline, span Span) string {
	r := newInlineByteReader(source, children, span.Start)
	decoded := decodeLinkRunText(r, span.End)
	return labelFold.String(strings.Join(strings.Fields(decoded), " "))
}

// decodeTextSpan decodes the backslash escapes and entity references
// within a single contiguous span of source.
func decodeTextSpan(source []byte, span Span) string {
	b := spanSlice(source, span)
	base := span.Start
	sb := new(strings.Builder)
	i := 0
	for i < len(b) {
		switch c := b[i]; {
		case c == '\\' && i+1 < len(b) && isASCIIPunctuation(b[i+1]):
			sb.WriteByte(b[i+1])
			i += 2
		case c == '&':
			if end, ok := scanEntityReference(source, base+i, span.End); ok {
				sb.WriteString(decodeEntity(source[base+i : end]))
				i = end - base
			} else {
				sb.WriteByte('&')
				i++
			}
		default:
			sb.WriteByte(c)
			i++
		}
	}
	return sb.String()
}

// parseInfoString builds the [InfoStringKind] node for a fenced code block's info string.
func parseInfoString(source []byte, span Span) *Inline {
	return &Inline{
		kind: InfoStringKind,
		span: span,
		text: decodeTextSpan(source, span),
	}
}

// emailAddressPattern matches the restricted email autolink grammar.
//
// See https://spec.commonmark.org/0.30/#email-address
var emailAddressPattern = regexp.MustCompile(
	`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`,
)

// IsEmailAddress reports whether s matches the CommonMark email autolink grammar.
func IsEmailAddress(s string) bool {
	return emailAddressPattern.MatchString(s)
}
