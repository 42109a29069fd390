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

// An inlineByteReader reads the bytes of a sequence of inline nodes
// (as collected by [*lineParser.CollectInline] before the inline parser runs)
// as if they were one contiguous string.
//
// [IndentKind] nodes represent the leading whitespace of continuation lines
// and are skipped entirely: reading across one moves directly from the end
// of one content node to the beginning of the next,
// without surfacing the indentation.
// A line ending that the collecting block kept inside a content node
// (paragraph lines keep theirs) is read like any other byte.
// [*inlineByteReader.jumped] reports when a move crossed from one content node
// to the next, which callers use both to recognize line breaks
// and to reject constructs that may not span a line.
type inlineByteReader struct {
	source []byte
	nodes  []*Inline

	idx     int // index into nodes of the node containing pos, or len(nodes) at EOF
	pos     int
	prevPos int
	jump    bool
}

// newInlineByteReader returns a reader positioned at startPos,
// which must be either the start of one of nodes or a position strictly inside one.
func newInlineByteReader(source []byte, nodes []*Inline, startPos int) *inlineByteReader {
	r := &inlineByteReader{
		source:  source,
		nodes:   nodes,
		pos:     startPos,
		prevPos: startPos,
	}
	r.idx = 0
	r.normalize()
	return r
}

// normalize restores the invariant that r.idx refers to a non-[IndentKind] node
// whose span contains r.pos, or that r.idx == len(r.nodes) if there is no more content.
func (r *inlineByteReader) normalize() {
	for r.idx < len(r.nodes) {
		n := r.nodes[r.idx]
		if n.Kind() == IndentKind {
			r.idx++
			continue
		}
		sp := n.Span()
		if r.pos < sp.Start {
			r.pos = sp.Start
			return
		}
		if r.pos < sp.End {
			return
		}
		r.idx++
		for r.idx < len(r.nodes) && r.nodes[r.idx].Kind() == IndentKind {
			r.idx++
		}
	}
}

// current returns the byte at the reader's position,
// or 0 if the reader is at the end of its content.
func (r *inlineByteReader) current() byte {
	if r.idx >= len(r.nodes) {
		return 0
	}
	return r.source[r.pos]
}

// next advances the reader by one byte and reports
// whether there is a byte at the new position.
func (r *inlineByteReader) next() bool {
	r.prevPos = r.pos
	r.jump = false
	if r.idx >= len(r.nodes) {
		return false
	}
	r.pos++
	before := r.idx
	r.normalize()
	if r.idx != before && r.idx < len(r.nodes) {
		r.jump = true
	}
	return r.idx < len(r.nodes)
}

// jumped reports whether the most recent call to next
// skipped over an [IndentKind] node or the line ending preceding it.
func (r *inlineByteReader) jumped() bool {
	return r.jump
}

// remainingNodeBytes returns the bytes from the reader's position
// to the end of the node it is currently positioned in,
// without crossing into any following node.
func (r *inlineByteReader) remainingNodeBytes() []byte {
	if r.idx >= len(r.nodes) {
		return nil
	}
	sp := r.nodes[r.idx].Span()
	return r.source[r.pos:sp.End]
}
