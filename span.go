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

// Span is a byte range relative to a [RootBlock]'s Source.
// The range runs from Start (inclusive) to End (exclusive).
type Span struct {
	Start int
	End   int
}

// NullSpan returns a span that does not refer to any bytes.
func NullSpan() Span {
	return Span{Start: -1, End: -1}
}

// IsValid reports whether the span refers to a well-formed, non-negative range.
func (s Span) IsValid() bool {
	return s.Start >= 0 && s.End >= s.Start
}

// Len returns the number of bytes the span covers,
// or zero if the span is not valid.
func (s Span) Len() int {
	if !s.IsValid() {
		return 0
	}
	return s.End - s.Start
}

// spanSlice returns the bytes of b that s refers to.
// It returns nil if s is not valid.
func spanSlice(b []byte, s Span) []byte {
	if !s.IsValid() {
		return nil
	}
	return b[s.Start:s.End]
}
