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
	"bytes"

	"golang.org/x/net/html"
)

// tabStop is the number of columns a tab character advances to,
// per the CommonMark rule that tabs are treated as if they were
// replaced with spaces at 4-column tab stops.
const tabStop = 4

// columnWidth returns the number of columns that b occupies
// when it begins at the given starting column,
// expanding any tab characters to the next multiple of [tabStop].
func columnWidth(start int, b []byte) int {
	width := 0
	for _, c := range b {
		if c == '\t' {
			width += tabStop - (start+width)%tabStop
		} else {
			width++
		}
	}
	return width
}

// indentLength returns the number of bytes of leading spaces and tabs in line.
func indentLength(line []byte) int {
	n := 0
	for n < len(line) && (line[n] == ' ' || line[n] == '\t') {
		n++
	}
	return n
}

// isBlankLine reports whether line consists only of whitespace.
func isBlankLine(line []byte) bool {
	for _, c := range line {
		if !isSpaceTabOrLineEnding(c) {
			return false
		}
	}
	return true
}

// isSpaceTabOrLineEnding reports whether c is a space, tab, carriage return, or newline.
func isSpaceTabOrLineEnding(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}

// hasTabOrSpacePrefixOrEOL reports whether line is empty
// or begins with whitespace,
// as required after a list marker or its delimiter.
func hasTabOrSpacePrefixOrEOL(line []byte) bool {
	return len(line) == 0 || isSpaceTabOrLineEnding(line[0])
}

// isASCIIDigit reports whether c is an ASCII decimal digit.
func isASCIIDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isASCIILetter reports whether c is an ASCII letter.
func isASCIILetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// isEndEscaped reports whether s ends with an odd number of trailing backslashes,
// meaning a character immediately following s would be backslash-escaped.
func isEndEscaped(s []byte) bool {
	n := 0
	for n < len(s) && s[len(s)-1-n] == '\\' {
		n++
	}
	return n%2 == 1
}

// isASCIIPunctuation reports whether c is one of the ASCII punctuation
// characters eligible for backslash-escaping.
func isASCIIPunctuation(c byte) bool {
	switch {
	case 0x21 <= c && c <= 0x2f: // !"#$%&'()*+,-./
		return true
	case 0x3a <= c && c <= 0x40: // :;<=>?@
		return true
	case 0x5b <= c && c <= 0x60: // [\]^_`
		return true
	case 0x7b <= c && c <= 0x7e: // {|}~
		return true
	default:
		return false
	}
}

func hasBytePrefix(b []byte, prefix string) bool {
	return bytes.HasPrefix(b, []byte(prefix))
}

func contains(b []byte, s string) bool {
	return bytes.Contains(b, []byte(s))
}

// decodeEntity decodes a single HTML entity or numeric character reference
// (including its leading "&" and trailing ";") into its replacement text.
// raw is assumed to already have been recognized as a well-formed reference
// by the scanners in entity.go; decodeEntity never returns raw unchanged
// except when html.UnescapeString itself cannot resolve it, which should
// not occur for input that passed recognition.
func decodeEntity(raw []byte) string {
	return html.UnescapeString(string(raw))
}
