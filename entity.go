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

import "golang.org/x/net/html"

// scanEntityReference recognizes an entity or numeric character reference
// beginning at source[start], which must hold '&'.
// It returns the end of the reference (exclusive, including the trailing ';')
// and true if one was matched within limit, or (start, false) otherwise.
func scanEntityReference(source []byte, start, limit int) (end int, ok bool) {
	if start >= limit || source[start] != '&' {
		return start, false
	}
	i := start + 1
	if i < limit && source[i] == '#' {
		i++
		hex := false
		if i < limit && (source[i] == 'x' || source[i] == 'X') {
			hex = true
			i++
		}
		digitsStart := i
		const maxDigits = 8
		for i < limit && i-digitsStart < maxDigits {
			c := source[i]
			if hex && !isHexDigit(c) || !hex && !isASCIIDigit(c) {
				break
			}
			i++
		}
		if i == digitsStart || i >= limit || source[i] != ';' {
			return start, false
		}
		return i + 1, true
	}

	nameStart := i
	for i < limit && (isASCIILetter(source[i]) || isASCIIDigit(source[i])) {
		i++
	}
	if i == nameStart || i >= limit || source[i] != ';' {
		return start, false
	}
	name := string(source[nameStart:i])
	if unescaped := html.UnescapeString("&" + name + ";"); unescaped == "&"+name+";" {
		return start, false
	}
	return i + 1, true
}

func isHexDigit(c byte) bool {
	return isASCIIDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
