// Copyright 2014 pendo.io
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logicalsort

import (
	"cmp"
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// segment is the byte range [index, index+length) of a maximal run of digits or
// non-digits. A zero length segment means the input has been consumed.
type segment struct {
	index  int
	length int
	digits bool
}

func (s segment) end() int { return s.index + s.length }

func (s segment) text(str string) string { return str[s.index:s.end()] }

func (c *Comparer) nextSegment(text string, start int) segment {
	if start >= len(text) {
		return segment{index: len(text)}
	}

	first, _ := utf8.DecodeRuneInString(text[start:])
	seg := segment{index: start, digits: unicode.IsDigit(first)}

	separatorReached := false
	index := start
	for index < len(text) {
		r, size := utf8.DecodeRuneInString(text[index:])

		if unicode.IsDigit(r) {
			if !seg.digits {
				break
			}
		} else if seg.digits {
			if c.floatAware && !separatorReached && c.isDecimalSeparator(text, index) {
				separatorReached = true
				size = len(c.decimalSeparator)
			} else {
				break
			}
		}

		index += size
	}

	seg.length = index - start
	return seg
}

func (c *Comparer) isDecimalSeparator(text string, index int) bool {
	return c.decimalSeparator != "" && strings.HasPrefix(text[index:], c.decimalSeparator)
}

func (c *Comparer) compareSegments(a string, aSeg segment, b string, bSeg segment) int {
	as, bs := aSeg.text(a), bSeg.text(b)

	if aSeg.digits && bSeg.digits {
		if af, ok := c.parseNumber(as); ok {
			if bf, ok := c.parseNumber(bs); ok {
				return cmp.Compare(af, bf)
			}
		}
	}

	return c.lexical(as, bs)
}

// parseNumber reads a digit run as a float64 using the invariant decimal point. Runs of
// non-ASCII digits don't parse; overflow parses to an infinity, which still orders.
func (c *Comparer) parseNumber(s string) (float64, bool) {
	if c.floatAware && c.decimalSeparator != invariantDecimalSeparator && c.decimalSeparator != "" {
		s = strings.Replace(s, c.decimalSeparator, invariantDecimalSeparator, 1)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}

	return f, true
}

func (c *Comparer) lexical(a, b string) int {
	if c.ignoreCase {
		return compareOrdinalIgnoreCase(a, b)
	}
	return strings.Compare(a, b)
}

// compareOrdinalIgnoreCase compares rune by rune after mapping each rune to upper case.
// Bytes which aren't valid UTF-8 decode to U+FFFD, the same rune Hash folds them to.
func compareOrdinalIgnoreCase(a, b string) int {
	for a != "" && b != "" {
		ar, an := utf8.DecodeRuneInString(a)
		br, bn := utf8.DecodeRuneInString(b)

		if ar != br {
			if order := cmp.Compare(unicode.ToUpper(ar), unicode.ToUpper(br)); order != 0 {
				return order
			}
		}

		a, b = a[an:], b[bn:]
	}

	return cmp.Compare(len(a), len(b))
}
