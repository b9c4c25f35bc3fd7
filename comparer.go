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

// Package logicalsort provides a "logical" (natural) ordering for strings which mix
// text and numbers, so AB1, AB10, AB2 sorts as AB1, AB2, AB10.
package logicalsort

import (
	"hash/crc32"
	"unicode"
	"unicode/utf8"
)

// invariantDecimalSeparator is the decimal point used regardless of the host locale
const invariantDecimalSeparator = "."

// Comparer orders strings by splitting them into runs of digits and non-digits. Digit
// runs are compared by numeric value and everything else is compared ordinally. A
// Comparer is immutable once built and may be shared by any number of goroutines.
// The zero value, and a nil *Comparer, behave like Default.
type Comparer struct {
	ignoreCase       bool
	floatAware       bool
	decimalSeparator string
}

var (
	// Default compares case sensitively and treats digit runs as integers
	Default = New(false, false)

	// CaseInsensitive folds case for the non-numeric parts of a string
	CaseInsensitive = New(true, false)

	// FloatAware lets a digit run continue across one decimal point, so 2.5 < 2.10
	FloatAware = New(false, true)

	// CaseInsensitiveFloatAware combines CaseInsensitive and FloatAware
	CaseInsensitiveFloatAware = New(true, true)
)

// New returns a Comparer. ignoreCase folds case when comparing and hashing text;
// floatAware allows a single decimal separator inside a run of digits.
func New(ignoreCase, floatAware bool) *Comparer {
	return newComparer(ignoreCase, floatAware, invariantDecimalSeparator)
}

func newComparer(ignoreCase, floatAware bool, decimalSeparator string) *Comparer {
	return &Comparer{
		ignoreCase:       ignoreCase,
		floatAware:       floatAware,
		decimalSeparator: decimalSeparator,
	}
}

func (c *Comparer) IgnoreCase() bool { return orDefault(c).ignoreCase }
func (c *Comparer) FloatAware() bool { return orDefault(c).floatAware }

// Compare returns a negative number if a sorts before b, a positive number if it sorts
// after, and zero if the two are logically equal. The result is always -1, 0 or 1.
func (c *Comparer) Compare(a, b string) int {
	c = orDefault(c)
	aIndex, bIndex := 0, 0

	for aIndex < len(a) || bIndex < len(b) {
		aSeg := c.nextSegment(a, aIndex)
		bSeg := c.nextSegment(b, bIndex)

		if order := c.compareSegments(a, aSeg, b, bSeg); order != 0 {
			return order
		}

		aIndex = aSeg.end()
		bIndex = bSeg.end()
	}

	return 0
}

// Less returns a < b
func (c *Comparer) Less(a, b string) bool {
	return c.Compare(a, b) < 0
}

// Equal reports whether a and b have the same logical position, so "7" and "007" are
// equal. Note that Hash does not agree with Equal for such pairs.
func (c *Comparer) Equal(a, b string) bool {
	return c.Compare(a, b) == 0
}

// Hash returns the CRC-32 of s, computed over upper cased runes when the Comparer
// ignores case. It hashes the raw text, not its logical value: Equal("7", "007") is
// true but their hashes differ, so Hash is unsuitable for deduplicating keys which
// differ only in numeric formatting.
func (c *Comparer) Hash(s string) uint32 {
	if !orDefault(c).ignoreCase {
		return crc32.ChecksumIEEE([]byte(s))
	}

	var buf [utf8.UTFMax]byte
	sum := uint32(0)
	for _, r := range s {
		n := utf8.EncodeRune(buf[:], unicode.ToUpper(r))
		sum = crc32.Update(sum, crc32.IEEETable, buf[:n])
	}

	return sum
}
