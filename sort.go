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
	"sort"
)

// Strings implements sort.Interface for a []string using the logical order of
// Comparer. A nil Comparer means Default.
type Strings struct {
	Values   []string
	Comparer *Comparer
}

func (s Strings) Len() int      { return len(s.Values) }
func (s Strings) Swap(i, j int) { s.Values[i], s.Values[j] = s.Values[j], s.Values[i] }
func (s Strings) Less(i, j int) bool {
	return orDefault(s.Comparer).Less(s.Values[i], s.Values[j])
}

// Sort sorts values in place. The sort is stable, so strings which compare equal but
// aren't identical ("7" and "007") keep the order they were given in.
func Sort(c *Comparer, values []string) {
	sort.Stable(Strings{Values: values, Comparer: orDefault(c)})
}

// Dedup removes adjacent values which are Equal, keeping the first of each run, and
// returns the shortened slice. Values should already be sorted with the same Comparer.
func Dedup(c *Comparer, sorted []string) []string {
	if len(sorted) == 0 {
		return sorted
	}

	c = orDefault(c)
	out := sorted[:1]
	for _, s := range sorted[1:] {
		if !c.Equal(out[len(out)-1], s) {
			out = append(out, s)
		}
	}

	return out
}

func orDefault(c *Comparer) *Comparer {
	if c == nil {
		return Default
	}
	return c
}
