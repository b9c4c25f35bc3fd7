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
	"container/heap"
	"fmt"

	"github.com/pendo-io/appwrap"
)

// Logger is the subset of appwrap.Logging the Merger reports through
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// StringIterator yields strings one at a time. The bool is false once the iterator
// is exhausted.
type StringIterator interface {
	Next() (string, bool, error)
}

// SliceIterator is a StringIterator over a []string
type SliceIterator struct {
	data      []string
	nextIndex int
}

func NewSliceIterator(data []string) *SliceIterator {
	return &SliceIterator{data: data}
}

func (si *SliceIterator) Next() (string, bool, error) {
	if si.nextIndex >= len(si.data) {
		return "", false, nil
	}

	si.nextIndex++
	return si.data[si.nextIndex-1], true, nil
}

type mergeItem struct {
	iterator StringIterator
	source   int
	datum    string
}

type mergeHeap struct {
	items   []mergeItem
	compare *Comparer
}

func (h *mergeHeap) Len() int { return len(h.items) }
func (h *mergeHeap) Less(i, j int) bool {
	if order := h.compare.Compare(h.items[i].datum, h.items[j].datum); order != 0 {
		return order < 0
	}
	return h.items[i].source < h.items[j].source
}
func (h *mergeHeap) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *mergeHeap) Push(x interface{}) { h.items = append(h.items, x.(mergeItem)) }
func (h *mergeHeap) Pop() interface{} {
	x := h.items[len(h.items)-1]
	h.items = h.items[0 : len(h.items)-1]
	return x
}

// Merger combines any number of StringIterators, each already sorted by the same
// Comparer, into a single sorted stream. Values which compare equal come out in the
// order their sources were added.
type Merger struct {
	heap    mergeHeap
	log     Logger
	sources int
}

// NewMerger returns an empty Merger. A nil Comparer means Default and a nil Logger
// discards messages.
func NewMerger(c *Comparer, log Logger) *Merger {
	if log == nil {
		log = appwrap.NullLogger{}
	}

	return &Merger{heap: mergeHeap{compare: orDefault(c)}, log: log}
}

// AddSource reads the first value from iterator and adds it to the merge. Empty
// iterators are counted but contribute nothing.
func (m *Merger) AddSource(iterator StringIterator) error {
	source := m.sources
	m.sources++

	if first, exists, err := iterator.Next(); err != nil {
		m.log.Errorf("error reading first item of source %d: %s", source, err)
		return fmt.Errorf("error reading source %d: %w", source, err)
	} else if exists {
		heap.Push(&m.heap, mergeItem{iterator, source, first})
	}

	return nil
}

// Next returns the smallest remaining value. The bool is false once every source is
// exhausted.
func (m *Merger) Next() (string, bool, error) {
	if m.heap.Len() == 0 {
		return "", false, nil
	}

	item := heap.Pop(&m.heap).(mergeItem)

	if newItem, exists, err := item.iterator.Next(); err != nil {
		m.log.Errorf("error reading source %d after %q: %s", item.source, item.datum, err)
		return "", false, fmt.Errorf("error reading source %d: %w", item.source, err)
	} else if exists {
		if m.heap.compare.Less(newItem, item.datum) {
			m.log.Infof("source %d is out of order: %q follows %q", item.source, newItem, item.datum)
		}
		heap.Push(&m.heap, mergeItem{item.iterator, item.source, newItem})
	}

	return item.datum, true, nil
}

// Merge drains sources through a Merger and returns the merged values
func Merge(c *Comparer, log Logger, sources ...StringIterator) ([]string, error) {
	merger := NewMerger(c, log)
	for _, source := range sources {
		if err := merger.AddSource(source); err != nil {
			return nil, err
		}
	}

	var result []string
	for {
		datum, exists, err := merger.Next()
		if err != nil {
			return nil, err
		} else if !exists {
			return result, nil
		}

		result = append(result, datum)
	}
}
