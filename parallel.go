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
	"context"

	"golang.org/x/sync/errgroup"
)

// SortParallel returns a sorted copy of values. The input is split into one chunk per
// worker, the chunks are sorted concurrently with a shared Comparer, and the results
// are merged. The output matches Sort, including the order of equal values.
func SortParallel(ctx context.Context, c *Comparer, values []string, workers int) ([]string, error) {
	c = orDefault(c)

	sorted := make([]string, len(values))
	copy(sorted, values)

	if workers > len(sorted) {
		workers = len(sorted)
	}
	if workers <= 1 {
		Sort(c, sorted)
		return sorted, nil
	}

	chunkSize := (len(sorted) + workers - 1) / workers
	chunks := make([][]string, 0, workers)
	for start := 0; start < len(sorted); start += chunkSize {
		end := min(start+chunkSize, len(sorted))
		chunks = append(chunks, sorted[start:end])
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range chunks {
		chunk := chunks[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			Sort(c, chunk)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sources := make([]StringIterator, len(chunks))
	for i := range chunks {
		sources[i] = NewSliceIterator(chunks[i])
	}

	return Merge(c, nil, sources...)
}
