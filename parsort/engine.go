// Copyright 2025 go-parsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parsort

import "sync"

// engine carries one top-level sort call: the caller's subrange rebased to
// [0, n), an equal-length scratch buffer, and the key extractor. The two
// buffers are the only state shared between workers; histograms and offset
// tables are created per recursion node and owned by exactly one goroutine.
type engine[E any] struct {
	primary []E
	scratch []E
	key     func(E) int64

	// stable selects the merge sort terminal so entries with equal keys
	// keep their relative order. The primitive variants leave it unset.
	stable bool
}

func newEngine[E any](primary, scratch []E, key func(E) int64, stable bool) *engine[E] {
	return &engine[E]{primary: primary, scratch: scratch, key: key, stable: stable}
}

// run sorts the whole rebased range with the given goroutine budget. A worker
// that terminates abnormally aborts the sort; the panic value is surfaced as
// a single ConcurrencyError, and the buffer contents are unspecified in that
// case.
func (e *engine[E]) run(threads int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ConcurrencyError{Value: r}
		}
	}()
	e.sortRange(true, 0, 0, len(e.primary), threads)
	return nil
}

// buffers returns (source, destination) for the current parity. The source
// is the buffer holding the authoritative contents of the subrange.
func (e *engine[E]) buffers(srcIsPrimary bool) (src, dst []E) {
	if srcIsPrimary {
		return e.primary, e.scratch
	}
	return e.scratch, e.primary
}

// copyToPrimary normalizes a terminal case: when the authoritative copy of
// [from, to) is sitting in the scratch buffer, it is copied back into the
// primary one.
func (e *engine[E]) copyToPrimary(inPrimary bool, from, to int) {
	if !inPrimary {
		copy(e.primary[from:to], e.scratch[from:to])
	}
}

// sortRange is the recursion scheduler. Evaluated at entry to every
// (subrange, depth) pair, it terminates through insertion sort or the
// sequential fallback, runs the final digit pass at the least significant
// byte, or performs one counting/scatter pass and recurses into the
// resulting buckets, sequentially or across the remaining goroutine budget.
//
// srcIsPrimary tells which buffer holds the subrange's current contents; it
// flips on every digit pass. threads is the budget available to this call
// and only ever shrinks as it is handed down.
func (e *engine[E]) sortRange(srcIsPrimary bool, depth, from, to, threads int) {
	n := to - from
	if n < 2 {
		e.copyToPrimary(srcIsPrimary, from, to)
		return
	}

	src, dst := e.buffers(srcIsPrimary)
	switch {
	case n < insertionSortThreshold:
		insertionSort(src, e.key, from, to)
		e.copyToPrimary(srcIsPrimary, from, to)

	case n < quicksortThreshold:
		if e.stable {
			inSrc := mergesort(src, dst, e.key, from, to)
			e.copyToPrimary(inSrc == srcIsPrimary, from, to)
		} else {
			quicksort(src, e.key, from, to)
			e.copyToPrimary(srcIsPrimary, from, to)
		}

	case depth == leastSignificantDepth:
		// Last byte: one counting/scatter pass and nowhere to recurse.
		e.digitPass(src, dst, depth, from, to, threads)
		e.copyToPrimary(!srcIsPrimary, from, to)

	case threads < 2:
		hist, start := e.digitPass(src, dst, depth, from, to, 1)
		for b, size := range hist {
			if size > 0 {
				e.sortRange(!srcIsPrimary, depth+1, start[b], start[b]+size, 1)
			}
		}

	default:
		hist, start := e.digitPass(src, dst, depth, from, to, threads)
		e.scheduleBuckets(&hist, &start, !srcIsPrimary, depth+1, from, to, threads)
	}
}

// digitPass performs one radix pass over src[from:to] at depth, scattering
// into dst. With a budget of one the pass runs inline; otherwise the range is
// split into one contiguous slice per worker for both the counting and the
// scatter phase, with a join barrier after each. Returns the global histogram
// and the absolute bucket start offsets.
func (e *engine[E]) digitPass(src, dst []E, depth, from, to, threads int) (hist, start histogram) {
	workers := min(threads, to-from)
	if workers < 2 {
		hist = countBuckets(src, e.key, depth, from, to)
		start = startIndices(&hist, from)
		var offs histogram
		scatterBuckets(src, dst, e.key, depth, from, to, &start, &offs)
		return hist, start
	}

	bounds := splitRange(from, to, workers)

	// Counting: every worker fills its own slot, the fold is serial.
	local := make([]histogram, workers)
	forkJoin(workers, func(k int) {
		local[k] = countBuckets(src, e.key, depth, bounds[k], bounds[k+1])
	})
	for k := range local {
		for b, c := range local[k] {
			hist[b] += c
		}
	}
	start = startIndices(&hist, from)

	// Scatter: per-worker offset rows are disjoint by construction, so the
	// concurrent writes below never touch the same index.
	offs := workerOffsets(local)
	forkJoin(workers, func(k int) {
		scatterBuckets(src, dst, e.key, depth, bounds[k], bounds[k+1], &start, &offs[k])
	})
	return hist, start
}

// scheduleBuckets distributes the recursion over the non-empty buckets of a
// finished digit pass. Buckets are ordered descending by size (reusing the
// quicksort fallback on the index array, with negated sizes as keys) and
// packed first-fit into spawnDegree groups of roughly rangeLength/spawnDegree
// elements. Optimal packing is a bin-packing instance; the greedy pass trades
// optimality for linear time, acceptable with at most 256 buckets per level.
// The budget is divided evenly over the groups, the first threads%spawnDegree
// groups receiving one extra.
func (e *engine[E]) scheduleBuckets(hist, start *histogram, srcIsPrimary bool, depth, from, to, threads int) {
	nonEmpty := make([]int, 0, bucketCount)
	for b, size := range hist {
		if size > 0 {
			nonEmpty = append(nonEmpty, b)
		}
	}

	quicksort(nonEmpty, func(b int) int64 { return -int64(hist[b]) }, 0, len(nonEmpty))

	spawnDegree := min(len(nonEmpty), threads)
	groups := packBuckets(nonEmpty, hist, spawnDegree, (to-from)/spawnDegree)
	budgets := splitThreads(threads, spawnDegree)

	forkJoin(spawnDegree, func(g int) {
		for _, b := range groups[g] {
			e.sortRange(srcIsPrimary, depth, start[b], start[b]+hist[b], budgets[g])
		}
	})
}

// packBuckets assigns buckets (already descending by size) to degree groups
// first-fit: a group is closed once its element count reaches optimal. The
// last group always absorbs the leftovers, so every bucket lands in exactly
// one group; trailing groups may stay empty on skewed distributions.
func packBuckets(buckets []int, hist *histogram, degree, optimal int) [][]int {
	groups := make([][]int, degree)
	g, packed := 0, 0
	for _, b := range buckets {
		groups[g] = append(groups[g], b)
		packed += hist[b]
		if packed >= optimal && g < degree-1 {
			g++
			packed = 0
		}
	}
	return groups
}

// splitThreads divides a goroutine budget over degree groups.
func splitThreads(threads, degree int) []int {
	budgets := make([]int, degree)
	for g := range budgets {
		budgets[g] = threads / degree
	}
	for g := 0; g < threads%degree; g++ {
		budgets[g]++
	}
	return budgets
}

// forkJoin runs fn(0..workers-1): workers-1 goroutines are spawned and the
// last index runs on the calling goroutine, then all are joined. A panicking
// worker records its panic value in its own slot (the WaitGroup join orders
// those writes before the scan below) and the first one is re-raised in the
// caller after the barrier, so a failed worker is fatal for the whole sort.
func forkJoin(workers int, fn func(k int)) {
	if workers < 2 {
		fn(0)
		return
	}

	faults := make([]any, workers)
	var wg sync.WaitGroup
	wg.Add(workers - 1)
	for k := range workers - 1 {
		go func() {
			defer wg.Done()
			defer func() { faults[k] = recover() }()
			fn(k)
		}()
	}
	func() {
		defer func() { faults[workers-1] = recover() }()
		fn(workers - 1)
	}()
	wg.Wait()

	for _, f := range faults {
		if f != nil {
			panic(f)
		}
	}
}
