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

// histogram holds per-bucket element counts for one subrange and depth.
// The counts always sum to the subrange length.
type histogram [bucketCount]int

// countBuckets scans a[from:to] once and returns the histogram of bucket
// sizes for the byte at depth. The histogram is an owned value; parallel
// callers give every worker its own slice of the range and fold the results
// afterwards, so no synchronization is involved.
func countBuckets[E any](a []E, key func(E) int64, depth, from, to int) histogram {
	var hist histogram
	for i := from; i < to; i++ {
		hist[bucketIndex(key(a[i]), depth)]++
	}
	return hist
}

// startIndices converts a global histogram into absolute bucket start
// offsets: start[0] = from and start[b] = start[b-1] + hist[b-1].
func startIndices(hist *histogram, from int) histogram {
	var start histogram
	start[0] = from
	for b := 1; b < bucketCount; b++ {
		start[b] = start[b-1] + hist[b-1]
	}
	return start
}

// workerOffsets derives, for each worker k and bucket b, the number of
// elements of bucket b counted by workers 0..k-1. Combined with the start
// index map this assigns every (worker, bucket) pair a disjoint, contiguous
// destination range inside the bucket, ordered by the workers' original
// left-to-right slice order. That disjointness is what makes the concurrent
// scatter correct without locks, and the worker ordering is what keeps it
// stable.
func workerOffsets(local []histogram) []histogram {
	offs := make([]histogram, len(local))
	for k := 1; k < len(local); k++ {
		prev := &local[k-1]
		for b := 0; b < bucketCount; b++ {
			offs[k][b] = offs[k-1][b] + prev[b]
		}
	}
	return offs
}

// scatterBuckets re-scans src[from:to] and moves every element into its
// bucket slot in dst. offs is the caller's private running offset table; it
// is advanced in place and must not be shared between workers.
func scatterBuckets[E any](src, dst []E, key func(E) int64, depth, from, to int, start, offs *histogram) {
	for i := from; i < to; i++ {
		v := src[i]
		b := bucketIndex(key(v), depth)
		dst[start[b]+offs[b]] = v
		offs[b]++
	}
}

// splitRange cuts [from, to) into workers contiguous slices and returns the
// workers+1 boundary indices. The last worker absorbs the remainder.
func splitRange(from, to, workers int) []int {
	bounds := make([]int, workers+1)
	chunk := (to - from) / workers
	for k := 0; k < workers; k++ {
		bounds[k] = from + k*chunk
	}
	bounds[workers] = to
	return bounds
}
