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

// Package parsort provides a parallel most-significant-digit (MSD) radix sort
// for 64-bit integer keys, optionally paired with opaque satellite data.
//
// # Algorithm
//
// Keys are processed one byte at a time, most significant byte first. Each
// pass counts a 256-way histogram over the range, converts it to absolute
// bucket start offsets with a prefix sum, and scatters every element into its
// bucket in an auxiliary buffer. The sort then recurses into each non-empty
// bucket on the next byte, until the least significant byte is reached or the
// range is small enough that a sequential quicksort (or insertion sort) is
// cheaper than another counting pass.
//
// When a range is large enough, both the counting and the scatter pass are
// split across worker goroutines. Each worker owns a contiguous slice of the
// range and a private table of write offsets, so workers never write the same
// index and need no locks. Recursion over the resulting buckets is
// load-balanced: buckets are ordered by size and packed greedily into groups,
// and the remaining goroutine budget is divided among the groups.
//
// # Variants
//
//   - Sort / ParallelSort operate on slices of any ~int64 or ~uint64 type.
//   - SortEntries / ParallelSortEntries operate on Entry pairs and are
//     stable: entries with equal keys keep their relative order, and the
//     satellite value is relocated but never read or modified.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-parsort/parsort"
//
//	func Process(keys []int64) {
//	    parsort.ParallelSort(keys) // in-place ascending sort
//	}
//
// The result is independent of the goroutine budget: sorting with one worker
// and with many produces byte-identical output, only the wall-clock time
// differs.
package parsort
