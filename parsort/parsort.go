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

import (
	"runtime"
	"slices"
)

// Sort sorts a ascending in place using the sequential engine.
func Sort[K Key](a []K) {
	_ = SortRange(a, 0, len(a))
}

// SortRange sorts a[fromIndex:toIndex] ascending in place using the
// sequential engine. Elements outside the range are left unchanged.
func SortRange[K Key](a []K, fromIndex, toIndex int) error {
	return sortKeys(a, fromIndex, toIndex, 1)
}

// ParallelSort sorts a ascending in place, spreading the work over a default
// goroutine budget of min(GOMAXPROCS, len(a)/65536). Small slices fall back
// to the sequential engine.
func ParallelSort[K Key](a []K) {
	_ = ParallelSortRange(a, 0, len(a))
}

// ParallelSortRange is the ranged form of ParallelSort; identical
// postcondition to SortRange.
func ParallelSortRange[K Key](a []K, fromIndex, toIndex int) error {
	return sortKeys(a, fromIndex, toIndex, defaultThreads(toIndex-fromIndex))
}

// ParallelSortRangeThreads sorts a[fromIndex:toIndex] with an explicit
// goroutine budget. The budget is an upper bound handed down the recursion
// and never grows during the run; the result is byte-identical for any
// threads >= 1.
func ParallelSortRangeThreads[K Key](a []K, fromIndex, toIndex, threads int) error {
	if err := checkThreads(threads); err != nil {
		return err
	}
	return sortKeys(a, fromIndex, toIndex, threads)
}

func sortKeys[K Key](a []K, fromIndex, toIndex, threads int) error {
	if err := checkRange(len(a), fromIndex, toIndex); err != nil {
		return err
	}
	if toIndex-fromIndex < 2 {
		return nil
	}
	primary := a[fromIndex:toIndex:toIndex]
	e := newEngine(primary, slices.Clone(primary), orderedKeyFunc[K](), false)
	return e.run(threads)
}

// SortEntries stably sorts a ascending by key using the sequential engine.
func SortEntries[V any](a []Entry[V]) {
	_ = SortEntriesRange(a, 0, len(a))
}

// SortEntriesRange stably sorts a[fromIndex:toIndex] ascending by key.
// Entries with equal keys keep their relative order and satellite values are
// relocated untouched.
func SortEntriesRange[V any](a []Entry[V], fromIndex, toIndex int) error {
	return sortEntries(a, fromIndex, toIndex, 1)
}

// ParallelSortEntries stably sorts a ascending by key with the default
// goroutine budget.
func ParallelSortEntries[V any](a []Entry[V]) {
	_ = ParallelSortEntriesRange(a, 0, len(a))
}

// ParallelSortEntriesRange is the ranged form of ParallelSortEntries.
func ParallelSortEntriesRange[V any](a []Entry[V], fromIndex, toIndex int) error {
	return sortEntries(a, fromIndex, toIndex, defaultThreads(toIndex-fromIndex))
}

// ParallelSortEntriesRangeThreads stably sorts a[fromIndex:toIndex] with an
// explicit goroutine budget.
func ParallelSortEntriesRangeThreads[V any](a []Entry[V], fromIndex, toIndex, threads int) error {
	if err := checkThreads(threads); err != nil {
		return err
	}
	return sortEntries(a, fromIndex, toIndex, threads)
}

func sortEntries[V any](a []Entry[V], fromIndex, toIndex, threads int) error {
	if err := checkRange(len(a), fromIndex, toIndex); err != nil {
		return err
	}
	if toIndex-fromIndex < 2 {
		return nil
	}
	primary := a[fromIndex:toIndex:toIndex]
	e := newEngine(primary, slices.Clone(primary), entryKey[V], true)
	return e.run(threads)
}

// defaultThreads estimates the goroutine budget for a range of n elements:
// one worker per threadThreshold elements, capped at GOMAXPROCS, at least
// one.
func defaultThreads(n int) int {
	return max(1, min(runtime.GOMAXPROCS(0), n/threadThreshold))
}
