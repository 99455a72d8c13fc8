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
	"math/rand"
	"slices"
	"testing"
)

func identity(k int64) int64 { return k }

func TestQuicksortCrossCheck(t *testing.T) {
	for _, n := range []int{0, 1, 2, 15, 16, 17, 1000, 4096} {
		a := randomInt64s(n, int64(n))
		want := slices.Clone(a)
		slices.Sort(want)

		quicksort(a, identity, 0, n)
		if !slices.Equal(a, want) {
			t.Errorf("n=%d: quicksort mismatches reference sort", n)
		}
	}
}

func TestQuicksortDuplicateHeavy(t *testing.T) {
	rng := rand.New(rand.NewSource(41))
	a := make([]int64, 5000)
	for i := range a {
		a[i] = int64(rng.Intn(4)) // three-way partition must not degrade
	}
	want := slices.Clone(a)
	slices.Sort(want)

	quicksort(a, identity, 0, len(a))
	if !slices.Equal(a, want) {
		t.Errorf("duplicate-heavy quicksort mismatches reference sort")
	}
}

func TestQuicksortSubrange(t *testing.T) {
	a := []int64{9, 8, 5, 3, 1, 0, 7}
	quicksort(a, identity, 2, 5)
	if !slices.Equal(a, []int64{9, 8, 1, 3, 5, 0, 7}) {
		t.Errorf("quicksort touched bytes outside its range: %v", a)
	}
}

func TestQuicksortDescendingByExternalKey(t *testing.T) {
	// The load balancer orders bucket indices by negated bucket size.
	var size histogram
	size[3], size[10], size[200], size[250] = 500, 100, 900, 100
	idx := []int{3, 10, 200, 250}

	quicksort(idx, func(b int) int64 { return -int64(size[b]) }, 0, len(idx))

	if idx[0] != 200 || idx[1] != 3 {
		t.Errorf("descending order by size broken: %v", idx)
	}
	if size[idx[2]] != 100 || size[idx[3]] != 100 {
		t.Errorf("equal-sized buckets misplaced: %v", idx)
	}
}

func TestInsertionSortStable(t *testing.T) {
	a := []Entry[int]{{Key: 2, Value: 0}, {Key: 1, Value: 1}, {Key: 2, Value: 2}, {Key: 1, Value: 3}}
	insertionSort(a, entryKey[int], 0, len(a))

	want := []Entry[int]{{Key: 1, Value: 1}, {Key: 1, Value: 3}, {Key: 2, Value: 0}, {Key: 2, Value: 2}}
	if !slices.Equal(a, want) {
		t.Errorf("insertionSort not stable: %v", a)
	}
}

func TestMedian(t *testing.T) {
	for _, tc := range [][4]int64{
		{1, 2, 3, 2}, {3, 2, 1, 2}, {2, 1, 3, 2},
		{2, 3, 1, 2}, {1, 1, 2, 1}, {5, 5, 5, 5},
	} {
		if got := median(tc[0], tc[1], tc[2]); got != tc[3] {
			t.Errorf("median(%d, %d, %d) = %d, want %d", tc[0], tc[1], tc[2], got, tc[3])
		}
	}
}

func TestMergesortParity(t *testing.T) {
	for _, n := range []int{2, 3, 16, 100, 4095} {
		src := randomInt64s(n, int64(n)+1)
		entries := make([]Entry[int], n)
		for i, k := range src {
			entries[i] = Entry[int]{Key: k}
		}
		buf := make([]Entry[int], n)

		inSrc := mergesort(entries, buf, entryKey[int], 0, n)
		sorted := entries
		if !inSrc {
			sorted = buf
		}
		if !EntriesSorted(sorted) {
			t.Errorf("n=%d: mergesort produced unsorted result", n)
		}
	}
}

func TestMergesortStable(t *testing.T) {
	rng := rand.New(rand.NewSource(77))
	n := 3000
	entries := make([]Entry[int], n)
	for i := range entries {
		entries[i] = Entry[int]{Key: int64(rng.Intn(10)), Value: i}
	}
	buf := make([]Entry[int], n)

	inSrc := mergesort(entries, buf, entryKey[int], 0, n)
	sorted := entries
	if !inSrc {
		sorted = buf
	}
	for i := 1; i < n; i++ {
		if sorted[i].Key == sorted[i-1].Key && sorted[i].Value < sorted[i-1].Value {
			t.Fatalf("stability broken at %d: %v before %v", i, sorted[i-1], sorted[i])
		}
	}
}
