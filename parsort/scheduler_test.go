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
	"errors"
	"math/rand"
	"testing"
)

func TestSplitRangeCoversRange(t *testing.T) {
	for _, tc := range []struct{ from, to, workers int }{
		{0, 100, 3}, {10, 17, 4}, {0, 65536, 8}, {5, 6, 1},
	} {
		bounds := splitRange(tc.from, tc.to, tc.workers)
		if len(bounds) != tc.workers+1 {
			t.Fatalf("splitRange(%v): %d boundaries", tc, len(bounds))
		}
		if bounds[0] != tc.from || bounds[tc.workers] != tc.to {
			t.Errorf("splitRange(%v) = %v: endpoints wrong", tc, bounds)
		}
		for k := 0; k < tc.workers; k++ {
			if bounds[k] > bounds[k+1] {
				t.Errorf("splitRange(%v) = %v: slice %d is negative", tc, bounds, k)
			}
		}
	}
}

func TestSplitThreadsDistribution(t *testing.T) {
	for threads := 1; threads <= 20; threads++ {
		for degree := 1; degree <= threads; degree++ {
			budgets := splitThreads(threads, degree)
			total := 0
			for g, b := range budgets {
				total += b
				if b < threads/degree || b > threads/degree+1 {
					t.Errorf("threads=%d degree=%d: budget[%d]=%d", threads, degree, g, b)
				}
			}
			if total != threads {
				t.Errorf("threads=%d degree=%d: budgets sum to %d", threads, degree, total)
			}
			// The remainder goes to the first groups.
			for g := 1; g < degree; g++ {
				if budgets[g] > budgets[g-1] {
					t.Errorf("threads=%d degree=%d: budgets not non-increasing: %v",
						threads, degree, budgets)
				}
			}
		}
	}
}

func TestPackBucketsCoversEveryBucket(t *testing.T) {
	var hist histogram
	rng := rand.New(rand.NewSource(11))
	buckets := make([]int, 0, 40)
	total := 0
	for b := 0; b < 40; b++ {
		hist[b] = 1 + rng.Intn(10000)
		buckets = append(buckets, b)
		total += hist[b]
	}
	quicksort(buckets, func(b int) int64 { return -int64(hist[b]) }, 0, len(buckets))

	for _, degree := range []int{1, 3, 8, 40} {
		groups := packBuckets(buckets, &hist, degree, total/degree)
		if len(groups) != degree {
			t.Fatalf("degree %d: %d groups", degree, len(groups))
		}
		seen := make(map[int]bool)
		for _, group := range groups {
			for _, b := range group {
				if seen[b] {
					t.Errorf("degree %d: bucket %d packed twice", degree, b)
				}
				seen[b] = true
			}
		}
		if len(seen) != len(buckets) {
			t.Errorf("degree %d: %d of %d buckets packed", degree, len(seen), len(buckets))
		}
	}
}

func TestPackBucketsSkewedToOneGroup(t *testing.T) {
	// One huge bucket first: it must not spill the rest past the last group.
	var hist histogram
	hist[0] = 1 << 20
	hist[1], hist[2], hist[3] = 10, 10, 10
	buckets := []int{0, 1, 2, 3}

	groups := packBuckets(buckets, &hist, 2, (1<<20+30)/2)
	if len(groups[0]) != 1 || groups[0][0] != 0 {
		t.Errorf("group 0 = %v, want just the huge bucket", groups[0])
	}
	if len(groups[1]) != 3 {
		t.Errorf("group 1 = %v, want the three small buckets", groups[1])
	}
}

func TestWorkerOffsetsDisjoint(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	local := make([]histogram, 5)
	var global histogram
	for k := range local {
		for b := 0; b < bucketCount; b++ {
			local[k][b] = rng.Intn(50)
			global[b] += local[k][b]
		}
	}

	offs := workerOffsets(local)
	for b := 0; b < bucketCount; b++ {
		next := 0
		for k := range local {
			if offs[k][b] != next {
				t.Fatalf("bucket %d worker %d: offset %d, want %d (ranges must tile the bucket)",
					b, k, offs[k][b], next)
			}
			next += local[k][b]
		}
		if next != global[b] {
			t.Fatalf("bucket %d: worker ranges cover %d of %d", b, next, global[b])
		}
	}
}

func TestForkJoinRunsEveryWorkerAndJoins(t *testing.T) {
	for _, workers := range []int{1, 2, 7} {
		ran := make([]bool, workers)
		forkJoin(workers, func(k int) { ran[k] = true })
		for k, ok := range ran {
			if !ok {
				t.Errorf("workers=%d: worker %d never ran", workers, k)
			}
		}
	}
}

func TestForkJoinPropagatesWorkerPanic(t *testing.T) {
	defer func() {
		if r := recover(); r != "boom" {
			t.Errorf("recovered %v, want boom", r)
		}
	}()
	forkJoin(4, func(k int) {
		if k == 1 {
			panic("boom")
		}
	})
	t.Errorf("forkJoin returned instead of panicking")
}

func TestRunSurfacesConcurrencyError(t *testing.T) {
	a := make([]int64, 64) // quicksort terminal, runs through the key func
	e := newEngine(a, make([]int64, 64), func(int64) int64 { panic("worker died") }, false)

	err := e.run(2)
	var cerr *ConcurrencyError
	if !errors.As(err, &cerr) {
		t.Fatalf("run() = %v, want *ConcurrencyError", err)
	}
	if cerr.Value != "worker died" {
		t.Errorf("ConcurrencyError.Value = %v", cerr.Value)
	}
}
