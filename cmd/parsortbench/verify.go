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

package main

import (
	"cmp"
	"fmt"
	"math/rand"
	"slices"
	"sync"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/ajroetker/go-parsort/parsort"
)

// runVerify cross-checks the sort against the standard library on randomized
// inputs: random size, random subrange, random thread budget, cycling through
// signed keys, unsigned keys and stable key-value pairs. Trials run
// concurrently on a bounded pool; each trial writes only its own failure slot.
func runVerify(logger *zap.Logger, cfg *VerifyConfig) error {
	pool, err := ants.NewPool(cfg.Workers)
	if err != nil {
		return fmt.Errorf("creating worker pool: %w", err)
	}
	defer pool.Release()

	failures := make([]error, cfg.Trials)
	var wg sync.WaitGroup
	for trial := 0; trial < cfg.Trials; trial++ {
		seed := cfg.Seed + int64(trial)
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			failures[trial] = runTrial(seed, cfg.MaxSize)
		}); err != nil {
			wg.Done()
			failures[trial] = fmt.Errorf("submitting trial: %w", err)
		}
	}
	wg.Wait()

	failed := 0
	for trial, err := range failures {
		if err != nil {
			failed++
			logger.Error("trial failed", zap.Int("trial", trial), zap.Error(err))
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d trials failed", failed, cfg.Trials)
	}
	logger.Info("all trials passed",
		zap.Int("trials", cfg.Trials),
		zap.Int("workers", cfg.Workers),
		zap.Int("maxSize", cfg.MaxSize))
	return nil
}

func runTrial(seed int64, maxSize int) error {
	rng := rand.New(rand.NewSource(seed))
	n := rng.Intn(maxSize + 1)
	from := rng.Intn(n + 1)
	to := from + rng.Intn(n+1-from)
	threads := 1 + rng.Intn(16)

	switch seed % 3 {
	case 0:
		return keysTrial(rng, n, from, to, threads)
	case 1:
		return unsignedTrial(rng, n, from, to, threads)
	default:
		return entriesTrial(rng, n, from, to, threads)
	}
}

func keysTrial(rng *rand.Rand, n, from, to, threads int) error {
	a := make([]int64, n)
	for i := range a {
		a[i] = int64(rng.Uint64())
	}
	want := slices.Clone(a)
	slices.Sort(want[from:to])

	if err := parsort.ParallelSortRangeThreads(a, from, to, threads); err != nil {
		return err
	}
	if !slices.Equal(a, want) {
		return fmt.Errorf("keys [%d, %d) of %d with %d threads: mismatch against slices.Sort",
			from, to, n, threads)
	}
	return nil
}

func unsignedTrial(rng *rand.Rand, n, from, to, threads int) error {
	a := make([]uint64, n)
	for i := range a {
		a[i] = rng.Uint64()
	}
	want := slices.Clone(a)
	slices.Sort(want[from:to])

	if err := parsort.ParallelSortRangeThreads(a, from, to, threads); err != nil {
		return err
	}
	if !slices.Equal(a, want) {
		return fmt.Errorf("uint64 keys [%d, %d) of %d with %d threads: mismatch against slices.Sort",
			from, to, n, threads)
	}
	return nil
}

func entriesTrial(rng *rand.Rand, n, from, to, threads int) error {
	a := make([]parsort.Entry[int], n)
	for i := range a {
		// Narrow key space so equal keys actually occur and stability matters.
		a[i] = parsort.Entry[int]{Key: rng.Int63n(1024), Value: i}
	}
	want := slices.Clone(a)
	slices.SortStableFunc(want[from:to], func(x, y parsort.Entry[int]) int {
		return cmp.Compare(x.Key, y.Key)
	})

	if err := parsort.ParallelSortEntriesRangeThreads(a, from, to, threads); err != nil {
		return err
	}
	if !slices.Equal(a, want) {
		return fmt.Errorf("entries [%d, %d) of %d with %d threads: mismatch against slices.SortStableFunc",
			from, to, n, threads)
	}
	return nil
}
