package parsort

import (
	"math/rand"
	"slices"
	"testing"
)

// Generate random data for benchmarks
func generateKeys(n int) []int64 {
	rng := rand.New(rand.NewSource(int64(n)))
	data := make([]int64, n)
	for i := range data {
		data[i] = int64(rng.Uint64())
	}
	return data
}

func generateBenchEntries(n int) []Entry[int] {
	rng := rand.New(rand.NewSource(int64(n)))
	data := make([]Entry[int], n)
	for i := range data {
		data[i] = Entry[int]{Key: int64(rng.Uint64()), Value: i}
	}
	return data
}

// Sequential radix benchmarks
func BenchmarkSort_Int64_1000(b *testing.B) {
	benchmarkSortInt64(b, 1000)
}

func BenchmarkSort_Int64_100000(b *testing.B) {
	benchmarkSortInt64(b, 100000)
}

func BenchmarkSort_Int64_1000000(b *testing.B) {
	benchmarkSortInt64(b, 1000000)
}

func benchmarkSortInt64(b *testing.B, n int) {
	ref := generateKeys(n)
	data := make([]int64, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		Sort(data)
	}
}

// Parallel radix benchmarks
func BenchmarkParallelSort_Int64_100000(b *testing.B) {
	benchmarkParallelSortInt64(b, 100000)
}

func BenchmarkParallelSort_Int64_1000000(b *testing.B) {
	benchmarkParallelSortInt64(b, 1000000)
}

func BenchmarkParallelSort_Int64_10000000(b *testing.B) {
	benchmarkParallelSortInt64(b, 10000000)
}

func benchmarkParallelSortInt64(b *testing.B, n int) {
	ref := generateKeys(n)
	data := make([]int64, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		ParallelSort(data)
	}
}

// Entry (stable, satellite data) benchmarks
func BenchmarkParallelSortEntries_100000(b *testing.B) {
	benchmarkParallelSortEntries(b, 100000)
}

func BenchmarkParallelSortEntries_1000000(b *testing.B) {
	benchmarkParallelSortEntries(b, 1000000)
}

func benchmarkParallelSortEntries(b *testing.B, n int) {
	ref := generateBenchEntries(n)
	data := make([]Entry[int], n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		ParallelSortEntries(data)
	}
}

// Standard library comparison benchmarks
func BenchmarkStdlib_Int64_1000(b *testing.B) {
	benchmarkStdlibInt64(b, 1000)
}

func BenchmarkStdlib_Int64_100000(b *testing.B) {
	benchmarkStdlibInt64(b, 100000)
}

func BenchmarkStdlib_Int64_1000000(b *testing.B) {
	benchmarkStdlibInt64(b, 1000000)
}

func benchmarkStdlibInt64(b *testing.B, n int) {
	ref := generateKeys(n)
	data := make([]int64, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		slices.Sort(data)
	}
}

// Digit pass benchmarks
func BenchmarkDigitPass_100000(b *testing.B) {
	ref := generateKeys(100000)
	e := newEngine(slices.Clone(ref), make([]int64, len(ref)), identity, false)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.digitPass(e.primary, e.scratch, 0, 0, len(ref), 1)
	}
}

func BenchmarkDigitPassParallel_100000(b *testing.B) {
	ref := generateKeys(100000)
	e := newEngine(slices.Clone(ref), make([]int64, len(ref)), identity, false)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.digitPass(e.primary, e.scratch, 0, 0, len(ref), 8)
	}
}
