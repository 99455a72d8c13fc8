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

// Thresholds and geometry for the radix sort engine.
const (
	// bitsPerBucket: one pass examines one byte of the key.
	bitsPerBucket = 8

	// bucketCount: buckets per counting/scatter pass.
	bucketCount = 1 << bitsPerBucket

	// bucketMask extracts the bucket byte from a shifted key.
	bucketMask = bucketCount - 1

	// leastSignificantDepth: depth 0 is the most significant byte of a
	// 64-bit key, depth 7 the least significant.
	leastSignificantDepth = 7

	// signBit of a two's-complement 64-bit key.
	signBit = uint64(1) << 63

	// insertionSortThreshold: ranges shorter than this are insertion
	// sorted.
	insertionSortThreshold = 16

	// quicksortThreshold: ranges shorter than this are handed to the
	// sequential fallback instead of another counting pass.
	quicksortThreshold = 4096

	// threadThreshold: minimum number of elements per worker goroutine
	// when choosing the default budget.
	threadThreshold = 65536
)
