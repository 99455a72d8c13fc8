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

// Key is the element constraint for the primitive sort variants. Unsigned
// keys are ordered by biasing the sign bit, so the engine always runs on the
// signed contract of bucketIndex.
type Key interface {
	~int64 | ~uint64
}

// bucketIndex maps a key to its bucket in [0, 255] for the byte at depth.
//
// At depth 0 the sign bit is flipped before taking the top byte, so that all
// negative keys land in buckets below all non-negative keys; without the flip
// the set sign bit would sort negative keys as the largest unsigned bytes.
// Deeper bytes carry no sign information and are extracted as-is.
//
// Both the sequential and the parallel paths must call this exact function.
func bucketIndex(key int64, depth int) int {
	if depth == 0 {
		return int((uint64(key) ^ signBit) >> (bitsPerBucket * leastSignificantDepth))
	}
	shift := uint(bitsPerBucket * (leastSignificantDepth - depth))
	return int(uint64(key)>>shift) & bucketMask
}

// orderedKeyFunc returns the key extractor for a primitive element type:
// identity for signed keys, a sign-bit bias for unsigned ones. The bias makes
// unsigned ascending order coincide with the signed order of the biased
// value, which is the order bucketIndex implements.
func orderedKeyFunc[K Key]() func(K) int64 {
	if keyIsSigned[K]() {
		return func(k K) int64 { return int64(k) }
	}
	return func(k K) int64 { return int64(uint64(k) ^ signBit) }
}

// keyIsSigned reports whether K is a signed type. Decrementing zero
// underflows to the maximum value for unsigned types.
func keyIsSigned[K Key]() bool {
	var k K
	k--
	return k < K(0)
}
