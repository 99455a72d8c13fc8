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

// quicksort sorts a[from:to] ascending by key. Pivots are the median of the
// keys sampled at the 1/4, 1/2 and 3/4 offsets of the range, and the range is
// partitioned three ways so runs of duplicate keys collapse into the middle
// partition. The smaller partition is recursed into and the larger one looped
// on, bounding the stack to O(log n).
//
// The same routine orders the non-empty-bucket index array during load
// balancing, with the key function negating bucket sizes to get a descending
// order.
func quicksort[E any](a []E, key func(E) int64, from, to int) {
	for {
		n := to - from
		if n < 2 {
			return
		}
		if n < insertionSortThreshold {
			insertionSort(a, key, from, to)
			return
		}

		distance := n / 4
		pivot := median(key(a[from+distance]),
			key(a[from+n/2]),
			key(a[to-distance]))

		left := 0
		right := 0
		i := from
		for i < to-right {
			k := key(a[i])
			switch {
			case k > pivot:
				right++
				a[to-right], a[i] = a[i], a[to-right]
			case k < pivot:
				a[from+left], a[i] = a[i], a[from+left]
				i++
				left++
			default:
				i++
			}
		}

		if left < right {
			quicksort(a, key, from, from+left)
			from = to - right
		} else {
			quicksort(a, key, to-right, to)
			to = from + left
		}
	}
}

// insertionSort sorts a[from:to] ascending by key. It is stable: elements
// shift only past strictly greater keys.
func insertionSort[E any](a []E, key func(E) int64, from, to int) {
	for i := from + 1; i < to; i++ {
		v := a[i]
		k := key(v)
		j := i - 1
		for j >= from && key(a[j]) > k {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = v
	}
}

// median returns the middle value of a, b, c.
func median(a, b, c int64) int64 {
	if a <= b {
		if c <= a {
			return a
		}
		if b <= c {
			return b
		}
		return c
	}
	if c <= b {
		return b
	}
	if a <= c {
		return a
	}
	return c
}
