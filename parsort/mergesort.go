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

// mergesort runs a bottom-up merge sort over [from, to) between the two
// buffers, starting from src. An element from the right run is taken only
// when its key is strictly smaller, which keeps the sort stable. The pair
// variant uses this as its terminal sort in place of quicksort.
//
// Returns true when the sorted range ended up back in src (an even number of
// merge passes); the caller normalizes into whichever buffer it needs.
func mergesort[E any](src, dst []E, key func(E) int64, from, to int) bool {
	n := to - from
	s, t := src, dst
	passes := 0

	for width := 1; width < n; width <<= 1 {
		passes++
		c := 0
		for ; c < n/width; c += 2 {
			left := from + c*width
			right := left + width
			i := left

			leftBound := right
			rightBound := min(to, right+width)

			for left < leftBound && right < rightBound {
				if key(s[right]) < key(s[left]) {
					t[i] = s[right]
					right++
				} else {
					t[i] = s[left]
					left++
				}
				i++
			}
			for left < leftBound {
				t[i] = s[left]
				left++
				i++
			}
			for right < rightBound {
				t[i] = s[right]
				right++
				i++
			}
		}

		// Odd trailing block: carry it over untouched for the next pass.
		if c*width < n {
			copy(t[from+c*width:to], s[from+c*width:to])
		}

		s, t = t, s
	}

	return passes%2 == 0
}
