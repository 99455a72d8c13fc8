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

// IsSorted reports whether a is ascending.
func IsSorted[K Key](a []K) bool {
	return IsSortedRange(a, 0, len(a))
}

// IsSortedRange reports whether a[fromIndex:toIndex] is ascending. Indices
// are clamped to the slice bounds.
func IsSortedRange[K Key](a []K, fromIndex, toIndex int) bool {
	fromIndex = max(fromIndex, 0)
	toIndex = min(toIndex, len(a))
	key := orderedKeyFunc[K]()
	for i := fromIndex + 1; i < toIndex; i++ {
		if key(a[i]) < key(a[i-1]) {
			return false
		}
	}
	return true
}

// EntriesSorted reports whether a is ascending by key.
func EntriesSorted[V any](a []Entry[V]) bool {
	for i := 1; i < len(a); i++ {
		if a[i].Key < a[i-1].Key {
			return false
		}
	}
	return true
}
