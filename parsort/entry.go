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

// Entry pairs a 64-bit sorting key with an opaque satellite value. The sort
// relocates the value together with its key but never reads or modifies it.
type Entry[V any] struct {
	Key   int64
	Value V
}

func entryKey[V any](e Entry[V]) int64 { return e.Key }
