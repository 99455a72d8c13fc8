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
	"fmt"
)

// ErrInvalidRange reports a range violating 0 <= fromIndex <= toIndex <= len.
// It is detected at the public API boundary, before any buffer is allocated.
var ErrInvalidRange = errors.New("invalid sort range")

// ErrInvalidThreads reports a requested goroutine budget below one.
var ErrInvalidThreads = errors.New("thread count must be at least 1")

// ConcurrencyError reports that a sort worker terminated abnormally. The
// sort is aborted as a whole and the subrange's contents are unspecified:
// there is no partial-result contract once a scatter write is incomplete.
type ConcurrencyError struct {
	// Value is the panic value recovered from the failed worker.
	Value any
}

func (e *ConcurrencyError) Error() string {
	return fmt.Sprintf("parsort: sort worker terminated abnormally: %v", e.Value)
}

func checkRange(length, fromIndex, toIndex int) error {
	if fromIndex < 0 || toIndex > length || fromIndex > toIndex {
		return fmt.Errorf("parsort: range [%d, %d) out of bounds for length %d: %w",
			fromIndex, toIndex, length, ErrInvalidRange)
	}
	return nil
}

func checkThreads(threads int) error {
	if threads < 1 {
		return fmt.Errorf("parsort: got %d: %w", threads, ErrInvalidThreads)
	}
	return nil
}
