// Copyright 2025 go-sortengine Authors
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

package sorting

// IsSorted reports whether list is in non-decreasing order under cmp.
func IsSorted[T any](list []T, cmp func(a, b T) int) bool {
	for i := 1; i < len(list); i++ {
		if cmp(list[i-1], list[i]) > 0 {
			return false
		}
	}
	return true
}

// Reverse returns a comparator that orders elements opposite to cmp.
func Reverse[T any](cmp func(a, b T) int) func(a, b T) int {
	return func(a, b T) int {
		return cmp(b, a)
	}
}

// Counter wraps a comparator and counts how often it is called.
// A Counter is not safe for concurrent use; give each sort its own.
type Counter[T any] struct {
	cmp   func(a, b T) int
	calls int64
}

// NewCounter returns a Counter delegating to cmp.
func NewCounter[T any](cmp func(a, b T) int) *Counter[T] {
	return &Counter[T]{cmp: cmp}
}

// Compare calls the wrapped comparator and records the call.
func (c *Counter[T]) Compare(a, b T) int {
	c.calls++
	return c.cmp(a, b)
}

// Count returns the number of comparisons since creation or the last Reset.
func (c *Counter[T]) Count() int64 {
	return c.calls
}

// Reset zeroes the comparison count.
func (c *Counter[T]) Reset() {
	c.calls = 0
}
