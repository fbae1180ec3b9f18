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

import "slices"

// HeapSort returns a sorted copy of list using heapsort.
//
// A max-heap ordered by cmp is built in place, then the root is repeatedly
// swapped to the end of the shrinking heap.
//
// Time: O(n log n). Space: O(n) for the copy, O(log n) recursion in heapify.
func HeapSort[T any](list []T, cmp func(a, b T) int) ([]T, error) {
	if err := validate(list, cmp); err != nil {
		return nil, err
	}

	data := slices.Clone(list)
	n := len(data)

	// Build max-heap
	for i := n/2 - 1; i >= 0; i-- {
		heapify(data, n, i, cmp)
	}

	// Extract elements
	for i := n - 1; i > 0; i-- {
		data[0], data[i] = data[i], data[0]
		heapify(data, i, 0, cmp)
	}
	return data, nil
}

// heapify restores the max-heap property for the subtree rooted at i,
// considering only data[:n].
func heapify[T any](data []T, n, i int, cmp func(a, b T) int) {
	largest := i
	left := 2*i + 1
	right := 2*i + 2

	if left < n && cmp(data[left], data[largest]) > 0 {
		largest = left
	}
	if right < n && cmp(data[right], data[largest]) > 0 {
		largest = right
	}

	if largest != i {
		data[i], data[largest] = data[largest], data[i]
		heapify(data, n, largest, cmp)
	}
}
