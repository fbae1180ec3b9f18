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

// MergeSort returns a sorted copy of list using top-down merge sort.
//
// The list is split at len/2, both halves are sorted recursively and then
// merged. On ties the element from the left half is taken first, so elements
// that compare equal keep their original relative order (the sort is
// stable).
//
// Time: O(n log n). Space: O(n) per merge level.
func MergeSort[T any](list []T, cmp func(a, b T) int) ([]T, error) {
	if err := validate(list, cmp); err != nil {
		return nil, err
	}
	return mergeSort(list, cmp), nil
}

func mergeSort[T any](list []T, cmp func(a, b T) int) []T {
	if len(list) <= 1 {
		return slices.Clone(list)
	}

	mid := len(list) / 2
	left := mergeSort(list[:mid], cmp)
	right := mergeSort(list[mid:], cmp)
	return merge(left, right, cmp)
}

// merge combines two sorted slices into a new sorted slice.
func merge[T any](left, right []T, cmp func(a, b T) int) []T {
	out := make([]T, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if cmp(left[i], right[j]) <= 0 {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}
	out = append(out, left[i:]...)
	out = append(out, right[j:]...)
	return out
}
