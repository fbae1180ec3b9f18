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

// QuickSort returns a sorted copy of list using quicksort.
//
// The pivot is the middle element of each range. There is no median-of-three
// or random sampling, so already sorted and reverse sorted input split
// evenly, while inputs crafted against the middle position still degrade to
// O(n^2).
//
// Partitioning is Hoare-style: the left cursor stops on elements not less
// than the pivot, the right cursor on elements not greater, and the pair is
// swapped. The returned split index stays in the right-hand range.
//
// Time: O(n log n) average, O(n^2) worst. Space: O(n) for the copy plus
// O(log n) average recursion depth.
func QuickSort[T any](list []T, cmp func(a, b T) int) ([]T, error) {
	if err := validate(list, cmp); err != nil {
		return nil, err
	}

	data := slices.Clone(list)
	quickSort(data, 0, len(data)-1, cmp)
	return data, nil
}

// quickSort sorts data[start:end+1] in place.
func quickSort[T any](data []T, start, end int, cmp func(a, b T) int) {
	if start >= end {
		return
	}
	split := partition(data, start, end, cmp)
	quickSort(data, start, split-1, cmp)
	quickSort(data, split, end, cmp)
}

// partition rearranges data[start:end+1] around its middle element and
// returns i such that data[start:i] <= pivot <= data[i:end+1].
// For end > start the result satisfies start < i <= end.
func partition[T any](data []T, start, end int, cmp func(a, b T) int) int {
	pivot := data[start+(end-start)/2]
	i, j := start, end
	for i <= j {
		for cmp(data[i], pivot) < 0 {
			i++
		}
		for cmp(data[j], pivot) > 0 {
			j--
		}
		if i <= j {
			data[i], data[j] = data[j], data[i]
			i++
			j--
		}
	}
	return i
}
