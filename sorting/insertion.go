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

// InsertionSort returns a sorted copy of list using insertion sort.
//
// Time: O(n^2) average and worst, O(n) on sorted or nearly sorted input.
// Space: O(n) for the copy.
func InsertionSort[T any](list []T, cmp func(a, b T) int) ([]T, error) {
	if err := validate(list, cmp); err != nil {
		return nil, err
	}

	data := slices.Clone(list)
	insertionSort(data, cmp)
	return data, nil
}

// insertionSort sorts data in place.
func insertionSort[T any](data []T, cmp func(a, b T) int) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && cmp(data[j], key) > 0 {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}
