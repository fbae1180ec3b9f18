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

// BubbleSort returns a sorted copy of list using bubble sort.
//
// Each pass swaps adjacent out-of-order pairs, pushing the largest remaining
// element to the end. A pass without swaps means the list is sorted and the
// loop stops, so sorted input costs a single pass of n-1 comparisons.
//
// Time: O(n^2) average and worst, O(n) best. Space: O(n) for the copy.
func BubbleSort[T any](list []T, cmp func(a, b T) int) ([]T, error) {
	if err := validate(list, cmp); err != nil {
		return nil, err
	}

	data := slices.Clone(list)
	n := len(data)
	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			if cmp(data[j], data[j+1]) > 0 {
				data[j], data[j+1] = data[j+1], data[j]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return data, nil
}
