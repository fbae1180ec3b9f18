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

import "github.com/google/btree"

// btreeDegree is the B-tree node degree used for frequency counting.
const btreeDegree = 16

// tally is one distinct key and how often it was seen.
type tally[T any] struct {
	key   T
	count int
}

// CountingSort returns a sorted copy of list using a generic counting sort.
//
// Classic counting sort indexes an array by value, which only works for small
// integer ranges. Here occurrences are counted in a B-tree ordered by cmp
// instead, then the keys are emitted in order, each repeated by its count.
// Elements that compare equal share one entry, and the entry keeps the first
// such element seen: comparator-equal elements that differ in other fields
// come out as copies of that first element.
//
// Time: O(n log k + k) for k distinct keys. Space: O(n + k).
func CountingSort[T any](list []T, cmp func(a, b T) int) ([]T, error) {
	if err := validate(list, cmp); err != nil {
		return nil, err
	}

	freq := btree.NewG(btreeDegree, func(a, b *tally[T]) bool {
		return cmp(a.key, b.key) < 0
	})
	for _, v := range list {
		if t, ok := freq.Get(&tally[T]{key: v}); ok {
			t.count++
			continue
		}
		freq.ReplaceOrInsert(&tally[T]{key: v, count: 1})
	}

	out := make([]T, 0, len(list))
	freq.Ascend(func(t *tally[T]) bool {
		for range t.count {
			out = append(out, t.key)
		}
		return true
	})
	return out, nil
}
