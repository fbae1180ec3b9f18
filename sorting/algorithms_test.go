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

import (
	"cmp"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBubbleSortEarlyExit(t *testing.T) {
	c := NewCounter(cmp.Compare[int])
	got, err := BubbleSort([]int{1, 2, 3, 4, 5}, c.Compare)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)
	assert.EqualValues(t, 4, c.Count(), "sorted input should take a single pass")

	c.Reset()
	_, err = BubbleSort([]int{5, 4, 3, 2, 1}, c.Compare)
	require.NoError(t, err)
	assert.EqualValues(t, 10, c.Count())
}

func TestSelectionSortComparisons(t *testing.T) {
	for _, input := range [][]int{{1, 2, 3, 4, 5, 6}, {6, 5, 4, 3, 2, 1}, {3, 3, 3, 3, 3, 3}} {
		c := NewCounter(cmp.Compare[int])
		_, err := SelectionSort(input, c.Compare)
		require.NoError(t, err)
		assert.EqualValues(t, 15, c.Count(), "input %v", input)
	}
}

func TestInsertionSortSortedInputIsLinear(t *testing.T) {
	input := make([]int, 100)
	for i := range input {
		input[i] = i
	}
	c := NewCounter(cmp.Compare[int])
	_, err := InsertionSort(input, c.Compare)
	require.NoError(t, err)
	assert.EqualValues(t, 99, c.Count())
}

func TestMergeSortStable(t *testing.T) {
	users := []user{
		{2, "b1"}, {1, "a1"}, {2, "b2"}, {3, "c1"},
		{1, "a2"}, {2, "b3"}, {1, "a3"}, {3, "c2"},
	}
	want := []user{
		{1, "a1"}, {1, "a2"}, {1, "a3"},
		{2, "b1"}, {2, "b2"}, {2, "b3"},
		{3, "c1"}, {3, "c2"},
	}

	got, err := MergeSort(users, byID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMergeSortStableRandom(t *testing.T) {
	type tagged struct{ key, idx int }

	rng := rand.New(rand.NewSource(99))
	input := make([]tagged, 500)
	for i := range input {
		input[i] = tagged{key: rng.Intn(10), idx: i}
	}

	got, err := MergeSort(input, func(a, b tagged) int { return cmp.Compare(a.key, b.key) })
	require.NoError(t, err)
	for i := 1; i < len(got); i++ {
		if got[i-1].key == got[i].key {
			require.Less(t, got[i-1].idx, got[i].idx, "tie at %d reordered", i)
		}
	}
}

func TestMerge(t *testing.T) {
	got := merge([]int{1, 4, 9}, []int{2, 3, 10, 11}, cmp.Compare[int])
	assert.Equal(t, []int{1, 2, 3, 4, 9, 10, 11}, got)

	assert.Equal(t, []int{1, 2}, merge([]int{}, []int{1, 2}, cmp.Compare[int]))
	assert.Equal(t, []int{1, 2}, merge([]int{1, 2}, nil, cmp.Compare[int]))
}

func TestPartition(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for n := 2; n <= 64; n++ {
		for _, maxVal := range []int{2, 10, 1000} {
			data := randomInts(rng, n, maxVal)
			split := partition(data, 0, n-1, cmp.Compare[int])

			// the split index must make progress on both sides
			require.Greater(t, split, 0, "n=%d data=%v", n, data)
			require.LessOrEqual(t, split, n-1, "n=%d data=%v", n, data)

			maxLeft := data[0]
			for _, v := range data[:split] {
				maxLeft = max(maxLeft, v)
			}
			for _, v := range data[split:] {
				require.GreaterOrEqual(t, v, maxLeft, "n=%d split=%d data=%v", n, split, data)
			}
		}
	}
}

func TestQuickSortPivotIsMiddle(t *testing.T) {
	// Sorted and reverse sorted input split evenly around the middle pivot.
	input := make([]int, 1024)
	for i := range input {
		input[i] = i
	}
	c := NewCounter(cmp.Compare[int])
	_, err := QuickSort(input, c.Compare)
	require.NoError(t, err)
	assert.Less(t, c.Count(), int64(1024*32), "sorted input should not go quadratic")
}

func TestHeapify(t *testing.T) {
	data := []int{1, 9, 8, 4, 5, 7, 6}
	heapify(data, len(data), 0, cmp.Compare[int])
	assert.Equal(t, 9, data[0])
	for i := range data {
		for _, child := range []int{2*i + 1, 2*i + 2} {
			if child < len(data) {
				assert.GreaterOrEqual(t, data[i], data[child], "heap violated at %d", i)
			}
		}
	}
}

func TestCountingSortKeepsFirstKey(t *testing.T) {
	users := []user{{2, "Bob"}, {1, "Alice"}, {2, "Bobby"}, {1, "Alicia"}}

	got, err := CountingSort(users, byID)
	require.NoError(t, err)
	assert.Equal(t, []user{{1, "Alice"}, {1, "Alice"}, {2, "Bob"}, {2, "Bob"}}, got)
}

func TestCountingSortComparisons(t *testing.T) {
	// Many duplicates over few keys: cost grows with log of distinct keys.
	rng := rand.New(rand.NewSource(5))
	input := randomInts(rng, 10000, 4)

	c := NewCounter(cmp.Compare[int])
	got, err := CountingSort(input, c.Compare)
	require.NoError(t, err)
	assert.Len(t, got, len(input))
	assert.Less(t, c.Count(), int64(10000*8))
}
