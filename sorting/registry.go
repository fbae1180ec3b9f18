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
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownAlgorithm is returned when an algorithm name is not recognized.
var ErrUnknownAlgorithm = errors.New("unknown sorting algorithm")

// Func is the signature shared by every algorithm in this package.
type Func[T any] func(list []T, cmp func(a, b T) int) ([]T, error)

// Algorithm names one of the sorting algorithms.
type Algorithm string

const (
	Bubble    Algorithm = "bubble"
	Selection Algorithm = "selection"
	Insertion Algorithm = "insertion"
	Merge     Algorithm = "merge"
	Quick     Algorithm = "quick"
	Heap      Algorithm = "heap"
	Counting  Algorithm = "counting"
)

var allAlgorithms = []Algorithm{Bubble, Selection, Insertion, Merge, Quick, Heap, Counting}

// Algorithms returns every available algorithm, from the elementary
// quadratic sorts to the O(n log n) ones.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(allAlgorithms))
	copy(out, allAlgorithms)
	return out
}

func (a Algorithm) String() string {
	return string(a)
}

// Stable reports whether the algorithm preserves the relative order of
// elements that compare equal.
func (a Algorithm) Stable() bool {
	return a == Merge
}

// ParseAlgorithm maps a user-supplied name to an Algorithm.
// Matching ignores case and accepts an optional "sort" suffix, so "Quick",
// "quicksort", "quick-sort" and "quick_sort" all name Quick.
func ParseAlgorithm(name string) (Algorithm, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.TrimSuffix(s, "sort")
	s = strings.TrimRight(s, "-_ ")
	for _, a := range allAlgorithms {
		if string(a) == s {
			return a, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
}

// Lookup returns the implementation of a for element type T.
func Lookup[T any](a Algorithm) (Func[T], error) {
	switch a {
	case Bubble:
		return BubbleSort[T], nil
	case Selection:
		return SelectionSort[T], nil
	case Insertion:
		return InsertionSort[T], nil
	case Merge:
		return MergeSort[T], nil
	case Quick:
		return QuickSort[T], nil
	case Heap:
		return HeapSort[T], nil
	case Counting:
		return CountingSort[T], nil
	}
	return nil, errors.Wrapf(ErrUnknownAlgorithm, "%q", string(a))
}
