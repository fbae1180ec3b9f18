// Package sorting provides classic comparison-based sorting algorithms over
// generic slices.
//
// Every algorithm is a standalone function with the same shape:
//
//	func XxxSort[T any](list []T, cmp func(a, b T) int) ([]T, error)
//
// The comparator follows the slices.SortFunc convention: negative when a
// orders before b, zero when they are equal, positive otherwise. Ordering
// always comes from cmp, never from T itself, so any element type can be
// sorted.
//
// Each function returns a newly allocated slice and never modifies list.
// A nil list or a nil comparator is rejected with an error matching
// ErrInvalidArgument before any work is done.
//
// # Algorithms
//
//   - BubbleSort: adjacent swaps with early exit on a clean pass
//   - SelectionSort: repeated selection of the minimum
//   - InsertionSort: growing sorted prefix
//   - MergeSort: top-down merge sort, the only stable algorithm here
//   - QuickSort: middle-element pivot, Hoare-style partition
//   - HeapSort: in-place binary max-heap
//   - CountingSort: frequency count in an ordered B-tree
//
// # Example Usage
//
//	import "github.com/ajroetker/go-sortengine/sorting"
//
//	func ByLength(words []string) ([]string, error) {
//	    return sorting.MergeSort(words, func(a, b string) int {
//	        return cmp.Compare(len(a), len(b))
//	    })
//	}
//
// The implementations favour clarity over speed. For production sorting use
// slices.SortFunc.
package sorting
