package container

import (
	"math/rand"

	"github.com/mizuiro-dev/collection/core/stdext/constraints"
)

var _ = Iterator[struct{}]((List[struct{}])(nil))

// List is a growable ordered sequence permitting duplicate elements. It is
// a plain slice underneath, so raw indexing keeps slice semantics; At and
// SetAt are the bounds-checked counterparts that fail with
// ErrIndexOutOfRange instead of panicking.
type List[T any] []T

func NewList[T any](args ...T) List[T] {
	result := make(List[T], len(args))
	copy(result, args)
	return result
}

func (list List[T]) ScanIf(fn func(elem T) bool) {
	for _, v := range list {
		if !fn(v) {
			break
		}
	}
}

func (list List[T]) Scan(fn func(elem T)) {
	for _, v := range list {
		fn(v)
	}
}

func (list List[T]) ScanIV(fn func(index int, elem T)) {
	for i, v := range list {
		fn(i, v)
	}
}

func (list List[T]) Len() int {
	return len(list)
}

func (list List[T]) IsEmpty() bool {
	return list.Len() == 0
}

// At returns the element at index, failing loudly when index is out of
// range.
func (list List[T]) At(index int) (T, error) {
	if index < 0 || index >= list.Len() {
		var zero T
		return zero, indexError(index, list.Len())
	}
	return list[index], nil
}

// GetOr returns the element at index, or def when index is out of range.
func (list List[T]) GetOr(index int, def T) T {
	if index < 0 || index >= list.Len() {
		return def
	}
	return list[index]
}

// SetAt assigns the element at index, failing when index is out of range.
func (list List[T]) SetAt(index int, elem T) error {
	if index < 0 || index >= list.Len() {
		return indexError(index, list.Len())
	}
	list[index] = elem
	return nil
}

func (list List[T]) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list List[T]) Copy() List[T] {
	newList := make(List[T], list.Len())
	copy(newList, list)
	return newList
}

// Add appends elem at the end.
func (list *List[T]) Add(elem T) {
	*list = append(*list, elem)
}

// Insert places elem at index, shifting later elements right. Index may
// equal Len(), which appends.
func (list *List[T]) Insert(index int, elem T) error {
	if index < 0 || index > list.Len() {
		return indexError(index, list.Len())
	}
	*list = append(*list, elem)
	copy((*list)[index+1:], (*list)[index:])
	(*list)[index] = elem
	return nil
}

func (list *List[T]) RemoveLast() {
	*list = (*list)[:list.Len()-1]
}

// RemoveAt removes the element at index, shifting later elements left.
func (list *List[T]) RemoveAt(index int) error {
	if index < 0 || index >= list.Len() {
		return indexError(index, list.Len())
	}
	*list = append((*list)[:index], (*list)[index+1:]...)
	return nil
}

// RemoveSwap removes the element at index by swapping the last element in.
// Order is not preserved.
func (list *List[T]) RemoveSwap(index int) {
	(*list)[index] = (*list)[list.Len()-1]
	*list = (*list)[:list.Len()-1]
}

func (list *List[T]) RemoveIf(fn func(elem T) bool) {
	for i := 0; i < list.Len(); {
		if fn((*list)[i]) {
			_ = list.RemoveAt(i)
		} else {
			i++
		}
	}
}

func (list *List[T]) Clear() {
	*list = (*list)[:0]
}

// Reverse reverses the list in place.
func (list List[T]) Reverse() {
	for i, j := 0, list.Len()-1; i < j; i, j = i+1, j-1 {
		list.Swap(i, j)
	}
}

// Reversed returns a reversed copy, leaving the origin unmodified.
func (list List[T]) Reversed() List[T] {
	result := list.Copy()
	result.Reverse()
	return result
}

func (list List[T]) Shuffle() {
	rand.Shuffle(list.Len(), func(i, j int) { list.Swap(i, j) })
}

func (list List[T]) Shuffled() List[T] {
	result := list.Copy()
	result.Shuffle()
	return result
}

// ListRemoveValue removes the first occurrence of elem and fails with
// ErrValueNotFound when the list holds no such element.
func ListRemoveValue[T comparable](list *List[T], elem T) error {
	idx := ListSearch(*list, elem)
	if idx == -1 {
		return valueError(elem)
	}
	return list.RemoveAt(idx)
}

// ListRemoveAll removes every occurrence of elem and reports how many were
// removed. Zero removals is a valid outcome.
func ListRemoveAll[T comparable](list *List[T], elem T) int {
	removed := 0
	for i := 0; i < list.Len(); {
		if (*list)[i] == elem {
			_ = list.RemoveAt(i)
			removed++
		} else {
			i++
		}
	}
	return removed
}

func ListSearch[T comparable](list List[T], elem T) int {
	for idx, value := range list {
		if value == elem {
			return idx
		}
	}
	return -1
}

func ListContains[T comparable](list List[T], elem T) bool {
	return ListSearch(list, elem) != -1
}

func ListBinarySearch[T constraints.Ordered](list List[T], elem T) int {
	var binarySearch func(a []T, search T) int
	binarySearch = func(a []T, search T) int {
		mid := len(a) / 2
		switch {
		case len(a) == 0:
			return -1
		case a[mid] > search:
			return binarySearch(a[:mid], search)
		case a[mid] < search:
			result := binarySearch(a[mid+1:], search)
			if result >= 0 {
				result += mid + 1
			}
			return result
		default:
			return mid
		}
	}
	return binarySearch(list, elem)
}

func ListBinaryContains[T constraints.Ordered](list List[T], elem T) bool {
	return ListBinarySearch(list, elem) != -1
}
