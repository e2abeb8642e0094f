package container

import (
	"github.com/mizuiro-dev/collection/core/stdext/constraints"
)

// Heap is a comparator-driven priority container. Pop and Peek follow the
// module's loud-failure convention on an empty heap; TryPeek is the safe
// variant.
type Heap[T any] struct {
	data List[T]
	comp func(l, r T) bool
}

func NewHeap[T any](comp func(l, r T) bool) *Heap[T] {
	return &Heap[T]{comp: comp}
}

func NewHeapLess[T constraints.Ordered]() *Heap[T] {
	return &Heap[T]{comp: func(l, r T) bool {
		return l < r
	}}
}

// Peek returns the top element without removing it, failing with
// ErrEmptyContainer when the heap is empty.
func (heap *Heap[T]) Peek() (T, error) {
	if heap.Len() == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}
	return heap.data[0], nil
}

func (heap *Heap[T]) TryPeek() (first T, ok bool) {
	if heap.Len() > 0 {
		first = heap.data[0]
		ok = true
	}
	return
}

func (heap *Heap[T]) Push(v T) {
	heap.data.Add(v)
	heap.up(heap.Len() - 1)
}

// Pop removes and returns the top element, failing with ErrEmptyContainer
// when the heap is empty.
func (heap *Heap[T]) Pop() (T, error) {
	if heap.Len() == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}
	n := heap.Len() - 1
	if n > 0 {
		heap.data.Swap(0, n)
		heap.down(0, n)
	}
	result := heap.data[n]
	heap.data = heap.data[:n]
	return result, nil
}

// RemoveAt removes and returns the element at heap index, failing when the
// index is out of range.
func (heap *Heap[T]) RemoveAt(i int) (T, error) {
	if i < 0 || i >= heap.Len() {
		var zero T
		return zero, indexError(i, heap.Len())
	}
	n := heap.Len() - 1
	if n != i {
		heap.data.Swap(i, n)
		if !heap.down(i, n) {
			heap.up(i)
		}
	}
	result := heap.data[n]
	heap.data = heap.data[:n]
	return result, nil
}

func (heap *Heap[T]) Len() int {
	return heap.data.Len()
}

func (heap *Heap[T]) IsEmpty() bool {
	return heap.Len() == 0
}

func (heap *Heap[T]) Data() List[T] {
	return heap.data
}

func (heap *Heap[T]) Copy() *Heap[T] {
	return &Heap[T]{
		data: heap.data.Copy(),
		comp: heap.comp,
	}
}

func (heap *Heap[T]) up(i int) {
	for {
		p := (i - 1) / 2 // parent
		if p == i || !heap.comp(heap.data[i], heap.data[p]) {
			break
		}
		heap.data.Swap(p, i)
		i = p
	}
}

func (heap *Heap[T]) down(i0, n int) bool {
	i := i0
	for {
		left := (i * 2) + 1
		if left >= n || left < 0 {
			break
		}
		j := left
		right := (i * 2) + 2
		if right < n && heap.comp(heap.data[right], heap.data[left]) {
			j = right
		}
		if !heap.comp(heap.data[j], heap.data[i]) {
			break
		}
		heap.data.Swap(i, j)
		i = j
	}
	return i > i0
}
