package container

import (
	"github.com/tidwall/btree"

	"github.com/mizuiro-dev/collection/core/stdext/constraints"
)

var _ = Iterator[int]((*SortedSet[int])(nil))

// SortedSet is a unique-element collection iterated in element order,
// backed by a B-tree. Algebra mirrors Set: in-place verbs mutate the
// receiver, the -ed forms return new sets and leave both operands
// unmodified.
type SortedSet[T constraints.Ordered] struct {
	base btree.Set[T]
}

func NewSortedSet[T constraints.Ordered](args ...T) *SortedSet[T] {
	result := &SortedSet[T]{}
	if len(args) > 0 {
		argList := List[T](args)
		Sort(argList)
		for _, elem := range argList {
			result.base.Load(elem)
		}
	}
	return result
}

func (set *SortedSet[T]) ScanIf(fn func(elem T) bool) {
	set.base.Scan(fn)
}

func (set *SortedSet[T]) Scan(fn func(elem T)) {
	set.base.Scan(func(elem T) bool {
		fn(elem)
		return true
	})
}

func (set *SortedSet[T]) ScanIV(fn func(index int, elem T)) {
	i := 0
	set.base.Scan(func(elem T) bool {
		fn(i, elem)
		i++
		return true
	})
}

func (set *SortedSet[T]) Len() int {
	return set.base.Len()
}

func (set *SortedSet[T]) IsEmpty() bool {
	return set.Len() == 0
}

func (set *SortedSet[T]) Copy() *SortedSet[T] {
	newSet := &SortedSet[T]{}
	set.base.Scan(func(elem T) bool {
		newSet.base.Load(elem)
		return true
	})
	return newSet
}

func (set *SortedSet[T]) Contains(elem T) bool {
	return set.base.Contains(elem)
}

// Add inserts elem. Adding an element already present is a no-op.
func (set *SortedSet[T]) Add(elem T) {
	set.base.Insert(elem)
}

func (set *SortedSet[T]) AddAll(iter Iterator[T]) {
	iter.Scan(func(elem T) {
		set.base.Insert(elem)
	})
}

// Remove deletes elem, failing loudly with ErrElementNotFound when the set
// does not hold it.
func (set *SortedSet[T]) Remove(elem T) error {
	if !set.base.Contains(elem) {
		return elementError(elem)
	}
	set.base.Delete(elem)
	return nil
}

// Discard deletes elem when present and reports whether it did.
func (set *SortedSet[T]) Discard(elem T) bool {
	if !set.base.Contains(elem) {
		return false
	}
	set.base.Delete(elem)
	return true
}

func (set *SortedSet[T]) Clear() {
	set.base = btree.Set[T]{}
}

func (set *SortedSet[T]) Union(rhs *SortedSet[T]) {
	rhs.base.Scan(func(elem T) bool {
		set.Add(elem)
		return true
	})
}

func (set *SortedSet[T]) Intersect(rhs *SortedSet[T]) {
	toDel := make([]T, 0, set.Len())
	set.base.Scan(func(elem T) bool {
		if !rhs.Contains(elem) {
			toDel = append(toDel, elem)
		}
		return true
	})
	for _, elem := range toDel {
		set.base.Delete(elem)
	}
}

func (set *SortedSet[T]) Subtract(rhs *SortedSet[T]) {
	rhs.base.Scan(func(elem T) bool {
		set.base.Delete(elem)
		return true
	})
}

func (set *SortedSet[T]) Unioned(rhs *SortedSet[T]) *SortedSet[T] {
	result := set.Copy()
	rhs.base.Scan(func(elem T) bool {
		result.Add(elem)
		return true
	})
	return result
}

func (set *SortedSet[T]) Intersected(rhs *SortedSet[T]) *SortedSet[T] {
	result := &SortedSet[T]{}
	set.base.Scan(func(elem T) bool {
		if rhs.Contains(elem) {
			result.Add(elem)
		}
		return true
	})
	return result
}

func (set *SortedSet[T]) Subtracted(rhs *SortedSet[T]) *SortedSet[T] {
	result := &SortedSet[T]{}
	set.base.Scan(func(elem T) bool {
		if !rhs.Contains(elem) {
			result.Add(elem)
		}
		return true
	})
	return result
}

func (set *SortedSet[T]) WithKey(key T, fn func(key T)) int {
	if set.base.Contains(key) {
		fn(key)
		return 1
	}
	return 0
}

// WithKeyRange visits every element with keyLow <= elem <= keyHigh in
// ascending order.
func (set *SortedSet[T]) WithKeyRange(keyLow T, keyHigh T, fn func(key T)) (cnt int) {
	set.base.Ascend(keyLow, func(elem T) bool {
		if elem > keyHigh {
			return false
		}
		fn(elem)
		cnt++
		return true
	})
	return
}

// GetAt returns the element at the given rank in ascending order.
func (set *SortedSet[T]) GetAt(index int) (T, bool) {
	return set.base.GetAt(index)
}
