package container

var _ = Iterator[struct{}]((Set[struct{}])(nil))

// Set is an unordered collection of unique elements. Construction and Add
// silently deduplicate; iteration order is unspecified and elements are
// not index-addressable.
type Set[T comparable] map[T]struct{}

func NewSet[T comparable](args ...T) Set[T] {
	var set = Set[T]{}
	for _, arg := range args {
		set[arg] = struct{}{}
	}
	return set
}

func (set Set[T]) ScanIf(fn func(elem T) bool) {
	for k := range set {
		if !fn(k) {
			break
		}
	}
}

func (set Set[T]) Scan(fn func(elem T)) {
	for k := range set {
		fn(k)
	}
}

func (set Set[T]) Len() int {
	return len(set)
}

func (set Set[T]) IsEmpty() bool {
	return set.Len() == 0
}

func (set Set[T]) Copy() Set[T] {
	newSet := Set[T]{}
	for k := range set {
		newSet[k] = struct{}{}
	}
	return newSet
}

func (set Set[T]) Contains(elem T) bool {
	_, ok := set[elem]
	return ok
}

// Add inserts elem. Adding an element already present is a no-op.
func (set Set[T]) Add(elem T) {
	set[elem] = struct{}{}
}

func (set Set[T]) AddAll(iter Iterator[T]) {
	iter.Scan(func(elem T) {
		set[elem] = struct{}{}
	})
}

// Remove deletes elem, failing loudly with ErrElementNotFound when the set
// does not hold it.
func (set Set[T]) Remove(elem T) error {
	if !set.Contains(elem) {
		return elementError(elem)
	}
	delete(set, elem)
	return nil
}

// Discard deletes elem when present and reports whether it did. It never
// fails.
func (set Set[T]) Discard(elem T) bool {
	if !set.Contains(elem) {
		return false
	}
	delete(set, elem)
	return true
}

func (set *Set[T]) Clear() {
	*set = Set[T]{}
}

// Union adds every element of iter to the set in place.
func (set Set[T]) Union(iter Iterator[T]) {
	iter.Scan(func(elem T) {
		set[elem] = struct{}{}
	})
}

// Intersect drops every element not present in iter, in place.
func (set Set[T]) Intersect(iter Iterator[T]) {
	toDel := make([]T, 0, set.Len())
	rhs := SetOf(iter)
	for key := range set {
		if _, ok := rhs[key]; !ok {
			toDel = append(toDel, key)
		}
	}
	for _, elem := range toDel {
		delete(set, elem)
	}
}

// Subtract drops every element present in iter, in place.
func (set Set[T]) Subtract(iter Iterator[T]) {
	iter.Scan(func(key T) {
		delete(set, key)
	})
}

func (set Set[T]) SubtractBy(pred func(T) bool) {
	for key := range set {
		if pred(key) {
			delete(set, key)
		}
	}
}

// Unioned returns a new set holding every element of either operand. Both
// operands are left unmodified.
func (set Set[T]) Unioned(iter Iterator[T]) Set[T] {
	var result = Set[T]{}
	for key := range set {
		result[key] = struct{}{}
	}
	iter.Scan(func(key T) {
		result[key] = struct{}{}
	})
	return result
}

// Intersected returns a new set holding the elements present in both
// operands, leaving both unmodified.
func (set Set[T]) Intersected(iter Iterator[T]) Set[T] {
	var result = Set[T]{}
	rhs := SetOf(iter)
	for key := range set {
		if _, ok := rhs[key]; ok {
			result.Add(key)
		}
	}
	return result
}

// Subtracted returns a new set holding the elements of the receiver absent
// from iter, leaving both operands unmodified.
func (set Set[T]) Subtracted(iter Iterator[T]) Set[T] {
	var result = Set[T]{}
	rhs := SetOf(iter)
	for key := range set {
		if _, ok := rhs[key]; !ok {
			result.Add(key)
		}
	}
	return result
}

func (set Set[T]) SubtractedBy(pred func(T) bool) Set[T] {
	var result = Set[T]{}
	for key := range set {
		if !pred(key) {
			result.Add(key)
		}
	}
	return result
}

func (set Set[T]) WithKey(key T, fn func(key T)) int {
	if _, ok := set[key]; ok {
		fn(key)
		return 1
	}
	return 0
}
