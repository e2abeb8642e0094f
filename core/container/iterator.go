package container

import (
	"github.com/mizuiro-dev/collection/core/stdext/constraints"
)

// Iterator is the traversal contract every container kind implements.
// Containers nest arbitrarily (list-of-lists, dict-of-lists,
// dict-of-dicts); the helpers below compose over any of them.
type Iterator[T any] interface {
	ScanIf(fn func(elem T) bool)
	Scan(fn func(elem T))
	Len() int
}

func Any[T any](iter Iterator[T], fn func(elem T) bool) bool {
	result := false
	iter.ScanIf(func(elem T) bool {
		if fn(elem) {
			result = true
			return false
		}
		return true
	})
	return result
}

func All[T any](iter Iterator[T], fn func(elem T) bool) bool {
	result := true
	iter.ScanIf(func(elem T) bool {
		if !fn(elem) {
			result = false
			return false
		}
		return true
	})
	return result
}

func ScanWithIndex[T any](iter Iterator[T], fn func(index int, elem T)) {
	var i int
	iter.Scan(func(elem T) {
		fn(i, elem)
		i++
	})
}

func ScanIfWithIndex[T any](iter Iterator[T], fn func(index int, elem T) bool) {
	var i int
	iter.ScanIf(func(elem T) bool {
		if !fn(i, elem) {
			return false
		}
		i++
		return true
	})
}

func Fold[T, U any](iter Iterator[T], init U, fn func(acc U, elem T) U) U {
	var acc = init
	iter.Scan(func(elem T) {
		acc = fn(acc, elem)
	})
	return acc
}

func Trans[T, U any](iter Iterator[T], fn func(elem T) U) List[U] {
	list := make(List[U], 0, max(iter.Len(), 4))
	iter.Scan(func(elem T) {
		list.Add(fn(elem))
	})
	return list
}

func Filter[T any](iter Iterator[T], fn func(elem T) bool) List[T] {
	list := make(List[T], 0, max(iter.Len(), 4))
	return Fold(iter, list, func(acc List[T], elem T) List[T] {
		if fn(elem) {
			acc.Add(elem)
		}
		return acc
	})
}

func FlatTrans[T, U any](iter Iterator[T], fn func(elem T) Iterator[U]) List[U] {
	list := make(List[U], 0, max(iter.Len(), 4))
	return Fold(iter, list, func(acc List[U], elemRaw T) List[U] {
		fn(elemRaw).Scan(func(elem U) {
			acc.Add(elem)
		})
		return acc
	})
}

// GroupBy buckets elements into a Dict keyed by keyFn; groups appear in
// first-seen order.
func GroupBy[T any, U comparable, V any](iter Iterator[T], keyFn func(T) U, valueFn func(T) V) *Dict[U, List[V]] {
	dict := NewDict[U, List[V]]()
	iter.Scan(func(elem T) {
		key := keyFn(elem)
		if group, ok := dict.TryGet(key); ok {
			group.Add(valueFn(elem))
			dict.Add(key, group)
		} else {
			dict.Add(key, List[V]{valueFn(elem)})
		}
	})
	return dict
}

func Zip[T, U any](iterA Iterator[T], iterB Iterator[U]) List[Pair[T, U]] {
	list := ListOf(iterA)
	result := make(List[Pair[T, U]], 0, list.Len())
	ScanIfWithIndex(iterB, func(index int, elem U) bool {
		if index >= list.Len() {
			return false
		}

		result.Add(Pair[T, U]{list[index], elem})
		return true
	})
	return result
}

func MaxBy[T any](iter Iterator[T], less func(lhs, rhs T) bool) (result T, ok bool) {
	iter.Scan(func(elem T) {
		if !ok || less(result, elem) {
			result = elem
			ok = true
		}
	})
	return
}

func MaxOf[T constraints.Ordered](iter Iterator[T]) (T, bool) {
	return MaxBy(iter, func(lhs, rhs T) bool { return lhs < rhs })
}

func MinOf[T constraints.Ordered](iter Iterator[T]) (T, bool) {
	return MaxBy(iter, func(lhs, rhs T) bool { return lhs > rhs })
}

func ListOf[T any](iter Iterator[T]) List[T] {
	list := make(List[T], 0, max(iter.Len(), 4))
	iter.Scan(func(elem T) {
		list.Add(elem)
	})
	return list
}

func TupleOf[T any](iter Iterator[T]) Tuple[T] {
	return Tuple[T]{elems: ListOf(iter)}
}

func SetOf[T comparable](iter Iterator[T]) Set[T] {
	set := Set[T]{}
	iter.Scan(func(elem T) {
		set.Add(elem)
	})
	return set
}

func SortedSetOf[T constraints.Ordered](iter Iterator[T]) *SortedSet[T] {
	set := &SortedSet[T]{}
	iter.Scan(func(elem T) {
		set.Add(elem)
	})
	return set
}

func DictOf[K comparable, V any](iter Iterator[Pair[K, V]]) *Dict[K, V] {
	dict := NewDict[K, V]()
	iter.Scan(func(pair Pair[K, V]) {
		dict.Add(pair.First, pair.Second)
	})
	return dict
}

func SortedMapOf[K constraints.Ordered, V any](iter Iterator[Pair[K, V]]) *SortedMap[K, V] {
	m := &SortedMap[K, V]{}
	iter.Scan(func(pair Pair[K, V]) {
		m.Add(pair.First, pair.Second)
	})
	return m
}

func DictBy[K comparable, V any](iter Iterator[K], fn func(key K) V) *Dict[K, V] {
	dict := NewDict[K, V]()
	iter.Scan(func(key K) {
		dict.Add(key, fn(key))
	})
	return dict
}

func SortedMapBy[K constraints.Ordered, V any](iter Iterator[K], fn func(key K) V) *SortedMap[K, V] {
	m := &SortedMap[K, V]{}
	iter.Scan(func(key K) {
		m.Add(key, fn(key))
	})
	return m
}
