package container

import (
	"github.com/tidwall/btree"

	"github.com/mizuiro-dev/collection/core/stdext/constraints"
)

var _ = Iterator[Pair[int, int]]((*SortedMap[int, int])(nil))

// SortedMap is a unique-key mapping iterated in key order rather than
// insertion order, backed by a B-tree. It shares the strict/safe access
// split of Dict.
type SortedMap[K constraints.Ordered, V any] struct {
	base btree.Map[K, V]
}

func NewSortedMap[K constraints.Ordered, V any](entries ...Pair[K, V]) *SortedMap[K, V] {
	result := &SortedMap[K, V]{}
	if len(entries) > 0 {
		entryList := List[Pair[K, V]](entries)
		SortBy(entryList, func(lhs, rhs Pair[K, V]) bool { return lhs.First < rhs.First })
		for _, entry := range entryList {
			result.base.Load(entry.First, entry.Second)
		}
	}
	return result
}

func (m *SortedMap[K, V]) ScanIf(fn func(entry Pair[K, V]) bool) {
	m.base.Scan(func(key K, value V) bool {
		return fn(Pair[K, V]{key, value})
	})
}

func (m *SortedMap[K, V]) Scan(fn func(entry Pair[K, V])) {
	m.base.Scan(func(key K, value V) bool {
		fn(Pair[K, V]{key, value})
		return true
	})
}

func (m *SortedMap[K, V]) ScanKVIf(fn func(key K, value V) bool) {
	m.base.Scan(func(key K, value V) bool {
		return fn(key, value)
	})
}

func (m *SortedMap[K, V]) ScanKV(fn func(key K, value V)) {
	m.base.Scan(func(key K, value V) bool {
		fn(key, value)
		return true
	})
}

func (m *SortedMap[K, V]) ScanIKV(fn func(index int, key K, value V)) {
	i := 0
	m.base.Scan(func(key K, value V) bool {
		fn(i, key, value)
		i++
		return true
	})
}

func (m *SortedMap[K, V]) Len() int {
	return m.base.Len()
}

func (m *SortedMap[K, V]) IsEmpty() bool {
	return m.Len() == 0
}

func (m *SortedMap[K, V]) Copy() *SortedMap[K, V] {
	newMap := &SortedMap[K, V]{}
	m.base.Scan(func(key K, value V) bool {
		newMap.base.Load(key, value)
		return true
	})
	return newMap
}

func (m *SortedMap[K, V]) Contains(key K) bool {
	_, ok := m.base.Get(key)
	return ok
}

// Get returns the value bound to key, failing loudly with ErrKeyNotFound
// when absent.
func (m *SortedMap[K, V]) Get(key K) (V, error) {
	v, ok := m.base.Get(key)
	if !ok {
		var zero V
		return zero, keyError(key)
	}
	return v, nil
}

func (m *SortedMap[K, V]) TryGet(key K) (V, bool) {
	return m.base.Get(key)
}

func (m *SortedMap[K, V]) GetOr(key K, def V) V {
	if v, ok := m.base.Get(key); ok {
		return v
	}
	return def
}

// GetAt returns the entry at the given rank in key order.
func (m *SortedMap[K, V]) GetAt(index int) (K, V, bool) {
	return m.base.GetAt(index)
}

func (m *SortedMap[K, V]) Add(key K, value V) {
	m.base.Set(key, value)
}

func (m *SortedMap[K, V]) AddAll(iter Iterator[Pair[K, V]]) {
	iter.Scan(func(entry Pair[K, V]) {
		m.Add(entry.First, entry.Second)
	})
}

// Delete removes key, failing loudly with ErrKeyNotFound when absent.
func (m *SortedMap[K, V]) Delete(key K) error {
	if _, ok := m.base.Delete(key); !ok {
		return keyError(key)
	}
	return nil
}

func (m *SortedMap[K, V]) Discard(key K) bool {
	_, ok := m.base.Delete(key)
	return ok
}

// Pop removes key and returns its value, failing with ErrKeyNotFound when
// absent.
func (m *SortedMap[K, V]) Pop(key K) (V, error) {
	v, ok := m.base.Delete(key)
	if !ok {
		var zero V
		return zero, keyError(key)
	}
	return v, nil
}

func (m *SortedMap[K, V]) PopOr(key K, def V) V {
	if v, ok := m.base.Delete(key); ok {
		return v
	}
	return def
}

func (m *SortedMap[K, V]) RemoveAll(iter Iterator[K]) {
	iter.Scan(func(key K) {
		m.Discard(key)
	})
}

func (m *SortedMap[K, V]) Clear() {
	*m = SortedMap[K, V]{}
}

func (m *SortedMap[K, V]) Keys() List[K] {
	result := make(List[K], 0, m.Len())
	m.ScanKV(func(k K, v V) { result.Add(k) })
	return result
}

func (m *SortedMap[K, V]) Values() List[V] {
	result := make(List[V], 0, m.Len())
	m.ScanKV(func(k K, v V) { result.Add(v) })
	return result
}

func (m *SortedMap[K, V]) WithKey(key K, fn func(key K, value V)) int {
	if v, ok := m.base.Get(key); ok {
		fn(key, v)
		return 1
	}
	return 0
}

// WithKeyRange visits every entry with keyLow <= key <= keyHigh in key
// order, ascending from the low pivot.
func (m *SortedMap[K, V]) WithKeyRange(keyLow K, keyHigh K, fn func(key K, value V)) (cnt int) {
	m.base.Ascend(keyLow, func(key K, value V) bool {
		if key > keyHigh {
			return false
		}
		fn(key, value)
		cnt++
		return true
	})
	return
}
