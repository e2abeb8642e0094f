package container

import (
	assert "github.com/arl/assertgo"
)

var _ = Iterator[Pair[int, struct{}]]((*Dict[int, struct{}])(nil))

// Dict is a mapping with unique keys and insertion-order iteration. Adding
// an existing key overwrites its value but keeps the key's original
// position; a removed key re-added later moves to the end. The comparable
// constraint is the hashable-key requirement: a slice-keyed Dict does not
// compile, while a Pair or Tuple4 of comparable fields is a valid key.
type Dict[K comparable, V any] struct {
	values map[K]V
	order  List[K]
}

func NewDict[K comparable, V any](entries ...Pair[K, V]) *Dict[K, V] {
	result := &Dict[K, V]{values: map[K]V{}}
	// Duplicate keys among the entries follow last-write-wins: one entry
	// results, holding the last specified value.
	for _, entry := range entries {
		result.Add(entry.First, entry.Second)
	}
	return result
}

func (dict *Dict[K, V]) ScanIf(fn func(entry Pair[K, V]) bool) {
	for _, k := range dict.order {
		if !fn(Pair[K, V]{k, dict.values[k]}) {
			break
		}
	}
}

func (dict *Dict[K, V]) Scan(fn func(entry Pair[K, V])) {
	for _, k := range dict.order {
		fn(Pair[K, V]{k, dict.values[k]})
	}
}

func (dict *Dict[K, V]) ScanKVIf(fn func(key K, value V) bool) {
	for _, k := range dict.order {
		if !fn(k, dict.values[k]) {
			break
		}
	}
}

func (dict *Dict[K, V]) ScanKV(fn func(key K, value V)) {
	for _, k := range dict.order {
		fn(k, dict.values[k])
	}
}

func (dict *Dict[K, V]) ScanIKV(fn func(index int, key K, value V)) {
	for i, k := range dict.order {
		fn(i, k, dict.values[k])
	}
}

func (dict *Dict[K, V]) Len() int {
	return len(dict.values)
}

func (dict *Dict[K, V]) IsEmpty() bool {
	return dict.Len() == 0
}

func (dict *Dict[K, V]) Copy() *Dict[K, V] {
	newDict := NewDict[K, V]()
	dict.ScanKV(func(k K, v V) {
		newDict.Add(k, v)
	})
	return newDict
}

func (dict *Dict[K, V]) Contains(key K) bool {
	_, ok := dict.values[key]
	return ok
}

// Get returns the value bound to key, failing loudly with ErrKeyNotFound
// when the key is absent.
func (dict *Dict[K, V]) Get(key K) (V, error) {
	v, ok := dict.values[key]
	if !ok {
		var zero V
		return zero, keyError(key)
	}
	return v, nil
}

// TryGet returns the value bound to key and whether the key was present.
func (dict *Dict[K, V]) TryGet(key K) (V, bool) {
	v, ok := dict.values[key]
	return v, ok
}

// GetOr returns the value bound to key, or def when the key is absent. It
// never fails.
func (dict *Dict[K, V]) GetOr(key K, def V) V {
	if v, ok := dict.values[key]; ok {
		return v
	}
	return def
}

// Add binds key to value, overwriting any prior binding. An overwritten
// key keeps its original insertion position.
func (dict *Dict[K, V]) Add(key K, value V) {
	if dict.values == nil {
		dict.values = map[K]V{}
	}
	if _, ok := dict.values[key]; !ok {
		dict.order.Add(key)
	}
	dict.values[key] = value
	dict.checkConsistency()
}

func (dict *Dict[K, V]) AddAll(iter Iterator[Pair[K, V]]) {
	iter.Scan(func(entry Pair[K, V]) {
		dict.Add(entry.First, entry.Second)
	})
}

// Delete removes key, failing loudly with ErrKeyNotFound when absent.
func (dict *Dict[K, V]) Delete(key K) error {
	if !dict.Contains(key) {
		return keyError(key)
	}
	dict.remove(key)
	return nil
}

// Discard removes key when present and reports whether it did. It never
// fails.
func (dict *Dict[K, V]) Discard(key K) bool {
	if !dict.Contains(key) {
		return false
	}
	dict.remove(key)
	return true
}

// Pop removes key and returns the value it was bound to, failing with
// ErrKeyNotFound when absent.
func (dict *Dict[K, V]) Pop(key K) (V, error) {
	v, ok := dict.values[key]
	if !ok {
		var zero V
		return zero, keyError(key)
	}
	dict.remove(key)
	return v, nil
}

// PopOr removes key and returns its value, or def when the key is absent.
func (dict *Dict[K, V]) PopOr(key K, def V) V {
	v, ok := dict.values[key]
	if !ok {
		return def
	}
	dict.remove(key)
	return v
}

func (dict *Dict[K, V]) RemoveAll(iter Iterator[K]) {
	iter.Scan(func(key K) {
		dict.Discard(key)
	})
}

func (dict *Dict[K, V]) Clear() {
	dict.values = map[K]V{}
	dict.order.Clear()
}

// Keys returns the keys in insertion order.
func (dict *Dict[K, V]) Keys() List[K] {
	return dict.order.Copy()
}

// Values returns the values in insertion order of their keys.
func (dict *Dict[K, V]) Values() List[V] {
	result := make(List[V], 0, dict.Len())
	dict.ScanKV(func(k K, v V) { result.Add(v) })
	return result
}

func (dict *Dict[K, V]) WithKey(key K, fn func(key K, value V)) int {
	if v, ok := dict.values[key]; ok {
		fn(key, v)
		return 1
	}
	return 0
}

func (dict *Dict[K, V]) remove(key K) {
	delete(dict.values, key)
	if idx := ListSearch(dict.order, key); idx != -1 {
		_ = dict.order.RemoveAt(idx)
	}
	dict.checkConsistency()
}

// The value map and the order list must always describe the same key set.
func (dict *Dict[K, V]) checkConsistency() {
	assert.True(len(dict.values) == dict.order.Len())
}
