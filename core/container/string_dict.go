package container

import (
	"strings"
)

// CaseInsensitiveDict maps string keys case-insensitively while preserving
// the caller's original key spelling and insertion order. Re-adding a key
// under a different casing overwrites the old binding in place, keeps its
// insertion position, and remembers the new spelling.
type CaseInsensitiveDict[V any] struct {
	foldToValue *Dict[string, V]
	foldToKey   *Dict[string, string]
}

func NewCaseInsensitiveDict[V any]() *CaseInsensitiveDict[V] {
	return &CaseInsensitiveDict[V]{
		foldToValue: NewDict[string, V](),
		foldToKey:   NewDict[string, string](),
	}
}

func (dict *CaseInsensitiveDict[V]) Len() int {
	return dict.foldToValue.Len()
}

func (dict *CaseInsensitiveDict[V]) Contains(key string) bool {
	return dict.foldToValue.Contains(strings.ToUpper(key))
}

// Get returns the value bound to key under any casing, failing loudly with
// ErrKeyNotFound when absent.
func (dict *CaseInsensitiveDict[V]) Get(key string) (V, error) {
	if v, ok := dict.TryGet(key); ok {
		return v, nil
	}
	var zero V
	return zero, keyError(key)
}

func (dict *CaseInsensitiveDict[V]) TryGet(key string) (V, bool) {
	return dict.foldToValue.TryGet(strings.ToUpper(key))
}

func (dict *CaseInsensitiveDict[V]) GetOr(key string, def V) V {
	if v, ok := dict.TryGet(key); ok {
		return v
	}
	return def
}

func (dict *CaseInsensitiveDict[V]) Add(key string, value V) {
	foldedKey := strings.ToUpper(key)
	dict.foldToValue.Add(foldedKey, value)
	dict.foldToKey.Add(foldedKey, key)
}

// Delete removes the binding for key under any casing, failing loudly with
// ErrKeyNotFound when absent.
func (dict *CaseInsensitiveDict[V]) Delete(key string) error {
	if !dict.Discard(key) {
		return keyError(key)
	}
	return nil
}

func (dict *CaseInsensitiveDict[V]) Discard(key string) bool {
	foldedKey := strings.ToUpper(key)
	dict.foldToKey.Discard(foldedKey)
	return dict.foldToValue.Discard(foldedKey)
}

// Scan visits entries with their latest key spelling in insertion order.
func (dict *CaseInsensitiveDict[V]) Scan(fn func(key string, value V)) {
	dict.foldToValue.ScanKV(func(foldedKey string, value V) {
		fn(dict.foldToKey.GetOr(foldedKey, foldedKey), value)
	})
}

func (dict *CaseInsensitiveDict[V]) Keys() List[string] {
	keys := make(List[string], 0, dict.Len())
	dict.foldToValue.order.Scan(func(foldedKey string) {
		keys.Add(dict.foldToKey.GetOr(foldedKey, foldedKey))
	})
	return keys
}

// ToDict copies the entries into a plain insertion-ordered Dict keyed by
// the latest spellings.
func (dict *CaseInsensitiveDict[V]) ToDict() *Dict[string, V] {
	result := NewDict[string, V]()
	dict.Scan(func(key string, value V) {
		result.Add(key, value)
	})
	return result
}
