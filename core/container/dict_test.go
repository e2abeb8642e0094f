package container_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mizuiro-dev/collection/core/container"
)

func TestDict(t *testing.T) {
	dict := container.NewDict(
		container.Pair[int, string]{1, "ab"},
		container.Pair[int, string]{2, "ac"},
		container.Pair[int, string]{3, "ad"},
		container.Pair[int, string]{4, "af"},
	)

	isAllContains := true
	dict.ScanIf(func(entry container.Pair[int, string]) bool {
		if !strings.Contains(entry.Second, "a") {
			isAllContains = false
			return false
		}
		return true
	})
	assert.True(t, isAllContains, "ScanIf can scan all elements that satisfy the predicate")

	newDict := container.NewDict[int, string]()
	dict.Scan(func(entry container.Pair[int, string]) {
		newDict.Add(entry.First, entry.Second)
	})
	assert.Equal(t, dict, newDict, "Scan iterates all entries")

	newDict = container.NewDict[int, string]()
	dict.ScanKV(func(key int, value string) {
		newDict.Add(key, value)
	})
	assert.Equal(t, dict, newDict, "ScanKV iterates all entries")

	assert.True(t, dict.Len() == 4, "The length of the dict must match the initializer arguments' length")

	newDict = container.NewDict[int, string]()
	newDict.AddAll(dict)
	assert.Equal(t, dict, newDict, "Give an empty dict and add all entries as specified")

	resultDict := container.NewDict(
		container.Pair[int, string]{2, "ac"},
		container.Pair[int, string]{3, "ad"},
		container.Pair[int, string]{4, "af"},
	)
	assert.NoError(t, newDict.Delete(1), "Delete of a present key must not fail")
	assert.Equal(t, resultDict, newDict, "Delete removes exactly the given key")

	newDict = dict.Copy()
	newDict.RemoveAll(dict.Keys())
	assert.True(t, newDict.IsEmpty(), "RemoveAll with every key empties the dict")

	assert.Equal(t, container.NewList(1, 2, 3, 4), dict.Keys(), "Keys returns the keys in insertion order")
	assert.Equal(t, container.NewList("ab", "ac", "ad", "af"), dict.Values(), "Values follows the key order")

	newDict = dict.Copy()
	newDict.Clear()
	assert.True(t, newDict.IsEmpty(), "Clear empties the dict")

	foundInner := false
	dict.WithKey(1, func(key int, val string) {
		foundInner = key == 1 && val == "ab"
	})
	assert.True(t, foundInner, "WithKey visits the entry when the key is present")
	assert.True(t, dict.WithKey(99, func(int, string) {}) == 0, "WithKey reports zero visits for an absent key")
}

func TestDictDuplicateKeyLastWins(t *testing.T) {
	dict := container.NewDict(
		container.Pair[string, string]{"name", "Alice"},
		container.Pair[string, string]{"age", "25"},
		container.Pair[string, string]{"name", "Bob"},
	)

	assert.Equal(t, 2, dict.Len(), "a duplicate key among the entries yields exactly one entry")
	assert.Equal(t, "Bob", dict.GetOr("name", ""), "the last specified value wins")
	assert.Equal(t, container.NewList("name", "age"), dict.Keys(), "the duplicate keeps its first position")
}

func TestDictInsertionOrder(t *testing.T) {
	dict := container.NewDict[string, int]()
	dict.Add("banana", 2)
	dict.Add("apple", 1)
	dict.Add("cherry", 3)

	assert.Equal(t, container.NewList("banana", "apple", "cherry"), dict.Keys(),
		"iteration follows insertion order, not key order")

	dict.Add("apple", 10)
	assert.Equal(t, container.NewList("banana", "apple", "cherry"), dict.Keys(),
		"overwriting a key keeps its original position")
	assert.Equal(t, 10, dict.GetOr("apple", 0), "overwriting a key replaces its value")

	assert.True(t, dict.Discard("banana"), "Discard removes a present key")
	dict.Add("banana", 20)
	assert.Equal(t, container.NewList("apple", "cherry", "banana"), dict.Keys(),
		"a removed key re-added later moves to the end")

	entries := container.NewList[container.Pair[string, int]]()
	dict.Scan(func(entry container.Pair[string, int]) {
		entries.Add(entry)
	})
	assert.Equal(t, container.NewList(
		container.Pair[string, int]{"apple", 10},
		container.Pair[string, int]{"cherry", 3},
		container.Pair[string, int]{"banana", 20},
	), entries, "Scan yields (key, value) pairs in insertion order")

	indices := container.NewList[int]()
	dict.ScanIKV(func(index int, key string, value int) {
		indices.Add(index)
	})
	assert.Equal(t, container.NewList(0, 1, 2), indices, "ScanIKV counts entries from zero in order")
}

func TestDictStrictAndSafeAccess(t *testing.T) {
	dict := container.NewDict(
		container.Pair[string, string]{"name", "Alice"},
	)

	v, err := dict.Get("name")
	assert.NoError(t, err, "Get of a present key must not fail")
	assert.Equal(t, "Alice", v)

	_, err = dict.Get("email")
	assert.ErrorIs(t, err, container.ErrKeyNotFound, "Get of an absent key fails loudly")

	assert.Equal(t, "unknown", dict.GetOr("email", "unknown"),
		"GetOr returns the supplied default instead of failing")

	v, ok := dict.TryGet("name")
	assert.True(t, ok)
	assert.Equal(t, "Alice", v, "TryGet reports presence alongside the value")
	_, ok = dict.TryGet("email")
	assert.False(t, ok, "TryGet reports absence without failing")

	assert.ErrorIs(t, dict.Delete("email"), container.ErrKeyNotFound, "Delete of an absent key fails loudly")
	assert.False(t, dict.Discard("email"), "Discard of an absent key is a no-op")

	popped, err := dict.Pop("name")
	assert.NoError(t, err, "Pop of a present key must not fail")
	assert.Equal(t, "Alice", popped, "Pop returns the removed value")
	assert.False(t, dict.Contains("name"), "Pop removes the entry")

	_, err = dict.Pop("name")
	assert.ErrorIs(t, err, container.ErrKeyNotFound, "Pop of an absent key fails loudly")
	assert.Equal(t, "fallback", dict.PopOr("name", "fallback"), "PopOr returns the default instead of failing")
}

func TestDictNesting(t *testing.T) {
	// dict-of-lists and dict-of-dicts, accessed by chained lookups.
	inventory := container.NewDict[string, container.List[string]]()
	inventory.Add("fruits", container.NewList("apple", "banana"))
	inventory.Add("nuts", container.NewList("almond"))

	fruits, err := inventory.Get("fruits")
	assert.NoError(t, err)
	second, err := fruits.At(1)
	assert.NoError(t, err)
	assert.Equal(t, "banana", second, "chained lookup through dict then list")

	profiles := container.NewDict[string, *container.Dict[string, string]]()
	profiles.Add("alice", container.NewDict(
		container.Pair[string, string]{"city", "Sapporo"},
	))

	alice, err := profiles.Get("alice")
	assert.NoError(t, err)
	city, err := alice.Get("city")
	assert.NoError(t, err)
	assert.Equal(t, "Sapporo", city, "chained lookup through nested dicts")

	_, err = alice.Get("country")
	assert.ErrorIs(t, err, container.ErrKeyNotFound, "the inner dict keeps its loud failure semantics")
}
