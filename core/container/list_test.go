package container_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mizuiro-dev/collection/core/container"
)

func TestList(t *testing.T) {
	intList := container.NewList(1, 2, 3, 4)

	resultList := make([]int, 0, intList.Len())
	intList.ScanIf(func(elem int) bool {
		if elem > 2 {
			return false
		}
		resultList = append(resultList, elem)
		return true
	})
	assert.Equal(t, []int{1, 2}, resultList, "ScanIf iterates elements until the predicate fails")

	resultList = resultList[:0]
	intList.Scan(func(elem int) {
		resultList = append(resultList, elem)
	})
	assert.Equal(t, []int{1, 2, 3, 4}, resultList, "Scan iterates all elements")

	assert.True(t, intList.Len() == 4, "The length of the list must match the initializer arguments' length")

	copyList := intList.Copy()
	assert.Equal(t, intList, copyList, "Copy returns a list equal to the origin one")

	copyList.Add(5)
	assert.Equal(t, container.NewList(1, 2, 3, 4, 5), copyList, "Add appends the element at the end")

	copyList = intList.Copy()
	assert.NoError(t, copyList.Insert(1, 5), "Insert at a valid index must not fail")
	assert.Equal(t, container.NewList(1, 5, 2, 3, 4), copyList, "Insert places the element at the index and shifts the rest")

	assert.NoError(t, copyList.Insert(copyList.Len(), 9), "Insert at Len() appends")
	assert.Equal(t, 9, copyList[copyList.Len()-1], "Insert at Len() appends the element at the end")

	err := copyList.Insert(-1, 1)
	assert.ErrorIs(t, err, container.ErrIndexOutOfRange, "Insert at a negative index fails loudly")

	copyList = intList.Copy()
	copyList.Swap(0, 1)
	assert.Equal(t, container.NewList(2, 1, 3, 4), copyList, "Swap exchanges the two elements")

	copyList = intList.Copy()
	assert.NoError(t, copyList.RemoveAt(0), "RemoveAt a valid index must not fail")
	assert.Equal(t, container.NewList(2, 3, 4), copyList, "RemoveAt removes the element at the index")

	assert.ErrorIs(t, copyList.RemoveAt(10), container.ErrIndexOutOfRange, "RemoveAt an out-of-range index fails loudly")

	copyList = intList.Copy()
	copyList.Clear()
	assert.Emptyf(t, copyList, "Clear removes all elements")

	copyList = intList.Copy()
	copyList.Shuffle()
	assert.ElementsMatchf(t, intList, copyList, "Shuffle keeps the same elements")

	copyList = intList.Copy()
	newList := copyList.Shuffled()
	assert.ElementsMatchf(t, copyList, newList, "Shuffled keeps the same elements")
	assert.Equal(t, intList, copyList, "Shuffled does not change the origin")

	assert.Truef(t, container.ListContains(intList, 1), "Check element in list")
	assert.Truef(t, !container.ListContains(intList, 20), "Check element not in list")

	assert.Truef(t, container.ListBinaryContains(intList, 1), "Binary contains check element in list")
	assert.Truef(t, !container.ListBinaryContains(intList, 10), "Binary contains check element not in list")

	assert.Truef(t, container.ListBinarySearch(intList, 1) == 0, "search element in list")
	assert.Truef(t, container.ListBinarySearch(intList, 10) == -1, "search element not in list")
}

func TestListIndexAccess(t *testing.T) {
	list := container.NewList("a", "b", "c")

	v, err := list.At(1)
	assert.NoError(t, err, "At with a valid index must not fail")
	assert.Equal(t, "b", v, "At returns the element at the index")

	_, err = list.At(3)
	assert.ErrorIs(t, err, container.ErrIndexOutOfRange, "At past the end fails loudly")
	_, err = list.At(-1)
	assert.ErrorIs(t, err, container.ErrIndexOutOfRange, "At with a negative index fails loudly")

	assert.Equal(t, "c", list.GetOr(2, "zz"), "GetOr returns the element when the index is valid")
	assert.Equal(t, "zz", list.GetOr(9, "zz"), "GetOr returns the fallback instead of failing")

	assert.NoError(t, list.SetAt(0, "x"), "SetAt with a valid index must not fail")
	assert.Equal(t, "x", list[0], "SetAt assigns the element in place")
	assert.ErrorIs(t, list.SetAt(5, "y"), container.ErrIndexOutOfRange, "SetAt past the end fails loudly")
}

func TestListRemoveValue(t *testing.T) {
	list := container.NewList("apple", "banana", "apple", "cherry")

	assert.NoError(t, container.ListRemoveValue(&list, "banana"), "removing a present value must not fail")
	assert.Equal(t, container.NewList("apple", "apple", "cherry"), list, "only the first occurrence is removed")

	err := container.ListRemoveValue(&list, "grape")
	assert.ErrorIs(t, err, container.ErrValueNotFound, "removing an absent value fails loudly")
	assert.True(t, errors.Is(err, container.ErrValueNotFound), "the failure is matchable with errors.Is")

	removed := container.ListRemoveAll(&list, "apple")
	assert.Equal(t, 2, removed, "ListRemoveAll reports how many elements were removed")
	assert.Equal(t, container.NewList("cherry"), list, "ListRemoveAll removes every occurrence")
	assert.Equal(t, 0, container.ListRemoveAll(&list, "apple"), "ListRemoveAll never fails on an absent value")
}

func TestListAppendInsertOrder(t *testing.T) {
	fruits := container.NewList("apple", "banana", "cherry")

	fruits.Add("date")
	assert.NoError(t, fruits.Insert(1, "mango"))
	assert.Equal(
		t,
		container.NewList("apple", "mango", "banana", "cherry", "date"),
		fruits,
		"append then positional insert must yield the documented order",
	)
}

func TestListReverse(t *testing.T) {
	list := container.NewList(1, 2, 3, 4)

	reversed := list.Reversed()
	assert.Equal(t, container.NewList(4, 3, 2, 1), reversed, "Reversed returns the reversed copy")
	assert.Equal(t, container.NewList(1, 2, 3, 4), list, "Reversed does not change the origin")

	list.Reverse()
	assert.Equal(t, container.NewList(4, 3, 2, 1), list, "Reverse reverses in place")

	odd := container.NewList(1, 2, 3)
	odd.Reverse()
	assert.Equal(t, container.NewList(3, 2, 1), odd, "Reverse handles odd lengths")
}

func TestSort(t *testing.T) {
	intList := container.NewList(3, 1, 4, 2)
	resultList := container.NewList(1, 2, 3, 4)

	container.SortBy(intList, func(lhs, rhs int) bool {
		return lhs < rhs
	})
	assert.Equal(t, resultList, intList, "SortBy sorts in place with the comparator")

	intList = container.NewList(3, 1, 4, 2)
	container.Sort(intList)
	assert.Equal(t, resultList, intList, "Sort sorts in place ascending")

	intList = container.NewList(3, 1, 4, 2)
	sortedList := container.Sorted(intList)
	assert.Equal(t, resultList, sortedList, "Sorted returns a sorted copy")
	assert.NotEqual(t, sortedList, intList, "Sorted does not change the origin")

	type object struct {
		index int
		value string
	}

	objList := container.NewList(
		object{1, "a"},
		object{2, "b"},
		object{4, "d"},
		object{1, "c"},
		object{1, "d"},
		object{1, "f"},
	)

	oldObjList := objList.Copy()

	newSortedList := container.SortedStableBy(objList, func(lhs, rhs object) bool {
		return lhs.index < rhs.index
	})
	assert.ElementsMatchf(t, oldObjList, newSortedList, "stable sorting keeps the same elements")

	for i := 0; i < 10; i++ {
		sortedList := container.SortedStableBy(objList, func(lhs, rhs object) bool {
			return lhs.index < rhs.index
		})
		assert.Equal(t, newSortedList, sortedList, "stable sorting yields the same result every run")
	}
}
