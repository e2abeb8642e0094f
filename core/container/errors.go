package container

import "fmt"

var (
	ErrIndexOutOfRange = fmt.Errorf("index out of range")
	ErrKeyNotFound     = fmt.Errorf("key not found")
	ErrValueNotFound   = fmt.Errorf("value not found")
	ErrElementNotFound = fmt.Errorf("element not found")
	ErrArityMismatch   = fmt.Errorf("arity mismatch")
	ErrEmptyContainer  = fmt.Errorf("empty container")
)

func indexError(index int, length int) error {
	return fmt.Errorf("%w: index %v with length %v", ErrIndexOutOfRange, index, length)
}

func keyError[K comparable](key K) error {
	return fmt.Errorf("%w: key %v", ErrKeyNotFound, key)
}

func valueError[T comparable](elem T) error {
	return fmt.Errorf("%w: value %v", ErrValueNotFound, elem)
}

func elementError[T comparable](elem T) error {
	return fmt.Errorf("%w: element %v", ErrElementNotFound, elem)
}

func arityError(want int, got int) error {
	return fmt.Errorf("%w: want %v elements, got %v", ErrArityMismatch, want, got)
}
