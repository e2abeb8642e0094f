package container

var _ = Iterator[struct{}](Tuple[struct{}]{})

// Tuple is an ordered immutable sequence permitting duplicates. The backing
// storage is unexported and copied on construction, so a Tuple can never be
// mutated after NewTuple returns; there are no assignment or removal
// operations. A one-element tuple is written NewTuple(v); the explicit
// constructor call marks the arity, so it is never ambiguous with a
// bare value.
type Tuple[T any] struct {
	elems []T
}

func NewTuple[T any](args ...T) Tuple[T] {
	elems := make([]T, len(args))
	copy(elems, args)
	return Tuple[T]{elems: elems}
}

func (tuple Tuple[T]) ScanIf(fn func(elem T) bool) {
	for _, v := range tuple.elems {
		if !fn(v) {
			break
		}
	}
}

func (tuple Tuple[T]) Scan(fn func(elem T)) {
	for _, v := range tuple.elems {
		fn(v)
	}
}

func (tuple Tuple[T]) ScanIV(fn func(index int, elem T)) {
	for i, v := range tuple.elems {
		fn(i, v)
	}
}

func (tuple Tuple[T]) Len() int {
	return len(tuple.elems)
}

func (tuple Tuple[T]) IsEmpty() bool {
	return tuple.Len() == 0
}

// At returns the element at index, failing loudly when index is out of
// range.
func (tuple Tuple[T]) At(index int) (T, error) {
	if index < 0 || index >= tuple.Len() {
		var zero T
		return zero, indexError(index, tuple.Len())
	}
	return tuple.elems[index], nil
}

// GetOr returns the element at index, or def when index is out of range.
func (tuple Tuple[T]) GetOr(index int, def T) T {
	if index < 0 || index >= tuple.Len() {
		return def
	}
	return tuple.elems[index]
}

// ToList copies the elements into a fresh mutable List.
func (tuple Tuple[T]) ToList() List[T] {
	return NewList(tuple.elems...)
}

// Unpack2 destructures a 2-tuple into its bindings. The tuple length must
// match the requested arity exactly.
func (tuple Tuple[T]) Unpack2() (T, T, error) {
	if tuple.Len() != 2 {
		var zero T
		return zero, zero, arityError(2, tuple.Len())
	}
	return tuple.elems[0], tuple.elems[1], nil
}

// Unpack3 destructures a 3-tuple into its bindings.
func (tuple Tuple[T]) Unpack3() (T, T, T, error) {
	if tuple.Len() != 3 {
		var zero T
		return zero, zero, zero, arityError(3, tuple.Len())
	}
	return tuple.elems[0], tuple.elems[1], tuple.elems[2], nil
}

// Unpack4 destructures a 4-tuple into its bindings.
func (tuple Tuple[T]) Unpack4() (T, T, T, T, error) {
	if tuple.Len() != 4 {
		var zero T
		return zero, zero, zero, zero, arityError(4, tuple.Len())
	}
	return tuple.elems[0], tuple.elems[1], tuple.elems[2], tuple.elems[3], nil
}

func TupleSearch[T comparable](tuple Tuple[T], elem T) int {
	for idx, value := range tuple.elems {
		if value == elem {
			return idx
		}
	}
	return -1
}

func TupleContains[T comparable](tuple Tuple[T], elem T) bool {
	return TupleSearch(tuple, elem) != -1
}

// Fixed-arity tuples. A Pair of comparable fields is itself comparable, so
// it is valid as a Dict key or Set element.

type Pair[T, U any] struct {
	First  T
	Second U
}

func (p Pair[T, U]) Unpack() (T, U) {
	return p.First, p.Second
}

type Triple[T, U, V any] struct {
	First  T
	Second U
	Third  V
}

func (t Triple[T, U, V]) Unpack() (T, U, V) {
	return t.First, t.Second, t.Third
}

type Tuple4[T0, T1, T2, T3 any] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
}

func (t Tuple4[T0, T1, T2, T3]) Unpack() (T0, T1, T2, T3) {
	return t.V0, t.V1, t.V2, t.V3
}

type Tuple5[T0, T1, T2, T3, T4 any] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
	V4 T4
}

func (t Tuple5[T0, T1, T2, T3, T4]) Unpack() (T0, T1, T2, T3, T4) {
	return t.V0, t.V1, t.V2, t.V3, t.V4
}
