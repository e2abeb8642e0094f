package container

import (
	"encoding/json"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	stripjsoncomments "github.com/trapcodeio/go-strip-json-comments"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	_ = json.Marshaler((*Dict[string, any])(nil))
	_ = json.Unmarshaler((*Dict[string, any])(nil))
	_ = json.Marshaler(Set[string]{})
	_ = json.Marshaler(Tuple[any]{})
)

// MarshalJSON encodes the dict as a JSON object with fields in insertion
// order. Non-string keys are rendered with their value syntax (object keys
// must be strings in JSON).
func (dict *Dict[K, V]) MarshalJSON() ([]byte, error) {
	stream := jsonAPI.BorrowStream(nil)
	defer jsonAPI.ReturnStream(stream)

	stream.WriteObjectStart()
	first := true
	dict.ScanKV(func(k K, v V) {
		if !first {
			stream.WriteMore()
		}
		first = false
		stream.WriteObjectField(dictKeyToField(k))
		stream.WriteVal(v)
	})
	stream.WriteObjectEnd()
	if stream.Error != nil {
		return nil, stream.Error
	}

	result := make([]byte, len(stream.Buffer()))
	copy(result, stream.Buffer())
	return result, nil
}

// UnmarshalJSON decodes a JSON object, preserving the document's field
// order as the insertion order. A duplicate field follows last-write-wins
// while keeping the first occurrence's position.
func (dict *Dict[K, V]) UnmarshalJSON(data []byte) error {
	iter := jsoniter.ParseBytes(jsonAPI, data)
	if next := iter.WhatIsNext(); next != jsoniter.ObjectValue {
		return fmt.Errorf("dict decode: expected a JSON object, got %s", jsonValueKind(next))
	}

	dict.Clear()
	iter.ReadMapCB(func(it *jsoniter.Iterator, field string) bool {
		key, err := dictKeyFromField[K](field)
		if err != nil {
			it.ReportError("dict decode", err.Error())
			return false
		}
		var value V
		it.ReadVal(&value)
		dict.Add(key, value)
		return true
	})
	if iter.Error != nil && iter.Error != io.EOF {
		return iter.Error
	}
	return nil
}

// DictFromJSON decodes an insertion-ordered dict from a JSON document that
// may carry // and /* */ comments.
func DictFromJSON[K comparable, V any](data []byte) (*Dict[K, V], error) {
	dict := NewDict[K, V]()
	if err := dict.UnmarshalJSON([]byte(stripjsoncomments.Strip(string(data)))); err != nil {
		return nil, err
	}
	return dict, nil
}

// MarshalJSON encodes the set as a JSON array; element order is
// unspecified, matching the container.
func (set Set[T]) MarshalJSON() ([]byte, error) {
	stream := jsonAPI.BorrowStream(nil)
	defer jsonAPI.ReturnStream(stream)

	stream.WriteArrayStart()
	first := true
	set.Scan(func(elem T) {
		if !first {
			stream.WriteMore()
		}
		first = false
		stream.WriteVal(elem)
	})
	stream.WriteArrayEnd()
	if stream.Error != nil {
		return nil, stream.Error
	}

	result := make([]byte, len(stream.Buffer()))
	copy(result, stream.Buffer())
	return result, nil
}

// UnmarshalJSON decodes a JSON array into the set, deduplicating
// elements. A {} document is rejected: the empty-brace literal denotes a
// mapping, not a set.
func (set *Set[T]) UnmarshalJSON(data []byte) error {
	iter := jsoniter.ParseBytes(jsonAPI, data)
	if next := iter.WhatIsNext(); next != jsoniter.ArrayValue {
		return fmt.Errorf("set decode: expected a JSON array, got %s (an empty {} document is a dict, not a set)", jsonValueKind(next))
	}

	*set = Set[T]{}
	iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
		var elem T
		it.ReadVal(&elem)
		set.Add(elem)
		return true
	})
	if iter.Error != nil && iter.Error != io.EOF {
		return iter.Error
	}
	return nil
}

// SetFromJSON decodes a set from a JSON array document that may carry
// comments.
func SetFromJSON[T comparable](data []byte) (Set[T], error) {
	set := NewSet[T]()
	if err := set.UnmarshalJSON([]byte(stripjsoncomments.Strip(string(data)))); err != nil {
		return nil, err
	}
	return set, nil
}

// MarshalJSON encodes the tuple as a JSON array.
func (tuple Tuple[T]) MarshalJSON() ([]byte, error) {
	return jsonAPI.Marshal(tuple.elems)
}

// UnmarshalJSON replaces the receiver with a tuple decoded from a JSON
// array. The decoded tuple is as immutable as a constructed one.
func (tuple *Tuple[T]) UnmarshalJSON(data []byte) error {
	var elems []T
	if err := jsonAPI.Unmarshal(data, &elems); err != nil {
		return err
	}
	tuple.elems = elems
	return nil
}

func dictKeyToField[K comparable](key K) string {
	switch k := any(key).(type) {
	case string:
		return k
	case fmt.Stringer:
		return k.String()
	default:
		return fmt.Sprint(k)
	}
}

func dictKeyFromField[K comparable](field string) (K, error) {
	var key K
	if _, ok := any(key).(string); ok {
		return any(field).(K), nil
	}
	if err := jsonAPI.UnmarshalFromString(field, &key); err != nil {
		return key, fmt.Errorf("cannot decode object key %q: %v", field, err)
	}
	return key, nil
}

func jsonValueKind(next jsoniter.ValueType) string {
	switch next {
	case jsoniter.ObjectValue:
		return "object"
	case jsoniter.ArrayValue:
		return "array"
	case jsoniter.StringValue:
		return "string"
	case jsoniter.NumberValue:
		return "number"
	case jsoniter.BoolValue:
		return "bool"
	case jsoniter.NilValue:
		return "null"
	default:
		return "invalid"
	}
}
