package proptree

import (
	"slices"
	"unicode/utf16"
)

// Node is a sealed interface representing one configuration tree value.
// Only Null, String, Number, Bool, List, and Object implement it.
type Node interface {
	node() // Sealed - only these types implement it
}

// Null represents an explicit null value in the tree.
type Null struct{}

func (Null) node() {}

// String represents a string value in the tree.
type String string

func (String) node() {}

// Number represents a numeric value in the tree. Always float64; the codec
// deals in epochs and state-vector components, not counters.
type Number float64

func (Number) node() {}

// Bool represents a boolean value in the tree.
type Bool bool

func (Bool) node() {}

// List represents an ordered sequence of Node elements.
type List []Node

func (List) node() {}

// Object represents a map of string keys to Node elements.
// Use SortedKeys for deterministic iteration.
type Object map[string]Node

func (Object) node() {}

// Strings builds a List from string values.
func Strings(vals ...string) List {
	out := make(List, len(vals))
	for i, v := range vals {
		out[i] = String(v)
	}
	return out
}

// Numbers builds a List from float64 values.
func Numbers(vals ...float64) List {
	out := make(List, len(vals))
	for i, v := range vals {
		out[i] = Number(v)
	}
	return out
}

// SortedKeys returns keys ordered by UTF-16 code units (RFC 8785 order),
// matching the canonical serializer. Go's sort.Strings compares UTF-8 bytes,
// which produces a different order for non-BMP input.
func (obj Object) SortedKeys() []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareKeysUTF16)
	return keys
}

// compareKeysUTF16 compares strings by UTF-16 code unit, with correct
// surrogate handling via unicode/utf16.
func compareKeysUTF16(a, b string) int {
	a16 := utf16.Encode([]rune(a))
	b16 := utf16.Encode([]rune(b))

	minLen := len(a16)
	if len(b16) < minLen {
		minLen = len(b16)
	}
	for i := 0; i < minLen; i++ {
		if a16[i] != b16[i] {
			if a16[i] < b16[i] {
				return -1
			}
			return 1
		}
	}
	if len(a16) < len(b16) {
		return -1
	}
	if len(a16) > len(b16) {
		return 1
	}
	return 0
}

// FromGo converts a decoded Go value (as produced by yaml.v3 or encoding/json
// into any) to a Node. Integer and float inputs both become Number.
func FromGo(v any) (Node, error) {
	switch val := v.(type) {
	case nil:
		return Null{}, nil
	case bool:
		return Bool(val), nil
	case string:
		return String(val), nil
	case int:
		return Number(val), nil
	case int64:
		return Number(val), nil
	case uint64:
		return Number(val), nil
	case float64:
		return Number(val), nil
	case float32:
		return Number(val), nil
	case []any:
		list := make(List, len(val))
		for i, elem := range val {
			n, err := FromGo(elem)
			if err != nil {
				return nil, err
			}
			list[i] = n
		}
		return list, nil
	case map[string]any:
		obj := make(Object, len(val))
		for k, elem := range val {
			n, err := FromGo(elem)
			if err != nil {
				return nil, err
			}
			obj[k] = n
		}
		return obj, nil
	default:
		return nil, &ConvertError{Value: v}
	}
}
