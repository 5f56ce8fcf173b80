package proptree

import (
	"fmt"

	"cuelang.org/go/cue"
)

// FromCUE converts an evaluated CUE value into a tree object. The value must
// be a concrete struct; incomplete values fail with the CUE position attached.
func FromCUE(v cue.Value) (Object, error) {
	if err := v.Err(); err != nil {
		return nil, err
	}
	n, err := nodeFromCUE(v)
	if err != nil {
		return nil, err
	}
	obj, ok := n.(Object)
	if !ok {
		return nil, fmt.Errorf("configuration root must be a struct, found %v", v.Kind())
	}
	return obj, nil
}

func nodeFromCUE(v cue.Value) (Node, error) {
	switch v.Kind() {
	case cue.NullKind:
		return Null{}, nil
	case cue.BoolKind:
		b, err := v.Bool()
		if err != nil {
			return nil, err
		}
		return Bool(b), nil
	case cue.StringKind:
		s, err := v.String()
		if err != nil {
			return nil, err
		}
		return String(s), nil
	case cue.IntKind, cue.FloatKind, cue.NumberKind:
		f, err := v.Float64()
		if err != nil {
			return nil, err
		}
		return Number(f), nil
	case cue.ListKind:
		iter, err := v.List()
		if err != nil {
			return nil, err
		}
		var list List
		for iter.Next() {
			elem, err := nodeFromCUE(iter.Value())
			if err != nil {
				return nil, fmt.Errorf("list element %d: %w", len(list), err)
			}
			list = append(list, elem)
		}
		return list, nil
	case cue.StructKind:
		iter, err := v.Fields()
		if err != nil {
			return nil, err
		}
		obj := Object{}
		for iter.Next() {
			field, err := nodeFromCUE(iter.Value())
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", iter.Label(), err)
			}
			obj[iter.Label()] = field
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("%s: value is not concrete (kind %v)", v.Path(), v.Kind())
	}
}
