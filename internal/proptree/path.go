package proptree

import (
	"fmt"
	"strconv"
	"strings"
)

// KeyError reports a failed tree access. Path is the full dotted key path
// that was requested, so callers can surface the offending field verbatim.
type KeyError struct {
	Path    string
	Message string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("key %q: %s", e.Path, e.Message)
}

// notFound builds the KeyError for an absent path.
func notFound(path string) *KeyError {
	return &KeyError{Path: path, Message: "not defined"}
}

// ConvertError reports a Go value that has no tree representation.
type ConvertError struct {
	Value any
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("unsupported tree value of type %T", e.Value)
}

// Join concatenates path segments with dots. Segments may themselves be
// dotted paths.
func Join(segments ...string) string {
	return strings.Join(segments, ".")
}

// splitPath splits a dotted path into segments. An empty path addresses the
// root object itself and yields no segments.
func splitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}

// HasPath reports whether the path resolves to a value.
func (obj Object) HasPath(path string) bool {
	_, err := obj.At(path)
	return err == nil
}

// At resolves a dotted path. Numeric segments index into lists. Fails with
// *KeyError naming the full path when any step is absent.
func (obj Object) At(path string) (Node, error) {
	var cur Node = obj
	for _, seg := range splitPath(path) {
		switch n := cur.(type) {
		case Object:
			next, ok := n[seg]
			if !ok {
				return nil, notFound(path)
			}
			cur = next
		case List:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= len(n) {
				return nil, notFound(path)
			}
			cur = n[idx]
		default:
			return nil, notFound(path)
		}
	}
	return cur, nil
}

// AtOr resolves a dotted path, returning fallback when the path is absent.
func (obj Object) AtOr(path string, fallback Node) Node {
	n, err := obj.At(path)
	if err != nil {
		return fallback
	}
	return n
}

// Set writes a value at a dotted path, creating intermediate objects as
// needed. Fails when an intermediate step exists but is not an object.
func (obj Object) Set(path string, value Node) error {
	segs := splitPath(path)
	if len(segs) == 0 {
		return &KeyError{Path: path, Message: "cannot set the root object"}
	}
	cur := obj
	for _, seg := range segs[:len(segs)-1] {
		next, ok := cur[seg]
		if !ok {
			child := Object{}
			cur[seg] = child
			cur = child
			continue
		}
		child, ok := next.(Object)
		if !ok {
			return &KeyError{Path: path, Message: fmt.Sprintf("segment %q is not an object", seg)}
		}
		cur = child
	}
	cur[segs[len(segs)-1]] = value
	return nil
}

// StringAt resolves a path to a string value.
func (obj Object) StringAt(path string) (string, error) {
	n, err := obj.At(path)
	if err != nil {
		return "", err
	}
	s, ok := n.(String)
	if !ok {
		return "", &KeyError{Path: path, Message: fmt.Sprintf("expected string, found %T", n)}
	}
	return string(s), nil
}

// StringAtOr resolves a path to a string, returning fallback when absent.
func (obj Object) StringAtOr(path, fallback string) (string, error) {
	if !obj.HasPath(path) {
		return fallback, nil
	}
	return obj.StringAt(path)
}

// FloatAt resolves a path to a numeric value.
func (obj Object) FloatAt(path string) (float64, error) {
	n, err := obj.At(path)
	if err != nil {
		return 0, err
	}
	f, ok := n.(Number)
	if !ok {
		return 0, &KeyError{Path: path, Message: fmt.Sprintf("expected number, found %T", n)}
	}
	return float64(f), nil
}

// BoolAt resolves a path to a boolean value.
func (obj Object) BoolAt(path string) (bool, error) {
	n, err := obj.At(path)
	if err != nil {
		return false, err
	}
	b, ok := n.(Bool)
	if !ok {
		return false, &KeyError{Path: path, Message: fmt.Sprintf("expected bool, found %T", n)}
	}
	return bool(b), nil
}

// BoolAtOr resolves a path to a boolean, returning fallback when absent.
func (obj Object) BoolAtOr(path string, fallback bool) (bool, error) {
	if !obj.HasPath(path) {
		return fallback, nil
	}
	return obj.BoolAt(path)
}

// ListAt resolves a path to a list value.
func (obj Object) ListAt(path string) (List, error) {
	n, err := obj.At(path)
	if err != nil {
		return nil, err
	}
	l, ok := n.(List)
	if !ok {
		return nil, &KeyError{Path: path, Message: fmt.Sprintf("expected list, found %T", n)}
	}
	return l, nil
}

// ObjectAt resolves a path to an object value.
func (obj Object) ObjectAt(path string) (Object, error) {
	n, err := obj.At(path)
	if err != nil {
		return nil, err
	}
	o, ok := n.(Object)
	if !ok {
		return nil, &KeyError{Path: path, Message: fmt.Sprintf("expected object, found %T", n)}
	}
	return o, nil
}

// StringsAt resolves a path to a list of strings.
func (obj Object) StringsAt(path string) ([]string, error) {
	l, err := obj.ListAt(path)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(l))
	for i, elem := range l {
		s, ok := elem.(String)
		if !ok {
			return nil, &KeyError{Path: path, Message: fmt.Sprintf("element %d: expected string, found %T", i, elem)}
		}
		out[i] = string(s)
	}
	return out, nil
}

// FloatsAt resolves a path to a list of numbers.
func (obj Object) FloatsAt(path string) ([]float64, error) {
	l, err := obj.ListAt(path)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(l))
	for i, elem := range l {
		f, ok := elem.(Number)
		if !ok {
			return nil, &KeyError{Path: path, Message: fmt.Sprintf("element %d: expected number, found %T", i, elem)}
		}
		out[i] = float64(f)
	}
	return out, nil
}
