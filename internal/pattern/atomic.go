package pattern

import "reflect"

// Predicate tests a single sequence element.
type Predicate[T any] func(T) bool

// atomicNode matches exactly one sequence element against a predicate.
type atomicNode[T any] struct {
	base[T]
	predicate Predicate[T]
}

// NewAtomic returns a Node that matches one element satisfying predicate.
func NewAtomic[T any](predicate Predicate[T]) Node[T] {
	n := &atomicNode[T]{predicate: predicate}
	n.base = newBase[T](n)
	return n
}

func (n *atomicNode[T]) FindOne(items []T, pos int) Match {
	if pos < 0 || pos >= len(items) {
		return Fail
	}
	if isNilElement(items[pos]) {
		return Fail
	}
	if !n.predicate(items[pos]) {
		return Fail
	}
	return successRange(pos, pos+1)
}

func (n *atomicNode[T]) CapturesEnabled() bool { return false }

// isNilElement reports whether v holds a nil pointer, interface, map,
// slice, channel, or function — the only T kinds for which "non-null" is a
// meaningful check. Value types (ints, structs, strings...) are never nil
// and always pass.
func isNilElement(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
