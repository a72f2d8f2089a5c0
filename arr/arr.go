package arr

import (
	"math"
	"reflect"

	"golang.org/x/exp/slices"
)

// Unbounded is passed as a max count or a flatten depth to mean "no limit".
// Omitting the optional argument has the same effect.
const Unbounded = math.MaxInt

// EqualityComparer reports whether a and b should be treated as equal.
type EqualityComparer[T any] func(a, b T) bool

// Equal is the default [EqualityComparer]. It behaves like == except that a
// NaN is equal to another NaN, so a NaN stored in a slice can be found again.
//
// Only a value that is itself a floating-point NaN (directly or held in an
// interface) gets this treatment. Structs and arrays with a NaN field
// compare with plain ==, so they never equal anything.
func Equal[T comparable](a, b T) bool {
	return a == b || (isNaN(a) && isNaN(b))
}

// isNaN reports whether v is a float32 or float64 NaN, including named
// float types and floats boxed in an interface.
func isNaN[T comparable](v T) bool {
	switch f := any(v).(type) {
	case float64:
		return math.IsNaN(f)
	case float32:
		return math.IsNaN(float64(f))
	case nil, int, int64, string, bool:
		return false
	}
	rv := reflect.ValueOf(any(v))
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(rv.Float())
	}
	return false
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// IndexOf returns the index of the first element equal to item according to
// [Equal], or -1 when items is empty or holds no such element.
func IndexOf[S ~[]T, T comparable](items S, item T) int {
	if len(items) == 0 {
		return -1
	}
	if !isNaN(item) {
		return slices.Index(items, item)
	}
	for i, v := range items {
		if isNaN(v) {
			return i
		}
	}
	return -1
}

// IndexOfFunc returns the index of the first element for which eq(element,
// item) holds, or -1. A nil eq matches nothing.
func IndexOfFunc[S ~[]T, T any](items S, item T, eq EqualityComparer[T]) int {
	if eq == nil {
		return -1
	}
	for i, v := range items {
		if eq(v, item) {
			return i
		}
	}
	return -1
}

// Contains reports whether items holds an element equal to item according
// to [Equal].
func Contains[S ~[]T, T comparable](items S, item T) bool {
	return IndexOf(items, item) != -1
}

// ContainsFunc reports whether items holds an element for which eq holds.
func ContainsFunc[S ~[]T, T any](items S, item T, eq EqualityComparer[T]) bool {
	return IndexOfFunc(items, item, eq) != -1
}

// FindIndex returns the index of the first element satisfying
// predicate(element, index), or -1 when none does.
//
// Unlike [IndexOf], a nil items slice is an error ([ErrNullArgument]), as is
// a nil predicate ([ErrInvalidArgument]).
func FindIndex[S ~[]T, T any](items S, predicate func(T, int) bool) (int, error) {
	if items == nil {
		return -1, nullArgument("FindIndex", "items")
	}
	if predicate == nil {
		return -1, invalidArgument("FindIndex", "predicate", nil, msgFunction)
	}
	for i, v := range items {
		if predicate(v, i) {
			return i, nil
		}
	}
	return -1, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// ForEach calls action(element, index) for every element in index order and
// stops early the first time action returns false.
func ForEach[S ~[]T, T any](items S, action func(T, int) bool) {
	if items == nil || action == nil {
		return
	}
	for i, v := range items {
		if !action(v, i) {
			return
		}
	}
}

// ApplyTo replaces every element with fn(element, index), in place.
func ApplyTo[S ~[]T, T any](items S, fn func(T, int) T) {
	if fn == nil {
		return
	}
	for i := range items {
		items[i] = fn(items[i], i)
	}
}
