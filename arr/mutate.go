package arr

import "golang.org/x/exp/slices"

// ─────────────────────────────────────────────────────────────────────────────
// In-place mutation
//
// Every function here validates its arguments before touching the slice, so
// a returned error means the input is unchanged.
// ─────────────────────────────────────────────────────────────────────────────

// Replace sets every element equal (==) to old to newValue and returns how
// many were replaced. An optional max stops after that many replacements.
//
// No custom comparer is involved, so a NaN old value never matches.
// A nil or empty slice, or a max of zero, returns 0 without scanning.
func Replace[S ~[]T, T comparable](items S, old, newValue T, max ...int) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	limit, err := maxArg("Replace", max)
	if err != nil || limit == 0 {
		return 0, err
	}
	count := 0
	for i := range items {
		if items[i] == old {
			items[i] = newValue
			count++
			if count == limit {
				break
			}
		}
	}
	return count, nil
}

// UpdateRange sets every element in [start, stop) to value.
//
// bounds is optional: UpdateRange(s, v) fills the whole slice,
// UpdateRange(s, v, start) fills from start to the end and
// UpdateRange(s, v, start, stop) fills the half-open range. A nil slice is a
// no-op.
func UpdateRange[S ~[]T, T any](items S, value T, bounds ...int) error {
	if items == nil {
		return nil
	}
	start, stop, err := rangeBounds("UpdateRange", len(items), bounds)
	if err != nil {
		return err
	}
	for i := start; i < stop; i++ {
		items[i] = value
	}
	return nil
}

// ClearEach resets the elements in the optional [start, stop) range to the
// zero value of T. See [UpdateRange] for the bounds semantics.
func ClearEach[S ~[]T, T any](items S, bounds ...int) error {
	var zero T
	return UpdateRange(items, zero, bounds...)
}

// Register appends item to *items unless an element equal to it (per
// [Equal]) is already present. It reports whether item was added.
func Register[S ~[]T, T comparable](items *S, item T) (bool, error) {
	if items == nil {
		return false, nullArgument("Register", "items")
	}
	if Contains(*items, item) {
		return false, nil
	}
	*items = append(*items, item)
	return true, nil
}

// RegisterFunc is like [Register] but compares elements with eq.
func RegisterFunc[S ~[]T, T any](items *S, item T, eq EqualityComparer[T]) (bool, error) {
	if items == nil {
		return false, nullArgument("RegisterFunc", "items")
	}
	if eq == nil {
		return false, invalidArgument("RegisterFunc", "eq", nil, msgFunction)
	}
	if ContainsFunc(*items, item, eq) {
		return false, nil
	}
	*items = append(*items, item)
	return true, nil
}

// RemoveIndex removes the element at index, shifting the following elements
// down by one. It returns false, leaving the slice untouched, when index is
// past the end.
func RemoveIndex[S ~[]T, T any](items *S, index int) (bool, error) {
	if items == nil {
		return false, nullArgument("RemoveIndex", "items")
	}
	if index < 0 {
		return false, outOfRange("RemoveIndex", "index", index, msgLessThan0)
	}
	if index >= len(*items) {
		return false, nil
	}
	*items = slices.Delete(*items, index, index+1)
	return true, nil
}

// Remove deletes up to max elements equal to value (per [Equal]) and returns
// how many were removed. The remaining elements keep their relative order.
//
// With a bounded max the first max matches in index order are the ones
// removed:
//
//	s := []int{1, 2, 1, 3, 1}
//	arr.Remove(&s, 1, 2) // → 2, s == [2 3 1]
func Remove[S ~[]T, T comparable](items *S, value T, max ...int) (int, error) {
	return removeMatching("Remove", items, value, Equal[T], max)
}

// RemoveFunc is like [Remove] but compares elements with eq.
func RemoveFunc[S ~[]T, T any](items *S, value T, eq EqualityComparer[T], max ...int) (int, error) {
	if eq == nil {
		return 0, invalidArgument("RemoveFunc", "eq", nil, msgFunction)
	}
	return removeMatching("RemoveFunc", items, value, eq, max)
}

func removeMatching[S ~[]T, T any](op string, items *S, value T, eq EqualityComparer[T], max []int) (int, error) {
	if items == nil || len(*items) == 0 {
		return 0, nil
	}
	limit, err := maxArg(op, max)
	if err != nil || limit == 0 {
		return 0, err
	}
	s := *items
	count := 0
	if limit == Unbounded {
		// Walking backwards keeps the indices still to be visited stable.
		for i := len(s) - 1; i >= 0; i-- {
			if eq(s[i], value) {
				s = slices.Delete(s, i, i+1)
				count++
			}
		}
		*items = s
		return count, nil
	}
	found := make([]int, 0, min(limit, len(s)))
	for i := range s {
		if eq(s[i], value) {
			found = append(found, i)
			if len(found) == limit {
				break
			}
		}
	}
	for i := len(found) - 1; i >= 0; i-- {
		s = slices.Delete(s, found[i], found[i]+1)
	}
	*items = s
	return len(found), nil
}

// maxArg resolves an optional max count. An omitted max is [Unbounded].
func maxArg(op string, max []int) (int, error) {
	switch len(max) {
	case 0:
		return Unbounded, nil
	case 1:
		if max[0] < 0 {
			return 0, outOfRange(op, "max", max[0], msgLessThan0)
		}
		return max[0], nil
	default:
		return 0, invalidArgument(op, "max", len(max), "accepts at most one value")
	}
}

// rangeBounds resolves optional [start[, stop]] bounds against a length.
func rangeBounds(op string, length int, bounds []int) (int, int, error) {
	if len(bounds) > 2 {
		return 0, 0, invalidArgument(op, "bounds", len(bounds), "accepts at most start and stop")
	}
	start, stop := 0, length
	if len(bounds) > 0 {
		start = bounds[0]
	}
	if len(bounds) > 1 {
		stop = bounds[1]
	}
	if start < 0 {
		return 0, 0, outOfRange(op, "start", start, msgLessThan0)
	}
	if stop < start {
		return 0, 0, outOfRange(op, "stop", stop, msgBeforeStart)
	}
	if stop > length {
		return 0, 0, outOfRange(op, "stop", stop, "is past the end of the slice")
	}
	return start, stop, nil
}
