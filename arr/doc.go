// Package arr provides standalone helper functions for flat Go slices:
// searching, in-place replacement and removal, range generation,
// deduplication and flattening.
//
// All helpers are generic and operate on plain []T values (or any named
// slice type) with no wrapper type required:
//
//	i := arr.IndexOf([]float64{1, math.NaN(), 3}, math.NaN()) // → 1
//	n, _ := arr.Remove(&ids, 7)                               // remove every 7
//	r, _ := arr.Range(0, 3, 2)                                // → [0 2 4]
//	u := arr.Distinct([]string{"a", "b", "a"})               // → [a b]
//
// # Equality
//
// Functions that compare elements use [Equal] by default, which is == with
// one difference: NaN equals NaN. Each of them has a Func variant
// ([IndexOfFunc], [ContainsFunc], [RegisterFunc], [RemoveFunc]) taking an
// [EqualityComparer], which also serves element types that are not
// comparable.
//
// # Mutation
//
// Helpers that only overwrite elements take the slice itself. Helpers that
// change its length ([Register], [RemoveIndex], [Remove], [CopyTo]) take a
// pointer to it. Arguments are validated before anything is written, so a
// returned error always leaves the input as it was.
//
// # Optional arguments
//
// Trailing optional parameters (a max count, range bounds, a step, a
// flatten depth) are variadic and may simply be omitted. [Unbounded] spells
// out "no limit" explicitly.
//
// # Errors
//
// Every failure is an [*ArgumentError] wrapping [ErrNullArgument],
// [ErrOutOfRange] or [ErrInvalidArgument]; use [errors.Is] to classify it.
//
// # Dense slices
//
// Go slices have no holes, so every index holds a value. Where a sparse
// array would skip unassigned slots, these helpers visit the zero value.
package arr
