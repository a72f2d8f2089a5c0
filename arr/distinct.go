package arr

import "golang.org/x/crypto/blake2b"

// Distinct returns a new slice holding the first occurrence of each value
// in items, in their original order. NaN values are treated as equal to
// one another, matching [Equal].
//
// A nil items yields an empty, non-nil slice, so the result of an optional
// lookup can be passed straight through.
func Distinct[S ~[]T, T comparable](items S) S {
	out := make(S, 0, len(items))
	seen := make(map[T]struct{}, len(items))
	seenNaN := false
	for _, item := range items {
		if isNaN(item) {
			// NaN keys never match in a Go map.
			if !seenNaN {
				seenNaN = true
				out = append(out, item)
			}
			continue
		}
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// DistinctFunc is like [Distinct] for element types that are not
// comparable. key must return a canonical byte encoding of an element;
// elements whose encodings are equal are duplicates.
//
// Keys are stored as BLAKE2b-256 digests rather than as the encodings
// themselves, to bound memory: the set holds a fixed 32 bytes per distinct
// element however large its encoding is. The cost is that two different
// encodings with the same digest would be treated as duplicates; with a
// 256-bit digest the chance of that is about 2^-128 even for 2^64 keys.
// A nil key returns a copy of items.
//
//	type point struct{ tags []string }
//	arr.DistinctFunc(points, func(p point) []byte {
//	    return []byte(strings.Join(p.tags, "\x00"))
//	})
func DistinctFunc[S ~[]T, T any](items S, key func(T) []byte) S {
	out := make(S, 0, len(items))
	if key == nil {
		return append(out, items...)
	}
	seen := make(map[[blake2b.Size256]byte]struct{}, len(items))
	for _, item := range items {
		sum := blake2b.Sum256(key(item))
		if _, ok := seen[sum]; !ok {
			seen[sum] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}
