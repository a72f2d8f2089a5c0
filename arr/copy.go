package arr

// Copy returns a freshly allocated copy of part of items.
//
// bounds is optional: Copy(s) copies everything, Copy(s, i) copies from
// index i to the end and Copy(s, i, n) copies at most n elements starting at
// i. The copy never reaches past the end of items. A nil items returns nil.
func Copy[S ~[]T, T any](items S, bounds ...int) (S, error) {
	if items == nil {
		return nil, nil
	}
	if len(bounds) > 2 {
		return nil, invalidArgument("Copy", "bounds", len(bounds), "accepts at most sourceIndex and length")
	}
	from, length := 0, Unbounded
	if len(bounds) > 0 {
		from = bounds[0]
	}
	if len(bounds) > 1 {
		length = bounds[1]
	}
	n, err := copyLength("Copy", len(items), from, length)
	if err != nil {
		return nil, err
	}
	out := make(S, n)
	copy(out, items[from:from+n])
	return out, nil
}

// CopyTo copies up to length elements of source, starting at sourceIndex,
// into *dest starting at destIndex. *dest grows when the copied run extends
// past its end. Pass [Unbounded] as length to copy the rest of source.
func CopyTo[S ~[]T, T any](source S, dest *S, sourceIndex, destIndex, length int) error {
	if dest == nil {
		return nullArgument("CopyTo", "dest")
	}
	n, err := copyLength("CopyTo", len(source), sourceIndex, length)
	if err != nil {
		return err
	}
	if destIndex < 0 {
		return outOfRange("CopyTo", "destIndex", destIndex, msgLessThan0)
	}
	d := *dest
	if destIndex > len(d) {
		return outOfRange("CopyTo", "destIndex", destIndex, "is past the end of the destination")
	}
	if end := destIndex + n; end > len(d) {
		d = append(d, make(S, end-len(d))...)
	}
	copy(d[destIndex:], source[sourceIndex:sourceIndex+n])
	*dest = d
	return nil
}

// copyLength validates a source run and clamps length to what is available.
func copyLength(op string, size, from, length int) (int, error) {
	if from < 0 {
		return 0, outOfRange(op, "sourceIndex", from, msgLessThan0)
	}
	if from > size {
		return 0, outOfRange(op, "sourceIndex", from, "is past the end of the source")
	}
	if length < 0 {
		return 0, outOfRange(op, "length", length, msgLessThan0)
	}
	return min(length, size-from), nil
}
