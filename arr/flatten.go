package arr

import "reflect"

// Flatten splices the elements of every nested slice in items into a new
// flat slice. Non-slice elements pass through unchanged.
//
// depth is optional and defaults to 0, which flattens exactly one level.
// Each extra level of depth first flattens a nested slice with depth-1
// before splicing it in; [Unbounded] flattens everything.
//
//	in := []any{[]any{1, 2}, []any{3, []any{4}}}
//	arr.Flatten(in)                // → [1 2 3 [4]]
//	arr.Flatten(in, arr.Unbounded) // → [1 2 3 4]
//
// Nested slices may be []any or any other slice or array type ([]int,
// [2]string, ...). Byte slices, including named ones such as
// json.RawMessage, are kept whole, as they usually carry opaque data rather
// than a sequence of values. A negative depth behaves like 0.
func Flatten(items []any, depth ...int) []any {
	d := 0
	if len(depth) > 0 {
		d = depth[0]
	}
	return flatten(items, d)
}

func flatten(items []any, depth int) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		nested, ok := asSequence(item)
		if !ok {
			out = append(out, item)
			continue
		}
		if depth > 0 {
			nested = flatten(nested, depth-1)
		}
		out = append(out, nested...)
	}
	return out
}

// asSequence reports whether v is a nested sequence and returns its
// elements as []any.
func asSequence(v any) ([]any, bool) {
	switch val := v.(type) {
	case nil, []byte:
		return nil, false
	case []any:
		return val, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return nil, false
		}
	case reflect.Array:
	default:
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
