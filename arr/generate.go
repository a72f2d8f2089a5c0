package arr

import (
	"math"
	"math/big"

	"golang.org/x/exp/constraints"
)

// Number is the element constraint for the numeric range generators.
type Number interface {
	constraints.Integer | constraints.Float
}

// Init returns a new slice holding length zero values of T.
func Init[T any](length int) ([]T, error) {
	if length < 0 {
		return nil, outOfRange("Init", "length", length, msgLessThan0)
	}
	return make([]T, length), nil
}

// Repeat returns a new slice with element repeated count times.
//
//	arr.Repeat("x", 3) // → [x x x]
func Repeat[T any](element T, count int) ([]T, error) {
	if count < 0 {
		return nil, outOfRange("Repeat", "count", count, msgLessThan0)
	}
	out := make([]T, count)
	for i := range out {
		out[i] = element
	}
	return out, nil
}

// Range returns count numbers starting at first, each step apart. step
// defaults to 1.
//
//	arr.Range(1, 3)      // → [1 2 3]
//	arr.Range(0, 3, 2)   // → [0 2 4]
//	arr.Range(10, 3, -2) // → [10 8 6]
func Range[N Number](first N, count int, step ...N) ([]N, error) {
	return numberRange("Range", first, count, step)
}

func numberRange[N Number](op string, first N, count int, step []N) ([]N, error) {
	if !isFinite(first) {
		return nil, outOfRange(op, "first", first, msgFinite)
	}
	if count < 0 {
		return nil, outOfRange(op, "count", count, msgLessThan0)
	}
	inc, err := stepArg(op, step)
	if err != nil {
		return nil, err
	}
	out := make([]N, count)
	for i := range out {
		out[i] = first
		first += inc
	}
	return out, nil
}

// RangeUntil returns the numbers from first up to, but excluding, until,
// each step apart. step defaults to 1 and may be negative to count down.
//
// The span until-first must be an exact multiple of step; a fractional
// count is rejected with [ErrInvalidArgument] rather than rounded.
//
//	arr.RangeUntil(1, 4)      // → [1 2 3]
//	arr.RangeUntil(10, 4, -2) // → [10 8 6]
func RangeUntil[N Number](first, until N, step ...N) ([]N, error) {
	inc, err := stepArg("RangeUntil", step)
	if err != nil {
		return nil, err
	}
	if inc == 0 {
		return nil, outOfRange("RangeUntil", "step", inc, msgZero)
	}
	if !isFinite(first) {
		return nil, outOfRange("RangeUntil", "first", first, msgFinite)
	}
	var count int
	if isFloat[N]() {
		count, err = floatSpan(first, until, inc)
	} else {
		count, err = integerSpan(first, until, inc)
	}
	if err != nil {
		return nil, err
	}
	return numberRange("RangeUntil", first, count, []N{inc})
}

// floatSpan returns (until-first)/step for floating-point N.
func floatSpan[N Number](first, until, step N) (int, error) {
	count := (float64(until) - float64(first)) / float64(step)
	switch {
	case math.IsNaN(count) || math.IsInf(count, 0):
		return 0, outOfRange("RangeUntil", "count", count, msgFinite)
	case count < 0:
		return 0, outOfRange("RangeUntil", "count", count, msgLessThan0)
	case count != math.Trunc(count):
		return 0, invalidArgument("RangeUntil", "count", count, msgInteger)
	case count >= float64(math.MaxInt):
		return 0, outOfRange("RangeUntil", "count", count, msgTooLarge)
	}
	return int(count), nil
}

// integerSpan returns (until-first)/step for integer N. The arithmetic is
// exact for every integer width, so the bounds of int64 and uint64 ranges
// are never rounded.
func integerSpan[N Number](first, until, step N) (int, error) {
	span := new(big.Int).Sub(toBig(until), toBig(first))
	inc := toBig(step)
	count, rem := new(big.Int).QuoRem(span, inc, new(big.Int))
	switch {
	case span.Sign() != 0 && span.Sign() != inc.Sign():
		return 0, outOfRange("RangeUntil", "count", new(big.Rat).SetFrac(span, inc).String(), msgLessThan0)
	case rem.Sign() != 0:
		return 0, invalidArgument("RangeUntil", "count", new(big.Rat).SetFrac(span, inc).String(), msgInteger)
	case !count.IsInt64() || count.Int64() > math.MaxInt:
		return 0, outOfRange("RangeUntil", "count", count.String(), msgTooLarge)
	}
	return int(count.Int64()), nil
}

// isFloat reports whether N is a floating-point type.
func isFloat[N Number]() bool {
	half := 0.5
	return N(half) != 0
}

// toBig converts an integer N to a big.Int without losing its sign or its
// top bit.
func toBig[N Number](v N) *big.Int {
	var zero N
	if v < zero {
		return big.NewInt(int64(v))
	}
	return new(big.Int).SetUint64(uint64(v))
}

func stepArg[N Number](op string, step []N) (N, error) {
	switch len(step) {
	case 0:
		return 1, nil
	case 1:
		return step[0], nil
	default:
		return 0, invalidArgument(op, "step", len(step), "accepts at most one value")
	}
}

func isFinite[N Number](v N) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
