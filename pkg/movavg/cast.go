package movavg

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is the family of sample and accumulator kinds the moving average
// operates on: any fixed-width or platform-width integer, or any float.
type Number interface {
	constraints.Integer | constraints.Float
}

// cast converts v to the destination kind and fails with ErrCast if the
// destination cannot represent it exactly. The round trip catches range and
// precision loss, the sign comparison catches two's-complement aliasing
// (e.g. uint8(200) surviving a trip through int8 as -56).
func cast[Dst, Src Number](v Src) (Dst, error) {
	d := Dst(v)
	if Src(d) != v || (d < 0) != (v < 0) {
		var zero Dst
		return zero, fmt.Errorf("value %v: %w", v, ErrCast)
	}
	return d, nil
}

// checkedAdd adds two values of an integer kind and fails with ErrOverflow
// if the sum wraps. Go defines signed overflow as two's-complement
// wraparound, so a wrapped sum always lands on the wrong side of a.
// Float kinds cannot wrap and pass through unchecked.
func checkedAdd[A Number](a, b A) (A, error) {
	sum := a + b
	if (b >= 0 && sum < a) || (b < 0 && sum > a) {
		var zero A
		return zero, fmt.Errorf("%v + %v: %w", a, b, ErrOverflow)
	}
	return sum, nil
}

// isFractional reports whether the kind A divides fractionally. Integer
// kinds truncate 1/2 to zero, float kinds do not, so the check holds for
// named types as well as the predeclared ones.
func isFractional[A Number]() bool {
	return A(1)/A(2) != 0
}
