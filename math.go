package aoc

import (
	"golang.org/x/exp/constraints"
)

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// Sign returns -1, 0 or 1 depending on the sign of v.
func Sign[T constraints.Signed](v T) T {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// Between reports whether min <= v < max, or min <= v <= max if inclusive.
func Between[T constraints.Ordered](v, min, max T, inclusive bool) bool {
	if inclusive {
		return v >= min && v <= max
	}
	return v >= min && v < max
}

// Range returns the integers from..to inclusive, counting down if from > to.
func Range(from, to int) []int {
	step := 1
	if from > to {
		step = -1
	}
	out := make([]int, 0, AbsDiff(from, to)+1)
	for i := from; ; i += step {
		out = append(out, i)
		if i == to {
			return out
		}
	}
}

// LCM returns the least common multiple of the integers.
func LCM(integers ...int) int {
	if len(integers) == 0 {
		panic("no integers")
	}
	result := 1
	for _, v := range integers {
		result = result / GCD(result, v) * v
	}
	return result
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Extrapolate predicts the next value of the sequence x by repeatedly taking
// differences until they are all zero. If forward is false it predicts the
// value before the first one instead. x must not be empty.
func Extrapolate[T Number](x []T, forward bool) T {
	diffs := make([]T, 0, len(x))
	allZero := true
	for i := 1; i < len(x); i++ {
		d := x[i] - x[i-1]
		diffs = append(diffs, d)
		if d != 0 {
			allZero = false
		}
	}
	ix := 0
	if forward {
		ix = len(x) - 1
	}
	if allZero {
		return x[ix]
	}
	diff := Extrapolate(diffs, forward)
	if forward {
		return x[ix] + diff
	}
	return x[ix] - diff
}

// PolygonArea returns the area of the polygon with the given corners, using
// the shoelace formula. The polygon is closed implicitly.
func PolygonArea(pts []Pt) int {
	var area int
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		area += a.X*b.Y - a.Y*b.X
	}
	return AbsDiff(area, 0) / 2
}

// PolygonPerimeter returns the length of the rectilinear polygon with the
// given corners.
func PolygonPerimeter(pts []Pt) int {
	var perimeter int
	for i, a := range pts {
		perimeter += a.MDist(pts[(i+1)%len(pts)])
	}
	return perimeter
}

// PolygonBoundedPoints returns the number of integer points inside or on the
// edge of the rectilinear polygon with the given corners.
func PolygonBoundedPoints(pts []Pt) int {
	// Pick's theorem: A = i + b/2 - 1, so i + b = A + b/2 + 1.
	return PolygonArea(pts) + PolygonPerimeter(pts)/2 + 1
}
