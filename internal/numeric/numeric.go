// Package numeric provides the small arithmetic capability set shared by the
// coordinate algebra: zero, add, subtract, multiply and divide, plus the
// fixed-size component vector every coordinate type converts to.
package numeric

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of types the capability functions accept.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Zero returns the additive identity of T.
func Zero[T Scalar]() T {
	var z T
	return z
}

// Add returns a + b.
func Add[T Scalar](a, b T) T { return a + b }

// Sub returns a - b.
func Sub[T Scalar](a, b T) T { return a - b }

// Mul returns a * b.
func Mul[T Scalar](a, b T) T { return a * b }

// Div returns a / b.
func Div[T Scalar](a, b T) T { return a / b }

// Sum adds all values, returning Zero for an empty list.
func Sum[T Scalar](values ...T) T {
	total := Zero[T]()
	for _, v := range values {
		total = Add(total, v)
	}
	return total
}

// Lerp interpolates linearly between a and b. Lerp(a, b, 0) is exactly a.
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

// Sign returns -1, 0 or +1.
func Sign[T Scalar](v T) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Dims is the maximum number of axes of any supported coordinate system.
const Dims = 3

// Vec is a raw component tuple in CRS axis order. Unused trailing
// components are zero.
type Vec [Dims]float64

// Add returns v + o component-wise.
func (v Vec) Add(o Vec) Vec {
	for i := range v {
		v[i] = Add(v[i], o[i])
	}
	return v
}

// Sub returns v - o component-wise.
func (v Vec) Sub(o Vec) Vec {
	for i := range v {
		v[i] = Sub(v[i], o[i])
	}
	return v
}

// Scale multiplies every component by k.
func (v Vec) Scale(k float64) Vec {
	for i := range v {
		v[i] = Mul(v[i], k)
	}
	return v
}

// Div divides every component by k.
func (v Vec) Div(k float64) Vec {
	for i := range v {
		v[i] = Div(v[i], k)
	}
	return v
}

// Abs returns the component-wise absolute value.
func (v Vec) Abs() Vec {
	for i := range v {
		v[i] = math.Abs(v[i])
	}
	return v
}

// Min returns the component-wise minimum.
func (v Vec) Min(o Vec) Vec {
	for i := range v {
		v[i] = min(v[i], o[i])
	}
	return v
}

// Max returns the component-wise maximum.
func (v Vec) Max(o Vec) Vec {
	for i := range v {
		v[i] = max(v[i], o[i])
	}
	return v
}

// Lerp interpolates between v and o. Lerp(o, 0) is exactly v.
func (v Vec) Lerp(o Vec, t float64) Vec {
	for i := range v {
		v[i] = Lerp(v[i], o[i], t)
	}
	return v
}

// Norm returns the Euclidean length over the first n components.
func (v Vec) Norm(n int) float64 {
	var sum float64
	for i := 0; i < n && i < Dims; i++ {
		sum += v[i] * v[i]
	}
	return math.Sqrt(sum)
}

// Mean returns the arithmetic mean of vs. It returns the zero Vec for an
// empty slice.
func Mean(vs []Vec) Vec {
	var total Vec
	if len(vs) == 0 {
		return total
	}
	for _, v := range vs {
		total = total.Add(v)
	}
	return total.Div(float64(len(vs)))
}
