package gm3

import "math"

// Scalar is the set of floating point types the geometry types are
// parameterized over.
type Scalar interface {
	float32 | float64
}

// epsilon returns the machine epsilon of the scalar type.
func epsilon[S Scalar]() S {
	if _, ok := any(S(0)).(float32); ok {
		return S(0x1p-23)
	}

	return S(0x1p-52)
}

func sqrt[S Scalar](x S) S {
	return S(math.Sqrt(float64(x)))
}

func abs[S Scalar](x S) S {
	if x < 0 {
		return -x
	}
	return x
}

func atan2[S Scalar](y, x S) S {
	return S(math.Atan2(float64(y), float64(x)))
}

func sincos[S Scalar](x S) (sin, cos S) {
	s, c := math.Sincos(float64(x))
	return S(s), S(c)
}

func acos[S Scalar](x S) S {
	return S(math.Acos(float64(x)))
}

func clamp[S Scalar](x, lo, hi S) S {
	return min(max(x, lo), hi)
}
