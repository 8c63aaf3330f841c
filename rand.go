package gm3

import "math/rand/v2"

// RandomIn returns a random value uniformly sampled from the given range,
// excluding max.
func RandomIn[S Scalar](rng *rand.Rand, min, max S) S {
	return S(rng.Float64()*(float64(max)-float64(min))) + min
}

// RandomVec3 returns a vector uniformly sampled from the unit cube.
func RandomVec3[S Scalar](rng *rand.Rand) Vec3[S] {
	return Vec3[S]{S(rng.Float64()), S(rng.Float64()), S(rng.Float64())}
}

// RandomMat3 returns a matrix with entries uniformly sampled from [min, max).
func RandomMat3[S Scalar](rng *rand.Rand, min, max S) Mat3[S] {
	var m Mat3[S]
	for i := range m {
		m[i] = RandomIn(rng, min, max)
	}
	return m
}

// RandomSymMat3 returns a packed symmetric matrix with entries uniformly
// sampled from [min, max).
func RandomSymMat3[S Scalar](rng *rand.Rand, min, max S) SymMat3[S] {
	var sm SymMat3[S]
	for i := range sm {
		sm[i] = RandomIn(rng, min, max)
	}
	return sm
}
