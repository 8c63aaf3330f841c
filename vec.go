package gm3

import "fmt"

// Vec3 is a 3d vector of Scalar values.
type Vec3[S Scalar] [3]S

func (v Vec3[S]) Add(other Vec3[S]) Vec3[S] {
	return Vec3[S]{v[0] + other[0], v[1] + other[1], v[2] + other[2]}
}

func (v Vec3[S]) Sub(other Vec3[S]) Vec3[S] {
	return Vec3[S]{v[0] - other[0], v[1] - other[1], v[2] - other[2]}
}

func (v Vec3[S]) Mul(scalar S) Vec3[S] {
	return Vec3[S]{v[0] * scalar, v[1] * scalar, v[2] * scalar}
}

func (v Vec3[S]) Dot(other Vec3[S]) S {
	return v[0]*other[0] + v[1]*other[1] + v[2]*other[2]
}

func (v Vec3[S]) Cross(other Vec3[S]) Vec3[S] {
	return Vec3[S]{
		v[1]*other[2] - v[2]*other[1],
		v[2]*other[0] - v[0]*other[2],
		v[0]*other[1] - v[1]*other[0],
	}
}

func (v Vec3[S]) Length() S {
	return sqrt(v.LengthSqr())
}

func (v Vec3[S]) LengthSqr() S {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

func (v Vec3[S]) Normalized() Vec3[S] {
	return v.Mul(1 / v.Length())
}

func (v Vec3[S]) String() string {
	return fmt.Sprintf("vec3(x=%v, y=%v, z=%v)", v[0], v[1], v[2])
}

// Axpy3 returns alpha*x + y.
func Axpy3[S Scalar](alpha S, x, y Vec3[S]) Vec3[S] {
	return x.Mul(alpha).Add(y)
}

// OrthonormalBasis returns two unit vectors x, y such that x, y and v form a
// right handed orthonormal frame. v must be a unit vector.
func (v Vec3[S]) OrthonormalBasis() (x, y Vec3[S]) {
	s := Vec3[S]{0, 1, 0}
	x = s.Cross(v)

	length := x.Length()
	if float64(length) < 1e-10 {
		t := Vec3[S]{1, 0, 0}
		x = t.Cross(v)
		y = v.Cross(x)
		return x, y
	}

	x = x.Mul(1 / length)
	y = v.Cross(x)
	return x, y
}
