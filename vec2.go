package gm3

import "fmt"

// Vec2 is a 2d vector of Scalar values.
type Vec2[S Scalar] [2]S

func (v Vec2[S]) Add(other Vec2[S]) Vec2[S] {
	return Vec2[S]{v[0] + other[0], v[1] + other[1]}
}

func (v Vec2[S]) Sub(other Vec2[S]) Vec2[S] {
	return Vec2[S]{v[0] - other[0], v[1] - other[1]}
}

func (v Vec2[S]) Mul(scalar S) Vec2[S] {
	return Vec2[S]{v[0] * scalar, v[1] * scalar}
}

func (v Vec2[S]) Dot(other Vec2[S]) S {
	return v[0]*other[0] + v[1]*other[1]
}

// Cross returns the signed area of the parallelogram spanned by the two
// vectors.
func (v Vec2[S]) Cross(other Vec2[S]) S {
	return v[0]*other[1] - v[1]*other[0]
}

func (v Vec2[S]) Length() S {
	return sqrt(v.LengthSqr())
}

func (v Vec2[S]) LengthSqr() S {
	return v[0]*v[0] + v[1]*v[1]
}

func (v Vec2[S]) Normalized() Vec2[S] {
	return v.Mul(1 / v.Length())
}

// Rotated returns the vector rotated counter clockwise by the given angle in
// radians.
func (v Vec2[S]) Rotated(angle S) Vec2[S] {
	sin, cos := sincos(angle)
	return Vec2[S]{cos*v[0] - sin*v[1], sin*v[0] + cos*v[1]}
}

// Orthogonalize returns other with its component along v removed.
func (v Vec2[S]) Orthogonalize(other Vec2[S]) Vec2[S] {
	t := v.Dot(other) / v.Dot(v)
	return other.Sub(v.Mul(t))
}

// AngleTo returns the angle from v to other in the range (-pi, pi].
func (v Vec2[S]) AngleTo(other Vec2[S]) S {
	return atan2(v.Cross(other), v.Dot(other))
}

// AngleToGrad returns the angle from v to other together with its gradient
// with respect to both vectors.
func (v Vec2[S]) AngleToGrad(other Vec2[S]) (angle S, dv, dother Vec2[S]) {
	a := v.Dot(other)
	b := v.Cross(other)
	angle = atan2(b, a)

	tmp := 1 / (a*a + b*b)
	dwda := -b * tmp
	dwdb := a * tmp

	dv = Vec2[S]{dwda*other[0] + dwdb*other[1], dwda*other[1] - dwdb*other[0]}
	dother = Vec2[S]{dwda*v[0] - dwdb*v[1], dwda*v[1] + dwdb*v[0]}
	return angle, dv, dother
}

func (v Vec2[S]) String() string {
	return fmt.Sprintf("vec2(x=%v, y=%v)", v[0], v[1])
}
