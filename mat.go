package gm3

// Mat3 is a 3x3 matrix of Scalar values in column major order: the entry in
// row i and column j is stored at index i + 3*j.
//
// Functions that instead take a row major [9]S carry a RowMajor suffix.
type Mat3[S Scalar] [9]S

// IdentityMat3 returns the identity matrix.
func IdentityMat3[S Scalar]() Mat3[S] {
	return Mat3[S]{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// DiagonalMat3 returns the matrix with the given diagonal and zeros
// elsewhere.
func DiagonalMat3[S Scalar](d Vec3[S]) Mat3[S] {
	return Mat3[S]{d[0], 0, 0, 0, d[1], 0, 0, 0, d[2]}
}

// Mat3FromColumns returns the matrix with the given column vectors.
func Mat3FromColumns[S Scalar](x, y, z Vec3[S]) Mat3[S] {
	return Mat3[S]{x[0], x[1], x[2], y[0], y[1], y[2], z[0], z[1], z[2]}
}

// RotationMat3X returns the matrix rotating around the x axis by the given
// angle in radians.
func RotationMat3X[S Scalar](angle S) Mat3[S] {
	sin, cos := sincos(angle)
	return Mat3[S]{1, 0, 0, 0, cos, sin, 0, -sin, cos}
}

// RotationMat3Y returns the matrix rotating around the y axis by the given
// angle in radians.
func RotationMat3Y[S Scalar](angle S) Mat3[S] {
	sin, cos := sincos(angle)
	return Mat3[S]{cos, 0, -sin, 0, 1, 0, sin, 0, cos}
}

// RotationMat3Z returns the matrix rotating around the z axis by the given
// angle in radians.
func RotationMat3Z[S Scalar](angle S) Mat3[S] {
	sin, cos := sincos(angle)
	return Mat3[S]{cos, sin, 0, -sin, cos, 0, 0, 0, 1}
}

// BryantAnglesMat3 returns the rotation matrix that applies the x, y and z
// rotations in that order.
func BryantAnglesMat3[S Scalar](rx, ry, rz S) Mat3[S] {
	yx := RotationMat3Y(ry).Mul(RotationMat3X(rx))
	return RotationMat3Z(rz).Mul(yx)
}

// OuterProduct returns s * a * b^T.
func OuterProduct[S Scalar](s S, a, b Vec3[S]) Mat3[S] {
	return Mat3[S]{
		s * a[0] * b[0], s * a[1] * b[0], s * a[2] * b[0],
		s * a[0] * b[1], s * a[1] * b[1], s * a[2] * b[1],
		s * a[0] * b[2], s * a[1] * b[2], s * a[2] * b[2],
	}
}

// SkewMat3 returns the skew symmetric matrix m such that m * x == v.Cross(x)
// for every x.
func SkewMat3[S Scalar](v Vec3[S]) Mat3[S] {
	return Mat3[S]{0, v[2], -v[1], -v[2], 0, v[0], v[1], -v[0], 0}
}

// SkewVec returns the vector dual to the skew symmetric part of the matrix.
// It is the inverse of SkewMat3 for skew symmetric inputs.
func (m Mat3[S]) SkewVec() Vec3[S] {
	half := S(0.5)
	return Vec3[S]{(m[5] - m[7]) * half, (m[6] - m[2]) * half, (m[1] - m[3]) * half}
}

func (m Mat3[S]) Add(other Mat3[S]) Mat3[S] {
	for i := range m {
		m[i] += other[i]
	}
	return m
}

// Add3 returns the sum of three matrices.
func Add3[S Scalar](a, b, c Mat3[S]) Mat3[S] {
	for i := range a {
		a[i] = a[i] + b[i] + c[i]
	}
	return a
}

func (m Mat3[S]) Sub(other Mat3[S]) Mat3[S] {
	for i := range m {
		m[i] -= other[i]
	}
	return m
}

func (m Mat3[S]) Scale(scalar S) Mat3[S] {
	for i := range m {
		m[i] *= scalar
	}
	return m
}

func (m Mat3[S]) Transpose() Mat3[S] {
	return Mat3[S]{m[0], m[3], m[6], m[1], m[4], m[7], m[2], m[5], m[8]}
}

// Mul returns the matrix product m * other.
func (m Mat3[S]) Mul(other Mat3[S]) Mat3[S] {
	var r Mat3[S]
	for i := range 3 {
		for j := range 3 {
			for k := range 3 {
				r[i+3*j] += m[i+3*k] * other[k+3*j]
			}
		}
	}
	return r
}

// MulVec returns the matrix vector product m * v.
func (m Mat3[S]) MulVec(v Vec3[S]) Vec3[S] {
	return Vec3[S]{
		m[0]*v[0] + m[3]*v[1] + m[6]*v[2],
		m[1]*v[0] + m[4]*v[1] + m[7]*v[2],
		m[2]*v[0] + m[5]*v[1] + m[8]*v[2],
	}
}

// MulRowMajor returns the product a * b of two matrices given in row major
// order, again in row major order.
func MulRowMajor[S Scalar](a, b [9]S) [9]S {
	var r [9]S
	for i := range 3 {
		for j := range 3 {
			for k := range 3 {
				r[3*i+j] += a[3*i+k] * b[3*k+j]
			}
		}
	}
	return r
}

// TransformHomogeneous applies the matrix to a 2d point in homogeneous
// coordinates. ok is false if the transformed point lies at infinity.
func (m Mat3[S]) TransformHomogeneous(x Vec2[S]) (Vec2[S], bool) {
	w := m[2]*x[0] + m[5]*x[1] + m[8]
	if w == 0 {
		return Vec2[S]{}, false
	}

	return Vec2[S]{
		(m[0]*x[0] + m[3]*x[1] + m[6]) / w,
		(m[1]*x[0] + m[4]*x[1] + m[7]) / w,
	}, true
}

// TransformDirection applies the rotation and scale part of the matrix to a
// 2d direction vector.
func (m Mat3[S]) TransformDirection(x Vec2[S]) Vec2[S] {
	return Vec2[S]{
		m[0]*x[0] + m[3]*x[1],
		m[1]*x[0] + m[4]*x[1],
	}
}

func (m Mat3[S]) Determinant() S {
	return m[0]*m[4]*m[8] + m[3]*m[7]*m[2] + m[6]*m[1]*m[5] -
		m[0]*m[7]*m[5] - m[6]*m[4]*m[2] - m[3]*m[1]*m[8]
}

// TryInverse returns the inverse of the matrix if it exists.
func (m Mat3[S]) TryInverse() (Mat3[S], bool) {
	det := m.Determinant()
	if det == 0 {
		return Mat3[S]{}, false
	}

	inv := 1 / det
	return Mat3[S]{
		inv * (m[4]*m[8] - m[5]*m[7]),
		inv * (m[2]*m[7] - m[1]*m[8]),
		inv * (m[1]*m[5] - m[2]*m[4]),
		inv * (m[5]*m[6] - m[3]*m[8]),
		inv * (m[0]*m[8] - m[2]*m[6]),
		inv * (m[2]*m[3] - m[0]*m[5]),
		inv * (m[3]*m[7] - m[4]*m[6]),
		inv * (m[1]*m[6] - m[0]*m[7]),
		inv * (m[0]*m[4] - m[1]*m[3]),
	}, true
}

func (m Mat3[S]) SquaredNorm() S {
	var sum S
	for _, x := range m {
		sum += x * x
	}
	return sum
}

func (m Mat3[S]) Norm() S {
	return sqrt(m.SquaredNorm())
}

func (m Mat3[S]) Columns() (x, y, z Vec3[S]) {
	return Vec3[S]{m[0], m[1], m[2]}, Vec3[S]{m[3], m[4], m[5]}, Vec3[S]{m[6], m[7], m[8]}
}

// MinimumRotation returns the rotation matrix with the smallest angle that
// rotates the direction of from into the direction of to.
func MinimumRotation[S Scalar](from, to Vec3[S]) Mat3[S] {
	half := S(0.5)
	ep := from.Normalized()
	eq := to.Normalized()
	n := ep.Cross(eq)
	st2 := n.Dot(n)
	ct := ep.Dot(eq)

	if st2 < epsilon[S]() {
		// the axis is not well defined, the rotation is either very small
		// or very close to half a turn
		if ct > 1-epsilon[S]() {
			return Mat3[S]{
				1 + half*(n[0]*n[0]-st2),
				n[2] + half*(n[0]*n[1]),
				-n[1] + half*(n[0]*n[2]),
				-n[2] + half*(n[1]*n[0]),
				1 + half*(n[1]*n[1]-st2),
				n[0] + half*(n[1]*n[2]),
				n[1] + half*(n[2]*n[0]),
				-n[0] + half*(n[2]*n[1]),
				1 + half*(n[2]*n[2]-st2),
			}
		}

		// nearly half a turn, pick an axis orthogonal to both directions
		epx, epy := ep.OrthonormalBasis()
		eqx := epx.Sub(eq.Mul(eq.Dot(epx))).Normalized()
		eqy := eq.Cross(eqx)
		m := OuterProduct(1, eqx, epx)
		m = m.Add(OuterProduct(1, eqy, epy))
		return m.Add(OuterProduct(1, eq, ep))
	}

	st := sqrt(st2)
	n = n.Normalized()

	// Rodrigues' rotation formula
	return Mat3[S]{
		ct + (1-ct)*n[0]*n[0],
		n[2]*st + (1-ct)*n[0]*n[1],
		-n[1]*st + (1-ct)*n[0]*n[2],
		-n[2]*st + (1-ct)*n[1]*n[0],
		ct + (1-ct)*n[1]*n[1],
		n[0]*st + (1-ct)*n[1]*n[2],
		n[1]*st + (1-ct)*n[2]*n[0],
		-n[0]*st + (1-ct)*n[2]*n[1],
		ct + (1-ct)*n[2]*n[2],
	}
}

// AxisAngle returns the axis angle representation of a rotation matrix. The
// direction of the result is the rotation axis, its length the rotation
// angle in radians.
func (m Mat3[S]) AxisAngle() Vec3[S] {
	half := S(0.5)
	cos := (m[0] + m[4] + m[8] - 1) * half
	if abs(cos-1) <= epsilon[S]() {
		// very small rotation
		return Vec3[S]{(m[5] - m[7]) * half, (m[6] - m[2]) * half, (m[1] - m[3]) * half}
	}

	t := acos(cos)
	sin, _ := sincos(t)
	c := t * half / sin
	return Vec3[S]{c * (m[5] - m[7]), c * (m[6] - m[2]), c * (m[1] - m[3])}
}

// ToQuaternion converts a rotation matrix to a quaternion. The input must be
// a rotation matrix.
func (m Mat3[S]) ToQuaternion() Quat[S] {
	smat := [16]S{
		1 + m[0] - m[4] - m[8],
		m[3] + m[1],
		m[6] + m[2],
		m[5] - m[7],
		m[1] + m[3],
		1 - m[0] + m[4] - m[8],
		m[7] + m[5],
		m[6] - m[2],
		m[6] + m[2],
		m[7] + m[5],
		1 - m[0] - m[4] + m[8],
		m[1] - m[3],
		m[5] - m[7],
		m[6] - m[2],
		m[1] - m[3],
		1 + m[0] + m[4] + m[8],
	}

	imax := 0
	for k := 1; k < 4; k++ {
		if smat[k*4+k] > smat[imax*4+imax] {
			imax = k
		}
	}

	var quat Quat[S]
	quat[imax] = sqrt(smat[imax*4+imax]) / 2
	for k := range 4 {
		if k != imax {
			quat[k] = smat[imax*4+k] / (4 * quat[imax])
		}
	}
	return quat
}
