package gm3

// Quat is a quaternion with [i, j, k, w] storage.
type Quat[S Scalar] [4]S

// IdentityQuat returns the identity rotation.
func IdentityQuat[S Scalar]() Quat[S] {
	return Quat[S]{0, 0, 0, 1}
}

// QuatFromAxisAngle returns the rotation around the direction of v by an
// angle equal to the length of v in radians.
func QuatFromAxisAngle[S Scalar](v Vec3[S]) Quat[S] {
	angle := v.Length()
	if angle < epsilon[S]() {
		half := S(0.5)
		return Quat[S]{v[0] * half, v[1] * half, v[2] * half, 1}
	}

	sin, cos := sincos(angle / 2)
	k := sin / angle
	return Quat[S]{v[0] * k, v[1] * k, v[2] * k, cos}
}

func (q Quat[S]) Normalized() Quat[S] {
	inv := 1 / sqrt(q[0]*q[0]+q[1]*q[1]+q[2]*q[2]+q[3]*q[3])
	return Quat[S]{q[0] * inv, q[1] * inv, q[2] * inv, q[3] * inv}
}

// Mul returns the Hamilton product q * p, the rotation p followed by q.
func (q Quat[S]) Mul(p Quat[S]) Quat[S] {
	return Quat[S]{
		q[3]*p[0] + q[0]*p[3] + q[1]*p[2] - q[2]*p[1],
		q[3]*p[1] - q[0]*p[2] + q[1]*p[3] + q[2]*p[0],
		q[3]*p[2] + q[0]*p[1] - q[1]*p[0] + q[2]*p[3],
		q[3]*p[3] - q[0]*p[0] - q[1]*p[1] - q[2]*p[2],
	}
}

// ToMat3 returns the rotation matrix of a unit quaternion.
func (q Quat[S]) ToMat3() Mat3[S] {
	x, y, z, w := q[0], q[1], q[2], q[3]
	return Mat3[S]{
		1 - 2*(y*y+z*z), 2 * (x*y + z*w), 2 * (x*z - y*w),
		2 * (x*y - z*w), 1 - 2*(x*x+z*z), 2 * (y*z + x*w),
		2 * (x*z + y*w), 2 * (y*z - x*w), 1 - 2*(x*x+y*y),
	}
}

// ToMat4 returns the homogeneous rotation matrix of a unit quaternion.
func (q Quat[S]) ToMat4() Mat4[S] {
	m := q.ToMat3()
	return Mat4[S]{
		m[0], m[1], m[2], 0,
		m[3], m[4], m[5], 0,
		m[6], m[7], m[8], 0,
		0, 0, 0, 1,
	}
}
