package gm3

// Mat4 is a 4x4 matrix of Scalar values in column major order.
type Mat4[S Scalar] [16]S

// IdentityMat4 returns the identity matrix.
func IdentityMat4[S Scalar]() Mat4[S] {
	var m Mat4[S]
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
	return m
}

// TranslationMat4 returns the matrix translating by v.
func TranslationMat4[S Scalar](v Vec3[S]) Mat4[S] {
	m := IdentityMat4[S]()
	m[12], m[13], m[14] = v[0], v[1], v[2]
	return m
}

// Mul returns the matrix product m * other.
func (m Mat4[S]) Mul(other Mat4[S]) Mat4[S] {
	var r Mat4[S]
	for i := range 4 {
		for j := range 4 {
			for k := range 4 {
				r[i+4*j] += m[i+4*k] * other[k+4*j]
			}
		}
	}
	return r
}

// TransformPoint applies the matrix to a 3d point in homogeneous
// coordinates. ok is false if the transformed point lies at infinity.
func (m Mat4[S]) TransformPoint(p Vec3[S]) (Vec3[S], bool) {
	w := m[3]*p[0] + m[7]*p[1] + m[11]*p[2] + m[15]
	if w == 0 {
		return Vec3[S]{}, false
	}

	return Vec3[S]{
		(m[0]*p[0] + m[4]*p[1] + m[8]*p[2] + m[12]) / w,
		(m[1]*p[0] + m[5]*p[1] + m[9]*p[2] + m[13]) / w,
		(m[2]*p[0] + m[6]*p[1] + m[10]*p[2] + m[14]) / w,
	}, true
}
