package gm3

// SVD computes the singular value decomposition m == u * diag(s) * v^T.
// u and v are orthogonal, the singular values are non negative and follow
// the eigenvalue order of the chosen mode, they are not sorted. The
// determinants of u and v are each +1 or -1; use EnforceRotation to project
// both onto proper rotations.
//
// ok is false if the Gram matrix of m degenerates, which happens for inputs
// with near zero Frobenius norm.
func (m Mat3[S]) SVD(mode EigenMode) (u Mat3[S], s Vec3[S], v Mat3[S], ok bool) {
	v, l, ok := Gram(m).Eigen(mode)
	if !ok {
		return Mat3[S]{}, Vec3[S]{}, Mat3[S]{}, false
	}

	for k := range 3 {
		s[k] = sqrt(max(l[k], 0))
	}

	v0, v1, v2 := v.Columns()
	cols := [3]Vec3[S]{v0, v1, v2}

	// columns of u for non vanishing singular values are the transformed
	// columns of v. Below sqrt(epsilon) relative to the largest singular
	// value the direction is lost in the squared conditioning of the Gram
	// matrix and cannot be recovered.
	smax := max(s[0], s[1], s[2])
	cutoff := sqrt(epsilon[S]()) * smax

	var ucols [3]Vec3[S]
	var set [3]bool
	for k := range 3 {
		if s[k] > cutoff {
			ucols[k] = m.MulVec(cols[k]).Mul(1 / s[k])
			set[k] = true
		}
	}

	// complete degenerate columns deterministically: the cross product of
	// the two other columns where both exist, an orthonormal basis of the
	// remaining column otherwise
	for k := range 3 {
		if !set[k] && set[(k+1)%3] && set[(k+2)%3] {
			ucols[k] = ucols[(k+1)%3].Cross(ucols[(k+2)%3]).Normalized()
			set[k] = true
		}
	}
	for k := range 3 {
		if set[k] {
			continue
		}
		for j := range 3 {
			if set[j] {
				x, y := ucols[j].OrthonormalBasis()
				ucols[k] = x
				set[k] = true
				ucols[3-j-k] = y
				set[3-j-k] = true
				break
			}
		}
	}

	u = Mat3FromColumns(ucols[0], ucols[1], ucols[2])
	return u, s, v, true
}

// SVDRowMajor computes the singular value decomposition of a matrix given in
// row major order. The returned u and v are again row major. It delegates to
// the column major engine on the transposed interpretation of the same
// array.
func SVDRowMajor[S Scalar](m [9]S, mode EigenMode) (u [9]S, s Vec3[S], v [9]S, ok bool) {
	// the flat array read as column major is the transpose, whose SVD swaps
	// the roles of u and v
	uc, s, vc, ok := Mat3[S](m).SVD(mode)
	if !ok {
		return [9]S{}, Vec3[S]{}, [9]S{}, false
	}

	return [9]S(vc.Transpose()), s, [9]S(uc.Transpose()), true
}

// EnforceRotation adjusts an SVD triple so that both orthogonal factors have
// determinant +1. Whenever a factor is improper its third column is negated
// together with the third singular value, so u * diag(s) * v^T is preserved
// exactly. The third singular value may end up negative. Proper factors are
// returned untouched, applying EnforceRotation twice is a no-op.
func EnforceRotation[S Scalar](u Mat3[S], s Vec3[S], v Mat3[S]) (Mat3[S], Vec3[S], Mat3[S]) {
	if v.Determinant() < 0 {
		v[6] = -v[6]
		v[7] = -v[7]
		v[8] = -v[8]
		s[2] = -s[2]
	}
	if u.Determinant() < 0 {
		u[6] = -u[6]
		u[7] = -u[7]
		u[8] = -u[8]
		s[2] = -s[2]
	}

	return u, s, v
}

// RotationalComponent returns the closest proper rotation to the matrix,
// u * v^T from its SVD with the sign corrected so that the determinant is
// +1. ok is false if the SVD degenerates.
func (m Mat3[S]) RotationalComponent() (Mat3[S], bool) {
	u, _, v, ok := m.SVD(Jacobi(20))
	if !ok {
		return Mat3[S]{}, false
	}

	vt := v.Transpose()
	r := u.Mul(vt)
	if r.Determinant() > 0 {
		return r, true
	}

	// flip the third row of v^T to land on the proper side
	vt[2] = -vt[2]
	vt[5] = -vt[5]
	vt[8] = -vt[8]
	return u.Mul(vt), true
}
