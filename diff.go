package gm3

// axisPairs are the ordered axis pairs matching the components of a skew
// vector: component c of SkewVec belongs to the rotation in the plane of
// axisPairs[c].
var axisPairs = [3][2]int{{1, 2}, {2, 0}, {0, 1}}

// SVDDifferential returns the analytic derivative of an SVD triple with
// respect to the entries of the decomposed matrix, following Papadopoulo and
// Lourakis, "Estimating the Jacobian of the Singular Value Decomposition".
//
// The derivative of an orthogonal factor is an infinitesimal rotation and is
// reported as a skew vector: du[c][i+3*j] is component c of the rotation of
// u caused by a unit perturbation of the column major entry (i, j), dv is
// the same for v, and ds[k][i+3*j] is the change of the k-th singular value.
//
// The formulas divide by differences of squared singular values. They are
// undefined, not merely imprecise, when two singular values coincide or one
// is zero; callers must keep such inputs away from this function.
func SVDDifferential[S Scalar](u Mat3[S], s Vec3[S], v Mat3[S]) (du, ds, dv [3][9]S) {
	for i := range 3 {
		for j := range 3 {
			idx := i + 3*j

			// b = u^T * dA * v for the unit perturbation dA = e_i e_j^T
			for k := range 3 {
				ds[k][idx] = u[i+3*k] * v[j+3*k]
			}

			for c, pair := range axisPairs {
				k, l := pair[0], pair[1]
				bkl := u[i+3*k] * v[j+3*l]
				blk := u[i+3*l] * v[j+3*k]

				det := s[l]*s[l] - s[k]*s[k]
				du[c][idx] = (s[l]*bkl + s[k]*blk) / det
				dv[c][idx] = (s[k]*bkl + s[l]*blk) / det
			}
		}
	}

	return du, ds, dv
}

// SVDDifferentialRowMajor is SVDDifferential for a triple produced by
// SVDRowMajor. Sensitivities are indexed by the row major entry 3*i+j. The
// whole computation is the transpose of the column major one: u and v swap
// roles while the flat entry indices coincide.
func SVDDifferentialRowMajor[S Scalar](u [9]S, s Vec3[S], v [9]S) (du, ds, dv [3][9]S) {
	dv2, ds2, du2 := SVDDifferential(Mat3[S](v).Transpose(), s, Mat3[S](u).Transpose())
	return du2, ds2, dv2
}
