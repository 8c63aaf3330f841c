package gm3

import "math"

// SymMat3 is a packed symmetric 3x3 matrix. The diagonal entries m00, m11,
// m22 are stored in slots 0 to 2, the off diagonal entries m12, m20, m01 in
// slots 3 to 5. Callers are responsible for only packing genuinely symmetric
// matrices, for example a Gram matrix.
type SymMat3[S Scalar] [6]S

// SymFromMat3 packs a symmetric matrix. The lower triangle of m is ignored.
func SymFromMat3[S Scalar](m Mat3[S]) SymMat3[S] {
	return SymMat3[S]{m[0], m[4], m[8], m[7], m[6], m[3]}
}

// Gram returns the packed Gram matrix a^T * a.
func Gram[S Scalar](a Mat3[S]) SymMat3[S] {
	x, y, z := a.Columns()
	return SymMat3[S]{x.Dot(x), y.Dot(y), z.Dot(z), y.Dot(z), z.Dot(x), x.Dot(y)}
}

// Mat3 unpacks the symmetric matrix.
func (sm SymMat3[S]) Mat3() Mat3[S] {
	return Mat3[S]{
		sm[0], sm[5], sm[4],
		sm[5], sm[1], sm[3],
		sm[4], sm[3], sm[2],
	}
}

// SquaredNorm returns the squared Frobenius norm of the unpacked matrix.
func (sm SymMat3[S]) SquaredNorm() S {
	return sm[0]*sm[0] + sm[1]*sm[1] + sm[2]*sm[2] +
		2*(sm[3]*sm[3]+sm[4]*sm[4]+sm[5]*sm[5])
}

// EigenMode selects how a symmetric eigendecomposition is computed.
type EigenMode struct {
	iterations int
}

// Jacobi selects the iterative solver running exactly n Jacobi rotations.
// Around n=20 the result is accurate to roughly 1e-10, n=100 gives full
// float64 precision.
func Jacobi(n int) EigenMode {
	return EigenMode{iterations: n}
}

// Analytic selects the closed form solution of the characteristic
// polynomial. It is cheaper than the iterative solver but can lose accuracy
// when eigenvalues nearly coincide.
var Analytic = EigenMode{}

// Eigen computes the eigendecomposition of the packed symmetric matrix with
// the given mode. See EigenDecomp for the result contract.
func (sm SymMat3[S]) Eigen(mode EigenMode) (u Mat3[S], l Vec3[S], ok bool) {
	if mode.iterations > 0 {
		return EigenDecomp(sm, mode.iterations)
	}

	return eigenAnalytic(sm)
}

// EigenDecomp computes the eigendecomposition of a packed symmetric matrix
// with cyclic Jacobi rotations. The columns of u are the eigenvectors of the
// matrix, l holds the matching eigenvalues in no particular order, so that
// sm == u * diag(l) * u^T up to solver tolerance.
//
// Exactly iterations rotations are run, each annihilating the off diagonal
// entry that is currently largest in magnitude. ok is false if the squared
// Frobenius norm of the input is below machine epsilon; such a matrix has no
// meaningful eigenbasis.
func EigenDecomp[S Scalar](sm SymMat3[S], iterations int) (u Mat3[S], l Vec3[S], ok bool) {
	dnrm := sm.SquaredNorm()
	if dnrm < epsilon[S]() {
		return Mat3[S]{}, Vec3[S]{}, false
	}

	// normalize to keep the rotation angles well conditioned
	scale := sqrt(dnrm)
	sms := sm
	for i := range sms {
		sms[i] /= scale
	}

	u = IdentityMat3[S]()
	half := S(0.5)

	for range iterations {
		m := sms
		v := u
		a12 := abs(sms[3])
		a20 := abs(sms[4])
		a01 := abs(sms[5])

		switch {
		case a12 >= a20 && a12 >= a01:
			t := half * atan2(2*m[3], m[2]-m[1])
			st, ct := sincos(t)
			sms[1] = ct*ct*m[1] + st*st*m[2] - 2*st*ct*m[3]
			sms[2] = ct*ct*m[2] + st*st*m[1] + 2*st*ct*m[3]
			sms[3] = 0
			sms[4] = st*m[5] + ct*m[4]
			sms[5] = ct*m[5] - st*m[4]

			u[3] = ct*v[3] - st*v[6]
			u[6] = st*v[3] + ct*v[6]
			u[4] = ct*v[4] - st*v[7]
			u[7] = st*v[4] + ct*v[7]
			u[5] = ct*v[5] - st*v[8]
			u[8] = st*v[5] + ct*v[8]

		case a20 >= a01 && a20 >= a12:
			t := half * atan2(2*m[4], m[2]-m[0])
			st, ct := sincos(t)
			sms[0] = ct*ct*m[0] + st*st*m[2] - 2*st*ct*m[4]
			sms[2] = ct*ct*m[2] + st*st*m[0] + 2*st*ct*m[4]
			sms[3] = st*m[5] + ct*m[3]
			sms[4] = 0
			sms[5] = ct*m[5] - st*m[3]

			u[0] = ct*v[0] - st*v[6]
			u[6] = st*v[0] + ct*v[6]
			u[1] = ct*v[1] - st*v[7]
			u[7] = st*v[1] + ct*v[7]
			u[2] = ct*v[2] - st*v[8]
			u[8] = st*v[2] + ct*v[8]

		default:
			t := half * atan2(2*m[5], m[1]-m[0])
			st, ct := sincos(t)
			sms[0] = ct*ct*m[0] + st*st*m[1] - 2*st*ct*m[5]
			sms[1] = ct*ct*m[1] + st*st*m[0] + 2*st*ct*m[5]
			sms[3] = st*m[4] + ct*m[3]
			sms[4] = ct*m[4] - st*m[3]
			sms[5] = 0

			u[0] = ct*v[0] - st*v[3]
			u[3] = st*v[0] + ct*v[3]
			u[1] = ct*v[1] - st*v[4]
			u[4] = st*v[1] + ct*v[4]
			u[2] = ct*v[2] - st*v[5]
			u[5] = st*v[2] + ct*v[5]
		}
	}

	l = Vec3[S]{scale * sms[0], scale * sms[1], scale * sms[2]}
	return u, l, true
}

// eigenAnalytic solves the characteristic cubic of the symmetric matrix
// trigonometrically and builds an orthonormal eigenbasis from it. The first
// eigenvector is taken for the best separated eigenvalue via the largest
// cross product of rows of (A - l*I), the second is solved in its orthogonal
// complement, the third is their cross product.
func eigenAnalytic[S Scalar](sm SymMat3[S]) (u Mat3[S], l Vec3[S], ok bool) {
	dnrm := sm.SquaredNorm()
	if dnrm < epsilon[S]() {
		return Mat3[S]{}, Vec3[S]{}, false
	}

	scale := sqrt(dnrm)
	sms := sm
	for i := range sms {
		sms[i] /= scale
	}

	p1 := sms[5]*sms[5] + sms[4]*sms[4] + sms[3]*sms[3]
	if p1 == 0 {
		// already diagonal
		return IdentityMat3[S](), Vec3[S]{scale * sms[0], scale * sms[1], scale * sms[2]}, true
	}

	q := (sms[0] + sms[1] + sms[2]) / 3
	p2 := (sms[0]-q)*(sms[0]-q) + (sms[1]-q)*(sms[1]-q) + (sms[2]-q)*(sms[2]-q) + 2*p1
	p := sqrt(p2 / 6)

	a := sms.Mat3()
	b := a.Sub(DiagonalMat3(Vec3[S]{q, q, q})).Scale(1 / p)
	r := clamp(b.Determinant()/2, -1, 1)
	phi := acos(r) / 3

	twoPiThird := S(2 * math.Pi / 3)
	l0 := q + 2*p*S(math.Cos(float64(phi)))
	l2 := q + 2*p*S(math.Cos(float64(phi+twoPiThird)))
	l1 := 3*q - l0 - l2

	// resolve the best separated eigenvalue first
	first := l0
	if l0-l1 < l1-l2 {
		first = l2
	}

	vfirst := crossRowEigenvector(sms, first)
	w0, w1 := vfirst.OrthonormalBasis()

	// (A - l1*I) restricted to the complement of vfirst
	aw0 := a.MulVec(w0)
	aw1 := a.MulVec(w1)
	b00 := w0.Dot(aw0) - l1
	b01 := w0.Dot(aw1)
	b11 := w1.Dot(aw1) - l1

	var z0, z1 S
	switch {
	case abs(b00) >= abs(b11) && (b00 != 0 || b01 != 0):
		z0, z1 = b01, -b00
	case b11 != 0 || b01 != 0:
		z0, z1 = b11, -b01
	default:
		z0, z1 = 1, 0
	}

	zn := sqrt(z0*z0 + z1*z1)
	vsecond := w0.Mul(z0 / zn).Add(w1.Mul(z1 / zn))
	vthird := vfirst.Cross(vsecond)

	if first == l0 {
		u = Mat3FromColumns(vfirst, vsecond, vthird)
	} else {
		u = Mat3FromColumns(vthird, vsecond, vfirst)
	}

	return u, Vec3[S]{scale * l0, scale * l1, scale * l2}, true
}

// crossRowEigenvector returns a unit eigenvector of the unpacked matrix for
// the eigenvalue l, picked as the largest cross product of two rows of
// (A - l*I). l must be well separated from the other eigenvalues.
func crossRowEigenvector[S Scalar](sm SymMat3[S], l S) Vec3[S] {
	r0 := Vec3[S]{sm[0] - l, sm[5], sm[4]}
	r1 := Vec3[S]{sm[5], sm[1] - l, sm[3]}
	r2 := Vec3[S]{sm[4], sm[3], sm[2] - l}

	best := r0.Cross(r1)
	if c := r1.Cross(r2); c.LengthSqr() > best.LengthSqr() {
		best = c
	}
	if c := r2.Cross(r0); c.LengthSqr() > best.LengthSqr() {
		best = c
	}

	if best.LengthSqr() == 0 {
		return Vec3[S]{1, 0, 0}
	}
	return best.Normalized()
}
