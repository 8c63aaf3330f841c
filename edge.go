package gm3

// EdgePosition returns the point on the segment p0-p1 at the given ratio;
// ratio 0 yields p0, ratio 1 yields p1.
func EdgePosition[S Scalar](p0, p1 Vec3[S], ratio S) Vec3[S] {
	return Vec3[S]{
		(1-ratio)*p0[0] + ratio*p1[0],
		(1-ratio)*p0[1] + ratio*p1[1],
		(1-ratio)*p0[2] + ratio*p1[2],
	}
}

// NearestPointOnEdge returns the distance from q to the segment p0-p1 and
// the ratio of the closest point on the segment. A degenerate segment yields
// ratio 0.5.
func NearestPointOnEdge[S Scalar](p0, p1, q Vec3[S]) (dist, ratio S) {
	d := p1.Sub(p0)

	ratio = S(0.5)
	if d.Dot(d) > epsilon[S]() {
		ps := p0.Sub(q)
		a := d.Dot(d)
		b := d.Dot(ps)
		ratio = clamp(-b/a, 0, 1)
	}

	p := Axpy3(ratio, d, p0)
	return p.Sub(q).Length(), ratio
}

// NearestBetweenEdges returns the distance between the segments p0-p1 and
// q0-q1 together with the ratios of the closest point pair. Both segments
// must have non zero length.
func NearestBetweenEdges[S Scalar](p0, p1, q0, q1 Vec3[S]) (dist, rp, rq S) {
	half := S(0.5)
	vp := p1.Sub(p0)
	vq := q1.Sub(q0)

	if vp.Cross(vq).Length() < epsilon[S]() {
		// parallel segments: project everything onto the shared direction
		pq0 := p0.Sub(q0)
		uvp := vp.Normalized()

		vert := pq0.Sub(uvp.Mul(pq0.Dot(uvp)))
		dist = vert.Length()

		lp0 := p0.Dot(uvp)
		lp1 := p1.Dot(uvp)
		lq0 := q0.Dot(uvp)
		lq1 := q1.Dot(uvp)

		lpMin, lpMax, pMin, pMax, rpMin, rpMax := lp0, lp1, p0, p1, S(0), S(1)
		lqMin, lqMax, qMin, qMax, rqMin, rqMax := lq0, lq1, q0, q1, S(0), S(1)
		if lq1 < lq0 {
			lqMin, lqMax, qMin, qMax, rqMin, rqMax = lq1, lq0, q1, q0, 1, 0
		}

		if lpMax < lqMin {
			return pMax.Sub(qMin).Length(), rpMax, rqMin
		}
		if lqMax < lpMin {
			return qMax.Sub(pMin).Length(), rpMin, rqMax
		}

		lm := (max(lpMin, lqMin) + min(lpMax, lqMax)) * half
		rp = (lm - lp0) / (lp1 - lp0)
		rq = (lm - lq0) / (lq1 - lq0)
		return dist, rp, rq
	}

	// closest points of the supporting lines
	t0 := vp.Dot(vp)
	t1 := vq.Dot(vq)
	t2 := vp.Dot(vq)
	t3 := vp.Dot(q0.Sub(p0))
	t4 := vq.Dot(q0.Sub(p0))
	det := t0*t1 - t2*t2
	rp = (t1*t3 - t2*t4) / det
	rq = (t2*t3 - t0*t4) / det

	if 0 <= rp && rp <= 1 && 0 <= rq && rq <= 1 {
		pc := p0.Add(vp.Mul(rp))
		qc := q0.Add(vq.Mul(rq))
		return pc.Sub(qc).Length(), rp, rq
	}

	if 0 <= rp && rp <= 1 {
		rq = clamp(rq, 0, 1)
		qc := Axpy3(rq, vq, q0)
		dist, rp = NearestPointOnEdge(p0, p1, qc)
		return dist, rp, rq
	}

	if 0 <= rq && rq <= 1 {
		rp = clamp(rp, 0, 1)
		pc := Axpy3(rp, vp, p0)
		dist, rq = NearestPointOnEdge(q0, q1, pc)
		return dist, rp, rq
	}

	// both outside: alternate projections until fixed
	rp = clamp(rp, 0, 1)
	pc := p0.Add(vp.Mul(rp))
	_, rq = NearestPointOnEdge(q0, q1, pc)
	qc := q0.Add(vq.Mul(rq))
	_, rp = NearestPointOnEdge(p0, p1, qc)
	pc = p0.Add(vp.Mul(rp))
	dist, rq = NearestPointOnEdge(q0, q1, pc)
	return dist, rp, rq
}

// TetVolume returns the signed volume of the tetrahedron spanned by the four
// points.
func TetVolume[S Scalar](p0, p1, p2, p3 Vec3[S]) S {
	v := p1.Sub(p0).Cross(p2.Sub(p0)).Dot(p3.Sub(p0))
	return v / 6
}

// CoplanarEdgeIntersection intersects the segments p0-p1 and q0-q1, which
// must be coplanar. It returns the barycentric ratios of the intersection on
// both segments. ok is false if a segment degenerates against the shared
// plane and the intersection cannot be disambiguated.
func CoplanarEdgeIntersection[S Scalar](p0, p1, q0, q1 Vec3[S]) (rp0, rp1, rq0, rq1 S, ok bool) {
	n0 := p1.Sub(p0).Cross(q0.Sub(p0))
	n1 := p1.Sub(p0).Cross(q1.Sub(p0))
	n := n0
	if n0.LengthSqr() < n1.LengthSqr() {
		n = n1
	}

	p2 := p0.Add(n)
	rq1 = TetVolume(p0, p1, p2, q0)
	rq0 = TetVolume(p0, p1, p2, q1)
	rp1 = TetVolume(q0, q1, p2, p0)
	rp0 = TetVolume(q0, q1, p2, p1)

	if abs(rp0-rp1) == 0 || abs(rq0-rq1) == 0 {
		return 0, 0, 0, 0, false
	}

	t := 1 / (rp0 - rp1)
	rp0, rp1 = rp0*t, -rp1*t
	t = 1 / (rq0 - rq1)
	rq0, rq1 = rq0*t, -rq1*t
	return rp0, rp1, rq0, rq1, true
}

// InverseDistanceCubicIntegral integrates 1/dist^3 between q and the points
// of the segment p0-p1, and returns the value together with its gradient
// with respect to q.
func InverseDistanceCubicIntegral[S Scalar](q, p0, p1 Vec3[S]) (S, Vec3[S]) {
	length := p1.Sub(p0).Length()
	lsinv := 1 / (length * length)

	// dist^2 = e*(x^2 + a) with x = r + d along the segment
	d := p0.Sub(p1).Dot(q.Sub(p0)) * lsinv
	a := q.Sub(p0).LengthSqr()*lsinv - d*d

	f := func(x S) S {
		return x / (a * sqrt(a+x*x))
	}
	v := (f(d+1) - f(d)) * lsinv

	dd := p0.Sub(p1).Mul(lsinv)
	da := q.Sub(p0).Mul(2 * lsinv).Sub(dd.Mul(2 * d))

	dfdx := func(x S) S {
		t := a + x*x
		return 1 / (t * sqrt(t))
	}
	dfda := func(x S) S {
		t := a + x*x
		return -(x * (3*a + 2*x*x)) / (2 * a * a * t * sqrt(t))
	}

	t0 := dd.Mul(dfdx(d+1) - dfdx(d))
	t1 := da.Mul(dfda(d+1) - dfda(d))
	return v, t0.Add(t1).Mul(lsinv)
}
