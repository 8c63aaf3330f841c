package gm3

import "math"

// Aabb2 is a 2d axis aligned bounding box storing the min corner in slots
// 0 to 1 and the max corner in slots 2 to 3.
type Aabb2[S Scalar] [4]S

// Aabb3 is a 3d axis aligned bounding box storing the min corner in slots
// 0 to 2 and the max corner in slots 3 to 5.
type Aabb3[S Scalar] [6]S

func maxValue[S Scalar]() S {
	if _, ok := any(S(0)).(float32); ok {
		return S(math.MaxFloat32)
	}

	v := math.MaxFloat64
	return S(v)
}

// aabbLineRange clips the line org + t*dir against the box given as min and
// max corner slices and returns the parameter range of the overlap.
func aabbLineRange[S Scalar](aabb, org, dir []S) (tmin, tmax S, ok bool) {
	ndim := len(org)
	tmin = -maxValue[S]()
	tmax = maxValue[S]()

	for dim := range ndim {
		if dir[dim] != 0 {
			t1 := (aabb[dim] - org[dim]) / dir[dim]
			t2 := (aabb[dim+ndim] - org[dim]) / dir[dim]
			tmin = max(tmin, min(t1, t2))
			tmax = min(tmax, max(t1, t2))
		} else if org[dim] < aabb[dim] || org[dim] > aabb[dim+ndim] {
			return 0, 0, false
		}
	}

	if tmax < tmin {
		return 0, 0, false
	}
	return tmin, tmax, true
}

// LineIntersections returns the parameter range in which the infinite line
// org + t*dir overlaps the box. dir need not be a unit vector, the
// parameters are ratios of dir. ok is false if the line misses the box.
func (b Aabb2[S]) LineIntersections(org, dir Vec2[S]) (tmin, tmax S, ok bool) {
	return aabbLineRange(b[:], org[:], dir[:])
}

// RayIntersections is LineIntersections restricted to the ray t >= 0: hits
// entirely behind the ray origin report ok false.
func (b Aabb2[S]) RayIntersections(org, dir Vec2[S]) (tmin, tmax S, ok bool) {
	tmin, tmax, ok = b.LineIntersections(org, dir)
	if !ok || tmax < 0 {
		return 0, 0, false
	}
	return tmin, tmax, true
}

func (b Aabb2[S]) Contains(p Vec2[S]) bool {
	return p[0] >= b[0] && p[0] <= b[2] && p[1] >= b[1] && p[1] <= b[3]
}

func (b Aabb2[S]) Center() Vec2[S] {
	half := S(0.5)
	return Vec2[S]{(b[0] + b[2]) * half, (b[1] + b[3]) * half}
}

// LineIntersections returns the parameter range in which the infinite line
// org + t*dir overlaps the box. dir need not be a unit vector, the
// parameters are ratios of dir. ok is false if the line misses the box.
func (b Aabb3[S]) LineIntersections(org, dir Vec3[S]) (tmin, tmax S, ok bool) {
	return aabbLineRange(b[:], org[:], dir[:])
}

// RayIntersections is LineIntersections restricted to the ray t >= 0: hits
// entirely behind the ray origin report ok false.
func (b Aabb3[S]) RayIntersections(org, dir Vec3[S]) (tmin, tmax S, ok bool) {
	tmin, tmax, ok = b.LineIntersections(org, dir)
	if !ok || tmax < 0 {
		return 0, 0, false
	}
	return tmin, tmax, true
}

func (b Aabb3[S]) Contains(p Vec3[S]) bool {
	return p[0] >= b[0] && p[0] <= b[3] &&
		p[1] >= b[1] && p[1] <= b[4] &&
		p[2] >= b[2] && p[2] <= b[5]
}

func (b Aabb3[S]) Center() Vec3[S] {
	half := S(0.5)
	return Vec3[S]{(b[0] + b[3]) * half, (b[1] + b[4]) * half, (b[2] + b[5]) * half}
}
