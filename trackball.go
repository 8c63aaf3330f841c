package gm3

// Trackball accumulates cursor movement into a camera rotation.
type Trackball[S Scalar] struct {
	Quaternion Quat[S]
}

// NewTrackball returns a trackball with the identity rotation.
func NewTrackball[S Scalar]() Trackball[S] {
	return Trackball[S]{Quaternion: IdentityQuat[S]()}
}

// Rotate spins the trackball by a cursor movement of (dx, dy). The rotation
// axis lies in the screen plane, orthogonal to the movement.
func (t *Trackball[S]) Rotate(dx, dy S) {
	if dx*dx+dy*dy == 0 {
		return
	}

	dq := QuatFromAxisAngle(Vec3[S]{-dy, dx, 0}).Normalized()
	t.Quaternion = dq.Mul(t.Quaternion)
}

// Mat4 returns the current rotation as a homogeneous column major matrix.
func (t *Trackball[S]) Mat4() Mat4[S] {
	return t.Quaternion.ToMat4()
}
