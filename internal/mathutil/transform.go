package mathutil

// Vector4 is a homogeneous point before the perspective divide.
type Vector4 struct {
	X, Y, Z, W float32
}

// TransformHomogeneous multiplies (v, 1) × m without dividing by w.
func TransformHomogeneous(v Vector3, m Matrix4x4) Vector4 {
	return Vector4{
		X: v.X*m.M[0][0] + v.Y*m.M[1][0] + v.Z*m.M[2][0] + m.M[3][0],
		Y: v.X*m.M[0][1] + v.Y*m.M[1][1] + v.Z*m.M[2][1] + m.M[3][1],
		Z: v.X*m.M[0][2] + v.Y*m.M[1][2] + v.Z*m.M[2][2] + m.M[3][2],
		W: v.X*m.M[0][3] + v.Y*m.M[1][3] + v.Z*m.M[2][3] + m.M[3][3],
	}
}

// Divide performs the perspective divide. A zero w is not guarded: the result
// carries ±Inf or NaN, which callers detect with Vector3.IsFinite.
func (h Vector4) Divide() Vector3 {
	return Vector3{h.X / h.W, h.Y / h.W, h.Z / h.W}
}

// Transform treats v as a point with w=1, transforms it by m and divides by
// the resulting w.
func Transform(v Vector3, m Matrix4x4) Vector3 {
	return TransformHomogeneous(v, m).Divide()
}
