package mathutil

import "github.com/chewxy/math32"

// MakeRotateXMatrix returns a rotation around the X axis. Angle in radians.
func MakeRotateXMatrix(radian float32) Matrix4x4 {
	s, c := math32.Sincos(radian)
	m := MakeIdentity4x4()
	m.M[1][1] = c
	m.M[1][2] = s
	m.M[2][1] = -s
	m.M[2][2] = c
	return m
}

// MakeRotateYMatrix returns a rotation around the Y axis.
func MakeRotateYMatrix(radian float32) Matrix4x4 {
	s, c := math32.Sincos(radian)
	m := MakeIdentity4x4()
	m.M[0][0] = c
	m.M[0][2] = -s
	m.M[2][0] = s
	m.M[2][2] = c
	return m
}

// MakeRotateZMatrix returns a rotation around the Z axis.
func MakeRotateZMatrix(radian float32) Matrix4x4 {
	s, c := math32.Sincos(radian)
	m := MakeIdentity4x4()
	m.M[0][0] = c
	m.M[0][1] = s
	m.M[1][0] = -s
	m.M[1][1] = c
	return m
}
