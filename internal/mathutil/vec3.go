package mathutil

import "github.com/chewxy/math32"

// Vector3 is a single-precision 3-component vector (value type).
// It is used both as a point and as a direction; callers track which.
type Vector3 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

func (a Vector3) Add(b Vector3) Vector3 {
	return Vector3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func (a Vector3) Sub(b Vector3) Vector3 {
	return Vector3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func (v Vector3) Scale(s float32) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vector3) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// IsFinite reports whether no component is NaN or ±Inf.
func (v Vector3) IsFinite() bool {
	for _, c := range [3]float32{v.X, v.Y, v.Z} {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Dot returns the Euclidean inner product.
func Dot(a, b Vector3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the right-handed cross product a × b.
func Cross(a, b Vector3) Vector3 {
	return Vector3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Normalize returns v scaled to unit length. A zero-length input yields the
// zero vector instead of NaN.
func Normalize(v Vector3) Vector3 {
	l := v.Length()
	if l == 0 {
		return Vector3{}
	}
	return Vector3{v.X / l, v.Y / l, v.Z / l}
}

// Perpendicular returns some vector perpendicular to v: (-y, x, 0) when x or y
// is nonzero, otherwise (0, z, y). The result is not normalized, and the second
// branch is only a convenience, not a general basis construction.
func Perpendicular(v Vector3) Vector3 {
	if v.X != 0 || v.Y != 0 {
		return Vector3{-v.Y, v.X, 0}
	}
	return Vector3{0, v.Z, v.Y}
}
