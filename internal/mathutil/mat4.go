package mathutil

// Matrix4x4 is a 4×4 single-precision matrix, row-major with the row-vector
// convention: a point transforms as p × M and translation lives in row 3.
// Value type; constructors and Multiply always return a new matrix.
type Matrix4x4 struct {
	M [4][4]float32
}

func MakeIdentity4x4() Matrix4x4 {
	var m Matrix4x4
	for i := 0; i < 4; i++ {
		m.M[i][i] = 1
	}
	return m
}

// Multiply returns m1 × m2. Under the row-vector convention the left operand
// is applied first.
func Multiply(m1, m2 Matrix4x4) Matrix4x4 {
	var m Matrix4x4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m1.M[i][k] * m2.M[k][j]
			}
			m.M[i][j] = sum
		}
	}
	return m
}

// MakeTranslateMatrix places t in row 3.
func MakeTranslateMatrix(t Vector3) Matrix4x4 {
	m := MakeIdentity4x4()
	m.M[3][0] = t.X
	m.M[3][1] = t.Y
	m.M[3][2] = t.Z
	return m
}

func MakeScaleMatrix(s Vector3) Matrix4x4 {
	m := MakeIdentity4x4()
	m.M[0][0] = s.X
	m.M[1][1] = s.Y
	m.M[2][2] = s.Z
	return m
}

// MakeAffineMatrix composes scale × (Rz × (Ry × Rx)) × translate.
// rotate holds the per-axis angles in radians.
func MakeAffineMatrix(scale, rotate, translate Vector3) Matrix4x4 {
	rotateXYZ := Multiply(MakeRotateZMatrix(rotate.Z), Multiply(MakeRotateYMatrix(rotate.Y), MakeRotateXMatrix(rotate.X)))
	return Multiply(MakeScaleMatrix(scale), Multiply(rotateXYZ, MakeTranslateMatrix(translate)))
}

// InverseRigid inverts a rigid transform (rotation + translation only) by
// transposing the 3×3 rotation block and setting the translation to -t·Rᵗ.
//
// This is not a general inverse. A matrix carrying scale, skew or projection
// produces a wrong result without any signal; check IsRigid first when the
// input is not known to be rigid.
func InverseRigid(m Matrix4x4) Matrix4x4 {
	r := MakeIdentity4x4()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.M[i][j] = m.M[j][i]
		}
	}
	t := m.M[3]
	for j := 0; j < 3; j++ {
		r.M[3][j] = -t[0]*r.M[0][j] - t[1]*r.M[1][j] - t[2]*r.M[2][j]
	}
	return r
}

// IsRigid reports whether m is a rotation + translation: orthonormal upper
// 3×3 block and a (0, 0, 0, 1) last column.
func IsRigid(m Matrix4x4, eps float32) bool {
	if !NearlyEqual(m.M[0][3], 0, eps) || !NearlyEqual(m.M[1][3], 0, eps) ||
		!NearlyEqual(m.M[2][3], 0, eps) || !NearlyEqual(m.M[3][3], 1, eps) {
		return false
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var d float32
			for k := 0; k < 3; k++ {
				d += m.M[i][k] * m.M[j][k]
			}
			want := float32(0)
			if i == j {
				want = 1
			}
			if !NearlyEqual(d, want, eps) {
				return false
			}
		}
	}
	return true
}

// ApproxEqual compares two matrices component-wise within eps.
func (m Matrix4x4) ApproxEqual(o Matrix4x4, eps float32) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if !NearlyEqual(m.M[i][j], o.M[i][j], eps) {
				return false
			}
		}
	}
	return true
}

// IsIdentity checks if the matrix is approximately identity.
func (m Matrix4x4) IsIdentity(eps float32) bool {
	return m.ApproxEqual(MakeIdentity4x4(), eps)
}
