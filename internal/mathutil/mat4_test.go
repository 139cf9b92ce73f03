package mathutil

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// toMgl reinterprets a row-major row-vector matrix as mgl32's column-major
// column-vector layout. Both flatten to the same 16 floats.
func toMgl(m Matrix4x4) mgl32.Mat4 {
	var out mgl32.Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i*4+j] = m.M[i][j]
		}
	}
	return out
}

func sampleMatrices() []Matrix4x4 {
	return []Matrix4x4{
		MakeIdentity4x4(),
		MakeRotateXMatrix(0.26),
		MakeTranslateMatrix(Vector3{0, 1.9, -6.49}),
		MakeAffineMatrix(Vector3{1.2, 0.79, -2.1}, Vector3{0.4, 1.43, -0.8}, Vector3{2.7, -4.15, 1.57}),
		MakePerspectiveFovMatrix(0.45, 1280.0/720.0, 0.1, 100),
		MakeViewportMatrix(0, 0, 1280, 720, 0, 1),
		{M: [4][4]float32{
			{1, 2, 3, 4},
			{5, 6, 7, 8},
			{9, 10, 11, 12},
			{13, 14, 15, 16},
		}},
	}
}

func TestMultiplyIdentity(t *testing.T) {
	id := MakeIdentity4x4()
	for i, m := range sampleMatrices() {
		if got := Multiply(m, id); !got.ApproxEqual(m, tolerance) {
			t.Errorf("case %d: M × I = %v, want %v", i, got, m)
		}
		if got := Multiply(id, m); !got.ApproxEqual(m, tolerance) {
			t.Errorf("case %d: I × M = %v, want %v", i, got, m)
		}
	}
}

func TestMultiplyKnown(t *testing.T) {
	a := Matrix4x4{M: [4][4]float32{
		{3, 2, 0, 1},
		{4, 0, 1, 2},
		{3, 0, 2, 1},
		{9, 2, 3, 1},
	}}
	b := Matrix4x4{M: [4][4]float32{
		{-3, 2, 3, 9},
		{1, 0, 1, 2},
		{3, 3, 2, 1},
		{3, 2, 3, 9},
	}}
	want := Matrix4x4{M: [4][4]float32{
		{-4, 8, 14, 40},
		{-3, 15, 20, 55},
		{0, 14, 16, 38},
		{-13, 29, 38, 97},
	}}
	if got := Multiply(a, b); got != want {
		t.Errorf("Multiply = %v, want %v", got, want)
	}
	if Multiply(a, b) == Multiply(b, a) {
		t.Error("Multiply unexpectedly commutative for sample")
	}
}

func TestRotationLayout(t *testing.T) {
	s, c := math32.Sincos(0.5)
	rx := MakeRotateXMatrix(0.5)
	if rx.M[1][2] != s || rx.M[2][1] != -s || rx.M[1][1] != c || rx.M[2][2] != c {
		t.Errorf("RotateX layout = %v", rx)
	}
	ry := MakeRotateYMatrix(0.5)
	if ry.M[0][2] != -s || ry.M[2][0] != s {
		t.Errorf("RotateY layout = %v", ry)
	}
	rz := MakeRotateZMatrix(0.5)
	if rz.M[0][1] != s || rz.M[1][0] != -s {
		t.Errorf("RotateZ layout = %v", rz)
	}
}

func TestAgainstMathgl(t *testing.T) {
	const a = 0.73
	tests := []struct {
		name string
		got  Matrix4x4
		want mgl32.Mat4
	}{
		{"rotate x", MakeRotateXMatrix(a), mgl32.HomogRotate3DX(a)},
		{"rotate y", MakeRotateYMatrix(a), mgl32.HomogRotate3DY(a)},
		{"rotate z", MakeRotateZMatrix(a), mgl32.HomogRotate3DZ(a)},
		{"translate", MakeTranslateMatrix(Vector3{1, -2, 3}), mgl32.Translate3D(1, -2, 3)},
		{"scale", MakeScaleMatrix(Vector3{2, 3, 4}), mgl32.Scale3D(2, 3, 4)},
		{
			// row-vector A × B is column-vector B · A
			"multiply order",
			Multiply(MakeRotateXMatrix(a), MakeTranslateMatrix(Vector3{1, 2, 3})),
			mgl32.Translate3D(1, 2, 3).Mul4(mgl32.HomogRotate3DX(a)),
		},
		{
			"affine",
			MakeAffineMatrix(Vector3{1, 2, 3}, Vector3{0.1, 0.2, 0.3}, Vector3{4, 5, 6}),
			mgl32.Translate3D(4, 5, 6).
				Mul4(mgl32.HomogRotate3DX(0.1)).
				Mul4(mgl32.HomogRotate3DY(0.2)).
				Mul4(mgl32.HomogRotate3DZ(0.3)).
				Mul4(mgl32.Scale3D(1, 2, 3)),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !toMgl(tt.got).ApproxEqualThreshold(tt.want, tolerance) {
				t.Errorf("got %v, want %v", toMgl(tt.got), tt.want)
			}
		})
	}
}

func TestAffineIdentityParts(t *testing.T) {
	tr := Vector3{1, 2, 3}
	got := MakeAffineMatrix(Vector3{1, 1, 1}, Vector3{}, tr)
	if !got.ApproxEqual(MakeTranslateMatrix(tr), tolerance) {
		t.Errorf("affine with unit scale and no rotation = %v", got)
	}
	sc := Vector3{2, 3, 4}
	got = MakeAffineMatrix(sc, Vector3{}, Vector3{})
	if !got.ApproxEqual(MakeScaleMatrix(sc), tolerance) {
		t.Errorf("affine scale only = %v", got)
	}
}

func rigidSamples() []Matrix4x4 {
	return []Matrix4x4{
		MakeIdentity4x4(),
		MakeTranslateMatrix(Vector3{3, -1, 7}),
		Multiply(MakeRotateXMatrix(0.26), MakeTranslateMatrix(Vector3{0, 1.9, -6.49})),
		MakeAffineMatrix(Vector3{1, 1, 1}, Vector3{0.4, -1.1, 2.3}, Vector3{-2, 0.5, 4}),
		Multiply(Multiply(MakeRotateXMatrix(1), Multiply(MakeRotateYMatrix(2), MakeRotateZMatrix(3))), MakeTranslateMatrix(Vector3{1, 2, 3})),
	}
}

func TestInverseRigid(t *testing.T) {
	for i, m := range rigidSamples() {
		if !IsRigid(m, tolerance) {
			t.Fatalf("case %d: sample not rigid", i)
		}
		inv := InverseRigid(m)
		if got := Multiply(m, inv); !got.IsIdentity(tolerance) {
			t.Errorf("case %d: M × inv(M) = %v", i, got)
		}
		if got := Multiply(inv, m); !got.IsIdentity(tolerance) {
			t.Errorf("case %d: inv(M) × M = %v", i, got)
		}
		if !toMgl(inv).ApproxEqualThreshold(toMgl(m).Inv(), 1e-4) {
			t.Errorf("case %d: rigid inverse disagrees with general inverse", i)
		}
	}
}

func TestInverseRigidRoundTrip(t *testing.T) {
	points := []Vector3{{0, 0, 0}, {1, 2, 3}, {-4.5, 0.25, 9}}
	for i, m := range rigidSamples() {
		inv := InverseRigid(m)
		for _, p := range points {
			if got := Transform(Transform(p, m), inv); !vecNear(got, p) {
				t.Errorf("case %d: round trip of %v = %v", i, p, got)
			}
		}
	}
}

func TestInverseRigidRejectsScale(t *testing.T) {
	m := MakeAffineMatrix(Vector3{2, 2, 2}, Vector3{0.3, 0, 0}, Vector3{1, 0, 0})
	if IsRigid(m, tolerance) {
		t.Fatal("scaled matrix reported rigid")
	}
	// the rigid inverse is knowingly wrong here
	if Multiply(m, InverseRigid(m)).IsIdentity(tolerance) {
		t.Error("rigid inverse of scaled matrix unexpectedly produced identity")
	}
	if IsRigid(MakePerspectiveFovMatrix(0.45, 1, 0.1, 100), tolerance) {
		t.Error("projection reported rigid")
	}
}
