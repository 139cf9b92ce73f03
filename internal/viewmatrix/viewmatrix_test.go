package viewmatrix

import (
	"testing"

	"segtri/internal/mathutil"
)

const tolerance = 1e-4

func defaultPipeline() Pipeline {
	return Build(
		Camera{Translate: mathutil.Vector3{X: 0, Y: 1.9, Z: -6.49}, Rotate: mathutil.Vector3{X: 0.26}},
		Projection{FovY: 0.45, AspectRatio: 1280.0 / 720.0, NearClip: 0.1, FarClip: 100},
		Viewport{Width: 1280, Height: 720, MaxDepth: 1},
	)
}

func TestCameraWorldMatrixOrder(t *testing.T) {
	c := Camera{Translate: mathutil.Vector3{X: 1, Y: 2, Z: 3}, Rotate: mathutil.Vector3{X: 0.3, Y: -0.7, Z: 1.1}}
	want := mathutil.Multiply(
		mathutil.Multiply(mathutil.MakeRotateXMatrix(0.3), mathutil.Multiply(mathutil.MakeRotateYMatrix(-0.7), mathutil.MakeRotateZMatrix(1.1))),
		mathutil.MakeTranslateMatrix(c.Translate),
	)
	if got := CameraWorldMatrix(c); !got.ApproxEqual(want, 1e-6) {
		t.Errorf("CameraWorldMatrix = %v, want %v", got, want)
	}

	// X-then-Y-then-Z differs from the affine helper's Z∘Y∘X order
	affine := mathutil.MakeAffineMatrix(mathutil.Vector3{X: 1, Y: 1, Z: 1}, c.Rotate, c.Translate)
	if CameraWorldMatrix(c).ApproxEqual(affine, 1e-3) {
		t.Error("camera world matrix unexpectedly matches affine rotation order")
	}
}

func TestBuildViewIsInverse(t *testing.T) {
	pl := defaultPipeline()
	if !mathutil.IsRigid(pl.World, tolerance) {
		t.Fatal("camera world matrix not rigid")
	}
	if got := mathutil.Multiply(pl.World, pl.View); !got.IsIdentity(tolerance) {
		t.Errorf("World × View = %v", got)
	}
	if got := mathutil.Multiply(pl.View, pl.Projection); !got.ApproxEqual(pl.ViewProjection, 1e-6) {
		t.Error("ViewProjection is not View × Projection")
	}
}

func TestToScreen(t *testing.T) {
	pl := defaultPipeline()

	// The camera looks along its own +Z; a point straight ahead lands mid-screen.
	ahead := mathutil.Transform(mathutil.Vector3{Z: 10}, pl.World)
	got := pl.ToScreen(ahead)
	if !mathutil.NearlyEqual(got.X, 640, 0.01) || !mathutil.NearlyEqual(got.Y, 360, 0.01) {
		t.Errorf("point ahead projects to %v, want screen centre", got)
	}
	if got.Z <= 0 || got.Z >= 1 {
		t.Errorf("depth %v outside (0, 1)", got.Z)
	}

	// world up is screen up (smaller y)
	higher := pl.ToScreen(ahead.Add(mathutil.Vector3{Y: 1}))
	if higher.Y >= got.Y {
		t.Errorf("higher point y=%v not above %v", higher.Y, got.Y)
	}
	// camera-right is screen right
	right := mathutil.Transform(mathutil.Vector3{X: 1, Z: 10}, pl.World)
	if pl.ToScreen(right).X <= got.X {
		t.Error("point to the right projects left of centre")
	}
}

func TestToScreenMatchesTwoStageTransform(t *testing.T) {
	pl := defaultPipeline()
	p := mathutil.Vector3{X: -1, Y: 0, Z: 1}
	want := mathutil.Transform(mathutil.Transform(p, pl.ViewProjection), pl.Viewport)
	if got := pl.ToScreen(p); got != want {
		t.Errorf("ToScreen = %v, want %v", got, want)
	}
	if got := pl.ToScreenWith(p, mathutil.Multiply(mathutil.MakeIdentity4x4(), pl.ViewProjection)); got != want {
		t.Errorf("ToScreenWith(identity world) = %v, want %v", got, want)
	}
}

func TestProjectPointsAtEye(t *testing.T) {
	// camera at the origin keeps the eye exactly on w=0
	pl := Build(Camera{}, Projection{FovY: 0.45, AspectRatio: 1, NearClip: 0.1, FarClip: 100}, Viewport{Width: 100, Height: 100, MaxDepth: 1})
	pts := pl.ProjectPoints([]mathutil.Vector3{{}, {X: 0, Y: 0, Z: 5}})
	if len(pts) != 2 {
		t.Fatalf("len = %d", len(pts))
	}
	if pts[0].IsFinite() {
		t.Errorf("eye projects to finite %v", pts[0])
	}
	if !pts[1].IsFinite() {
		t.Errorf("point ahead projects to non-finite %v", pts[1])
	}

	def := defaultPipeline()
	if def.InFront(mathutil.Vector3{X: 0, Y: 1.9, Z: -6.49}, 0.1) {
		t.Error("eye reported in front of near plane")
	}
	if !def.InFront(mathutil.Vector3{}, 0.1) {
		t.Error("origin reported behind camera")
	}
}
