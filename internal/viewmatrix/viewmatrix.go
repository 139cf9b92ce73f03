package viewmatrix

import "segtri/internal/mathutil"

// Camera is the camera's world placement. Rotate holds per-axis angles in
// radians.
type Camera struct {
	Translate mathutil.Vector3 `json:"translate"`
	Rotate    mathutil.Vector3 `json:"rotate"`
}

// Projection holds perspective parameters. FovY is in radians.
type Projection struct {
	FovY        float32 `json:"fov_y"`
	AspectRatio float32 `json:"aspect_ratio"`
	NearClip    float32 `json:"near_clip"`
	FarClip     float32 `json:"far_clip"`
}

// Viewport is the screen rectangle and depth range in pixels.
type Viewport struct {
	Left     float32 `json:"left"`
	Top      float32 `json:"top"`
	Width    float32 `json:"width"`
	Height   float32 `json:"height"`
	MinDepth float32 `json:"min_depth"`
	MaxDepth float32 `json:"max_depth"`
}

// Pipeline holds the matrices of one update cycle.
type Pipeline struct {
	World          mathutil.Matrix4x4
	View           mathutil.Matrix4x4
	Projection     mathutil.Matrix4x4
	ViewProjection mathutil.Matrix4x4
	Viewport       mathutil.Matrix4x4
}

// CameraWorldMatrix composes (Rx × (Ry × Rz)) × T. The rotation order differs
// from MakeAffineMatrix on purpose.
func CameraWorldMatrix(c Camera) mathutil.Matrix4x4 {
	rotate := mathutil.Multiply(
		mathutil.MakeRotateXMatrix(c.Rotate.X),
		mathutil.Multiply(mathutil.MakeRotateYMatrix(c.Rotate.Y), mathutil.MakeRotateZMatrix(c.Rotate.Z)),
	)
	return mathutil.Multiply(rotate, mathutil.MakeTranslateMatrix(c.Translate))
}

// Build computes world, view, projection and viewport matrices.
// The camera world matrix is rigid, so the view is its rigid inverse.
func Build(c Camera, p Projection, vp Viewport) Pipeline {
	world := CameraWorldMatrix(c)
	view := mathutil.InverseRigid(world)
	proj := mathutil.MakePerspectiveFovMatrix(p.FovY, p.AspectRatio, p.NearClip, p.FarClip)
	return Pipeline{
		World:          world,
		View:           view,
		Projection:     proj,
		ViewProjection: mathutil.Multiply(view, proj),
		Viewport:       mathutil.MakeViewportMatrix(vp.Left, vp.Top, vp.Width, vp.Height, vp.MinDepth, vp.MaxDepth),
	}
}

// ToScreen maps a world point to pixel coordinates. The clip-space divide and
// the viewport mapping stay two separate transforms.
func (pl Pipeline) ToScreen(p mathutil.Vector3) mathutil.Vector3 {
	return pl.ToScreenWith(p, pl.ViewProjection)
}

// ToScreenWith is ToScreen with a caller-supplied world-view-projection
// matrix, for geometry that carries its own world transform.
func (pl Pipeline) ToScreenWith(p mathutil.Vector3, wvp mathutil.Matrix4x4) mathutil.Vector3 {
	return mathutil.Transform(mathutil.Transform(p, wvp), pl.Viewport)
}

// ProjectPoints transforms points to screen space.
// Returns a new slice; points at the eye plane come back non-finite.
func (pl Pipeline) ProjectPoints(points []mathutil.Vector3) []mathutil.Vector3 {
	out := make([]mathutil.Vector3, len(points))
	for i, p := range points {
		out[i] = pl.ToScreen(p)
	}
	return out
}

// InFront reports whether p lies beyond the near plane in view space.
func (pl Pipeline) InFront(p mathutil.Vector3, nearClip float32) bool {
	return mathutil.Transform(p, pl.View).Z >= nearClip
}
