package scene

import (
	"fmt"

	"github.com/chewxy/math32"

	"segtri/internal/collision"
	"segtri/internal/mathutil"
	"segtri/internal/viewmatrix"
)

// Window size of the reference setup.
const (
	DefaultWidth  = 1280
	DefaultHeight = 720
)

// MaxViewportExtent bounds left+width and top+height, the canvas size the
// raster allocates.
const MaxViewportExtent = 16384

// Scene is every input of one update cycle. It is passed by value; nothing
// in this package keeps state between calls.
type Scene struct {
	Name       string                `json:"name"`
	Camera     viewmatrix.Camera     `json:"camera"`
	Projection viewmatrix.Projection `json:"projection"`
	Viewport   viewmatrix.Viewport   `json:"viewport"`
	Segment    collision.LineSegment `json:"segment"`
	Triangle   collision.Triangle    `json:"triangle"`
}

// Default returns the reference scene for a width×height window.
func Default(width, height int) Scene {
	w, h := float32(width), float32(height)
	return Scene{
		Name: "default",
		Camera: viewmatrix.Camera{
			Translate: mathutil.Vector3{X: 0, Y: 1.9, Z: -6.49},
			Rotate:    mathutil.Vector3{X: 0.26, Y: 0, Z: 0},
		},
		Projection: viewmatrix.Projection{
			FovY:        0.45,
			AspectRatio: w / h,
			NearClip:    0.1,
			FarClip:     100,
		},
		Viewport: viewmatrix.Viewport{
			Width:    w,
			Height:   h,
			MinDepth: 0,
			MaxDepth: 1,
		},
		Segment: collision.LineSegment{
			Start: mathutil.Vector3{X: -2, Y: 1, Z: -1},
			End:   mathutil.Vector3{X: 0, Y: 1, Z: 1},
		},
		Triangle: collision.Triangle{
			P1: mathutil.Vector3{X: -1, Y: 0, Z: 1},
			P2: mathutil.Vector3{X: 0, Y: 1, Z: 0},
			P3: mathutil.Vector3{X: 1, Y: 0, Z: 1},
		},
	}
}

// Validate rejects parameters that would make the camera pipeline meaningless.
// The collision predicate itself accepts any finite input.
func (s Scene) Validate() error {
	vecs := []struct {
		name string
		v    mathutil.Vector3
	}{
		{"camera.translate", s.Camera.Translate},
		{"camera.rotate", s.Camera.Rotate},
		{"segment.start", s.Segment.Start},
		{"segment.end", s.Segment.End},
		{"triangle.p1", s.Triangle.P1},
		{"triangle.p2", s.Triangle.P2},
		{"triangle.p3", s.Triangle.P3},
	}
	for _, f := range vecs {
		if !f.v.IsFinite() {
			return fmt.Errorf("scene %q: %s is not finite: %v", s.Name, f.name, f.v)
		}
	}

	p := s.Projection
	if !(p.FovY > 0 && p.FovY < math32.Pi) {
		return fmt.Errorf("scene %q: fov_y %v outside (0, π)", s.Name, p.FovY)
	}
	if !(p.AspectRatio > 0) {
		return fmt.Errorf("scene %q: aspect_ratio %v must be positive", s.Name, p.AspectRatio)
	}
	if !(p.NearClip > 0 && p.NearClip < p.FarClip) {
		return fmt.Errorf("scene %q: need 0 < near_clip < far_clip, got %v, %v", s.Name, p.NearClip, p.FarClip)
	}
	return s.validateViewport()
}

// validateViewport requires a whole-pixel rectangle with a non-negative origin
// that fits in MaxViewportExtent.
func (s Scene) validateViewport() error {
	vp := s.Viewport
	if !(vp.Width > 0 && vp.Height > 0) {
		return fmt.Errorf("scene %q: viewport size must be positive, got %vx%v", s.Name, vp.Width, vp.Height)
	}
	if !(vp.Left >= 0 && vp.Top >= 0) {
		return fmt.Errorf("scene %q: viewport origin must be non-negative, got (%v, %v)", s.Name, vp.Left, vp.Top)
	}
	for _, v := range [4]float32{vp.Left, vp.Top, vp.Width, vp.Height} {
		if math32.Floor(v) != v {
			return fmt.Errorf("scene %q: viewport must be whole pixels, got %v", s.Name, v)
		}
	}
	if vp.Left+vp.Width > MaxViewportExtent || vp.Top+vp.Height > MaxViewportExtent {
		return fmt.Errorf("scene %q: viewport extent (%v, %v) exceeds %d", s.Name, vp.Left+vp.Width, vp.Top+vp.Height, MaxViewportExtent)
	}
	if !finite(vp.MinDepth) || !finite(vp.MaxDepth) {
		return fmt.Errorf("scene %q: viewport depth range is not finite: %v, %v", s.Name, vp.MinDepth, vp.MaxDepth)
	}
	return nil
}

func finite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
