package raster

import (
	"image"
	"image/color"

	"segtri/internal/mathutil"
	"segtri/internal/postprocess"
	"segtri/internal/scene"
)

// Palette of the reference viewer, packed 0xRRGGBBAA.
const (
	ColorBackground = 0x1A1A1AFF
	ColorGrid       = 0xAAAAAAFF
	ColorSegmentHit = 0xFF0000FF
	ColorSegment    = 0xFFFFFFFF
	ColorTriangle   = 0x00FF00FF
	ColorText       = 0xE0E0E0FF
)

// Style controls how a frame is drawn.
type Style struct {
	LineWidth   float32
	Supersample int
	HUD         bool
}

// DefaultStyle draws 1px lines at 2× supersampling with the HUD on.
func DefaultStyle() Style {
	return Style{LineWidth: 1, Supersample: 2, HUD: true}
}

// Stats counts the lines handed to the drawer and those that were skipped
// because an endpoint was non-finite or fully off-screen.
type Stats struct {
	Lines   int
	Skipped int
}

// DrawFrame draws the grid, the triangle and the segment of f into fb.
// Screen coordinates are multiplied by scale so a supersampled buffer can
// be used.
func DrawFrame(fb *FrameBuffer, f scene.Frame, lineWidth, scale float32) Stats {
	var st Stats
	line := func(a, b mathutil.Vector3, c color.NRGBA) {
		st.Lines++
		if !fb.DrawLine(a.X*scale, a.Y*scale, b.X*scale, b.Y*scale, lineWidth*scale, c) {
			st.Skipped++
		}
	}

	grid := RGBA(ColorGrid)
	for _, l := range f.Grid {
		line(l[0], l[1], grid)
	}

	tri := RGBA(ColorTriangle)
	line(f.Triangle[0], f.Triangle[1], tri)
	line(f.Triangle[1], f.Triangle[2], tri)
	line(f.Triangle[2], f.Triangle[0], tri)

	seg := RGBA(ColorSegment)
	if f.Colliding {
		seg = RGBA(ColorSegmentHit)
	}
	line(f.Segment[0], f.Segment[1], seg)
	return st
}

// Render draws f on a canvas covering its viewport rectangle and returns the
// image. The scene is expected to have passed Validate. Drawing happens
// at style.Supersample× and is downsampled before the HUD is added.
func Render(f scene.Frame, style Style) (*image.NRGBA, Stats) {
	w := int(f.Scene.Viewport.Left + f.Scene.Viewport.Width)
	h := int(f.Scene.Viewport.Top + f.Scene.Viewport.Height)
	ss := style.Supersample
	if ss < 1 {
		ss = 1
	}
	lw := style.LineWidth
	if lw <= 0 {
		lw = 1
	}

	fb := NewFrameBuffer(w*ss, h*ss, RGBA(ColorBackground))
	st := DrawFrame(fb, f, lw, float32(ss))

	img := fb.Img
	if ss > 1 {
		img = postprocess.Downsample(img, w, h)
	}
	if style.HUD {
		DrawHUD(img, f)
	}
	return img, st
}
