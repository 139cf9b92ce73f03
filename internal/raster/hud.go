package raster

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"segtri/internal/mathutil"
	"segtri/internal/scene"
)

// HUDLines returns the read-out shown in the top-left corner.
func HUDLines(f scene.Frame) []string {
	s := f.Scene
	state := "no collision"
	if f.Colliding {
		state = fmt.Sprintf("collision t=%.3f u=%.3f v=%.3f", f.Hit.T, f.Hit.U, f.Hit.V)
	}
	lines := []string{
		s.Name,
		state,
		"CameraTranslate " + fmtVec(s.Camera.Translate),
		"CameraRotate    " + fmtVec(s.Camera.Rotate),
		"Segment.Start   " + fmtVec(s.Segment.Start),
		"Segment.End     " + fmtVec(s.Segment.End),
		"Vertex p1       " + fmtVec(s.Triangle.P1),
		"Vertex p2       " + fmtVec(s.Triangle.P2),
		"Vertex p3       " + fmtVec(s.Triangle.P3),
	}
	if f.BehindNear {
		lines = append(lines, "warning: geometry behind near plane")
	}
	return lines
}

func fmtVec(v mathutil.Vector3) string {
	return fmt.Sprintf("%7.2f %7.2f %7.2f", v.X, v.Y, v.Z)
}

// DrawHUD writes HUDLines onto img with the 7×13 bitmap face.
func DrawHUD(img *image.NRGBA, f scene.Frame) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(RGBA(ColorText)),
		Face: face,
	}
	lineH := face.Height + 2
	for i, l := range HUDLines(f) {
		d.Dot = fixed.P(8, 8+face.Ascent+i*lineH)
		d.DrawString(l)
	}
}
