package raster

import (
	"image"
	"image/color"
	"image/draw"
)

// FrameBuffer is the drawing target. Coordinates are pixels with the origin
// at the top-left, matching the viewport matrix.
type FrameBuffer struct {
	Width  int
	Height int
	Img    *image.NRGBA
}

// NewFrameBuffer allocates a canvas filled with bg.
func NewFrameBuffer(w, h int, bg color.NRGBA) *FrameBuffer {
	fb := &FrameBuffer{
		Width:  w,
		Height: h,
		Img:    image.NewNRGBA(image.Rect(0, 0, w, h)),
	}
	fb.Clear(bg)
	return fb
}

// Clear fills the whole canvas with c.
func (fb *FrameBuffer) Clear(c color.NRGBA) {
	draw.Draw(fb.Img, fb.Img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// RGBA converts a packed 0xRRGGBBAA colour.
func RGBA(c uint32) color.NRGBA {
	return color.NRGBA{R: uint8(c >> 24), G: uint8(c >> 16), B: uint8(c >> 8), A: uint8(c)}
}
