package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// DrawLine strokes the segment (x0,y0)-(x1,y1) with the given width in
// pixels. It returns false and draws nothing when an endpoint is not finite
// or the segment lies entirely off the canvas.
func (fb *FrameBuffer) DrawLine(x0, y0, x1, y1, width float32, c color.NRGBA) bool {
	ax, ay, bx, by := float64(x0), float64(y0), float64(x1), float64(y1)
	for _, v := range [4]float64{ax, ay, bx, by} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	// Clip to a slightly padded canvas so the stroke's caps stay inside the
	// rasterizer bounds.
	pad := float64(width)
	ax, ay, bx, by, ok := clipLine(ax, ay, bx, by, pad, pad, float64(fb.Width)-pad, float64(fb.Height)-pad)
	if !ok {
		return false
	}

	dx, dy := bx-ax, by-ay
	l := math.Hypot(dx, dy)
	half := float64(width) / 2
	if l < 1e-9 {
		// a point: stroke a width×width square
		dx, dy, l = 1, 0, 1
		ax, bx = ax-half, bx+half
	}
	nx, ny := -dy/l*half, dx/l*half

	r := vector.NewRasterizer(fb.Width, fb.Height)
	r.DrawOp = draw.Over
	r.MoveTo(float32(ax+nx), float32(ay+ny))
	r.LineTo(float32(bx+nx), float32(by+ny))
	r.LineTo(float32(bx-nx), float32(by-ny))
	r.LineTo(float32(ax-nx), float32(ay-ny))
	r.ClosePath()
	r.Draw(fb.Img, fb.Img.Bounds(), image.NewUniform(c), image.Point{})
	return true
}

// clipLine clips a segment to [minX,maxX]×[minY,maxY] (Liang–Barsky).
func clipLine(x0, y0, x1, y1, minX, minY, maxX, maxY float64) (float64, float64, float64, float64, bool) {
	if minX > maxX || minY > maxY {
		return 0, 0, 0, 0, false
	}
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0 - minX},
		{dx, maxX - x0},
		{-dy, y0 - minY},
		{dy, maxY - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}
