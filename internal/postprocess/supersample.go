package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample scales a supersampled canvas down to width×height. Catmull-Rom
// keeps 1px wireframe lines sharper than bilinear. A canvas that is already
// no larger than the target is returned as is.
func Downsample(img *image.NRGBA, width, height int) *image.NRGBA {
	if b := img.Bounds(); b.Dx() <= width && b.Dy() <= height {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
