package mathutil

import "github.com/chewxy/math32"

// MakePerspectiveFovMatrix builds a perspective projection with vertical FOV
// in radians. Depth maps to [0, 1] and the output w equals the input z.
func MakePerspectiveFovMatrix(fovY, aspectRatio, nearClip, farClip float32) Matrix4x4 {
	h := 1 / math32.Tan(fovY/2)
	var m Matrix4x4
	m.M[0][0] = h / aspectRatio
	m.M[1][1] = h
	m.M[2][2] = farClip / (farClip - nearClip)
	m.M[2][3] = 1
	m.M[3][2] = -nearClip * farClip / (farClip - nearClip)
	return m
}

// MakeViewportMatrix maps normalized clip space to pixels. Y is flipped for a
// top-left origin and depth is scaled into [minDepth, maxDepth].
func MakeViewportMatrix(left, top, width, height, minDepth, maxDepth float32) Matrix4x4 {
	var m Matrix4x4
	m.M[0][0] = width / 2
	m.M[1][1] = -height / 2
	m.M[2][2] = maxDepth - minDepth
	m.M[3][0] = left + width/2
	m.M[3][1] = top + height/2
	m.M[3][2] = minDepth
	m.M[3][3] = 1
	return m
}
