package collision

import (
	"github.com/chewxy/math32"

	"segtri/internal/mathutil"
)

// Hit describes where a segment crosses a triangle.
type Hit struct {
	T     float32          // segment parameter in [0, 1]
	Point mathutil.Vector3 // Start + T·(End - Start)
	U, V  float32          // barycentric weights of P2 and P3
}

// Intersect tests a line segment against a triangle.
//
// The segment is intersected with the triangle's plane and the crossing point
// is classified with barycentric coordinates. Boundaries count: a point on an
// edge or vertex collides. Cases resolved as no collision:
//   - segment parallel to the plane (|n·d| < Epsilon), including a segment
//     lying in the plane; coplanar overlap is never reported
//   - plane crossing outside the segment (t < 0 or t > 1)
//   - degenerate triangle (zero area)
func Intersect(seg LineSegment, tri Triangle) (Hit, bool) {
	plane := PlaneFromTriangle(tri)
	d := seg.Direction()

	denom := mathutil.Dot(plane.Normal, d)
	if math32.Abs(denom) < mathutil.Epsilon {
		return Hit{}, false
	}

	t := (plane.Distance - mathutil.Dot(plane.Normal, seg.Start)) / denom
	if t < 0 || t > 1 {
		return Hit{}, false
	}
	p := seg.PointAt(t)

	u, v, ok := Barycentric(p, tri)
	if !ok {
		return Hit{}, false
	}
	if u < 0 || v < 0 || u+v > 1 {
		return Hit{}, false
	}
	return Hit{T: t, Point: p, U: u, V: v}, true
}

// IsCollision reports whether the segment touches the triangle.
func IsCollision(seg LineSegment, tri Triangle) bool {
	_, ok := Intersect(seg, tri)
	return ok
}

// Barycentric solves p = P1 + u·(P2-P1) + v·(P3-P1) in the least-squares
// sense. ok is false when the triangle has (near) zero area.
func Barycentric(p mathutil.Vector3, tri Triangle) (u, v float32, ok bool) {
	ab := tri.P2.Sub(tri.P1)
	ac := tri.P3.Sub(tri.P1)
	ap := p.Sub(tri.P1)

	dotABAB := mathutil.Dot(ab, ab)
	dotABAC := mathutil.Dot(ab, ac)
	dotACAC := mathutil.Dot(ac, ac)
	dotAPAB := mathutil.Dot(ap, ab)
	dotAPAC := mathutil.Dot(ap, ac)

	denominator := dotABAB*dotACAC - dotABAC*dotABAC
	if math32.Abs(denominator) < mathutil.Epsilon {
		return 0, 0, false
	}

	u = (dotACAC*dotAPAB - dotABAC*dotAPAC) / denominator
	v = (dotABAB*dotAPAC - dotABAC*dotAPAB) / denominator
	return u, v, true
}
