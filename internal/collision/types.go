package collision

import "segtri/internal/mathutil"

// LineSegment is the finite segment from Start to End.
type LineSegment struct {
	Start mathutil.Vector3 `json:"start"`
	End   mathutil.Vector3 `json:"end"`
}

// Direction returns End - Start (not normalized).
func (s LineSegment) Direction() mathutil.Vector3 {
	return s.End.Sub(s.Start)
}

// PointAt returns Start + t·(End - Start).
func (s LineSegment) PointAt(t float32) mathutil.Vector3 {
	return s.Start.Add(s.Direction().Scale(t))
}

// Triangle holds three vertices. Winding fixes the normal direction via
// (P2-P1) × (P3-P1); the intersection test does not depend on it.
type Triangle struct {
	P1 mathutil.Vector3 `json:"p1"`
	P2 mathutil.Vector3 `json:"p2"`
	P3 mathutil.Vector3 `json:"p3"`
}

// Plane is the set of points p with Dot(Normal, p) == Distance.
type Plane struct {
	Normal   mathutil.Vector3
	Distance float32
}

// PlaneFromTriangle returns the plane through the triangle. For a degenerate
// triangle the normal is the zero vector.
func PlaneFromTriangle(tri Triangle) Plane {
	n := mathutil.Normalize(mathutil.Cross(tri.P2.Sub(tri.P1), tri.P3.Sub(tri.P1)))
	return Plane{Normal: n, Distance: mathutil.Dot(n, tri.P1)}
}

// SignedDistance returns the offset of p from the plane along its normal.
func (pl Plane) SignedDistance(p mathutil.Vector3) float32 {
	return mathutil.Dot(pl.Normal, p) - pl.Distance
}
