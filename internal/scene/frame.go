package scene

import (
	"segtri/internal/collision"
	"segtri/internal/mathutil"
	"segtri/internal/viewmatrix"
)

// Grid layout in the y=0 plane.
const (
	GridHalfWidth   = 2.0
	GridSubdivision = 10
)

// Frame is the result of one update: matrices, the collision flag and
// screen-space geometry ready for a line drawer.
type Frame struct {
	Scene     Scene
	Pipeline  viewmatrix.Pipeline
	Colliding bool
	Hit       collision.Hit

	Segment  [2]mathutil.Vector3
	Triangle [3]mathutil.Vector3
	Grid     [][2]mathutil.Vector3

	// BehindNear is set when a segment or triangle vertex is not beyond the
	// near plane; its screen position is then unreliable or non-finite.
	BehindNear bool
}

// Update evaluates the scene for one cycle.
func Update(s Scene) Frame {
	pl := viewmatrix.Build(s.Camera, s.Projection, s.Viewport)
	hit, colliding := collision.Intersect(s.Segment, s.Triangle)

	world := []mathutil.Vector3{s.Segment.Start, s.Segment.End, s.Triangle.P1, s.Triangle.P2, s.Triangle.P3}
	screen := pl.ProjectPoints(world)

	f := Frame{
		Scene:     s,
		Pipeline:  pl,
		Colliding: colliding,
		Hit:       hit,
		Segment:   [2]mathutil.Vector3(screen[:2]),
		Triangle:  [3]mathutil.Vector3(screen[2:]),
		Grid:      GridLines(pl),
	}

	for _, p := range world {
		if !pl.InFront(p, s.Projection.NearClip) {
			f.BehindNear = true
			break
		}
	}
	return f
}

// GridWorldLines returns the grid's world-space lines: first those running
// along z (one per x step), then those running along x.
func GridWorldLines() [][2]mathutil.Vector3 {
	const every = GridHalfWidth * 2 / GridSubdivision
	lines := make([][2]mathutil.Vector3, 0, 2*(GridSubdivision+1))
	for i := 0; i <= GridSubdivision; i++ {
		x := float32(-GridHalfWidth + every*float64(i))
		lines = append(lines, [2]mathutil.Vector3{
			{X: x, Y: 0, Z: -GridHalfWidth},
			{X: x, Y: 0, Z: GridHalfWidth},
		})
	}
	for i := 0; i <= GridSubdivision; i++ {
		z := float32(-GridHalfWidth + every*float64(i))
		lines = append(lines, [2]mathutil.Vector3{
			{X: -GridHalfWidth, Y: 0, Z: z},
			{X: GridHalfWidth, Y: 0, Z: z},
		})
	}
	return lines
}

// GridLines projects the grid to screen space. The grid's world matrix is
// the identity.
func GridLines(pl viewmatrix.Pipeline) [][2]mathutil.Vector3 {
	wvp := mathutil.Multiply(mathutil.MakeIdentity4x4(), pl.ViewProjection)
	lines := GridWorldLines()
	for i, l := range lines {
		lines[i] = [2]mathutil.Vector3{pl.ToScreenWith(l[0], wvp), pl.ToScreenWith(l[1], wvp)}
	}
	return lines
}
