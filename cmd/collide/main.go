package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"segtri/internal/mathutil"
	"segtri/internal/scene"
)

// vecFlag parses "x,y,z" and records whether it was given.
type vecFlag struct {
	v   mathutil.Vector3
	set bool
}

func (f *vecFlag) String() string {
	return fmt.Sprintf("%g,%g,%g", f.v.X, f.v.Y, f.v.Z)
}

func (f *vecFlag) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return fmt.Errorf("want x,y,z, got %q", s)
	}
	var c [3]float32
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return fmt.Errorf("component %d: %w", i, err)
		}
		c[i] = float32(v)
	}
	f.v = mathutil.Vector3{X: c[0], Y: c[1], Z: c[2]}
	f.set = true
	return nil
}

func main() {
	sceneFile := flag.String("scene", "", "Scene JSON file (default: built-in scene)")
	width := flag.Int("width", scene.DefaultWidth, "Viewport width in pixels")
	height := flag.Int("height", scene.DefaultHeight, "Viewport height in pixels")

	var start, end, p1, p2, p3, camPos, camRotate vecFlag
	flag.Var(&start, "start", "Segment start as x,y,z")
	flag.Var(&end, "end", "Segment end as x,y,z")
	flag.Var(&p1, "p1", "Triangle vertex 1 as x,y,z")
	flag.Var(&p2, "p2", "Triangle vertex 2 as x,y,z")
	flag.Var(&p3, "p3", "Triangle vertex 3 as x,y,z")
	flag.Var(&camPos, "cam-pos", "Camera translation as x,y,z")
	flag.Var(&camRotate, "cam-rotate", "Camera rotation in radians as x,y,z")
	flag.Parse()

	s := scene.Default(*width, *height)
	if *sceneFile != "" {
		var err error
		s, err = scene.LoadFile(*sceneFile, *width, *height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	// flags win over the scene file
	for _, o := range []struct {
		f   *vecFlag
		dst *mathutil.Vector3
	}{
		{&start, &s.Segment.Start},
		{&end, &s.Segment.End},
		{&p1, &s.Triangle.P1},
		{&p2, &s.Triangle.P2},
		{&p3, &s.Triangle.P3},
		{&camPos, &s.Camera.Translate},
		{&camRotate, &s.Camera.Rotate},
	} {
		if o.f.set {
			*o.dst = o.f.v
		}
	}

	if err := s.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	f := scene.Update(s)

	fmt.Printf("Scene:     %s\n", s.Name)
	fmt.Printf("Segment:   %v -> %v\n", s.Segment.Start, s.Segment.End)
	fmt.Printf("Triangle:  %v %v %v\n", s.Triangle.P1, s.Triangle.P2, s.Triangle.P3)
	fmt.Printf("Collision: %t\n", f.Colliding)
	if f.Colliding {
		fmt.Printf("  t=%.6f point=%v u=%.6f v=%.6f\n", f.Hit.T, f.Hit.Point, f.Hit.U, f.Hit.V)
	}
	fmt.Println("Screen:")
	fmt.Printf("  segment   %s -> %s\n", fmtScreen(f.Segment[0]), fmtScreen(f.Segment[1]))
	for i, p := range f.Triangle {
		fmt.Printf("  p%d        %s\n", i+1, fmtScreen(p))
	}
	if f.BehindNear {
		fmt.Println("Warning: some vertices are not beyond the near plane")
	}
}

func fmtScreen(p mathutil.Vector3) string {
	if !p.IsFinite() {
		return "(non-finite)"
	}
	return fmt.Sprintf("(%.1f, %.1f, depth %.4f)", p.X, p.Y, p.Z)
}
