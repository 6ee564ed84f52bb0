package geometry

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func pointsAlmostEqual(a, b Point) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y)
}

func TestDist(t *testing.T) {
	d := Dist(Point{X: 0, Y: 0}, Point{X: 3, Y: 4})
	if !almostEqual(d, 5) {
		t.Errorf("Dist((0,0),(3,4)) = %v, want 5", d)
	}
}

func TestDist_SamePoint(t *testing.T) {
	p := Point{X: 7, Y: -2}
	if d := Dist(p, p); d != 0 {
		t.Errorf("Dist(p, p) = %v, want 0", d)
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{Left: 10, Top: 20, W: 100, H: 50}
	cases := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Point{X: 60, Y: 45}, true},
		{"top-left corner", Point{X: 10, Y: 20}, true},
		{"bottom-right corner", Point{X: 110, Y: 70}, true},
		{"left of rect", Point{X: 9, Y: 45}, false},
		{"below rect", Point{X: 60, Y: 71}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := r.Contains(c.p); got != c.want {
				t.Errorf("Contains(%v) = %v, want %v", c.p, got, c.want)
			}
		})
	}
}

func TestRect_Inside(t *testing.T) {
	outer := Rect{Left: 0, Top: 0, W: 400, H: 300}
	if !(Rect{Left: 10, Top: 10, W: 100, H: 100}).Inside(outer) {
		t.Error("inner rect reported outside outer")
	}
	if (Rect{Left: 350, Top: 10, W: 100, H: 100}).Inside(outer) {
		t.Error("rect past right edge reported inside outer")
	}
}

func TestRect_Shrink(t *testing.T) {
	r := Rect{Left: 0, Top: 0, W: 400, H: 300}.Shrink(12)
	want := Rect{Left: 12, Top: 12, W: 376, H: 276}
	if r != want {
		t.Errorf("Shrink(12) = %+v, want %+v", r, want)
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{5, 8, 2, 8}, // degenerate range: lower bound wins
	}
	for _, c := range cases {
		if got := Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", c.v, c.lo, c.hi, got, c.want)
		}
	}
}

func TestEdgeExit_RightEdge(t *testing.T) {
	r := Rect{Left: 0, Top: 0, W: 100, H: 60}
	// Target due east of center: exit at right edge midpoint.
	got := EdgeExit(r, Point{X: 200, Y: 30})
	want := Point{X: 100, Y: 30}
	if !pointsAlmostEqual(got, want) {
		t.Errorf("EdgeExit(east target) = %v, want %v", got, want)
	}
}

func TestEdgeExit_BottomEdge(t *testing.T) {
	r := Rect{Left: 0, Top: 0, W: 100, H: 60}
	got := EdgeExit(r, Point{X: 50, Y: 300})
	want := Point{X: 50, Y: 60}
	if !pointsAlmostEqual(got, want) {
		t.Errorf("EdgeExit(south target) = %v, want %v", got, want)
	}
}

func TestEdgeExit_TargetAboveCenter(t *testing.T) {
	// dx=0 with the target straight up: exit is the top-edge midpoint and
	// must not divide by zero.
	r := Rect{Left: 0, Top: 0, W: 100, H: 60}
	got := EdgeExit(r, Point{X: 50, Y: -100})
	want := Point{X: 50, Y: 0}
	if !pointsAlmostEqual(got, want) {
		t.Errorf("EdgeExit(north target) = %v, want %v", got, want)
	}
}

func TestEdgeExit_TargetAtCenter(t *testing.T) {
	// Degenerate dx=dy=0: top-edge midpoint by convention.
	r := Rect{Left: 10, Top: 20, W: 100, H: 60}
	got := EdgeExit(r, r.Center())
	want := Point{X: 60, Y: 20}
	if !pointsAlmostEqual(got, want) {
		t.Errorf("EdgeExit(center) = %v, want %v", got, want)
	}
}

func TestEdgeExit_Diagonal(t *testing.T) {
	// Wide rectangle, 45-degree ray: |dx|*halfH == |dy|*halfW is false for
	// W > H, so the ray leaves through a vertical edge.
	r := Rect{Left: -50, Top: -20, W: 100, H: 40}
	got := EdgeExit(r, Point{X: 100, Y: 100})
	if !almostEqual(got.X, 50) {
		t.Errorf("EdgeExit diagonal exit x = %v, want 50 (right edge)", got.X)
	}
	if got.Y < -20 || got.Y > 20 {
		t.Errorf("EdgeExit diagonal exit y = %v, want within [-20,20]", got.Y)
	}
}

func TestElbowPath_Shape(t *testing.T) {
	from := Point{X: 0, Y: 0}
	to := Point{X: 100, Y: 80}
	pts := ElbowPath(from, to)
	if len(pts) != 4 {
		t.Fatalf("len(ElbowPath) = %d, want 4", len(pts))
	}
	if pts[0] != from || pts[3] != to {
		t.Errorf("path endpoints = %v, %v, want %v, %v", pts[0], pts[3], from, to)
	}
	// Each segment must be axis-aligned.
	for i := 1; i < len(pts); i++ {
		dx := pts[i].X - pts[i-1].X
		dy := pts[i].Y - pts[i-1].Y
		if dx != 0 && dy != 0 {
			t.Errorf("segment %d is not orthogonal: d=(%v,%v)", i, dx, dy)
		}
	}
	if pts[1].X != 50 || pts[2].X != 50 {
		t.Errorf("elbow x = %v/%v, want midpoint 50", pts[1].X, pts[2].X)
	}
}

func TestPathLength(t *testing.T) {
	pts := []Point{{0, 0}, {50, 0}, {50, 80}, {100, 80}}
	if got := PathLength(pts); !almostEqual(got, 180) {
		t.Errorf("PathLength = %v, want 180", got)
	}
	if got := PathLength(nil); got != 0 {
		t.Errorf("PathLength(nil) = %v, want 0", got)
	}
}

func TestPointAlong_Endpoints(t *testing.T) {
	pts := []Point{{0, 0}, {50, 0}, {50, 80}, {100, 80}}
	if got := PointAlong(pts, 0); !pointsAlmostEqual(got, pts[0]) {
		t.Errorf("PointAlong(0) = %v, want start %v", got, pts[0])
	}
	got := PointAlong(pts, 0.999999)
	if Dist(got, pts[3]) > 0.01 {
		t.Errorf("PointAlong(~1) = %v, want near end %v", got, pts[3])
	}
}

func TestPointAlong_Midway(t *testing.T) {
	pts := []Point{{0, 0}, {100, 0}}
	got := PointAlong(pts, 0.25)
	want := Point{X: 25, Y: 0}
	if !pointsAlmostEqual(got, want) {
		t.Errorf("PointAlong(0.25) = %v, want %v", got, want)
	}
}

func TestPointAlong_ZeroLengthSegments(t *testing.T) {
	// Repeated points form zero-length segments; must not divide by zero.
	pts := []Point{{0, 0}, {0, 0}, {100, 0}, {100, 0}}
	got := PointAlong(pts, 0.5)
	want := Point{X: 50, Y: 0}
	if !pointsAlmostEqual(got, want) {
		t.Errorf("PointAlong with zero-length segments = %v, want %v", got, want)
	}
}

func TestPointAlong_DegenerateInputs(t *testing.T) {
	if got := PointAlong(nil, 0.5); got != (Point{}) {
		t.Errorf("PointAlong(nil) = %v, want zero point", got)
	}
	p := Point{X: 3, Y: 9}
	if got := PointAlong([]Point{p}, 0.5); got != p {
		t.Errorf("PointAlong(single point) = %v, want %v", got, p)
	}
	// All points coincident: total length zero, return last point.
	same := []Point{{5, 5}, {5, 5}, {5, 5}}
	if got := PointAlong(same, 0.7); got != (Point{X: 5, Y: 5}) {
		t.Errorf("PointAlong(coincident points) = %v, want (5,5)", got)
	}
}
