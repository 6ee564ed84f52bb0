// Package geometry provides fundamental 2D types and pure functions for the
// callout and leader-line math. It has no dependencies (especially no Ebiten)
// so the placement and routing logic stays testable without a window.
package geometry

import "math"

// Point is a 2D coordinate in world or screen space.
type Point struct {
	X, Y float64
}

// Size is a width/height pair.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle identified by its top-left corner.
type Rect struct {
	Left, Top float64
	W, H      float64
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.Left + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Top + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.Left + r.W/2, Y: r.Top + r.H/2}
}

// Contains returns true if the point lies inside the rectangle (edges inclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right() && p.Y >= r.Top && p.Y <= r.Bottom()
}

// Inside returns true if r lies fully within outer (edges inclusive).
func (r Rect) Inside(outer Rect) bool {
	return r.Left >= outer.Left && r.Top >= outer.Top &&
		r.Right() <= outer.Right() && r.Bottom() <= outer.Bottom()
}

// Shrink returns the rectangle inset by amount on all four sides.
func (r Rect) Shrink(amount float64) Rect {
	return Rect{
		Left: r.Left + amount,
		Top:  r.Top + amount,
		W:    r.W - 2*amount,
		H:    r.H - 2*amount,
	}
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Clamp restricts a value to be within [lo, hi].
// When lo > hi (degenerate range) the lower bound wins.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// EdgeExit returns the point where the ray from the rectangle's center toward
// target crosses the rectangle's border. The ray exits through a vertical edge
// when |dx|*halfH > |dy|*halfW, otherwise through a horizontal edge. A target
// coincident with the center exits at the top-edge midpoint by convention.
func EdgeExit(r Rect, target Point) Point {
	c := r.Center()
	dx := target.X - c.X
	dy := target.Y - c.Y
	halfW := r.W / 2
	halfH := r.H / 2

	if dx == 0 && dy == 0 {
		return Point{X: c.X, Y: r.Top}
	}

	if math.Abs(dx)*halfH > math.Abs(dy)*halfW {
		// Exits through the left or right edge.
		x := c.X + math.Copysign(halfW, dx)
		y := c.Y + dy*(halfW/math.Abs(dx))
		return Point{X: x, Y: y}
	}

	// Exits through the top or bottom edge.
	y := c.Y + math.Copysign(halfH, dy)
	x := c.X
	if dy != 0 {
		x = c.X + dx*(halfH/math.Abs(dy))
	}
	return Point{X: x, Y: y}
}

// ElbowPath builds an orthogonal connector from one point to another:
// horizontally to the midpoint between the two x-coordinates, vertically to
// the target's y, then horizontally to the target. Four points when the
// endpoints are not aligned; aligned endpoints produce zero-length segments,
// which downstream path functions handle.
func ElbowPath(from, to Point) []Point {
	midX := (from.X + to.X) / 2
	return []Point{
		from,
		{X: midX, Y: from.Y},
		{X: midX, Y: to.Y},
		to,
	}
}

// PathLength returns the total length of a polyline.
func PathLength(pts []Point) float64 {
	var total float64
	for i := 1; i < len(pts); i++ {
		total += Dist(pts[i-1], pts[i])
	}
	return total
}

// PointAlong returns the point at fraction frac (clamped to [0,1]) of the
// polyline's total length. Zero-length segments contribute nothing and are
// skipped without dividing by zero; an empty path yields the zero point.
func PointAlong(pts []Point, frac float64) Point {
	if len(pts) == 0 {
		return Point{}
	}
	if len(pts) == 1 {
		return pts[0]
	}

	frac = Clamp(frac, 0, 1)
	target := PathLength(pts) * frac

	var walked float64
	for i := 1; i < len(pts); i++ {
		seg := Dist(pts[i-1], pts[i])
		if seg == 0 {
			continue
		}
		if walked+seg >= target {
			t := (target - walked) / seg
			return Point{
				X: pts[i-1].X + (pts[i].X-pts[i-1].X)*t,
				Y: pts[i-1].Y + (pts[i].Y-pts[i-1].Y)*t,
			}
		}
		walked += seg
	}

	return pts[len(pts)-1]
}
