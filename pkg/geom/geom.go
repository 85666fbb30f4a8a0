// Package geom provides the 2D primitives the guard builders are made
// of: closed polygons, partial annular ring profiles, and the convex
// hull of positioned circles. Everything here is pure computation over
// value types; no geometry kernel is involved.
package geom

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"
)

// MinStepDeg is the floor for angular sampling steps. A degenerate
// (near-zero) configured step would otherwise stall arc sampling.
const MinStepDeg = 0.25

// Polygon is an ordered sequence of 2D points forming a closed loop.
// The insertion order defines the boundary traversal; the closing edge
// from the last point back to the first is implicit.
type Polygon []r2.Vec

// Circle is a positioned circle, used as a convex hull generator.
type Circle struct {
	Center r2.Vec
	R      float64
}

func deg2rad(d float64) float64 { return d * math.Pi / 180 }

// Arc builds a partial annular ring profile: the outer arc sampled from
// angle 0 up to coverage degrees, then the inner arc sampled back down
// to 0, concatenated into a single simple polygon. coverage = 360
// produces a full annulus with a zero-width radial seam at angle 0.
//
// The step is floored to MinStepDeg so sampling always terminates.
func Arc(outerR, innerR, coverageDeg, stepDeg float64) Polygon {
	if stepDeg < MinStepDeg {
		stepDeg = MinStepDeg
	}
	n := int(math.Ceil(coverageDeg / stepDeg))
	if n < 1 {
		n = 1
	}

	p := make(Polygon, 0, 2*(n+1))
	for i := 0; i <= n; i++ {
		a := deg2rad(coverageDeg * float64(i) / float64(n))
		p = append(p, r2.Vec{X: outerR * math.Cos(a), Y: outerR * math.Sin(a)})
	}
	for i := n; i >= 0; i-- {
		a := deg2rad(coverageDeg * float64(i) / float64(n))
		p = append(p, r2.Vec{X: innerR * math.Cos(a), Y: innerR * math.Sin(a)})
	}
	return p
}

// SampleCircle returns points on the circle's boundary at the given
// angular step (floored to MinStepDeg).
func SampleCircle(c Circle, stepDeg float64) []r2.Vec {
	if stepDeg < MinStepDeg {
		stepDeg = MinStepDeg
	}
	n := int(math.Ceil(360 / stepDeg))
	pts := make([]r2.Vec, 0, n)
	for i := 0; i < n; i++ {
		a := deg2rad(360 * float64(i) / float64(n))
		pts = append(pts, r2.Vec{
			X: c.Center.X + c.R*math.Cos(a),
			Y: c.Center.Y + c.R*math.Sin(a),
		})
	}
	return pts
}

// CircleHull returns the convex hull of the given circles, sampled at
// the given angular step. For colinear centers the hull degenerates to
// a stadium-like outline: end caps joined by straight tangent lines.
func CircleHull(circles []Circle, stepDeg float64) Polygon {
	var pts []r2.Vec
	for _, c := range circles {
		pts = append(pts, SampleCircle(c, stepDeg)...)
	}
	return ConvexHull(pts)
}

// cross returns the z component of (b-a) x (c-a). Positive means the
// turn a->b->c is counterclockwise.
func cross(a, b, c r2.Vec) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// ConvexHull computes the convex hull of a point set using Andrew's
// monotone chain, returning vertices in counterclockwise order.
// Collinear boundary points are dropped.
func ConvexHull(pts []r2.Vec) Polygon {
	if len(pts) < 3 {
		return Polygon(append([]r2.Vec(nil), pts...))
	}

	sorted := append([]r2.Vec(nil), pts...)
	sortPoints(sorted)

	var lower []r2.Vec
	for _, p := range sorted {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	var upper []r2.Vec
	for i := len(sorted) - 1; i >= 0; i-- {
		p := sorted[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	// Drop the last point of each chain; it repeats the first point of
	// the other chain.
	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	return Polygon(hull)
}

// sortPoints orders points by X, then Y.
func sortPoints(pts []r2.Vec) {
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})
}

// Contains reports whether pt lies inside or on the boundary of p.
// p must be convex with counterclockwise winding.
func (p Polygon) Contains(pt r2.Vec) bool {
	n := len(p)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		a, b := p[i], p[(i+1)%n]
		if cross(a, b, pt) < -1e-9 {
			return false
		}
	}
	return true
}

// Bounds returns the axis-aligned bounding box of the polygon.
func (p Polygon) Bounds() (min, max r2.Vec) {
	if len(p) == 0 {
		return r2.Vec{}, r2.Vec{}
	}
	min, max = p[0], p[0]
	for _, v := range p[1:] {
		min.X = math.Min(min.X, v.X)
		min.Y = math.Min(min.Y, v.Y)
		max.X = math.Max(max.X, v.X)
		max.Y = math.Max(max.Y, v.Y)
	}
	return min, max
}
