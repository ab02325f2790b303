// Package svp implements a 2D vector-graphics rasterization kernel:
// stroke tessellation, sweep-line boolean cleanup of self-intersecting
// polygons into a Sorted Vector Path (SVP), antialiased scan conversion
// of an SVP into per-scanline coverage step streams, and color-fill
// callbacks that paint those streams into a destination buffer.
package svp

import "math"

// Point is a planar point with 64-bit floating-point coordinates.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Cross returns the z-component of the cross product p x q.
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Len returns the Euclidean length of p treated as a vector.
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }

// Equal reports whether p and q are exactly equal.
func (p Point) Equal(q Point) bool { return p.X == q.X && p.Y == q.Y }

// Rect is an axis-aligned bounding box. An empty Rect has X0 > X1.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// EmptyRect returns a Rect that contains no points.
func EmptyRect() Rect {
	return Rect{X0: math.Inf(1), Y0: math.Inf(1), X1: math.Inf(-1), Y1: math.Inf(-1)}
}

// Union grows r to also cover p.
func (r Rect) Union(p Point) Rect {
	if p.X < r.X0 {
		r.X0 = p.X
	}
	if p.X > r.X1 {
		r.X1 = p.X
	}
	if p.Y < r.Y0 {
		r.Y0 = p.Y
	}
	if p.Y > r.Y1 {
		r.Y1 = p.Y
	}
	return r
}

// PathOp tags one element of a VPath.
type PathOp uint8

const (
	// MoveTo begins a closed subpath.
	MoveTo PathOp = iota
	// MoveToOpen begins an open subpath.
	MoveToOpen
	// LineTo draws an edge from the previous point to this one.
	LineTo
	// End terminates the sequence. Only valid as the final element.
	End
)

// VPathElem is one record of a VPath.
type VPathElem struct {
	Op   PathOp
	X, Y float64
}

// VPath is an ordered sequence of path elements, conventionally
// terminated by an End element (the terminator is optional in the Go
// API since the slice length is already known, but kept for parity
// with the wire format described by the external interface).
type VPath []VPathElem

// Pt returns the element's coordinates as a Point.
func (e VPathElem) Pt() Point { return Point{e.X, e.Y} }

// FillRule selects the predicate over winding number that decides
// whether a region is filled.
type FillRule uint8

const (
	NonZero FillRule = iota
	EvenOdd
	Positive
	Intersect
)

// Filled applies the receiver's predicate to a winding number.
func (r FillRule) Filled(w int) bool {
	switch r {
	case EvenOdd:
		return w&1 != 0
	case Positive:
		return w > 0
	case Intersect:
		return w > 1
	default: // NonZero
		return w != 0
	}
}

// JoinType selects the stroke join geometry at interior vertices.
type JoinType uint8

const (
	Miter JoinType = iota
	Bevel
	Round
)

// CapType selects the stroke cap geometry at open-path endpoints.
type CapType uint8

const (
	Butt CapType = iota
	RoundCap
	Square
)

// SVPSeg is one monotone-y chain of a Sorted Vector Path.
type SVPSeg struct {
	Points []Point // strictly non-decreasing Y
	Dir    int8    // +1 downward (fills to its right), -1 upward
	Bounds Rect
}

// Top returns the segment's topmost (first) point.
func (s *SVPSeg) Top() Point { return s.Points[0] }

// Bottom returns the segment's bottommost (last) point.
func (s *SVPSeg) Bottom() Point { return s.Points[len(s.Points)-1] }

// SVP is a Sorted Vector Path: a disjoint set of monotone-y oriented
// edge chains, conventionally sorted lexicographically by
// (top.Y, top.X, initial slope).
type SVP []*SVPSeg

// FullCoverage is the 16.16 fixed-point value of one fully-covered
// pixel scaled by 255, matching the ±0xFF0000 step-delta unit used
// throughout the scan converter.
const FullCoverage = 0xFF0000

// CoverageStep is one entry of a per-scanline coverage step stream:
// running-sum of delta at and past column X reconstructs coverage.
type CoverageStep struct {
	X     int
	Delta int32
}
