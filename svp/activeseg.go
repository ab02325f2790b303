package svp

import "math"

// ActiveSeg is the sweep-line state for one input SVPSeg currently
// straddling the scan line. Grounded on libart's ArtActiveSeg
// (art_svp_intersect.c) and on CWBudde-Go-Clipper2's Edge (the same
// role, doubly-linked active-edge-list node with an x-ordering
// invariant), adapted to the single-winding model of this module
// (no subject/clip WindCount2 split).
type ActiveSeg struct {
	seg    *SVPSeg // owning input SVPSeg
	inCurs int     // index of the edge currently being walked

	// Current sub-edge endpoints: (X0,Y0) is the top, (X1,Y1) the bottom.
	X0, Y0, X1, Y1 float64

	// Normalized line equation: A*x + B*y + C is the signed
	// perpendicular distance from the line; A^2+B^2==1, A>=0.
	A, B, C float64
	BNeg    bool // true iff the underlying edge runs right-to-left

	Left, Right *ActiveSeg // active-list neighbors, ascending x

	WindLeft  int // winding number just to this segment's left
	DeltaWind int // +1 or -1, this segment's winding contribution

	outSegID int  // writer-assigned output seg id, -1 if discarded
	hasOut   bool // true once outSegID has been assigned at least once

	stack []Point // pending intersection points, nearest-first

	// Deferred horizontal-commit bookkeeping; see Intersector.addHoriz.
	HorizX  float64
	onHoriz bool

	inActive bool
}

// dist returns the signed perpendicular distance of p from the
// segment's line equation.
func (a *ActiveSeg) dist(p Point) float64 {
	return a.A*p.X + a.B*p.Y + a.C
}

// setupLine derives the normalized line equation and BNeg flag from
// the current (X0,Y0)-(X1,Y1) sub-edge:
// a = dy/L, b = -dx/L, c = -(a*x0+b*y0), L = hypot(dx,dy), with BNeg
// set iff dx < 0.
func (a *ActiveSeg) setupLine() {
	dx := a.X1 - a.X0
	dy := a.Y1 - a.Y0
	l := math.Hypot(dx, dy)
	if l == 0 {
		a.A, a.B, a.C = 0, 0, 0
		return
	}
	s := 1 / l
	a.A = dy * s
	a.B = -dx * s
	if a.A < 0 {
		a.A, a.B = -a.A, -a.B
	}
	a.C = -(a.A*a.X0 + a.B*a.Y0)
	a.BNeg = dx < 0
}
