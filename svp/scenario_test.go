package svp

import "testing"

// svpArea computes the total signed fill area enclosed by a clean SVP
// via the same trapezoid-to-the-y-axis decomposition render.go's
// scanline integration relies on: each monotone chain contributes
// (x0+x1)/2*(y1-y0) per sub-edge, weighted by the negative of its Dir
// (a Dir=+1 edge bounds filled area on its right, so it subtracts its
// own x from the region's right-hand extent; Dir=-1 does the reverse).
// Horizontal edges carry no area contribution and are never stored in
// an SVPSeg chain, so no separate handling is needed for them here.
func svpArea(segs []*SVPSeg) float64 {
	var total float64
	for _, s := range segs {
		for i := 0; i+1 < len(s.Points); i++ {
			p0, p1 := s.Points[i], s.Points[i+1]
			total += -float64(s.Dir) * (p0.X + p1.X) / 2 * (p1.Y - p0.Y)
		}
	}
	return total
}

// reversePath rebuilds path with every subpath's point order reversed,
// preserving each subpath's open/closed kind.
func reversePath(path VPath) VPath {
	var out VPath
	for _, s := range splitSubpaths(path) {
		pts := append([]Point{}, s.points...)
		for l, r := 0, len(pts)-1; l < r; l, r = l+1, r-1 {
			pts[l], pts[r] = pts[r], pts[l]
		}
		op := MoveToOpen
		if s.closed {
			op = MoveTo
		}
		out = append(out, VPathElem{Op: op, X: pts[0].X, Y: pts[0].Y})
		for _, p := range pts[1:] {
			out = append(out, VPathElem{Op: LineTo, X: p.X, Y: p.Y})
		}
		out = append(out, VPathElem{Op: End})
	}
	return out
}

// vpathArea sums |Area128| (via Quantize, exact integer arithmetic)
// over every closed subpath of path, returning the total real-valued
// area. Open subpaths (e.g. an un-stroked input line) contribute
// nothing, since Area128's shoelace formula needs a closed loop.
func vpathArea(path VPath, scale float64) float64 {
	var total float64
	for _, s := range splitSubpaths(path) {
		if !s.closed || len(s.points) < 3 {
			continue
		}
		pts := make([]Point64, len(s.points))
		for i, p := range s.points {
			pts[i] = Quantize(p, scale)
		}
		a := Area128(pts)
		if a.IsNegative() {
			a = a.Negate()
		}
		total += a.ToFloat64() / (scale * scale) / 2
	}
	return total
}

func twoOverlappingSquares() VPath {
	return VPath{
		{Op: MoveTo, X: 0, Y: 0},
		{Op: LineTo, X: 10, Y: 0},
		{Op: LineTo, X: 10, Y: 10},
		{Op: LineTo, X: 0, Y: 10},
		{Op: LineTo, X: 0, Y: 0},
		{Op: End},
		{Op: MoveTo, X: 5, Y: 5},
		{Op: LineTo, X: 15, Y: 5},
		{Op: LineTo, X: 15, Y: 15},
		{Op: LineTo, X: 5, Y: 15},
		{Op: LineTo, X: 5, Y: 5},
		{Op: End},
	}
}

// TestScenarioOverlappingSquaresNonZeroFillsWholeUnion exercises the
// discriminating case between NonZero and EvenOdd: two same-direction
// squares sharing a 5x5 corner. Under NonZero, the doubly-wound
// overlap is filled just like the rest of the union (area =
// 10*10 + 10*10 - 5*5 = 175).
func TestScenarioOverlappingSquaresNonZeroFillsWholeUnion(t *testing.T) {
	svp := SegmentVPath(twoOverlappingSquares(), DefaultPerturbSeed)
	segs := runSweep(t, svp, NonZero)
	area := svpArea(segs)
	if diff := area - 175; diff > 1 || diff < -1 {
		t.Errorf("NonZero union area = %v, want ~175", area)
	}
}

// TestScenarioOverlappingSquaresEvenOddCancelsOverlap exercises the
// same two squares under EvenOdd: the doubly-wound overlap has an
// even winding number and is excluded, leaving only the symmetric
// difference (area = 10*10 + 10*10 - 2*5*5 = 150).
func TestScenarioOverlappingSquaresEvenOddCancelsOverlap(t *testing.T) {
	svp := SegmentVPath(twoOverlappingSquares(), DefaultPerturbSeed)
	segs := runSweep(t, svp, EvenOdd)
	area := svpArea(segs)
	if diff := area - 150; diff > 1 || diff < -1 {
		t.Errorf("EvenOdd symmetric-difference area = %v, want ~150", area)
	}
}

// TestPropertyNonZeroFillInvarianceUnderReversedOrientation checks
// that reversing a simple closed polygon's point order (flipping its
// winding sign from +1 to -1) does not change the area NonZero fills:
// NonZero only cares whether the winding number is nonzero, not its
// sign.
func TestPropertyNonZeroFillInvarianceUnderReversedOrientation(t *testing.T) {
	forward := runSweep(t, SegmentVPath(square(), DefaultPerturbSeed), NonZero)
	reversed := runSweep(t, SegmentVPath(reversePath(square()), DefaultPerturbSeed), NonZero)

	areaFwd, areaRev := svpArea(forward), svpArea(reversed)
	if areaFwd < 0 {
		areaFwd = -areaFwd
	}
	if areaRev < 0 {
		areaRev = -areaRev
	}
	if diff := areaFwd - areaRev; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("areas differ under reversed orientation: forward=%v reversed=%v", areaFwd, areaRev)
	}
	if areaFwd < 99 || areaFwd > 101 {
		t.Errorf("forward area = %v, want ~100", areaFwd)
	}
}

// TestPropertyStrokeAreaApproxPerimeterTimesWidth checks that the
// outline Stroke produces for a straight open line has area within
// O(w^2) of length*width: with butt caps and no joins, the outline is
// an exact rectangle, so the bound holds with a comfortable margin.
func TestPropertyStrokeAreaApproxPerimeterTimesWidth(t *testing.T) {
	const length, width = 10.0, 2.0
	out, err := Stroke(straightLine(), StrokeOptions{Width: width, Join: Miter, Cap: Butt})
	if err != nil {
		t.Fatalf("Stroke() error = %v", err)
	}
	area := vpathArea(out, 1000)
	lower := length*width - 4*width*width
	if area < lower {
		t.Errorf("stroke area = %v, want >= %v (perimeter*width - O(w^2))", area, lower)
	}
}

// TestPropertyStrokeAreaHoldsAcrossJoins repeats the area bound for a
// path with one interior corner, across every join style: the inner
// corner pinches away at most a small multiple of width^2 regardless
// of join geometry.
func TestPropertyStrokeAreaHoldsAcrossJoins(t *testing.T) {
	const length, width = 20.0, 2.0
	for _, join := range []JoinType{Miter, Bevel, Round} {
		out, err := Stroke(lShape(), StrokeOptions{Width: width, Join: join, Cap: Butt})
		if err != nil {
			t.Fatalf("join %v: Stroke() error = %v", join, err)
		}
		area := vpathArea(out, 1000)
		lower := length*width - 8*width*width
		if area < lower {
			t.Errorf("join %v: stroke area = %v, want >= %v", join, area, lower)
		}
	}
}

// TestScenarioStarPolygonCleansUp exercises a deeply concave star
// polygon (inner radius one tenth of the outer) through the full
// segment -> sweep -> rewind pipeline under NonZero.
func TestScenarioStarPolygonCleansUp(t *testing.T) {
	star := StarPolygon(Point{0, 0}, 20, 2, 5)
	if star == nil {
		t.Fatal("StarPolygon returned nil")
	}
	svp := SegmentVPath(star, DefaultPerturbSeed)
	segs := runSweep(t, svp, NonZero)
	if len(segs) == 0 {
		t.Fatal("expected output boundary segments for a star polygon")
	}
}

// TestScenarioStrokedEllipseRenders exercises stroke -> segment ->
// sweep -> render end to end on a smooth closed curve approximation.
func TestScenarioStrokedEllipseRenders(t *testing.T) {
	ellipse := Ellipse(Point{15, 15}, 10, 6, 24)
	outline, err := Stroke(ellipse, StrokeOptions{Width: 2, Join: Round, Cap: Butt})
	if err != nil {
		t.Fatalf("Stroke() error = %v", err)
	}
	svp := SegmentVPath(outline, DefaultPerturbSeed)
	segs := runSweep(t, svp, NonZero)
	if len(segs) == 0 {
		t.Fatal("expected a stroked ellipse to yield output boundaries")
	}

	clean := SVP(segs)
	rows := 0
	err = RenderAA(clean, 0, 0, 30, 30, func(y, start int, steps []CoverageStep) {
		if start != 0 || len(steps) > 0 {
			rows++
		}
	})
	if err != nil {
		t.Fatalf("RenderAA() error = %v", err)
	}
	if rows == 0 {
		t.Error("expected at least one row with nonzero coverage")
	}
}

func TestEllipseRejectsNonPositiveRadius(t *testing.T) {
	if got := Ellipse(Point{}, 0, 0, 8); got != nil {
		t.Errorf("Ellipse with radius 0 = %v, want nil", got)
	}
}

func TestStarPolygonRejectsTooFewPoints(t *testing.T) {
	if got := StarPolygon(Point{}, 10, 5, 2); got != nil {
		t.Errorf("StarPolygon with 2 points = %v, want nil", got)
	}
}
