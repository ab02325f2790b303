package svp

import "testing"

func runSweep(t *testing.T, svp SVP, rule FillRule) []*SVPSeg {
	t.Helper()
	rw := NewRewinder(rule)
	ix := NewIntersector(svp, rw)
	ix.EnableSanityCheck(true)
	if err := ix.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return rw.Segs()
}

func TestIntersectorCleanSquareNonZero(t *testing.T) {
	svp := SegmentVPath(square(), DefaultPerturbSeed)
	segs := runSweep(t, svp, NonZero)
	if len(segs) == 0 {
		t.Fatal("expected at least one output boundary segment")
	}
	for _, s := range segs {
		if len(s.Points) < 2 {
			t.Errorf("output segment too short: %+v", s.Points)
		}
	}
}

// TestIntersectorOverlappingSquaresNonZero exercises the sweep's
// handling of a genuinely self-overlapping input: two squares sharing
// half their area, swept under NonZero, should still terminate and
// produce a consistent (sanity-checked) active list throughout.
func TestIntersectorOverlappingSquaresNonZero(t *testing.T) {
	path := VPath{
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
	svp := SegmentVPath(path, DefaultPerturbSeed)
	segs := runSweep(t, svp, NonZero)
	if len(segs) == 0 {
		t.Fatal("expected output boundary segments for overlapping squares")
	}
}

func TestIntersectorDonutHasTwoBoundaries(t *testing.T) {
	// Outer square wound one way, inner square wound the other way:
	// a classic donut, NonZero-filled between the two boundaries.
	path := VPath{
		{Op: MoveTo, X: 0, Y: 0},
		{Op: LineTo, X: 20, Y: 0},
		{Op: LineTo, X: 20, Y: 20},
		{Op: LineTo, X: 0, Y: 20},
		{Op: LineTo, X: 0, Y: 0},
		{Op: End},
		{Op: MoveTo, X: 5, Y: 5},
		{Op: LineTo, X: 5, Y: 15},
		{Op: LineTo, X: 15, Y: 15},
		{Op: LineTo, X: 15, Y: 5},
		{Op: LineTo, X: 5, Y: 5},
		{Op: End},
	}
	svp := SegmentVPath(path, DefaultPerturbSeed)
	segs := runSweep(t, svp, NonZero)
	if len(segs) == 0 {
		t.Fatal("expected a donut to have output boundary segments")
	}
}

func TestDebugWriterPassesThroughRawEvents(t *testing.T) {
	svp := SegmentVPath(square(), DefaultPerturbSeed)
	w := newDebugWriter()
	ix := NewIntersector(svp, w)
	if err := ix.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(w.segs) == 0 {
		t.Fatal("debugWriter recorded no segments")
	}
}
