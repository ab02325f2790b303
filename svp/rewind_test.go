package svp

import "testing"

func TestRewinderDiscardsNonBoundaryEdge(t *testing.T) {
	rw := NewRewinder(NonZero)
	// wind_left=1, delta=1 -> right=2; both sides filled under NonZero,
	// so this edge is interior, not a boundary.
	id := rw.AddSegment(1, 1, 0, 0)
	if id != -1 {
		t.Errorf("AddSegment = %d, want -1 (discarded)", id)
	}
}

func TestRewinderKeepsBoundaryEdge(t *testing.T) {
	rw := NewRewinder(NonZero)
	// wind_left=0, delta=1 -> right=1: crosses the fill boundary.
	id := rw.AddSegment(0, 1, 0, 0)
	if id == -1 {
		t.Fatal("AddSegment discarded a true boundary edge")
	}
	rw.AddPoint(id, 0, 10)
	segs := rw.Segs()
	if len(segs[id].Points) != 2 {
		t.Errorf("expected 2 points after AddPoint, got %d", len(segs[id].Points))
	}
}

func TestRewinderAddPointIgnoresInvalidID(t *testing.T) {
	rw := NewRewinder(NonZero)
	rw.AddPoint(99, 1, 1) // must not panic
	if len(rw.Segs()) != 0 {
		t.Errorf("expected no segments, got %d", len(rw.Segs()))
	}
}
