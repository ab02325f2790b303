package svp

// Writer is the stateful collaborator that assembles output SVPSegs
// from the winding-annotated event stream the sweep intersector
// produces: a small interface with three operations, no inheritance
// required. Rewinder is the canonical implementation.
type Writer interface {
	// AddSegment opens a new output segment at (x, y) given the
	// winding number to its left and its winding delta. It returns a
	// seg id, or -1 if the implementation decides this edge is not a
	// true output boundary; callers must then discard subsequent
	// AddPoint/CloseSegment calls carrying that id.
	AddSegment(windLeft, deltaWind int, x, y float64) int
	AddPoint(id int, x, y float64)
	CloseSegment(id int)
}

// debugWriter is a pass-through writer that records every call
// without applying any fill rule; useful in tests that want to inspect
// the sweep's raw winding-annotated output independent of the
// Rewinder's fill-rule filtering.
type debugWriter struct {
	segs   []*SVPSeg
	nextID int
}

func newDebugWriter() *debugWriter { return &debugWriter{} }

func (w *debugWriter) AddSegment(windLeft, deltaWind int, x, y float64) int {
	id := w.nextID
	w.nextID++
	seg := &SVPSeg{
		Points: []Point{{x, y}},
		Dir:    int8(deltaWind),
		Bounds: EmptyRect().Union(Point{x, y}),
	}
	w.segs = append(w.segs, seg)
	return id
}

func (w *debugWriter) AddPoint(id int, x, y float64) {
	if id < 0 || id >= len(w.segs) {
		return
	}
	seg := w.segs[id]
	seg.Points = append(seg.Points, Point{x, y})
	seg.Bounds = seg.Bounds.Union(Point{x, y})
}

func (w *debugWriter) CloseSegment(id int) {}
