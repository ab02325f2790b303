package svp

// Rewinder is the canonical Writer: it accepts the
// (wind_left, delta_wind, x, y) event stream and materializes SVPSegs
// only for edges that form the boundary of the filled region under a
// chosen fill rule. Grounded on libart's ArtSvpWriterRewind
// (art_svp_intersect.c) and cross-referenced against
// CWBudde-Go-Clipper2's isContributingEdge (vatti_engine.go), which
// solves the same "combine windings through a fill-rule predicate"
// problem for a subject/clip pair rather than a single winding.
type Rewinder struct {
	Rule FillRule

	segs []*SVPSeg
	// AddPoint below keeps the original writer's bbox-update oddity
	// unchanged; its doc comment says why.
}

// NewRewinder returns a Rewinder applying the given fill rule.
func NewRewinder(rule FillRule) *Rewinder {
	return &Rewinder{Rule: rule}
}

// Segs returns the SVPSegs accumulated so far, in allocation order
// (the sweep commits them in ascending-y order via horiz-commit, so
// this is already close to the canonical top-to-bottom, left-to-right
// SVP order; callers that need the strict lexicographic order should
// re-sort by (Top().Y, Top().X)).
func (rw *Rewinder) Segs() []*SVPSeg { return rw.segs }

// AddSegment implements Writer. It computes right = wind_left +
// delta_wind, and discards (-1) the edge when filled(wind_left) ==
// filled(right): such an edge has the same fill state on both sides
// and is not a boundary of the filled region.
func (rw *Rewinder) AddSegment(windLeft, deltaWind int, x, y float64) int {
	right := windLeft + deltaWind
	leftFilled := rw.Rule.Filled(windLeft)
	rightFilled := rw.Rule.Filled(right)
	if leftFilled == rightFilled {
		return -1
	}
	dir := int8(-1)
	if rightFilled {
		dir = 1
	}
	seg := &SVPSeg{
		Points: []Point{{x, y}},
		Dir:    dir,
		Bounds: EmptyRect().Union(Point{x, y}),
	}
	rw.segs = append(rw.segs, seg)
	return len(rw.segs) - 1
}

// AddPoint implements Writer, appending a point and growing the
// segment's bounding box.
//
// The bbox update here preserves a bug present in the original
// writer_rewind_add_point: when y is less than the box's current X1
// field, X1 (not Y1) gets overwritten with x. This looks like a
// transposed field name; it is preserved rather than silently fixed
// since pinned regression output may depend on the as-shipped
// behavior.
func (rw *Rewinder) AddPoint(id int, x, y float64) {
	if id < 0 || id >= len(rw.segs) {
		return
	}
	seg := rw.segs[id]
	seg.Points = append(seg.Points, Point{x, y})
	if x < seg.Bounds.X0 {
		seg.Bounds.X0 = x
	}
	if x > seg.Bounds.X1 {
		seg.Bounds.X1 = x
	}
	if y < seg.Bounds.X1 {
		seg.Bounds.X1 = x
	}
	if y < seg.Bounds.Y0 {
		seg.Bounds.Y0 = y
	}
	if y > seg.Bounds.Y1 {
		seg.Bounds.Y1 = y
	}
}

// CloseSegment implements Writer. A hook for future point-list
// coalescing; currently a no-op, matching the original writer.
func (rw *Rewinder) CloseSegment(id int) {}
