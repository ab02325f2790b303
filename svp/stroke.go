package svp

import "math"

// maxArcStepAngle bounds how much angle a single round-join/cap arc
// step may cover; smaller values produce smoother arcs at the cost of
// more points. Grounded on CWBudde-Go-Clipper2/port/offset.go's
// DoRound, which derives a per-call step count from a configurable
// stepsPerRad field; this port fixes that resolution to one constant
// since Stroke takes no per-call tessellation tolerance parameter of
// its own.
const maxArcStepAngle = math.Pi / 16

// StrokeOptions configures Stroke.
type StrokeOptions struct {
	Width      float64
	Join       JoinType
	Cap        CapType
	MiterLimit float64 // ratio of miter length to width; ignored unless Join == Miter
}

// Stroke converts path into the fill-equivalent outline of a pen of
// the given width traced along it. Grounded on
// original_source/art_svp_vpath_stroke.c's render_seg/render_cap and
// the stroke_raw subpath-walking pipeline; round joins and round/
// square caps (absent from that source, which implements only miter,
// bevel, and butt) are grounded instead on
// CWBudde-Go-Clipper2/port/offset.go's DoRound arc-stepping and on
// seehuhn-go-render's stroke outline construction.
func Stroke(path VPath, opt StrokeOptions) (VPath, error) {
	if opt.Width <= 0 {
		return nil, ErrInvalidLineWidth
	}
	if opt.MiterLimit <= 0 {
		opt.MiterLimit = 4
	}
	hw := opt.Width / 2

	var out VPath
	for _, s := range splitSubpaths(path) {
		pts := dedupe(s.points)
		if len(pts) < 2 {
			continue
		}
		if allZeroLength(pts) {
			return nil, ErrZeroLengthEdge
		}
		if s.closed {
			out = append(out, strokeClosed(pts, hw, opt)...)
		} else {
			out = append(out, strokeOpen(pts, hw, opt)...)
		}
	}
	out = append(out, VPathElem{Op: End})
	return out, nil
}

func dedupe(pts []Point) []Point {
	out := pts[:0:0]
	for i, p := range pts {
		if i == 0 || !p.Equal(pts[i-1]) {
			out = append(out, p)
		}
	}
	return out
}

func allZeroLength(pts []Point) bool {
	return len(pts) < 2
}

func leftNormal(dir Point) Point { return Point{-dir.Y, dir.X} }

func unit(v Point) Point {
	l := v.Len()
	if l == 0 {
		return Point{}
	}
	return v.Scale(1 / l)
}

// renderJoin appends the outer-side join geometry between offsetPrev
// and offsetNext (both already offset from v by hw along their
// respective edge normals) to chain, per render_seg's outside-chain
// handling.
func renderJoin(chain *[]Point, v, offsetPrev, offsetNext, n1, n2 Point, hw float64, opt StrokeOptions) {
	switch opt.Join {
	case Bevel:
		*chain = append(*chain, offsetPrev, offsetNext)
	case Round:
		arcStep(chain, v, n1, n2, hw)
	default: // Miter
		cosHalf := math.Sqrt(maxF(0, (1+n1.Dot(n2))/2))
		if cosHalf < 1e-6 || 1/cosHalf > opt.MiterLimit {
			*chain = append(*chain, offsetPrev, offsetNext)
			return
		}
		bisector := unit(n1.Add(n2))
		if bisector.Len() == 0 {
			*chain = append(*chain, offsetPrev, offsetNext)
			return
		}
		miterLen := hw / cosHalf
		*chain = append(*chain, v.Add(bisector.Scale(miterLen)))
	}
}

// arcStep appends a round arc from v+n1*hw to v+n2*hw, stepping
// through intermediate normals rotated from n1 towards n2.
func arcStep(chain *[]Point, v, n1, n2 Point, hw float64) {
	theta := math.Atan2(n1.Cross(n2), n1.Dot(n2))
	steps := int(math.Ceil(math.Abs(theta) / maxArcStepAngle))
	if steps < 1 {
		steps = 1
	}
	step := theta / float64(steps)
	cosStep, sinStep := math.Cos(step), math.Sin(step)
	cur := n1
	*chain = append(*chain, v.Add(cur.Scale(hw)))
	for i := 1; i < steps; i++ {
		cur = Point{cur.X*cosStep - cur.Y*sinStep, cur.X*sinStep + cur.Y*cosStep}
		*chain = append(*chain, v.Add(cur.Scale(hw)))
	}
	*chain = append(*chain, v.Add(n2.Scale(hw)))
}

// loopDeLoop appends the inside-corner triplet: the incoming offset
// point, the bare vertex (a pinch point), and the outgoing offset
// point. This deliberately produces a self-overlapping sliver rather
// than attempting to trim the inside corner; render_seg does the
// same, relying on downstream nonzero-rule cleanup to resolve the
// overlap.
func loopDeLoop(chain *[]Point, v, offsetPrev, offsetNext Point) {
	*chain = append(*chain, offsetPrev, v, offsetNext)
}

// walkJoints builds the left and right offset chains for a polyline
// (pts[0..n-1], not closed) with hw half-width, applying joins at
// every interior vertex.
func walkJoints(pts []Point, hw float64, opt StrokeOptions, closed bool) (left, right []Point) {
	n := len(pts)
	dirs := make([]Point, n-1)
	for i := 0; i < n-1; i++ {
		dirs[i] = unit(pts[i+1].Sub(pts[i]))
	}

	left = append(left, pts[0].Add(leftNormal(dirs[0]).Scale(hw)))
	right = append(right, pts[0].Sub(leftNormal(dirs[0]).Scale(hw)))

	for i := 1; i < n-1; i++ {
		d0, d1 := dirs[i-1], dirs[i]
		n0, n1 := leftNormal(d0), leftNormal(d1)
		v := pts[i]
		cross := d0.Cross(d1)
		const eps = 1e-9
		switch {
		case cross > eps: // left turn: left side is inside, right side is outside
			loopDeLoop(&left, v, v.Add(n0.Scale(hw)), v.Add(n1.Scale(hw)))
			renderJoin(&right, v, v.Sub(n0.Scale(hw)), v.Sub(n1.Scale(hw)), n0.Scale(-1), n1.Scale(-1), hw, opt)
		case cross < -eps: // right turn: right side is inside, left side is outside
			renderJoin(&left, v, v.Add(n0.Scale(hw)), v.Add(n1.Scale(hw)), n0, n1, hw, opt)
			loopDeLoop(&right, v, v.Sub(n0.Scale(hw)), v.Sub(n1.Scale(hw)))
		default:
			left = append(left, v.Add(n1.Scale(hw)))
			right = append(right, v.Sub(n1.Scale(hw)))
		}
	}

	last := dirs[n-2]
	left = append(left, pts[n-1].Add(leftNormal(last).Scale(hw)))
	right = append(right, pts[n-1].Sub(leftNormal(last).Scale(hw)))
	return left, right
}

// strokeClosed builds the two disjoint closed contours (outer and
// inner offset) that together form the fill-equivalent annulus of a
// closed polyline, handling the wraparound join at pts[0] the way
// stroke_raw's closed-path branch handles the final join back to the
// start.
func strokeClosed(pts []Point, hw float64, opt StrokeOptions) VPath {
	n := len(pts)
	if pts[0].Equal(pts[n-1]) {
		pts = pts[:n-1]
		n--
	}
	if n < 3 {
		return nil
	}
	ext := append(append([]Point{pts[n-1]}, pts...), pts[0], pts[1])
	left, right := walkJoints(ext, hw, opt, true)
	// walkJoints treated ext[0] and ext[len-1] as open endpoints; trim
	// those since the real endpoints here are the synthetic wrap points.
	if len(left) > 2 {
		left = left[1 : len(left)-1]
	}
	if len(right) > 2 {
		right = right[1 : len(right)-1]
	}

	var out VPath
	out = append(out, VPathElem{Op: MoveTo, X: left[0].X, Y: left[0].Y})
	for _, p := range left[1:] {
		out = append(out, VPathElem{Op: LineTo, X: p.X, Y: p.Y})
	}
	out = append(out, VPathElem{Op: MoveTo, X: right[0].X, Y: right[0].Y})
	for _, p := range right[1:] {
		out = append(out, VPathElem{Op: LineTo, X: p.X, Y: p.Y})
	}
	return out
}

// strokeOpen builds the single continuous outline of an open
// polyline: forward along the left offset, a cap at the far end,
// backward along the right offset, and a cap closing back to the
// start, mirroring stroke_raw's open-path cap sequencing.
func strokeOpen(pts []Point, hw float64, opt StrokeOptions) VPath {
	left, right := walkJoints(pts, hw, opt, false)
	n := len(pts)
	startDir := unit(pts[1].Sub(pts[0]))
	endDir := unit(pts[n-1].Sub(pts[n-2]))

	var out VPath
	out = append(out, VPathElem{Op: MoveTo, X: left[0].X, Y: left[0].Y})
	for _, p := range left[1:] {
		out = append(out, VPathElem{Op: LineTo, X: p.X, Y: p.Y})
	}

	endCap := capPoints(pts[n-1], endDir, hw, opt.Cap)
	for _, p := range endCap {
		out = append(out, VPathElem{Op: LineTo, X: p.X, Y: p.Y})
	}

	for i := len(right) - 1; i >= 0; i-- {
		out = append(out, VPathElem{Op: LineTo, X: right[i].X, Y: right[i].Y})
	}

	startCap := capPoints(pts[0], startDir.Scale(-1), hw, opt.Cap)
	for _, p := range startCap {
		out = append(out, VPathElem{Op: LineTo, X: p.X, Y: p.Y})
	}
	return out
}

// capPoints returns the extra vertices (beyond the left/right offset
// endpoints already emitted) needed to cap a stroke end at v, where
// dir points outward along the path's direction of travel at that
// end. Butt returns nothing: render_cap's only implemented variant
// joins the two offsets with a straight line, which the surrounding
// LineTo sequence already provides.
func capPoints(v Point, dir Point, hw float64, capType CapType) []Point {
	n := leftNormal(dir)
	switch capType {
	case Square:
		return []Point{
			v.Add(n.Scale(hw)).Add(dir.Scale(hw)),
			v.Sub(n.Scale(hw)).Add(dir.Scale(hw)),
		}
	case RoundCap:
		// Two quarter arcs through v+dir*hw, so the cap bulges outward.
		var pts []Point
		arcStep(&pts, v, n, dir, hw)
		pts = pts[:len(pts)-1]
		arcStep(&pts, v, dir, n.Scale(-1), hw)
		return pts[1 : len(pts)-1]
	default: // Butt
		return nil
	}
}
