package svp

import "sort"

// DefaultPerturbSeed is the fixed seed used to make perturbation
// deterministic: identical input VPaths must produce bit-identical
// SVPs given the same seed.
const DefaultPerturbSeed uint64 = 0x9E3779B97F4A7C15

// perturbRNG is a tiny deterministic splitmix64 generator. It exists
// only to displace coincident endpoints and collinear configurations
// off exact degeneracy before segmentation/sweep; libart's equivalent
// (art_vpath_perturb) calls libc rand() seeded once per process, which
// is not reproducible across platforms. A fixed-algorithm generator is
// substituted here so that perturbation is fully deterministic: given
// the same seed, the same input always yields the same displaced
// coordinates and thus the same output SVP.
type perturbRNG struct{ state uint64 }

func newPerturbRNG(seed uint64) *perturbRNG { return &perturbRNG{state: seed} }

func (r *perturbRNG) next() uint64 {
	r.state += 0x9E3779B97F4A7C15
	z := r.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// nextOffset returns a perturbation in [-1e-12, 1e-12].
func (r *perturbRNG) nextOffset() float64 {
	const scale = 2e-12 / (1 << 53)
	return (float64(r.next()>>11) * scale) - 1e-12
}

// perturb applies a tiny fixed-seed random displacement to every
// coordinate of path, nudging coincident or collinear points off
// exact degeneracy before segmentation.
func perturb(path VPath, seed uint64) VPath {
	out := make(VPath, len(path))
	rng := newPerturbRNG(seed)
	for i, e := range path {
		out[i] = e
		if e.Op != End {
			out[i].X += rng.nextOffset()
			out[i].Y += rng.nextOffset()
		}
	}
	return out
}

// subpath is one MoveTo*/.../LineTo run extracted from a VPath.
type subpath struct {
	points []Point
	closed bool
}

func splitSubpaths(path VPath) []subpath {
	var subs []subpath
	var cur subpath
	started := false
	for _, e := range path {
		switch e.Op {
		case MoveTo, MoveToOpen:
			if started && len(cur.points) >= 2 {
				subs = append(subs, cur)
			}
			cur = subpath{points: []Point{e.Pt()}, closed: e.Op == MoveTo}
			started = true
		case LineTo:
			if started {
				cur.points = append(cur.points, e.Pt())
			}
		case End:
			if started && len(cur.points) >= 2 {
				subs = append(subs, cur)
			}
			started = false
			cur = subpath{}
		}
	}
	if started && len(cur.points) >= 2 {
		subs = append(subs, cur)
	}
	return subs
}

// SegmentVPath splits a (possibly still-folded) VPath into oriented
// monotone-y SVPSegs, applies the fixed-seed perturbation, and returns
// the result sorted lexicographically by (top.Y, top.X, initial
// slope) — the canonical pre-cleanup SVP that intersection and
// rendering consume.
//
// Grounded on CWBudde-Go-Clipper2's vertex.go markLocalMinimaAndMaxima:
// the same direction-tracking walk that finds local minima/maxima for
// an active-edge-list scan is adapted here to find the run boundaries
// of a monotone-y decomposition, rather than to seed local-minima
// entries in an edge list.
func SegmentVPath(path VPath, seed uint64) SVP {
	perturbed := perturb(path, seed)
	subs := splitSubpaths(perturbed)

	var svp SVP
	for _, s := range subs {
		svp = append(svp, monotoneRuns(s)...)
	}

	sort.Slice(svp, func(i, j int) bool {
		a, b := svp[i], svp[j]
		at, bt := a.Top(), b.Top()
		if at.Y != bt.Y {
			return at.Y < bt.Y
		}
		if at.X != bt.X {
			return at.X < bt.X
		}
		return initialSlope(a) < initialSlope(b)
	})
	return svp
}

func initialSlope(s *SVPSeg) float64 {
	if len(s.Points) < 2 {
		return 0
	}
	p0, p1 := s.Points[0], s.Points[1]
	dy := p1.Y - p0.Y
	if dy == 0 {
		return 0
	}
	return (p1.X - p0.X) / dy
}

// monotoneRuns walks one subpath's vertex chain (closing the loop for
// closed subpaths) and splits it at every local-y extremum, exactly
// mirroring markLocalMinimaAndMaxima's goingUp-flip detection but
// emitting a finished SVPSeg at each flip instead of a vertex flag.
func monotoneRuns(s subpath) SVP {
	pts := s.points
	n := len(pts)
	if s.closed {
		// A closed subpath's final LineTo is expected to return to
		// its MoveTo point; if it doesn't, close it implicitly.
		if !pts[0].Equal(pts[n-1]) {
			pts = append(append([]Point{}, pts...), pts[0])
			n = len(pts)
		}
	}

	var svp SVP
	i := 0
	for i < n-1 {
		// Find the first non-horizontal edge to establish direction.
		j := i
		for j < n-1 && pts[j].Y == pts[j+1].Y {
			j++
		}
		if j >= n-1 {
			break // entirely flat from here: no monotone-y content
		}
		goingUp := pts[j+1].Y < pts[j].Y

		run := []Point{pts[i]}
		k := i + 1
		for k < n {
			run = append(run, pts[k])
			if k == n-1 {
				break
			}
			if pts[k+1].Y == pts[k].Y {
				k++
				continue // horizontal edge: stays within the run
			}
			flip := pts[k+1].Y < pts[k].Y
			if flip != goingUp {
				break
			}
			k++
		}

		svp = append(svp, buildSeg(run, goingUp))
		i = k
	}
	return svp
}

// buildSeg turns one monotone run into a top-down SVPSeg. goingUp
// means the run's y values decreased from first to last point in the
// original traversal order; the stored chain always has
// non-decreasing y, with Dir recording the original direction.
func buildSeg(run []Point, goingUp bool) *SVPSeg {
	pts := append([]Point{}, run...)
	dir := int8(1)
	if goingUp {
		dir = -1
		for l, r := 0, len(pts)-1; l < r; l, r = l+1, r-1 {
			pts[l], pts[r] = pts[r], pts[l]
		}
	}
	bb := EmptyRect()
	for _, p := range pts {
		bb = bb.Union(p)
	}
	return &SVPSeg{Points: pts, Dir: dir, Bounds: bb}
}
