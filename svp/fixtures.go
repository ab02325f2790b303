package svp

import "math"

// Ellipse generates a closed VPath approximating an ellipse (or a
// circle when radiusY == radiusX), used by this module's scenario
// tests as a smooth-curve stand-in: this package has no Bézier/curve
// primitive of its own, so curves are approximated with many-sided
// polygons instead. Grounded on CWBudde-Go-Clipper2/port/clipper.go's
// Ellipse64 contract (center/radiusX/radiusY/steps), reimplemented
// directly against Point/VPath rather than the integer Point64/Path64
// pair since this module has no integer coordinate system.
func Ellipse(center Point, radiusX, radiusY float64, steps int) VPath {
	if radiusX <= 0 {
		return nil
	}
	if radiusY <= 0 {
		radiusY = radiusX
	}
	if steps <= 2 {
		steps = int(math.Ceil(math.Pi / math.Acos(1-math.Min(0.1, 10/math.Max(radiusX, radiusY)))))
		if steps < 12 {
			steps = 12
		}
	}
	out := make(VPath, 0, steps+2)
	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		p := Point{center.X + radiusX*math.Cos(theta), center.Y + radiusY*math.Sin(theta)}
		if i == 0 {
			out = append(out, VPathElem{Op: MoveTo, X: p.X, Y: p.Y})
		} else {
			out = append(out, VPathElem{Op: LineTo, X: p.X, Y: p.Y})
		}
	}
	out = append(out, VPathElem{Op: LineTo, X: center.X + radiusX, Y: center.Y})
	out = append(out, VPathElem{Op: End})
	return out
}

// StarPolygon generates a closed VPath star with alternating outer
// and inner vertices at evenly spaced angles: a concave, star-shaped
// polygon whose edges do not cross one another, used as a many-vertex
// fixture for the sweep intersector. Grounded on
// CWBudde-Go-Clipper2/port/clipper.go's StarPolygon64 contract.
func StarPolygon(center Point, outerRadius, innerRadius float64, points int) VPath {
	if outerRadius <= 0 || innerRadius <= 0 || points < 3 {
		return nil
	}
	n := points * 2
	out := make(VPath, 0, n+2)
	for i := 0; i < n; i++ {
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		theta := math.Pi * float64(i) / float64(points)
		p := Point{center.X + r*math.Sin(theta), center.Y - r*math.Cos(theta)}
		if i == 0 {
			out = append(out, VPathElem{Op: MoveTo, X: p.X, Y: p.Y})
		} else {
			out = append(out, VPathElem{Op: LineTo, X: p.X, Y: p.Y})
		}
	}
	out = append(out, VPathElem{Op: LineTo, X: center.X, Y: center.Y - outerRadius})
	out = append(out, VPathElem{Op: End})
	return out
}
