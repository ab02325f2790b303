package svp

import "math/bits"

// Int128 is a signed 128-bit integer used to sum signed doubled
// triangle areas without intermediate overflow when path coordinates
// are quantized onto an integer grid for robustness checks. Grounded
// on CWBudde-Go-Clipper2/port/math128.go's Int128, ported onto
// math/bits' carry-propagating primitives (bits.Mul64/Add64/Sub64)
// rather than the original's hand-rolled carry arithmetic — the
// standard library already solves exactly this problem, so
// reimplementing manual carry logic here would just be less idiomatic
// Go for no benefit.
type Int128 struct {
	Hi int64
	Lo uint64
}

// Add returns a + b.
func (a Int128) Add(b Int128) Int128 {
	lo, carry := bits.Add64(a.Lo, b.Lo, 0)
	hi := a.Hi + b.Hi + int64(carry)
	return Int128{Hi: hi, Lo: lo}
}

// Sub returns a - b.
func (a Int128) Sub(b Int128) Int128 {
	lo, borrow := bits.Sub64(a.Lo, b.Lo, 0)
	hi := a.Hi - b.Hi - int64(borrow)
	return Int128{Hi: hi, Lo: lo}
}

// IsNegative reports whether a < 0.
func (a Int128) IsNegative() bool { return a.Hi < 0 }

// Negate returns -a.
func (a Int128) Negate() Int128 {
	return Int128{}.Sub(a)
}

// ToFloat64 converts a to the nearest float64, accepting the usual
// loss of precision above 2^53.
func (a Int128) ToFloat64() float64 {
	if a.Hi < 0 {
		// Convert the magnitude so that small negative values do not
		// cancel to zero between the two halves.
		n := a.Negate()
		return -(float64(uint64(n.Hi))*18446744073709551616.0 + float64(n.Lo))
	}
	f := float64(a.Hi) * 18446744073709551616.0 // 2^64
	f += float64(a.Lo)
	return f
}

// mul64 returns the signed 128-bit product of two int64 values,
// grounded on math128.go's Mul64 (which special-cases MinInt64
// operands by hand); bits.Mul64 operates on unsigned 64-bit halves,
// so the sign is tracked and reapplied separately here.
func mul64(a, b int64) Int128 {
	neg := (a < 0) != (b < 0)
	ua, ub := absU64(a), absU64(b)
	hi, lo := bits.Mul64(ua, ub)
	p := Int128{Hi: int64(hi), Lo: lo}
	if neg {
		p = p.Negate()
	}
	return p
}

func absU64(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}

// CrossProduct128 returns the exact z-component of (ax,ay) x (bx,by)
// as a 128-bit integer, the building block of Area128.
func CrossProduct128(ax, ay, bx, by int64) Int128 {
	return mul64(ax, by).Sub(mul64(ay, bx))
}

// Area128 returns twice the signed area of a closed integer polygon,
// exactly, via the shoelace sum accumulated in 128-bit integers.
// Grounded on math128.go's Area128, used by this module's test suite
// to bound total stroke-outline area below a positive multiple of
// perimeter*width without floating-point cancellation error hiding a
// genuine regression.
func Area128(pts []Point64) Int128 {
	n := len(pts)
	if n < 3 {
		return Int128{}
	}
	var sum Int128
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum = sum.Add(CrossProduct128(pts[i].X, pts[i].Y, pts[j].X, pts[j].Y))
	}
	return sum
}

// Point64 is an integer-coordinate point, used only for the
// robustness-checking area computation above; the rendering pipeline
// itself is entirely float64 (Point).
type Point64 struct{ X, Y int64 }

// Quantize maps a float64 point onto an integer grid at the given
// scale (coordinate units per grid step), for use with Area128.
func Quantize(p Point, scale float64) Point64 {
	return Point64{X: int64(p.X * scale), Y: int64(p.Y * scale)}
}
