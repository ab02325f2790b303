package svp

import "testing"

func straightLine() VPath {
	return VPath{
		{Op: MoveToOpen, X: 0, Y: 0},
		{Op: LineTo, X: 10, Y: 0},
		{Op: End},
	}
}

func lShape() VPath {
	return VPath{
		{Op: MoveToOpen, X: 0, Y: 0},
		{Op: LineTo, X: 10, Y: 0},
		{Op: LineTo, X: 10, Y: 10},
		{Op: End},
	}
}

func TestStrokeRejectsNonPositiveWidth(t *testing.T) {
	_, err := Stroke(straightLine(), StrokeOptions{Width: 0})
	if err != ErrInvalidLineWidth {
		t.Errorf("err = %v, want ErrInvalidLineWidth", err)
	}
}

func TestStrokeOpenButtProducesClosedOutline(t *testing.T) {
	out, err := Stroke(straightLine(), StrokeOptions{Width: 2, Join: Miter, Cap: Butt})
	if err != nil {
		t.Fatalf("Stroke() error = %v", err)
	}
	if len(out) == 0 || out[0].Op != MoveTo {
		t.Fatalf("expected outline to start with MoveTo, got %+v", out[:min(3, len(out))])
	}
	if out[len(out)-1].Op != End {
		t.Fatalf("expected outline to end with End")
	}
}

func TestStrokeJoinVariants(t *testing.T) {
	for _, join := range []JoinType{Miter, Bevel, Round} {
		out, err := Stroke(lShape(), StrokeOptions{Width: 2, Join: join, Cap: Butt})
		if err != nil {
			t.Fatalf("join %v: Stroke() error = %v", join, err)
		}
		if len(out) < 4 {
			t.Errorf("join %v: outline too short: %d elems", join, len(out))
		}
	}
}

func TestStrokeCapVariants(t *testing.T) {
	for _, c := range []CapType{Butt, RoundCap, Square} {
		out, err := Stroke(straightLine(), StrokeOptions{Width: 2, Join: Miter, Cap: c})
		if err != nil {
			t.Fatalf("cap %v: Stroke() error = %v", c, err)
		}
		if len(out) < 4 {
			t.Errorf("cap %v: outline too short: %d elems", c, len(out))
		}
	}
}

func TestStrokeClosedProducesTwoContours(t *testing.T) {
	out, err := Stroke(square(), StrokeOptions{Width: 2, Join: Miter, Cap: Butt})
	if err != nil {
		t.Fatalf("Stroke() error = %v", err)
	}
	moves := 0
	for _, e := range out {
		if e.Op == MoveTo || e.Op == MoveToOpen {
			moves++
		}
	}
	if moves != 2 {
		t.Errorf("expected 2 contours (outer+inner offset), got %d", moves)
	}
}
