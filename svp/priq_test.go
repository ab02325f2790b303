package svp

import "testing"

func TestPriQOrdersByYThenX(t *testing.T) {
	q := newPriQ()
	q.Insert(priEvent{X: 5, Y: 2})
	q.Insert(priEvent{X: 1, Y: 1})
	q.Insert(priEvent{X: 3, Y: 1})
	q.Insert(priEvent{X: 0, Y: 5})

	want := []priEvent{
		{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 5, Y: 2}, {X: 0, Y: 5},
	}
	for i, w := range want {
		if q.Len() == 0 {
			t.Fatalf("queue drained early at index %d", i)
		}
		got := q.Choose()
		if got.X != w.X || got.Y != w.Y {
			t.Errorf("pop %d = %+v, want %+v", i, got, w)
		}
	}
	if q.Len() != 0 {
		t.Errorf("queue not drained, len=%d", q.Len())
	}
}

func TestPriQSingleElement(t *testing.T) {
	q := newPriQ()
	q.Insert(priEvent{X: 1, Y: 1})
	if q.Len() != 1 {
		t.Fatalf("len = %d, want 1", q.Len())
	}
	got := q.Choose()
	if got.X != 1 || got.Y != 1 {
		t.Errorf("Choose() = %+v", got)
	}
}
