package svp

// priEvent is one entry of the sweep's event queue: either an
// admit-input event (Seg == nil, meaning "admit the next input
// segment") or an advance event on an existing ActiveSeg.
type priEvent struct {
	X, Y float64
	Seg  *ActiveSeg
}

func (e priEvent) less(o priEvent) bool {
	if e.Y != o.Y {
		return e.Y < o.Y
	}
	return e.X < o.X
}

// priQ is a binary-heap priority queue ordered lexicographically by
// (y, x), ascending. Grounded on libart's ArtPriQ: a plain array-backed
// heap with bubble-up/sift-down, no fancy balancing, since event counts
// per sweep are small relative to segment count.
type priQ struct {
	items []priEvent
}

func newPriQ() *priQ { return &priQ{} }

func (q *priQ) Len() int { return len(q.items) }

func (q *priQ) Insert(e priEvent) {
	q.items = append(q.items, e)
	q.bubbleUp(len(q.items) - 1)
}

func (q *priQ) bubbleUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.items[i].less(q.items[parent]) {
			break
		}
		q.items[i], q.items[parent] = q.items[parent], q.items[i]
		i = parent
	}
}

// Choose pops and returns the minimum event.
func (q *priQ) Choose() priEvent {
	top := q.items[0]
	n := len(q.items) - 1
	q.items[0] = q.items[n]
	q.items = q.items[:n]
	if n > 0 {
		q.siftDown(0)
	}
	return top
}

func (q *priQ) siftDown(i int) {
	n := len(q.items)
	for {
		l, r := 2*i+1, 2*i+2
		smallest := i
		if l < n && q.items[l].less(q.items[smallest]) {
			smallest = l
		}
		if r < n && q.items[r].less(q.items[smallest]) {
			smallest = r
		}
		if smallest == i {
			return
		}
		q.items[i], q.items[smallest] = q.items[smallest], q.items[i]
		i = smallest
	}
}
