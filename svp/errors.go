package svp

import "errors"

var (
	// ErrDegenerateVPath indicates a VPath has fewer than two points in
	// a subpath, or its first element is not a MoveTo/MoveToOpen.
	ErrDegenerateVPath = errors.New("svp: degenerate vpath")

	// ErrZeroLengthEdge indicates two consecutive points coincide where
	// a unit normal is required (stroke tessellation cannot divide by
	// the resulting zero-length vector).
	ErrZeroLengthEdge = errors.New("svp: zero-length edge in stroke input")

	// ErrInvalidLineWidth indicates a non-positive stroke width.
	ErrInvalidLineWidth = errors.New("svp: line width must be positive")

	// ErrInvalidFillRule indicates an unrecognized FillRule value.
	ErrInvalidFillRule = errors.New("svp: invalid fill rule")

	// ErrInvalidRenderRect indicates an empty or inverted render rectangle.
	ErrInvalidRenderRect = errors.New("svp: invalid render rectangle")

	// ErrSanityCheckFailed indicates the active list's ascending-x
	// invariant was violated; see (*Intersector).SanityCheck.
	ErrSanityCheckFailed = errors.New("svp: sweep active-list sanity check failed")
)
