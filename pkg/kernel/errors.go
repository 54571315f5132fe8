package kernel

import "errors"

var (
	// ErrDegeneratePolygon means fewer than three usable vertices remain
	// after de-duplication, or the vertices enclose no area.
	ErrDegeneratePolygon = errors.New("degenerate polygon")

	// ErrInvalidHeight means an extrusion height that is not strictly positive.
	ErrInvalidHeight = errors.New("invalid extrusion height")
)
