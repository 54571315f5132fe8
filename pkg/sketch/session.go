// Package sketch captures clicked sketch-plane points and detects when the
// user has closed the loop.
package sketch

import (
	"github.com/philipparndt/goextrude/pkg/geometry"
)

// DefaultClosureThreshold is the distance in world units from the first
// point within which a click closes the loop.
const DefaultClosureThreshold = 0.2

// Status is the outcome of adding a point
type Status int

const (
	Open    Status = iota // point appended, loop still open
	Closed                // point closed the loop, polygon yielded
	Ignored               // point too close to its predecessor, dropped
)

func (s Status) String() string {
	switch s {
	case Open:
		return "open"
	case Closed:
		return "closed"
	default:
		return "ignored"
	}
}

// Result of Session.AddPoint. Polygon is only set when Status is Closed.
type Result struct {
	Status  Status
	Polygon geometry.Polygon
}

// Session accumulates the points of one sketch. The zero value is not
// usable; create sessions with NewSession.
type Session struct {
	threshold float64
	points    []geometry.Point2D
}

// NewSession creates an empty sketch. A non-positive threshold falls back
// to DefaultClosureThreshold.
func NewSession(threshold float64) *Session {
	if !(threshold > 0) {
		threshold = DefaultClosureThreshold
	}
	return &Session{threshold: threshold}
}

// Threshold returns the closure distance
func (s *Session) Threshold() float64 {
	return s.threshold
}

// AddPoint appends p and checks for closure.
//
// Once more than two points exist and the newest lies within the closure
// threshold of the first, the loop closes: the closing point is snapped onto
// the first, dropped, and the remaining points are yielded as a polygon.
// The sketch is then empty. Closure is purely distance based, so a closely
// spaced early point can close the loop sooner than intended.
func (s *Session) AddPoint(p geometry.Point2D) Result {
	s.points = append(s.points, p)
	n := len(s.points)

	if n > 2 && s.points[0].Distance(s.points[n-1]) < s.threshold {
		s.points[n-1] = s.points[0]
		polygon := geometry.NewPolygon(append([]geometry.Point2D(nil), s.points[:n-1]...)...)
		s.Reset()
		return Result{Status: Closed, Polygon: polygon}
	}

	if n > 1 && s.points[n-2].Distance(p) < s.threshold {
		s.points = s.points[:n-1]
		return Result{Status: Ignored}
	}

	return Result{Status: Open}
}

// WouldClose reports whether adding p next would close the loop
func (s *Session) WouldClose(p geometry.Point2D) bool {
	return len(s.points) >= 2 && s.points[0].Distance(p) < s.threshold
}

// Points returns a copy of the captured points
func (s *Session) Points() []geometry.Point2D {
	return append([]geometry.Point2D(nil), s.points...)
}

// Len returns the number of captured points
func (s *Session) Len() int {
	return len(s.points)
}

// IsEmpty reports whether no point has been captured
func (s *Session) IsEmpty() bool {
	return len(s.points) == 0
}

// Start returns the first point of the sketch
func (s *Session) Start() (geometry.Point2D, bool) {
	if len(s.points) == 0 {
		return geometry.Point2D{}, false
	}
	return s.points[0], true
}

// Preview returns the rubber-band polyline: the captured points followed by
// the cursor, snapped onto the start when the cursor would close the loop.
// It returns nil for an empty sketch.
func (s *Session) Preview(cursor geometry.Point2D) []geometry.Point2D {
	if len(s.points) == 0 {
		return nil
	}
	if s.WouldClose(cursor) {
		cursor = s.points[0]
	}
	return append(s.Points(), cursor)
}

// Reset discards the sketch
func (s *Session) Reset() {
	s.points = s.points[:0]
}
