package sketch

import (
	"testing"

	"github.com/philipparndt/goextrude/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(x, y float64) geometry.Point2D {
	return geometry.NewPoint2D(x, y)
}

func TestAddPointClosesSquare(t *testing.T) {
	s := NewSession(0.2)

	for _, p := range []geometry.Point2D{pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4)} {
		res := s.AddPoint(p)
		require.Equal(t, Open, res.Status)
	}
	assert.Equal(t, 4, s.Len())

	res := s.AddPoint(pt(0.1, 0.1))
	require.Equal(t, Closed, res.Status)
	assert.Equal(t, []geometry.Point2D{pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4)}, res.Polygon.Vertices)
	assert.True(t, s.IsEmpty(), "closure resets the sketch")
}

func TestAddPointClosesExactlyOnce(t *testing.T) {
	s := NewSession(0.2)
	s.AddPoint(pt(0, 0))
	s.AddPoint(pt(1, 0))
	s.AddPoint(pt(1, 1))

	closures := 0
	if s.AddPoint(pt(0.05, 0)).Status == Closed {
		closures++
	}
	// The next click starts a fresh sketch
	if s.AddPoint(pt(0.05, 0)).Status == Closed {
		closures++
	}

	assert.Equal(t, 1, closures)
	assert.Equal(t, 1, s.Len())
}

func TestAddPointNeedsThreePoints(t *testing.T) {
	s := NewSession(0.2)
	s.AddPoint(pt(0, 0))
	res := s.AddPoint(pt(0.1, 0))

	assert.Equal(t, Ignored, res.Status, "second point near the first is a duplicate, not a closure")
	assert.Equal(t, 1, s.Len())
}

func TestAddPointIgnoresConsecutiveDuplicates(t *testing.T) {
	s := NewSession(0.2)
	s.AddPoint(pt(0, 0))
	s.AddPoint(pt(2, 0))

	res := s.AddPoint(pt(2.05, 0.05))
	assert.Equal(t, Ignored, res.Status)
	assert.Equal(t, []geometry.Point2D{pt(0, 0), pt(2, 0)}, s.Points())
}

func TestAddPointFalseClosureIsKept(t *testing.T) {
	// Closely spaced early points close the loop as soon as a third point
	// lands near the start. This yields a two-vertex polygon that the
	// kernel later rejects.
	s := NewSession(0.5)
	s.AddPoint(pt(0, 0))
	s.AddPoint(pt(0.6, 0))
	res := s.AddPoint(pt(0.3, 0.3))

	require.Equal(t, Closed, res.Status)
	assert.Equal(t, 2, res.Polygon.Len())
}

func TestPreview(t *testing.T) {
	s := NewSession(0.2)
	assert.Nil(t, s.Preview(pt(1, 1)))

	s.AddPoint(pt(0, 0))
	s.AddPoint(pt(4, 0))
	assert.Equal(t, []geometry.Point2D{pt(0, 0), pt(4, 0), pt(3, 3)}, s.Preview(pt(3, 3)))

	// Near the start the rubber band snaps shut
	assert.True(t, s.WouldClose(pt(0.1, 0)))
	assert.Equal(t, pt(0, 0), s.Preview(pt(0.1, 0))[2])
}

func TestNewSessionDefaultsThreshold(t *testing.T) {
	assert.Equal(t, DefaultClosureThreshold, NewSession(0).Threshold())
	assert.Equal(t, DefaultClosureThreshold, NewSession(-3).Threshold())
}

func TestResetAndStart(t *testing.T) {
	s := NewSession(0.2)
	_, ok := s.Start()
	assert.False(t, ok)

	s.AddPoint(pt(1, 2))
	start, ok := s.Start()
	assert.True(t, ok)
	assert.Equal(t, pt(1, 2), start)

	s.Reset()
	assert.True(t, s.IsEmpty())
}
