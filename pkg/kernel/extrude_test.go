package kernel_test

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/philipparndt/goextrude/pkg/geometry"
	"github.com/philipparndt/goextrude/pkg/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func faceAreas(s *kernel.Solid) map[kernel.Face]float64 {
	areas := make(map[kernel.Face]float64)
	for t := 0; t < s.TriangleCount(); t++ {
		areas[s.Classify(t)] += s.Triangle(t).Area()
	}
	return areas
}

func enclosedVolume(s *kernel.Solid) float64 {
	v := 0.0
	for _, tri := range s.Triangles() {
		v += tri.SignedVolume()
	}
	return v
}

func TestExtrudeBox(t *testing.T) {
	square := poly(0, 0, 4, 0, 4, 4, 0, 4)

	s, err := kernel.Extrude(square, 5)
	require.NoError(t, err)

	assert.Equal(t, 8, s.VertexCount())
	assert.Equal(t, 4, s.RingSize)
	assert.Equal(t, 12, s.TriangleCount())
	assert.Equal(t, 5.0, s.Height)

	sides := 0
	for tr := 0; tr < s.TriangleCount(); tr++ {
		if s.Classify(tr) == kernel.FaceSide {
			sides++
		}
	}
	assert.Equal(t, 8, sides)

	areas := faceAreas(s)
	assert.InDelta(t, 16.0, areas[kernel.FaceBase], 1e-9)
	assert.InDelta(t, areas[kernel.FaceBase], areas[kernel.FaceCap], 1e-9)
	assert.InDelta(t, 80.0, areas[kernel.FaceSide], 1e-9)
	assert.InDelta(t, 80.0, enclosedVolume(s), 1e-9)

	bounds := s.Bounds()
	assert.Equal(t, geometry.NewVector3(0, 0, 0), bounds.Min)
	assert.Equal(t, geometry.NewVector3(4, 4, 5), bounds.Max)
}

// star returns a random star-shaped polygon around the origin, counterclockwise
func star(r *rand.Rand, n int) geometry.Polygon {
	step := 2 * math.Pi / float64(n)
	pts := make([]geometry.Point2D, n)
	for i := range pts {
		a := float64(i)*step + (r.Float64()-0.5)*0.6*step
		radius := 1 + 2*r.Float64()
		pts[i] = geometry.NewPoint2D(radius*math.Cos(a), radius*math.Sin(a))
	}
	return geometry.NewPolygon(pts...)
}

func TestExtrudeSideWallsAndCaps(t *testing.T) {
	arrow := poly(0, 1, 3, 1, 3, 0, 5, 2, 3, 4, 3, 3, 0, 3)
	cwArrow := arrow
	if arrow.IsCounterClockwise() {
		cwArrow = arrow.Reverse()
	}
	require.False(t, cwArrow.IsCounterClockwise())

	shapes := map[string]geometry.Polygon{
		"l-shape":  poly(0, 0, 2, 0, 2, 1, 1, 1, 1, 2, 0, 2),
		"cw arrow": cwArrow,
	}
	r := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 5; i++ {
		shapes[fmt.Sprintf("star %d", i)] = star(r, 5+2*i)
	}

	const h = 1.5
	for name, p := range shapes {
		t.Run(name, func(t *testing.T) {
			s, err := kernel.Extrude(p, h)
			require.NoError(t, err)

			n := p.Len()
			require.Equal(t, n, s.RingSize)
			assert.Equal(t, 2*n, s.VertexCount())

			sides := 0
			for tr := 0; tr < s.TriangleCount(); tr++ {
				if s.Classify(tr) == kernel.FaceSide {
					sides++
				}
			}
			assert.Equal(t, 2*n, sides)
			assert.Equal(t, 2*n+2*(n-2), s.TriangleCount())

			area := p.Area()
			areas := faceAreas(s)
			assert.InDelta(t, area, areas[kernel.FaceBase], 1e-9)
			assert.InDelta(t, areas[kernel.FaceBase], areas[kernel.FaceCap], 1e-9)
			assert.InDelta(t, area*h, enclosedVolume(s), 1e-9)
		})
	}
}

func TestExtrudeRingLayout(t *testing.T) {
	l := poly(0, 0, 2, 0, 2, 1, 1, 1, 1, 2, 0, 2)
	const h = 2.5

	s, err := kernel.Extrude(l, h)
	require.NoError(t, err)

	n := s.RingSize
	require.Equal(t, 6, n)
	require.Equal(t, 2*n, s.VertexCount())
	for i := 0; i < n; i++ {
		base, top := s.Positions[i], s.Positions[i+n]
		assert.Equal(t, l.Vertices[i], base.XY(), "base ring keeps polygon order")
		assert.Equal(t, base.XY(), top.XY())
		assert.Equal(t, 0.0, base.Z)
		assert.Equal(t, h, top.Z)
	}
}

func TestExtrudeOutwardNormals(t *testing.T) {
	for name, p := range map[string]geometry.Polygon{
		"ccw": poly(0, 0, 3, 0, 3, 2, 0, 2),
		"cw":  poly(0, 0, 0, 2, 3, 2, 3, 0),
	} {
		t.Run(name, func(t *testing.T) {
			s, err := kernel.Extrude(p, 1)
			require.NoError(t, err)

			// Positive volume means every facet faces out
			assert.InDelta(t, 6.0, enclosedVolume(s), 1e-9)

			center := geometry.NewVector3(1.5, 1, 0.5)
			for tr := 0; tr < s.TriangleCount(); tr++ {
				tri := s.Triangle(tr)
				out := tri.Center().Sub(center)
				assert.Greater(t, tri.CalculateNormal().Dot(out), 0.0, "triangle %d (%s) faces inward", tr, s.Classify(tr))
			}
		})
	}
}

func TestExtrudeInvalidHeight(t *testing.T) {
	square := poly(0, 0, 4, 0, 4, 4, 0, 4)
	for _, h := range []float64{0, -1} {
		s, err := kernel.Extrude(square, h)
		assert.ErrorIs(t, err, kernel.ErrInvalidHeight)
		assert.Nil(t, s)
	}
}

func TestExtrudeDegenerate(t *testing.T) {
	_, err := kernel.Extrude(poly(0, 0, 1, 0), 1)
	assert.ErrorIs(t, err, kernel.ErrDegeneratePolygon)
}

func TestExtrudeNormals(t *testing.T) {
	s, err := kernel.Extrude(poly(0, 0, 4, 0, 4, 4, 0, 4), 5)
	require.NoError(t, err)
	require.Len(t, s.Normals, s.VertexCount())

	for i := 0; i < s.RingSize; i++ {
		assert.Less(t, s.Normals[i].Z, 0.0, "base vertex %d should lean down", i)
		assert.Greater(t, s.Normals[i+s.RingSize].Z, 0.0, "cap vertex %d should lean up", i)
		assert.InDelta(t, 1.0, s.Normals[i].Length(), 1e-9)
	}
}

func TestReextrudeKeepsBaseRing(t *testing.T) {
	s, err := kernel.Extrude(poly(0, 0, 4, 0, 4, 4, 0, 4), 5)
	require.NoError(t, err)
	s.Translate(geometry.NewPoint2D(1, 1))

	taller, err := kernel.Reextrude(s, 7)
	require.NoError(t, err)

	assert.Equal(t, s.BaseRing(), taller.BaseRing())
	assert.Equal(t, 7.0, taller.Positions[taller.RingSize].Z)

	_, err = kernel.Reextrude(&kernel.Solid{}, 1)
	assert.ErrorIs(t, err, kernel.ErrDegeneratePolygon)
}

func TestSolidCloneIsDeep(t *testing.T) {
	s, err := kernel.Extrude(poly(0, 0, 1, 0, 0, 1), 1)
	require.NoError(t, err)

	c := s.Clone()
	c.Positions[0] = geometry.NewVector3(9, 9, 9)

	assert.NotEqual(t, s.Positions[0], c.Positions[0])
	assert.False(t, s.ApproxEqual(c, 1e-9))
	assert.True(t, s.ApproxEqual(s.Clone(), 0))
}
