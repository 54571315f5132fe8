package kernel_test

import (
	"testing"

	"github.com/philipparndt/goextrude/pkg/geometry"
	"github.com/philipparndt/goextrude/pkg/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func poly(coords ...float64) geometry.Polygon {
	pts := make([]geometry.Point2D, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		pts = append(pts, geometry.NewPoint2D(coords[i], coords[i+1]))
	}
	return geometry.NewPolygon(pts...)
}

func TestTriangulateConvex(t *testing.T) {
	square := poly(0, 0, 4, 0, 4, 4, 0, 4)

	flat, err := kernel.Triangulate(square)
	require.NoError(t, err)

	assert.Len(t, flat.Triangles, 2)
	assert.InDelta(t, 16.0, flat.Area(), 1e-9)
}

func TestTriangulateNonConvex(t *testing.T) {
	// L-shape, area 3
	l := poly(0, 0, 2, 0, 2, 1, 1, 1, 1, 2, 0, 2)

	flat, err := kernel.Triangulate(l)
	require.NoError(t, err)

	assert.Len(t, flat.Triangles, 4)
	assert.InDelta(t, 3.0, flat.Area(), 1e-9)
	for _, tri := range flat.Triangles {
		a, b, c := flat.Vertices[tri[0]], flat.Vertices[tri[1]], flat.Vertices[tri[2]]
		assert.Greater(t, b.Sub(a).Cross(c.Sub(a)), 0.0, "triangle %v must be counterclockwise", tri)
	}
}

func TestTriangulateClockwiseInput(t *testing.T) {
	// Arrow head wound clockwise, one reflex vertex
	arrow := poly(0, 0, 2, 4, 4, 0, 2, 1)
	require.False(t, arrow.IsCounterClockwise())

	flat, err := kernel.Triangulate(arrow)
	require.NoError(t, err)

	assert.Len(t, flat.Triangles, 2)
	assert.InDelta(t, arrow.Area(), flat.Area(), 1e-9)
}

func TestTriangulateDegenerate(t *testing.T) {
	cases := map[string]geometry.Polygon{
		"empty":        poly(),
		"two vertices": poly(0, 0, 1, 1),
		"duplicates":   poly(0, 0, 1, 1, 1, 1, 0, 0),
		"collinear":    poly(0, 0, 1, 0, 2, 0, 3, 0),
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := kernel.Triangulate(p)
			assert.ErrorIs(t, err, kernel.ErrDegeneratePolygon)
		})
	}
}
