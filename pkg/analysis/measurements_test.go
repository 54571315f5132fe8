package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/goextrude/pkg/geometry"
	"github.com/philipparndt/goextrude/pkg/kernel"
)

func TestAnalyzeBox(t *testing.T) {
	s, err := kernel.Extrude(geometry.NewPolygon(
		geometry.NewPoint2D(0, 0),
		geometry.NewPoint2D(4, 0),
		geometry.NewPoint2D(4, 4),
		geometry.NewPoint2D(0, 4),
	), 5)
	require.NoError(t, err)

	r := AnalyzeSolid(s)
	assert.Equal(t, 8, r.VertexCount)
	assert.Equal(t, 12, r.TriangleCount)
	assert.Equal(t, 8, r.SideTriangles)
	assert.InDelta(t, 16, r.BaseArea, 1e-9)
	assert.InDelta(t, 16, r.CapArea, 1e-9)
	assert.InDelta(t, 80, r.SideArea, 1e-9)
	assert.InDelta(t, 112, r.SurfaceArea, 1e-9)
	assert.InDelta(t, 80, r.Volume, 1e-9)
	assert.InDelta(t, 16, r.Perimeter, 1e-9)
	assert.True(t, r.IsClosed(1e-9))
	assert.Equal(t, geometry.NewVector3(4, 4, 5), r.Dimensions)

	// 4 base + 4 cap + 4 vertical + 4 side diagonals + 1 per cap diagonal
	assert.Equal(t, 18, r.EdgeCount)
	assert.InDelta(t, 4, r.MinEdgeLength, 1e-9)

	longest := FindLongestEdges(r, 2)
	require.Len(t, longest, 2)
	assert.InDelta(t, 41.0, longest[0].Length*longest[0].Length, 1e-9)

	assert.Len(t, FindShortestEdges(r, 100), 18)
}

func TestAnalyzeEmpty(t *testing.T) {
	r := AnalyzeSolid(nil)
	assert.Equal(t, 0, r.TriangleCount)
	assert.Equal(t, 0, r.EdgeCount)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "1.500000 units", FormatMeasurement(1.5, ""))
	assert.Equal(t, "(1.000000, 2.000000, 3.000000)", FormatVector(geometry.NewVector3(1, 2, 3)))
}
