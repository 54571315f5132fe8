package openscad

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/goextrude/pkg/geometry"
	"github.com/philipparndt/goextrude/pkg/kernel"
)

func TestWriteExtrusion(t *testing.T) {
	poly := geometry.NewPolygon(
		geometry.NewPoint2D(0, 0),
		geometry.NewPoint2D(4, 0),
		geometry.NewPoint2D(4, 4),
		geometry.NewPoint2D(0.5, 4),
	)
	var buf bytes.Buffer
	require.NoError(t, WriteExtrusion(&buf, poly, 2.5))

	want := "// 4 vertices, area 15\n" +
		"linear_extrude(height = 2.5)\n" +
		"  polygon(points = [\n" +
		"    [0, 0],\n" +
		"    [4, 0],\n" +
		"    [4, 4],\n" +
		"    [0.5, 4]\n" +
		"  ]);\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteExtrusionRejects(t *testing.T) {
	poly := geometry.NewPolygon(geometry.NewPoint2D(0, 0), geometry.NewPoint2D(1, 0))
	var buf bytes.Buffer
	assert.ErrorIs(t, WriteExtrusion(&buf, poly, 1), kernel.ErrDegeneratePolygon)
	assert.ErrorIs(t, WriteExtrusion(&buf, poly, 0), kernel.ErrInvalidHeight)
	assert.Zero(t, buf.Len())
}
