package stl

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/goextrude/pkg/geometry"
	"github.com/philipparndt/goextrude/pkg/kernel"
)

func box(t *testing.T) *Model {
	t.Helper()
	s, err := kernel.Extrude(geometry.NewPolygon(
		geometry.NewPoint2D(0, 0),
		geometry.NewPoint2D(4, 0),
		geometry.NewPoint2D(4, 4),
		geometry.NewPoint2D(0, 4),
	), 5)
	require.NoError(t, err)
	return FromSolid("box", s)
}

func TestFromSolid(t *testing.T) {
	m := box(t)
	assert.Equal(t, 12, m.TriangleCount())
	assert.InDelta(t, 80, m.Volume(), 1e-9)
	assert.InDelta(t, 112, m.SurfaceArea(), 1e-9)
	assert.Equal(t, geometry.NewVector3(4, 4, 5), m.BoundingBox().Size())

	assert.Equal(t, 0, FromSolid("empty", nil).TriangleCount())
}

func TestASCIIRoundTrip(t *testing.T) {
	m := box(t)
	var buf bytes.Buffer
	require.NoError(t, WriteASCII(&buf, m))
	assert.Contains(t, buf.String(), "solid box\n")

	back, err := Decode(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "box", back.Name)
	assert.Equal(t, m.Triangles, back.Triangles)
}

func TestBinaryRoundTrip(t *testing.T) {
	m := box(t)
	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, m))
	assert.Equal(t, 84+12*50, buf.Len())

	back, err := Decode(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "box", back.Name)
	assert.Equal(t, m.Triangles, back.Triangles)
}

func TestBinaryHeaderStartingWithSolid(t *testing.T) {
	m := box(t)
	m.Name = "solid but binary"
	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, m))

	back, err := Decode(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 12, back.TriangleCount())
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "box.stl")
	require.NoError(t, WriteFile(path, box(t), false))

	m, err := Parse(path)
	require.NoError(t, err)
	assert.InDelta(t, 80, m.Volume(), 1e-9)

	_, err = Parse(filepath.Join(t.TempDir(), "missing.stl"))
	assert.Error(t, err)
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode([]byte("not an stl"))
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = Decode([]byte("solid x\nfacet normal 0 0 1\nouter loop\nvertex 0 0 0\nvertex 1 0 0\nendloop\nendfacet\n"))
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = Decode([]byte("solid x\nvertex a b c\n"))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestWriteFileASCII(t *testing.T) {
	path := filepath.Join(t.TempDir(), "box.stl")
	require.NoError(t, WriteFile(path, box(t), true))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("solid box")))
}
