package kernel

import (
	"github.com/philipparndt/goextrude/pkg/geometry"
)

// Face tells which part of a Solid a triangle belongs to
type Face int

const (
	FaceBase Face = iota // bottom cap, facing -Z
	FaceCap              // top cap, facing +Z
	FaceSide             // side wall
)

func (f Face) String() string {
	switch f {
	case FaceBase:
		return "base"
	case FaceCap:
		return "cap"
	default:
		return "side"
	}
}

// Solid is an indexed triangle mesh produced by Extrude
type Solid struct {
	Positions []geometry.Vector3
	Normals   []geometry.Vector3
	Indices   []uint32
	RingSize  int     // N: vertices per ring
	Height    float64 // extrusion height at the last rebuild
}

// VertexCount returns the number of vertices (2N for a well-formed solid)
func (s *Solid) VertexCount() int {
	return len(s.Positions)
}

// TriangleCount returns the number of triangles
func (s *Solid) TriangleCount() int {
	return len(s.Indices) / 3
}

// IsEmpty reports whether the solid has no geometry
func (s *Solid) IsEmpty() bool {
	return s == nil || len(s.Positions) == 0
}

// Triangle resolves triangle t through the index buffer
func (s *Solid) Triangle(t int) geometry.Triangle {
	return geometry.NewTriangle(
		s.Positions[s.Indices[3*t]],
		s.Positions[s.Indices[3*t+1]],
		s.Positions[s.Indices[3*t+2]],
	)
}

// Triangles resolves all triangles
func (s *Solid) Triangles() []geometry.Triangle {
	out := make([]geometry.Triangle, s.TriangleCount())
	for t := range out {
		out[t] = s.Triangle(t)
	}
	return out
}

// Classify reports which face triangle t belongs to, by ring membership of
// its indices.
func (s *Solid) Classify(t int) Face {
	n := uint32(s.RingSize)
	inBase := 0
	for _, idx := range s.Indices[3*t : 3*t+3] {
		if idx < n {
			inBase++
		}
	}
	switch inBase {
	case 3:
		return FaceBase
	case 0:
		return FaceCap
	default:
		return FaceSide
	}
}

// BaseRing reads the current base-ring positions back as a polygon
func (s *Solid) BaseRing() geometry.Polygon {
	verts := make([]geometry.Point2D, s.RingSize)
	for i := range verts {
		verts[i] = s.Positions[i].XY()
	}
	return geometry.NewPolygon(verts...)
}

// Bounds returns the axis-aligned bounding box of all positions
func (s *Solid) Bounds() geometry.BoundingBox {
	return geometry.BoundsOf(s.Positions)
}

// Translate moves every vertex in the sketch plane
func (s *Solid) Translate(delta geometry.Point2D) {
	for i, p := range s.Positions {
		s.Positions[i] = p.WithXY(p.XY().Add(delta))
	}
}

// RecomputeNormals refreshes vertex normals from the current positions
func (s *Solid) RecomputeNormals() {
	s.Normals = ComputeNormals(s.Positions, s.Indices)
}

// Clone returns a deep copy
func (s *Solid) Clone() *Solid {
	if s == nil {
		return nil
	}
	return &Solid{
		Positions: append([]geometry.Vector3(nil), s.Positions...),
		Normals:   append([]geometry.Vector3(nil), s.Normals...),
		Indices:   append([]uint32(nil), s.Indices...),
		RingSize:  s.RingSize,
		Height:    s.Height,
	}
}

// ApproxEqual reports whether two solids have the same topology and
// positions within tol
func (s *Solid) ApproxEqual(other *Solid, tol float64) bool {
	if s.RingSize != other.RingSize ||
		len(s.Positions) != len(other.Positions) ||
		len(s.Indices) != len(other.Indices) {
		return false
	}
	for i, idx := range s.Indices {
		if other.Indices[i] != idx {
			return false
		}
	}
	for i, p := range s.Positions {
		if !p.ApproxEqual(other.Positions[i], tol) {
			return false
		}
	}
	return true
}
