// Package stl writes solids as STL and reads STL files back.
package stl

import (
	"github.com/philipparndt/goextrude/pkg/geometry"
	"github.com/philipparndt/goextrude/pkg/kernel"
)

// Model is a named triangle soup
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates an empty model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// FromSolid flattens an indexed solid into a model. Winding is kept, so
// facet normals point outward.
func FromSolid(name string, s *kernel.Solid) *Model {
	m := NewModel(name)
	if s.IsEmpty() {
		return m
	}
	m.Triangles = s.Triangles()
	return m
}

// AddTriangle appends a triangle
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox returns the bounding box of all triangles
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		bbox.Extend(triangle.V1)
		bbox.Extend(triangle.V2)
		bbox.Extend(triangle.V3)
	}
	return bbox
}

// SurfaceArea returns the sum of the triangle areas
func (m *Model) SurfaceArea() float64 {
	total := 0.0
	for _, triangle := range m.Triangles {
		total += triangle.Area()
	}
	return total
}

// Volume returns the enclosed volume of a closed, outward-wound model
func (m *Model) Volume() float64 {
	total := 0.0
	for _, triangle := range m.Triangles {
		total += triangle.SignedVolume()
	}
	return total
}
