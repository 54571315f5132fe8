// Package analysis reports measurements of an extruded solid.
package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/goextrude/pkg/geometry"
	"github.com/philipparndt/goextrude/pkg/kernel"
)

// EdgeInfo is one edge of the mesh
type EdgeInfo struct {
	Start  geometry.Vector3
	End    geometry.Vector3
	Length float64
}

// MeasurementResult contains the measurements of a solid
type MeasurementResult struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	VertexCount   int
	TriangleCount int
	SideTriangles int
	BaseArea      float64
	CapArea       float64
	SideArea      float64
	SurfaceArea   float64
	Volume        float64 // enclosed volume, positive for outward winding
	Perimeter     float64 // of the base ring
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	Edges         []EdgeInfo
}

// AnalyzeSolid measures a solid. Shared edges are counted once.
func AnalyzeSolid(s *kernel.Solid) *MeasurementResult {
	result := &MeasurementResult{}
	if s.IsEmpty() {
		return result
	}

	result.BoundingBox = s.Bounds()
	result.Dimensions = result.BoundingBox.Size()
	result.VertexCount = s.VertexCount()
	result.TriangleCount = s.TriangleCount()
	result.Perimeter = s.BaseRing().Perimeter()

	for t := 0; t < s.TriangleCount(); t++ {
		tri := s.Triangle(t)
		area := tri.Area()
		switch s.Classify(t) {
		case kernel.FaceBase:
			result.BaseArea += area
		case kernel.FaceCap:
			result.CapArea += area
		default:
			result.SideArea += area
			result.SideTriangles++
		}
		result.Volume += tri.SignedVolume()
	}
	result.SurfaceArea = result.BaseArea + result.CapArea + result.SideArea

	result.Edges = uniqueEdges(s)
	result.EdgeCount = len(result.Edges)
	if result.EdgeCount == 0 {
		return result
	}

	result.MinEdgeLength = math.MaxFloat64
	total := 0.0
	for _, e := range result.Edges {
		total += e.Length
		result.MinEdgeLength = math.Min(result.MinEdgeLength, e.Length)
		result.MaxEdgeLength = math.Max(result.MaxEdgeLength, e.Length)
	}
	result.AvgEdgeLength = total / float64(result.EdgeCount)
	return result
}

func uniqueEdges(s *kernel.Solid) []EdgeInfo {
	type key struct{ a, b uint32 }
	seen := make(map[key]bool)
	var edges []EdgeInfo
	for i := 0; i+2 < len(s.Indices); i += 3 {
		tri := s.Indices[i : i+3]
		for k := 0; k < 3; k++ {
			a, b := tri[k], tri[(k+1)%3]
			if a > b {
				a, b = b, a
			}
			if seen[key{a, b}] {
				continue
			}
			seen[key{a, b}] = true
			start, end := s.Positions[a], s.Positions[b]
			edges = append(edges, EdgeInfo{Start: start, End: end, Length: start.Distance(end)})
		}
	}
	return edges
}

// FindLongestEdges returns the N longest edges
func FindLongestEdges(result *MeasurementResult, count int) []EdgeInfo {
	edges := append([]EdgeInfo(nil), result.Edges...)
	sort.Slice(edges, func(i, j int) bool {
		return edges[i].Length > edges[j].Length
	})
	return edges[:min(count, len(edges))]
}

// FindShortestEdges returns the N shortest edges
func FindShortestEdges(result *MeasurementResult, count int) []EdgeInfo {
	edges := append([]EdgeInfo(nil), result.Edges...)
	sort.Slice(edges, func(i, j int) bool {
		return edges[i].Length < edges[j].Length
	})
	return edges[:min(count, len(edges))]
}

// IsClosed reports whether base and cap areas agree within tol, which holds
// for every solid built by extrusion
func (r *MeasurementResult) IsClosed(tol float64) bool {
	return math.Abs(r.BaseArea-r.CapArea) <= tol
}

// FormatMeasurement formats a measurement with a unit
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
