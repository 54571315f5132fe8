package kernel

import (
	"fmt"
	"math"

	"github.com/philipparndt/goextrude/pkg/geometry"
)

// DedupeTolerance is the distance below which consecutive polygon vertices
// are considered the same vertex.
const DedupeTolerance = 1e-9

// areaEpsilon guards against collinear input with numerically tiny area.
const areaEpsilon = 1e-12

// FlatMesh is a triangulation lying in the sketch plane. Triangle indices
// refer to Vertices and are always wound counterclockwise seen from +Z.
type FlatMesh struct {
	Vertices  []geometry.Point2D
	Triangles [][3]int
}

// Area returns the summed area of all triangles
func (m FlatMesh) Area() float64 {
	total := 0.0
	for _, t := range m.Triangles {
		a, b, c := m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]
		total += b.Sub(a).Cross(c.Sub(a)) / 2
	}
	return total
}

// Triangulate splits a simple polygon into len-2 triangles by ear clipping.
// Non-convex input is supported; self-intersecting input is not detected.
// The polygon is de-duplicated first and the returned mesh refers to the
// de-duplicated vertices in their original order.
func Triangulate(polygon geometry.Polygon) (FlatMesh, error) {
	poly := polygon.Dedupe(DedupeTolerance)
	n := poly.Len()
	if n < 3 {
		return FlatMesh{}, fmt.Errorf("%w: %d usable vertices", ErrDegeneratePolygon, n)
	}

	signed := poly.SignedArea()
	if math.Abs(signed) < areaEpsilon {
		return FlatMesh{}, fmt.Errorf("%w: polygon encloses no area", ErrDegeneratePolygon)
	}

	// Work on a counterclockwise index ring regardless of input winding
	ring := make([]int, n)
	for i := range ring {
		if signed > 0 {
			ring[i] = i
		} else {
			ring[i] = n - 1 - i
		}
	}

	verts := poly.Vertices
	triangles := make([][3]int, 0, n-2)

	for len(ring) > 3 {
		ear := findEar(verts, ring)
		if ear < 0 {
			// Only reachable with self-intersecting or numerically
			// collapsed input. Clip the flattest corner so the loop
			// still terminates.
			ear = flattestCorner(verts, ring)
		}

		m := len(ring)
		prev := ring[(ear+m-1)%m]
		cur := ring[ear]
		next := ring[(ear+1)%m]
		triangles = append(triangles, [3]int{prev, cur, next})
		ring = append(ring[:ear], ring[ear+1:]...)
	}
	triangles = append(triangles, [3]int{ring[0], ring[1], ring[2]})

	return FlatMesh{Vertices: verts, Triangles: triangles}, nil
}

// findEar returns the position in ring of a convex vertex whose triangle
// contains no other ring vertex, or -1.
func findEar(verts []geometry.Point2D, ring []int) int {
	m := len(ring)
	for i := 0; i < m; i++ {
		a := verts[ring[(i+m-1)%m]]
		b := verts[ring[i]]
		c := verts[ring[(i+1)%m]]

		if b.Sub(a).Cross(c.Sub(b)) <= areaEpsilon {
			continue // reflex or collinear
		}

		blocked := false
		for j := 0; j < m; j++ {
			if j == i || j == (i+m-1)%m || j == (i+1)%m {
				continue
			}
			p := verts[ring[j]]
			if p == a || p == b || p == c {
				continue
			}
			if geometry.InTriangle(p, a, b, c) {
				blocked = true
				break
			}
		}
		if !blocked {
			return i
		}
	}
	return -1
}

// flattestCorner returns the ring position with the largest turn, so that
// clipping it removes the least area.
func flattestCorner(verts []geometry.Point2D, ring []int) int {
	m := len(ring)
	best, bestTurn := 0, math.Inf(-1)
	for i := 0; i < m; i++ {
		a := verts[ring[(i+m-1)%m]]
		b := verts[ring[i]]
		c := verts[ring[(i+1)%m]]
		if turn := b.Sub(a).Cross(c.Sub(b)); turn > bestTurn {
			best, bestTurn = i, turn
		}
	}
	return best
}
