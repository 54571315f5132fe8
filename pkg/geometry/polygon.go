package geometry

import "math"

// Polygon is a closed ring of sketch-plane vertices. The closing edge from
// the last vertex back to the first is implied.
type Polygon struct {
	Vertices []Point2D
}

// NewPolygon creates a polygon from a list of vertices
func NewPolygon(pts ...Point2D) Polygon {
	return Polygon{Vertices: pts}
}

// Len returns the number of vertices
func (p Polygon) Len() int {
	return len(p.Vertices)
}

// Edge returns the i-th edge as (start, end). Wraps around.
func (p Polygon) Edge(i int) (Point2D, Point2D) {
	n := len(p.Vertices)
	return p.Vertices[i%n], p.Vertices[(i+1)%n]
}

// SignedArea returns the signed area using the shoelace formula.
// Positive for counterclockwise winding, negative for clockwise.
func (p Polygon) SignedArea() float64 {
	n := len(p.Vertices)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		a, b := p.Edge(i)
		area += a.Cross(b)
	}
	return area / 2
}

// Area returns the unsigned area of the polygon
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// IsCounterClockwise returns true if vertices are in CCW order
func (p Polygon) IsCounterClockwise() bool {
	return p.SignedArea() > 0
}

// Reverse returns the polygon with reversed vertex order
func (p Polygon) Reverse() Polygon {
	n := len(p.Vertices)
	rev := make([]Point2D, n)
	for i, v := range p.Vertices {
		rev[n-1-i] = v
	}
	return Polygon{Vertices: rev}
}

// Clone returns a deep copy
func (p Polygon) Clone() Polygon {
	return Polygon{Vertices: append([]Point2D(nil), p.Vertices...)}
}

// Translate returns the polygon moved by delta
func (p Polygon) Translate(delta Point2D) Polygon {
	out := make([]Point2D, len(p.Vertices))
	for i, v := range p.Vertices {
		out[i] = v.Add(delta)
	}
	return Polygon{Vertices: out}
}

// Dedupe drops vertices closer than tol to their predecessor, including
// the wrap-around from the last vertex to the first. Order is preserved.
func (p Polygon) Dedupe(tol float64) Polygon {
	out := make([]Point2D, 0, len(p.Vertices))
	for _, v := range p.Vertices {
		if len(out) > 0 && out[len(out)-1].Distance(v) <= tol {
			continue
		}
		out = append(out, v)
	}
	for len(out) > 1 && out[len(out)-1].Distance(out[0]) <= tol {
		out = out[:len(out)-1]
	}
	return Polygon{Vertices: out}
}

// Centroid returns the vertex average
func (p Polygon) Centroid() Point2D {
	if len(p.Vertices) == 0 {
		return Point2D{}
	}
	var c Point2D
	for _, v := range p.Vertices {
		c = c.Add(v)
	}
	n := float64(len(p.Vertices))
	return Point2D{X: c.X / n, Y: c.Y / n}
}

// Perimeter returns the length of the closed boundary
func (p Polygon) Perimeter() float64 {
	total := 0.0
	for i := range p.Vertices {
		a, b := p.Edge(i)
		total += a.Distance(b)
	}
	return total
}
