package geometry

import (
	"fmt"
	"math"
)

// Point2D is a point on the sketch plane
type Point2D struct {
	X, Y float64
}

// NewPoint2D creates a new sketch-plane point
func NewPoint2D(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// Add returns the component-wise sum
func (p Point2D) Add(other Point2D) Point2D {
	return Point2D{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the component-wise difference
func (p Point2D) Sub(other Point2D) Point2D {
	return Point2D{X: p.X - other.X, Y: p.Y - other.Y}
}

// Cross returns the z component of the 3D cross product of p and other
func (p Point2D) Cross(other Point2D) float64 {
	return p.X*other.Y - p.Y*other.X
}

// Distance returns the euclidean distance between two points
func (p Point2D) Distance(other Point2D) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Lift places the point at the given extrusion-axis coordinate
func (p Point2D) Lift(z float64) Vector3 {
	return Vector3{X: p.X, Y: p.Y, Z: z}
}

func (p Point2D) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", p.X, p.Y)
}

// orient returns twice the signed area of triangle abc.
// Positive when a, b, c turn counterclockwise.
func orient(a, b, c Point2D) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// InTriangle reports whether p lies inside or on the boundary of the
// counterclockwise triangle abc
func InTriangle(p, a, b, c Point2D) bool {
	return orient(a, b, p) >= 0 && orient(b, c, p) >= 0 && orient(c, a, p) >= 0
}
