package geometry

import "math"

// Vector3 is a position or direction in model space. Z is the extrusion
// axis and the sketch plane is Z = 0.
type Vector3 struct {
	X, Y, Z float64
}

// NewVector3 creates a new 3D vector
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func (v Vector3) Add(o Vector3) Vector3 { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector3) Sub(o Vector3) Vector3 { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector3) Mul(s float64) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }
func (v Vector3) Dot(o Vector3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns v x o; for counterclockwise triangles in the sketch plane
// the result points along +Z
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the magnitude of the vector
func (v Vector3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Distance returns the distance between two points
func (v Vector3) Distance(o Vector3) float64 {
	return v.Sub(o).Length()
}

// Normalize returns a unit vector in the same direction, or the zero
// vector for a zero-length input
func (v Vector3) Normalize() Vector3 {
	if l := v.Length(); l > 0 {
		return v.Mul(1 / l)
	}
	return Vector3{}
}

// Min and Max are component-wise
func (v Vector3) Min(o Vector3) Vector3 {
	return Vector3{math.Min(v.X, o.X), math.Min(v.Y, o.Y), math.Min(v.Z, o.Z)}
}

func (v Vector3) Max(o Vector3) Vector3 {
	return Vector3{math.Max(v.X, o.X), math.Max(v.Y, o.Y), math.Max(v.Z, o.Z)}
}

// XY drops the extrusion-axis coordinate, projecting onto the sketch plane
func (v Vector3) XY() Point2D {
	return Point2D{X: v.X, Y: v.Y}
}

// WithXY returns a copy with X and Y replaced, keeping Z
func (v Vector3) WithXY(p Point2D) Vector3 {
	return Vector3{X: p.X, Y: p.Y, Z: v.Z}
}

// ApproxEqual reports whether all components differ by at most tol
func (v Vector3) ApproxEqual(o Vector3, tol float64) bool {
	return math.Abs(v.X-o.X) <= tol &&
		math.Abs(v.Y-o.Y) <= tol &&
		math.Abs(v.Z-o.Z) <= tol
}
