package geometry

import (
	"math"
	"testing"
)

// rightTriangle is the 3-4-5 triangle in the sketch plane, counterclockwise
func rightTriangle(z float64) Triangle {
	return NewTriangle(
		NewVector3(0, 0, z),
		NewVector3(3, 0, z),
		NewVector3(0, 4, z),
	)
}

func TestTriangleMeasures(t *testing.T) {
	tri := rightTriangle(0)

	if a := tri.Area(); math.Abs(a-6) > 1e-10 {
		t.Errorf("Area failed: expected 6, got %v", a)
	}
	if p := tri.Perimeter(); math.Abs(p-12) > 1e-10 {
		t.Errorf("Perimeter failed: expected 12, got %v", p)
	}

	lengths := tri.EdgeLengths()
	for i, expected := range []float64{3, 5, 4} {
		if math.Abs(lengths[i]-expected) > 1e-10 {
			t.Errorf("Edge %d length failed: expected %v, got %v", i, expected, lengths[i])
		}
	}

	if c := tri.Center(); !c.ApproxEqual(NewVector3(1, 4.0/3, 0), 1e-12) {
		t.Errorf("Center failed: got %v", c)
	}
}

func TestTriangleNormalFollowsWinding(t *testing.T) {
	tri := rightTriangle(0)

	if n := tri.CalculateNormal(); !n.ApproxEqual(NewVector3(0, 0, 1), 1e-12) {
		t.Errorf("Normal failed: expected +Z, got %v", n)
	}

	flipped := NewTriangle(tri.V1, tri.V3, tri.V2)
	if n := flipped.CalculateNormal(); !n.ApproxEqual(NewVector3(0, 0, -1), 1e-12) {
		t.Errorf("Normal failed: expected -Z, got %v", n)
	}
}

func TestSideWallNormalPointsOutward(t *testing.T) {
	// base edge (0,0)->(1,0) of a counterclockwise ring, wall up to z = 2
	wall := NewTriangle(
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(0, 0, 2),
	)
	if n := wall.CalculateNormal(); !n.ApproxEqual(NewVector3(0, -1, 0), 1e-12) {
		t.Errorf("side wall should face -Y, got %v", n)
	}
}

func TestTriangleSignedVolume(t *testing.T) {
	// A cap facet at z = h contributes area*h/3 to the enclosed volume
	top := rightTriangle(3)
	if v := top.SignedVolume(); math.Abs(v-6) > 1e-10 {
		t.Errorf("SignedVolume failed: expected 6, got %v", v)
	}

	// The base facet lies on z = 0 and contributes nothing
	base := rightTriangle(0)
	if v := base.SignedVolume(); math.Abs(v) > 1e-12 {
		t.Errorf("SignedVolume of a base facet should be 0, got %v", v)
	}
}

func TestDegenerateTriangle(t *testing.T) {
	tri := NewTriangle(NewVector3(0, 0, 0), NewVector3(1, 1, 0), NewVector3(2, 2, 0))

	if tri.Area() != 0 {
		t.Errorf("collinear triangle should have zero area, got %v", tri.Area())
	}
	if n := tri.CalculateNormal(); n != (Vector3{}) {
		t.Errorf("collinear triangle should have a zero normal, got %v", n)
	}
}
