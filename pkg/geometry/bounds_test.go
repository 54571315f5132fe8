package geometry

import (
	"math"
	"testing"
)

// prism returns the eight corners of a w x d x h box standing on Z = 0
func prism(w, d, h float64) []Vector3 {
	var pts []Vector3
	for _, z := range []float64{0, h} {
		pts = append(pts,
			NewVector3(0, 0, z), NewVector3(w, 0, z),
			NewVector3(w, d, z), NewVector3(0, d, z))
	}
	return pts
}

func TestBoundsOfPrism(t *testing.T) {
	bbox := BoundsOf(prism(4, 2, 5))

	if bbox.Min != NewVector3(0, 0, 0) || bbox.Max != NewVector3(4, 2, 5) {
		t.Errorf("BoundsOf failed: got min %v max %v", bbox.Min, bbox.Max)
	}
	if c := bbox.Center(); c != NewVector3(2, 1, 2.5) {
		t.Errorf("Center failed: got %v", c)
	}
	if v := bbox.Volume(); math.Abs(v-40) > 1e-10 {
		t.Errorf("Volume failed: expected 40, got %v", v)
	}
	if d := bbox.Diagonal(); math.Abs(d-math.Sqrt(45)) > 1e-10 {
		t.Errorf("Diagonal failed: expected %v, got %v", math.Sqrt(45), d)
	}
}

func TestBoundingBoxExtendNegative(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(1, 2, 3))
	bbox.Extend(NewVector3(-1, 0, 2))

	if bbox.Size() != NewVector3(2, 2, 1) {
		t.Errorf("Size failed: got %v", bbox.Size())
	}
}

func TestEmptyBoundingBox(t *testing.T) {
	bbox := BoundsOf(nil)

	if !bbox.IsEmpty() {
		t.Fatal("box without points should be empty")
	}
	if bbox.Size() != (Vector3{}) || bbox.Center() != (Vector3{}) {
		t.Errorf("empty box should report zero size and center, got %v %v", bbox.Size(), bbox.Center())
	}
}
