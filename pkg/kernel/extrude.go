package kernel

import (
	"fmt"

	"github.com/philipparndt/goextrude/pkg/geometry"
)

// Extrude lifts polygon into a closed solid of the given height.
//
// The result holds 2N positions: the base ring at Z = 0 followed by the cap
// ring at Z = height, both in the polygon's vertex order. Triangles are
// wound so their normals face outward whatever the polygon's winding.
func Extrude(polygon geometry.Polygon, height float64) (*Solid, error) {
	if !(height > 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHeight, height)
	}

	flat, err := Triangulate(polygon)
	if err != nil {
		return nil, err
	}

	verts := flat.Vertices
	n := len(verts)
	ccw := geometry.NewPolygon(verts...).IsCounterClockwise()

	positions := make([]geometry.Vector3, 2*n)
	for i, v := range verts {
		positions[i] = v.Lift(0)
		positions[i+n] = v.Lift(height)
	}

	indices := make([]uint32, 0, 3*(2*n+2*len(flat.Triangles)))
	emit := func(a, b, c int) {
		indices = append(indices, uint32(a), uint32(b), uint32(c))
	}

	// Side walls
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		base, baseNext := i, j
		top, topNext := i+n, j+n
		if ccw {
			emit(base, baseNext, top)
			emit(top, baseNext, topNext)
		} else {
			emit(base, top, baseNext)
			emit(top, topNext, baseNext)
		}
	}

	// Caps: flat triangles are counterclockwise, so the top keeps their
	// order and the bottom reverses it.
	for _, t := range flat.Triangles {
		emit(t[2], t[1], t[0])
	}
	for _, t := range flat.Triangles {
		emit(t[0]+n, t[1]+n, t[2]+n)
	}

	return &Solid{
		Positions: positions,
		Normals:   ComputeNormals(positions, indices),
		Indices:   indices,
		RingSize:  n,
		Height:    height,
	}, nil
}

// Reextrude rebuilds a solid from its current base ring at a new height
func Reextrude(s *Solid, height float64) (*Solid, error) {
	if s.IsEmpty() {
		return nil, fmt.Errorf("%w: empty solid", ErrDegeneratePolygon)
	}
	return Extrude(s.BaseRing(), height)
}
