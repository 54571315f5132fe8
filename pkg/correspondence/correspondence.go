// Package correspondence edits a Solid vertex by vertex while keeping each
// base vertex and its cap counterpart stacked on top of each other.
//
// The pairing is positional: base vertex i pairs with cap vertex i+N, where
// N is the solid's ring size. Every function checks that layout before
// touching the buffer, so a mesh with another vertex order fails with
// ErrAsymmetricMesh instead of being silently corrupted.
package correspondence

import (
	"errors"
	"fmt"
	"math"

	"github.com/philipparndt/goextrude/pkg/geometry"
	"github.com/philipparndt/goextrude/pkg/kernel"
)

var (
	// ErrAsymmetricMesh means the mesh is not two equal, stacked rings
	ErrAsymmetricMesh = errors.New("asymmetric mesh")

	// ErrVertexOutOfRange means a vertex index outside [0, 2N)
	ErrVertexOutOfRange = errors.New("vertex index out of range")
)

// pairTolerance bounds the XY mismatch allowed between paired vertices
const pairTolerance = 1e-9

// Validate checks that s has the two-ring layout Extrude produces
func Validate(s *kernel.Solid) error {
	if s.IsEmpty() {
		return fmt.Errorf("%w: no vertices", ErrAsymmetricMesh)
	}
	count := s.VertexCount()
	if count%2 != 0 {
		return fmt.Errorf("%w: odd vertex count %d", ErrAsymmetricMesh, count)
	}
	n := s.RingSize
	if n < 3 || 2*n != count {
		return fmt.Errorf("%w: ring size %d does not match %d vertices", ErrAsymmetricMesh, n, count)
	}
	for i := 0; i < n; i++ {
		base, top := s.Positions[i], s.Positions[i+n]
		if base.XY().Distance(top.XY()) > pairTolerance {
			return fmt.Errorf("%w: vertex %d and %d are not stacked", ErrAsymmetricMesh, i, i+n)
		}
		if !(top.Z > base.Z) {
			return fmt.Errorf("%w: cap vertex %d is not above base vertex %d", ErrAsymmetricMesh, i+n, i)
		}
	}
	return nil
}

// Paired returns the index of the vertex stacked with vertex i
func Paired(s *kernel.Solid, i int) (int, error) {
	if err := Validate(s); err != nil {
		return 0, err
	}
	return pairOf(s, i)
}

func pairOf(s *kernel.Solid, i int) (int, error) {
	n := s.RingSize
	if i < 0 || i >= 2*n {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrVertexOutOfRange, i, 2*n)
	}
	if i < n {
		return i + n, nil
	}
	return i - n, nil
}

// IsBase reports whether vertex i belongs to the base ring
func IsBase(s *kernel.Solid, i int) bool {
	return i >= 0 && i < s.RingSize
}

// MoveVertex places vertex i and its pair at p in the sketch plane. Each
// keeps its own extrusion-axis coordinate, so the two never move towards
// each other. Normals are recomputed afterwards.
//
// The buffer of s is modified in place; the change is a live edit until
// Commit rebuilds the solid.
func MoveVertex(s *kernel.Solid, i int, p geometry.Point2D) error {
	if err := Validate(s); err != nil {
		return err
	}
	paired, err := pairOf(s, i)
	if err != nil {
		return err
	}
	s.Positions[i] = s.Positions[i].WithXY(p)
	s.Positions[paired] = s.Positions[paired].WithXY(p)
	s.RecomputeNormals()
	return nil
}

// MoveVertexBy shifts vertex i and its pair by delta in the sketch plane
func MoveVertexBy(s *kernel.Solid, i int, delta geometry.Point2D) error {
	if i < 0 || i >= s.VertexCount() {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrVertexOutOfRange, i, s.VertexCount())
	}
	return MoveVertex(s, i, s.Positions[i].XY().Add(delta))
}

// Commit reads the live base ring back as a polygon and extrudes it from
// scratch at height. The hand-edited buffer is not reused, so normals and
// triangulation of the result are always consistent.
func Commit(s *kernel.Solid, height float64) (*kernel.Solid, error) {
	if err := Validate(s); err != nil {
		return nil, err
	}
	return kernel.Extrude(s.BaseRing(), height)
}

// Drift returns the largest deviation of a cap vertex from "base vertex
// lifted by height". It is zero right after a rebuild.
func Drift(s *kernel.Solid, height float64) float64 {
	n := s.RingSize
	worst := 0.0
	for i := 0; i < n && i+n < len(s.Positions); i++ {
		want := s.Positions[i].Add(geometry.NewVector3(0, 0, height))
		worst = math.Max(worst, want.Distance(s.Positions[i+n]))
	}
	return worst
}
