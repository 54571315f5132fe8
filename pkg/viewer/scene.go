// Package viewer is a headless scene for the modeler: an orbit camera, ray
// picking against the meshes and the ground plane, and a software
// rasterizer that renders the scene to PNG.
package viewer

import (
	"log/slog"
	"math"
	"sort"

	"github.com/philipparndt/goextrude/pkg/geometry"
	"github.com/philipparndt/goextrude/pkg/modeler"
)

const rayEpsilon = 1e-9

// Scene implements modeler.Renderer without a window
type Scene struct {
	Camera *Camera
	meshes map[modeler.MeshID]modeler.MeshData
	log    *slog.Logger
}

// NewScene creates an empty scene with a viewport of the given size
func NewScene(width, height int) *Scene {
	return &Scene{
		Camera: NewCamera(width, height),
		meshes: make(map[modeler.MeshID]modeler.MeshData),
		log:    slog.Default().With("component", "viewer"),
	}
}

// CreateMesh adds a mesh
func (s *Scene) CreateMesh(id modeler.MeshID, data modeler.MeshData) {
	s.meshes[id] = data
}

// UpdateMesh replaces a mesh's data
func (s *Scene) UpdateMesh(id modeler.MeshID, data modeler.MeshData) {
	if _, ok := s.meshes[id]; !ok {
		s.log.Warn("update of unknown mesh", "id", id)
		return
	}
	s.meshes[id] = data
}

// DisposeMesh removes a mesh
func (s *Scene) DisposeMesh(id modeler.MeshID) {
	delete(s.meshes, id)
}

// Mesh returns the data of a live mesh
func (s *Scene) Mesh(id modeler.MeshID) (modeler.MeshData, bool) {
	m, ok := s.meshes[id]
	return m, ok
}

// MeshCount returns the number of live meshes
func (s *Scene) MeshCount() int {
	return len(s.meshes)
}

// FocusTopDown looks straight down at center
func (s *Scene) FocusTopDown(center geometry.Vector3) {
	s.Camera.TopDown(center)
}

// ResetView restores the initial camera
func (s *Scene) ResetView() {
	s.Camera.Reset()
}

// Project maps a world point to screen coordinates
func (s *Scene) Project(p geometry.Vector3) (float64, float64, bool) {
	x, y, _, visible := s.Camera.Project(p)
	return x, y, visible
}

// Pick casts a ray through a screen position. The nearest solid triangle
// wins over the ground plane Z = 0.
func (s *Scene) Pick(screenX, screenY float64) modeler.PickResult {
	origin, dir, err := s.Camera.Ray(screenX, screenY)
	if err != nil {
		s.log.Debug("pick ray failed", "err", err)
		return modeler.PickResult{}
	}

	best := math.Inf(1)
	result := modeler.PickResult{}
	if t, ok := intersectGround(origin, dir); ok {
		best = t
		result = modeler.PickResult{Hit: true, Point: origin.Add(dir.Mul(t))}
	}

	for _, id := range s.ids() {
		m := s.meshes[id]
		if m.Kind != modeler.KindSolid {
			continue
		}
		for i := 0; i+2 < len(m.Indices); i += 3 {
			tri := geometry.NewTriangle(
				m.Positions[m.Indices[i]],
				m.Positions[m.Indices[i+1]],
				m.Positions[m.Indices[i+2]],
			)
			if t, ok := intersectTriangle(origin, dir, tri); ok && t < best {
				best = t
				result = modeler.PickResult{Hit: true, Point: origin.Add(dir.Mul(t)), Mesh: id}
			}
		}
	}
	return result
}

// ids returns the live mesh IDs in creation order
func (s *Scene) ids() []modeler.MeshID {
	ids := make([]modeler.MeshID, 0, len(s.meshes))
	for id := range s.meshes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func intersectGround(origin, dir geometry.Vector3) (float64, bool) {
	if math.Abs(dir.Z) < rayEpsilon {
		return 0, false
	}
	t := -origin.Z / dir.Z
	return t, t > 0
}

// intersectTriangle is the Möller-Trumbore test, hitting both sides
func intersectTriangle(origin, dir geometry.Vector3, tri geometry.Triangle) (float64, bool) {
	e1 := tri.V2.Sub(tri.V1)
	e2 := tri.V3.Sub(tri.V1)
	p := dir.Cross(e2)
	det := e1.Dot(p)
	if math.Abs(det) < rayEpsilon {
		return 0, false
	}
	inv := 1 / det
	s := origin.Sub(tri.V1)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}
	q := s.Cross(e1)
	v := dir.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t := e2.Dot(q) * inv
	return t, t > rayEpsilon
}
