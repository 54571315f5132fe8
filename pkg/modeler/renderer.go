package modeler

import "github.com/philipparndt/goextrude/pkg/geometry"

// MeshID identifies a mesh owned by the controller. IDs are never reused.
type MeshID uint32

// NoMesh is the zero MeshID. A pick that only hits the ground plane
// reports it.
const NoMesh MeshID = 0

// MeshKind tells the renderer how to draw a mesh
type MeshKind int

const (
	KindSolid   MeshKind = iota // indexed triangle mesh
	KindHandle                  // single position drawn as a grab handle
	KindPreview                 // open polyline on the sketch plane
)

func (k MeshKind) String() string {
	switch k {
	case KindSolid:
		return "solid"
	case KindHandle:
		return "handle"
	default:
		return "preview"
	}
}

// MeshData is everything a renderer needs to draw one mesh. The slices
// belong to the renderer once passed in.
type MeshData struct {
	Kind      MeshKind
	Positions []geometry.Vector3
	Normals   []geometry.Vector3
	Indices   []uint32
	Selected  bool
}

// PickResult is the outcome of casting a ray through a screen position
type PickResult struct {
	Hit   bool
	Point geometry.Vector3
	Mesh  MeshID // NoMesh when only the ground plane was hit
}

// Renderer owns the scene and camera. The controller drives it and never
// shares mesh IDs with anything else.
type Renderer interface {
	// Pick casts a ray through a screen position against all meshes and
	// the ground plane Z = 0
	Pick(screenX, screenY float64) PickResult
	// Project maps a world point to screen coordinates
	Project(p geometry.Vector3) (screenX, screenY float64, visible bool)
	CreateMesh(id MeshID, data MeshData)
	UpdateMesh(id MeshID, data MeshData)
	DisposeMesh(id MeshID)
	// FocusTopDown looks straight down the extrusion axis at center
	FocusTopDown(center geometry.Vector3)
	// ResetView restores the initial camera
	ResetView()
}
