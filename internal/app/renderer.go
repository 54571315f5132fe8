package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/goextrude/pkg/geometry"
	"github.com/philipparndt/goextrude/pkg/modeler"
)

// The modeler works Z-up, raylib Y-up. A modeler point (x, y, z) is drawn
// at raylib (x, z, -y), which is a rotation and keeps triangle winding.

func toRL(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Z), Z: float32(-v.Y)}
}

func fromRL(v rl.Vector3) geometry.Vector3 {
	return geometry.NewVector3(float64(v.X), float64(-v.Z), float64(v.Y))
}

// CreateMesh uploads a solid or stores a handle/preview for immediate drawing
func (app *App) CreateMesh(id modeler.MeshID, data modeler.MeshData) {
	m := &sceneMesh{data: data}
	if data.Kind == modeler.KindSolid {
		m.mesh = solidToRaylibMesh(data)
		m.uploaded = true
	}
	app.Scene.meshes[id] = m
}

// UpdateMesh replaces the data of a mesh, re-uploading solids
func (app *App) UpdateMesh(id modeler.MeshID, data modeler.MeshData) {
	m, ok := app.Scene.meshes[id]
	if !ok {
		return
	}
	if m.uploaded {
		rl.UnloadMesh(&m.mesh)
		m.uploaded = false
	}
	m.data = data
	if data.Kind == modeler.KindSolid {
		m.mesh = solidToRaylibMesh(data)
		m.uploaded = true
	}
}

// DisposeMesh frees a mesh
func (app *App) DisposeMesh(id modeler.MeshID) {
	m, ok := app.Scene.meshes[id]
	if !ok {
		return
	}
	if m.uploaded {
		rl.UnloadMesh(&m.mesh)
	}
	delete(app.Scene.meshes, id)
}

// Pick casts the mouse ray against solids and the ground plane
func (app *App) Pick(screenX, screenY float64) modeler.PickResult {
	ray := rl.GetMouseRay(rl.Vector2{X: float32(screenX), Y: float32(screenY)}, app.Camera.camera)

	best := float32(math.MaxFloat32)
	result := modeler.PickResult{}
	if p, ok := rayPlane(ray, 0); ok {
		best = rl.Vector3Distance(ray.Position, p)
		result = modeler.PickResult{Hit: true, Point: fromRL(p)}
	}

	for id, m := range app.Scene.meshes {
		if m.data.Kind != modeler.KindSolid {
			continue
		}
		pos, idx := m.data.Positions, m.data.Indices
		for i := 0; i+2 < len(idx); i += 3 {
			hit := rl.GetRayCollisionTriangle(ray, toRL(pos[idx[i]]), toRL(pos[idx[i+1]]), toRL(pos[idx[i+2]]))
			if hit.Hit && hit.Distance < best {
				best = hit.Distance
				result = modeler.PickResult{Hit: true, Point: fromRL(hit.Point), Mesh: id}
			}
		}
	}
	return result
}

// rayPlane intersects a ray with the horizontal raylib plane Y = y
func rayPlane(ray rl.Ray, y float32) (rl.Vector3, bool) {
	if math.Abs(float64(ray.Direction.Y)) < 1e-6 {
		return rl.Vector3{}, false
	}
	t := (y - ray.Position.Y) / ray.Direction.Y
	if t <= 0 {
		return rl.Vector3{}, false
	}
	return rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, t)), true
}

// Project maps a world point to screen coordinates
func (app *App) Project(p geometry.Vector3) (float64, float64, bool) {
	cam := app.Camera.camera
	world := toRL(p)
	forward := rl.Vector3Subtract(cam.Target, cam.Position)
	visible := rl.Vector3DotProduct(rl.Vector3Subtract(world, cam.Position), forward) > 0
	screen := rl.GetWorldToScreen(world, cam)
	return float64(screen.X), float64(screen.Y), visible
}

// FocusTopDown looks straight down at center
func (app *App) FocusTopDown(center geometry.Vector3) {
	app.setCameraTopView(toRL(center))
}

// ResetView restores the initial camera
func (app *App) ResetView() {
	app.resetCameraView()
}

// solidToRaylibMesh converts a solid to an unindexed raylib mesh with
// baked lighting
func solidToRaylibMesh(data modeler.MeshData) rl.Mesh {
	triangleCount := len(data.Indices) / 3
	vertexCount := triangleCount * 3

	mesh := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(triangleCount),
	}

	vertices := make([]float32, vertexCount*3)
	normals := make([]float32, vertexCount*3)
	colors := make([]uint8, vertexCount*4)

	// Light direction for baked lighting, modeler coordinates
	lightDir := geometry.NewVector3(-0.5, 0.5, -1.0).Normalize()
	base := [3]float64{100, 120, 200}
	if data.Selected {
		base = [3]float64{220, 160, 70}
	}

	for v := 0; v < vertexCount; v++ {
		p := toRL(data.Positions[data.Indices[v]])
		n := geometry.NewVector3(0, 0, 1)
		if int(data.Indices[v]) < len(data.Normals) {
			n = data.Normals[data.Indices[v]]
		}
		light := math.Max(0.3, -n.Dot(lightDir)) // 30% ambient
		rn := toRL(n)

		vertices[v*3+0], vertices[v*3+1], vertices[v*3+2] = p.X, p.Y, p.Z
		normals[v*3+0], normals[v*3+1], normals[v*3+2] = rn.X, rn.Y, rn.Z
		colors[v*4+0] = uint8(base[0] * light)
		colors[v*4+1] = uint8(base[1] * light)
		colors[v*4+2] = uint8(base[2] * light)
		colors[v*4+3] = 255
	}

	if vertexCount > 0 {
		mesh.Vertices = &vertices[0]
		mesh.Normals = &normals[0]
		mesh.Colors = &colors[0]
	}

	rl.UploadMesh(&mesh, true)
	return mesh
}

// drawScene draws solids, handles and the sketch preview
func (app *App) drawScene() {
	for _, m := range app.Scene.meshes {
		if m.data.Kind == modeler.KindSolid && m.uploaded && app.View.showFilled {
			rl.DrawMesh(m.mesh, app.Scene.material, rl.MatrixIdentity())
		}
	}
	if app.View.showWireframe {
		app.drawWireframe()
	}

	handleSize := app.Camera.distance * 0.008
	for _, m := range app.Scene.meshes {
		switch m.data.Kind {
		case modeler.KindHandle:
			if len(m.data.Positions) == 0 {
				continue
			}
			col := rl.SkyBlue
			if m.data.Selected {
				col = rl.Red
			}
			rl.DrawSphere(toRL(m.data.Positions[0]), handleSize, col)
		case modeler.KindPreview:
			pts := m.data.Positions
			for i := 0; i+1 < len(pts); i++ {
				rl.DrawLine3D(toRL(pts[i]), toRL(pts[i+1]), rl.Yellow)
			}
			for _, p := range pts {
				rl.DrawSphere(toRL(p), handleSize*0.6, rl.Orange)
			}
		}
	}
}
