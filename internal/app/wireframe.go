package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/goextrude/pkg/modeler"
)

// drawWireframe draws every solid edge once as a thin cylinder
func (app *App) drawWireframe() {
	wireframeColor := rl.NewColor(100, 100, 100, 200)
	thickness := app.Camera.distance * 0.0008 // constant on screen
	segments := int32(8)

	for _, m := range app.Scene.meshes {
		if m.data.Kind != modeler.KindSolid {
			continue
		}
		drawn := make(map[[2]uint32]bool)
		idx := m.data.Indices
		for i := 0; i+2 < len(idx); i += 3 {
			for k := 0; k < 3; k++ {
				a, b := idx[i+k], idx[i+(k+1)%3]
				if a > b {
					a, b = b, a
				}
				if drawn[[2]uint32{a, b}] {
					continue
				}
				drawn[[2]uint32{a, b}] = true
				rl.DrawCylinderEx(toRL(m.data.Positions[a]), toRL(m.data.Positions[b]), thickness, thickness, segments, wireframeColor)
			}
		}
	}
}
