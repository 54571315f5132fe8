package app

import (
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/goextrude/pkg/geometry"
	"github.com/philipparndt/goextrude/pkg/modeler"
)

// clickDistance is how far the mouse may travel for a press to count as a click
const clickDistance = 5.0

// handleInput processes user input
func (app *App) handleInput() {
	if app.UI.height.active {
		app.handleHeightInput()
	} else {
		app.handleKeys()
	}
	app.handleMouse()
}

// shortcut is what a key does outside the height field
type shortcut int

const (
	shortcutNone shortcut = iota
	shortcutDraw
	shortcutEdit
	shortcutVertexEdit
	shortcutSave
	shortcutExit
	shortcutDelete
	shortcutHeightUp
	shortcutHeightDown
	shortcutHeightField
	shortcutResetView
	shortcutTopView
	shortcutWireframe
	shortcutFill
	shortcutGrid
)

// shortcuts maps keys to actions. Backspace is left out so it never
// deletes the solid.
var shortcuts = map[int32]shortcut{
	rl.KeyD:          shortcutDraw,
	rl.KeyE:          shortcutEdit,
	rl.KeyV:          shortcutVertexEdit,
	rl.KeyEnter:      shortcutSave,
	rl.KeyS:          shortcutSave,
	rl.KeyEscape:     shortcutExit,
	rl.KeyDelete:     shortcutDelete,
	rl.KeyEqual:      shortcutHeightUp,
	rl.KeyKpAdd:      shortcutHeightUp,
	rl.KeyMinus:      shortcutHeightDown,
	rl.KeyKpSubtract: shortcutHeightDown,
	rl.KeyH:          shortcutHeightField,
	rl.KeyHome:       shortcutResetView,
	rl.KeyT:          shortcutTopView,
	rl.KeyW:          shortcutWireframe,
	rl.KeyF:          shortcutFill,
	rl.KeyG:          shortcutGrid,
}

func (app *App) handleKeys() {
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		app.runShortcut(shortcuts[key])
	}
}

func (app *App) runShortcut(s shortcut) {
	c := app.ctrl
	switch s {
	case shortcutDraw:
		app.report(c.EnterDraw())
	case shortcutEdit:
		app.report(c.EnterEdit())
	case shortcutVertexEdit:
		app.report(c.EnterVertexEdit())
	case shortcutSave:
		if c.Mode() == modeler.VertexEdit {
			app.report(c.SaveVertexEdits())
		}
	case shortcutExit:
		c.ExitToSelector()
	case shortcutDelete:
		c.DeleteSolid()
	case shortcutHeightUp:
		app.report(c.StepExtrusionHeight(app.cfg.HeightStep))
	case shortcutHeightDown:
		app.report(c.StepExtrusionHeight(-app.cfg.HeightStep))
	case shortcutHeightField:
		app.UI.height = HeightInput{active: true}
	case shortcutResetView:
		c.ResetView()
	case shortcutTopView:
		app.setCameraTopView(app.Camera.target)
	case shortcutWireframe:
		app.View.showWireframe = !app.View.showWireframe
	case shortcutFill:
		app.View.showFilled = !app.View.showFilled
	case shortcutGrid:
		app.View.showGrid = !app.View.showGrid
	}
}

// handleHeightInput edits the numeric height field; Enter applies it
func (app *App) handleHeightInput() {
	for r := rl.GetCharPressed(); r != 0; r = rl.GetCharPressed() {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			app.UI.height.text += string(r)
		}
	}
	switch {
	case rl.IsKeyPressed(rl.KeyBackspace) && len(app.UI.height.text) > 0:
		app.UI.height.text = app.UI.height.text[:len(app.UI.height.text)-1]
	case rl.IsKeyPressed(rl.KeyEscape):
		app.UI.height.active = false
	case rl.IsKeyPressed(rl.KeyEnter), rl.IsKeyPressed(rl.KeyKpEnter):
		app.UI.height.active = false
		h, err := strconv.ParseFloat(app.UI.height.text, 64)
		if err != nil {
			app.report(modeler.ErrInvalidHeight)
			return
		}
		app.report(app.ctrl.SetExtrusionHeight(h))
	}
}

func (app *App) handleMouse() {
	in := &app.Interaction
	mouse := rl.GetMousePosition()

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		in.mouseDownPos = mouse
		in.mouseMoved = false
		in.gesture = app.beginGesture(mouse)
	}

	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		if rl.Vector2Distance(in.mouseDownPos, mouse) >= clickDistance {
			in.mouseMoved = true
		}
		switch in.gesture {
		case gestureOrbit:
			if in.mouseMoved {
				app.doOrbit(delta)
			}
		case gesturePan:
			app.doPan(delta)
		case gestureSolid:
			if d, ok := app.planarDelta(mouse); ok {
				app.report(app.ctrl.DragSolid(d))
			}
		case gestureVertex:
			if d, ok := app.planarDelta(mouse); ok {
				app.report(app.ctrl.DragVertex(d))
			}
		}
	}

	if rl.IsMouseButtonDown(rl.MouseMiddleButton) {
		app.doPan(rl.GetMouseDelta())
	}

	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		switch in.gesture {
		case gestureSolid:
			app.ctrl.EndSolidDrag()
		case gestureVertex:
			app.ctrl.EndVertexDrag()
		}
		if !in.mouseMoved && in.gesture != gesturePan {
			app.report(app.ctrl.HandlePick(float64(mouse.X), float64(mouse.Y)))
		}
		in.gesture = gestureNone
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.doZoom(wheel)
	}

	if !rl.IsMouseButtonDown(rl.MouseLeftButton) {
		app.updateHover(mouse)
	}
}

// beginGesture decides what a left press grabs: a vertex handle, the
// selected solid or the camera
func (app *App) beginGesture(mouse rl.Vector2) gesture {
	if rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift) {
		return gesturePan
	}
	x, y := float64(mouse.X), float64(mouse.Y)

	switch app.ctrl.Mode() {
	case modeler.VertexEdit:
		i, ok := app.ctrl.PickVertex(x, y)
		if !ok {
			return gestureOrbit
		}
		if err := app.ctrl.BeginVertexDrag(i); err != nil {
			app.report(err)
			return gestureOrbit
		}
		app.startPlane(toRL(app.ctrl.Solid().Positions[i]).Y, mouse)
		return gestureVertex

	case modeler.Edit:
		hit := app.Pick(x, y)
		if !hit.Hit || hit.Mesh != app.ctrl.Snapshot().SolidMesh {
			return gestureOrbit
		}
		if err := app.ctrl.BeginSolidDrag(); err != nil {
			app.report(err)
			return gestureOrbit
		}
		app.startPlane(toRL(hit.Point).Y, mouse)
		return gestureSolid
	}
	return gestureOrbit
}

// startPlane fixes the horizontal plane a grab moves in
func (app *App) startPlane(y float32, mouse rl.Vector2) {
	app.Interaction.dragPlaneY = y
	ray := rl.GetMouseRay(mouse, app.Camera.camera)
	if p, ok := rayPlane(ray, y); ok {
		app.Interaction.lastPlanePos = p
	}
}

// planarDelta returns the pointer movement on the grab plane since the
// last call, in modeler coordinates
func (app *App) planarDelta(mouse rl.Vector2) (geometry.Point2D, bool) {
	ray := rl.GetMouseRay(mouse, app.Camera.camera)
	p, ok := rayPlane(ray, app.Interaction.dragPlaneY)
	if !ok {
		return geometry.Point2D{}, false
	}
	d := fromRL(rl.Vector3Subtract(p, app.Interaction.lastPlanePos)).XY()
	app.Interaction.lastPlanePos = p
	if d.X == 0 && d.Y == 0 {
		return d, false
	}
	return d, true
}

func (app *App) updateHover(mouse rl.Vector2) {
	x, y := float64(mouse.X), float64(mouse.Y)
	switch app.ctrl.Mode() {
	case modeler.Draw:
		app.ctrl.Hover(x, y)
	case modeler.VertexEdit:
		i, ok := app.ctrl.PickVertex(x, y)
		if !ok {
			i = -1
		}
		app.Interaction.hoverVertex = i
	}
}
