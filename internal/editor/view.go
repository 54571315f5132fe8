package editor

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/goextrude/pkg/geometry"
	"github.com/philipparndt/goextrude/pkg/modeler"
	"github.com/philipparndt/goextrude/pkg/viewer"
)

const (
	orbitSpeed = 0.01
	zoomSpeed  = 0.002
)

// gesture is what a drag on the view is doing
type gesture int

const (
	gestureNone gesture = iota
	gestureOrbit
	gestureSolid
	gestureVertex
)

// SceneView shows the software-rendered scene and forwards pointer input
// to the controller
type SceneView struct {
	widget.BaseWidget
	scene    *viewer.Scene
	ctrl     *modeler.Controller
	onAction func(error)

	gesture gesture
	planeZ  float64
	last    geometry.Vector3
}

var (
	_ fyne.Tappable     = (*SceneView)(nil)
	_ fyne.Draggable    = (*SceneView)(nil)
	_ fyne.Scrollable   = (*SceneView)(nil)
	_ desktop.Hoverable = (*SceneView)(nil)
)

// NewSceneView creates a view; onAction is called after every pointer
// action with the error it produced, if any
func NewSceneView(scene *viewer.Scene, ctrl *modeler.Controller, onAction func(error)) *SceneView {
	v := &SceneView{scene: scene, ctrl: ctrl, onAction: onAction}
	v.ExtendBaseWidget(v)
	return v
}

// CreateRenderer creates the renderer for the widget
func (v *SceneView) CreateRenderer() fyne.WidgetRenderer {
	img := canvas.NewImageFromImage(v.scene.Render(v.ctrl.Mode().String()))
	img.FillMode = canvas.ImageFillStretch
	img.ScaleMode = canvas.ImageScalePixels
	return &sceneViewRenderer{view: v, image: img}
}

// Tapped adds sketch points in Draw and selects the solid in Selector
func (v *SceneView) Tapped(ev *fyne.PointEvent) {
	v.done(v.ctrl.HandlePick(float64(ev.Position.X), float64(ev.Position.Y)))
}

// Dragged moves a vertex handle in VertexEdit, the selected solid in Edit,
// and orbits the camera otherwise
func (v *SceneView) Dragged(ev *fyne.DragEvent) {
	x, y := float64(ev.Position.X), float64(ev.Position.Y)
	dx, dy := float64(ev.Dragged.DX), float64(ev.Dragged.DY)
	if v.gesture == gestureNone {
		v.begin(x-dx, y-dy)
	}

	var err error
	switch v.gesture {
	case gestureOrbit:
		v.scene.Camera.Orbit(-dx*orbitSpeed, dy*orbitSpeed)
	case gestureSolid, gestureVertex:
		p, ok := v.scene.Camera.PlanePoint(x, y, v.planeZ)
		if !ok {
			return
		}
		delta := p.Sub(v.last).XY()
		v.last = p
		if v.gesture == gestureSolid {
			err = v.ctrl.DragSolid(delta)
		} else {
			err = v.ctrl.DragVertex(delta)
		}
	}
	v.done(err)
}

// begin decides what a drag starting at (x, y) grabs
func (v *SceneView) begin(x, y float64) {
	v.gesture = gestureOrbit

	switch v.ctrl.Mode() {
	case modeler.VertexEdit:
		i, ok := v.ctrl.PickVertex(x, y)
		if !ok || v.ctrl.BeginVertexDrag(i) != nil {
			return
		}
		v.gesture = gestureVertex
		v.planeZ = v.ctrl.Solid().Positions[i].Z

	case modeler.Edit:
		hit := v.scene.Pick(x, y)
		if !hit.Hit || hit.Mesh == modeler.NoMesh || hit.Mesh != v.ctrl.Snapshot().SolidMesh {
			return
		}
		if v.ctrl.BeginSolidDrag() != nil {
			return
		}
		v.gesture = gestureSolid
		v.planeZ = hit.Point.Z
	}

	if p, ok := v.scene.Camera.PlanePoint(x, y, v.planeZ); ok {
		v.last = p
	}
}

// DragEnd finishes the current gesture
func (v *SceneView) DragEnd() {
	switch v.gesture {
	case gestureSolid:
		v.ctrl.EndSolidDrag()
	case gestureVertex:
		v.ctrl.EndVertexDrag()
	}
	v.gesture = gestureNone
	v.done(nil)
}

// Scrolled zooms the camera
func (v *SceneView) Scrolled(ev *fyne.ScrollEvent) {
	v.scene.Camera.Zoom(-float64(ev.Scrolled.DY) * zoomSpeed)
	v.Refresh()
}

func (v *SceneView) MouseIn(*desktop.MouseEvent) {}
func (v *SceneView) MouseOut()                   {}

// MouseMoved updates the rubber band while drawing
func (v *SceneView) MouseMoved(ev *desktop.MouseEvent) {
	if v.ctrl.Mode() != modeler.Draw {
		return
	}
	v.ctrl.Hover(float64(ev.Position.X), float64(ev.Position.Y))
	v.Refresh()
}

func (v *SceneView) done(err error) {
	v.Refresh()
	if v.onAction != nil {
		v.onAction(err)
	}
}

// sceneViewRenderer implements fyne.WidgetRenderer
type sceneViewRenderer struct {
	view  *SceneView
	image *canvas.Image
}

// Layout resizes the camera viewport so screen and pick coordinates agree
func (r *sceneViewRenderer) Layout(size fyne.Size) {
	r.image.Resize(size)
	cam := r.view.scene.Camera
	w, h := int(size.Width), int(size.Height)
	if w > 0 && h > 0 && (w != cam.Width || h != cam.Height) {
		cam.Width, cam.Height = w, h
		r.Refresh()
	}
}

func (r *sceneViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 300)
}

func (r *sceneViewRenderer) Refresh() {
	r.image.Image = r.view.scene.Render(r.view.ctrl.Mode().String())
	r.image.Refresh()
}

func (r *sceneViewRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.image}
}

func (r *sceneViewRenderer) Destroy() {}
