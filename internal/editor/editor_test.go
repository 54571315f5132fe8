package editor

import (
	"io"
	"log/slog"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/goextrude/pkg/config"
	"github.com/philipparndt/goextrude/pkg/geometry"
	"github.com/philipparndt/goextrude/pkg/modeler"
)

func newTestEditor(t *testing.T) *Editor {
	t.Helper()
	test.NewTempApp(t)
	cfg := config.Default()
	cfg.Window.Width = panelWidth + 400
	cfg.Window.Height = 300
	return NewEditor(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// screen returns the view position of a world point
func screen(t *testing.T, e *Editor, p geometry.Vector3) fyne.Position {
	t.Helper()
	x, y, ok := e.scene.Project(p)
	require.True(t, ok, "point %v not visible", p)
	return fyne.NewPos(float32(x), float32(y))
}

func tapGround(t *testing.T, e *Editor, x, y float64) {
	t.Helper()
	e.view.Tapped(&fyne.PointEvent{Position: screen(t, e, geometry.NewVector3(x, y, 0))})
}

// drag moves the pointer from one world point to another in a single step
func drag(t *testing.T, e *Editor, from, to geometry.Vector3) {
	t.Helper()
	start, end := screen(t, e, from), screen(t, e, to)
	e.view.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: end},
		Dragged:    fyne.NewDelta(end.X-start.X, end.Y-start.Y),
	})
	e.view.DragEnd()
}

// drawBox draws the 4x4 square and closes it near the start
func drawBox(t *testing.T, e *Editor) {
	t.Helper()
	test.Tap(e.drawButton)
	require.Equal(t, modeler.Draw, e.ctrl.Mode())
	for _, p := range [][2]float64{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0.05, 0.05}} {
		tapGround(t, e, p[0], p[1])
	}
	require.True(t, e.ctrl.HasSolid())
}

func hasVertexNear(poly geometry.Polygon, p geometry.Point2D, tol float64) bool {
	for _, v := range poly.Vertices {
		if v.Distance(p) <= tol {
			return true
		}
	}
	return false
}

func TestDrawBoxThroughView(t *testing.T) {
	e := newTestEditor(t)
	assert.Equal(t, "Mode: Selector", e.modeLabel.Text)
	assert.Equal(t, "No solid", e.statsLabel.Text)

	drawBox(t, e)

	assert.Equal(t, modeler.Selector, e.ctrl.Mode())
	assert.Equal(t, "Mode: Selector", e.modeLabel.Text)
	assert.Equal(t, 8, e.ctrl.Solid().VertexCount())
	assert.Contains(t, e.statsLabel.Text, "Triangles: 12")
	assert.Empty(t, e.statusLabel.Text)
}

func TestBlockedActionShowsMessage(t *testing.T) {
	e := newTestEditor(t)

	test.Tap(e.drawButton)
	test.Tap(e.drawButton)

	assert.Equal(t, modeler.Draw, e.ctrl.Mode())
	assert.Equal(t, modeler.Message(modeler.ErrModeBlocked), e.statusLabel.Text)

	test.Tap(e.selectButton)
	assert.Equal(t, modeler.Selector, e.ctrl.Mode())
	assert.Empty(t, e.statusLabel.Text)

	test.Tap(e.vertexButton)
	assert.Equal(t, modeler.Message(modeler.ErrNoSolid), e.statusLabel.Text)
}

func TestHeightEntry(t *testing.T) {
	e := newTestEditor(t)
	drawBox(t, e)

	e.heightEntry.OnSubmitted("3")
	assert.Equal(t, 3.0, e.ctrl.Height())
	assert.Equal(t, "3", e.heightEntry.Text)
	assert.InDelta(t, 3.0, e.ctrl.Solid().Bounds().Size().Z, 1e-9)

	for _, text := range []string{"0", "-1", "abc"} {
		e.heightEntry.OnSubmitted(text)
		assert.Equal(t, 3.0, e.ctrl.Height(), text)
		assert.Equal(t, modeler.Message(modeler.ErrInvalidHeight), e.statusLabel.Text, text)
	}
}

func TestHeightStepButtons(t *testing.T) {
	e := newTestEditor(t)

	test.Tap(e.plusButton)
	assert.Equal(t, 1.5, e.ctrl.Height())
	assert.Equal(t, "1.5", e.heightEntry.Text)

	for i := 0; i < 5; i++ {
		test.Tap(e.minusButton)
	}
	assert.Equal(t, e.cfg.MinHeight, e.ctrl.Height())
}

func TestDragSolidInEdit(t *testing.T) {
	e := newTestEditor(t)
	drawBox(t, e)

	test.Tap(e.editButton)
	require.Equal(t, modeler.Edit, e.ctrl.Mode())

	drag(t, e, geometry.NewVector3(2, 2, 1), geometry.NewVector3(3, 2.5, 1))

	assert.Equal(t, modeler.Edit, e.ctrl.Mode())
	bbox := e.ctrl.Solid().Bounds()
	assert.InDelta(t, 1.0, bbox.Min.X, 1e-3)
	assert.InDelta(t, 0.5, bbox.Min.Y, 1e-3)
	assert.True(t, hasVertexNear(e.ctrl.Polygon(), geometry.NewPoint2D(5, 4.5), 1e-3))
}

func TestDragVertexAndSave(t *testing.T) {
	e := newTestEditor(t)
	drawBox(t, e)

	test.Tap(e.vertexButton)
	require.Equal(t, modeler.VertexEdit, e.ctrl.Mode())

	drag(t, e, geometry.NewVector3(4, 4, 1), geometry.NewVector3(5, 4, 1))
	assert.False(t, hasVertexNear(e.ctrl.Polygon(), geometry.NewPoint2D(5, 4), 1e-3), "polygon changes on save only")

	test.Tap(e.saveButton)
	assert.Equal(t, modeler.Selector, e.ctrl.Mode())
	assert.True(t, hasVertexNear(e.ctrl.Polygon(), geometry.NewPoint2D(5, 4), 1e-3))
	assert.Equal(t, 8, e.ctrl.Solid().VertexCount())
}

func TestDragOrbitsInSelector(t *testing.T) {
	e := newTestEditor(t)
	yaw := e.scene.Camera.Yaw

	e.view.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(30, 10)},
		Dragged:    fyne.NewDelta(20, 0),
	})
	e.view.DragEnd()

	assert.InDelta(t, yaw-20*orbitSpeed, e.scene.Camera.Yaw, 1e-9)
}

func TestScrollZooms(t *testing.T) {
	e := newTestEditor(t)
	d := e.scene.Camera.Distance

	e.view.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.NewDelta(0, 100)})

	assert.InDelta(t, d*(1-100*zoomSpeed), e.scene.Camera.Distance, 1e-9)
}

func TestKeys(t *testing.T) {
	e := newTestEditor(t)
	drawBox(t, e)

	test.Tap(e.drawButton)
	tapGround(t, e, 1, 1)
	require.Len(t, e.ctrl.SketchPoints(), 1)

	e.typedKey(&fyne.KeyEvent{Name: fyne.KeyBackspace})
	assert.True(t, e.ctrl.HasSolid())
	assert.Equal(t, modeler.Draw, e.ctrl.Mode())

	e.typedKey(&fyne.KeyEvent{Name: fyne.KeyEscape})
	assert.Equal(t, modeler.Selector, e.ctrl.Mode())
	assert.Empty(t, e.ctrl.SketchPoints())

	e.typedKey(&fyne.KeyEvent{Name: fyne.KeyDelete})
	assert.False(t, e.ctrl.HasSolid())
}

func TestLayoutResizesViewport(t *testing.T) {
	e := newTestEditor(t)
	require.NotNil(t, e.Content())

	test.WidgetRenderer(e.view).Layout(fyne.NewSize(320, 240))

	assert.Equal(t, 320, e.scene.Camera.Width)
	assert.Equal(t, 240, e.scene.Camera.Height)
}
