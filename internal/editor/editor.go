// Package editor is a fyne front-end for the modeler: the software-rendered
// scene next to an edit bar with mode buttons and the extrusion height.
package editor

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/goextrude/pkg/analysis"
	"github.com/philipparndt/goextrude/pkg/config"
	"github.com/philipparndt/goextrude/pkg/modeler"
	"github.com/philipparndt/goextrude/pkg/script"
	"github.com/philipparndt/goextrude/pkg/viewer"
)

const panelWidth = 260

// Editor is the window content: scene view, edit bar and status
type Editor struct {
	ctrl   *modeler.Controller
	scene  *viewer.Scene
	view   *SceneView
	cfg    config.Config
	log    *slog.Logger
	window fyne.Window // nil until shown; alerts go to the status label only

	modeLabel   *widget.Label
	statsLabel  *widget.Label
	statusLabel *widget.Label
	heightEntry *widget.Entry

	selectButton *widget.Button
	drawButton   *widget.Button
	editButton   *widget.Button
	vertexButton *widget.Button
	saveButton   *widget.Button
	deleteButton *widget.Button
	resetButton  *widget.Button
	minusButton  *widget.Button
	plusButton   *widget.Button
}

// NewEditor creates the controller, its scene and the widgets around it
func NewEditor(cfg config.Config, log *slog.Logger) *Editor {
	if log == nil {
		log = slog.Default()
	}
	e := &Editor{
		scene: viewer.NewScene(max(cfg.Window.Width-panelWidth, 1), cfg.Window.Height),
		cfg:   cfg,
		log:   log.With("component", "editor"),
	}
	e.ctrl = modeler.New(e.scene, modeler.WithConfig(cfg), modeler.WithLogger(log))
	e.view = NewSceneView(e.scene, e.ctrl, e.finish)

	e.modeLabel = widget.NewLabel("")
	e.modeLabel.TextStyle = fyne.TextStyle{Bold: true}
	e.statsLabel = widget.NewLabel("")
	e.statusLabel = widget.NewLabel("")
	e.statusLabel.Wrapping = fyne.TextWrapWord

	e.heightEntry = widget.NewEntry()
	e.heightEntry.OnSubmitted = e.submitHeight

	e.selectButton = widget.NewButton("Selector", func() { e.do(func() error { e.ctrl.ExitToSelector(); return nil }) })
	e.drawButton = widget.NewButton("Draw", func() { e.do(e.ctrl.EnterDraw) })
	e.editButton = widget.NewButton("Edit", func() { e.do(e.ctrl.EnterEdit) })
	e.vertexButton = widget.NewButton("Vertex Edit", func() { e.do(e.ctrl.EnterVertexEdit) })
	e.saveButton = widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), func() { e.do(e.ctrl.SaveVertexEdits) })
	e.deleteButton = widget.NewButtonWithIcon("Delete", theme.DeleteIcon(), func() { e.do(func() error { e.ctrl.DeleteSolid(); return nil }) })
	e.resetButton = widget.NewButtonWithIcon("Reset Camera", theme.ViewRestoreIcon(), func() { e.do(func() error { e.ctrl.ResetView(); return nil }) })
	e.minusButton = widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), func() {
		e.do(func() error { return e.ctrl.StepExtrusionHeight(-e.cfg.HeightStep) })
	})
	e.plusButton = widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
		e.do(func() error { return e.ctrl.StepExtrusionHeight(e.cfg.HeightStep) })
	})

	e.update()
	return e
}

// Content lays out the scene with the edit bar on the right
func (e *Editor) Content() fyne.CanvasObject {
	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Draw: click points, close near the start\n" +
			"• Click the solid to edit it\n" +
			"• Drag to move the solid or a vertex\n" +
			"• Drag elsewhere to rotate, scroll to zoom\n" +
			"• Esc leaves the mode, Delete removes the solid",
	)
	instructions.Wrapping = fyne.TextWrapWord

	panel := container.NewVBox(
		e.modeLabel,
		widget.NewSeparator(),
		container.NewGridWithColumns(2, e.selectButton, e.drawButton, e.editButton, e.vertexButton),
		widget.NewSeparator(),
		widget.NewLabel("Extrusion height:"),
		container.NewBorder(nil, nil, e.minusButton, e.plusButton, e.heightEntry),
		widget.NewSeparator(),
		e.saveButton,
		e.deleteButton,
		e.resetButton,
		widget.NewSeparator(),
		e.statsLabel,
		e.statusLabel,
		widget.NewSeparator(),
		instructions,
	)

	scroll := container.NewVScroll(panel)
	scroll.SetMinSize(fyne.NewSize(panelWidth, 0))
	return container.NewBorder(nil, nil, nil, scroll, e.view)
}

// typedKey handles window shortcuts
func (e *Editor) typedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyEscape:
		e.do(func() error { e.ctrl.ExitToSelector(); return nil })
	case fyne.KeyDelete:
		e.do(func() error { e.ctrl.DeleteSolid(); return nil })
	}
}

func (e *Editor) submitHeight(text string) {
	e.do(func() error {
		h, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return fmt.Errorf("height %q: %w", text, modeler.ErrInvalidHeight)
		}
		return e.ctrl.SetExtrusionHeight(h)
	})
}

// do runs an edit bar action and refreshes everything it may have changed
func (e *Editor) do(action func() error) {
	err := action()
	e.view.Refresh()
	e.finish(err)
}

// finish reports the outcome of an action and updates the labels
func (e *Editor) finish(err error) {
	e.update()
	if err == nil {
		e.statusLabel.SetText("")
		return
	}
	e.log.Warn("command rejected", "err", err)
	msg := modeler.Message(err)
	e.statusLabel.SetText(msg)
	if e.window != nil {
		dialog.ShowInformation("goextrude", msg, e.window)
	}
}

func (e *Editor) update() {
	snap := e.ctrl.Snapshot()
	e.modeLabel.SetText(fmt.Sprintf("Mode: %s", snap.Mode))
	e.heightEntry.SetText(strconv.FormatFloat(snap.Height, 'g', -1, 64))

	switch {
	case snap.Mode == modeler.Draw:
		e.statsLabel.SetText(fmt.Sprintf("Points: %d", len(snap.SketchPoints)))
	case snap.HasSolid:
		r := analysis.AnalyzeSolid(e.ctrl.Solid())
		e.statsLabel.SetText(fmt.Sprintf("Vertices: %d\nTriangles: %d\nBase Area: %.2f\nVolume: %.2f",
			r.VertexCount, r.TriangleCount, r.BaseArea, r.Volume))
	default:
		e.statsLabel.SetText("No solid")
	}
}

// Options configures Run
type Options struct {
	Config config.Config
	Logger *slog.Logger
	Script string // replayed once before the window opens
}

// Run opens the editor window and blocks until it is closed
func Run(opts Options) error {
	a := app.New()
	w := a.NewWindow("goextrude")

	e := NewEditor(opts.Config, opts.Logger)
	if opts.Script != "" {
		cmds, err := script.Load(opts.Script)
		if err != nil {
			return err
		}
		if err := script.NewRunner(e.ctrl, e.log).Run(context.Background(), cmds); err != nil {
			return fmt.Errorf("failed to replay script: %w", err)
		}
	}
	e.window = w
	e.update()

	w.SetContent(e.Content())
	w.Canvas().SetOnTypedKey(e.typedKey)
	w.Resize(fyne.NewSize(float32(opts.Config.Window.Width), float32(opts.Config.Window.Height)))
	w.ShowAndRun()
	return nil
}
