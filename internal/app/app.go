// Package app is the interactive raylib shell around the modeler.
package app

import (
	"fmt"
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/goextrude/pkg/config"
	"github.com/philipparndt/goextrude/pkg/modeler"
)

// App is the window, its scene and the controller driving it
type App struct {
	Camera      CameraState
	Scene       SceneState
	View        ViewSettings
	Interaction InteractionState
	UI          UIState
	Script      ScriptState

	ctrl *modeler.Controller
	cfg  config.Config
	log  *slog.Logger
}

// Options configures Run
type Options struct {
	Config config.Config
	Logger *slog.Logger
	Script string // replayed at startup and on every save when set
}

// Run opens the window and blocks until it is closed
func Run(opts Options) error {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	app := &App{
		Scene:       SceneState{meshes: make(map[modeler.MeshID]*sceneMesh)},
		View:        ViewSettings{showWireframe: true, showFilled: true, showGrid: true},
		Interaction: InteractionState{hoverVertex: -1},
		cfg:         opts.Config,
		log:         log,
	}
	app.ctrl = modeler.New(app,
		modeler.WithConfig(opts.Config),
		modeler.WithLogger(log),
		modeler.OnModeChange(app.onModeChange),
	)

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(opts.Config.Window.Width), int32(opts.Config.Window.Height), "goextrude")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(0) // Escape leaves the current mode instead

	app.UI.font = rl.GetFontDefault()
	app.Scene.material = rl.LoadMaterialDefault()
	app.initCamera()

	if opts.Script != "" {
		if err := app.setupScript(opts.Script); err != nil {
			return fmt.Errorf("failed to load script: %w", err)
		}
		defer app.closeScript()
	}

	for !rl.WindowShouldClose() {
		ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if ctrlPressed && rl.IsKeyPressed(rl.KeyC) {
			break
		}

		app.pollScriptReload()
		app.handleInput()
		app.updateCamera()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		rl.BeginMode3D(app.Camera.camera)
		if app.View.showGrid {
			rl.DrawGrid(40, 1)
		}
		app.drawScene()
		rl.EndMode3D()

		app.drawUI()
		rl.EndDrawing()
	}

	for id := range app.Scene.meshes {
		app.DisposeMesh(id)
	}
	return nil
}

func (app *App) onModeChange(from, to modeler.Mode) {
	app.Interaction.gesture = gestureNone
	app.Interaction.hoverVertex = -1
	app.UI.height.active = false
}

// report shows a controller error in the status box
func (app *App) report(err error) {
	if err == nil {
		return
	}
	app.log.Warn("command rejected", "err", err)
	app.UI.message = modeler.Message(err)
	app.UI.messageTime = time.Now()
}
