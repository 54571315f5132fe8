package app

import (
	"context"
	"errors"
	"time"

	"github.com/philipparndt/goextrude/pkg/script"
	"github.com/philipparndt/goextrude/pkg/watcher"
)

const scriptDebounce = 300 * time.Millisecond

// setupScript replays path and starts watching it for changes
func (app *App) setupScript(path string) error {
	app.Script.path = path
	app.Script.reload = make(chan string, 1)
	if err := app.replayScript(); err != nil {
		return err
	}

	fw, err := watcher.NewFileWatcher(path, scriptDebounce, app.log)
	if err != nil {
		app.log.Warn("auto-reload disabled", "err", err)
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	app.Script.watcher = fw
	app.Script.cancel = cancel

	go func() {
		err := fw.Run(ctx, func(p string) {
			select {
			case app.Script.reload <- p:
			default: // a reload is already pending
			}
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			app.log.Warn("script watcher stopped", "err", err)
		}
	}()
	return nil
}

// replayScript clears the scene and runs the script from the start
func (app *App) replayScript() error {
	cmds, err := script.Load(app.Script.path)
	if err != nil {
		return err
	}
	app.ctrl.DeleteSolid()
	app.ctrl.ResetView()
	return script.NewRunner(app.ctrl, app.log).Run(context.Background(), cmds)
}

// pollScriptReload replays the script on the main thread after a change
func (app *App) pollScriptReload() {
	select {
	case p := <-app.Script.reload:
		app.log.Info("script changed, replaying", "path", p)
		if err := app.replayScript(); err != nil {
			app.report(err)
		}
	default:
	}
}

func (app *App) closeScript() {
	if app.Script.cancel != nil {
		app.Script.cancel()
	}
	if app.Script.watcher != nil {
		app.Script.watcher.Close()
	}
}
