package script

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/philipparndt/goextrude/pkg/geometry"
	"github.com/philipparndt/goextrude/pkg/modeler"
)

// ErrExpectation means an expect-* command did not hold
var ErrExpectation = errors.New("expectation failed")

var errorKinds = map[string]error{
	"ModeBlocked":       modeler.ErrModeBlocked,
	"NoSolid":           modeler.ErrNoSolid,
	"DegeneratePolygon": modeler.ErrDegeneratePolygon,
	"InvalidHeight":     modeler.ErrInvalidHeight,
	"AsymmetricMesh":    modeler.ErrAsymmetricMesh,
	"VertexOutOfRange":  modeler.ErrVertexOutOfRange,
}

// Runner executes commands against a controller
type Runner struct {
	c   *modeler.Controller
	log *slog.Logger
}

// NewRunner creates a runner for c
func NewRunner(c *modeler.Controller, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{c: c, log: log}
}

// Run executes cmds in order and stops at the first failing command or
// when ctx is done
func (r *Runner) Run(ctx context.Context, cmds []Command) error {
	for _, cmd := range cmds {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.exec(cmd); err != nil {
			return fmt.Errorf("line %d: %s: %w", cmd.Line, cmd, err)
		}
	}
	return nil
}

func (r *Runner) exec(cmd Command) error {
	r.log.Debug("script command", "line", cmd.Line, "cmd", cmd.String())

	args, err := r.args(cmd)
	if err != nil {
		return err
	}

	c := r.c
	switch cmd.Name {
	case "draw":
		return c.EnterDraw()
	case "click":
		return c.AddSketchPoint(geometry.NewPoint2D(args[0], args[1]))
	case "pick":
		return c.HandlePick(args[0], args[1])
	case "hover":
		c.Hover(args[0], args[1])
		return nil
	case "height":
		return c.SetExtrusionHeight(args[0])
	case "step":
		return c.StepExtrusionHeight(args[0])
	case "edit":
		return c.EnterEdit()
	case "move":
		if err := c.BeginSolidDrag(); err != nil {
			return err
		}
		defer c.EndSolidDrag()
		return c.DragSolid(geometry.NewPoint2D(args[0], args[1]))
	case "exit":
		c.ExitToSelector()
		return nil
	case "vertex-edit":
		return c.EnterVertexEdit()
	case "drag":
		i := args[0]
		if i != math.Trunc(i) {
			return fmt.Errorf("%w: vertex index %v is not an integer", ErrSyntax, i)
		}
		if err := c.BeginVertexDrag(int(i)); err != nil {
			return err
		}
		defer c.EndVertexDrag()
		return c.DragVertex(geometry.NewPoint2D(args[1], args[2]))
	case "save":
		return c.SaveVertexEdits()
	case "delete":
		c.DeleteSolid()
		return nil
	case "reset-view":
		c.ResetView()
		return nil
	case "expect-mode":
		want, ok := modeler.ParseMode(cmd.Args[0])
		if !ok {
			return fmt.Errorf("%w: unknown mode %q", ErrSyntax, cmd.Args[0])
		}
		if got := c.Mode(); got != want {
			return fmt.Errorf("%w: mode is %s, want %s", ErrExpectation, got, want)
		}
		return nil
	case "expect-error":
		return r.expectError(cmd)
	default:
		return fmt.Errorf("%w: unknown command %q", ErrSyntax, cmd.Name)
	}
}

func (r *Runner) args(cmd Command) ([]float64, error) {
	if !numeric[cmd.Name] {
		return nil, nil
	}
	return cmd.floats()
}

func (r *Runner) expectError(cmd Command) error {
	kind := cmd.Args[0]
	want := errorKinds[kind]
	inner := Command{Line: cmd.Line, Name: cmd.Args[1], Args: cmd.Args[2:]}

	err := r.exec(inner)
	switch {
	case err == nil:
		return fmt.Errorf("%w: %s succeeded, want %s", ErrExpectation, inner, kind)
	case !errors.Is(err, want):
		return fmt.Errorf("%w: %s failed with %q, want %s", ErrExpectation, inner, err, kind)
	}
	r.log.Debug("expected error", "kind", kind, "message", modeler.Message(err))
	return nil
}
