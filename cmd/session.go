package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/goextrude/pkg/kernel"
	"github.com/philipparndt/goextrude/pkg/modeler"
	"github.com/philipparndt/goextrude/pkg/openscad"
	"github.com/philipparndt/goextrude/pkg/script"
	"github.com/philipparndt/goextrude/pkg/stl"
	"github.com/philipparndt/goextrude/pkg/viewer"
)

// session is a headless controller and the scene it draws into
type session struct {
	scene *viewer.Scene
	ctrl  *modeler.Controller
}

func newSession() *session {
	scene := viewer.NewScene(cfg.Window.Width, cfg.Window.Height)
	return &session{
		scene: scene,
		ctrl:  modeler.New(scene, modeler.WithConfig(cfg), modeler.WithLogger(logger)),
	}
}

// replay runs a script file against a fresh session
func replay(ctx context.Context, path string) (*session, error) {
	cmds, err := script.Load(path)
	if err != nil {
		return nil, err
	}
	s := newSession()
	if err := script.NewRunner(s.ctrl, logger).Run(ctx, cmds); err != nil {
		return s, err
	}
	return s, nil
}

// export writes a solid as STL or OpenSCAD, chosen by the file extension
func export(path string, solid *kernel.Solid, ascii bool) error {
	if solid.IsEmpty() {
		return fmt.Errorf("nothing to export: %w", modeler.ErrNoSolid)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".stl":
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		return stl.WriteFile(path, stl.FromSolid(name, solid), ascii)
	case ".scad":
		return openscad.WriteFile(path, solid.BaseRing(), solid.Height)
	default:
		return fmt.Errorf("unsupported export format %q (use .stl or .scad)", filepath.Ext(path))
	}
}

// writePreview renders the session's scene to a PNG file
func (s *session) writePreview(path string, caption ...string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := s.scene.WritePNG(f, caption...); err != nil {
		return err
	}
	return f.Close()
}
