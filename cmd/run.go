package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goextrude/pkg/analysis"
	"github.com/philipparndt/goextrude/pkg/watcher"
)

var (
	runExport  string
	runASCII   bool
	runPreview string
	runWatch   bool
)

var runCmd = &cobra.Command{
	Use:   "run [script]",
	Short: "Replay a modeling script without a window",
	Long: `Replay a modeling script against a headless scene, then export the
resulting solid and render a preview image. With --watch the script is
replayed every time it is saved.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runExport, "export", "o", "", "Write the solid to an .stl or .scad file")
	runCmd.Flags().BoolVar(&runASCII, "ascii", false, "Write ASCII instead of binary STL")
	runCmd.Flags().StringVarP(&runPreview, "preview", "p", "", "Render the final scene to a PNG file")
	runCmd.Flags().BoolVarP(&runWatch, "watch", "w", false, "Replay whenever the script changes")
}

func runRun(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if err := runOnce(ctx, path); err != nil && !runWatch {
		return err
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	if !runWatch {
		return nil
	}

	fw, err := watcher.NewFileWatcher(path, 200*time.Millisecond, logger)
	if err != nil {
		return err
	}
	defer fw.Close()

	fmt.Printf("Watching %s (Ctrl+C to stop)\n", fw.Path())
	err = fw.Run(ctx, func(string) {
		if err := runOnce(ctx, path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func runOnce(ctx context.Context, path string) error {
	s, err := replay(ctx, path)
	if err != nil {
		return err
	}

	snap := s.ctrl.Snapshot()
	fmt.Printf("Script: %s\n", path)
	fmt.Printf("  Mode: %s\n", snap.Mode)
	fmt.Printf("  Height: %.6f\n", snap.Height)

	solid := s.ctrl.Solid()
	if solid != nil {
		result := analysis.AnalyzeSolid(solid)
		fmt.Printf("  Vertices: %d | Triangles: %d\n", result.VertexCount, result.TriangleCount)
		fmt.Printf("  Base Area: %.6f square units\n", result.BaseArea)
		fmt.Printf("  Volume: %.6f cubic units\n", result.Volume)
	} else {
		fmt.Println("  No solid")
	}

	if runExport != "" {
		if err := export(runExport, solid, runASCII); err != nil {
			return err
		}
		fmt.Printf("Exported %s\n", runExport)
	}
	if runPreview != "" {
		caption := fmt.Sprintf("%s  height %.2f", snap.Mode, snap.Height)
		if err := s.writePreview(runPreview, path, caption); err != nil {
			return err
		}
		fmt.Printf("Preview %s\n", runPreview)
	}
	return nil
}
