package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goextrude/pkg/analysis"
	"github.com/philipparndt/goextrude/pkg/geometry"
	"github.com/philipparndt/goextrude/pkg/kernel"
)

var (
	boxExport  string
	boxASCII   bool
	boxLongest int
)

var boxCmd = &cobra.Command{
	Use:   "box [width] [depth] [height]",
	Short: "Extrude a rectangle and print its measurements",
	Long:  "Extrude a width x depth rectangle centered on the origin to the given height, print its measurements and optionally export it.",
	Args:  cobra.ExactArgs(3),
	RunE:  runBox,
}

func init() {
	rootCmd.AddCommand(boxCmd)

	boxCmd.Flags().StringVarP(&boxExport, "export", "o", "", "Write the solid to an .stl or .scad file")
	boxCmd.Flags().BoolVar(&boxASCII, "ascii", false, "Write ASCII instead of binary STL")
	boxCmd.Flags().IntVarP(&boxLongest, "longest", "l", 0, "List the N longest edges")
}

func runBox(cmd *cobra.Command, args []string) error {
	var dims [3]float64
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid dimension %q: %w", arg, err)
		}
		dims[i] = v
	}
	w, d, h := dims[0]/2, dims[1]/2, dims[2]

	solid, err := kernel.Extrude(geometry.NewPolygon(
		geometry.NewPoint2D(-w, -d),
		geometry.NewPoint2D(w, -d),
		geometry.NewPoint2D(w, d),
		geometry.NewPoint2D(-w, d),
	), h)
	if err != nil {
		return err
	}

	result := analysis.AnalyzeSolid(solid)
	fmt.Println("Box")
	fmt.Println("===")
	fmt.Printf("  Vertices: %d | Triangles: %d | Edges: %d\n", result.VertexCount, result.TriangleCount, result.EdgeCount)
	fmt.Printf("  Size: %s\n", analysis.FormatVector(result.Dimensions))
	fmt.Printf("  Base Area: %s\n", analysis.FormatMeasurement(result.BaseArea, "square units"))
	fmt.Printf("  Side Area: %s\n", analysis.FormatMeasurement(result.SideArea, "square units"))
	fmt.Printf("  Surface Area: %s\n", analysis.FormatMeasurement(result.SurfaceArea, "square units"))
	fmt.Printf("  Volume: %s\n", analysis.FormatMeasurement(result.Volume, "cubic units"))
	fmt.Printf("  Perimeter: %s\n", analysis.FormatMeasurement(result.Perimeter, "units"))
	fmt.Printf("  Closed: %t\n", result.IsClosed(1e-9))

	if boxLongest > 0 {
		fmt.Printf("\nLongest Edges:\n")
		for i, e := range analysis.FindLongestEdges(result, boxLongest) {
			fmt.Printf("  %d. %s -> %s  %.6f\n", i+1, analysis.FormatVector(e.Start), analysis.FormatVector(e.End), e.Length)
		}
	}

	if boxExport != "" {
		if err := export(boxExport, solid, boxASCII); err != nil {
			return err
		}
		fmt.Printf("\nExported %s\n", boxExport)
	}
	return nil
}
