package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goextrude/pkg/analysis"
	"github.com/philipparndt/goextrude/pkg/stl"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about an STL file",
	Long:  "Show triangle count, dimensions, surface area and enclosed volume of an STL file, for example one written by run --export.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]

	model, err := stl.Parse(filename)
	if err != nil {
		return fmt.Errorf("parsing STL file: %w", err)
	}
	bbox := model.BoundingBox()
	size := bbox.Size()

	fmt.Println("STL File Information")
	fmt.Println("====================")
	if model.Name != "" {
		fmt.Printf("Name: %s\n", model.Name)
	}
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Model Statistics:")
	fmt.Printf("  Triangles: %d\n", model.TriangleCount())
	fmt.Printf("  Surface Area: %.6f square units\n", model.SurfaceArea())
	fmt.Printf("  Volume: %.6f cubic units\n\n", model.Volume())

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(bbox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(bbox.Max))
	fmt.Printf("  Center: %s\n\n", analysis.FormatVector(bbox.Center()))

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.6f units\n", size.X)
	fmt.Printf("  Depth (Y): %.6f units\n", size.Y)
	fmt.Printf("  Height (Z): %.6f units\n", size.Z)
	fmt.Printf("  Diagonal: %.6f units\n", bbox.Diagonal())
	return nil
}
