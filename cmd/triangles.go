package cmd

import (
	"fmt"
	"math"
	"sort"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goextrude/pkg/analysis"
	"github.com/philipparndt/goextrude/pkg/kernel"
)

var (
	triCount    int
	triLargest  bool
	triSmallest bool
)

type triangleInfo struct {
	Index     int
	Face      kernel.Face
	Area      float64
	Perimeter float64
	Vertices  string
}

var trianglesCmd = &cobra.Command{
	Use:   "triangles [script]",
	Short: "List the triangles of the solid a script builds",
	Long:  "Replay a script and display the triangles of the resulting solid with their face, area, perimeter and vertex positions.",
	Args:  cobra.ExactArgs(1),
	RunE:  runTriangles,
}

func init() {
	rootCmd.AddCommand(trianglesCmd)

	trianglesCmd.Flags().IntVarP(&triCount, "count", "n", 10, "Number of triangles to display")
	trianglesCmd.Flags().BoolVarP(&triLargest, "largest", "l", false, "Show largest triangles by area")
	trianglesCmd.Flags().BoolVarP(&triSmallest, "smallest", "s", false, "Show smallest triangles by area")
}

func runTriangles(cmd *cobra.Command, args []string) error {
	s, err := replay(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	solid := s.ctrl.Solid()
	if solid.IsEmpty() {
		fmt.Println("No solid")
		return nil
	}

	triangles := make([]triangleInfo, 0, solid.TriangleCount())
	totalArea := 0.0
	minArea := math.MaxFloat64
	maxArea := 0.0
	counts := map[kernel.Face]int{}

	for i, tri := range solid.Triangles() {
		area := tri.Area()
		face := solid.Classify(i)
		counts[face]++

		triangles = append(triangles, triangleInfo{
			Index:     i,
			Face:      face,
			Area:      area,
			Perimeter: tri.Perimeter(),
			Vertices: fmt.Sprintf("%s, %s, %s",
				analysis.FormatVector(tri.V1),
				analysis.FormatVector(tri.V2),
				analysis.FormatVector(tri.V3)),
		})

		totalArea += area
		minArea = math.Min(minArea, area)
		maxArea = math.Max(maxArea, area)
	}

	title := fmt.Sprintf("First %d Triangles", triCount)
	if triLargest {
		sort.SliceStable(triangles, func(i, j int) bool { return triangles[i].Area > triangles[j].Area })
		title = fmt.Sprintf("Top %d Largest Triangles", triCount)
	} else if triSmallest {
		sort.SliceStable(triangles, func(i, j int) bool { return triangles[i].Area < triangles[j].Area })
		title = fmt.Sprintf("Top %d Smallest Triangles", triCount)
	}

	fmt.Println(title)
	fmt.Println("====================")
	fmt.Printf("Total triangles: %d (base %d, cap %d, side %d)\n",
		len(triangles), counts[kernel.FaceBase], counts[kernel.FaceCap], counts[kernel.FaceSide])
	fmt.Printf("Total surface area: %.6f square units\n", totalArea)
	fmt.Printf("Min triangle area: %.6f square units\n", minArea)
	fmt.Printf("Max triangle area: %.6f square units\n", maxArea)
	fmt.Printf("Avg triangle area: %.6f square units\n\n", totalArea/float64(len(triangles)))

	for i := 0; i < triCount && i < len(triangles); i++ {
		tri := triangles[i]
		fmt.Printf("Triangle #%d (%s):\n", tri.Index, tri.Face)
		fmt.Printf("  Area: %.6f square units\n", tri.Area)
		fmt.Printf("  Perimeter: %.6f units\n", tri.Perimeter)
		fmt.Printf("  Vertices: %s\n\n", tri.Vertices)
	}
	return nil
}
