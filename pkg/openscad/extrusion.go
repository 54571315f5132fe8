// Package openscad exports an extruded polygon as an OpenSCAD script.
package openscad

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/goextrude/pkg/geometry"
	"github.com/philipparndt/goextrude/pkg/kernel"
)

// WriteExtrusion writes a linear_extrude of polygon that matches
// kernel.Extrude(polygon, height)
func WriteExtrusion(w io.Writer, polygon geometry.Polygon, height float64) error {
	if !(height > 0) {
		return fmt.Errorf("%w: %v", kernel.ErrInvalidHeight, height)
	}
	polygon = polygon.Dedupe(kernel.DedupeTolerance)
	if polygon.Len() < 3 {
		return fmt.Errorf("%w: %d vertices", kernel.ErrDegeneratePolygon, polygon.Len())
	}

	points := make([]string, polygon.Len())
	for i, p := range polygon.Vertices {
		points[i] = fmt.Sprintf("[%s, %s]", num(p.X), num(p.Y))
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "// %d vertices, area %s\n", polygon.Len(), num(polygon.Area()))
	fmt.Fprintf(bw, "linear_extrude(height = %s)\n", num(height))
	fmt.Fprintf(bw, "  polygon(points = [\n    %s\n  ]);\n", strings.Join(points, ",\n    "))
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write OpenSCAD script: %w", err)
	}
	return nil
}

// WriteFile writes the extrusion script to path
func WriteFile(path string, polygon geometry.Polygon, height float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteExtrusion(f, polygon, height); err != nil {
		return err
	}
	return f.Close()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
