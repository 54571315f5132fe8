package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/goextrude/pkg/geometry"
)

// WriteASCII writes the model as ASCII STL
func WriteASCII(w io.Writer, m *Model) error {
	bw := bufio.NewWriter(w)
	name := strings.ReplaceAll(m.Name, "\n", " ")

	fmt.Fprintf(bw, "solid %s\n", name)
	for _, t := range m.Triangles {
		n := t.CalculateNormal()
		fmt.Fprintf(bw, "  facet normal %g %g %g\n", n.X, n.Y, n.Z)
		fmt.Fprintf(bw, "    outer loop\n")
		for _, v := range []geometry.Vector3{t.V1, t.V2, t.V3} {
			fmt.Fprintf(bw, "      vertex %g %g %g\n", v.X, v.Y, v.Z)
		}
		fmt.Fprintf(bw, "    endloop\n")
		fmt.Fprintf(bw, "  endfacet\n")
	}
	fmt.Fprintf(bw, "endsolid %s\n", name)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write ASCII STL: %w", err)
	}
	return nil
}

// WriteBinary writes the model as binary STL
func WriteBinary(w io.Writer, m *Model) error {
	bw := bufio.NewWriter(w)

	var header [headerSize]byte
	copy(header[:], m.Name)
	if _, err := bw.Write(header[:]); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(m.Triangles))); err != nil {
		return fmt.Errorf("failed to write triangle count: %w", err)
	}

	vec := func(v geometry.Vector3) [3]float32 {
		return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
	}
	for i, t := range m.Triangles {
		f := binaryFacet{
			Normal: vec(t.CalculateNormal()),
			V1:     vec(t.V1),
			V2:     vec(t.V2),
			V3:     vec(t.V3),
		}
		if err := binary.Write(bw, binary.LittleEndian, &f); err != nil {
			return fmt.Errorf("failed to write triangle %d: %w", i, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write binary STL: %w", err)
	}
	return nil
}

// WriteFile writes the model to path, binary unless ascii is set
func WriteFile(path string, m *Model, ascii bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	if ascii {
		err = WriteASCII(f, m)
	} else {
		err = WriteBinary(f, m)
	}
	if err != nil {
		return err
	}
	return f.Close()
}
