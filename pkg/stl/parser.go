package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/goextrude/pkg/geometry"
)

const (
	headerSize = 80
	facetSize  = 50 // normal + 3 vertices as float32, attribute count
)

// ErrMalformed means the input is neither valid ASCII nor binary STL
var ErrMalformed = errors.New("malformed STL")

// Parse reads an STL file in either format
func Parse(filename string) (*Model, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return Decode(data)
}

// Decode parses STL data. Binary files whose header happens to start with
// "solid" are recognized by their exact size.
func Decode(data []byte) (*Model, error) {
	if isBinary(data) {
		return parseBinary(bytes.NewReader(data))
	}
	if bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), []byte("solid")) {
		return parseASCII(bytes.NewReader(data))
	}
	return nil, fmt.Errorf("%w: unknown format", ErrMalformed)
}

func isBinary(data []byte) bool {
	if len(data) < headerSize+4 {
		return false
	}
	count := binary.LittleEndian.Uint32(data[headerSize:])
	return len(data) == headerSize+4+int(count)*facetSize
}

func parseVector(fields []string) (geometry.Vector3, error) {
	var xyz [3]float64
	for i := range xyz {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return geometry.Vector3{}, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		xyz[i] = v
	}
	return geometry.NewVector3(xyz[0], xyz[1], xyz[2]), nil
}

// parseASCII reads facets; stored normals are ignored in favor of winding
func parseASCII(reader io.Reader) (*Model, error) {
	scanner := bufio.NewScanner(reader)
	model := NewModel("")

	var vertices []geometry.Vector3
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				model.Name = strings.Join(fields[1:], " ")
			}

		case "vertex":
			if len(fields) < 4 {
				return nil, fmt.Errorf("%w: line %d: vertex needs 3 coordinates", ErrMalformed, line)
			}
			v, err := parseVector(fields[1:4])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			vertices = append(vertices, v)

		case "endfacet":
			if len(vertices) != 3 {
				return nil, fmt.Errorf("%w: line %d: facet with %d vertices", ErrMalformed, line, len(vertices))
			}
			model.AddTriangle(geometry.NewTriangle(vertices[0], vertices[1], vertices[2]))
			vertices = vertices[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}
	return model, nil
}

// binaryFacet is the on-disk layout of one triangle
type binaryFacet struct {
	Normal     [3]float32
	V1, V2, V3 [3]float32
	Attribute  uint16
}

func parseBinary(reader io.Reader) (*Model, error) {
	model := NewModel("")

	header := make([]byte, headerSize)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	model.Name = strings.TrimSpace(string(bytes.TrimRight(header, "\x00")))

	var triangleCount uint32
	if err := binary.Read(reader, binary.LittleEndian, &triangleCount); err != nil {
		return nil, fmt.Errorf("failed to read triangle count: %w", err)
	}

	vec := func(v [3]float32) geometry.Vector3 {
		return geometry.NewVector3(float64(v[0]), float64(v[1]), float64(v[2]))
	}
	for i := uint32(0); i < triangleCount; i++ {
		var f binaryFacet
		if err := binary.Read(reader, binary.LittleEndian, &f); err != nil {
			return nil, fmt.Errorf("failed to read triangle %d: %w", i, err)
		}
		model.AddTriangle(geometry.NewTriangle(vec(f.V1), vec(f.V2), vec(f.V3)))
	}
	return model, nil
}
