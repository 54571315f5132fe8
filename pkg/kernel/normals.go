package kernel

import "github.com/philipparndt/goextrude/pkg/geometry"

// ComputeNormals returns area-weighted vertex normals for an indexed
// triangle list. Vertices not referenced by any triangle get a zero normal.
func ComputeNormals(positions []geometry.Vector3, indices []uint32) []geometry.Vector3 {
	normals := make([]geometry.Vector3, len(positions))
	for t := 0; t+2 < len(indices); t += 3 {
		a, b, c := indices[t], indices[t+1], indices[t+2]
		// Unnormalized cross product weights by triangle area
		n := positions[b].Sub(positions[a]).Cross(positions[c].Sub(positions[a]))
		normals[a] = normals[a].Add(n)
		normals[b] = normals[b].Add(n)
		normals[c] = normals[c].Add(n)
	}
	for i, n := range normals {
		normals[i] = n.Normalize()
	}
	return normals
}
