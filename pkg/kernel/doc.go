// Package kernel turns a sketch polygon into a solid.
//
// Triangulate splits a simple polygon into triangles by ear clipping.
// Extrude lifts the polygon into a closed triangle mesh whose vertex buffer
// is laid out as two rings of equal size: indices [0, N) are the base ring
// at Z = 0 and indices [N, 2N) are the cap ring at Z = height. Vertex i of
// the base ring and vertex i+N of the cap ring always share X and Y; other
// packages rely on that index arithmetic instead of per-vertex tags.
//
// Every function is a pure transform of its input. A Solid is never patched
// incrementally; any change of topology or height rebuilds it.
package kernel
