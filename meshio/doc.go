// Package meshio exports a finished frontmodel.Mesh into the teacher pack's
// graph and matrix representations (§4.8): a core.Graph skeleton built from
// triangle edges, a dense adjacency matrix suitable for the matrix package's
// linear-algebra routines, and a connected-component count over that
// node skeleton graph (mirroring gridgraph's connectivity check,
// generalized from a regular grid to an unstructured triangulation).
//
// None of this feeds back into advancing: it is read-only tooling for
// callers that want to run graph algorithms (shortest path, MST, BFS/DFS)
// over the generated mesh, or hand it to another package expecting the
// pack's core.Graph/matrix.Dense shapes.
package meshio
