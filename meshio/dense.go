package meshio

import (
	"github.com/dirkfeuchter/advfront/core"
	"github.com/dirkfeuchter/advfront/matrix"
)

// AdjacencyMatrix builds a dense weighted adjacency matrix from g, via the
// matrix package's graph adapter (§4.8's matrix.Dense export target).
func AdjacencyMatrix(g *core.Graph) (*matrix.AdjacencyMatrix, error) {
	opts := matrix.NewMatrixOptions(
		matrix.WithUndirected(),
		matrix.WithWeighted(),
		matrix.WithDisallowMulti(),
	)
	return matrix.NewAdjacencyMatrix(g, opts)
}
