package meshio

import (
	"fmt"

	"github.com/dirkfeuchter/advfront/core"
	"github.com/dirkfeuchter/advfront/matrix"
	"github.com/dirkfeuchter/advfront/tsp"
)

// Tour orders every vertex of g into a closed approximate shortest tour
// (metric-closed so disconnected pairs still get a finite distance),
// useful as a boundary-visiting toolpath over the mesh's node set for a
// downstream fabrication step.
func Tour(g *core.Graph) ([]string, float64, error) {
	opts := matrix.NewMatrixOptions(
		matrix.WithUndirected(),
		matrix.WithWeighted(),
		matrix.WithAllowMulti(),
	)
	am, err := matrix.NewAdjacencyMatrix(g, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("meshio: tour: build adjacency: %w", err)
	}

	byIndex := make([]string, len(am.VertexIndex))
	for id, idx := range am.VertexIndex {
		byIndex[idx] = id
	}

	tspOpts := tsp.DefaultOptions()
	tspOpts.RunMetricClosure = true
	result, err := tsp.SolveWithGraph(g, tspOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("meshio: tour: solve: %w", err)
	}

	ids := make([]string, len(result.Tour))
	for i, idx := range result.Tour {
		if idx < 0 || idx >= len(byIndex) {
			return nil, 0, fmt.Errorf("meshio: tour: index %d out of range", idx)
		}
		ids[i] = byIndex[idx]
	}

	return ids, result.Cost, nil
}
