package meshio

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dirkfeuchter/advfront/core"
	"github.com/dirkfeuchter/advfront/frontmodel"
)

// ExportGraph builds an undirected, weighted core.Graph whose vertices are
// mesh node ids (stringified) and whose edges are the triangle edges of
// every emitted element, weighted by Euclidean length in thousandths
// (length*1000 rounded to the nearest integer).
// Shared edges between adjacent triangles are only added once.
func ExportGraph(mesh *frontmodel.Mesh) (*core.Graph, error) {
	g := core.NewGraph(core.WithWeighted())

	for _, tri := range mesh.Triangles() {
		for side := 0; side < 3; side++ {
			a := tri.Nodes[side]
			b := tri.Nodes[(side+1)%3]
			fromID := strconv.Itoa(int(a))
			toID := strconv.Itoa(int(b))
			if g.HasEdge(fromID, toID) {
				continue
			}
			na, nb := mesh.Node(a), mesh.Node(b)
			dx, dy := na.X-nb.X, na.Y-nb.Y
			weight := int64(math.Round(math.Sqrt(dx*dx + dy*dy) * 1000))
			if _, err := g.AddEdge(fromID, toID, weight); err != nil {
				return nil, fmt.Errorf("meshio: export edge %s-%s: %w", fromID, toID, err)
			}
		}
	}

	for i := 0; i < mesh.NumNodes(); i++ {
		if err := g.AddVertex(strconv.Itoa(i)); err != nil {
			return nil, fmt.Errorf("meshio: export vertex %d: %w", i, err)
		}
	}

	return g, nil
}
