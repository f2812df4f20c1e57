package meshio

import (
	"github.com/dirkfeuchter/advfront/bfs"
	"github.com/dirkfeuchter/advfront/core"
)

// CountIslands reports the number of connected components in g, mirroring
// gridgraph's components check generalized from a regular grid's 4/8
// neighbor offsets to an arbitrary mesh-skeleton graph: every vertex not
// yet reached by a prior BFS starts a fresh component.
func CountIslands(g *core.Graph) (int, error) {
	seen := make(map[string]bool)
	islands := 0

	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		islands++

		result, err := bfs.BFS(g, v)
		if err != nil {
			return 0, err
		}
		seen[v] = true
		for _, id := range result.Order {
			seen[id] = true
		}
	}

	return islands, nil
}
