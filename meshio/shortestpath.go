package meshio

import (
	"fmt"
	"math"

	"github.com/dirkfeuchter/advfront/core"
	"github.com/dirkfeuchter/advfront/dijkstra"
)

// ShortestPath returns the mesh-edge distance and node-id path from fromID
// to toID along the mesh skeleton graph, weighted by the same integer edge
// lengths ExportGraph assigns. Useful for geodesic queries that a flat
// Euclidean distance can't answer once the mesh wraps a hole or a
// re-entrant boundary.
func ShortestPath(g *core.Graph, fromID, toID string) (int64, []string, error) {
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(fromID), dijkstra.WithReturnPath())
	if err != nil {
		return 0, nil, fmt.Errorf("meshio: shortest path: %w", err)
	}

	d, ok := dist[toID]
	if !ok {
		return 0, nil, fmt.Errorf("meshio: shortest path: unknown vertex %q", toID)
	}
	if d == math.MaxInt64 {
		return 0, nil, fmt.Errorf("meshio: shortest path: %q is unreachable from %q", toID, fromID)
	}

	path := []string{toID}
	for cur := toID; cur != fromID; {
		p, ok := prev[cur]
		if !ok || p == "" {
			return 0, nil, fmt.Errorf("meshio: shortest path: broken predecessor chain at %q", cur)
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return d, path, nil
}
