package meshio

import (
	"fmt"

	"github.com/dirkfeuchter/advfront/core"
	"github.com/dirkfeuchter/advfront/flow"
)

// MaxFlow computes the maximum flow between two mesh nodes over the
// exported skeleton graph, treating each mesh edge's length weight as its
// capacity. A low value relative to the boundary length between fromID
// and toID flags a narrow corridor in the mesh — useful as a structural
// sanity check on dumbbell-shaped or heavily necked-down domains.
func MaxFlow(g *core.Graph, fromID, toID string) (float64, error) {
	value, _, err := flow.Dinic(g, fromID, toID, flow.FlowOptions{})
	if err != nil {
		return 0, fmt.Errorf("meshio: max flow %s->%s: %w", fromID, toID, err)
	}
	return value, nil
}
