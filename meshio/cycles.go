package meshio

import (
	"fmt"

	"github.com/dirkfeuchter/advfront/core"
	"github.com/dirkfeuchter/advfront/dfs"
)

// HasInteriorLoop reports whether g contains any cycle, i.e. whether the
// mesh has at least one fully enclosed triangle fan. A single triangle's
// skeleton graph is already a 3-cycle, so any mesh with one or more
// elements must answer true; false signals an exported graph with no
// triangles at all.
func HasInteriorLoop(g *core.Graph) (bool, error) {
	has, _, err := dfs.DetectCycles(g)
	if err != nil {
		return false, fmt.Errorf("meshio: detect cycles: %w", err)
	}
	return has, nil
}
