package boundary

import (
	"sort"

	"github.com/dirkfeuchter/advfront/frontmodel"
)

// Assemble builds one IndependentFrontList per subdomain in input, with one
// FL per closed side-chain, and returns the IFL id assigned to each
// subdomain id (§4.7).
func Assemble(mesh *frontmodel.Mesh, input Input, opts ...Option) (map[int]frontmodel.IFLID, error) {
	cfg := newConfig(opts...)

	nodeIDs := make([]frontmodel.NodeID, len(input.Points))
	for i, p := range input.Points {
		nodeIDs[i] = mesh.CreateNode(p.X, p.Y)
	}

	iflBySubdomain := make(map[int]frontmodel.IFLID, len(input.Subdomains))

	for _, sub := range input.Subdomains {
		if len(sub.Sides) == 0 {
			return nil, ErrEmptySubdomain
		}
		for _, s := range sub.Sides {
			if s.I < 0 || s.I >= len(input.Points) || s.J < 0 || s.J >= len(input.Points) {
				return nil, ErrPointIndexRange
			}
		}

		ifl := mesh.CreateIFL()
		iflBySubdomain[sub.ID] = ifl

		unused := append([]Side(nil), sub.Sides...)
		if cfg.deterministicOrder {
			sort.Slice(unused, func(i, j int) bool {
				if unused[i].I != unused[j].I {
					return unused[i].I < unused[j].I
				}
				return unused[i].J < unused[j].J
			})
		}

		for len(unused) > 0 {
			chain, rest, err := chainOne(unused)
			if err != nil {
				return nil, err
			}
			unused = rest

			fl, err := mesh.CreateFL(ifl, sub.ID)
			if err != nil {
				return nil, err
			}
			nodes := make([]frontmodel.NodeID, len(chain))
			for i, s := range chain {
				nodes[i] = nodeIDs[s.I]
			}
			if _, err := mesh.CreateFC(fl, frontmodel.NoFC, nodes...); err != nil {
				return nil, err
			}
			if err := mesh.DetermineOrientation(fl); err != nil {
				return nil, err
			}
		}
	}

	return iflBySubdomain, nil
}

// chainOne greedily extracts one closed chain from unused, starting at
// unused[0], and returns the remaining sides.
func chainOne(unused []Side) (chain []Side, rest []Side, err error) {
	rest = append([]Side(nil), unused...)

	start := rest[0]
	rest = rest[1:]
	chain = append(chain, start)
	firstOfChain := start.I
	currentEnd := start.J

	for currentEnd != firstOfChain {
		idx := -1
		for i, s := range rest {
			if s.I == currentEnd {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, nil, ErrNoContinuation
		}
		next := rest[idx]
		rest = append(rest[:idx], rest[idx+1:]...)
		chain = append(chain, next)
		currentEnd = next.J
	}

	return chain, rest, nil
}
