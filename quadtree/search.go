package quadtree

import (
	"github.com/dirkfeuchter/advfront/frontmodel"
	"github.com/dirkfeuchter/advfront/geom"
)

// SearchParams bundles the parameters of one RangeSearch call (§4.2).
type SearchParams struct {
	// IFL restricts the search to FCs whose owning FL belongs to this IFL.
	IFL frontmodel.IFLID

	// Small is the region in which "inside" candidates are tested against
	// Triangle/Circle. Big is the larger rectangle (expanded by h_global
	// on every side, §4.5 step 4) used to collect intersection candidates.
	Small, Big Box

	// Triangle is the candidate triangle's three vertices, inflated by
	// Epsi via geom.PointInTriangle.
	Triangle [3]geom.Point
	Epsi     float64

	// CircleCenter/CircleR2 describe the apex tip circle (§4.2, §4.5 step 3).
	CircleCenter geom.Point
	CircleR2     float64
}

// RangeSearch descends only into quadrants whose box overlaps params.Big
// (§4.2). Within params.Small, points strictly inside the (epsilon
// inflated) triangle or the tip circle are returned in inside. Points
// outside Small but inside Big are returned in intersectCandidates, along
// with their cyclic predecessor when that predecessor itself lies outside
// Big (so the resulting edge candidate is complete).
func (t *Tree) RangeSearch(params SearchParams) (inside, intersectCandidates []frontmodel.FCID) {
	t.rangeSearch(t.root, t.box, params, &inside, &intersectCandidates)
	return inside, intersectCandidates
}

func (t *Tree) rangeSearch(id nodeID, box Box, params SearchParams, inside, intersect *[]frontmodel.FCID) {
	if !box.Overlaps(params.Big) {
		return
	}
	for q := 0; q < 4; q++ {
		subBox := quadrantBox(box, q)
		if !subBox.Overlaps(params.Big) {
			continue
		}
		c := t.nodes[id].children[q]
		switch c.kind {
		case childBucket:
			for _, fc := range c.bucket {
				t.classify(fc, params, inside, intersect)
			}
		case childInner:
			t.rangeSearch(c.node, subBox, params, inside, intersect)
		}
	}
}

func (t *Tree) classify(fc frontmodel.FCID, params SearchParams, inside, intersect *[]frontmodel.FCID) {
	if t.mesh.FL(t.mesh.FC(fc).FL).IFL != params.IFL {
		return
	}
	p := t.coords(fc)

	if params.Small.Contains(p) {
		if geom.PointInTriangle(p, params.Triangle[0], params.Triangle[1], params.Triangle[2], params.Epsi) ||
			geom.PointInCircle(p, params.CircleCenter, params.CircleR2) {
			*inside = append(*inside, fc)
		}
		return
	}
	if params.Big.Contains(p) {
		*intersect = append(*intersect, fc)
		pred := t.mesh.Pred(fc)
		if !params.Big.Contains(t.coords(pred)) {
			*intersect = append(*intersect, pred)
		}
	}
}
