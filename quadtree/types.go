package quadtree

import (
	"github.com/dirkfeuchter/advfront/frontmodel"
	"github.com/dirkfeuchter/advfront/geom"
)

// DefaultMaxDepth bounds recursion by the point at which double-precision
// coordinates can no longer be meaningfully distinguished between
// quadrants; a numerical precision limit rather than a runtime hope (§4.2).
const DefaultMaxDepth = 40

type nodeID int

type childKind uint8

const (
	childEmpty childKind = iota
	childBucket
	childInner
)

// child is the explicit sum type replacing the original's one-byte,
// four-quadrant flag plus void* children (§9 design note).
type child struct {
	kind   childKind
	node   nodeID
	bucket []frontmodel.FCID
}

type node struct {
	children [4]child
}

// Tree is a quadtree index over the positions of a Mesh's live front
// components, rooted at a square Box covering the whole domain.
type Tree struct {
	mesh     *frontmodel.Mesh
	nodes    []node
	root     nodeID
	box      Box
	maxDepth int
}

// New returns a Tree over mesh, rooted at box.
func New(mesh *frontmodel.Mesh, box Box) *Tree {
	t := &Tree{mesh: mesh, box: box, maxDepth: DefaultMaxDepth}
	t.root = t.newNode()
	return t
}

func (t *Tree) newNode() nodeID {
	id := nodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{})
	return id
}

func (t *Tree) coords(fc frontmodel.FCID) geom.Point {
	x, y := t.mesh.Coords(fc)
	return geom.Point{X: x, Y: y}
}

func (t *Tree) coincident(a, b frontmodel.FCID) bool {
	return geom.DistSq(t.coords(a), t.coords(b)) <= geom.CoincidenceEpsilon
}
