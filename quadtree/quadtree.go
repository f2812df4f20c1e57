package quadtree

import "github.com/dirkfeuchter/advfront/frontmodel"

// Insert adds fc to the tree at its current coordinates (§4.2). Duplicate
// coordinates (within geom.CoincidenceEpsilon) are kept together in a
// bucket; a non-duplicate colliding with an occupied leaf refines that leaf
// one level deeper and redistributes both points.
func (t *Tree) Insert(fc frontmodel.FCID) {
	t.insert(t.root, t.box, fc, 0)
}

func (t *Tree) insert(id nodeID, box Box, fc frontmodel.FCID, depth int) {
	q, subBox := quadrantOf(box, t.coords(fc))

	switch t.nodes[id].children[q].kind {
	case childEmpty:
		t.nodes[id].children[q] = child{kind: childBucket, bucket: []frontmodel.FCID{fc}}

	case childBucket:
		existing := t.nodes[id].children[q].bucket[0]
		if depth+1 >= t.maxDepth || t.coincident(existing, fc) {
			b := t.nodes[id].children[q].bucket
			t.nodes[id].children[q].bucket = append(b, fc)
			return
		}
		// Refine: this leaf holds a non-duplicate point, so push one level
		// deeper and redistribute both the existing bucket and the new
		// point into sub-quadrants.
		oldBucket := t.nodes[id].children[q].bucket
		newID := t.newNode()
		t.nodes[id].children[q] = child{kind: childInner, node: newID}
		for _, ofc := range oldBucket {
			t.insert(newID, subBox, ofc, depth+1)
		}
		t.insert(newID, subBox, fc, depth+1)

	case childInner:
		childNode := t.nodes[id].children[q].node
		t.insert(childNode, subBox, fc, depth+1)
	}
}

// Delete removes fc from the tree. It reports whether fc was found. A
// bucket that empties collapses its owning non-root internal node to its
// single remaining occupied quadrant when that quadrant is a bucket, so
// repeated insert/delete cycles do not inflate depth without bound (§4.2).
func (t *Tree) Delete(fc frontmodel.FCID) bool {
	return t.delete(t.root, t.box, fc, 0)
}

func (t *Tree) delete(id nodeID, box Box, fc frontmodel.FCID, depth int) bool {
	q, subBox := quadrantOf(box, t.coords(fc))

	switch t.nodes[id].children[q].kind {
	case childEmpty:
		return false

	case childBucket:
		bucket := t.nodes[id].children[q].bucket
		idx := -1
		for i, cand := range bucket {
			if cand == fc {
				idx = i
				break
			}
		}
		if idx < 0 {
			return false
		}
		bucket = append(bucket[:idx], bucket[idx+1:]...)
		if len(bucket) == 0 {
			t.nodes[id].children[q] = child{kind: childEmpty}
		} else {
			t.nodes[id].children[q].bucket = bucket
		}
		return true

	case childInner:
		childID := t.nodes[id].children[q].node
		if !t.delete(childID, subBox, fc, depth+1) {
			return false
		}
		t.maybeCollapse(id, q, childID)
		return true
	}
	return false
}

// maybeCollapse replaces childID's entry in parent's quadrant q with
// childID's single remaining bucket if childID (a non-root internal node)
// now has exactly one occupied quadrant and that quadrant is a bucket
// (§4.2). A lone inner quadrant stays in place: its box is half the size of
// the slot it would move into.
func (t *Tree) maybeCollapse(parent nodeID, q int, childID nodeID) {
	if childID == t.root {
		return
	}
	occupied := -1
	count := 0
	for i, c := range t.nodes[childID].children {
		if c.kind != childEmpty {
			count++
			occupied = i
		}
	}
	if count == 1 && t.nodes[childID].children[occupied].kind == childBucket {
		t.nodes[parent].children[q] = t.nodes[childID].children[occupied]
	}
}

// Lookup returns the bucket of FCs stored at fc's coincidence class, for
// testing the §8 round-trip invariant ("a quadtree lookup for the node at
// coords(c) returns a bucket containing c").
func (t *Tree) Lookup(fc frontmodel.FCID) []frontmodel.FCID {
	return t.lookup(t.root, t.box, fc, 0)
}

func (t *Tree) lookup(id nodeID, box Box, fc frontmodel.FCID, depth int) []frontmodel.FCID {
	q, subBox := quadrantOf(box, t.coords(fc))
	switch t.nodes[id].children[q].kind {
	case childBucket:
		b := t.nodes[id].children[q].bucket
		for _, c := range b {
			if c == fc || t.coincident(c, fc) {
				return b
			}
		}
		return nil
	case childInner:
		return t.lookup(t.nodes[id].children[q].node, subBox, fc, depth+1)
	default:
		return nil
	}
}
