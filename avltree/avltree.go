package avltree

import "github.com/dirkfeuchter/advfront/frontmodel"

// Insert adds (fc, key). Duplicate keys are permitted; ties are broken by
// FC id purely for deterministic iteration order, with no semantic meaning
// (§4.3).
func (t *Tree) Insert(fc frontmodel.FCID, key float64) {
	t.root = insert(t.root, fc, key)
	t.count++
}

func insert(n *node, fc frontmodel.FCID, key float64) *node {
	if n == nil {
		return &node{fc: fc, key: key, height: 0}
	}
	if key < n.key || (key == n.key && fc < n.fc) {
		n.left = insert(n.left, fc, key)
	} else {
		n.right = insert(n.right, fc, key)
	}
	return rebalance(setHeight(n))
}

// Delete removes the node matching both key and fc exactly. On a key
// collision with a different FC it recurses into both subtrees until the
// exact FC reference is matched, per the duplicate-key delete contract of
// §4.3. Reports whether a matching node was found and removed.
func (t *Tree) Delete(fc frontmodel.FCID, key float64) bool {
	newRoot, ok := del(t.root, fc, key)
	if ok {
		t.root = newRoot
		t.count--
	}
	return ok
}

func del(n *node, fc frontmodel.FCID, key float64) (*node, bool) {
	if n == nil {
		return nil, false
	}

	switch {
	case key < n.key:
		left, ok := del(n.left, fc, key)
		if !ok {
			return n, false
		}
		n.left = left
		return rebalance(setHeight(n)), true

	case key > n.key:
		right, ok := del(n.right, fc, key)
		if !ok {
			return n, false
		}
		n.right = right
		return rebalance(setHeight(n)), true

	default:
		if n.fc == fc {
			return removeNode(n), true
		}
		// Key collision, different FC: the match may be on either side.
		if left, ok := del(n.left, fc, key); ok {
			n.left = left
			return rebalance(setHeight(n)), true
		}
		if right, ok := del(n.right, fc, key); ok {
			n.right = right
			return rebalance(setHeight(n)), true
		}
		return n, false
	}
}

func removeNode(n *node) *node {
	if n.left == nil {
		return n.right
	}
	if n.right == nil {
		return n.left
	}
	succ := findMin(n.right)
	n.key, n.fc = succ.key, succ.fc
	right, _ := del(n.right, succ.fc, succ.key)
	n.right = right
	return rebalance(setHeight(n))
}

func findMin(n *node) *node {
	for n.left != nil {
		n = n.left
	}
	return n
}

// Min returns the leftmost node's FC and key: the best base candidate
// (shortest edge / sharpest interior angle) per the AVL-min selection rule
// of §4.5 step 1. ok is false for an empty tree.
func (t *Tree) Min() (fc frontmodel.FCID, key float64, ok bool) {
	if t.root == nil {
		return 0, 0, false
	}
	n := findMin(t.root)
	return n.fc, n.key, true
}

// rebalance applies the textbook single/double rotations, choosing among
// them by each node's current height-derived balance factor (§4.3, §9).
func rebalance(n *node) *node {
	bf := balanceFactor(n)
	switch {
	case bf > 1:
		if balanceFactor(n.left) < 0 {
			n.left = rotateLeft(n.left) // LR case
		}
		return rotateRight(n) // LL case

	case bf < -1:
		if balanceFactor(n.right) > 0 {
			n.right = rotateRight(n.right) // RL case
		}
		return rotateLeft(n) // RR case
	}
	return n
}

func rotateRight(n *node) *node {
	l := n.left
	n.left = l.right
	l.right = n
	setHeight(n)
	setHeight(l)
	return l
}

func rotateLeft(n *node) *node {
	r := n.right
	n.right = r.left
	r.left = n
	setHeight(n)
	setHeight(r)
	return r
}
