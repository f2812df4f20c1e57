package avltree

import "github.com/dirkfeuchter/advfront/frontmodel"

// node is one AVL node: an FC reference, its DOUBLE key, and subtree
// height used to derive the balance factor during rebalancing.
type node struct {
	left, right *node
	height      int
	fc          frontmodel.FCID
	key         float64
}

// Tree is a single AVL priority tree over (FC, key) pairs. Keys are either
// squared edge lengths or encoded interior angles (§4.3); Tree itself is
// agnostic to which criterion produced them.
type Tree struct {
	root  *node
	count int
}

// New returns an empty Tree.
func New() *Tree {
	return &Tree{}
}

// Len returns the number of (FC, key) pairs currently stored.
func (t *Tree) Len() int {
	return t.count
}

func height(n *node) int {
	if n == nil {
		return -1
	}
	return n.height
}

func setHeight(n *node) *node {
	l, r := height(n.left), height(n.right)
	if l > r {
		n.height = l + 1
	} else {
		n.height = r + 1
	}
	return n
}

func balanceFactor(n *node) int {
	return height(n.left) - height(n.right)
}
