// Package avltree implements the height-balanced priority tree the
// advancing-front loop uses to select the next base front component in
// O(log N): one tree per mesh, keyed by either squared edge length to the
// successor FC (edge criterion) or encoded interior angle (angle
// criterion), with duplicate keys permitted (§4.3).
//
// Rebalancing is the textbook AVL algorithm (single LL/RR rotations,
// double LR/RL rotations) driven off each node's subtree height rather
// than an explicitly stored balance-factor field; the four structural
// rotation cases subsume the eight balance-factor-conditioned branches of
// the classic formulation (§9 design note: "make left/right rotations
// first-class and table-drive the imbalance cases").
//
// Deletion by (fc, key) walks both subtrees on a key collision until the
// exact FC reference is matched, because keys are geometric quantities and
// collisions are real (§4.3, §9).
package avltree
