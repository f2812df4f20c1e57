// Package quadtree implements the recursive spatial index over front
// component positions used by the advancing-front loop for O(log N)
// insert/delete and rectangle/triangle range queries (§4.2).
//
// What:
//
//   - Tree covers a square root Box and refines lazily: a leaf holds a
//     Bucket of FCs sharing one coordinate (duplicates, e.g. from front
//     split), and only refines into four child quadrants when a
//     non-coincident point collides with an occupied leaf.
//   - Child is an explicit three-way sum type (Empty/Bucket/Inner), the Go
//     analogue of the original's one-byte four-quadrant flag field plus
//     void* children (§9 design note): there is no way to construct an
//     ambiguous child slot.
//
// Why:
//
//   - Delete collapses a non-root internal node that drops to a single
//     occupied quadrant holding a bucket back into that bucket, so repeated
//     insert/delete cycles during meshing do not inflate tree depth
//     without bound (§4.2).
package quadtree
