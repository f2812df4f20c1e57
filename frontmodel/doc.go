// Package frontmodel defines the advancing-front data model: mesh nodes,
// front components (FC), front lists (FL) and independent front lists
// (IFL), plus the cyclic-list primitives the rest of advfront builds on.
//
// What:
//
//   - Mesh owns slabs of Node/FC/FL/IFL records addressed by stable integer
//     ids (NodeID/FCID/FLID/IFLID) rather than raw pointers, so accelerator
//     indices (quadtree, AVL tree) can hold cheap, revocable references.
//   - FL is a closed, oriented cyclic list of FCs; IFL groups the FLs that
//     bound one connected unmeshed region.
//
// Why:
//
//   - Pointer-aliasing hazards on FC duplication (a real concern in the
//     original C implementation, where fronts are raw doubly-linked
//     pointer lists) are removed by indexing through ids into a slab.
//
// Errors:
//
//	ErrEmptyFrontList    - an FL operation requires at least one FC.
//	ErrShortFrontList    - DetermineOrientation needs at least three FCs.
//	ErrUnknownFC/FL/IFL  - a stale or invalid id was dereferenced.
package frontmodel
