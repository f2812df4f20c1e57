package frontmodel

import "errors"

// Sentinel errors for frontmodel operations.
var (
	// ErrEmptyFrontList indicates an FL operation requires at least one FC.
	ErrEmptyFrontList = errors.New("frontmodel: front list has no components")

	// ErrShortFrontList indicates DetermineOrientation needs at least three FCs.
	ErrShortFrontList = errors.New("frontmodel: front list needs at least three components")

	// ErrUnknownFC indicates a stale or out-of-range FC id was dereferenced.
	ErrUnknownFC = errors.New("frontmodel: unknown front component id")

	// ErrUnknownFL indicates a stale or out-of-range FL id was dereferenced.
	ErrUnknownFL = errors.New("frontmodel: unknown front list id")

	// ErrUnknownIFL indicates a stale or out-of-range IFL id was dereferenced.
	ErrUnknownIFL = errors.New("frontmodel: unknown independent front list id")

	// ErrAfterNotInFL indicates CreateFC's "after" handle is not a member of
	// the target FL, including NoFC passed for an FL that already has FCs.
	ErrAfterNotInFL = errors.New("frontmodel: insertion point is not a member of the target front list")
)

// NoFC, NoFL, NoIFL, NoTriangle are the sentinel "absent" ids; a fresh
// slab never assigns index -1.
const (
	NoFC       FCID       = -1
	NoFL       FLID       = -1
	NoIFL      IFLID      = -1
	NoTriangle TriangleID = -1
)

// NodeID, FCID, FLID, IFLID, TriangleID are stable handles into a Mesh's
// slabs. They replace the original implementation's raw pointers so that
// accelerator structures (quadtree, AVL tree) can reference front
// components cheaply and safely even across duplication on split.
type (
	NodeID     int
	FCID       int
	FLID       int
	IFLID      int
	TriangleID int
)

// Orientation is the sign of a FrontList's turning-angle sum (§4.1).
type Orientation int

const (
	// MathPositive marks a mathematically-positive (counter-clockwise) FL.
	MathPositive Orientation = 1
	// MathNegative marks a mathematically-negative (clockwise) FL.
	MathNegative Orientation = -1
	// Unoriented marks an FL whose orientation has not yet been computed.
	Unoriented Orientation = 0
)

// Node is a mesh vertex: a 2D coordinate pair. Multiple FCs may reference
// the same Node (duplication on front split, §4.1).
type Node struct {
	ID   NodeID
	X, Y float64
}

// FC (front component) is one vertex on an active advancing front.
//
// Succ/Pred form a cyclic doubly-linked list within FL: succ(pred(fc)) ==
// fc and pred(succ(fc)) == fc always hold for a live FC (§8 invariant 1).
// Triangle/TriSide are set once the FC's base edge has been consumed by
// triangle emission; they are NoTriangle/-1 until then.
type FC struct {
	ID          FCID
	Node        NodeID
	FL          FLID
	Succ, Pred  FCID
	Triangle    TriangleID
	TriSide     int
	alive       bool
}

// FL (front list) is a closed, oriented polyline of FCs bounding one
// subdomain boundary or hole (§3). Invariants: at least three FCs once
// non-empty; Orientation agrees with the sign of the discrete turning-angle
// sum; the outer boundary of a subdomain is MathPositive, holes are
// MathNegative.
type FL struct {
	ID          FLID
	IFL         IFLID
	SubdomainID int
	Orientation Orientation
	First       FCID // an entry point into the cyclic FC list
	Count       int
	alive       bool
}

// IFL (independent front list) groups the FLs bounding one connected
// un-meshed region: "outside the positive FL and inside all contained
// negative FLs" (§3).
type IFL struct {
	ID    IFLID
	FLs   []FLID // insertion order; no ordering semantics beyond membership
	alive bool
}

// Triangle is an emitted mesh element: three node references, up to three
// neighbor triangles with their side indices, and (for the Delaunay
// variant, §4.5 step 6 / §9 open question 3) its circumcenter and squared
// circumradius.
type Triangle struct {
	ID          TriangleID
	Nodes       [3]NodeID
	Neighbor    [3]TriangleID
	NeighborSide [3]int
	SubdomainID int
	Cx, Cy      float64 // circumcenter
	R2          float64 // squared circumradius
}
