// Package boundary assembles a MeshData's independent front lists from a
// flat boundary point list and, per subdomain, a list of oriented side
// pairs (§4.7). It is a thin collaborator to the advancing-front core: the
// only contract the core needs from boundary description is "here are the
// FLs", however the FE framework's own input format chooses to describe
// that boundary.
//
// Algorithm: within a subdomain, sides are greedily chained by shared
// endpoint starting from an arbitrary unused side, until the chain closes
// back on its own first vertex; each closed chain becomes one FL. Fails if
// a side has no continuation, or if the side set does not decompose
// exactly into closed chains.
package boundary
