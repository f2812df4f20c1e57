package frontmodel

// Mesh owns every Node/FC/FL/IFL/Triangle slab for one grid-generation run.
// It is the Go analogue of the original MeshData / MG_GGDATA pair: created
// by NewMesh and released with the Mesh value itself; there is no Reset or
// explicit teardown method (§3).
//
// Mesh is not safe for concurrent use; the advancing-front loop is
// synchronous and single-threaded by design (§5).
type Mesh struct {
	nodes []Node
	fcs   []FC
	fls   []FL
	ifls  []IFL
	tris  []Triangle

	ifl []IFLID // ids of currently live IFLs, insertion order
}

// NewMesh returns an empty Mesh ready to accept boundary nodes and FLs.
func NewMesh() *Mesh {
	return &Mesh{}
}

// CreateNode appends a new Node at (x, y) and returns its id.
func (m *Mesh) CreateNode(x, y float64) NodeID {
	id := NodeID(len(m.nodes))
	m.nodes = append(m.nodes, Node{ID: id, X: x, Y: y})
	return id
}

// Node dereferences a NodeID. Panics on an out-of-range id: a caller that
// holds a NodeID it did not receive from this Mesh has a programmer error,
// not a recoverable runtime condition.
func (m *Mesh) Node(id NodeID) *Node {
	return &m.nodes[id]
}

// CreateIFL allocates a fresh, empty IndependentFrontList.
func (m *Mesh) CreateIFL() IFLID {
	id := IFLID(len(m.ifls))
	m.ifls = append(m.ifls, IFL{ID: id, alive: true})
	m.ifl = append(m.ifl, id)
	return id
}

// IFL dereferences an IFLID.
func (m *Mesh) IFL(id IFLID) *IFL {
	return &m.ifls[id]
}

// LiveIFLs returns the ids of all IFLs not yet disposed, in creation order.
func (m *Mesh) LiveIFLs() []IFLID {
	out := make([]IFLID, 0, len(m.ifl))
	for _, id := range m.ifl {
		if m.ifls[id].alive {
			out = append(out, id)
		}
	}
	return out
}

// DisposeIFL marks an IFL dead and clears its FL membership list (§3: "IFL
// ... destroyed when emptied"). It does not check that the list is already
// empty; it fails only for an IFL that is already disposed.
func (m *Mesh) DisposeIFL(id IFLID) error {
	ifl := &m.ifls[id]
	if !ifl.alive {
		return ErrUnknownIFL
	}
	ifl.alive = false
	ifl.FLs = nil
	return nil
}

// CreateFL allocates a fresh, empty FrontList owned by ifl, tagged with the
// given subdomain id.
func (m *Mesh) CreateFL(ifl IFLID, subdomainID int) (FLID, error) {
	if ifl < 0 || int(ifl) >= len(m.ifls) || !m.ifls[ifl].alive {
		return NoFL, ErrUnknownIFL
	}
	id := FLID(len(m.fls))
	m.fls = append(m.fls, FL{
		ID:          id,
		IFL:         ifl,
		SubdomainID: subdomainID,
		Orientation: Unoriented,
		First:       NoFC,
		alive:       true,
	})
	m.ifls[ifl].FLs = append(m.ifls[ifl].FLs, id)
	return id, nil
}

// FL dereferences an FLID.
func (m *Mesh) FL(id FLID) *FL {
	return &m.fls[id]
}

// DisposeFL removes fl from its owning IFL's membership list and marks it
// dead. Any remaining FCs are left as-is (callers must have already
// disposed them via DisposeFC, which itself disposes the FL when it would
// drop below one FC).
func (m *Mesh) DisposeFL(id FLID) error {
	fl := &m.fls[id]
	if !fl.alive {
		return ErrUnknownFL
	}
	fl.alive = false
	ifl := &m.ifls[fl.IFL]
	for i, cand := range ifl.FLs {
		if cand == id {
			ifl.FLs = append(ifl.FLs[:i], ifl.FLs[i+1:]...)
			break
		}
	}
	return nil
}

// CreateTriangle appends an emitted element and returns its id.
func (m *Mesh) CreateTriangle(t Triangle) TriangleID {
	id := TriangleID(len(m.tris))
	t.ID = id
	m.tris = append(m.tris, t)
	return id
}

// Triangle dereferences a TriangleID.
func (m *Mesh) Triangle(id TriangleID) *Triangle {
	return &m.tris[id]
}

// Triangles returns every emitted element, in emission order.
func (m *Mesh) Triangles() []Triangle {
	return m.tris
}

// NumNodes, NumTriangles publish the stats variables of §6 (:gg:nNode,
// :gg:nElem).
func (m *Mesh) NumNodes() int     { return len(m.nodes) }
func (m *Mesh) NumTriangles() int { return len(m.tris) }
