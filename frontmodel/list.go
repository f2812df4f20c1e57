package frontmodel

// FC dereferences an FCID.
func (m *Mesh) FC(id FCID) *FC {
	return &m.fcs[id]
}

// Succ, Pred return the cyclic-list neighbors of fc. Both are total on a
// live FC: succ(pred(fc)) == fc and pred(succ(fc)) == fc (§8 invariant 1).
func (m *Mesh) Succ(id FCID) FCID { return m.fcs[id].Succ }
func (m *Mesh) Pred(id FCID) FCID { return m.fcs[id].Pred }

func (m *Mesh) newFC(fl FLID, node NodeID) FCID {
	id := FCID(len(m.fcs))
	m.fcs = append(m.fcs, FC{
		ID:       id,
		Node:     node,
		FL:       fl,
		Succ:     id,
		Pred:     id,
		Triangle: NoTriangle,
		TriSide:  -1,
		alive:    true,
	})
	return id
}

// CreateFC inserts one FC (bound to the given node) after "after" in fl's
// cyclic list, or bulk-creates len(nodes) FCs preserving their input order
// when the caller passes more than one node (§4.1).
//
// after == NoFC means "insert as the sole/first entry of an empty FL"; it
// is an error to pass NoFC when fl already has members, and an error to
// pass an "after" FC that does not belong to fl.
func (m *Mesh) CreateFC(fl FLID, after FCID, nodes ...NodeID) ([]FCID, error) {
	f := &m.fls[fl]
	if !f.alive {
		return nil, ErrUnknownFL
	}
	if len(nodes) == 0 {
		return nil, nil
	}
	if after != NoFC {
		af := &m.fcs[after]
		if !af.alive || af.FL != fl {
			return nil, ErrAfterNotInFL
		}
	}
	if f.Count == 0 && after != NoFC {
		return nil, ErrAfterNotInFL
	}
	if f.Count > 0 && after == NoFC {
		return nil, ErrAfterNotInFL
	}

	ids := make([]FCID, len(nodes))
	for i, n := range nodes {
		ids[i] = m.newFC(fl, n)
	}
	// Chain the freshly created FCs among themselves, preserving order.
	for i := 0; i+1 < len(ids); i++ {
		m.link(ids[i], ids[i+1])
	}

	if f.Count == 0 {
		// Empty FL: the new chain becomes cyclic and First points at its head.
		m.link(ids[len(ids)-1], ids[0])
		f.First = ids[0]
	} else {
		// Splice the new chain in after "after".
		beforeSucc := m.fcs[after].Succ
		m.link(after, ids[0])
		m.link(ids[len(ids)-1], beforeSucc)
	}
	f.Count += len(ids)
	return ids, nil
}

// link makes b the immediate successor of a, fixing both pointers.
func (m *Mesh) link(a, b FCID) {
	m.fcs[a].Succ = b
	m.fcs[b].Pred = a
}

// DisposeFC unlinks fc from its cyclic list. If the FL would drop below one
// FC it is disposed as a whole (its IFL is left for the caller to dispose
// once empty, per IFL lifecycle in §3). Callers implementing §4.5's FINAL
// case call this for all three remaining FCs; the last call disposes the
// FL.
func (m *Mesh) DisposeFC(fl FLID, fc FCID) error {
	f := &m.fls[fl]
	if !f.alive {
		return ErrUnknownFL
	}
	c := &m.fcs[fc]
	if !c.alive || c.FL != fl {
		return ErrUnknownFC
	}

	pred, succ := c.Pred, c.Succ
	if f.Count <= 1 {
		c.alive = false
		f.Count = 0
		f.First = NoFC
		return m.DisposeFL(fl)
	}

	m.link(pred, succ)
	if f.First == fc {
		f.First = succ
	}
	f.Count--
	c.alive = false
	return nil
}

// ForEach visits every live FC of fl exactly once, starting at fl.First,
// following Succ. visit may return false to stop early.
func (m *Mesh) ForEach(fl FLID, visit func(FCID) bool) error {
	f := &m.fls[fl]
	if !f.alive {
		return ErrUnknownFL
	}
	if f.Count == 0 {
		return nil
	}
	start := f.First
	cur := start
	for i := 0; i < f.Count; i++ {
		if !visit(cur) {
			return nil
		}
		cur = m.fcs[cur].Succ
	}
	return nil
}

// Coords is a convenience accessor returning fc's underlying node coordinates.
func (m *Mesh) Coords(fc FCID) (x, y float64) {
	n := m.nodes[m.fcs[fc].Node]
	return n.X, n.Y
}
