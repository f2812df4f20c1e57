package advancing

import (
	"github.com/dirkfeuchter/advfront/avltree"
	"github.com/dirkfeuchter/advfront/frontmodel"
	"github.com/dirkfeuchter/advfront/geom"
	"github.com/dirkfeuchter/advfront/quadtree"
)

// GenerateGrid drives the advancing-front loop over mesh's live
// IndependentFrontLists until all are consumed, interrupted, or a fatal
// condition is hit (§4.5, §7). box is the quadtree's root square and must
// cover every boundary node mesh already holds.
func GenerateGrid(mesh *frontmodel.Mesh, box quadtree.Box, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(mesh.LiveIFLs()) == 0 {
		return nil, ErrPrecondition
	}

	l := &loop{mesh: mesh, opts: opts, box: box, keyOf: make(map[frontmodel.FCID]float64)}
	if opts.Strategy.Accelerated {
		l.qt = quadtree.New(mesh, box)
		l.avl = avltree.New()
	} else {
		l.avl = noopAVL{}
	}
	l.indexAll()

	result := &Result{}
	snapshot := func() {
		result.NumNodes = mesh.NumNodes()
		result.NumTriangles = mesh.NumTriangles()
	}

	for {
		if opts.Interrupt != nil && opts.Interrupt() {
			result.Interrupted = true
			snapshot()
			return result, ErrUserInterrupt
		}

		base, fl, ifl, ok := l.nextBase()
		if !ok {
			break
		}

		if opts.MaxNodes > 0 && mesh.NumNodes() >= opts.MaxNodes {
			snapshot()
			return result, ErrArenaExhausted
		}
		if opts.MaxTriangles > 0 && mesh.NumTriangles() >= opts.MaxTriangles {
			snapshot()
			return result, ErrArenaExhausted
		}

		if l.mesh.FL(fl).Count == 3 {
			// FINAL: the last three FCs close the loop directly.
			if err := l.emitFinal(ifl, fl); err != nil {
				snapshot()
				return result, err
			}
			l.logProgress()
			continue
		}

		succBaseOrig := l.mesh.Succ(base)

		cand, err := l.createOrSelectFC(ifl, base)
		if err != nil {
			snapshot()
			return result, err
		}

		third, kase, err := l.frontLineUpdate(ifl, fl, base, cand)
		if err != nil {
			snapshot()
			return result, err
		}

		if err := l.makeElement(fl, base, succBaseOrig, third); err != nil {
			snapshot()
			return result, err
		}
		l.opts.Logger.Debugf("advancing: base=%d kase=%d third=%d", int(base), int(kase), int(third))
		l.logProgress()
	}

	snapshot()
	return result, nil
}

// indexAll populates the accelerator structures with every live FC of every
// FL under consideration (all live IFLs, or just Options.SingleSubdomain's
// FLs when set, §6).
func (l *loop) indexAll() {
	for _, iflID := range l.mesh.LiveIFLs() {
		for _, flID := range l.mesh.IFL(iflID).FLs {
			if l.opts.SingleSubdomain > 0 && l.mesh.FL(flID).SubdomainID != l.opts.SingleSubdomain {
				continue
			}
			_ = l.mesh.ForEach(flID, func(fc frontmodel.FCID) bool {
				l.indexFC(fc)
				return true
			})
		}
	}
}

// nextBase selects the current best base FC: the AVL-min when accelerated,
// or a direct O(N) scan over every eligible live FC otherwise (§4.5 step 1,
// §4.6's doedge/doangle fallback).
func (l *loop) nextBase() (base frontmodel.FCID, fl frontmodel.FLID, ifl frontmodel.IFLID, ok bool) {
	if l.opts.Strategy.Accelerated {
		fc, _, found := l.avl.Min()
		if !found {
			return 0, 0, 0, false
		}
		flID := l.mesh.FC(fc).FL
		return fc, flID, l.mesh.FL(flID).IFL, true
	}

	best := frontmodel.NoFC
	var bestKey float64
	var bestFL frontmodel.FLID
	var bestIFL frontmodel.IFLID
	for _, iflID := range l.mesh.LiveIFLs() {
		for _, flID := range l.mesh.IFL(iflID).FLs {
			if l.opts.SingleSubdomain > 0 && l.mesh.FL(flID).SubdomainID != l.opts.SingleSubdomain {
				continue
			}
			_ = l.mesh.ForEach(flID, func(fc frontmodel.FCID) bool {
				k := l.key(fc, l.opts.Strategy.Criterion)
				if best == frontmodel.NoFC || k < bestKey {
					best, bestKey, bestFL, bestIFL = fc, k, flID, iflID
				}
				return true
			})
		}
	}
	if best == frontmodel.NoFC {
		return 0, 0, 0, false
	}
	return best, bestFL, bestIFL, true
}

// makeElement emits the triangle (base, succBaseOrig, third), rejecting it
// if its centroid falls outside the meshing domain (a cheap sanity check
// against a grossly malformed candidate, §4.5 step 6).
func (l *loop) makeElement(fl frontmodel.FLID, base, succBaseOrig, third frontmodel.FCID) error {
	nodes := [3]frontmodel.NodeID{
		l.mesh.FC(base).Node,
		l.mesh.FC(succBaseOrig).Node,
		l.mesh.FC(third).Node,
	}
	na, nb, nc := l.mesh.Node(nodes[0]), l.mesh.Node(nodes[1]), l.mesh.Node(nodes[2])
	pa := geom.Point{X: na.X, Y: na.Y}
	pb := geom.Point{X: nb.X, Y: nb.Y}
	pc := geom.Point{X: nc.X, Y: nc.Y}

	centroid := geom.Point{X: (pa.X + pb.X + pc.X) / 3, Y: (pa.Y + pb.Y + pc.Y) / 3}
	if !l.box.Contains(centroid) {
		return ErrGeometryFailed
	}

	tri := frontmodel.Triangle{
		Nodes:        nodes,
		Neighbor:     [3]frontmodel.TriangleID{frontmodel.NoTriangle, frontmodel.NoTriangle, frontmodel.NoTriangle},
		NeighborSide: [3]int{-1, -1, -1},
		SubdomainID:  l.mesh.FL(fl).SubdomainID,
	}
	if l.opts.Strategy.ConstDel {
		if center, r2, ok := geom.Circumcircle(pa, pb, pc); ok {
			tri.Cx, tri.Cy, tri.R2 = center.X, center.Y, r2
		}
	}

	id := l.mesh.CreateTriangle(tri)
	l.wireNeighbors(id, base, succBaseOrig, third)
	l.triEmitted++
	return nil
}

// emitFinal closes out a three-FC FL directly, without a candidate search
// (§4.5's FINAL case), then disposes its IFL if that was its last FL.
func (l *loop) emitFinal(ifl frontmodel.IFLID, fl frontmodel.FLID) error {
	flObj := l.mesh.FL(fl)
	a := flObj.First
	b := l.mesh.Succ(a)
	c := l.mesh.Succ(b)

	if err := l.makeElement(fl, a, b, c); err != nil {
		return err
	}

	for _, fc := range [3]frontmodel.FCID{a, b, c} {
		l.unindexFC(fc)
		if err := l.mesh.DisposeFC(fl, fc); err != nil {
			return err
		}
	}
	if len(l.mesh.IFL(ifl).FLs) == 0 {
		return l.mesh.DisposeIFL(ifl)
	}
	return nil
}

// wireNeighbors records element-to-element adjacency across the triangle's
// three sides, using each owning FC's Triangle/TriSide fields as the
// handshake: side 0 is the consumed base edge, side 1 the
// succBaseOrig->third edge, side 2 the third->base edge (§4.5 step 6).
func (l *loop) wireNeighbors(id frontmodel.TriangleID, base, succBaseOrig, third frontmodel.FCID) {
	l.linkSide(id, 0, base)
	l.linkSide(id, 1, succBaseOrig)
	l.linkSide(id, 2, third)
}

func (l *loop) linkSide(id frontmodel.TriangleID, side int, owner frontmodel.FCID) {
	tri := l.mesh.Triangle(id)
	oc := l.mesh.FC(owner)
	if oc.Triangle != frontmodel.NoTriangle {
		nb := l.mesh.Triangle(oc.Triangle)
		nbSide := oc.TriSide
		tri.Neighbor[side] = oc.Triangle
		tri.NeighborSide[side] = nbSide
		nb.Neighbor[nbSide] = id
		nb.NeighborSide[nbSide] = side
	}
	oc.Triangle = id
	oc.TriSide = side
}

func (l *loop) logProgress() {
	if l.opts.Logger == nil || l.opts.DisplayEvery <= 0 {
		return
	}
	if l.triEmitted%l.opts.DisplayEvery == 0 {
		l.opts.Logger.Infof("advancing: %d nodes, %d elements", l.mesh.NumNodes(), l.mesh.NumTriangles())
	}
}
