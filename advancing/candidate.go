package advancing

import (
	"math"

	"github.com/dirkfeuchter/advfront/frontmodel"
	"github.com/dirkfeuchter/advfront/geom"
	"github.com/dirkfeuchter/advfront/meshparam"
	"github.com/dirkfeuchter/advfront/quadtree"
)

// candidate is the outcome of CreateOrSelectFC: either an existing front
// component to reuse as the triangle's third vertex, or the coordinates of
// a brand-new node to create (§4.5 step 5).
type candidate struct {
	reuse bool
	fc    frontmodel.FCID
	apex  geom.Point
}

func (l *loop) pointOf(fc frontmodel.FCID) geom.Point {
	x, y := l.mesh.Coords(fc)
	return geom.Point{X: x, Y: y}
}

// createOrSelectFC proposes the third vertex for the triangle based at fc's
// base edge (base, succ(base)), following the ordered check sequence of
// §4.5 step 5: CHECK_NEAR, CHECK_NBCUT, CHECK_INSIDE, CHECK_INTERSECT, and
// finally "create a new node" if none apply. Recursion is bounded to
// maxCreateOrSelectDepth; a degenerate apex (collinear with the base) backs
// off the apex height and retries rather than failing immediately.
func (l *loop) createOrSelectFC(ifl frontmodel.IFLID, base frontmodel.FCID) (candidate, error) {
	return l.createOrSelectFCAt(ifl, base, 0, 1.0)
}

func (l *loop) createOrSelectFCAt(ifl frontmodel.IFLID, base frontmodel.FCID, depth int, heightScale float64) (candidate, error) {
	if depth > maxCreateOrSelectDepth {
		return candidate{}, ErrGeometryFailed
	}

	succBase := l.mesh.Succ(base)
	predBase := l.mesh.Pred(base)

	baseP := l.pointOf(base)
	succP := l.pointOf(succBase)
	mid := geom.Point{X: (baseP.X + succP.X) / 2, Y: (baseP.Y + succP.Y) / 2}

	strat := l.opts.Strategy
	h := l.opts.Params.H(mid.X, mid.Y)
	if strat.ConstDel {
		h /= meshparam.DelaunayHeightDivisor
	}
	h *= heightScale

	baseLen2 := geom.DistSq(baseP, succP)
	var height float64
	if strat.Equilateral {
		h2 := h*h - 0.25*baseLen2
		if h2 <= 0 {
			return l.createOrSelectFCAt(ifl, base, depth+1, heightScale*0.8)
		}
		height = math.Sqrt(h2)
	} else {
		height = h
	}

	dir := succP.Sub(baseP)
	dirLen := dir.Len()
	if dirLen < geom.Epsilon {
		return candidate{}, ErrGeometryFailed
	}
	unit := dir.Scale(1 / dirLen)

	fl := l.mesh.FL(l.mesh.FC(base).FL)
	var normal geom.Point
	if fl.Orientation == frontmodel.MathNegative {
		normal = geom.Point{X: unit.Y, Y: -unit.X}
	} else {
		normal = geom.Point{X: -unit.Y, Y: unit.X}
	}
	apex := mid.Add(normal.Scale(height))

	if geom.Orientation(baseP, succP, apex) == 0 {
		return l.createOrSelectFCAt(ifl, base, depth+1, heightScale*0.8)
	}

	searchRadius := l.opts.Params.SearchConst * h
	small := quadtree.Box{SrcX: apex.X - searchRadius, SrcY: apex.Y - searchRadius, Width: 2 * searchRadius}
	hg := l.opts.Params.HGlobal
	big := quadtree.Box{SrcX: small.SrcX - hg, SrcY: small.SrcY - hg, Width: small.Width + 2*hg}
	triangle := [3]geom.Point{baseP, succP, apex}

	// CHECK_NEAR: an already-adjacent front vertex within the search
	// radius, or forming a sufficiently sharp angle with the base, is
	// reused rather than creating a near-duplicate node.
	toApex := apex.Sub(baseP)
	for _, nb := range [2]frontmodel.FCID{l.mesh.Succ(succBase), predBase} {
		nbp := l.pointOf(nb)
		if geom.DistSq(nbp, apex) <= searchRadius*searchRadius {
			return candidate{reuse: true, fc: nb}, nil
		}
		toNb := nbp.Sub(baseP)
		tl, nl := toApex.Len(), toNb.Len()
		if tl > geom.Epsilon && nl > geom.Epsilon {
			cosTheta := toApex.Dot(toNb) / (tl * nl)
			if cosTheta > l.opts.Params.CheckCos {
				return candidate{reuse: true, fc: nb}, nil
			}
		}
	}

	inside, intersectCand := l.rangeSearch(ifl, small, big, triangle, l.opts.Params.Epsi, apex, searchRadius*searchRadius)

	// ConstDel circumcircle rejection (§9 open question 3, resurrected):
	// when biasing toward Delaunay-like elements, a front point sitting
	// well inside the proposed circumcircle (comfortably closer to its
	// center than the 1.5x np_circ cutoff allows) means the apex is a poor
	// choice; back the height off and retry rather than accept a sliver.
	if strat.ConstDel {
		if center, r2, ok := geom.Circumcircle(baseP, succP, apex); ok {
			tolerance := r2 / (meshparam.ConstDelRadiusRatio * meshparam.ConstDelRadiusRatio)
			for _, c := range inside {
				if geom.DistSq(l.pointOf(c), center) < tolerance {
					return l.createOrSelectFCAt(ifl, base, depth+1, heightScale*0.9)
				}
			}
		}
	}

	// CHECK_NBCUT: reuse a neighbor instead of crossing the edge leaving it.
	for _, nb := range [2]frontmodel.FCID{succBase, predBase} {
		nbSucc := l.mesh.Succ(nb)
		if nb == base || nbSucc == base {
			continue
		}
		_, _, ok := geom.SegmentIntersect(baseP, apex, l.pointOf(nb), l.pointOf(nbSucc))
		if ok {
			return candidate{reuse: true, fc: nb}, nil
		}
	}

	// CHECK_INSIDE: of insidePts, keep only the FCs that lie strictly left
	// of the base edge (same side as apex) and strictly inside the
	// (non-circle) inflated triangle; among those, the one closest to the
	// base edge becomes the third vertex, provided the base midpoint lies
	// on the correct side of that candidate's own front (spec.md:108).
	apexSide := geom.Orientation(baseP, succP, apex)
	best := frontmodel.NoFC
	bestDist := math.Inf(1)
	for _, c := range inside {
		cp := l.pointOf(c)
		if geom.Orientation(baseP, succP, cp) != apexSide {
			continue
		}
		if !geom.PointInTriangle(cp, triangle[0], triangle[1], triangle[2], l.opts.Params.Epsi) {
			continue
		}
		d := math.Abs(unit.Cross(cp.Sub(baseP)))
		if d >= bestDist {
			continue
		}
		if !geom.IsLeftOfFC(l.pointOf(l.mesh.Pred(c)), cp, l.pointOf(l.mesh.Succ(c)), mid) {
			continue
		}
		best, bestDist = c, d
	}
	if best != frontmodel.NoFC {
		return candidate{reuse: true, fc: best}, nil
	}

	// CHECK_INTERSECT: of the front edges the proposed flanks would
	// cross, accept the one with the smallest forward intersection
	// parameter along the flank.
	bestFC := frontmodel.NoFC
	bestLambda1 := math.Inf(1)
	for _, c := range intersectCand {
		p3 := l.pointOf(c)
		p4 := l.pointOf(l.mesh.Succ(c))
		for _, flank := range [2][2]geom.Point{{succP, apex}, {apex, baseP}} {
			lam1, lam2, ok := geom.SegmentIntersect(flank[0], flank[1], p3, p4)
			if !ok || !geom.SegmentIntersectAccept(lam1, lam2) {
				continue
			}
			if lam1 < bestLambda1 {
				bestLambda1, bestFC = lam1, c
			}
		}
	}
	if bestFC != frontmodel.NoFC {
		return candidate{reuse: true, fc: bestFC}, nil
	}

	return candidate{apex: apex}, nil
}

// rangeSearch dispatches to the quadtree when Strategy.Accelerated, or
// walks every FC of every FL in ifl directly otherwise, applying the exact
// classification quadtree.Tree.classify uses (§4.6's doedge/doangle linear
// fallback).
func (l *loop) rangeSearch(ifl frontmodel.IFLID, small, big quadtree.Box, triangle [3]geom.Point, epsi float64, circleCenter geom.Point, circleR2 float64) (inside, intersect []frontmodel.FCID) {
	if l.opts.Strategy.Accelerated {
		params := quadtree.SearchParams{
			IFL: ifl, Small: small, Big: big,
			Triangle: triangle, Epsi: epsi,
			CircleCenter: circleCenter, CircleR2: circleR2,
		}
		return l.qt.RangeSearch(params)
	}

	for _, flID := range l.mesh.IFL(ifl).FLs {
		_ = l.mesh.ForEach(flID, func(fc frontmodel.FCID) bool {
			p := l.pointOf(fc)
			if small.Contains(p) {
				if geom.PointInTriangle(p, triangle[0], triangle[1], triangle[2], epsi) ||
					geom.PointInCircle(p, circleCenter, circleR2) {
					inside = append(inside, fc)
				}
				return true
			}
			if big.Contains(p) {
				intersect = append(intersect, fc)
				pred := l.mesh.Pred(fc)
				if !big.Contains(l.pointOf(pred)) {
					intersect = append(intersect, pred)
				}
			}
			return true
		})
	}
	return inside, intersect
}
