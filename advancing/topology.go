package advancing

import "github.com/dirkfeuchter/advfront/frontmodel"

// caseKind identifies which of AccelUpdate's five cases a front update
// belongs to (§4.3's protocol table, §4.5 step 7).
type caseKind int

const (
	caseNormal caseKind = iota
	caseLeftNeighbour
	caseRightNeighbour
	caseSplit
	caseMerge
	caseFinal
)

// relink makes b the immediate successor of a.
func relink(mesh *frontmodel.Mesh, a, b frontmodel.FCID) {
	mesh.FC(a).Succ = b
	mesh.FC(b).Pred = a
}

// frontLineUpdate rewires the front around base's base edge to account for
// the chosen candidate, and performs the matching accelerator edits
// (§4.5 step 7/8, in that order: topology first, indices second, since the
// index edits below read the just-rewired pred/succ pointers).
//
// It returns the FC whose position is the triangle's third vertex.
func (l *loop) frontLineUpdate(ifl frontmodel.IFLID, fl frontmodel.FLID, base frontmodel.FCID, cand candidate) (third frontmodel.FCID, kase caseKind, err error) {
	succBase := l.mesh.Succ(base)
	predBase := l.mesh.Pred(base)

	if !cand.reuse {
		// NORMAL: a fresh node, spliced in right after succBase.
		node := l.mesh.CreateNode(cand.apex.X, cand.apex.Y)
		afterNew := l.mesh.Succ(succBase)
		ids, err := l.mesh.CreateFC(fl, succBase, node)
		if err != nil {
			return 0, 0, err
		}
		newFC := ids[0]
		l.indexFC(newFC)
		l.refreshKey(succBase)
		l.refreshKey(afterNew)
		return newFC, caseNormal, nil
	}

	chosen := cand.fc
	switch {
	case chosen == predBase:
		// LEFT_NEIGHBOUR: base is consumed, predBase and succBase become
		// directly adjacent.
		l.unindexFC(base)
		if err := l.mesh.DisposeFC(fl, base); err != nil {
			return 0, 0, err
		}
		l.refreshKey(predBase)
		l.refreshKey(succBase)
		return predBase, caseLeftNeighbour, nil

	case chosen == l.mesh.Succ(succBase):
		// RIGHT_NEIGHBOUR: succBase is consumed, base and chosen become
		// directly adjacent.
		l.unindexFC(succBase)
		if err := l.mesh.DisposeFC(fl, succBase); err != nil {
			return 0, 0, err
		}
		l.refreshKey(base)
		l.refreshKey(chosen)
		return chosen, caseRightNeighbour, nil

	case l.mesh.FC(chosen).FL == fl:
		dup, err := l.split(ifl, fl, base, chosen)
		if err != nil {
			return 0, 0, err
		}
		return dup, caseSplit, nil

	default:
		otherFL := l.mesh.FC(chosen).FL
		dup, err := l.merge(fl, otherFL, base, chosen)
		if err != nil {
			return 0, 0, err
		}
		return dup, caseMerge, nil
	}
}

// reassignChain walks the Succ chain from "from" to "to" inclusive,
// reassigning every FC's FL membership to newFL, and returns the number of
// FCs moved. The walk relies only on Succ pointers of FCs strictly between
// from and to, which callers must leave untouched until after this runs.
func (l *loop) reassignChain(from, to frontmodel.FCID, newFL frontmodel.FLID) int {
	count := 0
	cur := from
	for {
		l.mesh.FC(cur).FL = newFL
		count++
		if cur == to {
			return count
		}
		cur = l.mesh.Succ(cur)
	}
}

// split handles the IN_INTER case where chosen already belongs to the same
// FL as base (§4.5 step 7): the single loop breaks into two. The loop
// containing base keeps fl's id; the loop containing succBase becomes a
// brand-new FL in a brand-new IFL, and chosen is duplicated so each loop
// has its own copy of the shared vertex (§4.1's duplication-on-split
// rationale for id-based FC storage, §9 design note).
func (l *loop) split(oldIFL frontmodel.IFLID, fl frontmodel.FLID, base, chosen frontmodel.FCID) (frontmodel.FCID, error) {
	succBase := l.mesh.Succ(base)
	oldSuccChosen := l.mesh.Succ(chosen)
	node := l.mesh.FC(chosen).Node

	ids, err := l.mesh.CreateFC(fl, base, node)
	if err != nil {
		return 0, err
	}
	dup := ids[0]

	relink(l.mesh, base, dup)
	relink(l.mesh, dup, oldSuccChosen)

	newIFL := l.mesh.CreateIFL()
	newFL, err := l.mesh.CreateFL(newIFL, l.mesh.FL(fl).SubdomainID)
	if err != nil {
		return 0, err
	}
	relink(l.mesh, chosen, succBase)

	moved := l.reassignChain(succBase, chosen, newFL)
	newFLObj := l.mesh.FL(newFL)
	newFLObj.First = succBase
	newFLObj.Count = moved

	flObj := l.mesh.FL(fl)
	flObj.Count -= moved
	flObj.First = base

	l.indexFC(dup)
	l.refreshKey(base)
	l.refreshKey(chosen)
	l.refreshKey(succBase)
	l.refreshKey(oldSuccChosen)

	if err := l.mesh.DetermineOrientation(newFL); err != nil {
		return 0, err
	}

	l.redistributeContained(oldIFL, fl, newIFL, newFL)

	return dup, nil
}

// merge handles the IN_INTER case where chosen belongs to a different FL of
// the same IFL (§4.5 step 7): two loops (typically an outer boundary and a
// hole) become one. otherFL is absorbed into fl and disposed; chosen is
// duplicated exactly as in split, for the same reason.
func (l *loop) merge(fl, otherFL frontmodel.FLID, base, chosen frontmodel.FCID) (frontmodel.FCID, error) {
	succBase := l.mesh.Succ(base)
	oldSuccChosen := l.mesh.Succ(chosen)
	node := l.mesh.FC(chosen).Node
	otherCount := l.mesh.FL(otherFL).Count

	ids, err := l.mesh.CreateFC(fl, base, node)
	if err != nil {
		return 0, err
	}
	dup := ids[0]

	relink(l.mesh, base, dup)
	relink(l.mesh, dup, oldSuccChosen)
	relink(l.mesh, chosen, succBase)

	l.reassignChain(oldSuccChosen, chosen, fl)

	flObj := l.mesh.FL(fl)
	flObj.Count += otherCount
	flObj.First = base

	if err := l.mesh.DisposeFL(otherFL); err != nil {
		return 0, err
	}

	l.indexFC(dup)
	l.refreshKey(base)
	l.refreshKey(chosen)
	l.refreshKey(succBase)
	l.refreshKey(oldSuccChosen)

	return dup, nil
}

// redistributeContained moves any other FL of oldIFL that is now
// geometrically contained inside newFL's boundary to newIFL's membership,
// following the ray-casting parity test of §4.5 step 7's final bullet.
func (l *loop) redistributeContained(oldIFL frontmodel.IFLID, keepFL frontmodel.FLID, newIFL frontmodel.IFLID, newFL frontmodel.FLID) {
	candidates := append([]frontmodel.FLID(nil), l.mesh.IFL(oldIFL).FLs...)
	for _, other := range candidates {
		if other == keepFL || other == newFL {
			continue
		}
		if !l.flContainedIn(other, newFL) {
			continue
		}
		l.mesh.FL(other).IFL = newIFL
		l.mesh.IFL(newIFL).FLs = append(l.mesh.IFL(newIFL).FLs, other)
		old := l.mesh.IFL(oldIFL)
		for i, cand := range old.FLs {
			if cand == other {
				old.FLs = append(old.FLs[:i], old.FLs[i+1:]...)
				break
			}
		}
	}
}

// flContainedIn reports whether inner's first vertex lies inside outer's
// boundary, using the standard even-odd ray-casting crossing count: it
// counts the edges of outer crossed by a horizontal ray from that vertex
// towards +x, and an odd count means the point is inside. outer's
// orientation does not enter the test.
func (l *loop) flContainedIn(inner, outer frontmodel.FLID) bool {
	p := l.pointOf(l.mesh.FL(inner).First)
	crossings := 0
	_ = l.mesh.ForEach(outer, func(fc frontmodel.FCID) bool {
		a := l.pointOf(fc)
		b := l.pointOf(l.mesh.Succ(fc))
		if (a.Y > p.Y) != (b.Y > p.Y) {
			xAtP := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if p.X < xAtP {
				crossings++
			}
		}
		return true
	})
	return crossings%2 == 1
}
