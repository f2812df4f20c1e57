package advancing

import "github.com/dirkfeuchter/advfront/frontmodel"

// noopAVL satisfies avlIndex without doing any work, installed when
// Strategy.Accelerated is false so the loop's key-maintenance calls stay
// unconditional (§4.6: unaccelerated runs fall back to an O(N) linear scan
// instead of the AVL/quadtree pair).
type noopAVL struct{}

func (noopAVL) Insert(frontmodel.FCID, float64)         {}
func (noopAVL) Delete(frontmodel.FCID, float64) bool    { return false }
func (noopAVL) Min() (frontmodel.FCID, float64, bool)   { return 0, 0, false }
func (noopAVL) Len() int                                { return 0 }

// refreshKey recomputes fc's ranking key and re-indexes it: if fc already
// had a cached key its old AVL entry is deleted first (§4.3's exact-match
// delete contract requires the old key, not the new one). A no-op when
// acceleration is off.
func (l *loop) refreshKey(fc frontmodel.FCID) {
	if !l.opts.Strategy.Accelerated {
		return
	}
	l.dropKey(fc)
	k := l.key(fc, l.opts.Strategy.Criterion)
	l.avl.Insert(fc, k)
	l.keyOf[fc] = k
}

// dropKey removes fc's AVL entry (if any), without reinserting; the
// quadtree entry is left alone (unindexFC removes both). Used when fc's key
// is about to be recomputed or fc is being unindexed.
func (l *loop) dropKey(fc frontmodel.FCID) {
	if !l.opts.Strategy.Accelerated {
		return
	}
	if k, ok := l.keyOf[fc]; ok {
		l.avl.Delete(fc, k)
		delete(l.keyOf, fc)
	}
}

// indexFC adds fc to both accelerator structures: the quadtree (by
// position) and the AVL tree (by ranking key). Used for newly created FCs
// (CreateFC, split duplicates) and during initial index construction.
func (l *loop) indexFC(fc frontmodel.FCID) {
	if !l.opts.Strategy.Accelerated {
		return
	}
	l.qt.Insert(fc)
	l.refreshKey(fc)
}

// unindexFC removes fc from both accelerator structures. Used before
// DisposeFC and before an FC's position becomes stale (it never does in
// this model — FC positions are fixed at their Node — but removal must
// precede disposal regardless, since a disposed id must not be
// dereferenced again by RangeSearch).
func (l *loop) unindexFC(fc frontmodel.FCID) {
	if !l.opts.Strategy.Accelerated {
		return
	}
	l.qt.Delete(fc)
	l.dropKey(fc)
}
