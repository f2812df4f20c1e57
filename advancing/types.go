package advancing

import (
	"errors"

	"github.com/dirkfeuchter/advfront/frontmodel"
	"github.com/dirkfeuchter/advfront/meshlog"
	"github.com/dirkfeuchter/advfront/meshparam"
	"github.com/dirkfeuchter/advfront/quadtree"
)

// Sentinel errors for the advancing-front loop's failure kinds (§7).
var (
	// ErrPrecondition indicates a caller passed an invalid Options or a
	// Mesh with no live IFLs to generate.
	ErrPrecondition = errors.New("advancing: precondition violated")

	// ErrArenaExhausted indicates Options.MaxNodes or MaxTriangles was
	// reached, the Go analogue of the original's fixed-arena
	// out-of-memory failure (§7).
	ErrArenaExhausted = errors.New("advancing: node/triangle arena exhausted")

	// ErrGeometryFailed indicates CreateOrSelectFC could not find an
	// acceptable candidate within its bounded recursion depth, or a
	// degenerate apex computation (§7).
	ErrGeometryFailed = errors.New("advancing: no acceptable candidate found")

	// ErrUserInterrupt indicates Options.Interrupt returned true and the
	// loop stopped early with a partially meshed result (§7).
	ErrUserInterrupt = errors.New("advancing: interrupted by caller")
)

// maxCreateOrSelectDepth bounds CreateOrSelectFC's recursive candidate
// search (§4.5 step 5, §7).
const maxCreateOrSelectDepth = 20

// Options configures one GenerateGrid run.
type Options struct {
	// Params is the geometric parameter set (h(x), CheckCos, ...).
	Params meshparam.Params

	// Strategy selects the base-ranking criterion and the accelerated /
	// equilateral / ConstDel toggles.
	Strategy meshparam.Strategy

	// SingleSubdomain restricts meshing to one subdomain id when > 0
	// (§6 "SingleMode subdomain"). Zero means mesh every live IFL.
	SingleSubdomain int

	// MaxNodes, MaxTriangles cap the Mesh's arena; zero means unlimited.
	// Once either count has been reached while meshing is unfinished, the
	// run stops with ErrArenaExhausted.
	MaxNodes, MaxTriangles int

	// DisplayEvery logs progress every N emitted triangles; zero disables
	// progress logging (§6 "display N").
	DisplayEvery int

	// Interrupt is polled once per loop iteration; a true return aborts
	// the run with ErrUserInterrupt (§6, SIGINT wiring in cmd/generategrid).
	Interrupt func() bool

	// Logger receives progress and per-step trace output. A nil Logger
	// disables logging.
	Logger *meshlog.Logger
}

// Result is the outcome of one GenerateGrid run.
type Result struct {
	NumNodes     int
	NumTriangles int
	Interrupted  bool
}

// Validate checks the options that can be checked without a Mesh in hand.
func (o Options) Validate() error {
	if err := o.Strategy.Validate(); err != nil {
		return errors.Join(ErrPrecondition, err)
	}
	if o.Params.SearchConst <= 0 || o.Params.HGlobal <= 0 {
		return ErrPrecondition
	}
	return nil
}

// loop bundles the mutable state of one GenerateGrid run: the mesh under
// construction, the accelerator indices (when Strategy.Accelerated), and
// the per-FC key cache needed to issue exact-match AVL deletes.
type loop struct {
	mesh *frontmodel.Mesh
	opts Options

	box quadtree.Box
	qt  *quadtree.Tree
	avl avlIndex

	keyOf map[frontmodel.FCID]float64

	triEmitted int
}

// avlIndex is the subset of *avltree.Tree the loop needs; kept as an
// interface so a disabled (Strategy.Accelerated == false) run can install a
// no-op implementation instead of branching on a nil pointer everywhere.
type avlIndex interface {
	Insert(fc frontmodel.FCID, key float64)
	Delete(fc frontmodel.FCID, key float64) bool
	Min() (fc frontmodel.FCID, key float64, ok bool)
	Len() int
}
