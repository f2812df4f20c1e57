package meshparam

import "errors"

// Sentinel errors for meshparam validation.
var (
	// ErrAmbiguousSelection indicates zero or more than one of
	// {Edge, Angle} was selected; exactly one selection criterion must be
	// active (§4.6).
	ErrAmbiguousSelection = errors.New("meshparam: exactly one of edge/angle selection must be set")
)

// Default values for Params (§4.6). A complete SPEC-FULL ambient default
// set, mirroring DefaultGridOptions()-style single-source-of-truth
// defaults in the teacher's gridgraph/matrix packages.
const (
	// DefaultCheckCos is the cosine threshold above which CHECK_NEAR (§4.5
	// step 5) prefers an existing adjacent edge over a fresh apex.
	DefaultCheckCos = 0.9

	// DefaultEpsi is the triangle-inflation epsilon for point-in-triangle
	// (§4.4).
	DefaultEpsi = 1e-4

	// DefaultSearchConst multiplies h(x) to get the apex tip-circle radius
	// (§4.5 step 3).
	DefaultSearchConst = 0.7

	// DefaultHGlobal is the global mesh size used when no coefficient
	// function is supplied.
	DefaultHGlobal = 0.1

	// DelaunayHeightDivisor shrinks the apex height in the Delaunay-biased
	// variant (h/1.2, §4.5 step 3).
	DelaunayHeightDivisor = 1.2

	// ConstDelRadiusRatio is the circumradius-preference cutoff
	// (1.5 x np_circ) of the ConstDel scenario (§8).
	ConstDelRadiusRatio = 1.5
)

// CoeffFunc is the mesh-size oracle h(x): given a point, it returns the
// desired local edge length there (§4.6, §6 CoeffProcPtr). A nil CoeffFunc
// means h(x) == Params.HGlobal everywhere.
type CoeffFunc func(x, y float64) float64

// Params holds the tunable geometric parameters of the advancing-front
// loop (the original GG_PARAM, §4.6).
type Params struct {
	CheckCos    float64
	Epsi        float64
	SearchConst float64
	HGlobal     float64
	Coeff       CoeffFunc
}

// H evaluates the mesh-size oracle at (x, y): Params.Coeff if set, else
// HGlobal (§4.6: "if absent, h(x) ≡ h_global").
func (p Params) H(x, y float64) float64 {
	if p.Coeff == nil {
		return p.HGlobal
	}
	return p.Coeff(x, y)
}
