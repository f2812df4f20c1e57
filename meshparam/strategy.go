package meshparam

// Criterion selects the base-front-component ranking used by the AVL
// priority tree / linear scan (§4.3, §4.5 step 1).
type Criterion int

const (
	// CriterionEdge ranks by squared edge length to the successor FC
	// (shortest edge first). Numbering starts at 1 so that the zero
	// Criterion selects nothing.
	CriterionEdge Criterion = iota + 1
	// CriterionAngle ranks by encoded interior angle (sharpest first).
	CriterionAngle
)

// Strategy is the original GG_ARG selection-switch set: exactly one of
// {Edge, Angle} must be active; Accelerated toggles whether selection uses
// the quadtree/AVL indices (doEdge/doAngle) or an O(N) linear scan
// (doedge/doangle); ConstDel may combine with either (§4.6).
type Strategy struct {
	Criterion   Criterion
	Accelerated bool
	ConstDel    bool
	Equilateral bool
}

// Validate enforces §4.6's "exactly one must be true" rule. Criterion is a
// Go enum rather than independent booleans, so the only remaining
// ambiguity the original GG_ARG struct could express — both or neither of
// doedge/doangle set — is structurally impossible here; Validate exists to
// keep the contract explicit and to reject a zero-value Strategy used
// without going through NewStrategy.
func (s Strategy) Validate() error {
	if s.Criterion != CriterionEdge && s.Criterion != CriterionAngle {
		return ErrAmbiguousSelection
	}
	return nil
}

// StrategyOption configures a Strategy.
type StrategyOption func(*Strategy)

// WithCriterion sets the base-selection ranking.
func WithCriterion(c Criterion) StrategyOption {
	return func(s *Strategy) { s.Criterion = c }
}

// WithAccelerated toggles quadtree/AVL acceleration vs. linear scan.
func WithAccelerated(on bool) StrategyOption {
	return func(s *Strategy) { s.Accelerated = on }
}

// WithConstDel toggles the Delaunay-biased minimum-circumcircle
// preference; it may combine with either selection criterion (§4.6, §9
// open question 3).
func WithConstDel(on bool) StrategyOption {
	return func(s *Strategy) { s.ConstDel = on }
}

// WithEquilateral toggles whether the apex height is forced to the
// equilateral value h^2 - 1/4*base^2 (§4.5 step 3).
func WithEquilateral(on bool) StrategyOption {
	return func(s *Strategy) { s.Equilateral = on }
}

// NewStrategy returns a Strategy defaulting to {CriterionEdge, accelerated,
// no ConstDel, no equilateral}, with opts applied in order.
func NewStrategy(opts ...StrategyOption) Strategy {
	s := Strategy{Criterion: CriterionEdge, Accelerated: true}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
