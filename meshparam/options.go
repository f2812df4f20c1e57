package meshparam

// Option configures Params. Following the teacher's builder/options.go
// convention, option constructors validate their argument and panic on
// values that can never be meaningful (programmer error); the mesher
// itself never panics on data it merely processes.
type Option func(*Params)

// WithCheckCos sets the CHECK_NEAR cosine threshold. Panics outside
// [-1, 1], which is the only range a cosine can take.
func WithCheckCos(c float64) Option {
	if c < -1 || c > 1 {
		panic("meshparam: WithCheckCos outside [-1,1]")
	}
	return func(p *Params) { p.CheckCos = c }
}

// WithEpsi sets the point-in-triangle inflation epsilon. Panics if
// negative.
func WithEpsi(epsi float64) Option {
	if epsi < 0 {
		panic("meshparam: WithEpsi(epsi<0)")
	}
	return func(p *Params) { p.Epsi = epsi }
}

// WithSearchConst sets the h(x)-to-search-radius multiplier. Panics if not
// positive.
func WithSearchConst(c float64) Option {
	if c <= 0 {
		panic("meshparam: WithSearchConst(c<=0)")
	}
	return func(p *Params) { p.SearchConst = c }
}

// WithHGlobal sets the fallback global mesh size. Panics if not positive.
func WithHGlobal(h float64) Option {
	if h <= 0 {
		panic("meshparam: WithHGlobal(h<=0)")
	}
	return func(p *Params) { p.HGlobal = h }
}

// WithCoeff installs a user mesh-size oracle h(x). A nil fn is a no-op
// (leaves the default HGlobal-only behavior in place), matching the
// teacher's "ignore nil inputs" convention for non-critical options.
func WithCoeff(fn CoeffFunc) Option {
	return func(p *Params) {
		if fn != nil {
			p.Coeff = fn
		}
	}
}

// DefaultParams returns the documented default Params (§4.6).
func DefaultParams() Params {
	return Params{
		CheckCos:    DefaultCheckCos,
		Epsi:        DefaultEpsi,
		SearchConst: DefaultSearchConst,
		HGlobal:     DefaultHGlobal,
	}
}

// NewParams returns DefaultParams with opts applied in order; later
// options override earlier ones.
func NewParams(opts ...Option) Params {
	p := DefaultParams()
	for _, opt := range opts {
		opt(&p)
	}
	return p
}
