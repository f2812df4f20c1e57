package boundary

// Option configures Assemble's chain-resolution behavior, following the
// teacher's builder.BuilderOption functional-options idiom.
type Option func(*config)

type config struct {
	deterministicOrder bool
}

func newConfig(opts ...Option) config {
	c := config{}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithDeterministicOrder sorts each subdomain's sides before chaining, so
// which side starts each chain (when a subdomain has more than one closed
// chain, e.g. an outer boundary plus holes) is reproducible across runs
// rather than dependent on input order.
func WithDeterministicOrder() Option {
	return func(c *config) { c.deterministicOrder = true }
}
