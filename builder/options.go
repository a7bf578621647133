package builder

import "strconv"

// IDFn produces the node label for index i. Implementations must be
// pure: the same index always yields the same label, or determinism is
// lost.
type IDFn func(i int) string

// WeightFn produces the weight of the edge between indices i and j.
// Must be pure for the same reason.
type WeightFn func(i, j int) int64

// Option adjusts the builder configuration before construction.
// Options are applied left-to-right.
type Option func(*config)

// WithIDFn overrides the default "v0", "v1", … label scheme.
func WithIDFn(fn IDFn) Option {
	return func(c *config) { c.idFn = fn }
}

// WithWeightFn overrides the default constant weight of 1.
func WithWeightFn(fn WeightFn) Option {
	return func(c *config) { c.weightFn = fn }
}

// config is the resolved, immutable builder configuration.
type config struct {
	idFn     IDFn
	weightFn WeightFn
}

// newConfig resolves opts over the defaults. A nil option is a
// programmer error and is reported, not skipped.
func newConfig(opts ...Option) (config, error) {
	cfg := config{
		idFn:     func(i int) string { return "v" + strconv.Itoa(i) },
		weightFn: func(i, j int) int64 { return 1 },
	}
	for _, opt := range opts {
		if opt == nil {
			return cfg, ErrNilOption
		}
		opt(&cfg)
	}

	return cfg, nil
}
