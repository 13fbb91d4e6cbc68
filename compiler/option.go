package compiler

// Option configures Run.
type Option func(*config)

type config struct {
	parallel bool
}

func defaultConfig() config {
	return config{parallel: true}
}

// WithSequential disables the errgroup fan-out across functions,
// analyzing them one at a time in source order instead. Useful for
// deterministic diagnostic ordering in tests.
func WithSequential() Option {
	return func(c *config) { c.parallel = false }
}
