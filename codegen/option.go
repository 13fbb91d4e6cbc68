package codegen

// Option configures Generate.
type Option func(*config)

type config struct {
	functionName string
	nestIndex    int
}

func defaultConfig() config {
	return config{functionName: "fn"}
}

// WithFunctionName sets the enclosing function's name, used to build the
// kernel name `__<function-name>_c2cuda_kernel` per the naming
// convention in the external interfaces table.
func WithFunctionName(name string) Option {
	return func(c *config) { c.functionName = name }
}

// WithNestIndex disambiguates multiple parallelized nests within the
// same function: the kernel name gets a `_<index>` suffix for every
// index greater than zero. The external-interfaces table only documents
// the single-nest-per-function naming scheme; this is the minimal
// extension needed so a function with more than one transformed nest
// does not emit two identically named kernels.
func WithNestIndex(i int) Option {
	return func(c *config) { c.nestIndex = i }
}
