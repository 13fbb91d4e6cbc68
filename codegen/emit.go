package codegen

import (
	"github.com/dbajgoric/gap2cuda/rewriter"
	"github.com/dbajgoric/gap2cuda/transform"
)

// Unit is the generated output for one parallelized nest: the three
// pieces the external-interfaces table says get stitched into
// `D/__S_c2cuda.cu`, `D/__S_kernel_decl_c2cuda.cuh` and
// `D/__S_kernel_def_c2cuda.cu` respectively.
type Unit struct {
	KernelName       string
	HostInvocation   string
	KernelPrototype  string
	KernelDefinition string
}

// Generate renders rw (the rewritten nest) and t (the transform that
// produced it) into a Unit. opts configures the enclosing function name
// and, when a function parallelizes more than one nest, a disambiguating
// nest index.
func Generate(rw *rewriter.Rewritten, t *transform.Transform, opts ...Option) (*Unit, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	depth := rw.Nest.Depth()
	shape, err := newNestShape(t.Kind, depth, t.K)
	if err != nil {
		return nil, err
	}

	name := buildKernelName(cfg)
	arrays := collectArrayParams(rw)

	hostInvocation, err := buildHostInvocation(rw, shape, name)
	if err != nil {
		return nil, err
	}
	prototype := buildKernelPrototype(rw, shape, arrays, name)
	definition, err := buildKernelDefinition(rw, shape, arrays, name)
	if err != nil {
		return nil, err
	}

	return &Unit{
		KernelName:       name,
		HostInvocation:   hostInvocation,
		KernelPrototype:  prototype,
		KernelDefinition: definition,
	}, nil
}
