package compiler

import (
	"fmt"
	"strings"

	"github.com/dbajgoric/gap2cuda/affineir"
	"github.com/dbajgoric/gap2cuda/astiface"
	"github.com/dbajgoric/gap2cuda/codegen"
	"github.com/dbajgoric/gap2cuda/depanalysis"
	"github.com/dbajgoric/gap2cuda/depmodel"
	"github.com/dbajgoric/gap2cuda/diagnostic"
	"github.com/dbajgoric/gap2cuda/frontend"
	"github.com/dbajgoric/gap2cuda/rewriter"
	"github.com/dbajgoric/gap2cuda/transform"
	"golang.org/x/sync/errgroup"
)

// singleFunctionUnit adapts one function to astiface.TranslationUnit so
// frontend.CollectCandidates can be reused per-function: the collector
// itself only ever looks at Functions(), never FileName() beyond
// diagnostic rendering, and diagnostics from this wrapper use the real
// unit's file name directly rather than this adapter's.
type singleFunctionUnit struct {
	fileName string
	fn       astiface.Function
}

func (s singleFunctionUnit) FileName() string              { return s.fileName }
func (s singleFunctionUnit) Functions() []astiface.Function { return []astiface.Function{s.fn} }

// funcUnits is one function's contribution to the three emitted files.
type funcUnits struct {
	host  []string
	proto []string
	def   []string
	diags []diagnostic.Diagnostic
}

// Run implements the compiler's overall control flow: each top-level
// function is analyzed independently (in parallel by default, via
// errgroup), its candidate outermost for loops processed in source
// order, and any failure at any step is caught and turned into a
// diagnostic without aborting the rest of the unit.
func Run(tu astiface.TranslationUnit, opts ...Option) (*Result, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	fns := tu.Functions()
	results := make([]funcUnits, len(fns))

	if cfg.parallel {
		var g errgroup.Group
		for i, fn := range fns {
			i, fn := i, fn
			g.Go(func() error {
				results[i] = processFunction(tu.FileName(), fn)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i, fn := range fns {
			results[i] = processFunction(tu.FileName(), fn)
		}
	}

	res := &Result{}
	var host, proto, def []string
	for _, fu := range results {
		host = append(host, fu.host...)
		proto = append(proto, fu.proto...)
		def = append(def, fu.def...)
		res.Diagnostics = append(res.Diagnostics, fu.diags...)
	}

	if len(host) == 0 {
		return res, nil
	}

	res.Transformed = true
	res.HostFileName, res.KernelDeclFileName, res.KernelDefFileName = fileNames(tu.FileName())
	res.HostFile = strings.Join(host, "\n")
	guard := declGuard(res.KernelDeclFileName)
	res.KernelDeclFile = fmt.Sprintf("#ifndef %s\n#define %s\n\n%s\n#endif\n", guard, guard, strings.Join(proto, "\n"))
	res.KernelDefFile = strings.Join(def, "\n")
	return res, nil
}

// processFunction walks one function's candidate outermost for loops in
// source order and runs each through lowering, dependence analysis,
// planning, rewriting and code generation, catching any step's error as
// a diagnostic and moving on to the next candidate.
func processFunction(fileName string, fn astiface.Function) funcUnits {
	var out funcUnits
	candidates := frontend.CollectCandidates(singleFunctionUnit{fileName: fileName, fn: fn})

	tree := frontend.NewScopeTree(fn.Handle())
	collector := frontend.NewNestCollector(tree)
	nestIndex := 0

	for _, header := range candidates {
		loc := header.Location()
		fail := func(err error) {
			out.diags = append(out.diags, diagnostic.Diagnostic{File: loc.File, Line: loc.Line, Message: err.Error()})
		}

		nest, err := collector.Collect(tree.Root().Handle(), header)
		if err != nil {
			fail(err)
			continue
		}

		model, err := depmodel.Build(nest)
		if err != nil {
			fail(err)
			continue
		}

		tOnS, _, err := depanalysis.Analyze(model)
		if err != nil {
			fail(err)
			continue
		}

		dist := make([]affineir.Vector, len(tOnS))
		for i, r := range tOnS {
			dist[i] = r.Distance
		}

		tr, err := transform.Plan(dist, nest.Depth())
		if err != nil {
			fail(err)
			continue
		}

		rw, err := rewriter.Rewrite(nest, tr)
		if err != nil {
			fail(err)
			continue
		}

		unit, err := codegen.Generate(rw, tr, codegen.WithFunctionName(fn.Name()), codegen.WithNestIndex(nestIndex))
		if err != nil {
			fail(err)
			continue
		}
		nestIndex++

		out.host = append(out.host, unit.HostInvocation)
		out.proto = append(out.proto, unit.KernelPrototype)
		out.def = append(out.def, unit.KernelDefinition)
	}

	return out
}
