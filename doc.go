// Package gap2cuda is the analytic core of a source-to-source
// parallelizing compiler: it takes perfect loop nests written in a
// C-like sequential language, proves which loops in the nest may run
// concurrently, and emits the CUDA kernel and host-launch code that
// exploits it.
//
// What it does
//
//	A pipeline of small, focused packages that mirror the classical
//	dependence-based parallelization pipeline:
//
//	  • Exact linear algebra: unimodular row reduction, Diophantine
//	    equation solving, Fourier-Motzkin elimination over the rationals
//	  • Affine intermediate representation: loop headers, subscripts and
//	    linear forms over integer-valued index variables
//	  • Source modeling: a minimal AST-facing interface any front end can
//	    implement, and a collector that lowers candidate loop nests into
//	    the affine IR
//	  • Dependence analysis: distance and direction vectors between every
//	    pair of array references in a nest
//	  • Transformation planning: a unimodular skewing matrix that exposes
//	    as many parallel loops as the nest's dependences allow
//	  • Rewriting and code generation: the transformed nest's bounds and
//	    subscripts, rendered as a CUDA kernel and its host invocation
//
// Why choose dependence-based parallelization
//
//   - Correctness by construction — a loop is only parallelized once its
//     dependence distances are proven safe under the chosen transform
//   - No runtime guessing — all analysis happens ahead of time, on the
//     loop nest's own index arithmetic
//   - Narrow, composable packages — each step of the pipeline is testable
//     and usable on its own
//
// Everything is organized under one subpackage per pipeline stage:
//
//	bigrat/      — exact integer and rational matrix arithmetic, Hermite/Smith forms
//	diophantine/ — linear Diophantine equation and system solving
//	fm/          — Fourier-Motzkin elimination and integer-point enumeration
//	affineir/    — the affine loop/subscript intermediate representation
//	astiface/    — the source-AST interface a front end implements
//	frontend/    — candidate-nest collection and lowering into affineir
//	depmodel/    — per-nest dependence models (subscript and bound matrices)
//	depanalysis/ — distance-vector extraction from a dependence model
//	transform/   — unimodular transformation planning
//	rewriter/    — applying a planned transform to a nest's subscripts and bounds
//	codegen/     — CUDA kernel and host-invocation rendering
//	diagnostic/  — thread-safe collection of per-nest compilation diagnostics
//	compiler/    — the driver tying every stage together per translation unit
//
// See compiler/driver_test.go for a minimal in-memory front end exercising
// the whole pipeline against a synthetic loop nest.
package gap2cuda
