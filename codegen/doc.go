// Package codegen renders a rewriter.Rewritten nest and the
// transform.Transform that produced it into the three textual pieces a
// caller assembles into the emitted translation unit: the host
// invocation block that replaces the original outermost for loop, a
// kernel prototype, and the matching kernel definition.
//
// Text is built directly as Go strings rather than through a second AST
// layer: this module's astiface is an interface boundary with no
// concrete parser behind it, so there is nothing to hand the generated
// code back to for pretty-printing.
package codegen
