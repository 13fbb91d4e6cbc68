// Package rewriter turns a validated perfect loop nest and a planned
// unimodular transformation into the index variables, bound system, and
// substituted subscripts of the transformed nest, ready for codegen to
// emit as CUDA source.
//
// It never mutates the original AST: index substitution and bound
// reconstruction are carried out algebraically over affineir's
// LinearForm/Subscript values, producing a fresh, detached Rewritten
// value. This module's astiface is an interface boundary rather than a
// concrete AST rewriter's internals could splice new declarations into
// directly, so the new index variables are synthesized as plain Index
// values instead of real astiface.Decl nodes.
package rewriter
