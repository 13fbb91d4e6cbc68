// Package astiface declares the surface the analyzer requires from a
// source-language AST: traversal of top-level functions, statements,
// expressions and declarations, and compile-time constant evaluation.
// Nothing in this module implements a real C/C-like parser — that is an
// external collaborator reached only through these interfaces (see
// SPEC_FULL.md "External interfaces"). In-memory fakes for tests live in
// the packages' own _test.go files (e.g. compiler/driver_test.go).
//
// Every node is addressed by a NodeHandle rather than a language-native
// pointer: the concrete provider owns its AST in whatever arena or tree
// it likes, and callers in this module only ever carry around the
// opaque index, never a borrowed reference into provider memory.
package astiface
