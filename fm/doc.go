// Package fm performs Fourier-Motzkin elimination over systems x*A <= c
// (x a row of reals, A an m x n rational coefficient matrix, c a 1 x n
// right-hand side), deciding real feasibility and, for a feasible system,
// producing per-variable lower/upper bound descriptions in terms of the
// other, not-yet-eliminated variables. Bounded integer enumeration over
// the resulting bound set is built on top in enumerate.go.
//
// Elimination proceeds one variable at a time: partition the system's rows
// by the sign of the eliminated variable's coefficient, normalize each row
// to a unit coefficient, then combine every negative row with every
// positive row to produce the next system, one size smaller.
package fm
