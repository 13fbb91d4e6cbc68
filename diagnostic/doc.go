// Package diagnostic formats and accumulates the informational messages
// compiler.Run emits when a loop nest cannot be parallelized: every
// sentinel error surfaced by frontend, fm/diophantine and transform is
// caught at the driver boundary and turned into one Diagnostic rather
// than aborting the rest of the translation unit.
package diagnostic
