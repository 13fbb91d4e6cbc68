// Package transform turns a nest's set of confirmed dependence distance
// vectors into a unimodular transformation matrix U that, applied to the
// nest's original index vector, exposes the maximum legal parallelism:
// either the outermost k new loops run free of loop-carried dependences
// (outer-par), or only the outermost new loop carries them and every
// inner loop runs free (inner-par), or the nest cannot be legally
// transformed at all. Plan picks between the two per the usual
// preference (an outer-par with at least two parallel loops beats
// inner-par), and
// NewBounds derives the transformed nest's loop limits as Fourier-Motzkin
// bound descriptions over U's inverse.
package transform
