package codegen

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/dbajgoric/gap2cuda/affineir"
	"github.com/dbajgoric/gap2cuda/bigrat"
	"github.com/dbajgoric/gap2cuda/fm"
	"github.com/dbajgoric/gap2cuda/rewriter"
	"github.com/dbajgoric/gap2cuda/transform"
)

// blockDim returns the fixed block dimensions used for a kernel
// launching p parallel loops, per the launch-configuration table:
// 512x1x1 for one loop, 32x16x1 for two, 8x8x8 for three.
func blockDim(p int) [3]int {
	switch p {
	case 1:
		return [3]int{512, 1, 1}
	case 2:
		return [3]int{32, 16, 1}
	default:
		return [3]int{8, 8, 8}
	}
}

// nestShape partitions a rewritten nest's depth index positions into
// the three roles code generation cares about: the contiguous run of
// dependence-free loops that become thread/block dimensions, an outer
// host-side sequential loop (inner-par only, wrapping repeated kernel
// launches around the single dependence-carrying loop), and an inner
// kernel-side sequential sub-nest (outer-par only, when the dependence-
// free prefix leaves loops unaccounted for). The kernel-side index walk
// starts at 1 for inner-par, skipping the dependence-carrying loop
// entirely since it never appears inside the kernel, and at 0 for
// outer-par.
type nestShape struct {
	depth                        int
	parStart, parEnd             int
	hostSeqStart, hostSeqEnd     int
	kernelSeqStart, kernelSeqEnd int
	block                        [3]int
}

func newNestShape(kind transform.Kind, depth, k int) (nestShape, error) {
	if k > 3 {
		return nestShape{}, ErrTooManyParallelLoops
	}
	s := nestShape{depth: depth, block: blockDim(k)}
	if kind == transform.InnerPar {
		s.parStart, s.parEnd = depth-k, depth
		s.hostSeqStart, s.hostSeqEnd = 0, depth-k
		s.kernelSeqStart, s.kernelSeqEnd = depth, depth
	} else {
		s.parStart, s.parEnd = 0, k
		s.hostSeqStart, s.hostSeqEnd = 0, 0
		s.kernelSeqStart, s.kernelSeqEnd = k, depth
	}
	return s, nil
}

func (s nestShape) parCount() int       { return s.parEnd - s.parStart }
func (s nestShape) hasHostSeq() bool    { return s.hostSeqEnd > s.hostSeqStart }
func (s nestShape) hasKernelSeq() bool  { return s.kernelSeqEnd > s.kernelSeqStart }

// renderLinearForm renders f as a parenthesized sum over idx (only
// idx's own entries are ever looked up), skipping zero coefficients.
// Parenthesizing preserves operator precedence wherever the result is
// spliced into a larger expression, per the rewriter's "wrap each
// substitution in parentheses" rule.
func renderLinearForm(f *affineir.LinearForm, idx []rewriter.Index) string {
	var b strings.Builder
	appendTerm := func(abs string, sign string) {
		if b.Len() == 0 {
			if sign == "-" {
				b.WriteString("-")
			}
		} else {
			b.WriteString(" ")
			b.WriteString(sign)
			b.WriteString(" ")
		}
		b.WriteString(abs)
	}

	for _, ix := range idx {
		c, ok := f.Coeff(ix.Handle)
		if !ok || c.Sign() == 0 {
			continue
		}
		sign := "+"
		abs := new(big.Int).Abs(c)
		if c.Sign() < 0 {
			sign = "-"
		}
		term := ix.Name
		if abs.Cmp(big.NewInt(1)) != 0 {
			term = abs.String() + "*" + ix.Name
		}
		appendTerm(term, sign)
	}

	constant := f.Constant()
	if constant.Sign() != 0 || b.Len() == 0 {
		sign := "+"
		abs := new(big.Int).Abs(constant)
		if constant.Sign() < 0 {
			sign = "-"
		}
		appendTerm(abs.String(), sign)
	}
	return "(" + b.String() + ")"
}

// renderBoundSide renders one BoundSide for loop level i (indices
// should be the full index list; only indices[0:rows-1] is read, per
// BoundSide's enclosing-variable convention) as a single cast-to-
// elemType expression using ceilf/__max_arg for a lower bound or
// floorf/__min_arg for an upper bound. Every upper-bound candidate's
// constant gets +1 before the min, restoring the exclusive `<` loop
// condition the collector normalized away at parse time.
func renderBoundSide(side fm.BoundSide, indices []rewriter.Index, elemType string, isLower bool) (string, error) {
	if side.Unbounded {
		return "", ErrUnboundedBound
	}
	cols := side.Vector.Cols()
	candidates := make([]string, cols)
	for j := 0; j < cols; j++ {
		candidates[j] = renderBoundCandidate(side, indices, j, isLower)
	}

	fn := "floorf"
	if isLower {
		fn = "ceilf"
	}
	inner := candidates[0]
	if len(candidates) > 1 {
		pick := "__min_arg"
		if isLower {
			pick = "__max_arg"
		}
		inner = fmt.Sprintf("%s(%d, (float[]){%s})", pick, len(candidates), strings.Join(candidates, ", "))
	}
	return fmt.Sprintf("(%s)%s(%s)", elemType, fn, inner), nil
}

func renderBoundCandidate(side fm.BoundSide, indices []rewriter.Index, col int, isLower bool) string {
	rows := side.Matrix.Rows() - 1 // the last row is the documented zero pad
	var b strings.Builder
	for r := 0; r < rows; r++ {
		coeff, _ := side.Matrix.At(r, col)
		if coeff.IsZero() {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(" + ")
		}
		fmt.Fprintf(&b, "%s*%s", coeff.String(), indices[r].Name)
	}

	c, _ := side.Vector.At(0, col)
	if !isLower {
		c = c.Add(bigrat.NewRatInt(1))
	}
	if !c.IsZero() || b.Len() == 0 {
		if b.Len() > 0 && c.Sign() < 0 {
			b.WriteString(" - ")
			c = c.Neg()
		} else if b.Len() > 0 {
			b.WriteString(" + ")
		}
		b.WriteString(c.String())
	}
	return b.String()
}

// flatSubscriptExpr builds the flattened 1-D device-buffer index for a
// subscript whose dimension sizes are sizes (outermost first): dim i's
// already-rendered form is multiplied by the product of every size
// strictly to its right, and the per-dimension terms are summed, per
// the k1.S2....Sd + ... + kd flattening pattern.
func flatSubscriptExpr(forms []string, sizes []int) string {
	terms := make([]string, 0, len(forms))
	for i, f := range forms {
		mult := 1
		for j := i + 1; j < len(sizes); j++ {
			mult *= sizes[j]
		}
		if mult == 1 {
			terms = append(terms, f)
		} else {
			terms = append(terms, fmt.Sprintf("%s*%d", f, mult))
		}
	}
	return strings.Join(terms, " + ")
}
