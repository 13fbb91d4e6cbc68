package codegen

import (
	"fmt"
	"strings"

	"github.com/dbajgoric/gap2cuda/rewriter"
)

// kernelParams returns the parameter list shared by the kernel
// prototype and definition: one pointer per array in parameter order,
// followed by one scalar int per host-sequential index (inner-par's
// dependence-carrying loop, passed in fresh on every launch).
func kernelParams(rw *rewriter.Rewritten, shape nestShape, arrays []arrayParam) []string {
	params := make([]string, 0, len(arrays)+1)
	for _, p := range arrays {
		params = append(params, fmt.Sprintf("%s* %s", p.decl.ElemType(), deviceName(p.decl)))
	}
	for _, ix := range hostSeqParams(rw, shape) {
		params = append(params, "int "+ix.Name)
	}
	return params
}

// buildKernelPrototype renders the `__global__ void name(params);`
// declaration that goes into the emitted .cuh header.
func buildKernelPrototype(rw *rewriter.Rewritten, shape nestShape, arrays []arrayParam, name string) string {
	return fmt.Sprintf("__global__ void %s(%s);\n", name, strings.Join(kernelParams(rw, shape, arrays), ", "))
}

// buildKernelDefinition renders the full kernel body: one thread-offset
// index computation per parallel loop (innermost parallel loop mapped
// to threadIdx.x, the next to .y, the next to .z, per
// BuildGridDimVarDecl's documented reverse mapping), a bounds guard so
// an over-provisioned grid never touches an out-of-range element, any
// remaining loops as a sequential sub-nest inside the guard (outer-par
// only), and the assignment statements at the innermost level.
func buildKernelDefinition(rw *rewriter.Rewritten, shape nestShape, arrays []arrayParam, name string) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "__global__ void %s(%s)\n{\n", name, strings.Join(kernelParams(rw, shape, arrays), ", "))

	var guards []string
	di := 0
	for i := shape.parEnd - 1; i >= shape.parStart && di < 3; i-- {
		ix := rw.Indices[i]
		lower, err := renderBoundSide(rw.Bounds[i].Lower, rw.Indices, "int", true)
		if err != nil {
			return "", err
		}
		upper, err := renderBoundSide(rw.Bounds[i].Upper, rw.Indices, "int", false)
		if err != nil {
			return "", err
		}
		dim := blockDimFieldNames[di]
		fmt.Fprintf(&b, "    int %s = blockIdx.%s*blockDim.%s + threadIdx.%s + %s;\n", ix.Name, dim, dim, dim, lower)
		guards = append(guards, fmt.Sprintf("%s < %s", ix.Name, upper))
		di++
	}
	fmt.Fprintf(&b, "    if (%s) {\n", strings.Join(guards, " && "))

	indent := "        "
	closeBraces := 0
	for i := shape.kernelSeqStart; i < shape.kernelSeqEnd; i++ {
		ix := rw.Indices[i]
		lower, err := renderBoundSide(rw.Bounds[i].Lower, rw.Indices, "int", true)
		if err != nil {
			return "", err
		}
		upper, err := renderBoundSide(rw.Bounds[i].Upper, rw.Indices, "int", false)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "%sfor (int %s = %s; %s < %s; ++%s) {\n", indent, ix.Name, lower, ix.Name, upper, ix.Name)
		indent += "    "
		closeBraces++
	}

	for _, a := range rw.Assignments {
		stmt, err := renderAssignment(a, rw.Indices)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "%s%s\n", indent, stmt)
	}

	for ; closeBraces > 0; closeBraces-- {
		indent = indent[:len(indent)-4]
		fmt.Fprintf(&b, "%s}\n", indent)
	}
	b.WriteString("    }\n")
	b.WriteString("}\n")
	return b.String(), nil
}
