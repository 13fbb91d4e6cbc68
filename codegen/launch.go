package codegen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dbajgoric/gap2cuda/astiface"
	"github.com/dbajgoric/gap2cuda/rewriter"
)

// arrayParam is one array the rewritten nest reads or writes, tagged
// with which directions it needs copied across the host/device
// boundary.
type arrayParam struct {
	decl     astiface.Decl
	isInput  bool
	isOutput bool
}

// collectArrayParams merges a nest's input and output array sets into
// one parameter list ordered by declaration name, so every emitted
// piece (host invocation, prototype, definition) agrees on parameter
// order without passing a side channel between them.
func collectArrayParams(rw *rewriter.Rewritten) []arrayParam {
	byHandle := make(map[astiface.NodeHandle]*arrayParam)
	var order []astiface.NodeHandle
	get := func(h astiface.NodeHandle, d astiface.Decl) *arrayParam {
		p, ok := byHandle[h]
		if !ok {
			p = &arrayParam{decl: d}
			byHandle[h] = p
			order = append(order, h)
		}
		return p
	}
	for h, d := range rw.Nest.InputArrays {
		get(h, d).isInput = true
	}
	for h, d := range rw.Nest.OutputArrays {
		get(h, d).isOutput = true
	}
	sort.Slice(order, func(i, j int) bool {
		return byHandle[order[i]].decl.Name() < byHandle[order[j]].decl.Name()
	})

	params := make([]arrayParam, len(order))
	for i, h := range order {
		params[i] = *byHandle[h]
	}
	return params
}

func totalSize(d astiface.Decl) int {
	n := 1
	for _, s := range d.StaticSizes() {
		n *= s
	}
	return n
}

func deviceName(d astiface.Decl) string { return "d_" + d.Name() }

// hostSeqParams returns the index variables that become extra scalar
// kernel arguments because they never reach the device as a thread
// dimension: for inner-par, the single dependence-carrying loop the
// host wraps around repeated kernel launches.
func hostSeqParams(rw *rewriter.Rewritten, shape nestShape) []rewriter.Index {
	if !shape.hasHostSeq() {
		return nil
	}
	return rw.Indices[shape.hostSeqStart:shape.hostSeqEnd]
}

var blockDimFieldNames = []string{"x", "y", "z"}

// buildHostInvocation renders the block of host code that replaces the
// original outermost for statement: device allocation, host-to-device
// transfer of every array the nest reads, launch configuration,
// the kernel launch itself (wrapped in a host-side sequential loop for
// inner-par), device-to-host transfer of every array the nest writes,
// and device deallocation. Host static arrays are already contiguous in
// row-major order, matching this package's flat device-buffer layout
// exactly, so no intermediate packing loop is needed on the host side -
// only the device-side flat indexing computed in kernel.go needs
// explicit stride arithmetic.
func buildHostInvocation(rw *rewriter.Rewritten, shape nestShape, kernelName string) (string, error) {
	params := collectArrayParams(rw)
	var b strings.Builder

	for _, p := range params {
		fmt.Fprintf(&b, "%s* %s;\n", p.decl.ElemType(), deviceName(p.decl))
		fmt.Fprintf(&b, "cudaMalloc((void**)&%s, sizeof(%s)*%d);\n", deviceName(p.decl), p.decl.ElemType(), totalSize(p.decl))
	}
	for _, p := range params {
		if !p.isInput {
			continue
		}
		fmt.Fprintf(&b, "cudaMemcpy(%s, %s, sizeof(%s)*%d, cudaMemcpyHostToDevice);\n",
			deviceName(p.decl), p.decl.Name(), p.decl.ElemType(), totalSize(p.decl))
	}

	fmt.Fprintf(&b, "dim3 __block_dim(%d, %d, %d);\n", shape.block[0], shape.block[1], shape.block[2])

	gridExprs := []string{"1", "1", "1"}
	di := 0
	for i := shape.parEnd - 1; i >= shape.parStart && di < 3; i-- {
		lower, err := renderBoundSide(rw.Bounds[i].Lower, rw.Indices, "int", true)
		if err != nil {
			return "", err
		}
		upper, err := renderBoundSide(rw.Bounds[i].Upper, rw.Indices, "int", false)
		if err != nil {
			return "", err
		}
		iterCount := fmt.Sprintf("(%s - %s)", upper, lower)
		dim := blockDimFieldNames[di]
		gridExprs[di] = fmt.Sprintf("((%s) + __block_dim.%s - 1) / __block_dim.%s", iterCount, dim, dim)
		di++
	}
	fmt.Fprintf(&b, "dim3 __grid_dim(%s, %s, %s);\n", gridExprs[0], gridExprs[1], gridExprs[2])

	args := make([]string, 0, len(params)+1)
	for _, p := range params {
		args = append(args, deviceName(p.decl))
	}
	hostSeq := hostSeqParams(rw, shape)
	for _, ix := range hostSeq {
		args = append(args, ix.Name)
	}
	launch := fmt.Sprintf("%s<<<__grid_dim, __block_dim>>>(%s);\n", kernelName, strings.Join(args, ", "))

	if len(hostSeq) == 0 {
		b.WriteString(launch)
	} else {
		ix := hostSeq[0]
		lower, err := renderBoundSide(rw.Bounds[shape.hostSeqStart].Lower, rw.Indices, "int", true)
		if err != nil {
			return "", err
		}
		upper, err := renderBoundSide(rw.Bounds[shape.hostSeqStart].Upper, rw.Indices, "int", false)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "for (int %s = %s; %s < %s; ++%s) {\n", ix.Name, lower, ix.Name, upper, ix.Name)
		b.WriteString(launch)
		b.WriteString("}\n")
	}

	b.WriteString("cudaDeviceSynchronize();\n")
	for _, p := range params {
		if !p.isOutput {
			continue
		}
		fmt.Fprintf(&b, "cudaMemcpy(%s, %s, sizeof(%s)*%d, cudaMemcpyDeviceToHost);\n",
			p.decl.Name(), deviceName(p.decl), p.decl.ElemType(), totalSize(p.decl))
	}
	for _, p := range params {
		fmt.Fprintf(&b, "cudaFree(%s);\n", deviceName(p.decl))
	}

	return b.String(), nil
}

// buildKernelName builds the `__<function-name>_c2cuda_kernel` name from
// the external-interfaces naming convention, suffixed with `_<index>`
// whenever the nest index is greater than zero (a function's first
// parallelized nest keeps the bare name).
func buildKernelName(cfg config) string {
	name := fmt.Sprintf("__%s_c2cuda_kernel", cfg.functionName)
	if cfg.nestIndex > 0 {
		name = fmt.Sprintf("%s_%d", name, cfg.nestIndex)
	}
	return name
}
