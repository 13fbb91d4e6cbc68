package compiler

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dbajgoric/gap2cuda/diagnostic"
)

// Result is the outcome of compiling one translation unit: the three
// emitted file bodies (empty when no nest in the unit was transformed)
// and every diagnostic raised along the way.
type Result struct {
	// Transformed reports whether at least one nest in the unit was
	// successfully parallelized; the three file bodies below are only
	// meaningful when this is true.
	Transformed bool

	HostFileName       string
	KernelDeclFileName string
	KernelDefFileName  string

	HostFile       string
	KernelDeclFile string
	KernelDefFile  string

	Diagnostics []diagnostic.Diagnostic
}

// fileNames derives the `D/__S_*` triple from a translation unit's source
// file name, per the external-interfaces table.
func fileNames(sourceFile string) (host, decl, def string) {
	dir := filepath.Dir(sourceFile)
	stem := strings.TrimSuffix(filepath.Base(sourceFile), filepath.Ext(sourceFile))
	return filepath.Join(dir, fmt.Sprintf("__%s_c2cuda.cu", stem)),
		filepath.Join(dir, fmt.Sprintf("__%s_kernel_decl_c2cuda.cuh", stem)),
		filepath.Join(dir, fmt.Sprintf("__%s_kernel_def_c2cuda.cu", stem))
}

// declGuard builds the include guard name for the kernel declarations
// header: the uppercased stem of its own file name.
func declGuard(declFileName string) string {
	stem := strings.TrimSuffix(filepath.Base(declFileName), filepath.Ext(declFileName))
	return strings.ToUpper(strings.TrimPrefix(stem, "__")) + "_H"
}
