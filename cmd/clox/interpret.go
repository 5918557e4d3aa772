package main

import (
	"fmt"
	"os"

	"github.com/able-lang/clox-go/pkg/config"
	"github.com/able-lang/clox-go/pkg/diag"
	"github.com/able-lang/clox-go/pkg/vm"
)

func newVM(cfg *config.Config) *vm.VM {
	v := vm.New()
	v.Stdout = os.Stdout
	if cfg.Trace {
		v.Trace = os.Stderr
	}
	return v
}

// interpretAndReport runs source through v and prints any diagnostics to
// stderr exactly as spec.md §6/§7 specifies, returning the exit code
// spec.md §6 maps InterpretResult to.
func interpretAndReport(v *vm.VM, source string) int {
	result, compileErrs, runtimeErr := v.Interpret(source)
	switch result {
	case diag.Ok:
		return exitOK
	case diag.CompileErrorResult:
		for _, e := range compileErrs {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		return exitCompileError
	case diag.RuntimeErrorResult:
		fmt.Fprintln(os.Stderr, runtimeErr.Error())
		return exitRuntimeError
	default:
		return exitRuntimeError
	}
}
