// Package vm implements the stack-based bytecode interpreter that
// executes a chunk.Chunk produced by pkg/compiler.
package vm

import (
	"fmt"
	"io"

	"github.com/able-lang/clox-go/pkg/chunk"
	"github.com/able-lang/clox-go/pkg/compiler"
	"github.com/able-lang/clox-go/pkg/diag"
	"github.com/able-lang/clox-go/pkg/value"
)

// StackMax bounds the operand stack. Expression-only programs never come
// close to this; it exists so deeply right-nested expressions fail with a
// runtime error instead of an unbounded Go slice growth (spec.md §4.4,
// §9: the reference leaves this unchecked, this implementation does not).
const StackMax = 256

// VM executes chunks over a fixed-capacity operand stack. It is
// initialized once and reused across Interpret calls; only the stack is
// reset per call, matching spec.md §3's VM lifecycle.
type VM struct {
	stack []value.Value

	chunk *chunk.Chunk
	ip    int

	// Trace, when non-nil, receives a disassembly of each successfully
	// compiled chunk, then a stack dump and disassembled instruction
	// before every dispatch (spec.md §4.4, §8 debug flag).
	Trace io.Writer
	// Stdout receives OP_RETURN's printed result. Defaults to nil,
	// meaning callers must set it (the CLI wires os.Stdout).
	Stdout io.Writer
}

// New returns a VM with an empty stack, ready for repeated Interpret
// calls.
func New() *VM {
	return &VM{stack: make([]value.Value, 0, StackMax)}
}

// Interpret compiles source and, on success, executes the resulting
// chunk. It returns the classification spec.md's InterpretResult names,
// plus whichever diagnostics apply.
func (vm *VM) Interpret(source string) (diag.Result, []*diag.CompileError, *diag.RuntimeError) {
	c := chunk.New()
	ok, errs := compiler.Compile(source, c)
	if !ok {
		return diag.CompileErrorResult, errs, nil
	}

	if vm.Trace != nil {
		fmt.Fprint(vm.Trace, Disassemble(c, "code"))
	}

	vm.chunk = c
	vm.ip = 0
	vm.stack = vm.stack[:0]

	if rtErr := vm.run(); rtErr != nil {
		return diag.RuntimeErrorResult, nil, rtErr
	}
	return diag.Ok, nil, nil
}

func (vm *VM) push(v value.Value) error {
	if len(vm.stack) >= StackMax {
		return fmt.Errorf("stack overflow")
	}
	vm.stack = append(vm.stack, v)
	return nil
}

func (vm *VM) pop() value.Value {
	n := len(vm.stack)
	v := vm.stack[n-1]
	vm.stack = vm.stack[:n-1]
	return v
}

func (vm *VM) peek(distance int) value.Value {
	return vm.stack[len(vm.stack)-1-distance]
}

func (vm *VM) resetStack() {
	vm.stack = vm.stack[:0]
}

func (vm *VM) readByte() byte {
	b := vm.chunk.Code[vm.ip]
	vm.ip++
	return b
}

func (vm *VM) currentLine() int {
	if vm.ip == 0 {
		return vm.chunk.Lines[0]
	}
	return vm.chunk.Lines[vm.ip-1]
}

func (vm *VM) runtimeError(format string, args ...interface{}) *diag.RuntimeError {
	msg := fmt.Sprintf(format, args...)
	line := vm.currentLine()
	vm.resetStack()
	return &diag.RuntimeError{Line: line, Message: msg}
}

// run executes chunk.Code from vm.ip until OP_RETURN or a runtime fault.
func (vm *VM) run() *diag.RuntimeError {
	for {
		if vm.Trace != nil {
			vm.traceStep()
		}

		op := chunk.OpCode(vm.readByte())
		switch op {
		case chunk.OpConstant:
			idx := vm.readByte()
			if err := vm.push(vm.chunk.Constants[idx]); err != nil {
				return vm.runtimeError("%s", err.Error())
			}
		case chunk.OpNil:
			if err := vm.push(value.Nil); err != nil {
				return vm.runtimeError("%s", err.Error())
			}
		case chunk.OpTrue:
			if err := vm.push(value.Bool(true)); err != nil {
				return vm.runtimeError("%s", err.Error())
			}
		case chunk.OpFalse:
			if err := vm.push(value.Bool(false)); err != nil {
				return vm.runtimeError("%s", err.Error())
			}
		case chunk.OpEqual:
			b := vm.pop()
			a := vm.pop()
			if err := vm.push(value.Bool(value.Equal(a, b))); err != nil {
				return vm.runtimeError("%s", err.Error())
			}
		case chunk.OpGreater:
			if rtErr := vm.binaryCompare(func(a, b float64) bool { return a > b }); rtErr != nil {
				return rtErr
			}
		case chunk.OpLess:
			if rtErr := vm.binaryCompare(func(a, b float64) bool { return a < b }); rtErr != nil {
				return rtErr
			}
		case chunk.OpAdd:
			if rtErr := vm.binaryNumeric(func(a, b float64) float64 { return a + b }); rtErr != nil {
				return rtErr
			}
		case chunk.OpSubtract:
			if rtErr := vm.binaryNumeric(func(a, b float64) float64 { return a - b }); rtErr != nil {
				return rtErr
			}
		case chunk.OpMultiply:
			if rtErr := vm.binaryNumeric(func(a, b float64) float64 { return a * b }); rtErr != nil {
				return rtErr
			}
		case chunk.OpDivide:
			if rtErr := vm.binaryNumeric(func(a, b float64) float64 { return a / b }); rtErr != nil {
				return rtErr
			}
		case chunk.OpNot:
			v := vm.pop()
			if err := vm.push(value.Bool(v.IsFalsey())); err != nil {
				return vm.runtimeError("%s", err.Error())
			}
		case chunk.OpNegate:
			if !vm.peek(0).IsNumber() {
				return vm.runtimeError("Operand must be a number.")
			}
			v := vm.pop()
			if err := vm.push(value.Number(-v.AsNumber())); err != nil {
				return vm.runtimeError("%s", err.Error())
			}
		case chunk.OpReturn:
			result := vm.pop()
			if vm.Stdout != nil {
				fmt.Fprintln(vm.Stdout, result.String())
			}
			return nil
		default:
			return vm.runtimeError("Unknown opcode %d.", op)
		}
	}
}

func (vm *VM) binaryNumeric(op func(a, b float64) float64) *diag.RuntimeError {
	if !vm.peek(0).IsNumber() || !vm.peek(1).IsNumber() {
		return vm.runtimeError("Operands must be numbers.")
	}
	b := vm.pop()
	a := vm.pop()
	if err := vm.push(value.Number(op(a.AsNumber(), b.AsNumber()))); err != nil {
		return vm.runtimeError("%s", err.Error())
	}
	return nil
}

func (vm *VM) binaryCompare(op func(a, b float64) bool) *diag.RuntimeError {
	if !vm.peek(0).IsNumber() || !vm.peek(1).IsNumber() {
		return vm.runtimeError("Operands must be numbers.")
	}
	b := vm.pop()
	a := vm.pop()
	if err := vm.push(value.Bool(op(a.AsNumber(), b.AsNumber()))); err != nil {
		return vm.runtimeError("%s", err.Error())
	}
	return nil
}
