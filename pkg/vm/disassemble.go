package vm

import (
	"fmt"
	"strings"

	"github.com/able-lang/clox-go/pkg/chunk"
)

// Disassemble renders every instruction in c as human-readable text,
// grounded on the reference's disassembleChunk/disassembleInstruction
// (original_source/debug.c), useful both for the trace output and for
// asserting compiler output shape directly in tests.
func Disassemble(c *chunk.Chunk, name string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "== %s ==\n", name)
	for offset := 0; offset < len(c.Code); {
		var line string
		line, offset = disassembleInstruction(c, offset)
		b.WriteString(line)
	}
	return b.String()
}

func disassembleInstruction(c *chunk.Chunk, offset int) (string, int) {
	var b strings.Builder
	fmt.Fprintf(&b, "%04d ", offset)
	if offset > 0 && c.Lines[offset] == c.Lines[offset-1] {
		b.WriteString("   | ")
	} else {
		fmt.Fprintf(&b, "%4d ", c.Lines[offset])
	}

	op := chunk.OpCode(c.Code[offset])
	switch op {
	case chunk.OpConstant:
		return constantInstruction(&b, op.String(), c, offset)
	case chunk.OpNil, chunk.OpTrue, chunk.OpFalse,
		chunk.OpEqual, chunk.OpGreater, chunk.OpLess,
		chunk.OpAdd, chunk.OpSubtract, chunk.OpMultiply, chunk.OpDivide,
		chunk.OpNot, chunk.OpNegate, chunk.OpReturn:
		return simpleInstruction(&b, op.String(), offset)
	default:
		fmt.Fprintf(&b, "Unknown opcode %d\n", op)
		return b.String(), offset + 1
	}
}

func simpleInstruction(b *strings.Builder, name string, offset int) (string, int) {
	fmt.Fprintf(b, "%s\n", name)
	return b.String(), offset + 1
}

func constantInstruction(b *strings.Builder, name string, c *chunk.Chunk, offset int) (string, int) {
	idx := c.Code[offset+1]
	fmt.Fprintf(b, "%-16s %4d '%s'\n", name, idx, c.Constants[idx].String())
	return b.String(), offset + 2
}

// traceStep writes the current stack contents followed by the
// disassembly of the instruction about to execute, matching the
// reference's DEBUG_TRACE_EXECUTION output.
func (vm *VM) traceStep() {
	fmt.Fprint(vm.Trace, "          ")
	for _, v := range vm.stack {
		fmt.Fprintf(vm.Trace, "[ %s ]", v.String())
	}
	fmt.Fprintln(vm.Trace)

	line, _ := disassembleInstruction(vm.chunk, vm.ip)
	fmt.Fprint(vm.Trace, line)
}
