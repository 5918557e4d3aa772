// Package chunk implements the bytecode container the compiler emits
// into and the VM executes: a flat byte array, a parallel line table,
// and a constant pool.
package chunk

import "github.com/able-lang/clox-go/pkg/value"

// OpCode identifies a single bytecode instruction.
type OpCode byte

const (
	OpConstant OpCode = iota
	OpNil
	OpTrue
	OpFalse
	OpEqual
	OpGreater
	OpLess
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpNot
	OpNegate
	OpReturn
)

var opNames = map[OpCode]string{
	OpConstant: "OP_CONSTANT", OpNil: "OP_NIL", OpTrue: "OP_TRUE",
	OpFalse: "OP_FALSE", OpEqual: "OP_EQUAL", OpGreater: "OP_GREATER",
	OpLess: "OP_LESS", OpAdd: "OP_ADD", OpSubtract: "OP_SUBTRACT",
	OpMultiply: "OP_MULTIPLY", OpDivide: "OP_DIVIDE", OpNot: "OP_NOT",
	OpNegate: "OP_NEGATE", OpReturn: "OP_RETURN",
}

func (op OpCode) String() string {
	if s, ok := opNames[op]; ok {
		return s
	}
	return "OP_UNKNOWN"
}

// MaxConstants is the number of entries a single chunk's byte-indexed
// constant pool can hold.
const MaxConstants = 256

// Chunk is an append-only bytecode buffer produced by the compiler and
// executed read-only by the VM. Code and Lines always have equal length:
// Lines[i] is the source line that produced Code[i].
type Chunk struct {
	Code      []byte
	Lines     []int
	Constants []value.Value
}

// New returns an empty Chunk ready to be written to.
func New() *Chunk {
	return &Chunk{}
}

// Write appends a single bytecode byte and its originating source line.
// Growth is implicit via Go's slice append, which grows capacity
// geometrically; the reference's hand-rolled start-at-8-then-double
// schedule is not reproduced exactly.
func (c *Chunk) Write(b byte, line int) {
	c.Code = append(c.Code, b)
	c.Lines = append(c.Lines, line)
}

// WriteOp is Write for an OpCode operand.
func (c *Chunk) WriteOp(op OpCode, line int) {
	c.Write(byte(op), line)
}

// AddConstant appends v to the constant pool and returns its index. The
// caller is responsible for checking the index still fits in a byte
// (see MaxConstants); AddConstant itself never fails.
func (c *Chunk) AddConstant(v value.Value) int {
	c.Constants = append(c.Constants, v)
	return len(c.Constants) - 1
}

// Len reports the number of bytes emitted so far.
func (c *Chunk) Len() int { return len(c.Code) }
