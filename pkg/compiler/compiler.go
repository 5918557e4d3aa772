// Package compiler implements a single-pass Pratt parser that emits
// bytecode directly into a chunk.Chunk as it recognizes an expression,
// with no intermediate AST.
package compiler

import (
	"fmt"
	"strconv"

	"github.com/able-lang/clox-go/pkg/chunk"
	"github.com/able-lang/clox-go/pkg/diag"
	"github.com/able-lang/clox-go/pkg/scanner"
	"github.com/able-lang/clox-go/pkg/token"
	"github.com/able-lang/clox-go/pkg/value"
)

// Precedence orders binding strength low to high; parsePrecedence only
// consumes infix operators whose precedence is at least the requested
// level.
type Precedence int

const (
	PrecNone Precedence = iota
	PrecAssignment
	PrecOr
	PrecAnd
	PrecEquality
	PrecComparison
	PrecTerm
	PrecFactor
	PrecUnary
	PrecCall
	PrecPrimary
)

// action names the parser handler a token kind dispatches to. The
// reference stores raw function pointers in its rule table; an enum plus
// a switch in dispatchPrefix/dispatchInfix gives the same O(1) dispatch
// while keeping every handler statically type-checked (spec.md §9).
type action int

const (
	actionNone action = iota
	actionGrouping
	actionUnary
	actionBinary
	actionNumber
	actionLiteral
)

type rule struct {
	prefix     action
	infix      action
	precedence Precedence
}

var rules = map[token.Kind]rule{
	token.LeftParen:    {prefix: actionGrouping},
	token.Minus:        {prefix: actionUnary, infix: actionBinary, precedence: PrecTerm},
	token.Plus:         {infix: actionBinary, precedence: PrecTerm},
	token.Slash:        {infix: actionBinary, precedence: PrecFactor},
	token.Star:         {infix: actionBinary, precedence: PrecFactor},
	token.Bang:         {prefix: actionUnary},
	token.BangEqual:    {infix: actionBinary, precedence: PrecEquality},
	token.EqualEqual:   {infix: actionBinary, precedence: PrecEquality},
	token.Greater:      {infix: actionBinary, precedence: PrecComparison},
	token.GreaterEqual: {infix: actionBinary, precedence: PrecComparison},
	token.Less:         {infix: actionBinary, precedence: PrecComparison},
	token.LessEqual:    {infix: actionBinary, precedence: PrecComparison},
	token.Number:       {prefix: actionNumber},
	token.False:        {prefix: actionLiteral},
	token.Nil:          {prefix: actionLiteral},
	token.True:         {prefix: actionLiteral},
}

func ruleFor(k token.Kind) rule {
	return rules[k]
}

// Compiler drives a Pratt parser over one Scanner, emitting bytecode into
// one Chunk. It carries the parser state spec.md §3 describes
// ({current, previous, hadError, panicMode}) as fields rather than
// package-level globals, so multiple compiles can run without shared
// mutable state (spec.md §9's "encapsulate as explicit context values").
type Compiler struct {
	scanner *scanner.Scanner
	chunk   *chunk.Chunk

	current  token.Token
	previous token.Token

	hadError  bool
	panicMode bool
	errors    []*diag.CompileError
}

// Compile parses source as a single expression followed by end-of-input
// and emits its bytecode into out. It reports whether compilation
// succeeded; on failure, out may contain partial bytecode and must be
// discarded by the caller.
func Compile(source string, out *chunk.Chunk) (bool, []*diag.CompileError) {
	c := &Compiler{scanner: scanner.New(source), chunk: out}
	c.advance()
	c.expression()
	c.consume(token.EOF, "Expect end of expression.")
	c.endCompiler()
	return !c.hadError, c.errors
}

func (c *Compiler) advance() {
	c.previous = c.current
	for {
		c.current = c.scanner.Scan()
		if c.current.Kind != token.Error {
			break
		}
		c.errorAtCurrent(c.current.Lexeme)
	}
}

func (c *Compiler) consume(kind token.Kind, msg string) {
	if c.current.Kind == kind {
		c.advance()
		return
	}
	c.errorAtCurrent(msg)
}

func (c *Compiler) errorAtCurrent(msg string) {
	c.errorAt(c.current, msg)
}

func (c *Compiler) error(msg string) {
	c.errorAt(c.previous, msg)
}

func (c *Compiler) errorAt(t token.Token, msg string) {
	if c.panicMode {
		return
	}
	c.panicMode = true
	c.hadError = true

	where := fmt.Sprintf(" at '%s'", t.Lexeme)
	switch t.Kind {
	case token.EOF:
		where = " at end"
	case token.Error:
		where = ""
	}
	c.errors = append(c.errors, &diag.CompileError{Line: t.Line, Where: where, Message: msg})
}

// --- emission helpers ---

func (c *Compiler) emitByte(b byte) {
	c.chunk.Write(b, c.previous.Line)
}

func (c *Compiler) emitOp(op chunk.OpCode) {
	c.emitByte(byte(op))
}

func (c *Compiler) emitBytes(b1, b2 byte) {
	c.emitByte(b1)
	c.emitByte(b2)
}

func (c *Compiler) emitOps(op1, op2 chunk.OpCode) {
	c.emitBytes(byte(op1), byte(op2))
}

func (c *Compiler) emitReturn() {
	c.emitOp(chunk.OpReturn)
}

func (c *Compiler) makeConstant(v value.Value) byte {
	idx := c.chunk.AddConstant(v)
	if idx > 255 {
		c.error("Too many constants in one chunk.")
		return 0
	}
	return byte(idx)
}

func (c *Compiler) emitConstant(v value.Value) {
	c.emitBytes(byte(chunk.OpConstant), c.makeConstant(v))
}

func (c *Compiler) endCompiler() {
	c.emitReturn()
}

// --- Pratt core ---

func (c *Compiler) expression() {
	c.parsePrecedence(PrecAssignment)
}

func (c *Compiler) parsePrecedence(prec Precedence) {
	c.advance()
	prefix := ruleFor(c.previous.Kind).prefix
	if prefix == actionNone {
		c.error("Expect expression.")
		return
	}
	c.dispatchPrefix(prefix)

	for prec <= ruleFor(c.current.Kind).precedence {
		c.advance()
		infix := ruleFor(c.previous.Kind).infix
		c.dispatchInfix(infix)
	}
}

func (c *Compiler) dispatchPrefix(a action) {
	switch a {
	case actionGrouping:
		c.grouping()
	case actionUnary:
		c.unary()
	case actionNumber:
		c.number()
	case actionLiteral:
		c.literal()
	}
}

func (c *Compiler) dispatchInfix(a action) {
	switch a {
	case actionBinary:
		c.binary()
	}
}

// --- parse handlers, each operating on c.previous ---

func (c *Compiler) grouping() {
	c.expression()
	c.consume(token.RightParen, "Expect ')' after expression.")
}

func (c *Compiler) number() {
	n, err := strconv.ParseFloat(c.previous.Lexeme, 64)
	if err != nil {
		c.error("Invalid number literal.")
		return
	}
	c.emitConstant(value.Number(n))
}

func (c *Compiler) unary() {
	opKind := c.previous.Kind
	c.parsePrecedence(PrecUnary)

	switch opKind {
	case token.Minus:
		c.emitOp(chunk.OpNegate)
	case token.Bang:
		c.emitOp(chunk.OpNot)
	}
}

func (c *Compiler) literal() {
	switch c.previous.Kind {
	case token.False:
		c.emitOp(chunk.OpFalse)
	case token.Nil:
		c.emitOp(chunk.OpNil)
	case token.True:
		c.emitOp(chunk.OpTrue)
	}
}

func (c *Compiler) binary() {
	opKind := c.previous.Kind
	r := ruleFor(opKind)
	c.parsePrecedence(r.precedence + 1)

	switch opKind {
	case token.Plus:
		c.emitOp(chunk.OpAdd)
	case token.Minus:
		c.emitOp(chunk.OpSubtract)
	case token.Star:
		c.emitOp(chunk.OpMultiply)
	case token.Slash:
		c.emitOp(chunk.OpDivide)
	case token.EqualEqual:
		c.emitOp(chunk.OpEqual)
	case token.BangEqual:
		c.emitOps(chunk.OpEqual, chunk.OpNot)
	case token.Greater:
		c.emitOp(chunk.OpGreater)
	case token.GreaterEqual:
		c.emitOps(chunk.OpLess, chunk.OpNot)
	case token.Less:
		c.emitOp(chunk.OpLess)
	case token.LessEqual:
		c.emitOps(chunk.OpGreater, chunk.OpNot)
	}
}
