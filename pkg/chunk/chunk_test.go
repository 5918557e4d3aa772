package chunk

import (
	"testing"

	"github.com/able-lang/clox-go/pkg/value"
)

func TestWriteKeepsCodeAndLinesInSync(t *testing.T) {
	c := New()
	c.WriteOp(OpNil, 1)
	c.WriteOp(OpTrue, 2)
	c.WriteOp(OpReturn, 2)

	if len(c.Code) != len(c.Lines) {
		t.Fatalf("code/lines length mismatch: %d vs %d", len(c.Code), len(c.Lines))
	}
	if c.Lines[0] != 1 || c.Lines[1] != 2 || c.Lines[2] != 2 {
		t.Fatalf("unexpected line table: %v", c.Lines)
	}
}

func TestAddConstantReturnsIndex(t *testing.T) {
	c := New()
	idx0 := c.AddConstant(value.Number(1))
	idx1 := c.AddConstant(value.Number(2))
	if idx0 != 0 || idx1 != 1 {
		t.Fatalf("unexpected indices: %d, %d", idx0, idx1)
	}
	if len(c.Constants) != 2 {
		t.Fatalf("expected 2 constants, got %d", len(c.Constants))
	}
}

func TestOpCodeString(t *testing.T) {
	if OpAdd.String() != "OP_ADD" {
		t.Fatalf("unexpected OpAdd.String(): %s", OpAdd.String())
	}
}
