package vm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/able-lang/clox-go/pkg/diag"
)

func interpret(t *testing.T, source string) (string, diag.Result, []*diag.CompileError, *diag.RuntimeError) {
	t.Helper()
	v := New()
	var out bytes.Buffer
	v.Stdout = &out
	result, compileErrs, runtimeErr := v.Interpret(source)
	return out.String(), result, compileErrs, runtimeErr
}

func TestEndToEndScenarios(t *testing.T) {
	cases := []struct {
		name   string
		source string
		want   string
	}{
		{"addition", "1 + 2", "3\n"},
		{"mixed arithmetic", "(-1 + 2) * 3 - -4", "7\n"},
		{"not nil", "!nil", "true\n"},
		{"nested comparison", "!(5 - 4 > 3 * 2 == !nil)", "true\n"},
		{"left associativity", "1 - 2 - 3", "-4\n"},
		{"precedence", "1 + 2 * 3", "7\n"},
		{"grouping precedence", "(1 + 2) * 3", "9\n"},
		{"double negation", "- -5", "5\n"},
		{"double not", "!!true", "true\n"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, result, compileErrs, runtimeErr := interpret(t, c.source)
			if result != diag.Ok {
				t.Fatalf("expected Ok, got %v (compile=%v runtime=%v)", result, compileErrs, runtimeErr)
			}
			if out != c.want {
				t.Fatalf("output = %q, want %q", out, c.want)
			}
		})
	}
}

func TestRuntimeErrorNegateNonNumber(t *testing.T) {
	_, result, _, runtimeErr := interpret(t, "-true")
	if result != diag.RuntimeErrorResult {
		t.Fatalf("expected RuntimeErrorResult, got %v", result)
	}
	want := "Operand must be a number.\n[line 1] in script"
	if runtimeErr.Error() != want {
		t.Fatalf("got %q, want %q", runtimeErr.Error(), want)
	}
}

func TestRuntimeErrorAddNonNumber(t *testing.T) {
	_, result, _, runtimeErr := interpret(t, "1 + true")
	if result != diag.RuntimeErrorResult {
		t.Fatalf("expected RuntimeErrorResult, got %v", result)
	}
	if !strings.Contains(runtimeErr.Error(), "Operands must be numbers.") {
		t.Fatalf("unexpected error: %s", runtimeErr.Error())
	}
}

func TestCompileErrorDanglingOperator(t *testing.T) {
	_, result, compileErrs, _ := interpret(t, "1 +")
	if result != diag.CompileErrorResult {
		t.Fatalf("expected CompileErrorResult, got %v", result)
	}
	if len(compileErrs) != 1 || compileErrs[0].Error() != "[line 1] Error at end: Expect expression." {
		t.Fatalf("unexpected compile errors: %v", compileErrs)
	}
}

func TestStackIsEmptyAfterSuccessfulInterpret(t *testing.T) {
	v := New()
	var out bytes.Buffer
	v.Stdout = &out
	result, _, _ := v.Interpret("1 + 2 * 3")
	if result != diag.Ok {
		t.Fatalf("expected Ok, got %v", result)
	}
	if len(v.stack) != 0 {
		t.Fatalf("expected empty stack after interpret, got %d entries", len(v.stack))
	}
}

func TestVMIsReusableAcrossInterpretCalls(t *testing.T) {
	v := New()
	var out bytes.Buffer
	v.Stdout = &out

	if result, _, _ := v.Interpret("1 + 1"); result != diag.Ok {
		t.Fatalf("first interpret failed: %v", result)
	}
	if result, _, _ := v.Interpret("2 + 2"); result != diag.Ok {
		t.Fatalf("second interpret failed: %v", result)
	}
	if out.String() != "2\n4\n" {
		t.Fatalf("unexpected accumulated output: %q", out.String())
	}
}
