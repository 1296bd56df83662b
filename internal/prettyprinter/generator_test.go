package prettyprinter

import (
	"testing"

	"github.com/mcgru/srclangc/internal/lexer"
	"github.com/mcgru/srclangc/internal/parser"
)

func generate(t *testing.T, src string) string {
	t.Helper()
	stmts, err := parser.New(lexer.Tokenize(src)).Parse()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	out, err := New().Generate(stmts)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	return out
}

func TestVarWithInitializerEmitsUnfoldedArithmetic(t *testing.T) {
	got := generate(t, "var x = 1 + 2")
	want := "let x: any = (1 + 2);"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestVarWithoutInitializerEmitsNull(t *testing.T) {
	got := generate(t, "var y")
	want := "let y: any = null;"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrintMemberAccess(t *testing.T) {
	got := generate(t, "print(a.b)")
	want := "console.log(a.b);"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFunctionReturnConstantFoldsAtReturnSite(t *testing.T) {
	got := generate(t, "func add(a, b)\n  return 1 + 2\nend")
	want := "function add(a: any, b: any) {\n  return 3;\n}"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFunctionReturnNonFoldableEmitsParenthesizedExpression(t *testing.T) {
	got := generate(t, "func add(a, b)\n  return a + b\nend")
	want := "function add(a: any, b: any) {\n  return (a + b);\n}"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEventHandlerRewriteOnCollision(t *testing.T) {
	got := generate(t, "func _on_collision(o)\n  print(o)\nend")
	want := "onCollision((o: any) => {\n  console.log(o);\n})"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEventHandlerRewriteForever(t *testing.T) {
	got := generate(t, "func _forever()\n  print(1)\nend")
	want := "forever(() => {\n  console.log(1);\n})"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEventHandlerRewriteOnCloneStart(t *testing.T) {
	got := generate(t, "func _on_clone_start()\n  print(1)\nend")
	want := "onCloneStart(() => {\n  console.log(1);\n})"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCompoundAssignEmission(t *testing.T) {
	got := generate(t, "x += 5")
	want := "x = (x + 5);"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestUnaryMinusParenthesization(t *testing.T) {
	got := generate(t, "var x = -1")
	want := "let x: any = (-1);"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestReturnWithoutValue(t *testing.T) {
	got := generate(t, "func f()\n  return\nend")
	want := "function f() {\n  return;\n}"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestTopLevelStatementsNewlineJoinedNoTrailingNewline(t *testing.T) {
	got := generate(t, "var x = 1\nvar y = 2")
	want := "let x: any = 1;\nlet y: any = 2;"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCallEmission(t *testing.T) {
	got := generate(t, "f(1, 2)")
	want := "f(1, 2);"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestStringLiteralEmissionNoEscaping(t *testing.T) {
	got := generate(t, `print("a\b")`)
	want := `console.log("a\b");`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBooleanLiteralEmission(t *testing.T) {
	got := generate(t, "var x = true")
	want := "let x: any = true;"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
