package parser

import (
	"testing"

	"github.com/mcgru/srclangc/internal/ast"
	"github.com/mcgru/srclangc/internal/diagnostics"
	"github.com/mcgru/srclangc/internal/lexer"
	"github.com/mcgru/srclangc/internal/token"
)

func parse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	stmts, err := New(lexer.Tokenize(src)).Parse()
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return stmts
}

func parseErr(t *testing.T, src string) error {
	t.Helper()
	stmts, err := New(lexer.Tokenize(src)).Parse()
	if err == nil {
		t.Fatalf("expected parse error, got stmts: %+v", stmts)
	}
	return err
}

func TestVarDeclWithoutInitializerIsNullLiteral(t *testing.T) {
	stmts := parse(t, "var x")
	if len(stmts) != 1 {
		t.Fatalf("want 1 stmt, got %d", len(stmts))
	}
	v, ok := stmts[0].(*ast.VarStmt)
	if !ok {
		t.Fatalf("want *ast.VarStmt, got %T", stmts[0])
	}
	lit, ok := v.Initializer.(*ast.LiteralExpr)
	if !ok || lit.Value != nil {
		t.Fatalf("want nil literal initializer, got %+v", v.Initializer)
	}
}

func TestReturnWithoutValueIffFollowedByEnd(t *testing.T) {
	stmts := parse(t, "func f()\n  return\nend")
	fn := stmts[0].(*ast.FunctionStmt)
	ret := fn.Body[0].(*ast.ReturnStmt)
	if ret.Value != nil {
		t.Fatalf("want nil return value, got %+v", ret.Value)
	}
}

func TestReturnWithValue(t *testing.T) {
	stmts := parse(t, "func f()\n  return 1 + 2\nend")
	fn := stmts[0].(*ast.FunctionStmt)
	ret := fn.Body[0].(*ast.ReturnStmt)
	if _, ok := ret.Value.(*ast.BinaryExpr); !ok {
		t.Fatalf("want *ast.BinaryExpr return value, got %T", ret.Value)
	}
}

func TestFunctionDeclParamsAndBody(t *testing.T) {
	stmts := parse(t, "func add(a, b)\n  return a + b\nend")
	fn, ok := stmts[0].(*ast.FunctionStmt)
	if !ok {
		t.Fatalf("want *ast.FunctionStmt, got %T", stmts[0])
	}
	if fn.Name.Lexeme != "add" {
		t.Fatalf("want name add, got %s", fn.Name.Lexeme)
	}
	if len(fn.Params) != 2 || fn.Params[0].Lexeme != "a" || fn.Params[1].Lexeme != "b" {
		t.Fatalf("want params [a b], got %+v", fn.Params)
	}
	if len(fn.Body) != 1 {
		t.Fatalf("want 1 body stmt, got %d", len(fn.Body))
	}
}

func TestAssignmentDesugarsPlainEqual(t *testing.T) {
	stmts := parse(t, "x = 1")
	es := stmts[0].(*ast.ExpressionStmt)
	assign, ok := es.Expression.(*ast.AssignExpr)
	if !ok {
		t.Fatalf("want *ast.AssignExpr, got %T", es.Expression)
	}
	if assign.Name.Lexeme != "x" {
		t.Fatalf("want name x, got %s", assign.Name.Lexeme)
	}
}

func TestCompoundAssignDesugarsToBinary(t *testing.T) {
	stmts := parse(t, "x += 1")
	es := stmts[0].(*ast.ExpressionStmt)
	assign := es.Expression.(*ast.AssignExpr)
	bin, ok := assign.Value.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("want desugared *ast.BinaryExpr value, got %T", assign.Value)
	}
	if bin.Operator.Line != 0 {
		t.Fatalf("want synthetic operator token with line 0, got line %d", bin.Operator.Line)
	}
	if bin.Operator.Kind != token.PLUS {
		t.Fatalf("want PLUS operator, got %s", bin.Operator.Kind)
	}
}

func TestMinusEqualDesugarsToMinus(t *testing.T) {
	stmts := parse(t, "x -= 1")
	es := stmts[0].(*ast.ExpressionStmt)
	assign := es.Expression.(*ast.AssignExpr)
	bin := assign.Value.(*ast.BinaryExpr)
	if bin.Operator.Lexeme != "-" {
		t.Fatalf("want - operator, got %s", bin.Operator.Lexeme)
	}
}

func TestPrefixAndPostfixIncrementDesugarIdentically(t *testing.T) {
	prefixStmts := parse(t, "++x")
	postfixStmts := parse(t, "x++")

	prefixAssign := prefixStmts[0].(*ast.ExpressionStmt).Expression.(*ast.AssignExpr)
	postfixAssign := postfixStmts[0].(*ast.ExpressionStmt).Expression.(*ast.AssignExpr)

	if prefixAssign.Name.Lexeme != postfixAssign.Name.Lexeme {
		t.Fatalf("want same target name, got %s vs %s", prefixAssign.Name.Lexeme, postfixAssign.Name.Lexeme)
	}

	prefixBin := prefixAssign.Value.(*ast.BinaryExpr)
	postfixBin := postfixAssign.Value.(*ast.BinaryExpr)
	if prefixBin.Operator.Kind != postfixBin.Operator.Kind {
		t.Fatalf("want matching desugared operator kinds, got %s vs %s", prefixBin.Operator.Kind, postfixBin.Operator.Kind)
	}
}

func TestDecrementDesugarsWithMinusOperator(t *testing.T) {
	stmts := parse(t, "x--")
	assign := stmts[0].(*ast.ExpressionStmt).Expression.(*ast.AssignExpr)
	bin := assign.Value.(*ast.BinaryExpr)
	if bin.Operator.Lexeme != "-" {
		t.Fatalf("want - operator, got %s", bin.Operator.Lexeme)
	}
	lit := bin.Right.(*ast.LiteralExpr)
	if lit.Value.(float64) != 1 {
		t.Fatalf("want literal 1, got %+v", lit.Value)
	}
}

func TestIncrementOfNonVariableIsInvalidTarget(t *testing.T) {
	err := parseErr(t, "1++")
	de, ok := err.(*diagnostics.Error)
	if !ok {
		t.Fatalf("want *diagnostics.Error, got %T", err)
	}
	if de.Code != diagnostics.InvalidIncDecTarget {
		t.Fatalf("want InvalidIncDecTarget, got %s", de.Code)
	}
}

func TestAssignToNonVariableIsInvalidTarget(t *testing.T) {
	err := parseErr(t, "1 = 2")
	de := err.(*diagnostics.Error)
	if de.Code != diagnostics.InvalidAssignTarget {
		t.Fatalf("want InvalidAssignTarget, got %s", de.Code)
	}
}

func TestGetExprChainAndSetDesugar(t *testing.T) {
	stmts := parse(t, "a.b.c = 1")
	es := stmts[0].(*ast.ExpressionStmt)
	set, ok := es.Expression.(*ast.SetExpr)
	if !ok {
		t.Fatalf("want *ast.SetExpr, got %T", es.Expression)
	}
	if set.Name.Lexeme != "c" {
		t.Fatalf("want property c, got %s", set.Name.Lexeme)
	}
	if _, ok := set.Object.(*ast.GetExpr); !ok {
		t.Fatalf("want nested *ast.GetExpr object, got %T", set.Object)
	}
}

func TestCallArguments(t *testing.T) {
	stmts := parse(t, "f(1, 2, x)")
	call := stmts[0].(*ast.ExpressionStmt).Expression.(*ast.CallExpr)
	if len(call.Args) != 3 {
		t.Fatalf("want 3 args, got %d", len(call.Args))
	}
}

func TestMissingClosingParenIsSyntaxExpect(t *testing.T) {
	err := parseErr(t, "print(1")
	de := err.(*diagnostics.Error)
	if de.Code != diagnostics.SyntaxExpect {
		t.Fatalf("want SyntaxExpect, got %s", de.Code)
	}
}

func TestUnexpectedTokenAtExpressionStart(t *testing.T) {
	err := parseErr(t, ")")
	de := err.(*diagnostics.Error)
	if de.Code != diagnostics.UnexpectedToken {
		t.Fatalf("want UnexpectedToken, got %s", de.Code)
	}
}

func TestParseDoesNotReturnPartialASTOnFailure(t *testing.T) {
	stmts, err := New(lexer.Tokenize("var x = 1\n)")).Parse()
	if err == nil {
		t.Fatalf("expected error")
	}
	if stmts != nil {
		t.Fatalf("want nil stmts on failure, got %+v", stmts)
	}
}

func TestOperatorPrecedence(t *testing.T) {
	stmts := parse(t, "1 + 2 * 3")
	bin := stmts[0].(*ast.ExpressionStmt).Expression.(*ast.BinaryExpr)
	if bin.Operator.Lexeme != "+" {
		t.Fatalf("want top-level +, got %s", bin.Operator.Lexeme)
	}
	if _, ok := bin.Right.(*ast.BinaryExpr); !ok {
		t.Fatalf("want right side grouped as multiplication, got %T", bin.Right)
	}
}
