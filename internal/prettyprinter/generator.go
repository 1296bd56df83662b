// Package prettyprinter walks the AST and renders target source text,
// using an ast.ExprVisitor/ast.StmtVisitor implementation that builds strings over the
// node kinds and emission rules of this particular language pair.
package prettyprinter

import (
	"strconv"
	"strings"

	"github.com/mcgru/srclangc/internal/ast"
	"github.com/mcgru/srclangc/internal/config"
	"github.com/mcgru/srclangc/internal/diagnostics"
	"github.com/mcgru/srclangc/internal/token"
)

// Generator renders a statement sequence to target source text. It holds no
// state across calls to Generate and is safe to reuse or discard freely.
type Generator struct{}

// New creates a Generator.
func New() *Generator { return &Generator{} }

// emitResult is the boxed return value every Visit method produces, letting
// ast.AcceptExpr/AcceptStmt hand back a (text, err) pair through the
// any-typed dispatch contract.
type emitResult struct {
	text string
	err  error
}

// Generate renders stmts to target source text: each top-level statement
// emitted in order, newline-joined, with no trailing newline and no
// prologue or epilogue.
func (g *Generator) Generate(stmts []ast.Stmt) (string, error) {
	lines := make([]string, len(stmts))
	for i, s := range stmts {
		line, err := g.emitStmt(s)
		if err != nil {
			return "", err
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n"), nil
}

func (g *Generator) emit(e ast.Expr) (string, error) {
	r := ast.AcceptExpr[emitResult](e, g)
	return r.text, r.err
}

func (g *Generator) emitStmt(s ast.Stmt) (string, error) {
	r := ast.AcceptStmt[emitResult](s, g)
	return r.text, r.err
}

// ============================================================
// ExprVisitor
// ============================================================

func (g *Generator) VisitBinaryExpr(b *ast.BinaryExpr) any {
	sym, ok := config.ArithmeticOperators[b.Operator.Kind]
	if !ok {
		return emitResult{err: diagnostics.UnknownBinaryOperator(b.Operator)}
	}
	l, err := g.emit(b.Left)
	if err != nil {
		return emitResult{err: err}
	}
	r, err := g.emit(b.Right)
	if err != nil {
		return emitResult{err: err}
	}
	return emitResult{text: "(" + l + " " + sym + " " + r + ")"}
}

func (g *Generator) VisitUnaryExpr(u *ast.UnaryExpr) any {
	if u.Operator.Kind != token.MINUS {
		return emitResult{err: diagnostics.UnknownUnaryOperator(u.Operator)}
	}
	r, err := g.emit(u.Right)
	if err != nil {
		return emitResult{err: err}
	}
	return emitResult{text: "(-" + r + ")"}
}

func (g *Generator) VisitLiteralExpr(l *ast.LiteralExpr) any {
	return emitResult{text: formatLiteral(l.Value)}
}

func (g *Generator) VisitVariableExpr(v *ast.VariableExpr) any {
	return emitResult{text: v.Name.Lexeme}
}

func (g *Generator) VisitCallExpr(c *ast.CallExpr) any {
	callee, err := g.emit(c.Callee)
	if err != nil {
		return emitResult{err: err}
	}
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		s, err := g.emit(a)
		if err != nil {
			return emitResult{err: err}
		}
		args[i] = s
	}
	return emitResult{text: callee + "(" + strings.Join(args, ", ") + ")"}
}

func (g *Generator) VisitGetExpr(gx *ast.GetExpr) any {
	o, err := g.emit(gx.Object)
	if err != nil {
		return emitResult{err: err}
	}
	return emitResult{text: o + "." + gx.Name.Lexeme}
}

func (g *Generator) VisitAssignExpr(a *ast.AssignExpr) any {
	v, err := g.emit(a.Value)
	if err != nil {
		return emitResult{err: err}
	}
	return emitResult{text: a.Name.Lexeme + " = " + v}
}

func (g *Generator) VisitSetExpr(s *ast.SetExpr) any {
	o, err := g.emit(s.Object)
	if err != nil {
		return emitResult{err: err}
	}
	v, err := g.emit(s.Value)
	if err != nil {
		return emitResult{err: err}
	}
	return emitResult{text: o + "." + s.Name.Lexeme + " = " + v}
}

// ============================================================
// StmtVisitor
// ============================================================

func (g *Generator) VisitVarStmt(s *ast.VarStmt) any {
	init, err := g.emit(s.Initializer)
	if err != nil {
		return emitResult{err: err}
	}
	return emitResult{text: "let " + s.Name.Lexeme + ": any = " + init + ";"}
}

func (g *Generator) VisitExpressionStmt(s *ast.ExpressionStmt) any {
	e, err := g.emit(s.Expression)
	if err != nil {
		return emitResult{err: err}
	}
	return emitResult{text: e + ";"}
}

func (g *Generator) VisitPrintStmt(s *ast.PrintStmt) any {
	e, err := g.emit(s.Expression)
	if err != nil {
		return emitResult{err: err}
	}
	return emitResult{text: "console.log(" + e + ");"}
}

func (g *Generator) VisitFunctionStmt(s *ast.FunctionStmt) any {
	params := make([]string, len(s.Params))
	for i, p := range s.Params {
		params[i] = p.Lexeme + ": any"
	}
	paramsText := strings.Join(params, ", ")

	bodyLines := make([]string, len(s.Body))
	for i, stmt := range s.Body {
		line, err := g.emitStmt(stmt)
		if err != nil {
			return emitResult{err: err}
		}
		bodyLines[i] = "  " + line
	}
	bodyText := strings.Join(bodyLines, "\n")

	if config.EventHandlerNames[s.Name.Lexeme] {
		name := camelCase(strings.TrimPrefix(s.Name.Lexeme, "_"))
		return emitResult{text: name + "((" + paramsText + ") => {\n" + bodyText + "\n})"}
	}
	return emitResult{text: "function " + s.Name.Lexeme + "(" + paramsText + ") {\n" + bodyText + "\n}"}
}

func (g *Generator) VisitReturnStmt(s *ast.ReturnStmt) any {
	if s.Value == nil {
		return emitResult{text: "return;"}
	}

	if folded := foldConstant(s.Value); folded != nil {
		return emitResult{text: "return " + stringifyFolded(folded) + ";"}
	}

	e, err := g.emit(s.Value)
	if err != nil {
		return emitResult{err: err}
	}
	return emitResult{text: "return " + e + ";"}
}

// ============================================================
// Formatting helpers
// ============================================================

func formatLiteral(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case float64:
		return formatNumber(val)
	case string:
		return "\"" + val + "\""
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		return "null"
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// camelCase lowercases the whole string, splits on runs of space/hyphen/
// underscore, keeps the first word as-is, and titlecases the first letter
// of every subsequent word before joining without separators.
func camelCase(s string) string {
	s = strings.ToLower(s)
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	})
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(words[0])
	for _, w := range words[1:] {
		if w == "" {
			continue
		}
		b.WriteString(strings.ToUpper(w[:1]))
		b.WriteString(w[1:])
	}
	return b.String()
}

// foldConstant is the pure, total constant evaluator spec'd for Return
// sites: it returns a number, a string, a boolean, or nil standing for
// "unknown". A string or boolean result still counts as "not unknown" at
// the call site — matching the target language's own value.toString()
// contract deliberately, not by omission.
func foldConstant(e ast.Expr) interface{} {
	switch n := e.(type) {
	case *ast.LiteralExpr:
		return n.Value
	case *ast.BinaryExpr:
		l := foldConstant(n.Left)
		r := foldConstant(n.Right)
		lf, lok := l.(float64)
		rf, rok := r.(float64)
		if !lok || !rok {
			return nil
		}
		switch n.Operator.Kind {
		case token.PLUS:
			return lf + rf
		case token.MINUS:
			return lf - rf
		case token.MULTIPLY:
			return lf * rf
		case token.DIVIDE:
			return lf / rf
		default:
			return nil
		}
	case *ast.UnaryExpr:
		if n.Operator.Kind != token.MINUS {
			return nil
		}
		if rf, ok := foldConstant(n.Right).(float64); ok {
			return -rf
		}
		return nil
	default:
		return nil
	}
}

func stringifyFolded(v interface{}) string {
	switch val := v.(type) {
	case float64:
		return formatNumber(val)
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		return "null"
	}
}
