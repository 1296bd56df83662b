// Package ast defines the abstract syntax tree produced by the parser and
// consumed by the generator. The two node families, Expr and Stmt, are
// closed: every concrete type is declared in this file, and the visitor
// interfaces below list one handler per variant. Adding a variant means
// adding a method to its family's visitor interface and to every implementation —
// that break-on-add is deliberate.
package ast

import (
	"fmt"

	"github.com/mcgru/srclangc/internal/token"
)

// Node is implemented by every Expr and every Stmt.
type Node interface {
	TokenLiteral() string
}

// Expr is an expression node. Accept dispatches to the ExprVisitor handler
// matching the node's concrete kind and returns that handler's result boxed
// as any; callers that want a typed result use AcceptExpr.
type Expr interface {
	Node
	Accept(v ExprVisitor) any
	exprNode()
}

// Stmt is a statement node. See Expr for the Accept contract.
type Stmt interface {
	Node
	Accept(v StmtVisitor) any
	stmtNode()
}

// ExprVisitor offers one handler per Expr variant.
type ExprVisitor interface {
	VisitBinaryExpr(*BinaryExpr) any
	VisitUnaryExpr(*UnaryExpr) any
	VisitLiteralExpr(*LiteralExpr) any
	VisitVariableExpr(*VariableExpr) any
	VisitCallExpr(*CallExpr) any
	VisitGetExpr(*GetExpr) any
	VisitAssignExpr(*AssignExpr) any
	VisitSetExpr(*SetExpr) any
}

// StmtVisitor offers one handler per Stmt variant.
type StmtVisitor interface {
	VisitVarStmt(*VarStmt) any
	VisitExpressionStmt(*ExpressionStmt) any
	VisitPrintStmt(*PrintStmt) any
	VisitFunctionStmt(*FunctionStmt) any
	VisitReturnStmt(*ReturnStmt) any
}

// AcceptExpr dispatches e to v and type-asserts the result to T. It panics if
// the visitor returned a value of a different type, which indicates a bug in
// the visitor, not in the tree.
// A nil result is returned as the zero T when T is an interface type.
func AcceptExpr[T any](e Expr, v ExprVisitor) T {
	r := e.Accept(v)
	var zero T
	if r == nil && any(zero) == nil {
		return zero
	}
	return r.(T)
}

// AcceptStmt is the Stmt-family counterpart of AcceptExpr.
func AcceptStmt[T any](s Stmt, v StmtVisitor) T {
	r := s.Accept(v)
	var zero T
	if r == nil && any(zero) == nil {
		return zero
	}
	return r.(T)
}

// ============================================================
// Expressions
// ============================================================

// BinaryExpr is left operator right. operator.Kind is one of PLUS, MINUS,
// MULTIPLY, DIVIDE.
type BinaryExpr struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (b *BinaryExpr) TokenLiteral() string     { return b.Operator.Lexeme }
func (b *BinaryExpr) Accept(v ExprVisitor) any { return v.VisitBinaryExpr(b) }
func (b *BinaryExpr) exprNode()                {}

// UnaryExpr is operator right. operator.Kind is always MINUS.
type UnaryExpr struct {
	Operator token.Token
	Right    Expr
}

func (u *UnaryExpr) TokenLiteral() string     { return u.Operator.Lexeme }
func (u *UnaryExpr) Accept(v ExprVisitor) any { return v.VisitUnaryExpr(u) }
func (u *UnaryExpr) exprNode()                {}

// LiteralExpr holds a number, a string, a boolean, or the null sentinel (nil).
type LiteralExpr struct {
	Value interface{}
}

func (l *LiteralExpr) TokenLiteral() string {
	if l.Value == nil {
		return "null"
	}
	return fmt.Sprint(l.Value)
}
func (l *LiteralExpr) Accept(v ExprVisitor) any { return v.VisitLiteralExpr(l) }
func (l *LiteralExpr) exprNode()                {}

// VariableExpr references a declared identifier.
type VariableExpr struct {
	Name token.Token
}

func (e *VariableExpr) TokenLiteral() string     { return e.Name.Lexeme }
func (e *VariableExpr) Accept(v ExprVisitor) any { return v.VisitVariableExpr(e) }
func (e *VariableExpr) exprNode()                {}

// CallExpr is callee(args...). paren is the closing ')' token, kept for error
// reporting parity with the source grammar.
type CallExpr struct {
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

func (c *CallExpr) TokenLiteral() string     { return c.Paren.Lexeme }
func (c *CallExpr) Accept(v ExprVisitor) any { return v.VisitCallExpr(c) }
func (c *CallExpr) exprNode()                {}

// GetExpr is object.name, a member access.
type GetExpr struct {
	Object Expr
	Name   token.Token
}

func (g *GetExpr) TokenLiteral() string     { return g.Name.Lexeme }
func (g *GetExpr) Accept(v ExprVisitor) any { return v.VisitGetExpr(g) }
func (g *GetExpr) exprNode()                {}

// AssignExpr is name = value, produced only from a Variable L-value.
type AssignExpr struct {
	Name  token.Token
	Value Expr
}

func (a *AssignExpr) TokenLiteral() string     { return a.Name.Lexeme }
func (a *AssignExpr) Accept(v ExprVisitor) any { return v.VisitAssignExpr(a) }
func (a *AssignExpr) exprNode()                {}

// SetExpr is object.name = value, produced only from a Get L-value.
type SetExpr struct {
	Object Expr
	Name   token.Token
	Value  Expr
}

func (s *SetExpr) TokenLiteral() string     { return s.Name.Lexeme }
func (s *SetExpr) Accept(v ExprVisitor) any { return v.VisitSetExpr(s) }
func (s *SetExpr) exprNode()                {}

// ============================================================
// Statements
// ============================================================

// VarStmt is var name [= initializer]. Initializer is LiteralExpr{nil} when
// the source omits it.
type VarStmt struct {
	Name        token.Token
	Initializer Expr
}

func (s *VarStmt) TokenLiteral() string     { return s.Name.Lexeme }
func (s *VarStmt) Accept(v StmtVisitor) any { return v.VisitVarStmt(s) }
func (s *VarStmt) stmtNode()                {}

// ExpressionStmt wraps an expression used as a statement.
type ExpressionStmt struct {
	Expression Expr
}

func (s *ExpressionStmt) TokenLiteral() string     { return s.Expression.TokenLiteral() }
func (s *ExpressionStmt) Accept(v StmtVisitor) any { return v.VisitExpressionStmt(s) }
func (s *ExpressionStmt) stmtNode()                {}

// PrintStmt is print(expression).
type PrintStmt struct {
	Expression Expr
}

func (s *PrintStmt) TokenLiteral() string     { return "print" }
func (s *PrintStmt) Accept(v StmtVisitor) any { return v.VisitPrintStmt(s) }
func (s *PrintStmt) stmtNode()                {}

// FunctionStmt is func name(params) body end.
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func (s *FunctionStmt) TokenLiteral() string     { return s.Name.Lexeme }
func (s *FunctionStmt) Accept(v StmtVisitor) any { return v.VisitFunctionStmt(s) }
func (s *FunctionStmt) stmtNode()                {}

// ReturnStmt is return [value]. Value is nil iff the source wrote no
// expression before the closing 'end'.
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr
}

func (s *ReturnStmt) TokenLiteral() string     { return s.Keyword.Lexeme }
func (s *ReturnStmt) Accept(v StmtVisitor) any { return v.VisitReturnStmt(s) }
func (s *ReturnStmt) stmtNode()                {}
