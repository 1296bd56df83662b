// Package parser implements a recursive-descent parser over a single
// cursor into an immutable, EOF-terminated token slice, with
// precedence-climbing expression parsing and panic-mode error recovery.
//
// The navigation primitives (peek, previous, advance, check, match, consume,
// isAtEnd) are grounded on the classic Lox-style recursive-descent parser —
// cow-lang-go's lang/parser/parser.go for peek/previous/advance/isAtEnd, and
// a Lox-in-Go port for consume/match/check/synchronize.
package parser

import (
	"github.com/mcgru/srclangc/internal/ast"
	"github.com/mcgru/srclangc/internal/diagnostics"
	"github.com/mcgru/srclangc/internal/token"
)

// Parser holds the single cursor into the token slice being parsed.
type Parser struct {
	tokens  []token.Token
	current int
}

// New creates a Parser over tokens. tokens must be EOF-terminated.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes the whole token slice and returns the top-level statement
// sequence, or the first parse error encountered. A single parse error
// aborts the run: synchronize runs to match the observed reference
// behavior, but parsing does not continue, and no partial AST is returned.
func (p *Parser) Parse() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			p.synchronize()
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// ============================================================
// Declarations
// ============================================================

func (p *Parser) declaration() (ast.Stmt, error) {
	if p.match(token.FUNC) {
		return p.functionDecl()
	}
	if p.match(token.VAR) {
		return p.varDecl()
	}
	return p.statement()
}

func (p *Parser) functionDecl() (ast.Stmt, error) {
	name, err := p.consume(token.IDENTIFIER, "Expect function name.")
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(token.LEFT_PAREN, "Expect '(' after function name."); err != nil {
		return nil, err
	}
	params, err := p.params()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RIGHT_PAREN, "Expect ')' after parameters."); err != nil {
		return nil, err
	}

	var body []ast.Stmt
	for !p.check(token.END) && !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	if _, err := p.consume(token.END, "Expect 'end' after function body."); err != nil {
		return nil, err
	}

	return &ast.FunctionStmt{Name: name, Params: params, Body: body}, nil
}

func (p *Parser) params() ([]token.Token, error) {
	var params []token.Token
	if p.check(token.RIGHT_PAREN) {
		return params, nil
	}
	for {
		name, err := p.consume(token.IDENTIFIER, "Expect parameter name.")
		if err != nil {
			return nil, err
		}
		params = append(params, name)
		if !p.match(token.COMMA) {
			break
		}
	}
	return params, nil
}

func (p *Parser) varDecl() (ast.Stmt, error) {
	name, err := p.consume(token.IDENTIFIER, "Expect variable name.")
	if err != nil {
		return nil, err
	}

	var initializer ast.Expr = &ast.LiteralExpr{Value: nil}
	if p.match(token.EQUAL) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	return &ast.VarStmt{Name: name, Initializer: initializer}, nil
}

// ============================================================
// Statements
// ============================================================

func (p *Parser) statement() (ast.Stmt, error) {
	if p.match(token.PRINT) {
		return p.printStmt()
	}
	if p.match(token.RETURN) {
		return p.returnStmt()
	}
	return p.exprStmt()
}

func (p *Parser) printStmt() (ast.Stmt, error) {
	if _, err := p.consume(token.LEFT_PAREN, "Expect '(' after 'print'."); err != nil {
		return nil, err
	}
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RIGHT_PAREN, "Expect ')' after expression."); err != nil {
		return nil, err
	}
	return &ast.PrintStmt{Expression: expr}, nil
}

func (p *Parser) returnStmt() (ast.Stmt, error) {
	keyword := p.previous()

	var value ast.Expr
	if !p.check(token.END) {
		v, err := p.expression()
		if err != nil {
			return nil, err
		}
		value = v
	}

	return &ast.ReturnStmt{Keyword: keyword, Value: value}, nil
}

func (p *Parser) exprStmt() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	return &ast.ExpressionStmt{Expression: expr}, nil
}

// ============================================================
// Expressions (precedence climbing, lowest to highest)
// ============================================================

func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

func (p *Parser) assignment() (ast.Expr, error) {
	expr, err := p.addition()
	if err != nil {
		return nil, err
	}

	if p.match(token.EQUAL, token.PLUS_EQUAL, token.MINUS_EQUAL) {
		operator := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		return desugarAssign(operator, expr, value)
	}

	return expr, nil
}

func desugarAssign(operator token.Token, target, value ast.Expr) (ast.Expr, error) {
	switch operator.Kind {
	case token.EQUAL:
		return rebuildAssign(operator, target, value)
	case token.PLUS_EQUAL:
		opTok := token.Synthetic(token.PLUS, "+")
		return rebuildAssign(operator, target, &ast.BinaryExpr{Left: target, Operator: opTok, Right: value})
	case token.MINUS_EQUAL:
		opTok := token.Synthetic(token.MINUS, "-")
		return rebuildAssign(operator, target, &ast.BinaryExpr{Left: target, Operator: opTok, Right: value})
	default:
		return nil, diagnostics.InvalidAssign(operator)
	}
}

func rebuildAssign(operator token.Token, target ast.Expr, value ast.Expr) (ast.Expr, error) {
	switch t := target.(type) {
	case *ast.VariableExpr:
		return &ast.AssignExpr{Name: t.Name, Value: value}, nil
	case *ast.GetExpr:
		return &ast.SetExpr{Object: t.Object, Name: t.Name, Value: value}, nil
	default:
		return nil, diagnostics.InvalidAssign(operator)
	}
}

func (p *Parser) addition() (ast.Expr, error) {
	expr, err := p.multiplication()
	if err != nil {
		return nil, err
	}
	for p.match(token.PLUS, token.MINUS) {
		operator := p.previous()
		right, err := p.multiplication()
		if err != nil {
			return nil, err
		}
		expr = &ast.BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) multiplication() (ast.Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(token.MULTIPLY, token.DIVIDE) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &ast.BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) unary() (ast.Expr, error) {
	if p.match(token.MINUS) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Operator: operator, Right: right}, nil
	}
	if p.match(token.PLUS_PLUS) {
		operator := p.previous()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return desugarIncDec(operator, operand, token.PLUS, "+", "increment")
	}
	if p.match(token.MINUS_MINUS) {
		operator := p.previous()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return desugarIncDec(operator, operand, token.MINUS, "-", "decrement")
	}
	return p.postfix()
}

func (p *Parser) postfix() (ast.Expr, error) {
	expr, err := p.call()
	if err != nil {
		return nil, err
	}
	if p.match(token.PLUS_PLUS) {
		operator := p.previous()
		return desugarIncDec(operator, expr, token.PLUS, "+", "increment")
	}
	if p.match(token.MINUS_MINUS) {
		operator := p.previous()
		return desugarIncDec(operator, expr, token.MINUS, "-", "decrement")
	}
	return expr, nil
}

// desugarIncDec lowers both prefix and postfix ++/-- to
// Assign(n, Binary(Variable(n), op, Literal(1))); the two
// forms are indistinguishable once desugared.
func desugarIncDec(operator token.Token, operand ast.Expr, opKind token.Kind, opLexeme, verb string) (ast.Expr, error) {
	v, ok := operand.(*ast.VariableExpr)
	if !ok {
		return nil, diagnostics.InvalidIncDec(operator, verb)
	}
	opTok := token.Synthetic(opKind, opLexeme)
	one := &ast.LiteralExpr{Value: float64(1)}
	binary := &ast.BinaryExpr{Left: &ast.VariableExpr{Name: v.Name}, Operator: opTok, Right: one}
	return &ast.AssignExpr{Name: v.Name, Value: binary}, nil
}

func (p *Parser) call() (ast.Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}

	for {
		if p.match(token.LEFT_PAREN) {
			expr, err = p.finishCall(expr)
			if err != nil {
				return nil, err
			}
		} else if p.match(token.DOT) {
			name, err := p.consume(token.IDENTIFIER, "Expect property name after '.'.")
			if err != nil {
				return nil, err
			}
			expr = &ast.GetExpr{Object: expr, Name: name}
		} else {
			break
		}
	}

	return expr, nil
}

func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, error) {
	var args []ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		for {
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren, err := p.consume(token.RIGHT_PAREN, "Expect ')' after arguments.")
	if err != nil {
		return nil, err
	}
	return &ast.CallExpr{Callee: callee, Paren: paren, Args: args}, nil
}

func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.match(token.NUMBER):
		return &ast.LiteralExpr{Value: p.previous().Literal}, nil
	case p.match(token.STRING):
		return &ast.LiteralExpr{Value: p.previous().Literal}, nil
	case p.match(token.TRUE):
		return &ast.LiteralExpr{Value: true}, nil
	case p.match(token.FALSE):
		return &ast.LiteralExpr{Value: false}, nil
	case p.match(token.IDENTIFIER):
		return &ast.VariableExpr{Name: p.previous()}, nil
	case p.match(token.LEFT_PAREN):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RIGHT_PAREN, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return expr, nil
	default:
		return nil, diagnostics.Unexpected(p.peek())
	}
}

// ============================================================
// Navigation primitives
// ============================================================

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(kind token.Kind, msg string) (token.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return token.Token{}, diagnostics.Expectf(p.peek(), msg)
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == token.EOF
}

// synchronize scans forward to a likely statement boundary after a parse
// error. The previous().Kind == EOF check is redundant with isAtEnd already
// guarding loop entry on peek, but is kept rather than simplified away.
func (p *Parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Kind == token.EOF {
			return
		}

		switch p.peek().Kind {
		case token.VAR, token.PRINT, token.FUNC, token.RETURN:
			return
		}

		p.advance()
	}
}
