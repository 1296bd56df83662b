// Package diagnostics defines the error taxonomy shared by the parser and
// the generator: a single templated error type covering five fixed error
// kinds.
package diagnostics

import (
	"fmt"

	"github.com/mcgru/srclangc/internal/token"
)

// Phase names which pipeline stage raised an error.
type Phase string

const (
	PhaseParser  Phase = "parser"
	PhaseCodegen Phase = "codegen"
)

// Code is one of the fixed error kinds.
type Code string

const (
	SyntaxExpect        Code = "SyntaxExpect"
	UnexpectedToken     Code = "UnexpectedToken"
	InvalidAssignTarget Code = "InvalidAssignTarget"
	InvalidIncDecTarget Code = "InvalidIncDecTarget"
	UnknownOperator     Code = "UnknownOperator"
)

// Error is the single error type raised by the parser and the generator.
// Its Error() string follows a fixed set of message patterns, one per Code.
type Error struct {
	Code  Code
	Phase Phase
	Token token.Token
	Msg   string
}

func (e *Error) Error() string { return e.Msg }

// Expectf builds a SyntaxExpect error: "<msg> Got <lexeme>".
func Expectf(tok token.Token, msg string) *Error {
	return &Error{
		Code:  SyntaxExpect,
		Phase: PhaseParser,
		Token: tok,
		Msg:   fmt.Sprintf("%s Got %s", msg, tok.Lexeme),
	}
}

// Unexpected builds an UnexpectedToken error: "Unexpected token: <lexeme>".
func Unexpected(tok token.Token) *Error {
	return &Error{
		Code:  UnexpectedToken,
		Phase: PhaseParser,
		Token: tok,
		Msg:   fmt.Sprintf("Unexpected token: %s", tok.Lexeme),
	}
}

// InvalidAssign builds an InvalidAssignTarget error.
func InvalidAssign(tok token.Token) *Error {
	return &Error{
		Code:  InvalidAssignTarget,
		Phase: PhaseParser,
		Token: tok,
		Msg:   "Invalid assignment target.",
	}
}

// InvalidIncDec builds an InvalidIncDecTarget error; verb is "increment" or
// "decrement".
func InvalidIncDec(tok token.Token, verb string) *Error {
	return &Error{
		Code:  InvalidIncDecTarget,
		Phase: PhaseParser,
		Token: tok,
		Msg:   fmt.Sprintf("Invalid %s target.", verb),
	}
}

// UnknownBinaryOperator builds an UnknownOperator error for a Binary node.
func UnknownBinaryOperator(tok token.Token) *Error {
	return &Error{
		Code:  UnknownOperator,
		Phase: PhaseCodegen,
		Token: tok,
		Msg:   fmt.Sprintf("Unknown binary operator: %s", tok.Lexeme),
	}
}

// UnknownUnaryOperator builds an UnknownOperator error for a Unary node.
func UnknownUnaryOperator(tok token.Token) *Error {
	return &Error{
		Code:  UnknownOperator,
		Phase: PhaseCodegen,
		Token: tok,
		Msg:   fmt.Sprintf("Unknown unary operator: %s", tok.Lexeme),
	}
}
