package pipeline

import (
	"github.com/mcgru/srclangc/internal/diagnostics"
	"github.com/mcgru/srclangc/internal/lexer"
	"github.com/mcgru/srclangc/internal/parser"
	"github.com/mcgru/srclangc/internal/prettyprinter"
)

// LexStage tokenizes ctx.SourceCode.
type LexStage struct{}

func (LexStage) Process(ctx *Context) *Context {
	ctx.Tokens = lexer.Tokenize(ctx.SourceCode)
	return ctx
}

// ParseStage turns ctx.Tokens into ctx.Statements.
type ParseStage struct{}

func (ParseStage) Process(ctx *Context) *Context {
	stmts, err := parser.New(ctx.Tokens).Parse()
	if err != nil {
		if de, ok := err.(*diagnostics.Error); ok {
			ctx.Errors = append(ctx.Errors, de)
		} else {
			ctx.Errors = append(ctx.Errors, &diagnostics.Error{Msg: err.Error()})
		}
		return ctx
	}
	ctx.Statements = stmts
	return ctx
}

// GenerateStage renders ctx.Statements into ctx.Output.
type GenerateStage struct{}

func (GenerateStage) Process(ctx *Context) *Context {
	out, err := prettyprinter.New().Generate(ctx.Statements)
	if err != nil {
		if de, ok := err.(*diagnostics.Error); ok {
			ctx.Errors = append(ctx.Errors, de)
		} else {
			ctx.Errors = append(ctx.Errors, &diagnostics.Error{Msg: err.Error()})
		}
		return ctx
	}
	ctx.Output = out
	return ctx
}

// Standard returns the fixed lex -> parse -> generate pipeline that makes up
// a single compile operation.
func Standard() *Pipeline {
	return NewPipeline(LexStage{}, ParseStage{}, GenerateStage{})
}
