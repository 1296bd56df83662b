package pipeline

import (
	"github.com/mcgru/srclangc/internal/ast"
	"github.com/mcgru/srclangc/internal/diagnostics"
	"github.com/mcgru/srclangc/internal/token"
)

// Context holds all the data passed between pipeline stages: the three
// artifacts the lex -> parse -> generate pipeline actually produces and
// consumes. There is no buffered Next/Peek token-stream abstraction here —
// the parser needs direct indexed/previous() access to a materialized
// token slice instead.
type Context struct {
	SourceCode string
	FilePath   string

	Tokens     []token.Token
	Statements []ast.Stmt
	Output     string

	Errors []*diagnostics.Error
}

// New creates a Context for a single compilation of source.
func New(source, filePath string) *Context {
	return &Context{SourceCode: source, FilePath: filePath}
}

// Failed reports whether any stage appended an error.
func (c *Context) Failed() bool {
	return len(c.Errors) > 0
}
