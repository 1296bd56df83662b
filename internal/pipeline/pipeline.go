package pipeline

// Pipeline represents a sequence of processing stages run in order.
type Pipeline struct {
	processors []Processor
}

// NewPipeline builds a Pipeline from stages run in argument order.
func NewPipeline(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes each stage in turn, short-circuiting as soon as a stage
// reports an error: the lex/parse/generate stages are not independent — a
// failed parse has no AST to generate from.
func (p *Pipeline) Run(initialCtx *Context) *Context {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		if ctx.Failed() {
			return ctx
		}
	}
	return ctx
}
