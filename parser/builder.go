package parser

// DefaultMaxDepth is the loop nesting bound used when none is configured.
const DefaultMaxDepth = 1 << 16

// Builder can create new parsers.
type Builder struct {
	maxDepth int
	tracer   Tracer
}

// NewBuilder returns a builder with the default settings.
func NewBuilder() Builder {
	return Builder{
		maxDepth: DefaultMaxDepth,
	}
}

// WithMaxDepth sets the maximum loop nesting depth. Zero disables the bound.
func (b Builder) WithMaxDepth(depth int) Builder {
	if depth < 0 {
		panic("max depth cannot be negative")
	}
	b.maxDepth = depth
	return b
}

// WithTracer sets the observer of parse events.
func (b Builder) WithTracer(t Tracer) Builder {
	b.tracer = t
	return b
}

// Build creates a parser.
func (b Builder) Build() *Parser {
	p := &Parser{
		maxDepth: b.maxDepth,
		tracer:   b.tracer,
	}

	if p.tracer == nil {
		p.tracer = nopTracer{}
	}

	return p
}
