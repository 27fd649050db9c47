package jsonpath

// NodeKind discriminates the syntax-tree node kinds a Span can point at.
type NodeKind int

const (
	NodePath NodeKind = iota
	NodeStep
	NodeSelector
	NodeExpr
)

func (k NodeKind) String() string {
	switch k {
	case NodePath:
		return "path"
	case NodeStep:
		return "step"
	case NodeSelector:
		return "selector"
	case NodeExpr:
		return "expr"
	default:
		return "unknown"
	}
}

// ByteRange is a half-open [Start, End) byte offset into the compiled path
// text.
type ByteRange struct {
	Start, End int
}

// Span records the kind of one syntax-tree node and its source byte range.
// It does not point back at the node itself.
type Span struct {
	Kind  NodeKind
	Range ByteRange
}

// Spans returns the byte range of every node in p's syntax tree, in
// pre-order. It is only meaningful when p was compiled with Options.Spans
// set; otherwise every node's range is the zero range and Spans returns an
// empty slice, since there is nothing to report.
func (p *Path) Spans() []Span {
	if !p.opts.Spans {
		return nil
	}
	var out []Span
	p.collectSpans(&out)
	return out
}

func (p *Path) collectSpans(out *[]Span) {
	if p.span.set {
		*out = append(*out, Span{Kind: NodePath, Range: ByteRange{p.span.start, p.span.end}})
	}
	for _, s := range p.Steps {
		s.collectSpans(out)
	}
}

func (s Step) collectSpans(out *[]Span) {
	if s.span.set {
		*out = append(*out, Span{Kind: NodeStep, Range: ByteRange{s.span.start, s.span.end}})
	}
	for _, sel := range s.Union {
		sel.collectSpans(out)
	}
}

func (s Selector) collectSpans(out *[]Span) {
	if s.span.set {
		*out = append(*out, Span{Kind: NodeSelector, Range: ByteRange{s.span.start, s.span.end}})
	}
	if s.Kind == SelFilter && s.Filter != nil {
		s.Filter.collectSpans(out)
	}
	if s.Kind == SelSubpath && s.Subpath != nil {
		s.Subpath.collectSpans(out)
	}
}

func (e *Expr) collectSpans(out *[]Span) {
	if e == nil {
		return
	}
	if e.span.set {
		*out = append(*out, Span{Kind: NodeExpr, Range: ByteRange{e.span.start, e.span.end}})
	}
	if e.Path != nil {
		e.Path.collectSpans(out)
	}
	if e.LHS != nil {
		e.LHS.collectSpans(out)
	}
	if e.RHS != nil {
		e.RHS.collectSpans(out)
	}
	if e.Inner != nil {
		e.Inner.collectSpans(out)
	}
}
