package jsonpath

import "encoding/json"

// MarshalJSON renders the compiled path as a tagged tree, one object per
// node with a "node" discriminator, mirroring how the teacher's AST
// serializes itself for diagnostics tooling. Spans are included only when
// present (§4.1, Spans).
func (p *Path) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Node  string  `json:"node"`
		Root  string  `json:"root"`
		Steps []Step  `json:"steps"`
		Span  *[2]int `json:"span,omitempty"`
	}{
		"path",
		p.Root.String(),
		p.Steps,
		spanJSON(p.span),
	})
}

func (s Step) MarshalJSON() ([]byte, error) {
	kind := "bracket"
	switch s.Kind {
	case Dot:
		kind = "dot"
	case Recursive:
		kind = "recursive"
	}
	return json.Marshal(struct {
		Node  string     `json:"node"`
		Kind  string     `json:"kind"`
		Union []Selector `json:"union"`
		Span  *[2]int    `json:"span,omitempty"`
	}{
		"step",
		kind,
		s.Union,
		spanJSON(s.span),
	})
}

func (s Selector) MarshalJSON() ([]byte, error) {
	type payload struct {
		Node    string       `json:"node"`
		Kind    string        `json:"kind"`
		Name    string        `json:"name,omitempty"`
		Index   int           `json:"index,omitempty"`
		Slice   *SliceBounds  `json:"slice,omitempty"`
		Filter  *Expr         `json:"filter,omitempty"`
		Subpath *Path         `json:"subpath,omitempty"`
		Span    *[2]int       `json:"span,omitempty"`
	}
	p := payload{Node: "selector", Kind: s.Kind.String(), Span: spanJSON(s.span)}
	switch s.Kind {
	case SelName:
		p.Name = s.Name
	case SelIndex:
		p.Index = s.Index
	case SelSlice:
		p.Slice = &s.Slice
	case SelFilter:
		p.Filter = s.Filter
	case SelSubpath:
		p.Subpath = s.Subpath
	}
	return json.Marshal(p)
}

func (e *Expr) MarshalJSON() ([]byte, error) {
	if e == nil {
		return []byte("null"), nil
	}
	type payload struct {
		Node  string  `json:"node"`
		Kind  string  `json:"kind"`
		Bool  *bool   `json:"bool,omitempty"`
		Int   *int64  `json:"int,omitempty"`
		Float *float64 `json:"float,omitempty"`
		Str   *string `json:"str,omitempty"`
		Path  *Path   `json:"path,omitempty"`
		Op    string  `json:"op,omitempty"`
		LHS   *Expr   `json:"lhs,omitempty"`
		RHS   *Expr   `json:"rhs,omitempty"`
		Inner *Expr   `json:"inner,omitempty"`
		Span  *[2]int `json:"span,omitempty"`
	}
	p := payload{Node: "expr", Span: spanJSON(e.span)}
	switch e.Kind {
	case ExprNull:
		p.Kind = "null"
	case ExprBool:
		p.Kind, p.Bool = "bool", &e.Bool
	case ExprInt:
		p.Kind, p.Int = "int", &e.Int
	case ExprFloat:
		p.Kind, p.Float = "float", &e.Float
	case ExprString:
		p.Kind, p.Str = "string", &e.Str
	case ExprPath:
		p.Kind, p.Path = "path", e.Path
	case ExprUnary:
		p.Kind, p.Op, p.LHS = "unary", e.Op.String(), e.LHS
	case ExprBinary:
		p.Kind, p.Op, p.LHS, p.RHS = "binary", e.Op.String(), e.LHS, e.RHS
	case ExprGroup:
		p.Kind, p.Inner = "group", e.Inner
	}
	return json.Marshal(p)
}

func spanJSON(s span) *[2]int {
	if !s.set {
		return nil
	}
	return &[2]int{s.start, s.end}
}
