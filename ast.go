package jsonpath

// Path is a compiled path expression: a root anchor plus an ordered list of
// Steps. It is immutable once returned from Parse/Compile. Equality (Equal)
// and printing (String) are structural and ignore spans (§4.2); Path has no
// hash function.
type Path struct {
	Root  Root
	Steps []Step
	span  span
	opts  Options
}

// Root identifies what a Path (or an embedded subpath) is anchored to.
type Root int

const (
	// RootDocument anchors a path at the document root ("$").
	RootDocument Root = iota
	// RootCurrent anchors a path at the "current node" of its enclosing
	// evaluation context ("@"), meaningful inside filters and embedded
	// subpaths.
	RootCurrent
)

func (r Root) String() string {
	if r == RootCurrent {
		return "@"
	}
	return "$"
}

// span is a byte-offset range into the original path text. It is populated
// on every node when the parser runs in spanned mode, and left unset
// otherwise. Spans are never consulted by the evaluator and are excluded
// from structural equality and pretty-printing.
type span struct {
	start, end int
	set        bool
}

// StepKind discriminates the three step shapes of §3 (Step).
type StepKind int

const (
	// Bracket is a "[...]" step, holding an ordered union of selectors.
	Bracket StepKind = iota
	// Dot is a ".name"-shaped step: equivalent to a Bracket with one
	// selector, kept distinct so the printer can reproduce dotted form.
	Dot
	// Recursive is a ".." or "..[...]"-shaped step: apply the wrapped
	// selector(s) at every descendant depth, including the current node.
	Recursive
)

// Step is one segment of a Path.
type Step struct {
	Kind StepKind
	// Union holds the selector(s) for this step. A Dot or Recursive step
	// always has exactly one; a Bracket step may have more than one.
	Union []Selector
	span  span
}

// SelectorKind discriminates the Selector variants of §3.
type SelectorKind int

const (
	SelWildcard SelectorKind = iota
	SelName
	SelIndex
	SelSlice
	SelFilter
	SelParent
	SelIdentity
	SelSubpath
)

func (k SelectorKind) String() string {
	switch k {
	case SelWildcard:
		return "wildcard"
	case SelName:
		return "name"
	case SelIndex:
		return "index"
	case SelSlice:
		return "slice"
	case SelFilter:
		return "filter"
	case SelParent:
		return "parent"
	case SelIdentity:
		return "identity"
	case SelSubpath:
		return "subpath"
	default:
		return "unknown"
	}
}

// Selector is one elementary matcher. Exactly one of the typed fields
// below is meaningful, chosen by Kind.
type Selector struct {
	Kind SelectorKind
	span span

	// Name holds the key for a SelName selector.
	Name string

	// Index holds the (possibly negative) array index for a SelIndex
	// selector.
	Index int

	// Slice holds the bounds for a SelSlice selector.
	Slice SliceBounds

	// Filter holds the predicate expression for a SelFilter selector.
	Filter *Expr

	// Subpath holds the nested Path for a SelSubpath selector.
	Subpath *Path
}

// SliceBounds holds the three optional components of a slice selector
// "start:end:step". The *Set flags distinguish an explicit 0 from an
// omitted component, since the two default differently (§3, Slice).
type SliceBounds struct {
	Start, End, Step          int
	StartSet, EndSet, StepSet bool
}

// ExprKind discriminates the Expression variants of §3.
type ExprKind int

const (
	ExprNull ExprKind = iota
	ExprBool
	ExprInt
	ExprFloat
	ExprString
	ExprPath
	ExprUnary
	ExprBinary
	ExprGroup
)

// ExprOp identifies a unary or binary operator used by ExprUnary/ExprBinary
// nodes.
type ExprOp int

const (
	OpNot ExprOp = iota
	OpNeg
	OpEq
	OpNeq
	OpLt
	OpLte
	OpGt
	OpGte
	OpAnd
	OpOr
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
)

var exprOpText = map[ExprOp]string{
	OpNot: "!", OpNeg: "-",
	OpEq: "==", OpNeq: "!=", OpLt: "<", OpLte: "<=", OpGt: ">", OpGte: ">=",
	OpAnd: "&&", OpOr: "||",
	OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "/", OpMod: "%",
}

func (o ExprOp) String() string {
	if s, ok := exprOpText[o]; ok {
		return s
	}
	return "?"
}

// Expr is one node of the filter expression language (§3, Expression).
type Expr struct {
	Kind ExprKind
	span span

	// Literal payloads, meaningful kind-by-kind: ExprBool->Bool,
	// ExprInt->Int, ExprFloat->Float, ExprString->Str.
	Bool  bool
	Int   int64
	Float float64
	Str   string

	// Path carries a nested Path for an ExprPath node.
	Path *Path

	// Op/LHS hold a unary operator and its operand for ExprUnary.
	// Op/LHS/RHS hold a binary operator and its operands for ExprBinary.
	Op  ExprOp
	LHS *Expr
	RHS *Expr

	// Inner wraps the sub-expression of an ExprGroup node. Kept as a
	// distinct node, rather than collapsed away, purely so the
	// pretty-printer can reproduce source parenthesization.
	Inner *Expr
}
