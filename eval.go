package jsonpath

import (
	"math"

	"github.com/CraftSpider/jsonpath-plus/jsonvalue"
)

// match is the evaluator's working unit: one (Location, Value) pair (§3,
// Match set).
type match struct {
	loc Location
	val jsonvalue.Value
}

// Find evaluates p against doc and returns the matched values in order.
func (p *Path) Find(doc jsonvalue.Value) []jsonvalue.Value {
	ms := p.evaluate(doc)
	out := make([]jsonvalue.Value, len(ms))
	for i, m := range ms {
		out[i] = m.val
	}
	return out
}

// FindPaths evaluates p against doc and returns the matched locations in
// order.
func (p *Path) FindPaths(doc jsonvalue.Value) []Location {
	ms := p.evaluate(doc)
	out := make([]Location, len(ms))
	for i, m := range ms {
		out[i] = m.loc
	}
	return out
}

// FindWithPaths evaluates p against doc and returns both location and
// value for every match, in order.
func (p *Path) FindWithPaths(doc jsonvalue.Value) []LocationValue {
	ms := p.evaluate(doc)
	out := make([]LocationValue, len(ms))
	for i, m := range ms {
		out[i] = LocationValue{Location: m.loc, Value: m.val}
	}
	return out
}

// LocationValue pairs a matched Location with its Value, the external
// shape of a Match set entry (§3).
type LocationValue struct {
	Location Location
	Value    jsonvalue.Value
}

// evaluate runs the full algorithm of §4.3: start from a single match at
// the document root, then apply each step in turn.
func (p *Path) evaluate(doc jsonvalue.Value) []match {
	root := match{loc: Location{}, val: doc}
	return evalPath(p, doc, root, p.opts)
}

// evalPath evaluates a (possibly nested) path. cur is the match that "@"
// binds to; "$" always binds to doc, the original top-level document,
// regardless of nesting depth.
func evalPath(p *Path, doc jsonvalue.Value, cur match, opts Options) []match {
	var start match
	if p.Root == RootDocument {
		start = match{loc: Location{}, val: doc}
	} else {
		start = cur
	}
	ms := []match{start}
	for _, step := range p.Steps {
		ms = applyStep(step, ms, doc, opts)
	}
	return ms
}

func applyStep(step Step, ms []match, doc jsonvalue.Value, opts Options) []match {
	var out []match
	switch step.Kind {
	case Bracket, Dot:
		for _, m := range ms {
			for _, sel := range step.Union {
				out = append(out, applySelector(sel, m, doc, opts)...)
			}
		}
	case Recursive:
		for _, m := range ms {
			for _, dm := range descendants(m, opts.MaxRecursionDepth) {
				for _, sel := range step.Union {
					out = append(out, applySelector(sel, dm, doc, opts)...)
				}
			}
		}
	}
	return out
}

// descendants enumerates m and every descendant of m in pre-order document
// order, using an explicit work list (stack of pending frames) rather than
// native recursion so arbitrarily deep documents cannot overflow the Go
// stack (§5). maxDepth, if positive, bounds how many levels below m are
// visited; 0 means unbounded.
func descendants(start match, maxDepth int) []match {
	type frame struct {
		m     match
		depth int
	}
	var result []match
	stack := []frame{{start, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		result = append(result, f.m)
		if maxDepth > 0 && f.depth >= maxDepth {
			continue
		}
		children := childMatches(f.m)
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{children[i], f.depth + 1})
		}
	}
	return result
}

// childMatches returns the immediate children of m in document order, or
// nil if m's value is not an array or object.
func childMatches(m match) []match {
	switch m.val.Kind() {
	case jsonvalue.Array:
		n := m.val.Len()
		out := make([]match, n)
		for i := 0; i < n; i++ {
			out[i] = match{loc: m.loc.withIndex(i), val: m.val.At(i)}
		}
		return out
	case jsonvalue.Object:
		n := m.val.ObjectLen()
		out := make([]match, n)
		for i := 0; i < n; i++ {
			k := m.val.KeyAt(i)
			v, _ := m.val.Get(k)
			out[i] = match{loc: m.loc.withKey(k), val: v}
		}
		return out
	default:
		return nil
	}
}

// lookupLocation resolves a Location against root, returning ok=false if
// any step along the way does not exist.
func lookupLocation(root jsonvalue.Value, loc Location) (jsonvalue.Value, bool) {
	v := root
	for _, s := range loc.Steps {
		switch s.Kind {
		case LocKey:
			if v.Kind() != jsonvalue.Object {
				return nil, false
			}
			nv, ok := v.Get(s.Key)
			if !ok {
				return nil, false
			}
			v = nv
		case LocIndex:
			if v.Kind() != jsonvalue.Array || s.Index < 0 || s.Index >= v.Len() {
				return nil, false
			}
			v = v.At(s.Index)
		}
	}
	return v, true
}

func applySelector(sel Selector, m match, doc jsonvalue.Value, opts Options) []match {
	switch sel.Kind {
	case SelWildcard:
		return childMatches(m)

	case SelName:
		if m.val.Kind() != jsonvalue.Object {
			return nil
		}
		v, ok := m.val.Get(sel.Name)
		if !ok {
			return nil
		}
		return []match{{loc: m.loc.withKey(sel.Name), val: v}}

	case SelIndex:
		if m.val.Kind() != jsonvalue.Array {
			return nil
		}
		n := m.val.Len()
		i := sel.Index
		if i < 0 {
			i += n
		}
		if i < 0 || i >= n {
			return nil
		}
		return []match{{loc: m.loc.withIndex(i), val: m.val.At(i)}}

	case SelSlice:
		if m.val.Kind() != jsonvalue.Array {
			return nil
		}
		idx, err := sliceIndices(sel.Slice, m.val.Len())
		if err != nil {
			// Only a computed (not literal) zero step reaches here; the
			// parser already rejects a literal zero step. There is no
			// channel to surface an EvalError from selector application,
			// so a step of zero simply yields no matches.
			return nil
		}
		out := make([]match, len(idx))
		for i, j := range idx {
			out[i] = match{loc: m.loc.withIndex(j), val: m.val.At(j)}
		}
		return out

	case SelFilter:
		var out []match
		for _, child := range childMatches(m) {
			if evalFilterTruthy(sel.Filter, doc, child, opts) {
				out = append(out, child)
			}
		}
		return out

	case SelParent:
		parent, ok := m.loc.Parent()
		if !ok {
			return nil
		}
		v, ok := lookupLocation(doc, parent)
		if !ok {
			return nil
		}
		return []match{{loc: parent, val: v}}

	case SelIdentity:
		last, ok := m.loc.Last()
		if !ok {
			return nil
		}
		var v jsonvalue.Value
		if last.Kind == LocKey {
			v = jsonvalue.NewNative(last.Key)
		} else {
			v = jsonvalue.NewNative(int64(last.Index))
		}
		return []match{{loc: m.loc, val: v}}

	case SelSubpath:
		var out []match
		for _, sm := range evalPath(sel.Subpath, doc, m, opts) {
			switch sm.val.Kind() {
			case jsonvalue.String:
				out = append(out, applySelector(Selector{Kind: SelName, Name: sm.val.Str()}, m, doc, opts)...)
			case jsonvalue.Int:
				out = append(out, applySelector(Selector{Kind: SelIndex, Index: int(sm.val.Int())}, m, doc, opts)...)
			}
			// Other result kinds are silently dropped (§3, Subpath; §9).
		}
		return out
	}
	return nil
}

// sliceIndices implements the Python-style slice algorithm of §4.3: each
// component defaults per the sign of step, and out-of-range bounds clamp
// rather than error.
func sliceIndices(b SliceBounds, n int) ([]int, error) {
	step := 1
	if b.StepSet {
		step = b.Step
	}
	if step == 0 {
		return nil, &EvalError{Message: "slice step must not be zero"}
	}

	var start, end int
	if step > 0 {
		start, end = 0, n
	} else {
		start, end = n-1, -n-1
	}
	if b.StartSet {
		start = b.Start
	}
	if b.EndSet {
		end = b.End
	}
	start = clampSliceIndex(start, n, step)
	end = clampSliceIndex(end, n, step)

	var idx []int
	if step > 0 {
		for i := start; i < end; i += step {
			idx = append(idx, i)
		}
	} else {
		for i := start; i > end; i += step {
			idx = append(idx, i)
		}
	}
	return idx, nil
}

func clampSliceIndex(i, n, step int) int {
	if i < 0 {
		i += n
		if i < 0 {
			if step > 0 {
				return 0
			}
			return -1
		}
		return i
	}
	if i >= n {
		if step > 0 {
			return n
		}
		return n - 1
	}
	return i
}

// --- filter expression evaluation ---

// erKind discriminates a coerced filter value, including the "nothing"
// token of §3/§9 that keeps every filter expression total.
type erKind int

const (
	erNull erKind = iota
	erBool
	erInt
	erFloat
	erString
	erNode   // a single matched object/array value, kept opaque
	erMulti  // a path expression result with more than one element
	erNothing
)

type evalResult struct {
	kind erKind
	b    bool
	i    int64
	f    float64
	s    string
	v    jsonvalue.Value
}

func (r evalResult) truthy() bool {
	switch r.kind {
	case erNull, erNothing:
		return false
	case erBool:
		return r.b
	case erInt:
		return r.i != 0
	case erFloat:
		return r.f != 0
	case erString:
		return r.s != ""
	case erNode, erMulti:
		return true
	default:
		return false
	}
}

func (r evalResult) isNumeric() bool {
	return r.kind == erInt || r.kind == erFloat
}

func (r evalResult) asFloat() float64 {
	if r.kind == erInt {
		return float64(r.i)
	}
	return r.f
}

// rawResult is the uncoerced evaluation of an Expr: either a path
// expression's raw match list, or an already-scalar evalResult. Coercion
// (§3, "Path expressions inside filters are coerced when compared") is
// applied lazily, exactly at the points the design calls for it: truthy
// tests, comparisons, and arithmetic.
type rawResult struct {
	isPath  bool
	matches []match
	scalar  evalResult
}

func scalarRaw(r evalResult) rawResult { return rawResult{scalar: r} }

func coerceRaw(r rawResult) evalResult {
	if !r.isPath {
		return r.scalar
	}
	return coercePath(r.matches)
}

// coercePath implements the path-result coercion rule: empty -> nothing,
// single element -> unwrapped to its kind, multiple elements -> a
// non-empty "multi" marker that is truthy but otherwise uncomparable.
func coercePath(ms []match) evalResult {
	switch len(ms) {
	case 0:
		return evalResult{kind: erNothing}
	case 1:
		return valueToResult(ms[0].val)
	default:
		return evalResult{kind: erMulti}
	}
}

func valueToResult(v jsonvalue.Value) evalResult {
	switch v.Kind() {
	case jsonvalue.Null:
		return evalResult{kind: erNull}
	case jsonvalue.Bool:
		return evalResult{kind: erBool, b: v.Bool()}
	case jsonvalue.Int:
		return evalResult{kind: erInt, i: v.Int()}
	case jsonvalue.Float:
		return evalResult{kind: erFloat, f: v.Float()}
	case jsonvalue.String:
		return evalResult{kind: erString, s: v.Str()}
	default:
		return evalResult{kind: erNode, v: v}
	}
}

func evalFilterTruthy(e *Expr, doc jsonvalue.Value, cur match, opts Options) bool {
	return coerceRaw(evalExprRaw(e, doc, cur, opts)).truthy()
}

func evalExprRaw(e *Expr, doc jsonvalue.Value, cur match, opts Options) rawResult {
	switch e.Kind {
	case ExprNull:
		return scalarRaw(evalResult{kind: erNull})
	case ExprBool:
		return scalarRaw(evalResult{kind: erBool, b: e.Bool})
	case ExprInt:
		return scalarRaw(evalResult{kind: erInt, i: e.Int})
	case ExprFloat:
		return scalarRaw(evalResult{kind: erFloat, f: e.Float})
	case ExprString:
		return scalarRaw(evalResult{kind: erString, s: e.Str})
	case ExprPath:
		return rawResult{isPath: true, matches: evalPath(e.Path, doc, cur, opts)}
	case ExprGroup:
		return evalExprRaw(e.Inner, doc, cur, opts)
	case ExprUnary:
		operand := coerceRaw(evalExprRaw(e.LHS, doc, cur, opts))
		if e.Op == OpNot {
			return scalarRaw(evalResult{kind: erBool, b: !operand.truthy()})
		}
		return scalarRaw(negate(operand))
	case ExprBinary:
		switch e.Op {
		case OpAnd:
			l := coerceRaw(evalExprRaw(e.LHS, doc, cur, opts))
			if !l.truthy() {
				return scalarRaw(evalResult{kind: erBool, b: false})
			}
			r := coerceRaw(evalExprRaw(e.RHS, doc, cur, opts))
			return scalarRaw(evalResult{kind: erBool, b: r.truthy()})
		case OpOr:
			l := coerceRaw(evalExprRaw(e.LHS, doc, cur, opts))
			if l.truthy() {
				return scalarRaw(evalResult{kind: erBool, b: true})
			}
			r := coerceRaw(evalExprRaw(e.RHS, doc, cur, opts))
			return scalarRaw(evalResult{kind: erBool, b: r.truthy()})
		case OpEq, OpNeq, OpLt, OpLte, OpGt, OpGte:
			l := coerceRaw(evalExprRaw(e.LHS, doc, cur, opts))
			r := coerceRaw(evalExprRaw(e.RHS, doc, cur, opts))
			return scalarRaw(evalResult{kind: erBool, b: compare(e.Op, l, r)})
		default:
			l := coerceRaw(evalExprRaw(e.LHS, doc, cur, opts))
			r := coerceRaw(evalExprRaw(e.RHS, doc, cur, opts))
			return scalarRaw(arithmetic(e.Op, l, r))
		}
	}
	return scalarRaw(evalResult{kind: erNothing})
}

func negate(r evalResult) evalResult {
	switch r.kind {
	case erInt:
		return evalResult{kind: erInt, i: -r.i}
	case erFloat:
		return evalResult{kind: erFloat, f: -r.f}
	default:
		return evalResult{kind: erNothing}
	}
}

// compare implements §4.3's comparison rules: nothing compares unequal to
// everything except another nothing under ==; multi-element and node
// (object/array) results follow the mismatched-kind rule (false, except
// != which is true) unless both sides are the same node-ish shape.
func compare(op ExprOp, a, b evalResult) bool {
	if a.kind == erNothing || b.kind == erNothing {
		both := a.kind == erNothing && b.kind == erNothing
		if op == OpEq {
			return both
		}
		if op == OpNeq {
			return !both
		}
		return false
	}
	if a.kind == erMulti || b.kind == erMulti {
		if op == OpNeq {
			return true
		}
		return false
	}
	if a.kind == erNode || b.kind == erNode {
		if a.kind == erNode && b.kind == erNode {
			eq := a.v.Equal(b.v)
			if op == OpEq {
				return eq
			}
			if op == OpNeq {
				return !eq
			}
			return false
		}
		if op == OpNeq {
			return true
		}
		return false
	}
	if a.isNumeric() && b.isNumeric() {
		af, bf := a.asFloat(), b.asFloat()
		switch op {
		case OpEq:
			return af == bf
		case OpNeq:
			return af != bf
		case OpLt:
			return af < bf
		case OpLte:
			return af <= bf
		case OpGt:
			return af > bf
		case OpGte:
			return af >= bf
		}
		return false
	}
	if a.kind == erString && b.kind == erString {
		switch op {
		case OpEq:
			return a.s == b.s
		case OpNeq:
			return a.s != b.s
		case OpLt:
			return a.s < b.s
		case OpLte:
			return a.s <= b.s
		case OpGt:
			return a.s > b.s
		case OpGte:
			return a.s >= b.s
		}
		return false
	}
	if a.kind == erBool && b.kind == erBool {
		if op == OpEq {
			return a.b == b.b
		}
		if op == OpNeq {
			return a.b != b.b
		}
		return false
	}
	if a.kind == erNull && b.kind == erNull {
		return op == OpEq
	}
	// Mismatched kinds.
	return op == OpNeq
}

// arithmetic implements §4.3: integer-preserving exact arithmetic,
// division/modulo by the divisor's sign, float promotion when inexact, and
// "nothing" for any non-numeric operand.
func arithmetic(op ExprOp, a, b evalResult) evalResult {
	if !a.isNumeric() || !b.isNumeric() {
		return evalResult{kind: erNothing}
	}
	if a.kind == erInt && b.kind == erInt {
		switch op {
		case OpAdd:
			return evalResult{kind: erInt, i: a.i + b.i}
		case OpSub:
			return evalResult{kind: erInt, i: a.i - b.i}
		case OpMul:
			return evalResult{kind: erInt, i: a.i * b.i}
		case OpDiv:
			if b.i == 0 {
				return evalResult{kind: erNothing}
			}
			if a.i%b.i == 0 {
				return evalResult{kind: erInt, i: a.i / b.i}
			}
			return evalResult{kind: erFloat, f: float64(a.i) / float64(b.i)}
		case OpMod:
			if b.i == 0 {
				return evalResult{kind: erNothing}
			}
			m := a.i % b.i
			if m != 0 && (m < 0) != (b.i < 0) {
				m += b.i
			}
			return evalResult{kind: erInt, i: m}
		}
	}
	af, bf := a.asFloat(), b.asFloat()
	switch op {
	case OpAdd:
		return evalResult{kind: erFloat, f: af + bf}
	case OpSub:
		return evalResult{kind: erFloat, f: af - bf}
	case OpMul:
		return evalResult{kind: erFloat, f: af * bf}
	case OpDiv:
		if bf == 0 {
			return evalResult{kind: erNothing}
		}
		return evalResult{kind: erFloat, f: af / bf}
	case OpMod:
		if bf == 0 {
			return evalResult{kind: erNothing}
		}
		m := math.Mod(af, bf)
		if m != 0 && (m < 0) != (bf < 0) {
			m += bf
		}
		return evalResult{kind: erFloat, f: m}
	}
	return evalResult{kind: erNothing}
}
