package jsonpath

import "strconv"

// parseExpr parses a filter expression (§3, Expression), implemented as a
// standard precedence-climbing descent: || binds loosest, then &&, then
// the comparison operators (non-associative, as in the grammar), then
// additive, then multiplicative, then unary, then atoms.
func (p *Parser) parseExpr() (*Expr, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (*Expr, error) {
	lhs, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for {
		tok, _, pos := p.scan()
		if tok != Or {
			p.unscan()
			return lhs, nil
		}
		rhs, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		end := pos
		if rhs.span.set {
			end = rhs.span.end
		}
		lhs = &Expr{Kind: ExprBinary, Op: OpOr, LHS: lhs, RHS: rhs, span: p.mkspan(exprStart(lhs), end)}
	}
}

func (p *Parser) parseAnd() (*Expr, error) {
	lhs, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for {
		tok, _, pos := p.scan()
		if tok != And {
			p.unscan()
			return lhs, nil
		}
		rhs, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		end := pos
		if rhs.span.set {
			end = rhs.span.end
		}
		lhs = &Expr{Kind: ExprBinary, Op: OpAnd, LHS: lhs, RHS: rhs, span: p.mkspan(exprStart(lhs), end)}
	}
}

var comparisonOps = map[Token]ExprOp{
	Equals: OpEq, NEQ: OpNeq, LT: OpLt, LTE: OpLte, GT: OpGt, GTE: OpGte,
}

// parseComparison parses a single optional comparison. Comparisons do not
// chain ("a == b == c" is a syntax error), matching the grammar's
// non-associative comparison level.
func (p *Parser) parseComparison() (*Expr, error) {
	lhs, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	tok, _, pos := p.scan()
	op, ok := comparisonOps[tok]
	if !ok {
		p.unscan()
		return lhs, nil
	}
	rhs, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	end := pos
	if rhs.span.set {
		end = rhs.span.end
	}
	return &Expr{Kind: ExprBinary, Op: op, LHS: lhs, RHS: rhs, span: p.mkspan(exprStart(lhs), end)}, nil
}

func (p *Parser) parseAdditive() (*Expr, error) {
	lhs, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		tok, _, pos := p.scan()
		var op ExprOp
		switch tok {
		case Plus:
			op = OpAdd
		case Minus:
			op = OpSub
		default:
			p.unscan()
			return lhs, nil
		}
		rhs, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		end := pos
		if rhs.span.set {
			end = rhs.span.end
		}
		lhs = &Expr{Kind: ExprBinary, Op: op, LHS: lhs, RHS: rhs, span: p.mkspan(exprStart(lhs), end)}
	}
}

func (p *Parser) parseMultiplicative() (*Expr, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		tok, _, pos := p.scan()
		var op ExprOp
		switch tok {
		case Asterisk:
			op = OpMul
		case Slash:
			op = OpDiv
		case Percent:
			op = OpMod
		default:
			p.unscan()
			return lhs, nil
		}
		rhs, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		end := pos
		if rhs.span.set {
			end = rhs.span.end
		}
		lhs = &Expr{Kind: ExprBinary, Op: op, LHS: lhs, RHS: rhs, span: p.mkspan(exprStart(lhs), end)}
	}
}

func (p *Parser) parseUnary() (*Expr, error) {
	tok, _, pos := p.scan()
	switch tok {
	case Not:
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		end := pos + 1
		if operand.span.set {
			end = operand.span.end
		}
		return &Expr{Kind: ExprUnary, Op: OpNot, LHS: operand, span: p.mkspan(pos, end)}, nil
	case Minus:
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		end := pos + 1
		if operand.span.set {
			end = operand.span.end
		}
		return &Expr{Kind: ExprUnary, Op: OpNeg, LHS: operand, span: p.mkspan(pos, end)}, nil
	default:
		p.unscan()
		return p.parseAtom()
	}
}

func (p *Parser) parseAtom() (*Expr, error) {
	tok, lit, pos := p.scan()
	switch tok {
	case Integer:
		v, err := strconv.ParseInt(lit, 10, 64)
		if err != nil {
			return nil, parseErrorf(pos, []Token{Integer}, "invalid integer %q", lit)
		}
		return &Expr{Kind: ExprInt, Int: v, span: p.mkspan(pos, pos+len(lit))}, nil
	case Float:
		v, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return nil, parseErrorf(pos, []Token{Float}, "invalid float %q", lit)
		}
		return &Expr{Kind: ExprFloat, Float: v, span: p.mkspan(pos, pos+len(lit))}, nil
	case Bool:
		return &Expr{Kind: ExprBool, Bool: lit == "true", span: p.mkspan(pos, pos+len(lit))}, nil
	case Identifier:
		if lit == "null" {
			return &Expr{Kind: ExprNull, span: p.mkspan(pos, pos+len(lit))}, nil
		}
		return nil, parseErrorf(pos, nil, "unexpected identifier %q in filter expression", lit)
	case SingleQuotedString, DoubleQuotedString:
		return &Expr{Kind: ExprString, Str: unquote(lit), span: p.mkspan(pos, pos+len(lit))}, nil
	case Dollar, At:
		p.unscan()
		path, err := p.parsePath()
		if err != nil {
			return nil, err
		}
		end := pos
		if path.span.set {
			end = path.span.end
		}
		return &Expr{Kind: ExprPath, Path: path, span: p.mkspan(pos, end)}, nil
	case ParenLeft:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		rp, _, rpPos := p.scan()
		if rp != ParenRight {
			return nil, parseErrorf(rpPos, []Token{ParenRight}, "expected ')' to close grouped expression")
		}
		return &Expr{Kind: ExprGroup, Inner: inner, span: p.mkspan(pos, rpPos+1)}, nil
	default:
		return nil, parseErrorf(pos, nil, "unexpected token %q in filter expression", lit)
	}
}

func exprStart(e *Expr) int {
	if e.span.set {
		return e.span.start
	}
	return 0
}
