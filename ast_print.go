package jsonpath

import (
	"strconv"
	"strings"
)

// String reconstructs path text equivalent to what produced p (§4.2: "A
// pretty-printer must be able to reconstruct a path textually equivalent
// to the input, modulo whitespace and equivalent quote styles").
func (p *Path) String() string {
	var b strings.Builder
	b.WriteString(p.Root.String())
	for _, s := range p.Steps {
		s.writeTo(&b)
	}
	return b.String()
}

func (s Step) writeTo(b *strings.Builder) {
	switch s.Kind {
	case Dot:
		b.WriteByte('.')
		s.Union[0].writeDotted(b)
	case Recursive:
		b.WriteString("..")
		if len(s.Union) == 1 && s.Union[0].dottable() {
			s.Union[0].writeDotted(b)
			return
		}
		b.WriteByte('[')
		writeUnion(b, s.Union)
		b.WriteByte(']')
	default: // Bracket
		b.WriteByte('[')
		writeUnion(b, s.Union)
		b.WriteByte(']')
	}
}

func writeUnion(b *strings.Builder, union []Selector) {
	for i, sel := range union {
		if i > 0 {
			b.WriteByte(',')
		}
		sel.writeBracketed(b)
	}
}

// dottable reports whether sel can be written after a bare '.' or '..'
// without brackets: a name that scans as an identifier, or a wildcard,
// parent or identity selector.
func (s Selector) dottable() bool {
	switch s.Kind {
	case SelName:
		for i, ch := range s.Name {
			if !isIdentifierCharacter(ch) || (i == 0 && !isIdentifierStartCharacter(ch)) {
				return false
			}
		}
		return s.Name != "" && s.Name != "true" && s.Name != "false"
	case SelWildcard, SelParent, SelIdentity:
		return true
	default:
		return false
	}
}

func (s Selector) writeDotted(b *strings.Builder) {
	switch s.Kind {
	case SelName:
		b.WriteString(s.Name)
	case SelWildcard:
		b.WriteByte('*')
	case SelParent:
		b.WriteByte('^')
	case SelIdentity:
		b.WriteByte('~')
	default:
		s.writeBracketed(b)
	}
}

func (s Selector) writeBracketed(b *strings.Builder) {
	switch s.Kind {
	case SelName:
		b.WriteByte('\'')
		b.WriteString(strings.ReplaceAll(strings.ReplaceAll(s.Name, "\\", "\\\\"), "'", "\\'"))
		b.WriteByte('\'')
	case SelWildcard:
		b.WriteByte('*')
	case SelParent:
		b.WriteByte('^')
	case SelIdentity:
		b.WriteByte('~')
	case SelIndex:
		b.WriteString(strconv.Itoa(s.Index))
	case SelSlice:
		if s.Slice.StartSet {
			b.WriteString(strconv.Itoa(s.Slice.Start))
		}
		b.WriteByte(':')
		if s.Slice.EndSet {
			b.WriteString(strconv.Itoa(s.Slice.End))
		}
		if s.Slice.StepSet {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(s.Slice.Step))
		}
	case SelFilter:
		b.WriteString("?(")
		b.WriteString(s.Filter.String())
		b.WriteByte(')')
	case SelSubpath:
		b.WriteString(s.Subpath.String())
	}
}

// isNumericLiteral reports whether e prints as a bare digit sequence that
// could be re-lexed as part of a preceding "-" operator.
func isNumericLiteral(e *Expr) bool {
	return e.Kind == ExprInt || e.Kind == ExprFloat
}

// String reconstructs filter-expression text.
func (e *Expr) String() string {
	var b strings.Builder
	e.writeTo(&b)
	return b.String()
}

func (e *Expr) writeTo(b *strings.Builder) {
	switch e.Kind {
	case ExprNull:
		b.WriteString("null")
	case ExprBool:
		if e.Bool {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case ExprInt:
		b.WriteString(strconv.FormatInt(e.Int, 10))
	case ExprFloat:
		// The scanner reads a number without a '.' as an integer and has no
		// exponent syntax, so always print plain decimal with a '.'.
		f := strconv.FormatFloat(e.Float, 'f', -1, 64)
		if !strings.Contains(f, ".") {
			f += ".0"
		}
		b.WriteString(f)
	case ExprString:
		b.WriteByte('\'')
		b.WriteString(strings.ReplaceAll(strings.ReplaceAll(e.Str, "\\", "\\\\"), "'", "\\'"))
		b.WriteByte('\'')
	case ExprPath:
		b.WriteString(e.Path.String())
	case ExprUnary:
		b.WriteString(e.Op.String())
		if e.Op == OpNeg && isNumericLiteral(e.LHS) {
			// A bare "-" immediately before a number would re-lex as part of
			// that number's literal (the scanner folds a leading "-" into a
			// numeric token), silently turning the unary node into a signed
			// literal on reparse. A space keeps the operator its own token.
			b.WriteByte(' ')
		}
		e.LHS.writeTo(b)
	case ExprBinary:
		e.LHS.writeTo(b)
		b.WriteByte(' ')
		b.WriteString(e.Op.String())
		b.WriteByte(' ')
		e.RHS.writeTo(b)
	case ExprGroup:
		b.WriteByte('(')
		e.Inner.writeTo(b)
		b.WriteByte(')')
	}
}
