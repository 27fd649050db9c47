package jsonpath

// Equal reports whether two compiled paths are structurally identical,
// ignoring spans (§3: "Equality ignores spans").
func (p *Path) Equal(other *Path) bool {
	if p == nil || other == nil {
		return p == other
	}
	if p.Root != other.Root || len(p.Steps) != len(other.Steps) {
		return false
	}
	for i := range p.Steps {
		if !p.Steps[i].Equal(&other.Steps[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether two steps are structurally identical.
func (s *Step) Equal(other *Step) bool {
	if s.Kind != other.Kind || len(s.Union) != len(other.Union) {
		return false
	}
	for i := range s.Union {
		if !s.Union[i].Equal(&other.Union[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether two selectors are structurally identical.
func (s *Selector) Equal(other *Selector) bool {
	if s.Kind != other.Kind {
		return false
	}
	switch s.Kind {
	case SelName:
		return s.Name == other.Name
	case SelIndex:
		return s.Index == other.Index
	case SelSlice:
		return s.Slice == other.Slice
	case SelFilter:
		return s.Filter.Equal(other.Filter)
	case SelSubpath:
		return s.Subpath.Equal(other.Subpath)
	default: // wildcard, parent, identity
		return true
	}
}

// Equal reports whether two filter expressions are structurally identical.
func (e *Expr) Equal(other *Expr) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.Kind != other.Kind {
		return false
	}
	switch e.Kind {
	case ExprNull:
		return true
	case ExprBool:
		return e.Bool == other.Bool
	case ExprInt:
		return e.Int == other.Int
	case ExprFloat:
		return e.Float == other.Float
	case ExprString:
		return e.Str == other.Str
	case ExprPath:
		return e.Path.Equal(other.Path)
	case ExprUnary:
		return e.Op == other.Op && e.LHS.Equal(other.LHS)
	case ExprBinary:
		return e.Op == other.Op && e.LHS.Equal(other.LHS) && e.RHS.Equal(other.RHS)
	case ExprGroup:
		return e.Inner.Equal(other.Inner)
	default:
		return false
	}
}
