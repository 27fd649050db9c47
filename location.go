package jsonpath

import (
	"fmt"
	"strconv"
	"strings"
)

// LocationStepKind discriminates the two shapes a resolved location step
// can take: a map key or an array index. Unlike a Selector, a
// LocationStep always names exactly one concrete child (§4.3, Location).
type LocationStepKind int

const (
	LocKey LocationStepKind = iota
	LocIndex
)

// LocationStep is one resolved step of a Location: the concrete key or
// index that was actually visited, as opposed to the selector that
// produced it.
type LocationStep struct {
	Kind  LocationStepKind
	Key   string
	Index int
}

func (s LocationStep) String() string {
	if s.Kind == LocKey {
		return "['" + strings.ReplaceAll(s.Key, "'", "\\'") + "']"
	}
	return "[" + strconv.Itoa(s.Index) + "]"
}

// Location is the concrete path to one matched value: a sequence of
// resolved keys/indices from the document root. Two matches at the same
// Location are the same node; the edit driver groups and orders its work
// by Location (§4.4).
type Location struct {
	Steps []LocationStep
}

// String renders the location in "$['key'][index]..." form.
func (l Location) String() string {
	var b strings.Builder
	b.WriteString("$")
	for _, s := range l.Steps {
		b.WriteString(s.String())
	}
	return b.String()
}

// Depth is the number of steps from the document root.
func (l Location) Depth() int { return len(l.Steps) }

// Equal reports whether two locations name the same node.
func (l Location) Equal(other Location) bool {
	if len(l.Steps) != len(other.Steps) {
		return false
	}
	for i := range l.Steps {
		a, b := l.Steps[i], other.Steps[i]
		if a.Kind != b.Kind || a.Key != b.Key || a.Index != b.Index {
			return false
		}
	}
	return true
}

// Parent returns the location one step up and true, or the zero Location
// and false if l is already the root.
func (l Location) Parent() (Location, bool) {
	if len(l.Steps) == 0 {
		return Location{}, false
	}
	return Location{Steps: append([]LocationStep(nil), l.Steps[:len(l.Steps)-1]...)}, true
}

// Last returns the final step and true, or the zero step and false at the
// root.
func (l Location) Last() (LocationStep, bool) {
	if len(l.Steps) == 0 {
		return LocationStep{}, false
	}
	return l.Steps[len(l.Steps)-1], true
}

func (l Location) child(step LocationStep) Location {
	steps := make([]LocationStep, len(l.Steps)+1)
	copy(steps, l.Steps)
	steps[len(l.Steps)] = step
	return Location{Steps: steps}
}

func (l Location) withKey(key string) Location {
	return l.child(LocationStep{Kind: LocKey, Key: key})
}

func (l Location) withIndex(i int) Location {
	return l.child(LocationStep{Kind: LocIndex, Index: i})
}

// GoString supports "%#v" debugging output.
func (l Location) GoString() string {
	return fmt.Sprintf("Location(%s)", l.String())
}
