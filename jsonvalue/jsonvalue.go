// Package jsonvalue defines the narrow, host-supplied JSON value contract
// consumed by the jsonpath-plus evaluator. The evaluator never constructs a
// document of its own; it only ever walks a Value handed to it by the host,
// the same way the sanity-io/jsonmatch evaluator only ever dereferences the
// interface{} handed to Match. The difference is that the contract here is
// a closed, typed interface instead of an open-ended reflect.Kind switch.
package jsonvalue

import "fmt"

// Kind discriminates the variant of a Value.
type Kind int

// The seven variants a JSON value may take.
const (
	Null Kind = iota
	Bool
	Int
	Float
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is the host's JSON document, or any node reachable within it. A host
// implementation must be immutable and borrowable: nothing in this module
// ever writes through a Value, only reads. Edits (see the Replace/Delete
// driver) always produce brand-new Values rather than mutating in place.
type Value interface {
	Kind() Kind

	// Bool, Int, Float and Str panic if Kind() does not match. Callers in
	// this module always check Kind first; a host implementation is free to
	// do the same.
	Bool() bool
	Int() int64
	Float() float64
	Str() string

	// Len and At are valid only when Kind() == Array.
	Len() int
	At(i int) Value

	// ObjectLen, KeyAt and Get are valid only when Kind() == Object. KeyAt
	// must enumerate keys in the document's original insertion order.
	ObjectLen() int
	KeyAt(i int) string
	Get(key string) (Value, bool)

	// Equal reports structural equality: same Kind, and recursively equal
	// contents. Two numbers compare equal if their Float() forms compare
	// equal, so Int(1) and Float(1.0) are Equal.
	Equal(other Value) bool
}

// IsNumber reports whether v holds an Int or a Float.
func IsNumber(v Value) bool {
	k := v.Kind()
	return k == Int || k == Float
}

// AsFloat returns v's numeric value as a float64, and whether v was numeric.
func AsFloat(v Value) (float64, bool) {
	switch v.Kind() {
	case Int:
		return float64(v.Int()), true
	case Float:
		return v.Float(), true
	default:
		return 0, false
	}
}
