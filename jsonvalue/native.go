package jsonvalue

import (
	"fmt"
	"sort"
)

// Native wraps the conventional Go shape produced by encoding/json.Unmarshal
// into an any: nil, bool, float64 (or int/int64 for callers who built the
// tree by hand), string, []any and map[string]any. It is the reference
// Value implementation used by this module's own tests, playing the same
// role the teacher's toCanonicalType/matchType conversions played for its
// reflect-based interface{} acceptance, except the conversion now happens
// once at the edge (NewNative) instead of at every step of evaluation.
type Native struct {
	v    any
	kind Kind
	// keys caches the object key order for a map value. encoding/json
	// erases insertion order once decoded into map[string]any, so Native
	// reconstructs a stable (sorted) order at wrap time. Hosts that care
	// about true document order should implement Value directly instead
	// of going through Native; see doc.go.
	keys []string
}

// NewNative wraps a Go value in the canonical shapes accepted by
// encoding/json (nil, bool, float64, int, int64, string, []any,
// map[string]any) as a Value. It panics if v is not one of those shapes,
// mirroring the teacher's assertIsCompatible/toCanonicalType behavior of
// rejecting incompatible host types up front rather than failing silently
// deep inside evaluation.
func NewNative(v any) *Native {
	n, err := newNative(v)
	if err != nil {
		panic(err)
	}
	return n
}

func newNative(v any) (*Native, error) {
	switch t := v.(type) {
	case *Native:
		return t, nil
	case nil:
		return &Native{v: nil, kind: Null}, nil
	case bool:
		return &Native{v: t, kind: Bool}, nil
	case int:
		return &Native{v: int64(t), kind: Int}, nil
	case int64:
		return &Native{v: t, kind: Int}, nil
	case float64:
		return &Native{v: t, kind: Float}, nil
	case float32:
		return &Native{v: float64(t), kind: Float}, nil
	case string:
		return &Native{v: t, kind: String}, nil
	case []any:
		return &Native{v: t, kind: Array}, nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return &Native{v: t, kind: Object, keys: keys}, nil
	default:
		return nil, fmt.Errorf("jsonvalue: %T is not a supported native JSON shape", v)
	}
}

// Kind implements Value.
func (n *Native) Kind() Kind { return n.kind }

// Bool implements Value.
func (n *Native) Bool() bool {
	n.mustBe(Bool)
	return n.v.(bool)
}

// Int implements Value.
func (n *Native) Int() int64 {
	n.mustBe(Int)
	return n.v.(int64)
}

// Float implements Value.
func (n *Native) Float() float64 {
	n.mustBe(Float)
	return n.v.(float64)
}

// Str implements Value.
func (n *Native) Str() string {
	n.mustBe(String)
	return n.v.(string)
}

// Len implements Value.
func (n *Native) Len() int {
	n.mustBe(Array)
	return len(n.v.([]any))
}

// At implements Value.
func (n *Native) At(i int) Value {
	n.mustBe(Array)
	return NewNative(n.v.([]any)[i])
}

// ObjectLen implements Value.
func (n *Native) ObjectLen() int {
	n.mustBe(Object)
	return len(n.keys)
}

// KeyAt implements Value.
func (n *Native) KeyAt(i int) string {
	n.mustBe(Object)
	return n.keys[i]
}

// Get implements Value.
func (n *Native) Get(key string) (Value, bool) {
	n.mustBe(Object)
	val, ok := n.v.(map[string]any)[key]
	if !ok {
		return nil, false
	}
	return NewNative(val), true
}

// Equal implements Value.
func (n *Native) Equal(other Value) bool {
	if other == nil {
		return false
	}
	if n.kind == Int || n.kind == Float {
		of, ok := AsFloat(other)
		nf, _ := AsFloat(n)
		return ok && nf == of
	}
	if n.kind != other.Kind() {
		return false
	}
	switch n.kind {
	case Null:
		return true
	case Bool:
		return n.Bool() == other.Bool()
	case String:
		return n.Str() == other.Str()
	case Array:
		if n.Len() != other.Len() {
			return false
		}
		for i := 0; i < n.Len(); i++ {
			if !n.At(i).Equal(other.At(i)) {
				return false
			}
		}
		return true
	case Object:
		if n.ObjectLen() != other.ObjectLen() {
			return false
		}
		for i := 0; i < n.ObjectLen(); i++ {
			key := n.KeyAt(i)
			ov, ok := other.Get(key)
			if !ok {
				return false
			}
			nv, _ := n.Get(key)
			if !nv.Equal(ov) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Raw returns the underlying Go value, in the shapes accepted by NewNative.
func (n *Native) Raw() any { return n.v }

func (n *Native) mustBe(k Kind) {
	if n.kind != k {
		panic(fmt.Sprintf("jsonvalue: Native holds a %s, not a %s", n.kind, k))
	}
}
