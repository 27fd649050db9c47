package jsonvalue

// KV is one key/value pair of an ordered object literal built with Obj.
type KV struct {
	Key   string
	Value any
}

// Obj builds an object Value that preserves the given key order, which
// plain map[string]any cannot do once it has round-tripped through Go's
// map type. Use this (rather than NewNative(map[string]any{...})) whenever
// a test or caller cares about insertion order, e.g. to exercise wildcard
// or filter iteration order.
func Obj(pairs ...KV) *Native {
	raw := make(map[string]any, len(pairs))
	keys := make([]string, 0, len(pairs))
	for _, p := range pairs {
		if _, seen := raw[p.Key]; !seen {
			keys = append(keys, p.Key)
		}
		raw[p.Key] = p.Value
	}
	return &Native{v: raw, kind: Object, keys: keys}
}

// Arr builds an array Value from a list of native Go values.
func Arr(values ...any) *Native {
	return &Native{v: values, kind: Array}
}
