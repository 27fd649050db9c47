package jsonpath

import (
	"sort"

	"github.com/CraftSpider/jsonpath-plus/jsonvalue"
)

// editArray and editObject are the mutable, pointer-identity working forms
// a document is rebuilt into before edits are spliced in. jsonvalue.Value
// is read-only by contract (§6), so Replace/Delete never touch the input
// document; they build this scratch copy, mutate it, then hand the result
// back as a fresh *jsonvalue.Native (§4.4: "Return the modified document").
type editArray struct {
	items []any
}

type editObject struct {
	keys []string
	vals map[string]any
}

// valueToEditable deep-copies v into the mutable scratch representation.
func valueToEditable(v jsonvalue.Value) any {
	switch v.Kind() {
	case jsonvalue.Null:
		return nil
	case jsonvalue.Bool:
		return v.Bool()
	case jsonvalue.Int:
		return v.Int()
	case jsonvalue.Float:
		return v.Float()
	case jsonvalue.String:
		return v.Str()
	case jsonvalue.Array:
		n := v.Len()
		items := make([]any, n)
		for i := 0; i < n; i++ {
			items[i] = valueToEditable(v.At(i))
		}
		return &editArray{items: items}
	case jsonvalue.Object:
		n := v.ObjectLen()
		obj := &editObject{keys: make([]string, 0, n), vals: make(map[string]any, n)}
		for i := 0; i < n; i++ {
			k := v.KeyAt(i)
			cv, _ := v.Get(k)
			obj.keys = append(obj.keys, k)
			obj.vals[k] = valueToEditable(cv)
		}
		return obj
	default:
		return nil
	}
}

// normalizeReplacement lets a Replace callback hand back either a raw Go
// value (string, bool, number, nil, []any, map[string]any, *jsonvalue.Native)
// or an arbitrary host jsonvalue.Value — the latter is flattened into the
// scratch representation the same way the input document was.
func normalizeReplacement(v any) any {
	if hv, ok := v.(jsonvalue.Value); ok {
		if n, ok := hv.(*jsonvalue.Native); ok {
			return valueToEditable(n)
		}
		return valueToEditable(hv)
	}
	return v
}

// fromEditable converts the scratch representation back into an immutable
// *jsonvalue.Native, preserving object key order via jsonvalue.Obj.
func fromEditable(v any) any {
	switch c := v.(type) {
	case *editArray:
		items := make([]any, len(c.items))
		for i, it := range c.items {
			items[i] = fromEditable(it)
		}
		return jsonvalue.Arr(items...)
	case *editObject:
		kvs := make([]jsonvalue.KV, 0, len(c.keys))
		for _, k := range c.keys {
			kvs = append(kvs, jsonvalue.KV{Key: k, Value: fromEditable(c.vals[k])})
		}
		return jsonvalue.Obj(kvs...)
	default:
		return v
	}
}

func navigate(root any, steps []LocationStep) (any, bool) {
	cur := root
	for _, s := range steps {
		switch c := cur.(type) {
		case *editArray:
			if s.Kind != LocIndex || s.Index < 0 || s.Index >= len(c.items) {
				return nil, false
			}
			cur = c.items[s.Index]
		case *editObject:
			if s.Kind != LocKey {
				return nil, false
			}
			v, ok := c.vals[s.Key]
			if !ok {
				return nil, false
			}
			cur = v
		default:
			return nil, false
		}
	}
	return cur, true
}

func applyDelete(container any, step LocationStep) {
	switch c := container.(type) {
	case *editArray:
		if step.Kind != LocIndex || step.Index < 0 || step.Index >= len(c.items) {
			return
		}
		c.items = append(c.items[:step.Index], c.items[step.Index+1:]...)
	case *editObject:
		if step.Kind != LocKey {
			return
		}
		if _, ok := c.vals[step.Key]; !ok {
			return
		}
		delete(c.vals, step.Key)
		for i, k := range c.keys {
			if k == step.Key {
				c.keys = append(c.keys[:i], c.keys[i+1:]...)
				break
			}
		}
	}
}

func applyReplace(container any, step LocationStep, newVal any) {
	switch c := container.(type) {
	case *editArray:
		if step.Kind != LocIndex || step.Index < 0 || step.Index >= len(c.items) {
			return
		}
		c.items[step.Index] = newVal
	case *editObject:
		if step.Kind != LocKey {
			return
		}
		if _, exists := c.vals[step.Key]; !exists {
			c.keys = append(c.keys, step.Key)
		}
		c.vals[step.Key] = newVal
	}
}

// deleteArrayIndices removes a batch of indices from one array in a single
// pass, largest index first, so that removing one index never invalidates
// the position of another still pending. The batch is first folded into
// Regions so contiguous runs are spliced out with one append instead of
// one per index (§4.4, grounded on the teacher's region-based splice
// machinery in regions.go).
func deleteArrayIndices(arr *editArray, indices []int) {
	regions := NewRegionsFromIndicies(indices).Sort()
	for i := len(regions) - 1; i >= 0; i-- {
		r := regions[i]
		if r.Start < 0 || r.End > len(arr.items) || r.Start >= r.End {
			continue
		}
		arr.items = append(arr.items[:r.Start], arr.items[r.End:]...)
	}
}

// sortForEdit orders matches deepest-location-first (§4.4), stably
// preserving document order among matches of equal depth whose relative
// order does not affect correctness.
func sortForEdit(ms []LocationValue) {
	sort.SliceStable(ms, func(i, j int) bool {
		return ms[i].Location.Depth() > ms[j].Location.Depth()
	})
}

// Replace evaluates p against doc, then replaces every matched value with
// fn's result, preserving sibling and key order (§4.4). Replacements are
// applied deepest location first, so when one match lies inside another
// the outer replacement is applied last and wins.
func (p *Path) Replace(doc jsonvalue.Value, fn func(jsonvalue.Value) any) jsonvalue.Value {
	matches := p.FindWithPaths(doc)
	sortForEdit(matches)
	root := valueToEditable(doc)
	for _, m := range matches {
		newVal := normalizeReplacement(fn(m.Value))
		if m.Location.Depth() == 0 {
			root = newVal
			continue
		}
		parent, _ := m.Location.Parent()
		last, _ := m.Location.Last()
		if c, ok := navigate(root, parent.Steps); ok {
			applyReplace(c, last, newVal)
		}
	}
	return wrapEditable(root)
}

// Delete evaluates p against doc and removes every matched location,
// deepest first and, within an array, largest index first (§4.4).
func (p *Path) Delete(doc jsonvalue.Value) jsonvalue.Value {
	matches := p.FindWithPaths(doc)
	root := valueToEditable(doc)

	for _, m := range matches {
		if m.Location.Depth() == 0 {
			root = nil
		}
	}

	var keyDeletes []LocationValue
	for _, m := range matches {
		if m.Location.Depth() == 0 {
			continue
		}
		if last, _ := m.Location.Last(); last.Kind == LocKey {
			keyDeletes = append(keyDeletes, m)
		}
	}
	sortForEdit(keyDeletes)
	for _, m := range keyDeletes {
		parent, _ := m.Location.Parent()
		last, _ := m.Location.Last()
		if c, ok := navigate(root, parent.Steps); ok {
			applyDelete(c, last)
		}
	}

	groups := collectArrayDeleteGroups(matches)
	sort.SliceStable(groups, func(i, j int) bool {
		return len(groups[i].parent.Steps) > len(groups[j].parent.Steps)
	})
	for _, g := range groups {
		c, ok := navigate(root, g.parent.Steps)
		if !ok {
			continue
		}
		arr, ok := c.(*editArray)
		if !ok {
			continue
		}
		deleteArrayIndices(arr, g.indices)
	}

	return wrapEditable(root)
}

func wrapEditable(root any) jsonvalue.Value {
	return jsonvalue.NewNative(fromEditable(root))
}

type parentGroup struct {
	parent  Location
	indices []int
}

// collectArrayDeleteGroups buckets every matched array-index deletion by
// its parent location, preserving first-seen order of parents.
func collectArrayDeleteGroups(matches []LocationValue) []parentGroup {
	groups := map[string]*parentGroup{}
	var order []string
	for _, m := range matches {
		last, ok := m.Location.Last()
		if !ok || last.Kind != LocIndex {
			continue
		}
		parent, _ := m.Location.Parent()
		key := parent.String()
		g, exists := groups[key]
		if !exists {
			g = &parentGroup{parent: parent}
			groups[key] = g
			order = append(order, key)
		}
		g.indices = append(g.indices, last.Index)
	}
	result := make([]parentGroup, 0, len(order))
	for _, k := range order {
		result = append(result, *groups[k])
	}
	return result
}
