package jsonpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CraftSpider/jsonpath-plus"
	"github.com/CraftSpider/jsonpath-plus/jsonvalue"
)

func mustParse(t *testing.T, src string) *jsonpath.Path {
	t.Helper()
	p, err := jsonpath.Parse(src)
	require.NoError(t, err)
	return p
}

func TestDelete_multipleArrayIndicesKeepRemainingOrder(t *testing.T) {
	doc := jsonvalue.Arr(int64(0), int64(1), int64(2), int64(3), int64(4))
	p := mustParse(t, "$[1,3]")

	out := p.Delete(doc)
	require.Equal(t, jsonvalue.Array, out.Kind())
	require.Equal(t, 3, out.Len())
	assert.Equal(t, int64(0), out.At(0).Int())
	assert.Equal(t, int64(2), out.At(1).Int())
	assert.Equal(t, int64(4), out.At(2).Int())
}

func TestDelete_contiguousRunUsesOneSplice(t *testing.T) {
	doc := jsonvalue.Arr(int64(0), int64(1), int64(2), int64(3), int64(4))
	p := mustParse(t, "$[1,2,3]")

	out := p.Delete(doc)
	require.Equal(t, 2, out.Len())
	assert.Equal(t, int64(0), out.At(0).Int())
	assert.Equal(t, int64(4), out.At(1).Int())
}

func TestDelete_objectKeyPreservesRemainingOrder(t *testing.T) {
	doc := jsonvalue.Obj(
		jsonvalue.KV{Key: "a", Value: int64(1)},
		jsonvalue.KV{Key: "b", Value: int64(2)},
		jsonvalue.KV{Key: "c", Value: int64(3)},
	)
	p := mustParse(t, "$.b")

	out := p.Delete(doc)
	require.Equal(t, jsonvalue.Object, out.Kind())
	require.Equal(t, 2, out.ObjectLen())
	assert.Equal(t, "a", out.KeyAt(0))
	assert.Equal(t, "c", out.KeyAt(1))
	_, ok := out.Get("b")
	assert.False(t, ok)
}

func TestDelete_rootMatchYieldsNull(t *testing.T) {
	doc := jsonvalue.Obj(jsonvalue.KV{Key: "a", Value: int64(1)})
	p := mustParse(t, "$")

	out := p.Delete(doc)
	assert.Equal(t, jsonvalue.Null, out.Kind())
}

func TestReplace_rawValueCallback(t *testing.T) {
	doc := jsonvalue.Obj(jsonvalue.KV{Key: "a", Value: int64(1)}, jsonvalue.KV{Key: "b", Value: int64(2)})
	p := mustParse(t, "$[?(@ == 1)]")

	out := p.Replace(doc, func(jsonvalue.Value) any { return int64(99) })
	require.Equal(t, jsonvalue.Object, out.Kind())
	a, ok := out.Get("a")
	require.True(t, ok)
	assert.Equal(t, int64(99), a.Int())
	b, ok := out.Get("b")
	require.True(t, ok)
	assert.Equal(t, int64(2), b.Int())
}

func TestReplace_nativeValueCallback(t *testing.T) {
	doc := jsonvalue.Arr(int64(1), int64(2))
	p := mustParse(t, "$[0]")

	out := p.Replace(doc, func(jsonvalue.Value) any {
		return jsonvalue.Obj(jsonvalue.KV{Key: "x", Value: true})
	})
	require.Equal(t, jsonvalue.Array, out.Kind())
	first := out.At(0)
	require.Equal(t, jsonvalue.Object, first.Kind())
	x, ok := first.Get("x")
	require.True(t, ok)
	assert.True(t, x.Bool())
}

func TestReplace_rootMatch(t *testing.T) {
	doc := jsonvalue.Obj(jsonvalue.KV{Key: "a", Value: int64(1)})
	p := mustParse(t, "$")

	out := p.Replace(doc, func(jsonvalue.Value) any { return "replaced" })
	require.Equal(t, jsonvalue.String, out.Kind())
	assert.Equal(t, "replaced", out.Str())
}

func TestDelete_deepestLocationFirstAcrossDepths(t *testing.T) {
	doc := jsonvalue.Obj(
		jsonvalue.KV{Key: "a", Value: jsonvalue.Obj(jsonvalue.KV{Key: "b", Value: int64(1)})},
	)
	p := mustParse(t, "$..*")

	out := p.Delete(doc)
	require.Equal(t, jsonvalue.Object, out.Kind())
	assert.Equal(t, 0, out.ObjectLen())
}
