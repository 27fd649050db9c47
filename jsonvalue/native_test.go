package jsonvalue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CraftSpider/jsonpath-plus/jsonvalue"
)

func TestNewNative_scalars(t *testing.T) {
	assert.Equal(t, jsonvalue.Null, jsonvalue.NewNative(nil).Kind())
	assert.Equal(t, jsonvalue.Bool, jsonvalue.NewNative(true).Kind())
	assert.Equal(t, jsonvalue.Int, jsonvalue.NewNative(1).Kind())
	assert.Equal(t, jsonvalue.Int, jsonvalue.NewNative(int64(1)).Kind())
	assert.Equal(t, jsonvalue.Float, jsonvalue.NewNative(1.5).Kind())
	assert.Equal(t, jsonvalue.Float, jsonvalue.NewNative(float32(1.5)).Kind())
	assert.Equal(t, jsonvalue.String, jsonvalue.NewNative("x").Kind())
}

func TestNewNative_passthrough(t *testing.T) {
	n := jsonvalue.NewNative(int64(3))
	assert.Same(t, n, jsonvalue.NewNative(n))
}

func TestNewNative_unsupportedShapePanics(t *testing.T) {
	assert.Panics(t, func() {
		jsonvalue.NewNative(struct{}{})
	})
}

func TestNative_arrayAccess(t *testing.T) {
	n := jsonvalue.NewNative([]any{int64(1), "two", nil})
	require.Equal(t, jsonvalue.Array, n.Kind())
	require.Equal(t, 3, n.Len())
	assert.Equal(t, int64(1), n.At(0).Int())
	assert.Equal(t, "two", n.At(1).Str())
	assert.Equal(t, jsonvalue.Null, n.At(2).Kind())
}

func TestNative_objectAccessSortsKeysWhenUnordered(t *testing.T) {
	n := jsonvalue.NewNative(map[string]any{"b": int64(2), "a": int64(1)})
	require.Equal(t, jsonvalue.Object, n.Kind())
	require.Equal(t, 2, n.ObjectLen())
	assert.Equal(t, "a", n.KeyAt(0))
	assert.Equal(t, "b", n.KeyAt(1))

	v, ok := n.Get("a")
	require.True(t, ok)
	assert.Equal(t, int64(1), v.Int())

	_, ok = n.Get("missing")
	assert.False(t, ok)
}

func TestObj_preservesInsertionOrder(t *testing.T) {
	n := jsonvalue.Obj(
		jsonvalue.KV{Key: "z", Value: int64(1)},
		jsonvalue.KV{Key: "a", Value: int64(2)},
	)
	require.Equal(t, 2, n.ObjectLen())
	assert.Equal(t, "z", n.KeyAt(0))
	assert.Equal(t, "a", n.KeyAt(1))
}

func TestObj_duplicateKeyKeepsFirstPosition(t *testing.T) {
	n := jsonvalue.Obj(
		jsonvalue.KV{Key: "a", Value: int64(1)},
		jsonvalue.KV{Key: "b", Value: int64(2)},
		jsonvalue.KV{Key: "a", Value: int64(3)},
	)
	require.Equal(t, 2, n.ObjectLen())
	assert.Equal(t, "a", n.KeyAt(0))
	v, _ := n.Get("a")
	assert.Equal(t, int64(3), v.Int())
}

func TestArr_buildsOrderedArray(t *testing.T) {
	n := jsonvalue.Arr(int64(1), int64(2), int64(3))
	require.Equal(t, 3, n.Len())
	assert.Equal(t, int64(2), n.At(1).Int())
}

func TestNative_equalCrossesIntAndFloat(t *testing.T) {
	i := jsonvalue.NewNative(int64(1))
	f := jsonvalue.NewNative(1.0)
	assert.True(t, i.Equal(f))
	assert.True(t, f.Equal(i))
}

func TestNative_equalStructural(t *testing.T) {
	a := jsonvalue.Obj(jsonvalue.KV{Key: "x", Value: []any{int64(1), int64(2)}})
	b := jsonvalue.Obj(jsonvalue.KV{Key: "x", Value: []any{int64(1), int64(2)}})
	c := jsonvalue.Obj(jsonvalue.KV{Key: "x", Value: []any{int64(1), int64(3)}})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestNative_equalNilOther(t *testing.T) {
	n := jsonvalue.NewNative(int64(1))
	assert.False(t, n.Equal(nil))
}

func TestNative_wrongKindAccessorPanics(t *testing.T) {
	n := jsonvalue.NewNative("x")
	assert.Panics(t, func() {
		n.Int()
	})
}

func TestIsNumber(t *testing.T) {
	assert.True(t, jsonvalue.IsNumber(jsonvalue.NewNative(int64(1))))
	assert.True(t, jsonvalue.IsNumber(jsonvalue.NewNative(1.5)))
	assert.False(t, jsonvalue.IsNumber(jsonvalue.NewNative("x")))
}

func TestAsFloat(t *testing.T) {
	f, ok := jsonvalue.AsFloat(jsonvalue.NewNative(int64(4)))
	assert.True(t, ok)
	assert.Equal(t, 4.0, f)

	_, ok = jsonvalue.AsFloat(jsonvalue.NewNative("x"))
	assert.False(t, ok)
}
