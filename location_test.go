package jsonpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CraftSpider/jsonpath-plus"
)

func TestLocation_stringForm(t *testing.T) {
	loc := jsonpath.Location{Steps: []jsonpath.LocationStep{
		{Kind: jsonpath.LocKey, Key: "a"},
		{Kind: jsonpath.LocIndex, Index: 2},
	}}
	assert.Equal(t, "$['a'][2]", loc.String())
}

func TestLocation_rootStringForm(t *testing.T) {
	var loc jsonpath.Location
	assert.Equal(t, "$", loc.String())
}

func TestLocation_depth(t *testing.T) {
	loc := jsonpath.Location{Steps: []jsonpath.LocationStep{
		{Kind: jsonpath.LocKey, Key: "a"},
		{Kind: jsonpath.LocIndex, Index: 2},
	}}
	assert.Equal(t, 2, loc.Depth())

	var root jsonpath.Location
	assert.Equal(t, 0, root.Depth())
}

func TestLocation_parentAndLast(t *testing.T) {
	loc := jsonpath.Location{Steps: []jsonpath.LocationStep{
		{Kind: jsonpath.LocKey, Key: "a"},
		{Kind: jsonpath.LocIndex, Index: 2},
	}}
	last, ok := loc.Last()
	require.True(t, ok)
	assert.Equal(t, jsonpath.LocationStep{Kind: jsonpath.LocIndex, Index: 2}, last)

	parent, ok := loc.Parent()
	require.True(t, ok)
	assert.Equal(t, "$['a']", parent.String())
}

func TestLocation_parentOfRootFails(t *testing.T) {
	var loc jsonpath.Location
	_, ok := loc.Parent()
	assert.False(t, ok)

	_, ok = loc.Last()
	assert.False(t, ok)
}

func TestLocation_equal(t *testing.T) {
	a := jsonpath.Location{Steps: []jsonpath.LocationStep{{Kind: jsonpath.LocKey, Key: "a"}}}
	b := jsonpath.Location{Steps: []jsonpath.LocationStep{{Kind: jsonpath.LocKey, Key: "a"}}}
	c := jsonpath.Location{Steps: []jsonpath.LocationStep{{Kind: jsonpath.LocKey, Key: "b"}}}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
