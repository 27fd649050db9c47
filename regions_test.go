package jsonpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CraftSpider/jsonpath-plus"
)

func TestRegion_lenAndEmpty(t *testing.T) {
	r := jsonpath.Region{Start: 2, End: 5}
	assert.Equal(t, 3, r.Len())
	assert.False(t, r.Empty())

	empty := jsonpath.Region{Start: 2, End: 2}
	assert.Equal(t, 0, empty.Len())
	assert.True(t, empty.Empty())
}

func TestNewRegionsFromIndicies_foldsContiguousRuns(t *testing.T) {
	regions := jsonpath.NewRegionsFromIndicies([]int{1, 2, 3, 7, 9, 10})
	assert.Equal(t, jsonpath.Regions{
		{Start: 1, End: 4},
		{Start: 7, End: 8},
		{Start: 9, End: 11},
	}, regions)
}

func TestNewRegionsFromIndicies_sortsUnorderedInput(t *testing.T) {
	regions := jsonpath.NewRegionsFromIndicies([]int{5, 0, 1})
	assert.Equal(t, jsonpath.Regions{
		{Start: 0, End: 2},
		{Start: 5, End: 6},
	}, regions)
}

func TestNewRegionsFromIndicies_empty(t *testing.T) {
	assert.Empty(t, jsonpath.NewRegionsFromIndicies(nil))
}

func TestRegions_sortOrdersByStart(t *testing.T) {
	rs := jsonpath.Regions{{Start: 5, End: 6}, {Start: 0, End: 1}, {Start: 2, End: 3}}
	sorted := rs.Sort()
	assert.Equal(t, jsonpath.Regions{
		{Start: 0, End: 1},
		{Start: 2, End: 3},
		{Start: 5, End: 6},
	}, sorted)
}

func TestRegions_sortDoesNotMutateReceiver(t *testing.T) {
	rs := jsonpath.Regions{{Start: 5, End: 6}, {Start: 0, End: 1}}
	_ = rs.Sort()
	assert.Equal(t, jsonpath.Regions{{Start: 5, End: 6}, {Start: 0, End: 1}}, rs)
}
