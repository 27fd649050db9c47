package jsonpath_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CraftSpider/jsonpath-plus"
)

func compile(t *testing.T, src string) *jsonpath.Path {
	t.Helper()
	p, err := jsonpath.Parse(src)
	require.NoError(t, err)
	return p
}

func TestParse_dottedAndBracketedAreDistinctSteps(t *testing.T) {
	a := compile(t, "$.a.b.c")
	b := compile(t, "$['a']['b']['c']")
	assert.False(t, a.Equal(b), "dotted and bracketed steps are distinct step kinds under structural equality")
}

func TestParse_printRoundTrips(t *testing.T) {
	cases := []string{
		"$.a.b.c",
		"$['a']['b']",
		"$[0]",
		"$[-1]",
		"$[0:10:2]",
		"$[?(@.x == 1)]",
		"$..a",
		"$..[*]",
		"$.a.^",
		"$.a.~",
		"$[$.a]",
		"$[@.a]",
		"$[0, 2, 5]",
		"$[?(- 5 == @.x)]",
	}
	for _, src := range cases {
		src := src
		t.Run(src, func(t *testing.T) {
			p := compile(t, src)
			printed := p.String()
			reparsed, err := jsonpath.Parse(printed)
			require.NoError(t, err, "printed form %q of %q failed to reparse", printed, src)
			assert.True(t, p.Equal(reparsed), cmp.Diff(src, printed))
		})
	}
}

func TestParse_sliceZeroStepIsError(t *testing.T) {
	_, err := jsonpath.Parse("$[1:5:0]")
	require.Error(t, err)
}

func TestParse_trailingGarbageIsError(t *testing.T) {
	_, err := jsonpath.Parse("$.a extra")
	require.Error(t, err)
}

func TestParse_unterminatedBracketIsError(t *testing.T) {
	_, err := jsonpath.Parse("$['a'")
	require.Error(t, err)
}

func TestParse_quotedStringEscapes(t *testing.T) {
	p := compile(t, `$['a\'b']`)
	require.Len(t, p.Steps, 1)
	require.Len(t, p.Steps[0].Union, 1)
	assert.Equal(t, "a'b", p.Steps[0].Union[0].Name)
}

func TestParse_spansRecordedWhenEnabled(t *testing.T) {
	p, err := jsonpath.Compile("$.a", jsonpath.Options{Spans: true})
	require.NoError(t, err)
	require.Len(t, p.Steps, 1)
	b, err := p.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(b), `"span"`)
}

func TestParse_spansAbsentByDefault(t *testing.T) {
	p := compile(t, "$.a")
	b, err := p.MarshalJSON()
	require.NoError(t, err)
	assert.NotContains(t, string(b), `"span"`)
}

func TestParse_spansReportedForEveryNodeKind(t *testing.T) {
	p, err := jsonpath.Compile("$.a[?(@.b == 1)]", jsonpath.Options{Spans: true})
	require.NoError(t, err)
	spans := p.Spans()
	require.NotEmpty(t, spans)

	seen := map[jsonpath.NodeKind]bool{}
	for _, s := range spans {
		seen[s.Kind] = true
		assert.LessOrEqual(t, s.Range.Start, s.Range.End)
	}
	assert.True(t, seen[jsonpath.NodePath])
	assert.True(t, seen[jsonpath.NodeStep])
	assert.True(t, seen[jsonpath.NodeSelector])
	assert.True(t, seen[jsonpath.NodeExpr])
}

func TestParse_spansEmptyWhenDisabled(t *testing.T) {
	p := compile(t, "$.a[?(@.b == 1)]")
	assert.Empty(t, p.Spans())
}

func TestParse_filterOperatorPrecedence(t *testing.T) {
	p := compile(t, "$[?(@.a == 1 || @.b == 2 && @.c == 3)]")
	filter := p.Steps[0].Union[0].Filter
	require.Equal(t, jsonpath.ExprBinary, filter.Kind)
	assert.Equal(t, jsonpath.OpOr, filter.Op)
}
