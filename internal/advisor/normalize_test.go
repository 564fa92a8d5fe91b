package advisor

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw []byte) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func TestExtractJSONWellFormed(t *testing.T) {
	inputs := []string{
		`{"recommendations":[{"title":"A"}]}`,
		"  {\n  \"a\": [1, 2, {\"b\": null}]\n}\n",
		`{"nested":{"deep":{"value":"x {not a brace} y"}}}`,
		`[1,2,3]`,
		`"just a string"`,
	}
	for _, in := range inputs {
		raw, err := ExtractJSON(in)
		require.NoError(t, err, in)
		assert.Equal(t, decode(t, []byte(in)), decode(t, raw), in)
	}
}

func TestExtractJSONFenced(t *testing.T) {
	inner := `{"foundational":[{"title":"X","rating":4.5}],"specialized":[],"advanced":[]}`
	cases := []string{
		"```json\n" + inner + "\n```",
		"```\n" + inner + "\n```",
		"Here you go:\n```json\n" + inner + "\n```\nLet me know!",
	}
	for _, in := range cases {
		raw, err := ExtractJSON(in)
		require.NoError(t, err, in)
		assert.Equal(t, decode(t, []byte(inner)), decode(t, raw))
	}
}

func TestExtractJSONCollapsesWhitespaceAfterFenceInsideSpan(t *testing.T) {
	in := "{\"a\": 1, ```json \"b\": 2}"
	raw, err := ExtractJSON(in)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": float64(1), "b": float64(2)}, decode(t, raw))
}

func TestExtractJSONSurroundingProse(t *testing.T) {
	raw, err := ExtractJSON(`Sure! {"ok": true} Hope this helps.`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok": true}`, string(raw))
}

func TestExtractJSONNoBraces(t *testing.T) {
	for _, in := range []string{"", "no json here", "I cannot help with that.", "[unclosed"} {
		_, err := ExtractJSON(in)
		assert.True(t, errors.Is(err, ErrNoValidJSON), in)
	}
}

func TestExtractJSONBrokenSpan(t *testing.T) {
	_, err := ExtractJSON(`prefix {"a": } suffix`)
	assert.True(t, errors.Is(err, ErrNoValidJSON))
}

func TestNormalizeDecodesAndFlagsShape(t *testing.T) {
	var set RecommendationSet
	_, err := Normalize("```json\n{\"recommendations\":[{\"title\":\"A\"}]}\n```", &set)
	require.NoError(t, err)
	require.Len(t, set.Recommendations, 1)
	assert.Equal(t, "A", set.Recommendations[0].Title)

	_, err = Normalize(`{"recommendations":"nope"}`, &set)
	assert.True(t, errors.Is(err, ErrShapeMismatch))
}
