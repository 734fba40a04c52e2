package fhir

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ValidQuestionnaire(t *testing.T) {
	data := []byte(`{
		"resourceType": "Questionnaire",
		"url": "http://example.org/q/1",
		"title": "Sleep", "name": "sleep", "version": "2",
		"item": [
			{"linkId": "g1", "type": "group", "text": "About you",
			 "item": [{"linkId": "q1", "type": "integer", "text": "Age", "required": true}]}
		]
	}`)

	q, err := Parse("sleep.json", data)
	require.NoError(t, err)
	assert.Equal(t, "Sleep", q.Title)
	require.Len(t, q.Item, 1)
	require.Len(t, q.Item[0].Item, 1)
	assert.Equal(t, "q1", q.Item[0].Item[0].LinkID)
	require.NotNil(t, q.Item[0].Item[0].Required)
	assert.True(t, *q.Item[0].Item[0].Required)
}

func TestParse_EmptyObjectIsAccepted(t *testing.T) {
	q, err := Parse("", []byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, q.Item)
}

func TestParse_StripsBOM(t *testing.T) {
	q, err := Parse("", append([]byte{0xEF, 0xBB, 0xBF}, []byte(`{"title":"B"}`)...))
	require.NoError(t, err)
	assert.Equal(t, "B", q.Title)
}

func TestParse_Malformed(t *testing.T) {
	cases := map[string]string{
		"not json":         `not json`,
		"empty":            "   ",
		"array":            `[1, 2]`,
		"string":           `"hello"`,
		"truncated":        `{"title": "x"`,
		"wrong item shape": `{"item": "nope"}`,
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse("upload.json", []byte(input))
			require.Error(t, err)
			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, "upload.json", perr.Source)
			assert.Contains(t, err.Error(), "upload.json")
		})
	}
}
