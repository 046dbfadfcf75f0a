package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToJSON(t *testing.T) {
	assert.Equal(t, `{"a":"1"}`, ToJSON(map[string]string{"a": "1"}))
}

func TestMapFromJSONRoundTrip(t *testing.T) {
	in := map[string]string{"tbm_date": "2026-01-05", "tbm_subject01": "true"}

	out, err := MapFromJSON(ToJSON(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestMapFromJSONEmpty(t *testing.T) {
	out, err := MapFromJSON("")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestMapFromJSONInvalid(t *testing.T) {
	_, err := MapFromJSON("{not json")
	assert.Error(t, err)
}
