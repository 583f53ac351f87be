package input_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dangledns/dangler/internal/apperr"
	"github.com/dangledns/dangler/internal/input"
)

func TestRead_Basic(t *testing.T) {
	r := strings.NewReader("example.com\ngoogle.com\n")
	inputs, err := input.Read(r)
	require.NoError(t, err)
	assert.Equal(t, []string{"example.com", "google.com"}, inputs)
}

func TestRead_TrimsWhitespace(t *testing.T) {
	r := strings.NewReader("  example.com  \n\tgoogle.com\t\n")
	inputs, err := input.Read(r)
	require.NoError(t, err)
	assert.Equal(t, []string{"example.com", "google.com"}, inputs)
}

func TestRead_DropsEmptyLines(t *testing.T) {
	r := strings.NewReader("example.com\n\n\ngoogle.com\n")
	inputs, err := input.Read(r)
	require.NoError(t, err)
	assert.Equal(t, []string{"example.com", "google.com"}, inputs)
}

func TestRead_Empty(t *testing.T) {
	inputs, err := input.Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, inputs)
}

func TestReadJSON_Basic(t *testing.T) {
	r := strings.NewReader(`["example.com", "google.com"]`)
	inputs, err := input.ReadJSON(r)
	require.NoError(t, err)
	assert.Equal(t, []string{"example.com", "google.com"}, inputs)
}

func TestReadJSON_TrimsAndDropsEmpty(t *testing.T) {
	r := strings.NewReader(`[" example.com ", "", "  "]`)
	inputs, err := input.ReadJSON(r)
	require.NoError(t, err)
	assert.Equal(t, []string{"example.com"}, inputs)
}

func TestReadJSON_Malformed(t *testing.T) {
	for _, bad := range []string{`{"domains": []}`, `not json`, `[1, 2]`} {
		_, err := input.ReadJSON(strings.NewReader(bad))
		require.Error(t, err, "input %q should be rejected", bad)
		assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	}
}
