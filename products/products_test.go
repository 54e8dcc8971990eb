package products

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeImages_SingleString(t *testing.T) {
	images, err := normalizeImages(json.RawMessage(`"data:image/png;base64,AAAA"`))
	require.NoError(t, err)
	assert.Equal(t, []string{"data:image/png;base64,AAAA"}, images)
}

func TestNormalizeImages_Array(t *testing.T) {
	images, err := normalizeImages(json.RawMessage(`["a","b"]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, images)
}

func TestNormalizeImages_Empty(t *testing.T) {
	images, err := normalizeImages(nil)
	require.NoError(t, err)
	assert.Nil(t, images)
}

func TestNormalizeImages_Invalid(t *testing.T) {
	_, err := normalizeImages(json.RawMessage(`{"not":"images"}`))
	assert.Error(t, err)
}
