package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	c, err := ParseColor([]float32{0.2, 0.3, 0.8})
	require.NoError(t, err)
	assert.Equal(t, Color{0.2, 0.3, 0.8, 1}, c)

	c, err = ParseColor([]float32{0, 0, 0, 0.5})
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), c.A)

	_, err = ParseColor([]float32{1})
	assert.Error(t, err)
}
