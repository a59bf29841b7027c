package res

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasic(t *testing.T) {
	src, err := Basic()
	require.NoError(t, err)
	assert.Empty(t, src.Unassigned)
	assert.Contains(t, src.Vertex, "uniform mat4 u_MVP;")
	assert.Contains(t, src.Fragment, "uniform vec4 u_Color;")
	assert.NotContains(t, src.Vertex, "#shader")
	assert.NotContains(t, src.Fragment, "u_MVP")
}
