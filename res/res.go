// Package res bundles the default shader into the binary.
package res

import (
	_ "embed"
	"strings"

	"shaderlab/shader"
)

//go:embed shaders/Basic.shader
var basicShader string

// BasicName is the name reported for the embedded shader in diagnostics.
const BasicName = "res/shaders/Basic.shader"

// Basic returns the embedded two-section shader.
func Basic() (shader.Source, error) {
	return shader.Parse(strings.NewReader(basicShader), shader.LoadOptions{})
}
