package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shaderlab/core"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, core.ColorBlack, cfg.ClearColor())
	assert.Empty(t, cfg.Shader.Path)
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
[window]
width = 800
title = "Shaders"

[shader]
path = "res/shaders/Basic.shader"
lenient = true
watch = true

[render]
clear = [0.1, 0.1, 0.1]
`))
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 480, cfg.Window.Height)
	assert.Equal(t, "Shaders", cfg.Window.Title)
	assert.Equal(t, "res/shaders/Basic.shader", cfg.Shader.Path)
	assert.True(t, cfg.Shader.Lenient)
	assert.True(t, cfg.Shader.Watch)
	assert.False(t, cfg.Shader.Compat)
	assert.Equal(t, core.Color{R: 0.1, G: 0.1, B: 0.1, A: 1}, cfg.ClearColor())
	assert.Equal(t, float32(0.05), cfg.Render.PulseStep)

	wc := cfg.WindowConfig()
	assert.Equal(t, 800, wc.Width)
	assert.Equal(t, 4, wc.GLMajor)
}

func TestParseExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	cfg, err := Parse([]byte("[shader]\npath = \"~/Basic.shader\"\n"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "Basic.shader"), cfg.Shader.Path)
}

func TestParseInvalid(t *testing.T) {
	tests := map[string]string{
		"syntax":     "[window\n",
		"size":       "[window]\nwidth = 0\n",
		"gl version": "[window]\ngl_major = 2\n",
		"pulse":      "[render]\npulse_step = -1.0\n",
		"clear":      "[render]\nclear = [1.0]\n",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(in))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shaderlab.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window]\nheight = 600\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 600, cfg.Window.Height)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
