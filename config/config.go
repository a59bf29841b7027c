// Package config loads the playground settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"shaderlab/core"
)

type Config struct {
	Window WindowConfig `toml:"window"`
	Shader ShaderConfig `toml:"shader"`
	Render RenderConfig `toml:"render"`
}

type WindowConfig struct {
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Title     string `toml:"title"`
	Resizable bool   `toml:"resizable"`
	VSync     bool   `toml:"vsync"`
	GLMajor   int    `toml:"gl_major"`
	GLMinor   int    `toml:"gl_minor"`
}

type ShaderConfig struct {
	// Path of the two-section shader file. Empty uses the built-in shader.
	Path    string `toml:"path"`
	Compat  bool   `toml:"compat"`
	Lenient bool   `toml:"lenient"`
	Watch   bool   `toml:"watch"`
}

type RenderConfig struct {
	Clear     []float32 `toml:"clear"`
	PulseStep float32   `toml:"pulse_step"`
}

func Default() Config {
	w := core.DefaultWindowConfig()
	return Config{
		Window: WindowConfig{
			Width:     w.Width,
			Height:    w.Height,
			Title:     w.Title,
			Resizable: w.Resizable,
			VSync:     w.VSync,
			GLMajor:   w.GLMajor,
			GLMinor:   w.GLMinor,
		},
		Render: RenderConfig{
			Clear:     []float32{0, 0, 0, 1},
			PulseStep: 0.05,
		},
	}
}

// Load reads path over the defaults.
func Load(path string) (Config, error) {
	p, err := homedir.Expand(path)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", p, err)
	}
	return cfg, nil
}

// Parse decodes TOML over the defaults, expands the shader path and validates.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		var de *toml.DecodeError
		if errors.As(err, &de) {
			row, col := de.Position()
			return Config{}, fmt.Errorf("line %d column %d: %w", row, col, err)
		}
		return Config{}, err
	}
	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	if c.Shader.Path != "" {
		p, err := homedir.Expand(c.Shader.Path)
		if err != nil {
			return fmt.Errorf("shader.path: %w", err)
		}
		c.Shader.Path = p
	}
	return c.Validate()
}

func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.GLMajor < 3 || (c.Window.GLMajor == 3 && c.Window.GLMinor < 2) {
		errs = append(errs, fmt.Errorf("OpenGL %d.%d has no core profile", c.Window.GLMajor, c.Window.GLMinor))
	}
	if c.Render.PulseStep <= 0 {
		errs = append(errs, fmt.Errorf("render.pulse_step must be positive"))
	}
	if _, err := core.ParseColor(c.Render.Clear); err != nil {
		errs = append(errs, fmt.Errorf("render.clear: %w", err))
	}
	return errors.Join(errs...)
}

// WindowConfig converts to the core window settings.
func (c Config) WindowConfig() core.WindowConfig {
	return core.WindowConfig{
		Width:     c.Window.Width,
		Height:    c.Window.Height,
		Title:     c.Window.Title,
		Resizable: c.Window.Resizable,
		VSync:     c.Window.VSync,
		GLMajor:   c.Window.GLMajor,
		GLMinor:   c.Window.GLMinor,
	}
}

// ClearColor returns the validated clear color.
func (c Config) ClearColor() core.Color {
	col, err := core.ParseColor(c.Render.Clear)
	if err != nil {
		return core.ColorBlack
	}
	return col
}
