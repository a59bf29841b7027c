package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/pflag"

	"shaderlab/anim"
	"shaderlab/config"
	"shaderlab/core"
	"shaderlab/opengl"
	"shaderlab/res"
	"shaderlab/shader"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "shaderlab: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	shaderPath string
	watch      bool
	lenient    bool
	compat     bool
	logLevel   string
}

func parseFlags(args []string) (options, *pflag.FlagSet, error) {
	var o options
	fs := pflag.NewFlagSet("shaderlab", pflag.ContinueOnError)
	fs.StringVarP(&o.configPath, "config", "c", "", "TOML config file")
	fs.StringVarP(&o.shaderPath, "shader", "s", "", "two-section shader file (default: built-in Basic.shader)")
	fs.BoolVarP(&o.watch, "watch", "w", false, "rebuild the program when the shader file changes")
	fs.BoolVar(&o.lenient, "lenient", false, "link and keep the program even if a stage fails to compile")
	fs.BoolVar(&o.compat, "compat", false, "accept malformed or unreadable shader files")
	fs.StringVar(&o.logLevel, "log-level", "info", "debug, info, warn or error")
	err := fs.Parse(args)
	return o, fs, err
}

// loadConfig applies explicitly set flags over the config file or defaults.
func loadConfig(o options, fs *pflag.FlagSet) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return config.Config{}, err
		}
	}
	if fs.Changed("shader") {
		cfg.Shader.Path = o.shaderPath
	}
	if fs.Changed("watch") {
		cfg.Shader.Watch = o.watch
	}
	if fs.Changed("lenient") {
		cfg.Shader.Lenient = o.lenient
	}
	if fs.Changed("compat") {
		cfg.Shader.Compat = o.compat
	}
	return cfg, cfg.Validate()
}

func newLogger(level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})), nil
}

func run(args []string) error {
	opts, fs, err := parseFlags(args)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	logger, err := newLogger(opts.logLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	cfg, err := loadConfig(opts, fs)
	if err != nil {
		return err
	}

	window, err := core.NewWindow(cfg.WindowConfig())
	if err != nil {
		return err
	}
	defer window.Destroy()

	glc, err := opengl.NewContext(logger)
	if err != nil {
		return err
	}

	q, err := newQuad(glc)
	if err != nil {
		return fmt.Errorf("quad: %w", err)
	}
	defer q.delete()

	app := &lab{
		cfg: cfg,
		log: logger,
		glc: glc,
		lo:  shader.LoadOptions{Compat: cfg.Shader.Compat},
		bo:  shader.BuildOptions{Lenient: cfg.Shader.Lenient, Logger: logger},
	}

	program, err := app.build()
	if err != nil && !program.Valid() {
		return err
	}
	if err != nil {
		logger.Warn("using program built with errors", "err", err)
	}
	app.program = program
	defer func() { app.program.Delete() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var watcher *shader.Watcher
	if cfg.Shader.Watch && cfg.Shader.Path != "" {
		watcher, err = shader.NewWatcher(cfg.Shader.Path, app.lo, logger)
		if err != nil {
			return err
		}
		defer watcher.Close()
		go watcher.Run(ctx)
		logger.Info("watching shader", "path", cfg.Shader.Path)
	}

	return app.loop(window, q, watcher)
}

type lab struct {
	cfg     config.Config
	log     *slog.Logger
	glc     *opengl.Context
	lo      shader.LoadOptions
	bo      shader.BuildOptions
	program *shader.Program
}

func (l *lab) build() (*shader.Program, error) {
	if l.cfg.Shader.Path != "" {
		return shader.BuildFile(l.glc, l.cfg.Shader.Path, l.lo, l.bo)
	}
	src, err := res.Basic()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", res.BasicName, err)
	}
	return shader.BuildSource(l.glc, src, l.bo)
}

// swap installs p if it built cleanly and keeps the current program otherwise.
func (l *lab) swap(p *shader.Program, err error) {
	if err != nil {
		l.log.Error("shader rebuild failed, keeping previous program", "err", err)
		p.Delete()
		return
	}
	l.program.Delete()
	l.program = p
	l.log.Info("shader program rebuilt", "program", p.Handle())
}

func (l *lab) loop(window *core.Window, q *quad, watcher *shader.Watcher) error {
	var (
		sources <-chan shader.Source
		errs    <-chan error
	)
	if watcher != nil {
		sources, errs = watcher.Sources(), watcher.Errors()
	}

	renderer := opengl.NewRenderer(l.glc)
	clearColor := l.cfg.ClearColor()
	pulse := anim.NewOscillator(0, 1, l.cfg.Render.PulseStep)

	var (
		lastErr    string
		reloadDown bool
	)
	for !window.ShouldClose() {
		window.PollEvents()
		if window.IsKeyPressed(core.KeyEscape) {
			window.SetShouldClose(true)
			continue
		}

		select {
		case src := <-sources:
			q.va.Bind()
			l.swap(shader.BuildSource(l.glc, src, l.bo))
		case err := <-errs:
			l.log.Error("shader reload failed", "err", err)
		default:
		}

		pressed := window.IsKeyPressed(core.KeyR)
		if pressed && !reloadDown {
			q.va.Bind()
			l.swap(l.build())
		}
		reloadDown = pressed

		width, height := window.GetFramebufferSize()
		renderer.SetViewport(width, height)
		renderer.Clear(clearColor)

		if err := l.draw(renderer, q, pulse.Next(), width, height); err != nil {
			if msg := err.Error(); msg != lastErr {
				l.log.Error("draw failed", "err", err)
				lastErr = msg
			}
		} else {
			lastErr = ""
		}

		window.SwapBuffers()
	}
	return nil
}

func (l *lab) draw(r *opengl.Renderer, q *quad, red float32, width, height int) error {
	if err := l.program.Bind(); err != nil {
		return err
	}

	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	mvp := mgl32.Ortho(-aspect, aspect, -1, 1, -1, 1)

	if err := setUniforms(l.program, mvp, red); err != nil {
		return err
	}
	return r.Draw(q.va, q.ib, l.program)
}

type uniformSetter interface {
	SetUniformMat4(name string, m mgl32.Mat4) error
	SetUniform4f(name string, v0, v1, v2, v3 float32) error
}

// setUniforms feeds the frame's uniforms. A shader is free to leave either
// one out; only driver errors are returned.
func setUniforms(p uniformSetter, mvp mgl32.Mat4, red float32) error {
	var ue *shader.UniformError
	if err := p.SetUniformMat4("u_MVP", mvp); err != nil && !errors.As(err, &ue) {
		return err
	}
	if err := p.SetUniform4f("u_Color", red, 0.3, 0.8, 1.0); err != nil && !errors.As(err, &ue) {
		return err
	}
	return nil
}
