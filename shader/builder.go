package shader

import (
	"errors"
	"fmt"
	"log/slog"

	"shaderlab/internal/glcall"
)

// BuildOptions controls Build.
type BuildOptions struct {
	// Lenient keeps going after a stage fails to compile: the program is still
	// created, linked from whatever compiled, validated, and returned together
	// with the accumulated errors. Useful when the link log is wanted as well.
	Lenient bool

	// Logger receives build diagnostics. Nil discards them.
	Logger *slog.Logger
}

func (o BuildOptions) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// Build compiles vertex and fragment, links them into a program and validates
// it against the driver's current state.
//
// Compiled units are deleted before Build returns, whatever the outcome. In
// the default mode any error yields a nil program and nothing stays allocated.
// In lenient mode a created program is returned even when err is non-nil.
func Build(d Driver, vertex, fragment string, opts BuildOptions) (*Program, error) {
	b := &builder{d: d, log: opts.logger()}
	glcall.Clear(d)

	vs, vsErr := b.compile(StageVertex, vertex)
	fs, fsErr := b.compile(StageFragment, fragment)
	compileErr := errors.Join(vsErr, fsErr)

	var (
		prog    uint32
		linkErr error
	)
	if compileErr == nil || opts.Lenient {
		prog, linkErr = b.link(vs, fs)
	}

	releaseErr := errors.Join(b.release(vs), b.release(fs))

	err := errors.Join(compileErr, linkErr, releaseErr)
	if prog == 0 {
		return nil, err
	}
	if err != nil && !opts.Lenient {
		d.DeleteProgram(prog)
		glcall.Clear(d)
		return nil, err
	}

	b.log.Debug("shader program built", "program", prog)
	return newProgram(d, prog), err
}

// BuildSource builds the two stages of src.
func BuildSource(d Driver, src Source, opts BuildOptions) (*Program, error) {
	return Build(d, src.Vertex, src.Fragment, opts)
}

// BuildFile loads path and builds the program it describes.
func BuildFile(d Driver, path string, lo LoadOptions, bo BuildOptions) (*Program, error) {
	src, err := LoadFile(path, lo)
	if err != nil {
		return nil, err
	}
	for _, l := range src.Unassigned {
		bo.logger().Debug("shader line outside any section", "path", path, "line", l.Number)
	}

	p, err := BuildSource(d, src, bo)
	if err != nil {
		err = fmt.Errorf("%s: %w", path, err)
	}
	return p, err
}

type builder struct {
	d   Driver
	log *slog.Logger
}

// compile returns the compiled unit, or 0 and the reason it is unusable.
func (b *builder) compile(stage Stage, src string) (uint32, error) {
	id := b.d.CreateShader(stage)
	if err := glcall.Check(b.d, "glCreateShader"); err != nil {
		return 0, errors.Join(fmt.Errorf("%s shader: %w", stage, err), b.release(id))
	}
	if id == 0 {
		return 0, &CompileError{Stage: stage, Log: "driver returned no shader object"}
	}

	b.d.ShaderSource(id, src)
	b.d.CompileShader(id)
	if err := glcall.Check(b.d, "glCompileShader"); err != nil {
		return 0, errors.Join(fmt.Errorf("%s shader: %w", stage, err), b.release(id))
	}

	if !b.d.ShaderCompileStatus(id) {
		log := b.d.ShaderInfoLog(id)
		b.log.Warn("failed to compile shader", "stage", stage, "log", log)
		return 0, errors.Join(&CompileError{Stage: stage, Log: log}, b.release(id))
	}
	return id, nil
}

// link attaches the non-zero units to a new program, links and validates it.
// The program is returned whenever it was created.
func (b *builder) link(units ...uint32) (uint32, error) {
	prog := b.d.CreateProgram()
	if err := glcall.Check(b.d, "glCreateProgram"); err != nil {
		if prog != 0 {
			b.d.DeleteProgram(prog)
			glcall.Clear(b.d)
		}
		return 0, err
	}
	if prog == 0 {
		return 0, errors.New("driver returned no program object")
	}

	var errs []error
	for _, id := range units {
		if id == 0 {
			continue
		}
		b.d.AttachShader(prog, id)
		if err := glcall.Check(b.d, "glAttachShader"); err != nil {
			errs = append(errs, err)
		}
	}

	b.d.LinkProgram(prog)
	if err := glcall.Check(b.d, "glLinkProgram"); err != nil {
		errs = append(errs, err)
	}
	if !b.d.ProgramLinkStatus(prog) {
		log := b.d.ProgramInfoLog(prog)
		b.log.Warn("failed to link program", "program", prog, "log", log)
		return prog, errors.Join(append(errs, &LinkError{Log: log})...)
	}

	b.d.ValidateProgram(prog)
	if err := glcall.Check(b.d, "glValidateProgram"); err != nil {
		errs = append(errs, err)
	}
	if !b.d.ProgramValidateStatus(prog) {
		log := b.d.ProgramInfoLog(prog)
		b.log.Warn("failed to validate program", "program", prog, "log", log)
		errs = append(errs, &ValidateError{Log: log})
	}
	return prog, errors.Join(errs...)
}

func (b *builder) release(id uint32) error {
	if id == 0 {
		return nil
	}
	b.d.DeleteShader(id)
	return glcall.Check(b.d, "glDeleteShader")
}
