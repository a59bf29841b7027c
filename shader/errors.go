package shader

import (
	"errors"
	"fmt"
)

// ErrMalformedSource is matched by every *MalformedSourceError.
var ErrMalformedSource = errors.New("malformed shader source")

// IOError reports a shader source file that could not be opened or read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("read shader source %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// MalformedSourceError reports a source whose section markers do not describe
// exactly one vertex and one fragment section. Line is zero when the problem
// concerns the file as a whole.
type MalformedSourceError struct {
	Path   string
	Line   int
	Reason string
}

func (e *MalformedSourceError) Error() string {
	loc := e.Path
	if loc == "" {
		loc = "<input>"
	}
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", loc, e.Line)
	}
	return fmt.Sprintf("%s: %s: %s", ErrMalformedSource, loc, e.Reason)
}

func (e *MalformedSourceError) Is(target error) bool { return target == ErrMalformedSource }

// CompileError carries the driver's info log for a stage that failed to compile.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Log)
}

// LinkError carries the program info log after a failed link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("link failed: %s", e.Log)
}

// ValidateError carries the program info log after a failed validation.
type ValidateError struct {
	Log string
}

func (e *ValidateError) Error() string {
	return fmt.Sprintf("validate failed: %s", e.Log)
}

// UniformError reports a uniform name the linked program does not expose.
type UniformError struct {
	Name string
}

func (e *UniformError) Error() string {
	return fmt.Sprintf("uniform %q not found", e.Name)
}
