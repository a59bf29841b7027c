// Package glcall turns the GL error flag into Go errors.
//
// GL reports failures through a sticky error queue instead of return values.
// Clear drains the queue before a call and Check reads it afterwards, so the
// error can be attributed to the call that produced it.
package glcall

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// GL error codes, as returned by glGetError.
const (
	NoError                     uint32 = 0
	InvalidEnum                 uint32 = 0x0500
	InvalidValue                uint32 = 0x0501
	InvalidOperation            uint32 = 0x0502
	StackOverflow               uint32 = 0x0503
	StackUnderflow              uint32 = 0x0504
	OutOfMemory                 uint32 = 0x0505
	InvalidFramebufferOperation uint32 = 0x0506
)

// maxDrain bounds the drain loop; a lost context can report errors forever.
const maxDrain = 64

// ErrorSource is anything exposing glGetError.
type ErrorSource interface {
	GetError() uint32
}

// Error is a GL error code attributed to a named call site.
type Error struct {
	Call string
	Code uint32
	File string
	Line int
}

func (e *Error) Error() string {
	return fmt.Sprintf("[OpenGL Error] (%s): %s %s:%d", CodeName(e.Code), e.Call, e.File, e.Line)
}

// CodeName returns the GL enum name for an error code.
func CodeName(code uint32) string {
	switch code {
	case NoError:
		return "GL_NO_ERROR"
	case InvalidEnum:
		return "GL_INVALID_ENUM"
	case InvalidValue:
		return "GL_INVALID_VALUE"
	case InvalidOperation:
		return "GL_INVALID_OPERATION"
	case StackOverflow:
		return "GL_STACK_OVERFLOW"
	case StackUnderflow:
		return "GL_STACK_UNDERFLOW"
	case OutOfMemory:
		return "GL_OUT_OF_MEMORY"
	case InvalidFramebufferOperation:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	}
	return fmt.Sprintf("0x%04X", code)
}

// Clear discards any pending errors.
func Clear(src ErrorSource) {
	for i := 0; i < maxDrain; i++ {
		if src.GetError() == NoError {
			return
		}
	}
}

// Check returns the first pending error as an *Error naming call and the
// caller's location, or nil. The rest of the queue is drained.
func Check(src ErrorSource, call string) error {
	code := src.GetError()
	if code == NoError {
		return nil
	}
	Clear(src)

	e := &Error{Call: call, Code: code}
	if _, file, line, ok := runtime.Caller(1); ok {
		e.File = filepath.Base(file)
		e.Line = line
	}
	return e
}
