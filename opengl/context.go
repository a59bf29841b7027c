// Package opengl is the OpenGL 4.1 core backend: a shader.Driver over go-gl
// plus the buffer objects needed to draw indexed geometry.
package opengl

import (
	"fmt"
	"log/slog"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"shaderlab/shader"
)

// Context issues GL calls on the current context.
// Must be created after the GLFW window context is made current, and used only
// from that thread.
type Context struct {
	log *slog.Logger
}

var _ shader.Driver = (*Context)(nil)

// NewContext loads the GL function pointers for the current context.
func NewContext(logger *slog.Logger) (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	c := &Context{log: logger}
	c.log.Info("OpenGL initialized", "version", c.Version(), "renderer", gl.GoStr(gl.GetString(gl.RENDERER)))
	return c, nil
}

func (c *Context) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (c *Context) GetError() uint32 { return gl.GetError() }

func (c *Context) CreateShader(stage shader.Stage) uint32 {
	switch stage {
	case shader.StageVertex:
		return gl.CreateShader(gl.VERTEX_SHADER)
	case shader.StageFragment:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	}
	return 0
}

func (c *Context) ShaderSource(id uint32, src string) {
	csrc, free := gl.Strs(src)
	gl.ShaderSource(id, 1, csrc, nil)
	free()
}

func (c *Context) CompileShader(id uint32) { gl.CompileShader(id) }

func (c *Context) ShaderCompileStatus(id uint32) bool {
	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

func (c *Context) ShaderInfoLog(id uint32) string {
	var logLen int32
	gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLen)
	if logLen == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetShaderInfoLog(id, logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00\n")
}

func (c *Context) DeleteShader(id uint32) { gl.DeleteShader(id) }

func (c *Context) CreateProgram() uint32 { return gl.CreateProgram() }

func (c *Context) AttachShader(prog, id uint32) { gl.AttachShader(prog, id) }

func (c *Context) LinkProgram(prog uint32) { gl.LinkProgram(prog) }

func (c *Context) ProgramLinkStatus(prog uint32) bool {
	return c.programStatus(prog, gl.LINK_STATUS)
}

func (c *Context) ValidateProgram(prog uint32) { gl.ValidateProgram(prog) }

func (c *Context) ProgramValidateStatus(prog uint32) bool {
	return c.programStatus(prog, gl.VALIDATE_STATUS)
}

func (c *Context) programStatus(prog, pname uint32) bool {
	var status int32
	gl.GetProgramiv(prog, pname, &status)
	return status == gl.TRUE
}

func (c *Context) ProgramInfoLog(prog uint32) string {
	var logLen int32
	gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
	if logLen == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00\n")
}

func (c *Context) DeleteProgram(prog uint32) { gl.DeleteProgram(prog) }

func (c *Context) UseProgram(prog uint32) { gl.UseProgram(prog) }

func (c *Context) UniformLocation(prog uint32, name string) int32 {
	return gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
}

func (c *Context) Uniform1i(loc int32, v int32) { gl.Uniform1i(loc, v) }

func (c *Context) Uniform1f(loc int32, v float32) { gl.Uniform1f(loc, v) }

func (c *Context) Uniform4f(loc int32, v0, v1, v2, v3 float32) {
	gl.Uniform4f(loc, v0, v1, v2, v3)
}

// UniformMatrix4fv uploads m as-is; it is expected in column-major order.
func (c *Context) UniformMatrix4fv(loc int32, m [16]float32) {
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}
