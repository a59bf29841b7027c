package shader

import (
	"github.com/go-gl/mathgl/mgl32"

	"shaderlab/internal/glcall"
)

// Program is a linked program owned by the caller until Delete.
//
// Uniform setters act on the driver's current program, so the program must be
// bound first.
type Program struct {
	d        Driver
	handle   uint32
	uniforms map[string]int32
}

func newProgram(d Driver, handle uint32) *Program {
	return &Program{
		d:        d,
		handle:   handle,
		uniforms: make(map[string]int32),
	}
}

// Handle returns the driver's name for the program, 0 once deleted.
func (p *Program) Handle() uint32 {
	if p == nil {
		return 0
	}
	return p.handle
}

// Valid reports whether p still refers to a driver program.
func (p *Program) Valid() bool {
	return p.Handle() != 0
}

func (p *Program) Bind() error {
	p.d.UseProgram(p.handle)
	return glcall.Check(p.d, "glUseProgram")
}

func (p *Program) Unbind() error {
	p.d.UseProgram(0)
	return glcall.Check(p.d, "glUseProgram")
}

// Delete releases the program. It is safe to call more than once.
func (p *Program) Delete() error {
	if !p.Valid() {
		return nil
	}
	p.d.DeleteProgram(p.handle)
	p.handle = 0
	clear(p.uniforms)
	return glcall.Check(p.d, "glDeleteProgram")
}

func (p *Program) SetUniform1i(name string, v int32) error {
	loc, err := p.location(name)
	if err != nil {
		return err
	}
	p.d.Uniform1i(loc, v)
	return glcall.Check(p.d, "glUniform1i")
}

func (p *Program) SetUniform1f(name string, v float32) error {
	loc, err := p.location(name)
	if err != nil {
		return err
	}
	p.d.Uniform1f(loc, v)
	return glcall.Check(p.d, "glUniform1f")
}

func (p *Program) SetUniform4f(name string, v0, v1, v2, v3 float32) error {
	loc, err := p.location(name)
	if err != nil {
		return err
	}
	p.d.Uniform4f(loc, v0, v1, v2, v3)
	return glcall.Check(p.d, "glUniform4f")
}

// SetUniformMat4 uploads m in column-major order.
func (p *Program) SetUniformMat4(name string, m mgl32.Mat4) error {
	loc, err := p.location(name)
	if err != nil {
		return err
	}
	p.d.UniformMatrix4fv(loc, [16]float32(m))
	return glcall.Check(p.d, "glUniformMatrix4fv")
}

// location looks up name once per program; misses are cached too.
func (p *Program) location(name string) (int32, error) {
	loc, ok := p.uniforms[name]
	if !ok {
		loc = p.d.UniformLocation(p.handle, name)
		if err := glcall.Check(p.d, "glGetUniformLocation"); err != nil {
			return -1, err
		}
		p.uniforms[name] = loc
	}
	if loc == -1 {
		return -1, &UniformError{Name: name}
	}
	return loc, nil
}
