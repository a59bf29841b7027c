package opengl

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"

	"shaderlab/core"
	"shaderlab/internal/glcall"
	"shaderlab/shader"
)

// Renderer issues clear and draw calls.
type Renderer struct {
	c *Context
}

func NewRenderer(c *Context) *Renderer {
	return &Renderer{c: c}
}

// SetViewport resizes the OpenGL viewport.
func (r *Renderer) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Clear clears the color buffer with the given colour.
func (r *Renderer) Clear(bg core.Color) {
	gl.ClearColor(bg.R, bg.G, bg.B, bg.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Draw draws ib's triangles from va with program p.
func (r *Renderer) Draw(va *VertexArray, ib *IndexBuffer, p *shader.Program) error {
	if err := p.Bind(); err != nil {
		return err
	}
	va.Bind()
	ib.Bind()
	gl.DrawElements(gl.TRIANGLES, ib.Count(), gl.UNSIGNED_INT, nil)
	return glcall.Check(r.c, "glDrawElements")
}
