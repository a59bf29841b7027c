package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"shaderlab/internal/glcall"
)

// VertexArray records attribute layouts and the bound index buffer.
type VertexArray struct {
	c  *Context
	id uint32
}

func NewVertexArray(c *Context) (*VertexArray, error) {
	va := &VertexArray{c: c}
	gl.GenVertexArrays(1, &va.id)
	gl.BindVertexArray(va.id)
	if err := glcall.Check(c, "glBindVertexArray"); err != nil {
		return nil, fmt.Errorf("vertex array: %w", err)
	}
	return va, nil
}

// AddBuffer binds vb and describes its attributes, starting at location 0.
func (va *VertexArray) AddBuffer(vb *VertexBuffer, layout *VertexBufferLayout) error {
	va.Bind()
	vb.Bind()
	offsets := layout.Offsets()
	for i, e := range layout.Elements() {
		gl.EnableVertexAttribArray(uint32(i))
		gl.VertexAttribPointer(uint32(i), e.Count, e.Type, e.Normalized, layout.Stride(), gl.PtrOffset(offsets[i]))
		if err := glcall.Check(va.c, "glVertexAttribPointer"); err != nil {
			return fmt.Errorf("attribute %d: %w", i, err)
		}
	}
	return nil
}

func (va *VertexArray) Bind()   { gl.BindVertexArray(va.id) }
func (va *VertexArray) Unbind() { gl.BindVertexArray(0) }

func (va *VertexArray) Delete() {
	if va.id == 0 {
		return
	}
	gl.DeleteVertexArrays(1, &va.id)
	va.id = 0
}
