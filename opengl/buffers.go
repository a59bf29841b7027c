package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"shaderlab/internal/glcall"
)

// VertexBuffer is a GL_ARRAY_BUFFER holding float vertex data.
type VertexBuffer struct {
	id uint32
}

// NewVertexBuffer uploads data with GL_STATIC_DRAW usage.
func NewVertexBuffer(c *Context, data []float32) (*VertexBuffer, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("vertex buffer: no data")
	}
	vb := &VertexBuffer{}
	gl.GenBuffers(1, &vb.id)
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.id)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	if err := glcall.Check(c, "glBufferData"); err != nil {
		vb.Delete()
		return nil, fmt.Errorf("vertex buffer: %w", err)
	}
	return vb, nil
}

func (vb *VertexBuffer) Bind()   { gl.BindBuffer(gl.ARRAY_BUFFER, vb.id) }
func (vb *VertexBuffer) Unbind() { gl.BindBuffer(gl.ARRAY_BUFFER, 0) }

func (vb *VertexBuffer) Delete() {
	if vb.id == 0 {
		return
	}
	gl.DeleteBuffers(1, &vb.id)
	vb.id = 0
}

// IndexBuffer is a GL_ELEMENT_ARRAY_BUFFER of uint32 indices.
type IndexBuffer struct {
	id    uint32
	count int32
}

// NewIndexBuffer uploads indices with GL_STATIC_DRAW usage. The element
// buffer binding is recorded by the currently bound vertex array.
func NewIndexBuffer(c *Context, indices []uint32) (*IndexBuffer, error) {
	if len(indices) == 0 {
		return nil, fmt.Errorf("index buffer: no indices")
	}
	ib := &IndexBuffer{count: int32(len(indices))}
	gl.GenBuffers(1, &ib.id)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.id)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	if err := glcall.Check(c, "glBufferData"); err != nil {
		ib.Delete()
		return nil, fmt.Errorf("index buffer: %w", err)
	}
	return ib, nil
}

// Count is the number of indices.
func (ib *IndexBuffer) Count() int32 { return ib.count }

func (ib *IndexBuffer) Bind()   { gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.id) }
func (ib *IndexBuffer) Unbind() { gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0) }

func (ib *IndexBuffer) Delete() {
	if ib.id == 0 {
		return
	}
	gl.DeleteBuffers(1, &ib.id)
	ib.id = 0
}
