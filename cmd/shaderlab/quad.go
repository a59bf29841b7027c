package main

import "shaderlab/opengl"

var quadPositions = []float32{
	-0.5, -0.5, // 0
	0.5, -0.5, // 1
	0.5, 0.5, // 2
	-0.5, 0.5, // 3
}

var quadIndices = []uint32{
	0, 1, 2,
	2, 3, 0,
}

// quad owns the buffers for a unit square centred on the origin.
type quad struct {
	va *opengl.VertexArray
	vb *opengl.VertexBuffer
	ib *opengl.IndexBuffer
}

// newQuad leaves the quad's vertex array bound.
func newQuad(c *opengl.Context) (*quad, error) {
	va, err := opengl.NewVertexArray(c)
	if err != nil {
		return nil, err
	}
	q := &quad{va: va}

	if q.vb, err = opengl.NewVertexBuffer(c, quadPositions); err != nil {
		q.delete()
		return nil, err
	}
	var layout opengl.VertexBufferLayout
	layout.PushFloat(2)
	if err := va.AddBuffer(q.vb, &layout); err != nil {
		q.delete()
		return nil, err
	}
	if q.ib, err = opengl.NewIndexBuffer(c, quadIndices); err != nil {
		q.delete()
		return nil, err
	}
	return q, nil
}

func (q *quad) delete() {
	if q.ib != nil {
		q.ib.Delete()
	}
	if q.vb != nil {
		q.vb.Delete()
	}
	q.va.Delete()
}
