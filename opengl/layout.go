package opengl

import gl "github.com/go-gl/gl/v4.1-core/gl"

// LayoutElement describes one vertex attribute.
type LayoutElement struct {
	Type       uint32
	Count      int32
	Normalized bool
}

// Size is the attribute's size in bytes.
func (e LayoutElement) Size() int32 {
	return e.Count * SizeOfType(e.Type)
}

// SizeOfType returns the byte size of a GL component type, 0 if unsupported.
func SizeOfType(t uint32) int32 {
	switch t {
	case gl.FLOAT, gl.UNSIGNED_INT, gl.INT:
		return 4
	case gl.UNSIGNED_SHORT, gl.SHORT:
		return 2
	case gl.UNSIGNED_BYTE, gl.BYTE:
		return 1
	}
	return 0
}

// VertexBufferLayout lists interleaved attributes in location order.
type VertexBufferLayout struct {
	elements []LayoutElement
	stride   int32
}

func (l *VertexBufferLayout) PushFloat(count int32) {
	l.push(LayoutElement{Type: gl.FLOAT, Count: count})
}

func (l *VertexBufferLayout) PushUint32(count int32) {
	l.push(LayoutElement{Type: gl.UNSIGNED_INT, Count: count})
}

// PushUint8 adds a normalized byte attribute, typically a packed color.
func (l *VertexBufferLayout) PushUint8(count int32) {
	l.push(LayoutElement{Type: gl.UNSIGNED_BYTE, Count: count, Normalized: true})
}

func (l *VertexBufferLayout) push(e LayoutElement) {
	l.elements = append(l.elements, e)
	l.stride += e.Size()
}

func (l *VertexBufferLayout) Elements() []LayoutElement { return l.elements }

// Stride is the byte distance between consecutive vertices.
func (l *VertexBufferLayout) Stride() int32 { return l.stride }

// Offsets returns each element's byte offset within a vertex.
func (l *VertexBufferLayout) Offsets() []int {
	offsets := make([]int, len(l.elements))
	off := 0
	for i, e := range l.elements {
		offsets[i] = off
		off += int(e.Size())
	}
	return offsets
}
