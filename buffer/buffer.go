// Package buffer wraps the driver's vertex buffer, index buffer and vertex
// array objects. Each wrapper exclusively owns one GL handle: Release frees
// it exactly once and tolerates the zero handle. Updates reuse the existing
// allocation with a sub-range write when the byte footprint is unchanged and
// reallocate otherwise.
package buffer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/mwrona/glimmer/gfx"
)

// alloc tracks the byte size and element count of one GPU allocation. The
// update decision (sub-range write vs. reallocation) depends only on this
// bookkeeping, so it lives apart from the GL calls.
type alloc struct {
	size  int
	count int
}

// update records a new element sequence and reports whether the existing
// allocation can be overwritten in place (unchanged byte size).
func (a *alloc) update(count, stride int) bool {
	newSize := count * stride
	a.count = count
	if newSize == a.size {
		return true
	}
	a.size = newSize
	return false
}

// VertexBuffer owns one GL_ARRAY_BUFFER handle.
type VertexBuffer struct {
	id    uint32
	usage gfx.Usage
	alloc alloc
}

// NewVertexBuffer allocates a buffer and uploads the vertices with the given
// usage hint.
func NewVertexBuffer(vertices []Vertex, usage gfx.Usage) *VertexBuffer {
	b := &VertexBuffer{usage: usage}
	gl.GenBuffers(1, &b.id)
	b.alloc.update(len(vertices), VertexStride)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.id)
	gl.BufferData(gl.ARRAY_BUFFER, b.alloc.size, ptr(vertices), usage.GL())
	return b
}

// NewEmptyVertexBuffer allocates a buffer handle with no storage.
func NewEmptyVertexBuffer() *VertexBuffer {
	b := &VertexBuffer{usage: gfx.UsageEmpty}
	gl.GenBuffers(1, &b.id)
	return b
}

// Update replaces the buffer contents. When the byte size matches the current
// allocation the data is written in place; otherwise the buffer storage is
// reallocated with the original usage hint.
func (b *VertexBuffer) Update(vertices []Vertex) {
	b.Bind()
	if b.alloc.update(len(vertices), VertexStride) {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, b.alloc.size, ptr(vertices))
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, b.alloc.size, ptr(vertices), b.usage.GL())
	}
}

// Count returns the number of vertices in the current allocation.
func (b *VertexBuffer) Count() int { return b.alloc.count }

func (b *VertexBuffer) Bind()   { gl.BindBuffer(gl.ARRAY_BUFFER, b.id) }
func (b *VertexBuffer) Unbind() { gl.BindBuffer(gl.ARRAY_BUFFER, 0) }

// Release frees the GL handle. Safe to call more than once.
func (b *VertexBuffer) Release() {
	if b.id != 0 {
		gl.DeleteBuffers(1, &b.id)
		b.id = 0
	}
}

// IndexBuffer owns one GL_ELEMENT_ARRAY_BUFFER handle.
type IndexBuffer struct {
	id    uint32
	usage gfx.Usage
	alloc alloc
}

// NewIndexBuffer allocates a buffer and uploads the indices with the given
// usage hint.
func NewIndexBuffer(indices []uint32, usage gfx.Usage) *IndexBuffer {
	b := &IndexBuffer{usage: usage}
	gl.GenBuffers(1, &b.id)
	b.alloc.update(len(indices), indexStride)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.id)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, b.alloc.size, ptr(indices), usage.GL())
	return b
}

// NewEmptyIndexBuffer allocates a buffer handle with no storage.
func NewEmptyIndexBuffer() *IndexBuffer {
	b := &IndexBuffer{usage: gfx.UsageEmpty}
	gl.GenBuffers(1, &b.id)
	return b
}

// Update replaces the buffer contents, in place when the byte size is
// unchanged.
func (b *IndexBuffer) Update(indices []uint32) {
	b.Bind()
	if b.alloc.update(len(indices), indexStride) {
		gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, b.alloc.size, ptr(indices))
	} else {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, b.alloc.size, ptr(indices), b.usage.GL())
	}
}

// Count returns the number of indices in the current allocation.
func (b *IndexBuffer) Count() int { return b.alloc.count }

func (b *IndexBuffer) Bind()   { gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.id) }
func (b *IndexBuffer) Unbind() { gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0) }

// Release frees the GL handle. Safe to call more than once.
func (b *IndexBuffer) Release() {
	if b.id != 0 {
		gl.DeleteBuffers(1, &b.id)
		b.id = 0
	}
}

// VertexArray owns one vertex array object: the attribute layout descriptor
// the draw call reads from.
type VertexArray struct {
	id uint32
}

// NewVertexArray allocates a vertex array handle.
func NewVertexArray() *VertexArray {
	a := &VertexArray{}
	gl.GenVertexArrays(1, &a.id)
	return a
}

// SetAttribute binds the array and the vertex buffer, then enables and
// configures one attribute slot against the buffer's byte layout.
func (a *VertexArray) SetAttribute(vb *VertexBuffer, index uint32, components int32, xtype gfx.AttribType, normalized bool, stride int32, offset int) {
	a.Bind()
	vb.Bind()
	gl.EnableVertexAttribArray(index)
	gl.VertexAttribPointer(index, components, xtype.GL(), normalized, stride, gl.PtrOffset(offset))
}

func (a *VertexArray) Bind()   { gl.BindVertexArray(a.id) }
func (a *VertexArray) Unbind() { gl.BindVertexArray(0) }

// Release frees the GL handle. Safe to call more than once.
func (a *VertexArray) Release() {
	if a.id != 0 {
		gl.DeleteVertexArrays(1, &a.id)
		a.id = 0
	}
}

// ptr returns a driver-usable pointer to the slice data, or nil for an empty
// slice (gl.Ptr rejects nil-backed slices).
func ptr[E any](s []E) unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	return gl.Ptr(s)
}
