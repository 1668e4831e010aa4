// Package scene composes buffers into drawable meshes and pairs them with a
// spatial transform. A Renderable owns its GPU buffers; Objects share
// Renderables and Textures freely, so several objects can draw the same mesh
// with different transforms.
package scene

import (
	"github.com/mwrona/glimmer/buffer"
	"github.com/mwrona/glimmer/gfx"
)

// Renderable composes a vertex array, a vertex buffer and an optional index
// buffer into one drawable mesh with the fixed four-channel vertex layout
// (position, color, normal, UV).
type Renderable struct {
	vao *buffer.VertexArray
	vbo *buffer.VertexBuffer
	ebo *buffer.IndexBuffer
}

// NewRenderable builds a non-indexed mesh from the vertex list.
func NewRenderable(vertices []buffer.Vertex, usage gfx.Usage) *Renderable {
	r := &Renderable{
		vao: buffer.NewVertexArray(),
		vbo: buffer.NewVertexBuffer(vertices, usage),
	}
	r.bindLayout()
	return r
}

// NewIndexedRenderable builds an indexed mesh. The index buffer is created
// while the vertex array is bound so the driver associates the two; an empty
// index list yields a non-indexed mesh.
func NewIndexedRenderable(vertices []buffer.Vertex, vertexUsage gfx.Usage, indices []uint32, indexUsage gfx.Usage) *Renderable {
	r := &Renderable{
		vao: buffer.NewVertexArray(),
		vbo: buffer.NewVertexBuffer(vertices, vertexUsage),
	}

	if len(indices) > 0 {
		r.vao.Bind()
		r.ebo = buffer.NewIndexBuffer(indices, indexUsage)
		r.ebo.Bind()
		r.vao.Unbind()
	}

	r.bindLayout()
	return r
}

// bindLayout configures the fixed attribute channels against the vertex
// buffer. The array must be bound before the attribute calls.
func (r *Renderable) bindLayout() {
	r.vao.Bind()
	r.vbo.Bind()

	r.vao.SetAttribute(r.vbo, 0, 3, gfx.Float, false, buffer.VertexStride, buffer.OffsetPos)
	r.vao.SetAttribute(r.vbo, 1, 3, gfx.Float, false, buffer.VertexStride, buffer.OffsetColor)
	r.vao.SetAttribute(r.vbo, 2, 3, gfx.Float, false, buffer.VertexStride, buffer.OffsetNormal)
	r.vao.SetAttribute(r.vbo, 3, 2, gfx.Float, false, buffer.VertexStride, buffer.OffsetUV)

	r.vao.Unbind()
}

// Array returns the vertex array for the drawing routine.
func (r *Renderable) Array() *buffer.VertexArray { return r.vao }

// VertexBuffer returns the owned vertex buffer.
func (r *Renderable) VertexBuffer() *buffer.VertexBuffer { return r.vbo }

// IndexBuffer returns the owned index buffer, nil for non-indexed meshes.
func (r *Renderable) IndexBuffer() *buffer.IndexBuffer { return r.ebo }

// Release frees every owned GPU handle. Safe to call more than once.
func (r *Renderable) Release() {
	if r.ebo != nil {
		r.ebo.Release()
	}
	if r.vbo != nil {
		r.vbo.Release()
	}
	if r.vao != nil {
		r.vao.Release()
	}
}
