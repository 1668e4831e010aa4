package scene

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/mwrona/glimmer/gfx"
	"github.com/mwrona/glimmer/shader"
	"github.com/mwrona/glimmer/texture"
)

// Transform places an object in the scene. Rotation is in degrees around the
// X, Y and Z axes.
type Transform struct {
	Position mgl32.Vec3
	Scale    mgl32.Vec3
	Rotation mgl32.Vec3
}

// Object pairs a transform with a shared mesh and texture. The renderable and
// texture may be referenced by any number of objects; the object does not own
// their GPU handles.
type Object struct {
	Transform Transform

	renderable *Renderable
	texture    *texture.Texture
}

// NewObject creates an object at the given transform with nothing to draw
// yet.
func NewObject(t Transform) *Object {
	return &Object{Transform: t}
}

// SetRenderable attaches a (possibly shared) mesh.
func (o *Object) SetRenderable(r *Renderable) { o.renderable = r }

// Renderable returns the attached mesh, nil if none.
func (o *Object) Renderable() *Renderable { return o.renderable }

// SetTexture attaches a (possibly shared) texture.
func (o *Object) SetTexture(t *texture.Texture) { o.texture = t }

// Texture returns the attached texture, nil if none.
func (o *Object) Texture() *texture.Texture { return o.texture }

// ModelMatrix composes the object's model matrix: translate, scale, then
// rotate around Z, Y and X in that fixed order, degrees converted to radians.
func (o *Object) ModelMatrix() mgl32.Mat4 {
	t := o.Transform
	m := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	m = m.Mul4(mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
	m = m.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(t.Rotation.Z())))
	m = m.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(t.Rotation.Y())))
	m = m.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(t.Rotation.X())))
	return m
}

// Render draws the object: it activates the program, uploads the model matrix
// to modelUniform, binds the texture (if any) to unit 0 and uploads that unit
// to samplerUniform, then issues an indexed draw when an index buffer with a
// nonzero count is attached and an arrays draw sized by vertex count
// otherwise. A nil program or missing renderable makes this a no-op.
//
// Render mutates the driver's global binding state (current program, array,
// texture unit); it restores nothing beyond unbinding what it bound, so
// callers must not assume bindings survive across calls.
func (o *Object) Render(prog *shader.Program, modelUniform, samplerUniform string, mode gfx.Primitive) {
	if o.renderable == nil || prog == nil {
		return
	}

	prog.Use()
	prog.SetMat4(modelUniform, false, o.ModelMatrix())

	if o.texture != nil {
		o.texture.Bind(0)
		prog.SetInt(samplerUniform, 0)
	}

	o.renderable.Array().Bind()

	if ebo := o.renderable.IndexBuffer(); ebo != nil && ebo.Count() > 0 {
		gl.DrawElements(mode.GL(), int32(ebo.Count()), gl.UNSIGNED_INT, gl.PtrOffset(0))
	} else {
		gl.DrawArrays(mode.GL(), 0, int32(o.renderable.VertexBuffer().Count()))
	}

	o.renderable.Array().Unbind()

	if o.texture != nil {
		o.texture.Unbind()
	}

	prog.Unuse()
}
