package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/mwrona/glimmer/gfx"
)

func unitTransform() Transform {
	return Transform{Scale: mgl32.Vec3{1, 1, 1}}
}

func TestModelMatrixIdentityForUnitTransform(t *testing.T) {
	o := NewObject(unitTransform())
	assert.True(t, o.ModelMatrix().ApproxEqual(mgl32.Ident4()))
}

func TestModelMatrixTranslation(t *testing.T) {
	tr := unitTransform()
	tr.Position = mgl32.Vec3{1, 2, 3}
	o := NewObject(tr)

	got := o.ModelMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.True(t, got.ApproxEqual(mgl32.Vec4{1, 2, 3, 1}))
}

func TestModelMatrixComposition(t *testing.T) {
	tr := Transform{
		Position: mgl32.Vec3{5, -1, 2},
		Scale:    mgl32.Vec3{2, 3, 4},
		Rotation: mgl32.Vec3{30, 60, 90},
	}
	o := NewObject(tr)

	want := mgl32.Translate3D(5, -1, 2).
		Mul4(mgl32.Scale3D(2, 3, 4)).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(90))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(60))).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(30)))

	assert.True(t, o.ModelMatrix().ApproxEqualThreshold(want, 1e-6))
}

func TestModelMatrixRotationOrderIsZYX(t *testing.T) {
	tr := unitTransform()
	tr.Rotation = mgl32.Vec3{90, 90, 0}
	o := NewObject(tr)

	// with zero Z rotation the composition must reduce to Ry * Rx, not Rx * Ry
	want := mgl32.HomogRotate3DY(mgl32.DegToRad(90)).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(90)))
	assert.True(t, o.ModelMatrix().ApproxEqualThreshold(want, 1e-6))
}

func TestRenderWithoutRenderableIsNoOp(t *testing.T) {
	// no GL context exists in tests: reaching any driver call would crash,
	// so completing is the assertion
	o := NewObject(unitTransform())
	o.Render(nil, "uModel", "uTexture", gfx.Triangles)
	assert.Nil(t, o.Renderable())
}

func TestRenderWithoutProgramIsNoOp(t *testing.T) {
	o := NewObject(unitTransform())
	o.SetRenderable(&Renderable{})
	o.Render(nil, "uModel", "uTexture", gfx.Triangles)
}
