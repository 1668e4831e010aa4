// Demo: two textured cubes sharing one mesh, driven by the per-frame input
// cycle. Escape quits, arrow keys move the front cube, the wheel zooms the
// camera, holding the right mouse button enables mouselook-style relative
// motion readout.
package main

import (
	"flag"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/mwrona/glimmer"
	"github.com/mwrona/glimmer/buffer"
	"github.com/mwrona/glimmer/gfx"
	"github.com/mwrona/glimmer/input"
	"github.com/mwrona/glimmer/scene"
	"github.com/mwrona/glimmer/shader"
	"github.com/mwrona/glimmer/texture"
	"github.com/mwrona/glimmer/window"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	var width = flag.Int("width", 1280, "window width")
	var height = flag.Int("height", 720, "window height")
	var vertPath = flag.String("vert", "assets/basic.vert", "vertex shader path")
	var fragPath = flag.String("frag", "assets/basic.frag", "fragment shader path")
	var texPath = flag.String("texture", "assets/crate.png", "texture image path")
	flag.Parse()

	glimmer.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	win, err := window.New(window.Defaults(*width, *height, "glimmer demo"))
	if err != nil {
		slog.Error("failed to create window", "err", err)
		os.Exit(1)
	}
	defer win.Destroy()

	gl.Enable(gl.DEPTH_TEST)

	prog := shader.New(*vertPath, *fragPath)
	defer prog.Release()

	crate := texture.New(*texPath, gfx.Texture2D, true,
		gfx.Repeat, gfx.Repeat, gfx.Repeat,
		gfx.LinearMipmapLinear, gfx.MagLinear)
	defer crate.Release()

	mesh := scene.NewIndexedRenderable(cubeVertices(), gfx.StaticDraw, cubeIndices(), gfx.StaticDraw)
	defer mesh.Release()

	front := scene.NewObject(scene.Transform{
		Position: mgl32.Vec3{0, 0, 0},
		Scale:    mgl32.Vec3{1, 1, 1},
	})
	front.SetRenderable(mesh)
	front.SetTexture(crate)

	// second object shares the mesh and texture
	back := scene.NewObject(scene.Transform{
		Position: mgl32.Vec3{2.5, 0, -3},
		Scale:    mgl32.Vec3{0.5, 0.5, 0.5},
	})
	back.SetRenderable(mesh)
	back.SetTexture(crate)

	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 4}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	prog.SetMat4("uView", false, view)
	prog.SetMat4("uProjection", false, projection(win))

	for win.IsOpen() {
		win.BeginFrame()
		in := win.Input()
		dt := float32(win.Delta())

		if in.IsJustReleased(input.KeyEscape) {
			win.Close()
		}
		if in.Resized() {
			prog.SetMat4("uProjection", false, projection(win))
		}

		if in.IsDown(input.KeyLeft) {
			front.Transform.Position[0] -= 2 * dt
		}
		if in.IsDown(input.KeyRight) {
			front.Transform.Position[0] += 2 * dt
		}
		if in.IsDown(input.KeyUp) {
			front.Transform.Position[1] += 2 * dt
		}
		if in.IsDown(input.KeyDown) {
			front.Transform.Position[1] -= 2 * dt
		}

		if in.IsButtonJustPressed(input.ButtonRight) {
			win.SetRelativeMouseMode(true)
		}
		if in.IsButtonJustReleased(input.ButtonRight) {
			win.SetRelativeMouseMode(false)
		}

		// wheel zoom: the accumulator persists, so it acts as a camera offset
		eye := mgl32.Vec3{0, 0, 4 + in.ScrollDistance()/100}
		prog.SetMat4("uView", false, mgl32.LookAtV(eye, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0}))

		front.Transform.Rotation[1] += 45 * dt
		back.Transform.Rotation[0] += 30 * dt

		win.Clear(gfx.ClearColor|gfx.ClearDepth, 0.05, 0.05, 0.05, 1)
		front.Render(prog, "uModel", "uTexture", gfx.Triangles)
		back.Render(prog, "uModel", "uTexture", gfx.Triangles)

		win.SwapBuffers()
		win.EndFrame()
	}
}

func projection(win *window.Window) mgl32.Mat4 {
	aspect := float32(win.Width()) / float32(win.Height())
	return mgl32.Perspective(mgl32.DegToRad(45), aspect, 0.1, 100)
}

func cubeVertices() []buffer.Vertex {
	v := func(x, y, z, nx, ny, nz, u, w float32) buffer.Vertex {
		return buffer.Vertex{
			Pos:    mgl32.Vec3{x, y, z},
			Color:  mgl32.Vec3{1, 1, 1},
			Normal: mgl32.Vec3{nx, ny, nz},
			UV:     mgl32.Vec2{u, w},
		}
	}
	return []buffer.Vertex{
		// front
		v(-0.5, -0.5, 0.5, 0, 0, 1, 0, 0), v(0.5, -0.5, 0.5, 0, 0, 1, 1, 0),
		v(0.5, 0.5, 0.5, 0, 0, 1, 1, 1), v(-0.5, 0.5, 0.5, 0, 0, 1, 0, 1),
		// back
		v(0.5, -0.5, -0.5, 0, 0, -1, 0, 0), v(-0.5, -0.5, -0.5, 0, 0, -1, 1, 0),
		v(-0.5, 0.5, -0.5, 0, 0, -1, 1, 1), v(0.5, 0.5, -0.5, 0, 0, -1, 0, 1),
		// right
		v(0.5, -0.5, 0.5, 1, 0, 0, 0, 0), v(0.5, -0.5, -0.5, 1, 0, 0, 1, 0),
		v(0.5, 0.5, -0.5, 1, 0, 0, 1, 1), v(0.5, 0.5, 0.5, 1, 0, 0, 0, 1),
		// left
		v(-0.5, -0.5, -0.5, -1, 0, 0, 0, 0), v(-0.5, -0.5, 0.5, -1, 0, 0, 1, 0),
		v(-0.5, 0.5, 0.5, -1, 0, 0, 1, 1), v(-0.5, 0.5, -0.5, -1, 0, 0, 0, 1),
		// top
		v(-0.5, 0.5, 0.5, 0, 1, 0, 0, 0), v(0.5, 0.5, 0.5, 0, 1, 0, 1, 0),
		v(0.5, 0.5, -0.5, 0, 1, 0, 1, 1), v(-0.5, 0.5, -0.5, 0, 1, 0, 0, 1),
		// bottom
		v(-0.5, -0.5, -0.5, 0, -1, 0, 0, 0), v(0.5, -0.5, -0.5, 0, -1, 0, 1, 0),
		v(0.5, -0.5, 0.5, 0, -1, 0, 1, 1), v(-0.5, -0.5, 0.5, 0, -1, 0, 0, 1),
	}
}

func cubeIndices() []uint32 {
	indices := make([]uint32, 0, 36)
	for face := uint32(0); face < 6; face++ {
		base := face * 4
		indices = append(indices, base, base+1, base+2, base+2, base+3, base)
	}
	return indices
}
