// Package glimmer is a thin scene layer over SDL2 and OpenGL: a window with
// per-frame input state tracking, shader programs with uniform caching,
// textures decoded from image files, vertex/index buffer objects and a
// minimal renderable/scene-object pair that issues draw calls.
//
// Every operation is a direct, blocking call into the driver. The library is
// single-threaded by contract: construct the window on the main goroutine
// (runtime.LockOSThread) and drive the frame cycle from one loop:
//
//	win, err := window.New(window.Defaults(1280, 720, "demo"))
//	...
//	for win.IsOpen() {
//	    win.BeginFrame()
//	    // query input, update state, render
//	    win.SwapBuffers()
//	    win.EndFrame()
//	}
package glimmer
