// Package window creates an SDL2 window with an OpenGL context and drives
// the per-frame input cycle: BeginFrame drains the platform event queue into
// the input tracker, EndFrame decays the one-frame input states. All calls
// must come from the main goroutine; New locks the OS thread.
package window

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/mwrona/glimmer"
	"github.com/mwrona/glimmer/gfx"
	"github.com/mwrona/glimmer/input"
)

// Window owns the SDL window, its GL context and the input tracker.
type Window struct {
	window    *sdl.Window
	glContext sdl.GLContext
	state     *input.State
}

// New initializes SDL, creates a centered window with a core-profile GL
// context and loads the GL functions. Failures here are fatal: nothing is
// usable without a window and context, so New cleans up and returns an error.
func New(opts Options) (*Window, error) {
	runtime.LockOSThread()

	if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}

	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, opts.GLMajor)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, opts.GLMinor)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	win, err := sdl.CreateWindow(opts.Title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(opts.Width), int32(opts.Height), opts.Flags.sdl())
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("create window: %w", err)
	}

	glContext, err := win.GLCreateContext()
	if err != nil {
		win.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("create GL context: %w", err)
	}
	if err := win.GLMakeCurrent(glContext); err != nil {
		sdl.GLDeleteContext(glContext)
		win.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("make GL context current: %w", err)
	}

	if err := gl.Init(); err != nil {
		sdl.GLDeleteContext(glContext)
		win.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("load GL functions: %w", err)
	}

	if opts.VSync {
		if err := sdl.GLSetSwapInterval(1); err != nil {
			glimmer.Logger().Warn("failed to enable vsync", "err", err)
		}
	} else {
		sdl.GLSetSwapInterval(0)
	}

	// the drawable can differ from the requested size on high-DPI displays
	dw, dh := win.GLGetDrawableSize()
	gl.Viewport(0, 0, dw, dh)

	state := input.NewState(int(dw), int(dh))
	if opts.ScrollRate != 0 {
		state.SetScrollRate(opts.ScrollRate)
	}

	glimmer.Logger().Info("window created",
		"title", opts.Title,
		"width", int(dw), "height", int(dh),
		"gl", gl.GoStr(gl.GetString(gl.VERSION)),
		"vsync", opts.VSync)

	return &Window{
		window:    win,
		glContext: glContext,
		state:     state,
	}, nil
}

// BeginFrame drains all pending platform events into the input tracker and
// samples the frame clock. A resize also updates the GL viewport.
func (w *Window) BeginFrame() {
	events := drainEvents()
	w.state.BeginFrame(time.Now(), events)

	for _, ev := range events {
		if resize, ok := ev.(input.ResizeEvent); ok {
			gl.Viewport(0, 0, int32(resize.Width), int32(resize.Height))
		}
	}
}

// EndFrame decays the one-frame input states. Call it after all state
// queries and draws for the frame.
func (w *Window) EndFrame() {
	w.state.EndFrame()
}

// Input returns the input tracker for state queries.
func (w *Window) Input() *input.State { return w.state }

// IsOpen reports whether no close request has been seen.
func (w *Window) IsOpen() bool { return !w.state.Closed() }

// Close requests the window to close; the render loop observes it through
// IsOpen.
func (w *Window) Close() { w.state.Close() }

// SwapBuffers presents the back buffer. Call after all rendering is done.
func (w *Window) SwapBuffers() {
	w.window.GLSwap()
}

// Clear fills the selected framebuffer planes using the given color.
func (w *Window) Clear(mask gfx.ClearMask, r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(mask.GL())
}

// Width returns the tracked drawable width.
func (w *Window) Width() int {
	width, _ := w.state.ViewportSize()
	return width
}

// Height returns the tracked drawable height.
func (w *Window) Height() int {
	_, height := w.state.ViewportSize()
	return height
}

// Delta returns the seconds elapsed between the two most recent BeginFrame
// calls.
func (w *Window) Delta() float64 { return w.state.Delta() }

// SetRelativeMouseMode hides the cursor and reports endless relative motion,
// for mouselook-style input.
func (w *Window) SetRelativeMouseMode(enabled bool) {
	sdl.SetRelativeMouseMode(enabled)
}

// Destroy releases the GL context and the window and shuts SDL down. Safe to
// call more than once.
func (w *Window) Destroy() {
	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
		w.glContext = nil
	}
	if w.window != nil {
		w.window.Destroy()
		w.window = nil
	}
	sdl.Quit()
}
