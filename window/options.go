package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/mwrona/glimmer/input"
)

// Flag selects window creation behavior. The OpenGL flag is always added.
type Flag uint32

const (
	Shown Flag = 1 << iota
	Hidden
	Borderless
	Resizable
	Minimized
	Maximized
)

var sdlFlags = map[Flag]uint32{
	Shown:      sdl.WINDOW_SHOWN,
	Hidden:     sdl.WINDOW_HIDDEN,
	Borderless: sdl.WINDOW_BORDERLESS,
	Resizable:  sdl.WINDOW_RESIZABLE,
	Minimized:  sdl.WINDOW_MINIMIZED,
	Maximized:  sdl.WINDOW_MAXIMIZED,
}

// sdl translates the flag set for window creation.
func (f Flag) sdl() uint32 {
	bits := uint32(sdl.WINDOW_OPENGL)
	for flag, v := range sdlFlags {
		if f&flag != 0 {
			bits |= v
		}
	}
	return bits
}

// Options configures window and context creation.
type Options struct {
	Title  string
	Width  int
	Height int

	// context version; the go-gl binding loads the 4.1 core profile
	GLMajor int
	GLMinor int

	Flags      Flag
	VSync      bool
	ScrollRate float32
}

// Defaults returns the usual interactive configuration: a shown, resizable
// window with a 4.1 core context, vsync on and the default scroll rate.
func Defaults(width, height int, title string) Options {
	return Options{
		Title:      title,
		Width:      width,
		Height:     height,
		GLMajor:    4,
		GLMinor:    1,
		Flags:      Shown | Resizable,
		VSync:      true,
		ScrollRate: input.DefaultScrollRate,
	}
}
