package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/mwrona/glimmer/input"
)

func TestConvertQuit(t *testing.T) {
	got := convertEvent(&sdl.QuitEvent{Type: sdl.QUIT})
	assert.Equal(t, input.QuitEvent{}, got)
}

func TestConvertKeyEvents(t *testing.T) {
	down := convertEvent(&sdl.KeyboardEvent{
		Type:   sdl.KEYDOWN,
		Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_W},
	})
	assert.Equal(t, input.KeyEvent{Key: input.KeyW, Down: true}, down)

	up := convertEvent(&sdl.KeyboardEvent{
		Type:   sdl.KEYUP,
		Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_W},
	})
	assert.Equal(t, input.KeyEvent{Key: input.KeyW, Down: false}, up)
}

func TestConvertDropsKeyRepeats(t *testing.T) {
	got := convertEvent(&sdl.KeyboardEvent{
		Type:   sdl.KEYDOWN,
		Repeat: 1,
		Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_W},
	})
	assert.Nil(t, got)
}

func TestConvertMouseButtons(t *testing.T) {
	down := convertEvent(&sdl.MouseButtonEvent{
		Type:   sdl.MOUSEBUTTONDOWN,
		Button: sdl.BUTTON_LEFT,
	})
	assert.Equal(t, input.ButtonEvent{Button: input.ButtonLeft, Down: true}, down)

	up := convertEvent(&sdl.MouseButtonEvent{
		Type:   sdl.MOUSEBUTTONUP,
		Button: sdl.BUTTON_RIGHT,
	})
	assert.Equal(t, input.ButtonEvent{Button: input.ButtonRight, Down: false}, up)
}

func TestConvertMotion(t *testing.T) {
	got := convertEvent(&sdl.MouseMotionEvent{X: 10, Y: 20, XRel: -3, YRel: 4})
	assert.Equal(t, input.MotionEvent{X: 10, Y: 20, RelX: -3, RelY: 4}, got)
}

func TestConvertWheel(t *testing.T) {
	got := convertEvent(&sdl.MouseWheelEvent{Y: -1})
	assert.Equal(t, input.WheelEvent{Y: -1}, got)
}

func TestConvertResize(t *testing.T) {
	got := convertEvent(&sdl.WindowEvent{
		Event: sdl.WINDOWEVENT_RESIZED,
		Data1: 800,
		Data2: 600,
	})
	assert.Equal(t, input.ResizeEvent{Width: 800, Height: 600}, got)
}

func TestConvertIgnoresUnrelatedWindowEvents(t *testing.T) {
	got := convertEvent(&sdl.WindowEvent{Event: sdl.WINDOWEVENT_FOCUS_GAINED})
	assert.Nil(t, got)
}

func TestKeyConstantsMatchScancodes(t *testing.T) {
	// input.Key values follow the USB HID usage table, same as SDL scancodes
	assert.EqualValues(t, sdl.SCANCODE_A, input.KeyA)
	assert.EqualValues(t, sdl.SCANCODE_Z, input.KeyZ)
	assert.EqualValues(t, sdl.SCANCODE_1, input.Key1)
	assert.EqualValues(t, sdl.SCANCODE_0, input.Key0)
	assert.EqualValues(t, sdl.SCANCODE_RETURN, input.KeyReturn)
	assert.EqualValues(t, sdl.SCANCODE_ESCAPE, input.KeyEscape)
	assert.EqualValues(t, sdl.SCANCODE_SPACE, input.KeySpace)
	assert.EqualValues(t, sdl.SCANCODE_F1, input.KeyF1)
	assert.EqualValues(t, sdl.SCANCODE_F12, input.KeyF12)
	assert.EqualValues(t, sdl.SCANCODE_RIGHT, input.KeyRight)
	assert.EqualValues(t, sdl.SCANCODE_LEFT, input.KeyLeft)
	assert.EqualValues(t, sdl.SCANCODE_DOWN, input.KeyDown)
	assert.EqualValues(t, sdl.SCANCODE_UP, input.KeyUp)
	assert.EqualValues(t, sdl.SCANCODE_LCTRL, input.KeyLeftCtrl)
	assert.EqualValues(t, sdl.SCANCODE_RSHIFT, input.KeyRightShift)
}

func TestButtonConstantsMatchSDL(t *testing.T) {
	assert.EqualValues(t, sdl.BUTTON_LEFT, input.ButtonLeft)
	assert.EqualValues(t, sdl.BUTTON_MIDDLE, input.ButtonMiddle)
	assert.EqualValues(t, sdl.BUTTON_RIGHT, input.ButtonRight)
	assert.EqualValues(t, sdl.BUTTON_X1, input.ButtonX1)
	assert.EqualValues(t, sdl.BUTTON_X2, input.ButtonX2)
}

func TestFlagTranslation(t *testing.T) {
	bits := (Shown | Resizable).sdl()
	assert.NotZero(t, bits&sdl.WINDOW_OPENGL, "OpenGL flag always present")
	assert.NotZero(t, bits&sdl.WINDOW_SHOWN)
	assert.NotZero(t, bits&sdl.WINDOW_RESIZABLE)
	assert.Zero(t, bits&sdl.WINDOW_BORDERLESS)

	assert.EqualValues(t, sdl.WINDOW_OPENGL, Flag(0).sdl())
}

func TestDefaults(t *testing.T) {
	opts := Defaults(1280, 720, "demo")
	assert.Equal(t, "demo", opts.Title)
	assert.Equal(t, 4, opts.GLMajor)
	assert.Equal(t, 1, opts.GLMinor)
	assert.True(t, opts.VSync)
	assert.EqualValues(t, input.DefaultScrollRate, opts.ScrollRate)
	assert.NotZero(t, opts.Flags&Shown)
	assert.NotZero(t, opts.Flags&Resizable)
}
