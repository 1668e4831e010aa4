package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/mwrona/glimmer/input"
)

// drainEvents empties the SDL event queue, translating everything the
// tracker understands.
func drainEvents() []input.Event {
	var events []input.Event
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if converted := convertEvent(ev); converted != nil {
			events = append(events, converted)
		}
	}
	return events
}

// convertEvent translates one SDL event into the tracker's neutral form.
// Events the tracker has no use for yield nil. Key repeat events are dropped
// so a held key stays Down instead of bouncing back to JustPressed.
func convertEvent(ev sdl.Event) input.Event {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return input.QuitEvent{}

	case *sdl.KeyboardEvent:
		if ev.Repeat != 0 {
			return nil
		}
		switch ev.Type {
		case sdl.KEYDOWN:
			return input.KeyEvent{Key: input.Key(ev.Keysym.Scancode), Down: true}
		case sdl.KEYUP:
			return input.KeyEvent{Key: input.Key(ev.Keysym.Scancode), Down: false}
		}

	case *sdl.MouseButtonEvent:
		switch ev.Type {
		case sdl.MOUSEBUTTONDOWN:
			return input.ButtonEvent{Button: input.Button(ev.Button), Down: true}
		case sdl.MOUSEBUTTONUP:
			return input.ButtonEvent{Button: input.Button(ev.Button), Down: false}
		}

	case *sdl.MouseMotionEvent:
		return input.MotionEvent{
			X:    float32(ev.X),
			Y:    float32(ev.Y),
			RelX: float32(ev.XRel),
			RelY: float32(ev.YRel),
		}

	case *sdl.MouseWheelEvent:
		return input.WheelEvent{Y: float32(ev.Y)}

	case *sdl.WindowEvent:
		if ev.Event == sdl.WINDOWEVENT_RESIZED {
			return input.ResizeEvent{Width: int(ev.Data1), Height: int(ev.Data2)}
		}
	}

	return nil
}
