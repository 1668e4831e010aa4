// Package input tracks per-frame digital input state: each key and mouse
// button moves through Released → JustPressed → Down → JustReleased →
// Released, with the Just* states lasting exactly one frame. The tracker also
// accumulates pointer motion, wheel scroll distance, window size and the
// close request, all fed from neutral events so it carries no windowing
// library dependency.
package input

import "time"

// KeyState is the debounced state of one key or button. Released is the zero
// value, so codes never touched by an event read Released without seeding.
type KeyState int

const (
	Released KeyState = iota
	JustPressed
	Down
	JustReleased
)

// DefaultScrollRate scales wheel events into scroll distance per second.
const DefaultScrollRate = 550.0

// State is the per-frame input tracker. Drive it with BeginFrame / EndFrame
// around the queries; see the package comment for the state machine.
//
// BeginFrame applies pending events and samples the clock; EndFrame decays
// the one-frame states. Querying outside that window yields stale data but is
// not an error.
type State struct {
	keys    map[Key]KeyState
	buttons map[Button]KeyState

	mouseX, mouseY float32
	relX, relY     float32

	scrollDistance float32
	scrollRate     float32

	width, height int
	resized       bool
	closed        bool

	lastFrame time.Time
	delta     float64
}

// NewState returns a tracker for a drawable of the given size. The first
// frame's delta is measured against this call.
func NewState(width, height int) *State {
	return &State{
		keys:       make(map[Key]KeyState),
		buttons:    make(map[Button]KeyState),
		scrollRate: DefaultScrollRate,
		width:      width,
		height:     height,
		lastFrame:  time.Now(),
	}
}

// SetScrollRate overrides the wheel-to-distance rate.
func (s *State) SetScrollRate(rate float32) {
	s.scrollRate = rate
}

// BeginFrame samples the clock at now and applies every pending event.
// Presses and releases land as JustPressed/JustReleased, motion updates the
// absolute position and relative displacement, wheel events move the scroll
// accumulator by ±rate*delta, a quit event latches the closed flag and a
// resize updates the tracked size and raises the one-frame resized flag.
func (s *State) BeginFrame(now time.Time, events []Event) {
	s.delta = now.Sub(s.lastFrame).Seconds()
	s.lastFrame = now

	for _, ev := range events {
		switch ev := ev.(type) {
		case QuitEvent:
			s.closed = true
		case KeyEvent:
			if ev.Down {
				s.keys[ev.Key] = JustPressed
			} else {
				s.keys[ev.Key] = JustReleased
			}
		case ButtonEvent:
			if ev.Down {
				s.buttons[ev.Button] = JustPressed
			} else {
				s.buttons[ev.Button] = JustReleased
			}
		case MotionEvent:
			s.mouseX = ev.X
			s.mouseY = ev.Y
			s.relX = ev.RelX
			s.relY = ev.RelY
		case WheelEvent:
			if ev.Y > 0 {
				s.scrollDistance += s.scrollRate * float32(s.delta)
			} else if ev.Y < 0 {
				s.scrollDistance -= s.scrollRate * float32(s.delta)
			}
		case ResizeEvent:
			s.width = ev.Width
			s.height = ev.Height
			s.resized = true
		}
	}
}

// EndFrame decays the one-frame states: JustPressed becomes Down,
// JustReleased becomes Released, and the resized flag and relative
// displacement are cleared. The scroll accumulator persists.
func (s *State) EndFrame() {
	for k, st := range s.keys {
		switch st {
		case JustPressed:
			s.keys[k] = Down
		case JustReleased:
			s.keys[k] = Released
		}
	}
	for b, st := range s.buttons {
		switch st {
		case JustPressed:
			s.buttons[b] = Down
		case JustReleased:
			s.buttons[b] = Released
		}
	}

	s.resized = false
	s.relX = 0
	s.relY = 0
}

// IsJustPressed reports whether the key was pressed during this frame.
func (s *State) IsJustPressed(k Key) bool { return s.keys[k] == JustPressed }

// IsDown reports whether the key is held (past its JustPressed frame).
func (s *State) IsDown(k Key) bool { return s.keys[k] == Down }

// IsJustReleased reports whether the key was released during this frame.
func (s *State) IsJustReleased(k Key) bool { return s.keys[k] == JustReleased }

// IsReleased reports whether the key is up.
func (s *State) IsReleased(k Key) bool { return s.keys[k] == Released }

// IsButtonJustPressed reports whether the button was pressed during this frame.
func (s *State) IsButtonJustPressed(b Button) bool { return s.buttons[b] == JustPressed }

// IsButtonDown reports whether the button is held.
func (s *State) IsButtonDown(b Button) bool { return s.buttons[b] == Down }

// IsButtonJustReleased reports whether the button was released during this frame.
func (s *State) IsButtonJustReleased(b Button) bool { return s.buttons[b] == JustReleased }

// IsButtonReleased reports whether the button is up.
func (s *State) IsButtonReleased(b Button) bool { return s.buttons[b] == Released }

// MousePosition returns the pointer's absolute position.
func (s *State) MousePosition() (x, y float32) { return s.mouseX, s.mouseY }

// MouseRelative returns the pointer displacement received this frame. It
// reads zero outside the BeginFrame/EndFrame window. Only meaningful while
// relative mouse mode is enabled on the window.
func (s *State) MouseRelative() (dx, dy float32) { return s.relX, s.relY }

// ScrollDistance returns the cumulative wheel distance. It is never reset at
// frame boundaries, so it behaves as a zoom/offset value rather than a
// per-frame delta.
func (s *State) ScrollDistance() float32 { return s.scrollDistance }

// Delta returns the seconds elapsed between the two most recent BeginFrame
// calls.
func (s *State) Delta() float64 { return s.delta }

// Closed reports whether a quit event has been seen. Once true, stays true.
func (s *State) Closed() bool { return s.closed }

// Close latches the closed flag without a platform event.
func (s *State) Close() { s.closed = true }

// Resized reports whether a resize event arrived this frame.
func (s *State) Resized() bool { return s.resized }

// ViewportSize returns the tracked drawable dimensions.
func (s *State) ViewportSize() (w, h int) { return s.width, s.height }
