package input

// Event is one digested platform input event. The window layer converts
// driver events into these before handing them to the tracker, so the state
// machine never sees driver types.
type Event interface {
	isEvent()
}

// QuitEvent reports a window close request. The closed state it sets is
// terminal.
type QuitEvent struct{}

// KeyEvent reports a key changing state. Down is true for a press, false for
// a release.
type KeyEvent struct {
	Key  Key
	Down bool
}

// ButtonEvent reports a mouse button changing state.
type ButtonEvent struct {
	Button Button
	Down   bool
}

// MotionEvent carries the pointer's absolute position and its displacement
// since the previous motion event.
type MotionEvent struct {
	X, Y float32
	RelX float32
	RelY float32
}

// WheelEvent carries the vertical wheel amount; positive scrolls away from
// the user.
type WheelEvent struct {
	Y float32
}

// ResizeEvent carries the new drawable size of the window.
type ResizeEvent struct {
	Width, Height int
}

func (QuitEvent) isEvent()   {}
func (KeyEvent) isEvent()    {}
func (ButtonEvent) isEvent() {}
func (MotionEvent) isEvent() {}
func (WheelEvent) isEvent()  {}
func (ResizeEvent) isEvent() {}
