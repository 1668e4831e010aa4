package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// step advances the tracker by dt with the given events and leaves it inside
// the query window (after BeginFrame, before EndFrame).
func step(s *State, dt time.Duration, events ...Event) {
	s.BeginFrame(s.lastFrame.Add(dt), events)
}

func TestUntouchedCodesReadReleased(t *testing.T) {
	s := NewState(640, 480)
	step(s, 16*time.Millisecond)

	assert.True(t, s.IsReleased(KeyW))
	assert.False(t, s.IsDown(KeyW))
	assert.False(t, s.IsJustPressed(KeyW))
	assert.False(t, s.IsJustReleased(KeyW))

	assert.True(t, s.IsButtonReleased(ButtonLeft))
	assert.False(t, s.IsButtonDown(ButtonLeft))
}

func TestJustPressedDecaysToDownAfterOneFrame(t *testing.T) {
	s := NewState(640, 480)

	step(s, 16*time.Millisecond, KeyEvent{Key: KeySpace, Down: true})
	assert.True(t, s.IsJustPressed(KeySpace))
	assert.False(t, s.IsDown(KeySpace))

	s.EndFrame()
	assert.True(t, s.IsDown(KeySpace))
	assert.False(t, s.IsJustPressed(KeySpace))

	// stays Down across further frames until a release event arrives
	for i := 0; i < 3; i++ {
		step(s, 16*time.Millisecond)
		s.EndFrame()
		assert.True(t, s.IsDown(KeySpace), "frame %d", i)
	}

	step(s, 16*time.Millisecond, KeyEvent{Key: KeySpace, Down: false})
	assert.True(t, s.IsJustReleased(KeySpace))
	s.EndFrame()
	assert.True(t, s.IsReleased(KeySpace))
}

func TestJustReleasedDecaysToReleased(t *testing.T) {
	s := NewState(640, 480)
	step(s, time.Millisecond, ButtonEvent{Button: ButtonRight, Down: true})
	s.EndFrame()
	assert.True(t, s.IsButtonDown(ButtonRight))

	step(s, time.Millisecond, ButtonEvent{Button: ButtonRight, Down: false})
	assert.True(t, s.IsButtonJustReleased(ButtonRight))
	s.EndFrame()
	assert.True(t, s.IsButtonReleased(ButtonRight))
	assert.False(t, s.IsButtonJustReleased(ButtonRight))
}

func TestRelativeMotionClearedByEndFrame(t *testing.T) {
	s := NewState(640, 480)
	step(s, time.Millisecond, MotionEvent{X: 100, Y: 50, RelX: 3, RelY: -2})

	x, y := s.MousePosition()
	assert.Equal(t, float32(100), x)
	assert.Equal(t, float32(50), y)
	dx, dy := s.MouseRelative()
	assert.Equal(t, float32(3), dx)
	assert.Equal(t, float32(-2), dy)

	s.EndFrame()
	dx, dy = s.MouseRelative()
	assert.Zero(t, dx)
	assert.Zero(t, dy)
	// absolute position persists
	x, y = s.MousePosition()
	assert.Equal(t, float32(100), x)
	assert.Equal(t, float32(50), y)
}

func TestScrollAccumulator(t *testing.T) {
	s := NewState(640, 480)
	// elapsed 0.1s at rate 550: one event moves the accumulator by ±55
	step(s, 100*time.Millisecond, WheelEvent{Y: -1})
	assert.InDelta(t, -55.0, s.ScrollDistance(), 1e-3)

	s.EndFrame() // never resets the accumulator
	assert.InDelta(t, -55.0, s.ScrollDistance(), 1e-3)

	step(s, 100*time.Millisecond, WheelEvent{Y: 1})
	assert.InDelta(t, 0.0, s.ScrollDistance(), 1e-3)
	s.EndFrame()

	// zero-magnitude wheel events leave the accumulator alone
	step(s, 100*time.Millisecond, WheelEvent{Y: 0})
	assert.InDelta(t, 0.0, s.ScrollDistance(), 1e-3)
}

func TestScrollRateOverride(t *testing.T) {
	s := NewState(640, 480)
	s.SetScrollRate(100)
	step(s, 100*time.Millisecond, WheelEvent{Y: 1})
	assert.InDelta(t, 10.0, s.ScrollDistance(), 1e-3)
}

func TestClosedIsTerminal(t *testing.T) {
	s := NewState(640, 480)
	assert.False(t, s.Closed())

	step(s, time.Millisecond, QuitEvent{})
	assert.True(t, s.Closed())

	s.EndFrame()
	step(s, time.Millisecond)
	s.EndFrame()
	assert.True(t, s.Closed())
}

func TestResizeFlagLastsOneFrame(t *testing.T) {
	s := NewState(640, 480)
	step(s, time.Millisecond, ResizeEvent{Width: 800, Height: 600})
	assert.True(t, s.Resized())
	w, h := s.ViewportSize()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)

	s.EndFrame()
	assert.False(t, s.Resized())
	// dimensions persist past the flag
	w, h = s.ViewportSize()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
}

func TestDeltaBetweenFrames(t *testing.T) {
	s := NewState(640, 480)
	step(s, 250*time.Millisecond)
	assert.InDelta(t, 0.25, s.Delta(), 1e-9)

	step(s, 50*time.Millisecond)
	assert.InDelta(t, 0.05, s.Delta(), 1e-9)
}

func TestFirstFrameDeltaMeasuredFromConstruction(t *testing.T) {
	s := NewState(640, 480)
	start := s.lastFrame
	s.BeginFrame(start.Add(120*time.Millisecond), nil)
	assert.InDelta(t, 0.12, s.Delta(), 1e-9)
}

func TestRepressWithinSameFrameWindow(t *testing.T) {
	// a release and re-press arriving in one drain leaves the key JustPressed
	s := NewState(640, 480)
	step(s, time.Millisecond, KeyEvent{Key: KeyA, Down: true})
	s.EndFrame()

	step(s, time.Millisecond,
		KeyEvent{Key: KeyA, Down: false},
		KeyEvent{Key: KeyA, Down: true},
	)
	assert.True(t, s.IsJustPressed(KeyA))
	s.EndFrame()
	assert.True(t, s.IsDown(KeyA))
}

func TestManualClose(t *testing.T) {
	s := NewState(640, 480)
	s.Close()
	assert.True(t, s.Closed())
}
