package input

// Key identifies a physical keyboard key. Values follow the USB HID usage
// table, which is also what SDL scancodes use, so the window layer converts
// by value.
type Key int

const (
	KeyA Key = 4 + iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
)

const (
	Key1 Key = 30 + iota
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0
	KeyReturn
	KeyEscape
	KeyBackspace
	KeyTab
	KeySpace
)

const (
	KeyF1 Key = 58 + iota
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

const (
	KeyRight Key = 79 + iota
	KeyLeft
	KeyDown
	KeyUp
)

const (
	KeyLeftCtrl Key = 224 + iota
	KeyLeftShift
	KeyLeftAlt
	KeyLeftGUI
	KeyRightCtrl
	KeyRightShift
	KeyRightAlt
)

// Button identifies a mouse button. Values follow SDL's button numbering.
type Button uint8

const (
	ButtonLeft Button = 1 + iota
	ButtonMiddle
	ButtonRight
	ButtonX1
	ButtonX2
)
