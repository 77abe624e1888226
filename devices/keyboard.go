package devices

import "fmt"

// KeyCode is a logical keyboard key.
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
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
	KeyEscape
	KeyF1
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
	KeyInsert
	KeyHome
	KeyDelete
	KeyEnd
	KeyPageDown
	KeyPageUp
	KeyLeft
	KeyUp
	KeyRight
	KeyDown
	KeyBack
	KeyReturn
	KeySpace
	KeyTab
	KeyCapsLock
	KeyMinus
	KeyEqual
	KeyBracketLeft
	KeyBracketRight
	KeyBackslash
	KeySemicolon
	KeyQuote
	KeyGrave
	KeyComma
	KeyPeriod
	KeySlash
	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9
	KeyNumpadEnter
	KeyLAlt
	KeyRAlt
	KeyLControl
	KeyRControl
	KeyLShift
	KeyRShift
	KeyLWin
	KeyRWin
	keyCodeCount
)

var keyCodeNames = [keyCodeCount]string{
	"Unknown",
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	"Escape",
	"F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10", "F11", "F12",
	"Insert", "Home", "Delete", "End", "PageDown", "PageUp",
	"Left", "Up", "Right", "Down",
	"Back", "Return", "Space", "Tab", "CapsLock",
	"Minus", "Equal", "BracketLeft", "BracketRight", "Backslash",
	"Semicolon", "Quote", "Grave", "Comma", "Period", "Slash",
	"Numpad0", "Numpad1", "Numpad2", "Numpad3", "Numpad4",
	"Numpad5", "Numpad6", "Numpad7", "Numpad8", "Numpad9", "NumpadEnter",
	"LAlt", "RAlt", "LControl", "RControl", "LShift", "RShift", "LWin", "RWin",
}

func (k KeyCode) String() string {
	if k < 0 || k >= keyCodeCount {
		return fmt.Sprintf("KeyCode(%d)", int(k))
	}
	return keyCodeNames[k]
}

// ScanCode identifies a physical key location, independent of the active layout.
type ScanCode uint32

func (s ScanCode) String() string {
	return fmt.Sprintf("ScanCode(%#x)", uint32(s))
}

// KeyboardInput is sent whenever a key changes state.
type KeyboardInput struct {
	ScanCode ScanCode
	KeyCode  KeyCode
	State    ButtonState
}

// ButtonState is the new state carried by button change events.
type ButtonState int

const (
	Released ButtonState = iota
	Pressed
)

func (s ButtonState) String() string {
	if s == Pressed {
		return "Pressed"
	}
	return "Released"
}
