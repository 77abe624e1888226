package devices

import "fmt"

// Gamepad identifies a connected gamepad.
type Gamepad int

// GamepadButtonType names a button on a standard gamepad layout.
type GamepadButtonType int

const (
	GamepadSouth GamepadButtonType = iota
	GamepadEast
	GamepadNorth
	GamepadWest
	GamepadC
	GamepadZ
	GamepadLeftTrigger
	GamepadLeftTrigger2
	GamepadRightTrigger
	GamepadRightTrigger2
	GamepadSelect
	GamepadStart
	GamepadMode
	GamepadLeftThumb
	GamepadRightThumb
	GamepadDPadUp
	GamepadDPadDown
	GamepadDPadLeft
	GamepadDPadRight
	gamepadButtonTypeCount
)

var gamepadButtonNames = [gamepadButtonTypeCount]string{
	"South", "East", "North", "West", "C", "Z",
	"LeftTrigger", "LeftTrigger2", "RightTrigger", "RightTrigger2",
	"Select", "Start", "Mode", "LeftThumb", "RightThumb",
	"DPadUp", "DPadDown", "DPadLeft", "DPadRight",
}

func (b GamepadButtonType) String() string {
	if b < 0 || b >= gamepadButtonTypeCount {
		return fmt.Sprintf("GamepadButtonType(%d)", int(b))
	}
	return gamepadButtonNames[b]
}

// GamepadAxisType names an analog axis on a standard gamepad layout.
type GamepadAxisType int

const (
	GamepadLeftStickX GamepadAxisType = iota
	GamepadLeftStickY
	GamepadLeftZ
	GamepadRightStickX
	GamepadRightStickY
	GamepadRightZ
)

func (a GamepadAxisType) String() string {
	switch a {
	case GamepadLeftStickX:
		return "LeftStickX"
	case GamepadLeftStickY:
		return "LeftStickY"
	case GamepadLeftZ:
		return "LeftZ"
	case GamepadRightStickX:
		return "RightStickX"
	case GamepadRightStickY:
		return "RightStickY"
	case GamepadRightZ:
		return "RightZ"
	}
	return fmt.Sprintf("GamepadAxisType(%d)", int(a))
}

// GamepadButton keys button state by gamepad.
type GamepadButton struct {
	Gamepad    Gamepad
	ButtonType GamepadButtonType
}

// GamepadAxis keys axis state by gamepad.
type GamepadAxis struct {
	Gamepad  Gamepad
	AxisType GamepadAxisType
}

// GamepadEventType tells what a GamepadEvent reports.
type GamepadEventType int

const (
	GamepadConnected GamepadEventType = iota
	GamepadDisconnected
	GamepadButtonChanged
	GamepadAxisChanged
)

// GamepadEvent is a raw gamepad state change. Button and Axis are only
// meaningful for the matching event type.
type GamepadEvent struct {
	Gamepad Gamepad
	Type    GamepadEventType
	Button  GamepadButtonType
	Axis    GamepadAxisType
	Value   float32
}

// GamepadList is the read-only view of the connected gamepads, in
// connection order.
type GamepadList interface {
	Len() int
	At(i int) Gamepad
}

// Gamepads tracks connected gamepads in the order they were connected.
type Gamepads struct {
	connected []Gamepad
}

// Register adds a gamepad. Registering an already connected gamepad keeps
// its original position.
func (g *Gamepads) Register(gamepad Gamepad) {
	if g.Contains(gamepad) {
		return
	}
	g.connected = append(g.connected, gamepad)
}

// Deregister removes a gamepad, preserving the order of the others.
func (g *Gamepads) Deregister(gamepad Gamepad) {
	for i, c := range g.connected {
		if c == gamepad {
			g.connected = append(g.connected[:i], g.connected[i+1:]...)
			return
		}
	}
}

func (g *Gamepads) Contains(gamepad Gamepad) bool {
	for _, c := range g.connected {
		if c == gamepad {
			return true
		}
	}
	return false
}

func (g *Gamepads) Len() int {
	return len(g.connected)
}

func (g *Gamepads) At(i int) Gamepad {
	return g.connected[i]
}

// All returns a copy of the connected gamepads.
func (g *Gamepads) All() []Gamepad {
	return append([]Gamepad(nil), g.connected...)
}

// Clear forgets every gamepad.
func (g *Gamepads) Clear() {
	g.connected = g.connected[:0]
}
