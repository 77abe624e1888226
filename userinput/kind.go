// Package userinput describes device independent inputs: single buttons and
// axes, chords, virtual d-pads and virtual axes. Values are small comparable
// descriptors and never hold device state.
package userinput

import (
	"fmt"

	"github.com/Beewitchy/leafwing-input-manager/devices"
)

// InputKind is one atomic input. It is implemented only by the types in this
// package: Keyboard, KeyLocation, Modifier, Mouse, MouseWheelDirection,
// MouseMotionDirection, GamepadButton, SingleAxis and DualAxis.
type InputKind interface {
	fmt.Stringer
	isInputKind()
}

// Keyboard is a logical key.
type Keyboard devices.KeyCode

// KeyLocation is a physical key, regardless of keyboard layout.
type KeyLocation devices.ScanCode

// Mouse is a mouse button.
type Mouse devices.MouseButton

// GamepadButton is a button of whichever gamepad a query resolves to.
type GamepadButton devices.GamepadButtonType

// Modifier matches either the left or the right variant of a modifier key.
type Modifier int

const (
	Alt Modifier = iota
	Control
	Shift
	Win
)

// KeyCodes returns the left and right keys of the modifier.
func (m Modifier) KeyCodes() [2]devices.KeyCode {
	switch m {
	case Alt:
		return [2]devices.KeyCode{devices.KeyLAlt, devices.KeyRAlt}
	case Control:
		return [2]devices.KeyCode{devices.KeyLControl, devices.KeyRControl}
	case Shift:
		return [2]devices.KeyCode{devices.KeyLShift, devices.KeyRShift}
	case Win:
		return [2]devices.KeyCode{devices.KeyLWin, devices.KeyRWin}
	}
	panic(fmt.Sprintf("userinput: unknown modifier %d", int(m)))
}

// MouseWheelDirection is scrolling in one direction during a tick.
type MouseWheelDirection int

const (
	MouseWheelUp MouseWheelDirection = iota
	MouseWheelDown
	MouseWheelLeft
	MouseWheelRight
)

// MouseMotionDirection is cursor movement in one direction during a tick.
type MouseMotionDirection int

const (
	MouseMotionUp MouseMotionDirection = iota
	MouseMotionDown
	MouseMotionLeft
	MouseMotionRight
)

func (Keyboard) isInputKind()             {}
func (KeyLocation) isInputKind()          {}
func (Mouse) isInputKind()                {}
func (GamepadButton) isInputKind()        {}
func (Modifier) isInputKind()             {}
func (MouseWheelDirection) isInputKind()  {}
func (MouseMotionDirection) isInputKind() {}
func (SingleAxis) isInputKind()           {}
func (DualAxis) isInputKind()             {}

func (k Keyboard) String() string {
	return "Keyboard(" + devices.KeyCode(k).String() + ")"
}

func (k KeyLocation) String() string {
	return "KeyLocation(" + devices.ScanCode(k).String() + ")"
}

func (m Mouse) String() string {
	return "Mouse(" + devices.MouseButton(m).String() + ")"
}

func (b GamepadButton) String() string {
	return "GamepadButton(" + devices.GamepadButtonType(b).String() + ")"
}

func (m Modifier) String() string {
	switch m {
	case Alt:
		return "Modifier(Alt)"
	case Control:
		return "Modifier(Control)"
	case Shift:
		return "Modifier(Shift)"
	case Win:
		return "Modifier(Win)"
	}
	return fmt.Sprintf("Modifier(%d)", int(m))
}

var directionNames = [...]string{"Up", "Down", "Left", "Right"}

func directionName(d int) string {
	if d < 0 || d >= len(directionNames) {
		return fmt.Sprint(d)
	}
	return directionNames[d]
}

func (d MouseWheelDirection) String() string {
	return "MouseWheel(" + directionName(int(d)) + ")"
}

func (d MouseMotionDirection) String() string {
	return "MouseMotion(" + directionName(int(d)) + ")"
}
