package userinput

import (
	"fmt"

	"github.com/Beewitchy/leafwing-input-manager/devices"
)

// RawInputs is a UserInput broken down by device.
type RawInputs struct {
	KeyCodes       []devices.KeyCode
	ScanCodes      []devices.ScanCode
	GamepadButtons []devices.GamepadButtonType
	MouseButtons   []devices.MouseButton
	MouseWheel     []MouseWheelDirection
	MouseMotion    []MouseMotionDirection
	// Dual axes contribute both of their single axes.
	Axes []SingleAxis
}

// RawInputsOf decomposes input. A Modifier contributes both of its keys.
func RawInputsOf(input UserInput) RawInputs {
	var raw RawInputs
	for _, kind := range input.Kinds() {
		raw.add(kind)
	}
	return raw
}

func (r *RawInputs) add(kind InputKind) {
	switch k := kind.(type) {
	case Keyboard:
		r.KeyCodes = append(r.KeyCodes, devices.KeyCode(k))
	case KeyLocation:
		r.ScanCodes = append(r.ScanCodes, devices.ScanCode(k))
	case Modifier:
		codes := k.KeyCodes()
		r.KeyCodes = append(r.KeyCodes, codes[0], codes[1])
	case Mouse:
		r.MouseButtons = append(r.MouseButtons, devices.MouseButton(k))
	case MouseWheelDirection:
		r.MouseWheel = append(r.MouseWheel, k)
	case MouseMotionDirection:
		r.MouseMotion = append(r.MouseMotion, k)
	case GamepadButton:
		r.GamepadButtons = append(r.GamepadButtons, devices.GamepadButtonType(k))
	case SingleAxis:
		r.Axes = append(r.Axes, k)
	case DualAxis:
		r.Axes = append(r.Axes, k.X, k.Y)
	default:
		panic(fmt.Sprintf("userinput: unhandled input kind %T", kind))
	}
}

// Len is the number of raw entries.
func (r RawInputs) Len() int {
	return len(r.KeyCodes) + len(r.ScanCodes) + len(r.GamepadButtons) +
		len(r.MouseButtons) + len(r.MouseWheel) + len(r.MouseMotion) + len(r.Axes)
}
