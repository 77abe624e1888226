// Package streams answers pressed, value and axis pair queries for
// userinput bindings against a snapshot of device state.
//
// Build an InputStreams from the device containers once per tick, wrap it
// in a PreparedInputStreams and query it. A PreparedInputStreams sums mouse
// wheel and mouse motion events at most once, so it must not be reused
// across ticks, and it must not be shared between goroutines.
package streams

import "github.com/Beewitchy/leafwing-input-manager/devices"

// InputStreams is a read-only view over device state owned by the caller.
//
// KeyCodes, ScanCodes, MouseButtons and MouseWheel may be nil when the host
// has no such device; queries against a missing source never match. Leave
// an unavailable source as a nil interface, not a typed nil pointer.
type InputStreams struct {
	GamepadButtons    devices.Buttons[devices.GamepadButton]
	GamepadButtonAxes devices.Axes[devices.GamepadButton]
	GamepadAxes       devices.Axes[devices.GamepadAxis]
	Gamepads          devices.GamepadList

	KeyCodes     devices.Buttons[devices.KeyCode]
	ScanCodes    devices.Buttons[devices.ScanCode]
	MouseButtons devices.Buttons[devices.MouseButton]
	MouseWheel   devices.EventLog[devices.MouseWheel]
	MouseMotion  devices.EventLog[devices.MouseMotion]

	// AssociatedGamepad pins gamepad queries to one gamepad. When nil the
	// first connected gamepad is used.
	AssociatedGamepad *devices.Gamepad
}

// GuessGamepad picks the gamepad that gamepad queries read from.
func (s *InputStreams) GuessGamepad() (devices.Gamepad, bool) {
	return guessGamepad(s.AssociatedGamepad, s.Gamepads)
}

// guessGamepad returns the pinned gamepad if set, otherwise the first
// connected one.
func guessGamepad(pinned *devices.Gamepad, connected devices.GamepadList) (devices.Gamepad, bool) {
	if pinned != nil {
		return *pinned, true
	}
	if connected == nil || connected.Len() == 0 {
		return 0, false
	}
	return connected.At(0), true
}
