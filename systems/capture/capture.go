// Package capture copies ebiten's device state into the world's device
// containers once per tick.
package capture

import (
	"github.com/Beewitchy/leafwing-input-manager/config"
	"github.com/Beewitchy/leafwing-input-manager/devices"
	"github.com/Beewitchy/leafwing-input-manager/streams"
	"github.com/Beewitchy/leafwing-input-manager/systems"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/kataras/golog"
	"github.com/yohamta/donburi/ecs"
)

var logger = golog.Child("[capture]")

// Reusable slices to avoid allocations
var (
	keys       []ebiten.Key
	gamepadIDs []ebiten.GamepadID
)

var (
	lastCursor    mgl32.Vec2
	hasLastCursor bool
)

// UpdateDevices ends the previous tick on the device containers and feeds
// in this tick's ebiten input. Must run BEFORE UpdateBindings.
func UpdateDevices(e *ecs.ECS) {
	d := systems.GetOrCreateDevices(e.World)
	d.Update()

	captureKeyboard(d)
	captureMouse(d)
	captureGamepads(d)
}

func captureKeyboard(d *streams.MutableInputStreams) {
	keys = inpututil.AppendJustPressedKeys(keys[:0])
	for _, k := range keys {
		ev := devices.KeyboardInput{ScanCode: devices.ScanCode(k), State: devices.Pressed}
		d.ScanCodes.Press(ev.ScanCode)
		if code, ok := keyCodes[k]; ok {
			ev.KeyCode = code
			d.KeyCodes.Press(code)
		}
		d.KeyboardEvents.Send(ev)
	}

	keys = inpututil.AppendJustReleasedKeys(keys[:0])
	for _, k := range keys {
		ev := devices.KeyboardInput{ScanCode: devices.ScanCode(k), State: devices.Released}
		d.ScanCodes.Release(ev.ScanCode)
		if code, ok := keyCodes[k]; ok {
			ev.KeyCode = code
			d.KeyCodes.Release(code)
		}
		d.KeyboardEvents.Send(ev)
	}
}

func captureMouse(d *streams.MutableInputStreams) {
	for eb, button := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(eb) {
			d.MouseButtons.Press(button)
			d.MouseButtonEvents.Send(devices.MouseButtonInput{Button: button, State: devices.Pressed})
		}
		if inpututil.IsMouseButtonJustReleased(eb) {
			d.MouseButtons.Release(button)
			d.MouseButtonEvents.Send(devices.MouseButtonInput{Button: button, State: devices.Released})
		}
	}

	// ebiten reports the wheel in lines
	if x, y := ebiten.Wheel(); x != 0 || y != 0 {
		d.MouseWheel.Send(devices.MouseWheel{X: float32(x), Y: float32(y), Unit: devices.ScrollLine})
	}

	cx, cy := ebiten.CursorPosition()
	cursor := mgl32.Vec2{float32(cx), float32(cy)}
	if hasLastCursor && cursor != lastCursor {
		delta := cursor.Sub(lastCursor)
		// Screen y grows downwards.
		d.MouseMotion.Send(devices.MouseMotion{Delta: mgl32.Vec2{delta.X(), -delta.Y()}})
	}
	lastCursor, hasLastCursor = cursor, true
}

func captureGamepads(d *streams.MutableInputStreams) {
	gamepadIDs = inpututil.AppendJustConnectedGamepadIDs(gamepadIDs[:0])
	for _, id := range gamepadIDs {
		gamepad := devices.Gamepad(id)
		d.Gamepads.Register(gamepad)
		d.GamepadEvents.Send(devices.GamepadEvent{Gamepad: gamepad, Type: devices.GamepadConnected})
		if config.Debug.LogDevices {
			logger.Infof("gamepad %d connected: %s", id, ebiten.GamepadName(id))
		}
	}

	for _, gamepad := range d.Gamepads.All() {
		id := ebiten.GamepadID(gamepad)
		if inpututil.IsGamepadJustDisconnected(id) {
			disconnectGamepad(d, gamepad)
			continue
		}
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		captureGamepad(d, id)
	}
}

func captureGamepad(d *streams.MutableInputStreams, id ebiten.GamepadID) {
	gamepad := devices.Gamepad(id)

	for eb, buttonType := range gamepadButtons {
		button := devices.GamepadButton{Gamepad: gamepad, ButtonType: buttonType}
		pressed := ebiten.IsStandardGamepadButtonPressed(id, eb)
		if pressed == d.GamepadButtons.Pressed(button) {
			continue
		}
		var value float32
		if pressed {
			d.GamepadButtons.Press(button)
			value = 1
		} else {
			d.GamepadButtons.Release(button)
		}
		d.GamepadEvents.Send(devices.GamepadEvent{
			Gamepad: gamepad,
			Type:    devices.GamepadButtonChanged,
			Button:  buttonType,
			Value:   value,
		})
	}

	for _, eb := range analogButtons {
		button := devices.GamepadButton{Gamepad: gamepad, ButtonType: gamepadButtons[eb]}
		d.GamepadButtonAxes.Set(button, float32(ebiten.StandardGamepadButtonValue(id, eb)))
	}

	for _, a := range gamepadAxes {
		value := float32(ebiten.StandardGamepadAxisValue(id, a.axis))
		if a.flip {
			value = -value
		}
		key := devices.GamepadAxis{Gamepad: gamepad, AxisType: a.target}
		if previous, ok := d.GamepadAxes.Set(key, value); ok && previous == value {
			continue
		}
		d.GamepadEvents.Send(devices.GamepadEvent{
			Gamepad: gamepad,
			Type:    devices.GamepadAxisChanged,
			Axis:    a.target,
			Value:   value,
		})
	}
}

// disconnectGamepad forgets every reading of gamepad.
func disconnectGamepad(d *streams.MutableInputStreams, gamepad devices.Gamepad) {
	d.Gamepads.Deregister(gamepad)
	for _, buttonType := range gamepadButtons {
		button := devices.GamepadButton{Gamepad: gamepad, ButtonType: buttonType}
		d.GamepadButtons.Release(button)
		d.GamepadButtonAxes.Remove(button)
	}
	for _, a := range gamepadAxes {
		d.GamepadAxes.Remove(devices.GamepadAxis{Gamepad: gamepad, AxisType: a.target})
	}
	d.GamepadEvents.Send(devices.GamepadEvent{Gamepad: gamepad, Type: devices.GamepadDisconnected})
	if config.Debug.LogDevices {
		logger.Infof("gamepad %d disconnected", gamepad)
	}
}
