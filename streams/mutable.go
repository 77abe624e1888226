package streams

import (
	"github.com/Beewitchy/leafwing-input-manager/devices"
	"github.com/Beewitchy/leafwing-input-manager/userinput"
	"github.com/go-gl/mathgl/mgl32"
)

// MutableInputStreams holds writable handles to every device container.
// Hosts use it to feed device state in, tests use it to inject input.
//
// Every InputStreams field has a same-named field here; the event logs used
// only for injection have no read-only counterpart.
type MutableInputStreams struct {
	GamepadButtons    *devices.ButtonInput[devices.GamepadButton]
	GamepadButtonAxes *devices.Axis[devices.GamepadButton]
	GamepadAxes       *devices.Axis[devices.GamepadAxis]
	Gamepads          *devices.Gamepads
	GamepadEvents     *devices.Events[devices.GamepadEvent]

	KeyCodes       *devices.ButtonInput[devices.KeyCode]
	ScanCodes      *devices.ButtonInput[devices.ScanCode]
	KeyboardEvents *devices.Events[devices.KeyboardInput]

	MouseButtons      *devices.ButtonInput[devices.MouseButton]
	MouseButtonEvents *devices.Events[devices.MouseButtonInput]
	MouseWheel        *devices.Events[devices.MouseWheel]
	MouseMotion       *devices.Events[devices.MouseMotion]

	AssociatedGamepad *devices.Gamepad
}

// NewMutableInputStreams allocates every device container.
func NewMutableInputStreams(gamepad *devices.Gamepad) *MutableInputStreams {
	return &MutableInputStreams{
		GamepadButtons:    devices.NewButtonInput[devices.GamepadButton](),
		GamepadButtonAxes: devices.NewAxis[devices.GamepadButton](),
		GamepadAxes:       devices.NewAxis[devices.GamepadAxis](),
		Gamepads:          &devices.Gamepads{},
		GamepadEvents:     devices.NewEvents[devices.GamepadEvent](),
		KeyCodes:          devices.NewButtonInput[devices.KeyCode](),
		ScanCodes:         devices.NewButtonInput[devices.ScanCode](),
		KeyboardEvents:    devices.NewEvents[devices.KeyboardInput](),
		MouseButtons:      devices.NewButtonInput[devices.MouseButton](),
		MouseButtonEvents: devices.NewEvents[devices.MouseButtonInput](),
		MouseWheel:        devices.NewEvents[devices.MouseWheel](),
		MouseMotion:       devices.NewEvents[devices.MouseMotion](),
		AssociatedGamepad: gamepad,
	}
}

// WithGamepad returns a view over the same containers pinned to gamepad.
func (m *MutableInputStreams) WithGamepad(gamepad *devices.Gamepad) *MutableInputStreams {
	pinned := *m
	pinned.AssociatedGamepad = gamepad
	return &pinned
}

// Streams returns the read-only view over the same containers. Every
// optional source is available. m must come from NewMutableInputStreams.
func (m *MutableInputStreams) Streams() *InputStreams {
	return &InputStreams{
		GamepadButtons:    m.GamepadButtons,
		GamepadButtonAxes: m.GamepadButtonAxes,
		GamepadAxes:       m.GamepadAxes,
		Gamepads:          m.Gamepads,
		KeyCodes:          m.KeyCodes,
		ScanCodes:         m.ScanCodes,
		MouseButtons:      m.MouseButtons,
		MouseWheel:        m.MouseWheel,
		MouseMotion:       m.MouseMotion,
		AssociatedGamepad: m.AssociatedGamepad,
	}
}

// Prepared is shorthand for Prepare(m.Streams()).
func (m *MutableInputStreams) Prepared() *PreparedInputStreams {
	return Prepare(m.Streams())
}

// GuessGamepad picks the gamepad that gamepad queries read from.
func (m *MutableInputStreams) GuessGamepad() (devices.Gamepad, bool) {
	return guessGamepad(m.AssociatedGamepad, m.Gamepads)
}

// Update ends a tick: button transitions are forgotten and every event log
// moves its checkpoint forward.
func (m *MutableInputStreams) Update() {
	m.GamepadButtons.ClearJust()
	m.KeyCodes.ClearJust()
	m.ScanCodes.ClearJust()
	m.MouseButtons.ClearJust()

	m.GamepadEvents.Update()
	m.KeyboardEvents.Update()
	m.MouseButtonEvents.Update()
	m.MouseWheel.Update()
	m.MouseMotion.Update()
}

// ResetInputs releases every button and drops every analog reading and
// stored event. Connected gamepads stay connected.
func (m *MutableInputStreams) ResetInputs() {
	m.GamepadButtons.ReleaseAll()
	m.GamepadButtonAxes.Clear()
	m.GamepadAxes.Clear()
	m.GamepadEvents.Clear()

	m.KeyCodes.ReleaseAll()
	m.ScanCodes.ReleaseAll()
	m.KeyboardEvents.Clear()

	m.MouseButtons.ReleaseAll()
	m.MouseButtonEvents.Clear()
	m.MouseWheel.Clear()
	m.MouseMotion.Clear()
}

// SendInput makes input read as pressed. Gamepad buttons go to the guessed
// gamepad and are skipped when there is none. Axes are pushed to full
// positive deflection and wheel or motion directions send a one pixel event.
func (m *MutableInputStreams) SendInput(input userinput.UserInput) {
	raw := userinput.RawInputsOf(input)

	for _, key := range raw.KeyCodes {
		m.KeyCodes.Press(key)
		m.KeyboardEvents.Send(devices.KeyboardInput{KeyCode: key, State: devices.Pressed})
	}
	for _, code := range raw.ScanCodes {
		m.ScanCodes.Press(code)
		m.KeyboardEvents.Send(devices.KeyboardInput{ScanCode: code, State: devices.Pressed})
	}
	for _, button := range raw.MouseButtons {
		m.MouseButtons.Press(button)
		m.MouseButtonEvents.Send(devices.MouseButtonInput{Button: button, State: devices.Pressed})
	}
	if gamepad, ok := m.GuessGamepad(); ok {
		for _, button := range raw.GamepadButtons {
			m.GamepadButtons.Press(devices.GamepadButton{Gamepad: gamepad, ButtonType: button})
			m.GamepadEvents.Send(devices.GamepadEvent{
				Gamepad: gamepad,
				Type:    devices.GamepadButtonChanged,
				Button:  button,
				Value:   1,
			})
		}
	}
	for _, dir := range raw.MouseWheel {
		m.MouseWheel.Send(devices.MouseWheel{
			X:    wheelDeltas[dir].X(),
			Y:    wheelDeltas[dir].Y(),
			Unit: devices.ScrollPixel,
		})
	}
	for _, dir := range raw.MouseMotion {
		m.MouseMotion.Send(devices.MouseMotion{Delta: motionDeltas[dir]})
	}
	for _, axis := range raw.Axes {
		m.SetAxisValue(axis.AxisType, devices.AxisMax)
	}
}

// ReleaseInput releases the buttons of input and drops its gamepad axis
// readings. Wheel and motion events already sent stay sent.
func (m *MutableInputStreams) ReleaseInput(input userinput.UserInput) {
	raw := userinput.RawInputsOf(input)

	for _, key := range raw.KeyCodes {
		m.KeyCodes.Release(key)
		m.KeyboardEvents.Send(devices.KeyboardInput{KeyCode: key, State: devices.Released})
	}
	for _, code := range raw.ScanCodes {
		m.ScanCodes.Release(code)
		m.KeyboardEvents.Send(devices.KeyboardInput{ScanCode: code, State: devices.Released})
	}
	for _, button := range raw.MouseButtons {
		m.MouseButtons.Release(button)
		m.MouseButtonEvents.Send(devices.MouseButtonInput{Button: button, State: devices.Released})
	}
	gamepad, ok := m.GuessGamepad()
	if !ok {
		return
	}
	for _, button := range raw.GamepadButtons {
		m.GamepadButtons.Release(devices.GamepadButton{Gamepad: gamepad, ButtonType: button})
		m.GamepadEvents.Send(devices.GamepadEvent{
			Gamepad: gamepad,
			Type:    devices.GamepadButtonChanged,
			Button:  button,
		})
	}
	for _, axis := range raw.Axes {
		if t, ok := axis.AxisType.(userinput.GamepadAxis); ok {
			m.GamepadAxes.Remove(devices.GamepadAxis{Gamepad: gamepad, AxisType: devices.GamepadAxisType(t)})
		}
	}
}

// SetAxisValue feeds one analog reading. Gamepad axes are stored for the
// guessed gamepad; wheel and motion axes send a pixel event of that size.
func (m *MutableInputStreams) SetAxisValue(axisType userinput.AxisType, value float32) {
	switch t := axisType.(type) {
	case userinput.GamepadAxis:
		gamepad, ok := m.GuessGamepad()
		if !ok {
			return
		}
		m.GamepadAxes.Set(devices.GamepadAxis{Gamepad: gamepad, AxisType: devices.GamepadAxisType(t)}, value)
		m.GamepadEvents.Send(devices.GamepadEvent{
			Gamepad: gamepad,
			Type:    devices.GamepadAxisChanged,
			Axis:    devices.GamepadAxisType(t),
			Value:   value,
		})
	case userinput.MouseWheelAxis:
		ev := devices.MouseWheel{Unit: devices.ScrollPixel}
		if t == userinput.MouseWheelAxisY {
			ev.Y = value
		} else {
			ev.X = value
		}
		m.MouseWheel.Send(ev)
	case userinput.MouseMotionAxis:
		var delta mgl32.Vec2
		if t == userinput.MouseMotionAxisY {
			delta[1] = value
		} else {
			delta[0] = value
		}
		m.MouseMotion.Send(devices.MouseMotion{Delta: delta})
	}
}

var wheelDeltas = map[userinput.MouseWheelDirection]mgl32.Vec2{
	userinput.MouseWheelUp:    {0, 1},
	userinput.MouseWheelDown:  {0, -1},
	userinput.MouseWheelLeft:  {-1, 0},
	userinput.MouseWheelRight: {1, 0},
}

var motionDeltas = map[userinput.MouseMotionDirection]mgl32.Vec2{
	userinput.MouseMotionUp:    {0, 1},
	userinput.MouseMotionDown:  {0, -1},
	userinput.MouseMotionLeft:  {-1, 0},
	userinput.MouseMotionRight: {1, 0},
}
