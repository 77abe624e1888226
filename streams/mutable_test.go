package streams

import (
	"reflect"
	"testing"

	"github.com/Beewitchy/leafwing-input-manager/devices"
	"github.com/Beewitchy/leafwing-input-manager/userinput"
	"github.com/go-gl/mathgl/mgl32"
)

func TestStreamsFieldsMatchMutable(t *testing.T) {
	view := reflect.TypeOf(InputStreams{})
	mutable := reflect.TypeOf(MutableInputStreams{})
	for i := 0; i < view.NumField(); i++ {
		field := view.Field(i)
		m, ok := mutable.FieldByName(field.Name)
		if !ok {
			t.Errorf("MutableInputStreams has no field %s", field.Name)
			continue
		}
		if field.Type.Kind() == reflect.Interface {
			if !m.Type.Implements(field.Type) {
				t.Errorf("%s: %v does not implement %v", field.Name, m.Type, field.Type)
			}
		} else if m.Type != field.Type {
			t.Errorf("%s: type %v, want %v", field.Name, m.Type, field.Type)
		}
	}

	s := reflect.ValueOf(*NewMutableInputStreams(nil).Streams())
	for i := 0; i < s.NumField(); i++ {
		if view.Field(i).Name == "AssociatedGamepad" {
			continue
		}
		if s.Field(i).IsNil() {
			t.Errorf("Streams() left %s unset", view.Field(i).Name)
		}
	}
}

func TestSendAndReleaseInput(t *testing.T) {
	m := NewMutableInputStreams(nil)
	m.Gamepads.Register(2)
	chord, err := userinput.NewChord(
		userinput.Alt,
		userinput.KeyLocation(57),
		userinput.Mouse(devices.MouseButtonBack),
		userinput.GamepadButton(devices.GamepadEast),
	)
	if err != nil {
		t.Fatal(err)
	}

	m.SendInput(chord)
	if !m.Prepared().Pressed(chord) {
		t.Fatalf("sent chord should read as pressed")
	}
	if !m.KeyCodes.Pressed(devices.KeyLAlt) || !m.KeyCodes.Pressed(devices.KeyRAlt) {
		t.Errorf("a modifier should press both keys")
	}
	if !m.GamepadButtons.Pressed(devices.GamepadButton{Gamepad: 2, ButtonType: devices.GamepadEast}) {
		t.Errorf("gamepad buttons should go to the guessed gamepad")
	}
	if events, _ := m.KeyboardEvents.Since(0); len(events) != 3 {
		t.Errorf("got %d keyboard events, want 3", len(events))
	}

	m.ReleaseInput(chord)
	if m.Prepared().AnyPressed(
		userinput.From(userinput.Alt),
		userinput.From(userinput.KeyLocation(57)),
		userinput.From(userinput.Mouse(devices.MouseButtonBack)),
		userinput.From(userinput.GamepadButton(devices.GamepadEast)),
	) {
		t.Errorf("released chord members still read as pressed")
	}
	if !m.MouseButtons.JustReleased(devices.MouseButtonBack) {
		t.Errorf("release should be visible as a transition")
	}
}

func TestSendInputWithoutGamepad(t *testing.T) {
	m := NewMutableInputStreams(nil)
	m.SendInput(userinput.GamepadFaceButtons())
	if len(m.GamepadButtons.GetPressed()) != 0 {
		t.Errorf("gamepad buttons pressed with no gamepad")
	}
	if events, _ := m.GamepadEvents.Since(0); len(events) != 0 {
		t.Errorf("gamepad events sent with no gamepad")
	}
}

func TestSendInputMouseDirections(t *testing.T) {
	m := NewMutableInputStreams(nil)
	m.SendInput(userinput.From(userinput.MouseWheelLeft))
	m.SendInput(userinput.From(userinput.MouseMotionUp))

	p := m.Prepared()
	if !p.Pressed(userinput.From(userinput.MouseWheelLeft)) {
		t.Errorf("sent wheel direction should read as pressed")
	}
	if !p.Pressed(userinput.From(userinput.MouseMotionUp)) {
		t.Errorf("sent motion direction should read as pressed")
	}
	if p.Pressed(userinput.From(userinput.MouseWheelRight)) || p.Pressed(userinput.From(userinput.MouseMotionDown)) {
		t.Errorf("opposite directions should not be pressed")
	}
}

func TestSendInputAxes(t *testing.T) {
	m := NewMutableInputStreams(nil)
	m.Gamepads.Register(0)
	stick := userinput.From(userinput.LeftStick())

	m.SendInput(stick)
	pair, ok := m.Prepared().AxisPair(stick)
	if !ok || pair.XY() != (mgl32.Vec2{1, 1}) {
		t.Errorf("AxisPair() = %v, %v, want (1, 1)", pair, ok)
	}

	m.ReleaseInput(stick)
	if pair, _ := m.Prepared().AxisPair(stick); pair.XY() != (mgl32.Vec2{}) {
		t.Errorf("released stick reads %v", pair)
	}
}

func TestSetAxisValue(t *testing.T) {
	m := NewMutableInputStreams(nil)

	m.SetAxisValue(userinput.GamepadAxis(devices.GamepadLeftZ), 0.5)
	if m.GamepadEvents.Len() != 0 {
		t.Errorf("gamepad axis set with no gamepad")
	}

	m.Gamepads.Register(0)
	m.SetAxisValue(userinput.GamepadAxis(devices.GamepadLeftZ), 2)
	if v, _ := m.GamepadAxes.Get(devices.GamepadAxis{Gamepad: 0, AxisType: devices.GamepadLeftZ}); v != 1 {
		t.Errorf("gamepad axis = %v, want clamped 1", v)
	}

	m.SetAxisValue(userinput.MouseWheelAxisX, -3)
	m.SetAxisValue(userinput.MouseMotionAxisY, 4)
	p := m.Prepared()
	if got := p.MouseWheelMovement(); got != (mgl32.Vec2{-3, 0}) {
		t.Errorf("MouseWheelMovement() = %v", got)
	}
	if got := p.MouseMotionMovement(); got != (mgl32.Vec2{0, 4}) {
		t.Errorf("MouseMotionMovement() = %v", got)
	}
}

func TestResetInputsKeepsGamepads(t *testing.T) {
	m := NewMutableInputStreams(nil)
	m.Gamepads.Register(0)
	m.SendInput(userinput.From(userinput.GamepadButton(devices.GamepadNorth)))
	m.SendInput(userinput.From(userinput.Keyboard(devices.KeyQ)))
	m.SendInput(userinput.From(userinput.MouseMotionRight))
	m.SetAxisValue(userinput.GamepadAxis(devices.GamepadRightStickX), 0.7)

	m.ResetInputs()

	if len(m.KeyCodes.GetPressed()) != 0 || len(m.GamepadButtons.GetPressed()) != 0 {
		t.Errorf("buttons still pressed after reset")
	}
	if _, ok := m.GamepadAxes.Get(devices.GamepadAxis{Gamepad: 0, AxisType: devices.GamepadRightStickX}); ok {
		t.Errorf("axis reading kept after reset")
	}
	if got := m.Prepared().MouseMotionMovement(); got != (mgl32.Vec2{}) {
		t.Errorf("motion %v after reset", got)
	}
	if m.Gamepads.Len() != 1 {
		t.Errorf("reset disconnected the gamepad")
	}
}

func TestUpdateEndsTick(t *testing.T) {
	m := NewMutableInputStreams(nil)
	m.SendInput(userinput.From(userinput.Keyboard(devices.KeyE)))
	m.SendInput(userinput.From(userinput.MouseWheelUp))
	if !m.KeyCodes.JustPressed(devices.KeyE) {
		t.Fatalf("press should be a transition")
	}

	m.Update()

	if m.KeyCodes.JustPressed(devices.KeyE) || !m.KeyCodes.Pressed(devices.KeyE) {
		t.Errorf("Update should keep the key held but forget the transition")
	}
	if m.Prepared().Pressed(userinput.From(userinput.MouseWheelUp)) {
		t.Errorf("last tick's scrolling should not be counted again")
	}
}
