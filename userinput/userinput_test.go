package userinput

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/Beewitchy/leafwing-input-manager/config"
	"github.com/Beewitchy/leafwing-input-manager/devices"
)

// everyKind holds one value of each InputKind variant.
var everyKind = []InputKind{
	Keyboard(devices.KeyA),
	KeyLocation(30),
	Modifier(Shift),
	Mouse(devices.MouseButtonLeft),
	MouseWheelUp,
	MouseMotionLeft,
	GamepadButton(devices.GamepadSouth),
	SymmetricSingleAxis(GamepadAxis(devices.GamepadLeftZ), 0.2),
	LeftStick(),
}

func TestNewChordDropsDuplicates(t *testing.T) {
	c, err := NewChord(Keyboard(devices.KeyA), Keyboard(devices.KeyA), nil, Control)
	if err != nil {
		t.Fatalf("NewChord() error = %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if !c.Contains(Control) || !c.Contains(Keyboard(devices.KeyA)) {
		t.Errorf("chord is missing members: %v", c)
	}
	if c.Contains(Keyboard(devices.KeyB)) {
		t.Errorf("chord reports a member it does not have")
	}
}

func TestNewChordLimit(t *testing.T) {
	kinds := make([]InputKind, 0, MaxChordSize+1)
	for k := devices.KeyA; len(kinds) < MaxChordSize; k++ {
		kinds = append(kinds, Keyboard(k))
	}
	if _, err := NewChord(kinds...); err != nil {
		t.Fatalf("a chord of %d members should be accepted: %v", MaxChordSize, err)
	}

	kinds = append(kinds, Keyboard(devices.KeyZ))
	if _, err := NewChord(kinds...); !errors.Is(err, ErrChordTooLarge) {
		t.Errorf("NewChord() error = %v, want ErrChordTooLarge", err)
	}

	// A duplicate past the limit does not grow the set.
	kinds[MaxChordSize] = kinds[0]
	if _, err := NewChord(kinds...); err != nil {
		t.Errorf("duplicate member should not count against the limit: %v", err)
	}
}

func TestChordEqualIgnoresOrder(t *testing.T) {
	a, _ := NewChord(Control, Keyboard(devices.KeyS), Mouse(devices.MouseButtonLeft))
	b, _ := NewChord(Mouse(devices.MouseButtonLeft), Control, Keyboard(devices.KeyS))
	c, _ := NewChord(Control, Keyboard(devices.KeyS))

	if !a.Equal(b) {
		t.Errorf("%v should equal %v", a, b)
	}
	if a.Equal(c) || c.Equal(a) {
		t.Errorf("%v should not equal %v", a, c)
	}
	if !Modified(Control, Keyboard(devices.KeyS)).Equal(c) {
		t.Errorf("Modified should build the same chord")
	}
	if !(Chord{}).Equal(Chord{}) || (Chord{}).Len() != 0 {
		t.Errorf("zero chord should be empty")
	}
}

func TestKinds(t *testing.T) {
	dpad := ArrowKeys()
	if got := dpad.Kinds(); !slices.Equal(got, []InputKind{dpad.Up, dpad.Down, dpad.Left, dpad.Right}) {
		t.Errorf("VirtualDPad.Kinds() = %v", got)
	}

	axis := ADKeys()
	if got := axis.Kinds(); !slices.Equal(got, []InputKind{Keyboard(devices.KeyA), Keyboard(devices.KeyD)}) {
		t.Errorf("VirtualAxis.Kinds() = %v", got)
	}

	single := From(MouseWheelDown)
	if got := single.Kinds(); !slices.Equal(got, []InputKind{MouseWheelDown}) {
		t.Errorf("Single.Kinds() = %v", got)
	}

	chord := Modified(Alt, Keyboard(devices.KeyF4))
	got := chord.Kinds()
	got[0] = nil
	if !chord.Contains(Alt) {
		t.Errorf("Kinds() must return a copy")
	}
}

func TestInputKindsAreComparable(t *testing.T) {
	seen := make(map[InputKind]bool)
	for _, k := range everyKind {
		seen[k] = true
	}
	if len(seen) != len(everyKind) {
		t.Fatalf("expected %d distinct kinds, got %d", len(everyKind), len(seen))
	}

	inputs := make(map[UserInput]bool)
	for _, in := range []UserInput{
		From(Keyboard(devices.KeyA)),
		Modified(Control, Keyboard(devices.KeyA)),
		WASD(),
		ADKeys(),
	} {
		inputs[in] = true
	}
	if !inputs[WASD()] || !inputs[From(Keyboard(devices.KeyA))] || !inputs[Modified(Control, Keyboard(devices.KeyA))] {
		t.Errorf("user inputs should work as map keys")
	}
}

func TestModifierKeyCodes(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want [2]devices.KeyCode
	}{
		{Alt, [2]devices.KeyCode{devices.KeyLAlt, devices.KeyRAlt}},
		{Control, [2]devices.KeyCode{devices.KeyLControl, devices.KeyRControl}},
		{Shift, [2]devices.KeyCode{devices.KeyLShift, devices.KeyRShift}},
		{Win, [2]devices.KeyCode{devices.KeyLWin, devices.KeyRWin}},
	}
	for _, tt := range tests {
		t.Run(tt.mod.String(), func(t *testing.T) {
			if got := tt.mod.KeyCodes(); got != tt.want {
				t.Errorf("KeyCodes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRawInputsOf(t *testing.T) {
	var raw RawInputs
	for _, k := range everyKind {
		raw.add(k)
	}

	if !slices.Equal(raw.KeyCodes, []devices.KeyCode{devices.KeyA, devices.KeyLShift, devices.KeyRShift}) {
		t.Errorf("KeyCodes = %v", raw.KeyCodes)
	}
	if !slices.Equal(raw.ScanCodes, []devices.ScanCode{30}) {
		t.Errorf("ScanCodes = %v", raw.ScanCodes)
	}
	if len(raw.Axes) != 3 {
		t.Errorf("expected one single axis and both halves of the stick, got %v", raw.Axes)
	}
	if raw.Len() != 11 {
		t.Errorf("Len() = %d, want 11", raw.Len())
	}

	chordRaw := RawInputsOf(Modified(Control, Mouse(devices.MouseButtonRight)))
	if chordRaw.Len() != 3 || !slices.Equal(chordRaw.MouseButtons, []devices.MouseButton{devices.MouseButtonRight}) {
		t.Errorf("RawInputsOf(chord) = %+v", chordRaw)
	}
}

func TestSingleAxisDeadZone(t *testing.T) {
	axis := SymmetricSingleAxis(MouseWheelAxisY, 0.25)
	tests := []struct {
		value float32
		want  bool
	}{
		{0, true},
		{0.25, true},
		{-0.25, true},
		{0.26, false},
		{-1, false},
	}
	for _, tt := range tests {
		if got := axis.InDeadZone(tt.value); got != tt.want {
			t.Errorf("InDeadZone(%v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestStickPresetsUseConfiguredDeadzone(t *testing.T) {
	stick := RightStick()
	if stick.X.PositiveLow != config.Input.AnalogDeadzone || stick.Y.NegativeLow != -config.Input.AnalogDeadzone {
		t.Errorf("RightStick() thresholds = %v", stick)
	}
	if stick.X.AxisType != GamepadAxis(devices.GamepadRightStickX) {
		t.Errorf("RightStick().X.AxisType = %v", stick.X.AxisType)
	}
}

func TestDualAxisData(t *testing.T) {
	d := NewDualAxisData(3, 4)
	if d.X() != 3 || d.Y() != 4 {
		t.Errorf("X/Y = %v, %v", d.X(), d.Y())
	}
	if d.Length() != 5 {
		t.Errorf("Length() = %v, want 5", d.Length())
	}
	dir, ok := d.Direction()
	if !ok || math.Abs(float64(dir.X())-0.6) > 1e-6 || math.Abs(float64(dir.Y())-0.8) > 1e-6 {
		t.Errorf("Direction() = %v, %v", dir, ok)
	}
	if _, ok := NewDualAxisData(0, 0).Direction(); ok {
		t.Errorf("zero value has no direction")
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		input UserInput
		want  string
	}{
		{From(Keyboard(devices.KeyQ)), "Keyboard(Q)"},
		{From(MouseWheelRight), "MouseWheel(Right)"},
		{Modified(Control, Keyboard(devices.KeyS)), "Chord(Modifier(Control) + Keyboard(S))"},
		{VerticalMouseWheel(), "VirtualAxis(-MouseWheel(Down), +MouseWheel(Up))"},
		{From(MouseMotionX()), "SingleAxis(MouseMotion(X) [0, 0])"},
	}
	for _, tt := range tests {
		if got := tt.input.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
