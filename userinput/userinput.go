package userinput

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Beewitchy/leafwing-input-manager/devices"
)

// MaxChordSize is the largest number of members a Chord can hold.
const MaxChordSize = 8

// ErrChordTooLarge is returned when a chord would exceed MaxChordSize members.
var ErrChordTooLarge = errors.New("userinput: chord has more than 8 members")

// UserInput is an input binding. It is implemented by Single, Chord,
// VirtualDPad and VirtualAxis.
type UserInput interface {
	fmt.Stringer
	// Kinds returns every atomic input the binding is built from.
	Kinds() []InputKind
	isUserInput()
}

// Single is one atomic input.
type Single struct {
	Kind InputKind
}

// From wraps kind as a Single.
func From(kind InputKind) Single {
	return Single{Kind: kind}
}

func (Single) isUserInput()      {}
func (Chord) isUserInput()       {}
func (VirtualDPad) isUserInput() {}
func (VirtualAxis) isUserInput() {}

func (s Single) Kinds() []InputKind {
	return []InputKind{s.Kind}
}

func (s Single) String() string {
	return s.Kind.String()
}

// Chord is a set of inputs that must all be active at once. Members are
// unique and unordered. The zero Chord is empty and always pressed.
type Chord struct {
	members [MaxChordSize]InputKind
	n       int
}

// NewChord builds a chord from kinds, dropping duplicates and nil kinds.
func NewChord(kinds ...InputKind) (Chord, error) {
	var c Chord
	for _, k := range kinds {
		if k == nil || c.Contains(k) {
			continue
		}
		if c.n == MaxChordSize {
			return Chord{}, ErrChordTooLarge
		}
		c.members[c.n] = k
		c.n++
	}
	return c, nil
}

// Modified is the chord of a modifier and one other input, such as Ctrl+S.
func Modified(mod Modifier, kind InputKind) Chord {
	c, _ := NewChord(mod, kind)
	return c
}

func (c Chord) Len() int {
	return c.n
}

func (c Chord) Kinds() []InputKind {
	return append([]InputKind(nil), c.members[:c.n]...)
}

func (c Chord) Contains(kind InputKind) bool {
	for _, m := range c.members[:c.n] {
		if m == kind {
			return true
		}
	}
	return false
}

// Equal compares chords as sets.
func (c Chord) Equal(other Chord) bool {
	if c.n != other.n {
		return false
	}
	for _, m := range c.members[:c.n] {
		if !other.Contains(m) {
			return false
		}
	}
	return true
}

func (c Chord) String() string {
	names := make([]string, c.n)
	for i, m := range c.members[:c.n] {
		names[i] = m.String()
	}
	return "Chord(" + strings.Join(names, " + ") + ")"
}

// VirtualDPad emulates a two dimensional input with four buttons.
type VirtualDPad struct {
	Up    InputKind
	Down  InputKind
	Left  InputKind
	Right InputKind
}

func (d VirtualDPad) Kinds() []InputKind {
	return []InputKind{d.Up, d.Down, d.Left, d.Right}
}

func (d VirtualDPad) String() string {
	return fmt.Sprintf("VirtualDPad(up: %v, down: %v, left: %v, right: %v)", d.Up, d.Down, d.Left, d.Right)
}

func ArrowKeys() VirtualDPad {
	return VirtualDPad{
		Up:    Keyboard(devices.KeyUp),
		Down:  Keyboard(devices.KeyDown),
		Left:  Keyboard(devices.KeyLeft),
		Right: Keyboard(devices.KeyRight),
	}
}

func WASD() VirtualDPad {
	return VirtualDPad{
		Up:    Keyboard(devices.KeyW),
		Down:  Keyboard(devices.KeyS),
		Left:  Keyboard(devices.KeyA),
		Right: Keyboard(devices.KeyD),
	}
}

func DPad() VirtualDPad {
	return VirtualDPad{
		Up:    GamepadButton(devices.GamepadDPadUp),
		Down:  GamepadButton(devices.GamepadDPadDown),
		Left:  GamepadButton(devices.GamepadDPadLeft),
		Right: GamepadButton(devices.GamepadDPadRight),
	}
}

func GamepadFaceButtons() VirtualDPad {
	return VirtualDPad{
		Up:    GamepadButton(devices.GamepadNorth),
		Down:  GamepadButton(devices.GamepadSouth),
		Left:  GamepadButton(devices.GamepadWest),
		Right: GamepadButton(devices.GamepadEast),
	}
}

func MouseWheelDPad() VirtualDPad {
	return VirtualDPad{
		Up:    MouseWheelUp,
		Down:  MouseWheelDown,
		Left:  MouseWheelLeft,
		Right: MouseWheelRight,
	}
}

func MouseMotionDPad() VirtualDPad {
	return VirtualDPad{
		Up:    MouseMotionUp,
		Down:  MouseMotionDown,
		Left:  MouseMotionLeft,
		Right: MouseMotionRight,
	}
}

// VirtualAxis emulates a signed one dimensional input with two buttons.
type VirtualAxis struct {
	Negative InputKind
	Positive InputKind
}

func (a VirtualAxis) Kinds() []InputKind {
	return []InputKind{a.Negative, a.Positive}
}

func (a VirtualAxis) String() string {
	return fmt.Sprintf("VirtualAxis(-%v, +%v)", a.Negative, a.Positive)
}

func HorizontalArrowKeys() VirtualAxis {
	return VirtualAxis{Negative: Keyboard(devices.KeyLeft), Positive: Keyboard(devices.KeyRight)}
}

func VerticalArrowKeys() VirtualAxis {
	return VirtualAxis{Negative: Keyboard(devices.KeyDown), Positive: Keyboard(devices.KeyUp)}
}

func ADKeys() VirtualAxis {
	return VirtualAxis{Negative: Keyboard(devices.KeyA), Positive: Keyboard(devices.KeyD)}
}

func WSKeys() VirtualAxis {
	return VirtualAxis{Negative: Keyboard(devices.KeyS), Positive: Keyboard(devices.KeyW)}
}

func HorizontalDPad() VirtualAxis {
	return VirtualAxis{
		Negative: GamepadButton(devices.GamepadDPadLeft),
		Positive: GamepadButton(devices.GamepadDPadRight),
	}
}

func VerticalDPad() VirtualAxis {
	return VirtualAxis{
		Negative: GamepadButton(devices.GamepadDPadDown),
		Positive: GamepadButton(devices.GamepadDPadUp),
	}
}

func HorizontalMouseWheel() VirtualAxis {
	return VirtualAxis{Negative: MouseWheelLeft, Positive: MouseWheelRight}
}

func VerticalMouseWheel() VirtualAxis {
	return VirtualAxis{Negative: MouseWheelDown, Positive: MouseWheelUp}
}
