package userinput

import (
	"fmt"

	"github.com/Beewitchy/leafwing-input-manager/config"
	"github.com/Beewitchy/leafwing-input-manager/devices"
	"github.com/go-gl/mathgl/mgl32"
)

// AxisType is the analog source of a SingleAxis. It is implemented by
// GamepadAxis, MouseWheelAxis and MouseMotionAxis.
type AxisType interface {
	fmt.Stringer
	isAxisType()
}

// GamepadAxis reads an analog axis of the resolved gamepad.
type GamepadAxis devices.GamepadAxisType

// MouseWheelAxis reads one component of the tick's accumulated scrolling.
type MouseWheelAxis int

const (
	MouseWheelAxisX MouseWheelAxis = iota
	MouseWheelAxisY
)

// MouseMotionAxis reads one component of the tick's accumulated cursor motion.
type MouseMotionAxis int

const (
	MouseMotionAxisX MouseMotionAxis = iota
	MouseMotionAxisY
)

func (GamepadAxis) isAxisType()     {}
func (MouseWheelAxis) isAxisType()  {}
func (MouseMotionAxis) isAxisType() {}

func (a GamepadAxis) String() string {
	return "Gamepad(" + devices.GamepadAxisType(a).String() + ")"
}

func (a MouseWheelAxis) String() string {
	if a == MouseWheelAxisY {
		return "MouseWheel(Y)"
	}
	return "MouseWheel(X)"
}

func (a MouseMotionAxis) String() string {
	if a == MouseMotionAxisY {
		return "MouseMotion(Y)"
	}
	return "MouseMotion(X)"
}

// SingleAxis is one analog source with a dead zone. Readings inside
// [NegativeLow, PositiveLow] count as no input. NegativeLow is expected to
// be at most PositiveLow; the thresholds are not checked.
type SingleAxis struct {
	AxisType    AxisType
	PositiveLow float32
	NegativeLow float32
}

func NewSingleAxis(axisType AxisType, negativeLow, positiveLow float32) SingleAxis {
	return SingleAxis{
		AxisType:    axisType,
		PositiveLow: positiveLow,
		NegativeLow: negativeLow,
	}
}

// SymmetricSingleAxis creates an axis with the dead zone [-threshold, threshold].
func SymmetricSingleAxis(axisType AxisType, threshold float32) SingleAxis {
	return NewSingleAxis(axisType, -threshold, threshold)
}

// InDeadZone reports whether value lies inside the axis dead zone.
func (a SingleAxis) InDeadZone(value float32) bool {
	return value >= a.NegativeLow && value <= a.PositiveLow
}

func (a SingleAxis) String() string {
	return fmt.Sprintf("SingleAxis(%v [%g, %g])", a.AxisType, a.NegativeLow, a.PositiveLow)
}

// MouseWheelX is horizontal scrolling; any non-zero movement is active.
func MouseWheelX() SingleAxis {
	return NewSingleAxis(MouseWheelAxisX, 0, 0)
}

// MouseWheelY is vertical scrolling; any non-zero movement is active.
func MouseWheelY() SingleAxis {
	return NewSingleAxis(MouseWheelAxisY, 0, 0)
}

// MouseMotionX is horizontal cursor motion; any non-zero movement is active.
func MouseMotionX() SingleAxis {
	return NewSingleAxis(MouseMotionAxisX, 0, 0)
}

// MouseMotionY is vertical cursor motion; any non-zero movement is active.
func MouseMotionY() SingleAxis {
	return NewSingleAxis(MouseMotionAxisY, 0, 0)
}

// DualAxis is a two dimensional analog source such as a stick.
type DualAxis struct {
	X SingleAxis
	Y SingleAxis
}

func NewDualAxis(x, y SingleAxis) DualAxis {
	return DualAxis{X: x, Y: y}
}

// SymmetricDualAxis creates a dual axis sharing one symmetric dead zone.
func SymmetricDualAxis(xType, yType AxisType, threshold float32) DualAxis {
	return DualAxis{
		X: SymmetricSingleAxis(xType, threshold),
		Y: SymmetricSingleAxis(yType, threshold),
	}
}

func (a DualAxis) String() string {
	return "DualAxis(" + a.X.String() + ", " + a.Y.String() + ")"
}

// LeftStick uses config.Input.AnalogDeadzone.
func LeftStick() DualAxis {
	return SymmetricDualAxis(
		GamepadAxis(devices.GamepadLeftStickX),
		GamepadAxis(devices.GamepadLeftStickY),
		config.Input.AnalogDeadzone,
	)
}

// RightStick uses config.Input.AnalogDeadzone.
func RightStick() DualAxis {
	return SymmetricDualAxis(
		GamepadAxis(devices.GamepadRightStickX),
		GamepadAxis(devices.GamepadRightStickY),
		config.Input.AnalogDeadzone,
	)
}

func MouseWheel() DualAxis {
	return NewDualAxis(MouseWheelX(), MouseWheelY())
}

func MouseMotion() DualAxis {
	return NewDualAxis(MouseMotionX(), MouseMotionY())
}

// DualAxisData is a resolved two dimensional value.
type DualAxisData struct {
	xy mgl32.Vec2
}

func NewDualAxisData(x, y float32) DualAxisData {
	return DualAxisData{xy: mgl32.Vec2{x, y}}
}

func (d DualAxisData) X() float32 {
	return d.xy.X()
}

func (d DualAxisData) Y() float32 {
	return d.xy.Y()
}

func (d DualAxisData) XY() mgl32.Vec2 {
	return d.xy
}

// Length is the euclidean length of the value.
func (d DualAxisData) Length() float32 {
	return d.xy.Len()
}

// Direction returns the unit vector of the value, or false for a zero value.
func (d DualAxisData) Direction() (mgl32.Vec2, bool) {
	if d.xy.X() == 0 && d.xy.Y() == 0 {
		return mgl32.Vec2{}, false
	}
	return d.xy.Normalize(), true
}

func (d DualAxisData) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", d.xy.X(), d.xy.Y())
}
