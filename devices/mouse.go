package devices

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonBack
	MouseButtonForward
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "Left"
	case MouseButtonRight:
		return "Right"
	case MouseButtonMiddle:
		return "Middle"
	case MouseButtonBack:
		return "Back"
	case MouseButtonForward:
		return "Forward"
	}
	return fmt.Sprintf("MouseButton(%d)", int(b))
}

// MouseButtonInput is sent whenever a mouse button changes state.
type MouseButtonInput struct {
	Button MouseButton
	State  ButtonState
}

// MouseScrollUnit is the unit a MouseWheel event is measured in.
type MouseScrollUnit int

const (
	// ScrollLine is one detent of a notched wheel.
	ScrollLine MouseScrollUnit = iota
	// ScrollPixel comes from touchpads and smooth-scrolling wheels.
	ScrollPixel
)

func (u MouseScrollUnit) String() string {
	if u == ScrollPixel {
		return "Pixel"
	}
	return "Line"
}

// MouseWheel is a single scroll tick.
type MouseWheel struct {
	X, Y float32
	Unit MouseScrollUnit
	// Momentum marks ticks generated by inertial scrolling after the user let go.
	Momentum bool
}

// MouseMotion is the raw cursor movement since the previous MouseMotion event.
type MouseMotion struct {
	Delta mgl32.Vec2
}
