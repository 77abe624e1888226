package streams

import (
	"fmt"
	"math"

	"github.com/Beewitchy/leafwing-input-manager/config"
	"github.com/Beewitchy/leafwing-input-manager/devices"
	"github.com/Beewitchy/leafwing-input-manager/userinput"
	"github.com/go-gl/mathgl/mgl32"
)

// PreparedInputStreams evaluates bindings against an InputStreams and caches
// the tick's summed mouse wheel and mouse motion. Each sum is computed at
// most once per instance and never refreshed: build a new instance every
// tick.
type PreparedInputStreams struct {
	streams *InputStreams

	mouseWheelCached        bool
	totalMouseWheelMovement mgl32.Vec2
	mouseMotionCached       bool
	totalMouseMotion        mgl32.Vec2
}

// Prepare wraps streams with an empty cache.
func Prepare(streams *InputStreams) *PreparedInputStreams {
	return &PreparedInputStreams{streams: streams}
}

// FromInputs wraps streams and fills the caches the given bindings need, so
// that later queries do no accumulation.
func FromInputs(streams *InputStreams, inputs ...userinput.UserInput) *PreparedInputStreams {
	p := Prepare(streams)
	p.PrepareInputs(inputs...)
	return p
}

// Streams returns the wrapped view.
func (p *PreparedInputStreams) Streams() *InputStreams {
	return p.streams
}

func (p *PreparedInputStreams) PrepareInputs(inputs ...userinput.UserInput) {
	for _, input := range inputs {
		p.PrepareInput(input)
	}
}

func (p *PreparedInputStreams) PrepareInput(input userinput.UserInput) {
	for _, kind := range input.Kinds() {
		p.PrepareInputKind(kind)
	}
}

func (p *PreparedInputStreams) PrepareInputKind(kind userinput.InputKind) {
	switch k := kind.(type) {
	case userinput.MouseWheelDirection:
		p.cacheMouseWheel()
	case userinput.MouseMotionDirection:
		p.cacheMouseMotion()
	case userinput.SingleAxis:
		p.prepareAxis(k)
	case userinput.DualAxis:
		p.prepareAxis(k.X)
		p.prepareAxis(k.Y)
	}
}

func (p *PreparedInputStreams) prepareAxis(axis userinput.SingleAxis) {
	switch axis.AxisType.(type) {
	case userinput.MouseWheelAxis:
		p.cacheMouseWheel()
	case userinput.MouseMotionAxis:
		p.cacheMouseMotion()
	}
}

func (p *PreparedInputStreams) cacheMouseMotion() {
	if p.mouseMotionCached {
		return
	}
	p.mouseMotionCached = true
	p.totalMouseMotion = mgl32.Vec2{}

	log := p.streams.MouseMotion
	if log == nil {
		return
	}
	reader := devices.NewReader(log)
	for _, ev := range reader.Read(log) {
		p.totalMouseMotion = p.totalMouseMotion.Add(ev.Delta)
	}
}

// cacheMouseWheel marks the cache filled even without a wheel source, so a
// missing source reads as no scrolling for the rest of the tick.
func (p *PreparedInputStreams) cacheMouseWheel() {
	if p.mouseWheelCached {
		return
	}
	p.mouseWheelCached = true
	p.totalMouseWheelMovement = mgl32.Vec2{}

	log := p.streams.MouseWheel
	if log == nil {
		return
	}
	pixelsPerLine := config.Input.PixelsPerLine
	if pixelsPerLine <= 0 {
		pixelsPerLine = config.DefaultPixelsPerLine
	}
	reader := devices.NewReader(log)
	for _, ev := range reader.Read(log) {
		// Only direct user scrolling counts.
		if ev.Momentum {
			continue
		}
		delta := mgl32.Vec2{ev.X, ev.Y}
		if ev.Unit == devices.ScrollLine {
			delta = delta.Mul(pixelsPerLine)
		}
		p.totalMouseWheelMovement = p.totalMouseWheelMovement.Add(delta)
	}
}

// MouseWheelMovement is the tick's summed scrolling, in pixels.
func (p *PreparedInputStreams) MouseWheelMovement() mgl32.Vec2 {
	p.cacheMouseWheel()
	return p.totalMouseWheelMovement
}

// MouseMotionMovement is the tick's summed cursor motion.
func (p *PreparedInputStreams) MouseMotionMovement() mgl32.Vec2 {
	p.cacheMouseMotion()
	return p.totalMouseMotion
}

// Pressed reports whether input is active.
func (p *PreparedInputStreams) Pressed(input userinput.UserInput) bool {
	switch in := input.(type) {
	case userinput.Single:
		return p.ButtonPressed(in.Kind)
	case userinput.Chord:
		return p.AllButtonsPressed(in.Kinds()...)
	case userinput.VirtualDPad:
		for _, button := range []userinput.InputKind{in.Up, in.Down, in.Left, in.Right} {
			if p.ButtonPressed(button) {
				return true
			}
		}
		return false
	case userinput.VirtualAxis:
		return p.ButtonPressed(in.Negative) || p.ButtonPressed(in.Positive)
	}
	panic(fmt.Sprintf("streams: unhandled user input %T", input))
}

// AnyPressed reports whether at least one of inputs is active.
func (p *PreparedInputStreams) AnyPressed(inputs ...userinput.UserInput) bool {
	for _, input := range inputs {
		if p.Pressed(input) {
			return true
		}
	}
	return false
}

// AllButtonsPressed reports whether every one of buttons is active. It is
// true for no buttons.
func (p *PreparedInputStreams) AllButtonsPressed(buttons ...userinput.InputKind) bool {
	for _, button := range buttons {
		if !p.ButtonPressed(button) {
			return false
		}
	}
	return true
}

// ButtonPressed reports whether one atomic input is active. Inputs whose
// device is unavailable are never active.
func (p *PreparedInputStreams) ButtonPressed(button userinput.InputKind) bool {
	s := p.streams
	switch k := button.(type) {
	case nil:
		return false
	case userinput.DualAxis:
		return p.ButtonPressed(k.X) || p.ButtonPressed(k.Y)
	case userinput.SingleAxis:
		value := p.singleAxisValue(k)
		return value < k.NegativeLow || value > k.PositiveLow
	case userinput.GamepadButton:
		gamepad, ok := s.GuessGamepad()
		if !ok || s.GamepadButtons == nil {
			return false
		}
		return s.GamepadButtons.Pressed(devices.GamepadButton{
			Gamepad:    gamepad,
			ButtonType: devices.GamepadButtonType(k),
		})
	case userinput.Keyboard:
		return s.KeyCodes != nil && s.KeyCodes.Pressed(devices.KeyCode(k))
	case userinput.KeyLocation:
		return s.ScanCodes != nil && s.ScanCodes.Pressed(devices.ScanCode(k))
	case userinput.Modifier:
		if s.KeyCodes == nil {
			return false
		}
		codes := k.KeyCodes()
		return s.KeyCodes.Pressed(codes[0]) || s.KeyCodes.Pressed(codes[1])
	case userinput.Mouse:
		return s.MouseButtons != nil && s.MouseButtons.Pressed(devices.MouseButton(k))
	case userinput.MouseWheelDirection:
		p.cacheMouseWheel()
		d, ok := wheelDirections[k]
		return ok && directionActive(p.totalMouseWheelMovement, d)
	case userinput.MouseMotionDirection:
		p.cacheMouseMotion()
		d, ok := motionDirections[k]
		return ok && directionActive(p.totalMouseMotion, d)
	}
	panic(fmt.Sprintf("streams: unhandled input kind %T", button))
}

type direction int

const (
	up direction = iota
	down
	left
	right
)

var wheelDirections = map[userinput.MouseWheelDirection]direction{
	userinput.MouseWheelUp:    up,
	userinput.MouseWheelDown:  down,
	userinput.MouseWheelLeft:  left,
	userinput.MouseWheelRight: right,
}

var motionDirections = map[userinput.MouseMotionDirection]direction{
	userinput.MouseMotionUp:    up,
	userinput.MouseMotionDown:  down,
	userinput.MouseMotionLeft:  left,
	userinput.MouseMotionRight: right,
}

// directionActive reports whether movement has a strictly positive (up,
// right) or strictly negative (down, left) component along d.
func directionActive(movement mgl32.Vec2, d direction) bool {
	switch d {
	case up:
		return movement.Y() > 0
	case down:
		return movement.Y() < 0
	case right:
		return movement.X() > 0
	case left:
		return movement.X() < 0
	}
	return false
}

// Value is the scalar magnitude of input.
//
// Buttons and chords read 1 when pressed and 0 otherwise. Axes read their
// raw value outside the dead zone and 0 inside it; the result is not
// rescaled, so clamp it if you need [-1, 1].
func (p *PreparedInputStreams) Value(input userinput.UserInput) float32 {
	switch in := input.(type) {
	case userinput.Single:
		switch k := in.Kind.(type) {
		case userinput.SingleAxis:
			return p.singleAxisValue(k)
		case userinput.DualAxis:
			return p.axisPairLength(input)
		case userinput.GamepadButton:
			// Triggers are often analog, so prefer the analog reading.
			gamepad, ok := p.streams.GuessGamepad()
			if !ok {
				return 0
			}
			if axes := p.streams.GamepadButtonAxes; axes != nil {
				value, ok := axes.Get(devices.GamepadButton{
					Gamepad:    gamepad,
					ButtonType: devices.GamepadButtonType(k),
				})
				if ok {
					return value
				}
			}
		}
	case userinput.VirtualAxis:
		return abs(p.Value(userinput.From(in.Positive))) - abs(p.Value(userinput.From(in.Negative)))
	case userinput.VirtualDPad:
		return p.axisPairLength(input)
	}
	return p.buttonValue(input)
}

func (p *PreparedInputStreams) buttonValue(input userinput.UserInput) float32 {
	if p.Pressed(input) {
		return 1
	}
	return 0
}

func (p *PreparedInputStreams) axisPairLength(input userinput.UserInput) float32 {
	pair, ok := p.AxisPair(input)
	if !ok {
		return 0
	}
	return pair.Length()
}

// singleAxisValue is the axis reading with the dead zone applied.
func (p *PreparedInputStreams) singleAxisValue(axis userinput.SingleAxis) float32 {
	value := p.rawAxisValue(axis)
	if axis.InDeadZone(value) {
		return 0
	}
	return value
}

// rawAxisValue reads the axis source without any dead zone.
func (p *PreparedInputStreams) rawAxisValue(axis userinput.SingleAxis) float32 {
	switch t := axis.AxisType.(type) {
	case nil:
		return 0
	case userinput.GamepadAxis:
		gamepad, ok := p.streams.GuessGamepad()
		if !ok || p.streams.GamepadAxes == nil {
			return 0
		}
		value, _ := p.streams.GamepadAxes.Get(devices.GamepadAxis{
			Gamepad:  gamepad,
			AxisType: devices.GamepadAxisType(t),
		})
		return value
	case userinput.MouseWheelAxis:
		p.cacheMouseWheel()
		if t == userinput.MouseWheelAxisY {
			return p.totalMouseWheelMovement.Y()
		}
		return p.totalMouseWheelMovement.X()
	case userinput.MouseMotionAxis:
		p.cacheMouseMotion()
		if t == userinput.MouseMotionAxisY {
			return p.totalMouseMotion.Y()
		}
		return p.totalMouseMotion.X()
	}
	panic(fmt.Sprintf("streams: unhandled axis type %T", axis.AxisType))
}

// AxisPair resolves a DualAxis or VirtualDPad to a two dimensional value.
// It returns false for every other binding.
//
// A DualAxis reads (0, 0) unless at least one of its raw readings is outside
// its own dead zone; otherwise each component is the dead-zoned axis value.
func (p *PreparedInputStreams) AxisPair(input userinput.UserInput) (userinput.DualAxisData, bool) {
	switch in := input.(type) {
	case userinput.Single:
		dual, ok := in.Kind.(userinput.DualAxis)
		if !ok {
			return userinput.DualAxisData{}, false
		}
		x := p.singleAxisValue(dual.X)
		y := p.singleAxisValue(dual.Y)
		rawX := p.rawAxisValue(dual.X)
		rawY := p.rawAxisValue(dual.Y)
		if rawX > dual.X.PositiveLow || rawX < dual.X.NegativeLow ||
			rawY > dual.Y.PositiveLow || rawY < dual.Y.NegativeLow {
			return userinput.NewDualAxisData(x, y), true
		}
		return userinput.NewDualAxisData(0, 0), true
	case userinput.VirtualDPad:
		x := abs(p.Value(userinput.From(in.Right))) - abs(p.Value(userinput.From(in.Left)))
		y := abs(p.Value(userinput.From(in.Up))) - abs(p.Value(userinput.From(in.Down)))
		return userinput.NewDualAxisData(x, y), true
	}
	return userinput.DualAxisData{}, false
}

func abs(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
