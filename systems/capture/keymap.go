package capture

import (
	"github.com/Beewitchy/leafwing-input-manager/devices"
	"github.com/hajimehoshi/ebiten/v2"
)

// keyCodes maps ebiten keys to logical key codes. Keys missing here are
// still reported by scan code.
var keyCodes = map[ebiten.Key]devices.KeyCode{
	ebiten.Key0: devices.Key0,
	ebiten.Key1: devices.Key1,
	ebiten.Key2: devices.Key2,
	ebiten.Key3: devices.Key3,
	ebiten.Key4: devices.Key4,
	ebiten.Key5: devices.Key5,
	ebiten.Key6: devices.Key6,
	ebiten.Key7: devices.Key7,
	ebiten.Key8: devices.Key8,
	ebiten.Key9: devices.Key9,
	ebiten.KeyA: devices.KeyA,
	ebiten.KeyB: devices.KeyB,
	ebiten.KeyC: devices.KeyC,
	ebiten.KeyD: devices.KeyD,
	ebiten.KeyE: devices.KeyE,
	ebiten.KeyF: devices.KeyF,
	ebiten.KeyG: devices.KeyG,
	ebiten.KeyH: devices.KeyH,
	ebiten.KeyI: devices.KeyI,
	ebiten.KeyJ: devices.KeyJ,
	ebiten.KeyK: devices.KeyK,
	ebiten.KeyL: devices.KeyL,
	ebiten.KeyM: devices.KeyM,
	ebiten.KeyN: devices.KeyN,
	ebiten.KeyO: devices.KeyO,
	ebiten.KeyP: devices.KeyP,
	ebiten.KeyQ: devices.KeyQ,
	ebiten.KeyR: devices.KeyR,
	ebiten.KeyS: devices.KeyS,
	ebiten.KeyT: devices.KeyT,
	ebiten.KeyU: devices.KeyU,
	ebiten.KeyV: devices.KeyV,
	ebiten.KeyW: devices.KeyW,
	ebiten.KeyX: devices.KeyX,
	ebiten.KeyY: devices.KeyY,
	ebiten.KeyZ: devices.KeyZ,

	ebiten.KeyEscape: devices.KeyEscape,
	ebiten.KeyF1:     devices.KeyF1,
	ebiten.KeyF2:     devices.KeyF2,
	ebiten.KeyF3:     devices.KeyF3,
	ebiten.KeyF4:     devices.KeyF4,
	ebiten.KeyF5:     devices.KeyF5,
	ebiten.KeyF6:     devices.KeyF6,
	ebiten.KeyF7:     devices.KeyF7,
	ebiten.KeyF8:     devices.KeyF8,
	ebiten.KeyF9:     devices.KeyF9,
	ebiten.KeyF10:    devices.KeyF10,
	ebiten.KeyF11:    devices.KeyF11,
	ebiten.KeyF12:    devices.KeyF12,

	ebiten.KeyInsert:     devices.KeyInsert,
	ebiten.KeyHome:       devices.KeyHome,
	ebiten.KeyDelete:     devices.KeyDelete,
	ebiten.KeyEnd:        devices.KeyEnd,
	ebiten.KeyPageDown:   devices.KeyPageDown,
	ebiten.KeyPageUp:     devices.KeyPageUp,
	ebiten.KeyArrowLeft:  devices.KeyLeft,
	ebiten.KeyArrowUp:    devices.KeyUp,
	ebiten.KeyArrowRight: devices.KeyRight,
	ebiten.KeyArrowDown:  devices.KeyDown,

	ebiten.KeyBackspace:    devices.KeyBack,
	ebiten.KeyEnter:        devices.KeyReturn,
	ebiten.KeySpace:        devices.KeySpace,
	ebiten.KeyTab:          devices.KeyTab,
	ebiten.KeyCapsLock:     devices.KeyCapsLock,
	ebiten.KeyMinus:        devices.KeyMinus,
	ebiten.KeyEqual:        devices.KeyEqual,
	ebiten.KeyBracketLeft:  devices.KeyBracketLeft,
	ebiten.KeyBracketRight: devices.KeyBracketRight,
	ebiten.KeyBackslash:    devices.KeyBackslash,
	ebiten.KeySemicolon:    devices.KeySemicolon,
	ebiten.KeyQuote:        devices.KeyQuote,
	ebiten.KeyBackquote:    devices.KeyGrave,
	ebiten.KeyComma:        devices.KeyComma,
	ebiten.KeyPeriod:       devices.KeyPeriod,
	ebiten.KeySlash:        devices.KeySlash,

	ebiten.KeyNumpad0:     devices.KeyNumpad0,
	ebiten.KeyNumpad1:     devices.KeyNumpad1,
	ebiten.KeyNumpad2:     devices.KeyNumpad2,
	ebiten.KeyNumpad3:     devices.KeyNumpad3,
	ebiten.KeyNumpad4:     devices.KeyNumpad4,
	ebiten.KeyNumpad5:     devices.KeyNumpad5,
	ebiten.KeyNumpad6:     devices.KeyNumpad6,
	ebiten.KeyNumpad7:     devices.KeyNumpad7,
	ebiten.KeyNumpad8:     devices.KeyNumpad8,
	ebiten.KeyNumpad9:     devices.KeyNumpad9,
	ebiten.KeyNumpadEnter: devices.KeyNumpadEnter,

	ebiten.KeyAltLeft:      devices.KeyLAlt,
	ebiten.KeyAltRight:     devices.KeyRAlt,
	ebiten.KeyControlLeft:  devices.KeyLControl,
	ebiten.KeyControlRight: devices.KeyRControl,
	ebiten.KeyShiftLeft:    devices.KeyLShift,
	ebiten.KeyShiftRight:   devices.KeyRShift,
	ebiten.KeyMetaLeft:     devices.KeyLWin,
	ebiten.KeyMetaRight:    devices.KeyRWin,
}

// mouseButtons maps ebiten mouse buttons to device mouse buttons.
var mouseButtons = map[ebiten.MouseButton]devices.MouseButton{
	ebiten.MouseButtonLeft:   devices.MouseButtonLeft,
	ebiten.MouseButtonRight:  devices.MouseButtonRight,
	ebiten.MouseButtonMiddle: devices.MouseButtonMiddle,
	ebiten.MouseButton3:      devices.MouseButtonBack,
	ebiten.MouseButton4:      devices.MouseButtonForward,
}

// gamepadButtons maps the standard gamepad layout to device button types.
var gamepadButtons = map[ebiten.StandardGamepadButton]devices.GamepadButtonType{
	ebiten.StandardGamepadButtonRightBottom:      devices.GamepadSouth,
	ebiten.StandardGamepadButtonRightRight:       devices.GamepadEast,
	ebiten.StandardGamepadButtonRightTop:         devices.GamepadNorth,
	ebiten.StandardGamepadButtonRightLeft:        devices.GamepadWest,
	ebiten.StandardGamepadButtonFrontTopLeft:     devices.GamepadLeftTrigger,
	ebiten.StandardGamepadButtonFrontBottomLeft:  devices.GamepadLeftTrigger2,
	ebiten.StandardGamepadButtonFrontTopRight:    devices.GamepadRightTrigger,
	ebiten.StandardGamepadButtonFrontBottomRight: devices.GamepadRightTrigger2,
	ebiten.StandardGamepadButtonCenterLeft:       devices.GamepadSelect,
	ebiten.StandardGamepadButtonCenterRight:      devices.GamepadStart,
	ebiten.StandardGamepadButtonCenterCenter:     devices.GamepadMode,
	ebiten.StandardGamepadButtonLeftStick:        devices.GamepadLeftThumb,
	ebiten.StandardGamepadButtonRightStick:       devices.GamepadRightThumb,
	ebiten.StandardGamepadButtonLeftTop:          devices.GamepadDPadUp,
	ebiten.StandardGamepadButtonLeftBottom:       devices.GamepadDPadDown,
	ebiten.StandardGamepadButtonLeftLeft:         devices.GamepadDPadLeft,
	ebiten.StandardGamepadButtonLeftRight:        devices.GamepadDPadRight,
}

// analogButtons are the buttons whose pressure is also reported as a value.
var analogButtons = []ebiten.StandardGamepadButton{
	ebiten.StandardGamepadButtonFrontBottomLeft,
	ebiten.StandardGamepadButtonFrontBottomRight,
}

type stickAxis struct {
	axis   ebiten.StandardGamepadAxis
	target devices.GamepadAxisType
	// ebiten reports down as positive; device axes use up as positive.
	flip bool
}

var gamepadAxes = []stickAxis{
	{ebiten.StandardGamepadAxisLeftStickHorizontal, devices.GamepadLeftStickX, false},
	{ebiten.StandardGamepadAxisLeftStickVertical, devices.GamepadLeftStickY, true},
	{ebiten.StandardGamepadAxisRightStickHorizontal, devices.GamepadRightStickX, false},
	{ebiten.StandardGamepadAxisRightStickVertical, devices.GamepadRightStickY, true},
}
