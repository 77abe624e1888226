package components

import (
	"github.com/Beewitchy/leafwing-input-manager/devices"
	"github.com/Beewitchy/leafwing-input-manager/streams"
	"github.com/yohamta/donburi"
)

// Devices is the singleton holding every device container of the world.
// The capture system writes it once per tick; everything else reads it.
var Devices = donburi.NewComponentType[streams.MutableInputStreams]()

// PlayerInputData stores per-player input state.
type PlayerInputData struct {
	PlayerIndex  int              // 0-based player index
	BoundGamepad *devices.Gamepad // Bound gamepad (nil = first connected)
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
