package config

const (
	// DefaultPixelsPerLine brings line-unit scroll ticks into the same range
	// as pixel-unit ones.
	DefaultPixelsPerLine float32 = 14.0
	// DefaultDeadzone is the symmetric threshold used by the stick presets.
	DefaultDeadzone float32 = 0.1
)

// InputConfig holds input evaluation tuning
type InputConfig struct {
	// Scale applied to line-unit mouse wheel events before accumulation
	PixelsPerLine float32
	// Deadzone for analog stick presets (0.0 to 1.0)
	AnalogDeadzone float32
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		PixelsPerLine:  DefaultPixelsPerLine,
		AnalogDeadzone: DefaultDeadzone,
	}
}
