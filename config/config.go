package config

import "image/color"

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// InspectorConfig contains the input inspector screen layout
type InspectorConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	ActiveColor     color.RGBA
	IdleColor       color.RGBA
	MarginX         int
	TitleY          int
	RowStartY       int
	RowHeight       int
	ColumnWidth     int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	// LogDevices logs every gamepad connection change.
	LogDevices bool
}

// Render layers
const (
	Default = iota
)

// Global configuration instances
var C *Config
var Inspector InspectorConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Gray      = color.RGBA{R: 110, G: 110, B: 110, A: 255}
	DarkGray  = color.RGBA{R: 24, G: 24, B: 28, A: 255}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "Input Inspector",
	}

	Inspector = InspectorConfig{
		BackgroundColor: DarkGray,
		TitleColor:      White,
		ActiveColor:     LightBlue,
		IdleColor:       Gray,
		MarginX:         16,
		TitleY:          28,
		RowStartY:       64,
		RowHeight:       18,
		ColumnWidth:     460,
	}

	Debug = DebugConfig{
		LogDevices: true,
	}
}
