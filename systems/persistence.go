package systems

import (
	"encoding/json"

	cfg "github.com/Beewitchy/leafwing-input-manager/config"
	"github.com/kataras/golog"
	"github.com/quasilyte/gdata"
)

var persistenceLogger = golog.Child("[persistence]")

const settingsKey = "settings"

// SavedSettings represents the input tuning stored on disk
type SavedSettings struct {
	PixelsPerLine  float32 `json:"pixelsPerLine"`
	AnalogDeadzone float32 `json:"analogDeadzone"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		persistenceLogger.Warnf("could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil when persistence is
// unavailable or nothing has been saved yet.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		persistenceLogger.Warnf("could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	settings, err := decodeSettings(data)
	if err != nil {
		persistenceLogger.Warnf("could not parse saved settings: %v", err)
		return nil, err
	}
	return settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		persistenceLogger.Warnf("could not serialize settings: %v", err)
		return err
	}
	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		persistenceLogger.Warnf("could not save settings: %v", err)
		return err
	}
	persistenceLogger.Debugf("saved settings %+v", *s)
	return nil
}

// CurrentSettings captures the active input tuning.
func CurrentSettings() *SavedSettings {
	return &SavedSettings{
		PixelsPerLine:  cfg.Input.PixelsPerLine,
		AnalogDeadzone: cfg.Input.AnalogDeadzone,
	}
}

// ApplySavedSettings copies loaded settings into cfg.Input. Out of range
// values keep the current setting.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	if saved.PixelsPerLine > 0 {
		cfg.Input.PixelsPerLine = saved.PixelsPerLine
	}
	if saved.AnalogDeadzone >= 0 && saved.AnalogDeadzone < 1 {
		cfg.Input.AnalogDeadzone = saved.AnalogDeadzone
	}
	persistenceLogger.Infof("applied settings: %g pixels per line, %g deadzone",
		cfg.Input.PixelsPerLine, cfg.Input.AnalogDeadzone)
}

// decodeSettings parses stored settings. Missing fields fall back to the
// defaults.
func decodeSettings(data []byte) (*SavedSettings, error) {
	settings := SavedSettings{
		PixelsPerLine:  cfg.DefaultPixelsPerLine,
		AnalogDeadzone: cfg.DefaultDeadzone,
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}
