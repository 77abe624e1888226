package systems

import (
	"testing"

	"github.com/Beewitchy/leafwing-input-manager/components"
	cfg "github.com/Beewitchy/leafwing-input-manager/config"
	"github.com/Beewitchy/leafwing-input-manager/devices"
	"github.com/Beewitchy/leafwing-input-manager/userinput"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

func TestGetOrCreateDevicesIsSingleton(t *testing.T) {
	world := donburi.NewWorld()
	first := GetOrCreateDevices(world)
	if first.KeyCodes == nil || first.MouseWheel == nil {
		t.Fatalf("device containers not allocated")
	}
	first.KeyCodes.Press(devices.KeySpace)

	second := GetOrCreateDevices(world)
	if !second.KeyCodes.Pressed(devices.KeySpace) {
		t.Errorf("second lookup returned different containers")
	}
	if n := donburi.NewQuery(filter.Contains(components.Devices)).Count(world); n != 1 {
		t.Errorf("found %d device singletons, want 1", n)
	}
}

func spawnPlayer(world donburi.World, index int, gamepad *devices.Gamepad, bindings ...components.Binding) *donburi.Entry {
	entry := world.Entry(world.Create(components.PlayerInput, components.Bindings))
	components.PlayerInput.SetValue(entry, components.PlayerInputData{PlayerIndex: index, BoundGamepad: gamepad})
	components.Bindings.SetValue(entry, components.BindingsData{Bindings: bindings})
	return entry
}

func TestStreamsForPinsBoundGamepad(t *testing.T) {
	world := donburi.NewWorld()
	pad := devices.Gamepad(3)
	unbound := spawnPlayer(world, 0, nil)
	bound := spawnPlayer(world, 1, &pad)

	if s := StreamsFor(world, unbound); s.AssociatedGamepad != nil {
		t.Errorf("unbound player should not be pinned")
	}
	s := StreamsFor(world, bound)
	if s.AssociatedGamepad == nil || *s.AssociatedGamepad != 3 {
		t.Errorf("bound player should be pinned to gamepad 3")
	}
	if s := StreamsFor(world, nil); s.AssociatedGamepad != nil {
		t.Errorf("no entry should not be pinned")
	}
}

func TestUpdateBindingsTransitions(t *testing.T) {
	world := donburi.NewWorld()
	jump := userinput.From(userinput.Keyboard(devices.KeySpace))
	player := spawnPlayer(world, 0, nil,
		components.Binding{Name: "jump", Input: jump},
		components.Binding{Name: "move", Input: userinput.WASD()},
		components.Binding{Name: "unbound"},
	)
	d := GetOrCreateDevices(world)

	d.KeyCodes.Press(devices.KeySpace)
	d.KeyCodes.Press(devices.KeyD)
	UpdateBindings(world)
	states := components.Bindings.Get(player).States
	if len(states) != 3 {
		t.Fatalf("got %d states, want 3", len(states))
	}
	if !states[0].Pressed || !states[0].JustPressed || states[0].Value != 1 {
		t.Errorf("jump state = %+v", states[0])
	}
	if !states[1].HasAxis || states[1].Axis.X() != 1 || states[1].Axis.Y() != 0 {
		t.Errorf("move state = %+v", states[1])
	}
	if states[2] != (components.BindingState{}) {
		t.Errorf("binding without input should stay idle, got %+v", states[2])
	}

	d.Update()
	UpdateBindings(world)
	states = components.Bindings.Get(player).States
	if !states[0].Pressed || states[0].JustPressed {
		t.Errorf("held jump state = %+v", states[0])
	}

	d.KeyCodes.Release(devices.KeySpace)
	UpdateBindings(world)
	states = components.Bindings.Get(player).States
	if states[0].Pressed || !states[0].JustReleased {
		t.Errorf("released jump state = %+v", states[0])
	}
}

func TestUpdateBindingsPerPlayerGamepad(t *testing.T) {
	world := donburi.NewWorld()
	fire := components.Binding{Name: "fire", Input: userinput.From(userinput.GamepadButton(devices.GamepadSouth))}
	pad := devices.Gamepad(1)
	first := spawnPlayer(world, 0, nil, fire)
	second := spawnPlayer(world, 1, &pad, fire)

	d := GetOrCreateDevices(world)
	d.Gamepads.Register(0)
	d.Gamepads.Register(1)
	d.GamepadButtons.Press(devices.GamepadButton{Gamepad: 1, ButtonType: devices.GamepadSouth})
	UpdateBindings(world)

	if components.Bindings.Get(first).States[0].Pressed {
		t.Errorf("player reading gamepad 0 should not see gamepad 1")
	}
	if !components.Bindings.Get(second).States[0].Pressed {
		t.Errorf("player pinned to gamepad 1 should see its button")
	}
}

func TestDecodeSettings(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    SavedSettings
		wantErr bool
	}{
		{
			name: "full",
			data: `{"pixelsPerLine": 20, "analogDeadzone": 0.25}`,
			want: SavedSettings{PixelsPerLine: 20, AnalogDeadzone: 0.25},
		},
		{
			name: "missing fields use defaults",
			data: `{"analogDeadzone": 0.5}`,
			want: SavedSettings{PixelsPerLine: cfg.DefaultPixelsPerLine, AnalogDeadzone: 0.5},
		},
		{
			name:    "garbage",
			data:    `not json`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeSettings([]byte(tt.data))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *got != tt.want {
				t.Errorf("decodeSettings() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestApplySavedSettings(t *testing.T) {
	saved := cfg.Input
	t.Cleanup(func() { cfg.Input = saved })

	ApplySavedSettings(nil)
	if cfg.Input != saved {
		t.Fatalf("nil settings changed the configuration")
	}

	ApplySavedSettings(&SavedSettings{PixelsPerLine: 30, AnalogDeadzone: 0.2})
	if cfg.Input.PixelsPerLine != 30 || cfg.Input.AnalogDeadzone != 0.2 {
		t.Errorf("settings not applied: %+v", cfg.Input)
	}
	if got := CurrentSettings(); *got != (SavedSettings{PixelsPerLine: 30, AnalogDeadzone: 0.2}) {
		t.Errorf("CurrentSettings() = %+v", *got)
	}

	ApplySavedSettings(&SavedSettings{PixelsPerLine: -1, AnalogDeadzone: 2})
	if cfg.Input.PixelsPerLine != 30 || cfg.Input.AnalogDeadzone != 0.2 {
		t.Errorf("out of range settings should be ignored: %+v", cfg.Input)
	}
}

func TestPersistenceWithoutManager(t *testing.T) {
	gdataManager = nil
	settings, err := LoadSettings()
	if settings != nil || err != nil {
		t.Errorf("LoadSettings() = %v, %v without a manager", settings, err)
	}
	if err := SaveSettings(CurrentSettings()); err != nil {
		t.Errorf("SaveSettings() = %v without a manager", err)
	}
}
