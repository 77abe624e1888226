package scenes

import (
	"image/color"
	"sync"

	"github.com/Beewitchy/leafwing-input-manager/archetypes"
	"github.com/Beewitchy/leafwing-input-manager/components"
	cfg "github.com/Beewitchy/leafwing-input-manager/config"
	"github.com/Beewitchy/leafwing-input-manager/devices"
	"github.com/Beewitchy/leafwing-input-manager/systems"
	"github.com/Beewitchy/leafwing-input-manager/systems/capture"
	"github.com/Beewitchy/leafwing-input-manager/userinput"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kataras/golog"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var logger = golog.Child("[scenes]")

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// InspectorScene shows live binding state for two players.
type InspectorScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewInspectorScene creates a new inspector scene
func NewInspectorScene(sc SceneChanger) *InspectorScene {
	return &InspectorScene{sceneChanger: sc}
}

func (is *InspectorScene) Update() {
	is.once.Do(is.configure)
	is.ecs.Update()
}

func (is *InspectorScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if is.ecs == nil {
		return
	}
	is.ecs.Draw(screen)
}

func (is *InspectorScene) configure() {
	is.ecs = ecs.NewECS(donburi.NewWorld())

	// Capture must run before bindings are evaluated
	is.ecs.AddSystem(capture.UpdateDevices)
	is.ecs.AddSystem(func(e *ecs.ECS) { systems.UpdateBindings(e.World) })
	is.ecs.AddSystem(updateTools)

	is.ecs.AddRenderer(cfg.Default, capture.DrawInspector)

	spawnPlayer(is.ecs, 0, nil, keyboardBindings())
	pad := devices.Gamepad(1)
	spawnPlayer(is.ecs, 1, &pad, gamepadBindings())

	tools := is.ecs.World.Entry(is.ecs.World.Create(components.Bindings))
	components.Bindings.SetValue(tools, components.BindingsData{Bindings: toolBindings()})
}

func spawnPlayer(e *ecs.ECS, index int, gamepad *devices.Gamepad, bindings []components.Binding) {
	entry := archetypes.Player.Spawn(e)
	components.PlayerInput.SetValue(entry, components.PlayerInputData{
		PlayerIndex:  index,
		BoundGamepad: gamepad,
	})
	components.Bindings.SetValue(entry, components.BindingsData{Bindings: bindings})
}

func keyboardBindings() []components.Binding {
	return []components.Binding{
		{Name: "move", Input: userinput.WASD()},
		{Name: "arrows", Input: userinput.ArrowKeys()},
		{Name: "stick", Input: userinput.From(userinput.LeftStick())},
		{Name: "jump", Input: userinput.From(userinput.Keyboard(devices.KeySpace))},
		{Name: "sprint", Input: userinput.From(userinput.Shift)},
		{Name: "undo", Input: userinput.Modified(userinput.Control, userinput.Keyboard(devices.KeyZ))},
		{Name: "click", Input: userinput.From(userinput.Mouse(devices.MouseButtonLeft))},
		{Name: "wheel", Input: userinput.From(userinput.MouseWheel())},
		{Name: "zoom", Input: userinput.VerticalMouseWheel()},
		{Name: "look", Input: userinput.From(userinput.MouseMotion())},
	}
}

func gamepadBindings() []components.Binding {
	return []components.Binding{
		{Name: "move", Input: userinput.DPad()},
		{Name: "aim", Input: userinput.From(userinput.RightStick())},
		{Name: "face", Input: userinput.GamepadFaceButtons()},
		{Name: "steer", Input: userinput.HorizontalDPad()},
		{Name: "throttle", Input: userinput.VirtualAxis{
			Negative: userinput.GamepadButton(devices.GamepadLeftTrigger2),
			Positive: userinput.GamepadButton(devices.GamepadRightTrigger2),
		}},
		{Name: "start", Input: userinput.From(userinput.GamepadButton(devices.GamepadStart))},
	}
}

const (
	toolSave = iota
	toolReset
)

func toolBindings() []components.Binding {
	return []components.Binding{
		toolSave:  {Name: "save", Input: userinput.Modified(userinput.Control, userinput.Keyboard(devices.KeyS))},
		toolReset: {Name: "reset", Input: userinput.From(userinput.Keyboard(devices.KeyF9))},
	}
}

// updateTools runs the inspector's own shortcuts.
func updateTools(e *ecs.ECS) {
	components.Bindings.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(components.PlayerInput) {
			return
		}
		states := components.Bindings.Get(entry).States
		if len(states) <= toolReset {
			return
		}
		if states[toolSave].JustPressed {
			if err := systems.SaveSettings(systems.CurrentSettings()); err != nil {
				logger.Errorf("save settings: %v", err)
			}
		}
		if states[toolReset].JustPressed {
			systems.GetOrCreateDevices(e.World).ResetInputs()
			logger.Info("device state reset")
		}
	})
}
