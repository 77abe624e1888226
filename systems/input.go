package systems

import (
	"github.com/Beewitchy/leafwing-input-manager/components"
	"github.com/Beewitchy/leafwing-input-manager/streams"
	"github.com/Beewitchy/leafwing-input-manager/userinput"
	"github.com/yohamta/donburi"
)

// GetOrCreateDevices returns the singleton device containers, creating
// them on first use.
func GetOrCreateDevices(world donburi.World) *streams.MutableInputStreams {
	entry, ok := components.Devices.First(world)
	if !ok {
		entry = world.Entry(world.Create(components.Devices))
		*components.Devices.Get(entry) = *streams.NewMutableInputStreams(nil)
	}
	return components.Devices.Get(entry)
}

// StreamsFor returns the read-only view of the devices, pinned to the
// player's bound gamepad when entry has one.
func StreamsFor(world donburi.World, entry *donburi.Entry) *streams.InputStreams {
	return streamsFor(GetOrCreateDevices(world), entry)
}

func streamsFor(devices *streams.MutableInputStreams, entry *donburi.Entry) *streams.InputStreams {
	s := devices.Streams()
	if entry != nil && entry.HasComponent(components.PlayerInput) {
		s.AssociatedGamepad = components.PlayerInput.Get(entry).BoundGamepad
	}
	return s
}

// UpdateBindings evaluates every player's bindings against this tick's
// device state. Must run AFTER device capture and BEFORE anything reading
// BindingsData.States.
func UpdateBindings(world donburi.World) {
	devices := GetOrCreateDevices(world)

	components.Bindings.Each(world, func(entry *donburi.Entry) {
		data := components.Bindings.Get(entry)
		inputs := make([]userinput.UserInput, 0, len(data.Bindings))
		for _, b := range data.Bindings {
			if b.Input != nil {
				inputs = append(inputs, b.Input)
			}
		}
		prepared := streams.FromInputs(streamsFor(devices, entry), inputs...)
		data.States = evaluateBindings(prepared, data.Bindings, data.States)
	})
}

// evaluateBindings computes each binding's state; previous carries the
// last tick's states so transitions can be derived.
func evaluateBindings(p *streams.PreparedInputStreams, bindings []components.Binding, previous []components.BindingState) []components.BindingState {
	states := make([]components.BindingState, len(bindings))
	for i, b := range bindings {
		if b.Input == nil {
			continue
		}
		var wasPressed bool
		if i < len(previous) {
			wasPressed = previous[i].Pressed
		}
		pressed := p.Pressed(b.Input)
		axis, hasAxis := p.AxisPair(b.Input)
		states[i] = components.BindingState{
			Pressed:      pressed,
			JustPressed:  pressed && !wasPressed,
			JustReleased: !pressed && wasPressed,
			Value:        p.Value(b.Input),
			Axis:         axis,
			HasAxis:      hasAxis,
		}
	}
	return states
}
