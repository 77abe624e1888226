package components

import (
	"github.com/Beewitchy/leafwing-input-manager/userinput"
	"github.com/yohamta/donburi"
)

// Binding names one user input watched for a player.
type Binding struct {
	Name  string
	Input userinput.UserInput
}

// BindingState is the evaluated state of a binding for one tick.
type BindingState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this tick
	JustReleased bool // Released this tick
	Value        float32
	Axis         userinput.DualAxisData
	HasAxis      bool
}

// BindingsData stores a player's bindings and their state. States is
// index-aligned with Bindings.
type BindingsData struct {
	Bindings []Binding
	States   []BindingState
}

var Bindings = donburi.NewComponentType[BindingsData]()
