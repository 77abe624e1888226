package devices

// Buttons is the read-only view of a digital button set.
type Buttons[T comparable] interface {
	Pressed(button T) bool
}

// ButtonInput tracks which buttons of one kind are held, plus the buttons
// that changed state during the current tick.
type ButtonInput[T comparable] struct {
	pressed      map[T]struct{}
	justPressed  map[T]struct{}
	justReleased map[T]struct{}
}

func NewButtonInput[T comparable]() *ButtonInput[T] {
	return &ButtonInput[T]{
		pressed:      make(map[T]struct{}),
		justPressed:  make(map[T]struct{}),
		justReleased: make(map[T]struct{}),
	}
}

// Press marks a button held. Pressing a held button is a no-op.
func (b *ButtonInput[T]) Press(button T) {
	if _, ok := b.pressed[button]; ok {
		return
	}
	b.pressed[button] = struct{}{}
	b.justPressed[button] = struct{}{}
}

// Release marks a button up. Releasing a button that is not held is a no-op.
func (b *ButtonInput[T]) Release(button T) {
	if _, ok := b.pressed[button]; !ok {
		return
	}
	delete(b.pressed, button)
	b.justReleased[button] = struct{}{}
}

// ReleaseAll releases every held button.
func (b *ButtonInput[T]) ReleaseAll() {
	for button := range b.pressed {
		b.justReleased[button] = struct{}{}
	}
	clear(b.pressed)
}

func (b *ButtonInput[T]) Pressed(button T) bool {
	_, ok := b.pressed[button]
	return ok
}

func (b *ButtonInput[T]) JustPressed(button T) bool {
	_, ok := b.justPressed[button]
	return ok
}

func (b *ButtonInput[T]) JustReleased(button T) bool {
	_, ok := b.justReleased[button]
	return ok
}

// ClearJust forgets this tick's transitions. Call once per tick.
func (b *ButtonInput[T]) ClearJust() {
	clear(b.justPressed)
	clear(b.justReleased)
}

// Reset drops all state for one button without recording a transition.
func (b *ButtonInput[T]) Reset(button T) {
	delete(b.pressed, button)
	delete(b.justPressed, button)
	delete(b.justReleased, button)
}

// GetPressed returns the held buttons in no particular order.
func (b *ButtonInput[T]) GetPressed() []T {
	out := make([]T, 0, len(b.pressed))
	for button := range b.pressed {
		out = append(out, button)
	}
	return out
}
