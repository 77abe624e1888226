package devices

// Axes is the read-only view of an analog axis table. The bool result is
// false when the device has no reading for that control.
type Axes[T comparable] interface {
	Get(axis T) (float32, bool)
}

const (
	AxisMin float32 = -1.0
	AxisMax float32 = 1.0
)

// Axis stores the latest position of analog controls of one kind.
type Axis[T comparable] struct {
	positions map[T]float32
}

func NewAxis[T comparable]() *Axis[T] {
	return &Axis[T]{positions: make(map[T]float32)}
}

// Set stores a position clamped to [AxisMin, AxisMax] and returns the
// previous position, if any.
func (a *Axis[T]) Set(axis T, position float32) (float32, bool) {
	prev, ok := a.positions[axis]
	a.positions[axis] = min(max(position, AxisMin), AxisMax)
	return prev, ok
}

func (a *Axis[T]) Get(axis T) (float32, bool) {
	v, ok := a.positions[axis]
	return v, ok
}

// Remove forgets the position of one control.
func (a *Axis[T]) Remove(axis T) {
	delete(a.positions, axis)
}

// Clear forgets every position.
func (a *Axis[T]) Clear() {
	clear(a.positions)
}
