package devices

// EventLog is the read-only view of an append-only event queue. Every event
// sent has an id one greater than the previous one. Checkpoint is the id of
// the first event sent after the log was last updated.
type EventLog[T any] interface {
	Checkpoint() int
	Since(id int) (events []T, next int)
}

// Events is a double-buffered event queue. Update moves the current buffer
// to the previous one and drops what was there, so an event stays readable
// for two ticks.
type Events[T any] struct {
	older, newer           []T
	olderStart, newerStart int
	count                  int
}

func NewEvents[T any]() *Events[T] {
	return &Events[T]{}
}

func (e *Events[T]) Send(event T) {
	e.newer = append(e.newer, event)
	e.count++
}

// Update ends a tick. Call once per tick.
func (e *Events[T]) Update() {
	e.older, e.newer = e.newer, e.older[:0]
	e.olderStart = e.newerStart
	e.newerStart = e.count
}

// Clear drops every stored event. Ids keep increasing.
func (e *Events[T]) Clear() {
	e.older = e.older[:0]
	e.newer = e.newer[:0]
	e.olderStart = e.count
	e.newerStart = e.count
}

// Len is the number of stored events across both buffers.
func (e *Events[T]) Len() int {
	return len(e.older) + len(e.newer)
}

func (e *Events[T]) Checkpoint() int {
	return e.newerStart
}

// Since returns a copy of the stored events with an id of at least id, and
// the id the next event will get.
func (e *Events[T]) Since(id int) ([]T, int) {
	var out []T
	for i, ev := range e.older {
		if e.olderStart+i >= id {
			out = append(out, ev)
		}
	}
	for i, ev := range e.newer {
		if e.newerStart+i >= id {
			out = append(out, ev)
		}
	}
	return out, e.count
}

// EventReader is a cursor into an EventLog. Readers are independent of each
// other: reading through one never hides events from another.
type EventReader[T any] struct {
	next int
}

// NewReader returns a reader positioned at the log's checkpoint.
func NewReader[T any](log EventLog[T]) *EventReader[T] {
	return &EventReader[T]{next: log.Checkpoint()}
}

// Read returns the events the reader has not seen yet and advances past them.
func (r *EventReader[T]) Read(log EventLog[T]) []T {
	events, next := log.Since(r.next)
	r.next = next
	return events
}
