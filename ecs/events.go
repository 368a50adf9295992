package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	EventRoomCreated   = "room_created"
	EventRoomDestroyed = "room_destroyed"
	EventObjectReaped  = "object_reaped"
	EventPhaseShifted  = "phase_shifted"
)

// EntityEvent is the payload for entity-scoped events.
type EntityEvent struct {
	Entity Entity
	Room   Entity
}

// EventQueue is a simple FIFO queue. Systems later in the schedule may
// drain events pushed by earlier systems; anything left is flushed at
// the end of the tick.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
