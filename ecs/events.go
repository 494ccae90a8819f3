package ecs

// EventType names an event payload kind.
type EventType string

const (
	// EventContact carries a ContactEvent raised by the physics step.
	EventContact EventType = "contact"
)

// Event is a generic ECS event payload.
type Event struct {
	Type EventType
	Data any
}

// ContactEvent reports that the bodies of A and B touched or overlapped
// during the last physics step. Order is whatever the engine reported.
type ContactEvent struct {
	A Entity
	B Entity
}

// EventQueue is a simple FIFO queue.
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

// PushContact is shorthand for pushing an EventContact.
func (q *EventQueue) PushContact(a, b Entity) {
	q.Push(Event{Type: EventContact, Data: ContactEvent{A: a, B: b}})
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

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
