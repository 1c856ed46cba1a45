package event

import "github.com/lixenwraith/vi-pong/parameter"

// EventQueue buffers events emitted during a tick for the host to drain after it
// Owned by the tick goroutine; not safe for concurrent use
// When full, the oldest pending event is dropped
type EventQueue struct {
	pending []GameEvent
	spare   []GameEvent
	dropped uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{
		pending: make([]GameEvent, 0, parameter.EventQueueSize),
		spare:   make([]GameEvent, 0, parameter.EventQueueSize),
	}
}

// Push appends an event, evicting the oldest one at capacity
func (eq *EventQueue) Push(ev GameEvent) {
	if len(eq.pending) == parameter.EventQueueSize {
		copy(eq.pending, eq.pending[1:])
		eq.pending = eq.pending[:len(eq.pending)-1]
		eq.dropped++
	}
	eq.pending = append(eq.pending, ev)
}

// Consume returns pending events in FIFO order and empties the queue
// The returned slice is valid until the next Consume
func (eq *EventQueue) Consume() []GameEvent {
	if len(eq.pending) == 0 {
		return nil
	}
	out := eq.pending
	eq.pending, eq.spare = eq.spare[:0], out
	return out
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	return len(eq.pending)
}

// Dropped returns how many events were evicted by overflow since creation
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped
}
