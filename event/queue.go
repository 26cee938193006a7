package event

import "github.com/lixenwraith/pitch-fighter/parameter"

// EventQueue is a fixed-size ring buffer for game events
// Thread-Safety: none, producer and consumer are the game loop goroutine
//
// Overflow: Oldest events overwritten when full
type EventQueue struct {
	events [parameter.EventQueueSize]GameEvent
	head   uint64 // Read index
	tail   uint64 // Write index
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, advancing head when overwriting unread events
func (eq *EventQueue) Push(ev GameEvent) {
	eq.events[eq.tail&parameter.EventBufferMask] = ev
	eq.tail++
	if eq.tail-eq.head > parameter.EventQueueSize {
		eq.head = eq.tail - parameter.EventQueueSize
	}
}

// Consume returns all pending events in FIFO order and advances head
func (eq *EventQueue) Consume() []GameEvent {
	n := eq.tail - eq.head
	if n == 0 {
		return nil
	}
	result := make([]GameEvent, 0, n)
	for i := eq.head; i < eq.tail; i++ {
		result = append(result, eq.events[i&parameter.EventBufferMask])
	}
	eq.head = eq.tail
	return result
}

// Len returns pending event count
func (eq *EventQueue) Len() int {
	return int(eq.tail - eq.head)
}

// Clear drops all pending events
func (eq *EventQueue) Clear() {
	eq.head = eq.tail
}
