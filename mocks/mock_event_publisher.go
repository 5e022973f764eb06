package mocks

import (
	"sync"
)

// Published is one event captured by EventRecorder.
type Published struct {
	Event   string
	Payload interface{}
}

// EventRecorder captures published events for assertions.
type EventRecorder struct {
	mu     sync.Mutex
	Events []Published
}

func (r *EventRecorder) Publish(event string, payload interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, Published{Event: event, Payload: payload})
}
