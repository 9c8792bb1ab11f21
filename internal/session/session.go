// Package session tracks the players connected to a shared server and fans
// out events between them.
package session

import (
	"sync"

	"github.com/google/uuid"
)

// ID uniquely identifies a connected session.
type ID string

// Event is delivered to sessions through their handle.
type Event interface {
	sessionEvent()
}

// RecordEvent announces a new server-wide best score.
type RecordEvent struct {
	User  string
	Score int
}

func (RecordEvent) sessionEvent() {}

// Handle is one connected player. Events are buffered; when the buffer is
// full the oldest event is dropped so senders never block.
type Handle struct {
	id       ID
	user     string
	events   chan Event
	done     chan struct{}
	doneOnce sync.Once
}

// NewHandle creates a handle with a fresh ID.
func NewHandle(user string, eventBufferSize int) *Handle {
	if eventBufferSize < 1 {
		eventBufferSize = 16
	}
	return &Handle{
		id:     ID(uuid.NewString()),
		user:   user,
		events: make(chan Event, eventBufferSize),
		done:   make(chan struct{}),
	}
}

// ID returns the session identifier.
func (h *Handle) ID() ID {
	return h.id
}

// User returns the name the player connected with.
func (h *Handle) User() string {
	return h.user
}

// Send queues an event for the session.
func (h *Handle) Send(evt Event) {
	select {
	case <-h.done:
		return
	default:
	}

	select {
	case h.events <- evt:
	default:
		// Full: drop the oldest and retry once
		select {
		case <-h.events:
		default:
		}
		select {
		case h.events <- evt:
		default:
		}
	}
}

// Events returns the channel the UI reads events from.
func (h *Handle) Events() <-chan Event {
	return h.events
}

// Done is closed when the session ends.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Close ends the session. Safe to call more than once.
func (h *Handle) Close() {
	h.doneOnce.Do(func() {
		close(h.done)
	})
}

// Registry tracks live sessions. Safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	sessions map[ID]*Handle
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[ID]*Handle)}
}

// Register adds a session.
func (r *Registry) Register(h *Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[h.ID()] = h
}

// Unregister removes a session.
func (r *Registry) Unregister(id ID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Get looks up a session by ID.
func (r *Registry) Get(id ID) (*Handle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.sessions[id]
	return h, ok
}

// Count returns the number of live sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Broadcast sends evt to every session except from and returns how many
// sessions it was sent to.
func (r *Registry) Broadcast(from ID, evt Event) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for id, h := range r.sessions {
		if id == from {
			continue
		}
		h.Send(evt)
		n++
	}
	return n
}
