// Package runtime hosts the shared-state machinery of the server: the
// active-session registry, per-entity access locks, and queue dispatch.
// It orchestrates delivery without containing domain rules.
package runtime

import (
	"sync"

	"moonlight/contract"
)

// Registry is the directory of active sessions. It maps a user signature to
// the sink of its live connection and is the single place a connection is
// resolved from, regardless of how many groups the user belongs to.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]contract.EventSink
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]contract.EventSink)}
}

// Subscribe registers a participant's active connection. A reconnect simply
// replaces the previous sink; the stale connection's stream ends on its own.
func (r *Registry) Subscribe(signature string, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[signature] = sink
}

// Unsubscribe drops a participant's session so no entry leaks after
// disconnect.
func (r *Registry) Unsubscribe(signature string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, signature)
}

// GetSink resolves the live connection of a user, if any.
func (r *Registry) GetSink(signature string) (contract.EventSink, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sink, ok := r.sessions[signature]
	return sink, ok
}

// ActiveUsers lists the signatures with a live connection, in no particular
// order.
func (r *Registry) ActiveUsers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]string, 0, len(r.sessions))
	for signature := range r.sessions {
		users = append(users, signature)
	}
	return users
}
