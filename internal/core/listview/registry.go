package listview

import (
	"sync"
	"time"
)

type closer interface {
	Close()
}

type entry struct {
	view     closer
	lastUsed time.Time
}

// Registry keeps one view per session and screen so that a new fetch can
// cancel the previous one for the same user.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]map[string]*entry
	now      func() time.Time
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]map[string]*entry),
		now:      time.Now,
	}
}

// Open returns the session's view called name, creating it with create on first use.
func Open[T any](r *Registry, sessionID, name string, create func() *View[T]) *View[T] {
	r.mu.Lock()
	defer r.mu.Unlock()

	views, ok := r.sessions[sessionID]
	if !ok {
		views = make(map[string]*entry)
		r.sessions[sessionID] = views
	}

	if e, ok := views[name]; ok {
		if v, ok := e.view.(*View[T]); ok {
			e.lastUsed = r.now()
			return v
		}
		e.view.Close()
	}

	v := create()
	views[name] = &entry{view: v, lastUsed: r.now()}
	return v
}

// CloseSession tears down every view of a session.
func (r *Registry) CloseSession(sessionID string) {
	r.mu.Lock()
	views := r.sessions[sessionID]
	delete(r.sessions, sessionID)
	r.mu.Unlock()

	for _, e := range views {
		e.view.Close()
	}
}

// Sweep closes views idle for longer than maxIdle and returns how many were closed.
func (r *Registry) Sweep(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	closed := 0
	cutoff := r.now().Add(-maxIdle)
	for sid, views := range r.sessions {
		for name, e := range views {
			if e.lastUsed.Before(cutoff) {
				e.view.Close()
				delete(views, name)
				closed++
			}
		}
		if len(views) == 0 {
			delete(r.sessions, sid)
		}
	}
	return closed
}

// Len returns the number of open views.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, views := range r.sessions {
		n += len(views)
	}
	return n
}
