package view

import (
	"sync"
	"time"
)

// session pairs a machine with the last time it was touched.
type session struct {
	m        *Machine
	lastSeen time.Time
}

// Registry owns one Machine per session id. Idle sessions are evicted after
// ttl by an opportunistic sweep that runs every sweepEvery lookups.
// Registry is safe for concurrent use.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration

	sweepEvery uint64
	lookups    uint64
	now        func() time.Time
}

// NewRegistry returns a registry whose sessions expire after ttl of
// inactivity. ttl <= 0 selects 30 minutes.
func NewRegistry(ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Registry{
		sessions:   make(map[string]*session),
		ttl:        ttl,
		sweepEvery: 1000,
		now:        time.Now,
	}
}

// Do runs fn against the session's machine under the registry lock, creating
// the session on first use, and returns fn's error.
func (r *Registry) Do(id string, fn func(*Machine) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r.get(id))
}

// Snapshot returns the session's current state without running a transition.
func (r *Registry) Snapshot(id string) State {
	var st State
	_ = r.Do(id, func(m *Machine) error {
		st = m.State()
		return nil
	})
	return st
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// get must be called with r.mu held. The sweep runs before the lookup so a
// stale session is replaced rather than refreshed.
func (r *Registry) get(id string) *Machine {
	now := r.now()

	r.lookups++
	if r.lookups >= r.sweepEvery {
		for k, s := range r.sessions {
			if now.Sub(s.lastSeen) >= r.ttl {
				delete(r.sessions, k)
			}
		}
		r.lookups = 0
	}

	if s, ok := r.sessions[id]; ok {
		if now.Sub(s.lastSeen) < r.ttl {
			s.lastSeen = now
			return s.m
		}
		delete(r.sessions, id)
	}
	s := &session{m: NewMachine(), lastSeen: now}
	r.sessions[id] = s
	return s.m
}
