package core

import (
	"sort"
	"sync"
)

// Registry is the process-wide session state: the username map and the set
// of all live sessions, pre-login ones included. One mutex guards both; the
// lock is held only for map operations, never across a network write.
type Registry struct {
	mu     sync.Mutex
	byName map[string]*Session
	live   map[*Session]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Session),
		live:   make(map[*Session]struct{}),
	}
}

// Add inserts a freshly accepted, not yet authenticated session into the
// live set.
func (r *Registry) Add(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.live[s] = struct{}{}
}

// Register claims a username for the session. Returns false without any
// mutation when the name is already held. On success the session's Name is
// set while still holding the lock, so the name map and the session field
// can never disagree.
func (r *Registry) Register(name string, s *Session) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byName[name]; taken {
		return false
	}
	r.byName[name] = s
	s.Name = name
	return true
}

// Unregister removes the session from the live set and releases its
// username if it still maps to this exact session. Idempotent, and safe on
// sessions that never logged in.
func (r *Registry) Unregister(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.live, s)
	if s.Name != "" && r.byName[s.Name] == s {
		delete(r.byName, s.Name)
	}
}

// Lookup returns the session holding the username, if any.
func (r *Registry) Lookup(name string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byName[name]
	return s, ok
}

// Usernames returns a sorted copy of all claimed usernames. Copied out so
// callers never iterate shared state, and never hold the lock during I/O.
func (r *Registry) Usernames() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Targets returns a copy of every authenticated session except exclude.
func (r *Registry) Targets(exclude *Session) []*Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	targets := make([]*Session, 0, len(r.byName))
	for _, s := range r.byName {
		if s == exclude {
			continue
		}
		targets = append(targets, s)
	}
	return targets
}

// Live returns a copy of every live session; used to close all connections
// on shutdown.
func (r *Registry) Live() []*Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	sessions := make([]*Session, 0, len(r.live))
	for s := range r.live {
		sessions = append(sessions, s)
	}
	return sessions
}

// Len reports the live session count.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.live)
}
