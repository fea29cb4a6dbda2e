package view

import (
	"github.com/sasha-s/go-deadlock"
)

// StateStore holds state objects keyed by view identity. An entry is created
// the first time its identity asks for it and reused until released.
type StateStore struct {
	mutex   deadlock.Mutex
	entries map[Identity]any
}

// NewStateStore creates an empty store
func NewStateStore() *StateStore {
	return &StateStore{entries: make(map[Identity]any)}
}

// StateObject returns the state stored for id, calling factory to create it
// only if none exists yet. factory runs without the store locked, so it may
// itself ask the store for nested state. When callers race on a new identity,
// every one of them gets the value that was stored first.
func StateObject[T any](s *StateStore, id Identity, factory func() T) T {
	s.mutex.Lock()
	existing, ok := s.entries[id]
	s.mutex.Unlock()

	if ok {
		if value, ok := existing.(T); ok {
			log.WithField("identity", id).Trace("state object reused")
			return value
		}
		log.WithField("identity", id).Warnf("state object has type %T, replacing", existing)
	}

	value := factory()

	s.mutex.Lock()
	// Another caller may have stored the identity while factory ran
	if raced, ok := s.entries[id]; ok {
		if stored, ok := raced.(T); ok {
			s.mutex.Unlock()
			return stored
		}
	}
	s.entries[id] = value
	s.mutex.Unlock()

	log.WithField("identity", id).Debug("state object created")
	return value
}

// Has reports whether id has stored state
func (s *StateStore) Has(id Identity) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	_, ok := s.entries[id]
	return ok
}

// Len returns the number of stored entries
func (s *StateStore) Len() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return len(s.entries)
}

// Release drops the state of id and every identity nested below it
func (s *StateStore) Release(id Identity) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for key := range s.entries {
		if key.Within(id) {
			delete(s.entries, key)
		}
	}
}
