package firm

import (
	"reflect"

	"github.com/sasha-s/go-deadlock"
)

// CleanUp is returned by root functions and run when their owner is disposed
type CleanUp func()

// Owner tracks disposables for a piece of reactive scope, similar to Solid.js createRoot.
// Owners form a tree: disposing an owner disposes its children first.
type Owner struct {
	mutex       deadlock.Mutex
	parent      *Owner
	children    []*Owner
	disposables []func()
	disposed    bool
}

// Root creates a new root owner, runs fn inside it and returns a dispose function
func Root(fn func(owner *Owner) CleanUp) func() {
	owner := &Owner{}

	if cleanup := fn(owner); cleanup != nil {
		owner.OnCleanup(cleanup)
	}

	return owner.Dispose
}

// Child creates an owner whose lifetime is bounded by o
func (o *Owner) Child() *Owner {
	child := &Owner{parent: o}

	o.mutex.Lock()
	defer o.mutex.Unlock()

	if o.disposed {
		// A child of a dead owner is born dead
		child.disposed = true
		return child
	}
	o.children = append(o.children, child)
	return child
}

// OnCleanup registers a function to run when the owner is disposed.
// Registering on an already disposed owner runs fn immediately.
func (o *Owner) OnCleanup(fn func()) {
	if fn == nil {
		return
	}

	o.mutex.Lock()
	if o.disposed {
		o.mutex.Unlock()
		fn()
		return
	}
	o.disposables = append(o.disposables, fn)
	o.mutex.Unlock()
}

// Disposed reports whether Dispose has run
func (o *Owner) Disposed() bool {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	return o.disposed
}

// Dispose recursively disposes the owner and all its children
func (o *Owner) Dispose() {
	o.mutex.Lock()
	if o.disposed {
		o.mutex.Unlock()
		return
	}
	o.disposed = true

	// Copy children to avoid modification during iteration
	children := make([]*Owner, len(o.children))
	copy(children, o.children)
	o.children = nil

	disposables := o.disposables
	o.disposables = nil
	o.mutex.Unlock()

	for _, child := range children {
		child.Dispose()
	}

	// Run all disposables in reverse order (LIFO)
	for i := len(disposables) - 1; i >= 0; i-- {
		disposables[i]()
	}

	if parent := o.parent; parent != nil {
		parent.mutex.Lock()
		for i, child := range parent.children {
			if child == o {
				parent.children = append(parent.children[:i], parent.children[i+1:]...)
				break
			}
		}
		parent.mutex.Unlock()
	}
}

type listener[T any] struct {
	id uint64
	fn func(T)
}

// Signal represents a reactive value that can be observed for changes
type Signal[T any] struct {
	value      T
	listeners  []listener[T]
	nextID     uint64
	mutex      deadlock.RWMutex
	equalityFn func(T, T) bool
}

// NewSignal creates a new signal with the provided initial value
func NewSignal[T any](initialValue T) *Signal[T] {
	return &Signal[T]{
		value: initialValue,
		equalityFn: func(a, b T) bool {
			return reflect.DeepEqual(a, b)
		},
	}
}

// NeverEqual is an equality function that makes every Set notify listeners
func NeverEqual[T any](T, T) bool { return false }

// SetEqualityFn sets a custom equality function for the signal
func (s *Signal[T]) SetEqualityFn(fn func(T, T) bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.equalityFn = fn
}

// Get returns the current value of the signal
func (s *Signal[T]) Get() T {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.value
}

// Set updates the signal's value and notifies listeners if the value changed.
// Listeners run synchronously on the calling goroutine, outside the lock.
func (s *Signal[T]) Set(newValue T) {
	s.mutex.Lock()
	if s.equalityFn != nil && s.equalityFn(s.value, newValue) {
		s.mutex.Unlock()
		return
	}
	s.value = newValue

	// Make a copy of listeners to avoid holding the lock during callbacks
	listeners := make([]listener[T], len(s.listeners))
	copy(listeners, s.listeners)
	s.mutex.Unlock()

	for _, l := range listeners {
		l.fn(newValue)
	}
}

// Update allows updating the signal based on its current value
func (s *Signal[T]) Update(fn func(T) T) {
	s.Set(fn(s.Get()))
}

// Subscribe adds a listener to the signal and returns a function removing it
func (s *Signal[T]) Subscribe(fn func(T)) func() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listener[T]{id: id, fn: fn})

	return func() {
		s.mutex.Lock()
		defer s.mutex.Unlock()

		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				break
			}
		}
	}
}

// SubscribeOwned subscribes fn and removes it again when owner is disposed
func (s *Signal[T]) SubscribeOwned(owner *Owner, fn func(T)) func() {
	unsubscribe := s.Subscribe(fn)
	owner.OnCleanup(unsubscribe)
	return unsubscribe
}

// Listeners returns the number of active listeners
func (s *Signal[T]) Listeners() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.listeners)
}
