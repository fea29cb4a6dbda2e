// Package view binds the view models to a minimal rendering layer: views
// subscribe to one container each, a Renderer redraws only invalidated views,
// and a StateStore keeps owned state alive across view reconstruction.
package view

import (
	"strings"

	"github.com/google/uuid"
)

// Identity names a logical view across reconstructions of its value
type Identity string

// NewIdentity returns a fresh, process-unique identity
func NewIdentity() Identity {
	return Identity(uuid.NewString())
}

// Child derives the identity of a nested view
func (id Identity) Child(name string) Identity {
	return id + "/" + Identity(name)
}

// Within reports whether id is other or nested below it
func (id Identity) Within(other Identity) bool {
	return id == other || strings.HasPrefix(string(id), string(other)+"/")
}
