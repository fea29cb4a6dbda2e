// Package model holds the two observable list containers of the demo and the
// copy-in/copy-out boundary the parent uses to construct its child.
package model

import (
	"slices"

	"github.com/samber/lo"
)

// Record is a single list entry. Records are plain values and compare by value.
type Record struct {
	Name string
}

// Names projects records onto their labels, preserving order
func Names(records []Record) []string {
	return lo.Map(records, func(r Record, _ int) string {
		return r.Name
	})
}

// Records builds a list from labels
func Records(names ...string) []Record {
	return lo.Map(names, func(name string, _ int) Record {
		return Record{Name: name}
	})
}

// InOut gives fn a private copy of *v to mutate and, once fn returns, writes
// a fresh copy of the final binding back over *v. Nothing fn keeps from the
// binding aliases *v afterwards, in either direction.
func InOut[T any](v *[]T, fn func(binding *[]T)) {
	binding := slices.Clone(*v)
	fn(&binding)
	*v = slices.Clone(binding)
}
