package model

import (
	"slices"

	"github.com/davidroman0O/firm-inout"
)

// itemList is the observable list shared by both view models.
// Every mutation notifies subscribers, even when the new list is equal to the old one.
type itemList struct {
	items *firm.Signal[[]Record]
}

func newItemList(initial []Record) itemList {
	items := firm.NewSignal(slices.Clone(initial))
	items.SetEqualityFn(firm.NeverEqual[[]Record])
	return itemList{items: items}
}

// Items returns a snapshot of the list. Callers may modify it freely.
func (l itemList) Items() []Record {
	return slices.Clone(l.items.Get())
}

// Len returns the number of records
func (l itemList) Len() int {
	return len(l.items.Get())
}

// Append adds r to the end of the list and notifies subscribers
func (l itemList) Append(r Record) {
	l.items.Update(func(current []Record) []Record {
		next := make([]Record, 0, len(current)+1)
		next = append(next, current...)
		return append(next, r)
	})
}

// Replace swaps the whole list and notifies subscribers
func (l itemList) Replace(records []Record) {
	l.items.Set(slices.Clone(records))
}

// Subscribe registers fn to run synchronously after every mutation.
// fn receives its own snapshot of the list.
func (l itemList) Subscribe(fn func([]Record)) func() {
	return l.items.Subscribe(snapshotting(fn))
}

// SubscribeOwned is Subscribe bounded by owner's lifetime
func (l itemList) SubscribeOwned(owner *firm.Owner, fn func([]Record)) func() {
	return l.items.SubscribeOwned(owner, snapshotting(fn))
}

func snapshotting(fn func([]Record)) func([]Record) {
	return func(items []Record) {
		fn(slices.Clone(items))
	}
}

// Subscribers returns the number of registered listeners
func (l itemList) Subscribers() int {
	return l.items.Listeners()
}
