package model

import (
	"github.com/davidroman0O/firm-inout/logging"
)

// Labels used by the construction sequence
const (
	FirstName  = "1"
	ChildName  = "3child"
	SecondName = "2"
)

var log = logging.NewLogger("model")

// ChildViewModel owns its own list. It is seeded once from the snapshot handed
// across the InOut boundary and diverges from the parent afterwards.
type ChildViewModel struct {
	itemList
}

// NewChildViewModel appends ChildName to the caller's list through a
// copy-in/copy-out binding and stores its own copy of that binding. On return
// *items carries the append too, but the two lists share no storage.
func NewChildViewModel(items *[]Record) *ChildViewModel {
	c := &ChildViewModel{}

	InOut(items, func(binding *[]Record) {
		*binding = append(*binding, Record{Name: ChildName})
		c.itemList = newItemList(*binding)
	})

	log.WithField("items", Names(c.Items())).Debug("ChildViewModel init")
	return c
}

// ParentViewModel owns its own list and the one ChildViewModel it created
type ParentViewModel struct {
	itemList
	child *ChildViewModel
}

// NewParentViewModel runs the construction sequence:
// ["1"] goes into the child boundary, comes back as ["1","3child"], then "2"
// is appended and the result becomes the parent's list.
func NewParentViewModel() *ParentViewModel {
	p := &ParentViewModel{itemList: newItemList(nil)}

	var temp []Record
	temp = append(temp, Record{Name: FirstName})
	p.child = NewChildViewModel(&temp)
	temp = append(temp, Record{Name: SecondName})

	p.Replace(temp)

	log.WithField("items", Names(p.Items())).Debug("ParentViewModel init")
	return p
}

// Child returns the child view model. It never changes after construction.
func (p *ParentViewModel) Child() *ChildViewModel {
	return p.child
}
