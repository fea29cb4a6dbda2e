package view

import (
	"github.com/davidroman0O/firm-inout/model"
)

// Action is one of the two triggers on the presentation surface
type Action int

const (
	AddToParent Action = iota
	AddToChild
)

func (a Action) String() string {
	switch a {
	case AddToParent:
		return "Add to ParentViewModel"
	case AddToChild:
		return "Add to ChildViewModel"
	default:
		return "unknown action"
	}
}

// ParentView owns its ParentViewModel through the state store and shows the
// parent list. Only the parent list invalidates it.
type ParentView struct {
	id    Identity
	vm    *model.ParentViewModel
	child *ChildView
}

// NewParentView builds the view value for id. The view model is created the
// first time id is seen and reused on every later construction.
func NewParentView(store *StateStore, id Identity) *ParentView {
	vm := StateObject(store, id, model.NewParentViewModel)

	log.WithField("identity", id).Debug("ParentView init")
	return &ParentView{
		id:    id,
		vm:    vm,
		child: NewChildView(id.Child("child"), vm.Child()),
	}
}

func (v *ParentView) Name() string         { return "ParentView" }
func (v *ParentView) Identity() Identity   { return v.id }
func (v *ParentView) Container() Container { return v.vm }

// Render draws the parent list
func (v *ParentView) Render(items []model.Record) Frame {
	return Frame{Title: v.Name(), Action: AddToParent.String(), Labels: model.Names(items)}
}

// ViewModel returns the owned view model
func (v *ParentView) ViewModel() *model.ParentViewModel {
	return v.vm
}

// ChildView returns the nested view for the child view model
func (v *ParentView) ChildView() *ChildView {
	return v.child
}

// ChildView observes a ChildViewModel it does not own
type ChildView struct {
	id Identity
	vm *model.ChildViewModel
}

// NewChildView builds a view over vm
func NewChildView(id Identity, vm *model.ChildViewModel) *ChildView {
	log.WithField("identity", id).Debug("ChildView init")
	return &ChildView{id: id, vm: vm}
}

func (v *ChildView) Name() string         { return "ChildView" }
func (v *ChildView) Identity() Identity   { return v.id }
func (v *ChildView) Container() Container { return v.vm }

// Render draws the child list
func (v *ChildView) Render(items []model.Record) Frame {
	return Frame{Title: v.Name(), Action: AddToChild.String(), Labels: model.Names(items)}
}
