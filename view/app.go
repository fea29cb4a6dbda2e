package view

import (
	"fmt"
	"strings"

	"github.com/davidroman0O/firm-inout"
	"github.com/davidroman0O/firm-inout/config"
	"github.com/davidroman0O/firm-inout/model"
)

// Screen is the composed presentation surface: one region per container
type Screen struct {
	Parent Frame
	Child  Frame
}

// String renders the screen as plain text, one label per line
func (s Screen) String() string {
	var b strings.Builder
	for _, frame := range []Frame{s.Parent, s.Child} {
		fmt.Fprintln(&b, frame.Title)
		fmt.Fprintf(&b, "[%s]\n", frame.Action)
		for _, label := range frame.Labels {
			fmt.Fprintf(&b, "  %s\n", label)
		}
	}
	return b.String()
}

// App wires the state store, the renderer and the two views together
type App struct {
	actions  config.ActionsConfig
	id       Identity
	store    *StateStore
	renderer *Renderer
	owner    *firm.Owner
	dispose  func()
	parent   *ParentView
}

// NewApp creates an app whose parent view lives under a fresh identity
func NewApp(actions config.ActionsConfig) *App {
	return NewAppWithIdentity(actions, NewStateStore(), NewIdentity())
}

// NewAppWithIdentity lets the caller share a store and pin the identity
func NewAppWithIdentity(actions config.ActionsConfig, store *StateStore, id Identity) *App {
	return &App{
		actions:  actions,
		id:       id,
		store:    store,
		renderer: NewRenderer(),
	}
}

// Start mounts the views and runs the first render pass.
// The view models are fully constructed before anything is drawn.
func (a *App) Start() Screen {
	if a.dispose == nil {
		a.dispose = firm.Root(func(owner *firm.Owner) firm.CleanUp {
			a.owner = owner
			return nil
		})
		a.mount()
	}
	a.renderer.Pass()
	return a.Screen()
}

// Reconstruct rebuilds the view values as an owner re-render would. State is
// looked up by identity, so earlier mutations survive.
func (a *App) Reconstruct() Screen {
	if a.dispose == nil {
		return a.Start()
	}
	a.mount()
	a.renderer.Pass()
	return a.Screen()
}

func (a *App) mount() {
	a.parent = NewParentView(a.store, a.id)
	parentOwner := a.renderer.Mount(a.owner, a.parent)
	a.renderer.Mount(parentOwner, a.parent.ChildView())
}

// Press runs an action trigger and the render pass that follows it
func (a *App) Press(action Action) Screen {
	if a.parent == nil {
		a.Start()
	}

	switch action {
	case AddToParent:
		a.parent.ViewModel().Append(model.Record{Name: a.actions.ParentLabel})
	case AddToChild:
		a.parent.ViewModel().Child().Append(model.Record{Name: a.actions.ChildLabel})
	default:
		log.Warnf("ignoring %s", action)
	}

	log.WithField("action", action.String()).Debug("action pressed")
	a.renderer.Pass()
	return a.Screen()
}

// Screen returns the last drawn frames
func (a *App) Screen() Screen {
	if a.parent == nil {
		return Screen{}
	}
	parent, _ := a.renderer.Frame(a.parent.Identity())
	child, _ := a.renderer.Frame(a.parent.ChildView().Identity())
	return Screen{Parent: parent, Child: child}
}

// Stop unmounts both views and releases the state owned by the app's identity
func (a *App) Stop() {
	if a.dispose == nil {
		return
	}
	a.dispose()
	a.dispose = nil
	a.owner = nil
	a.parent = nil
	a.store.Release(a.id)
}

// Identity returns the identity of the parent view
func (a *App) Identity() Identity {
	return a.id
}

// Renderer exposes the renderer for inspection
func (a *App) Renderer() *Renderer {
	return a.renderer
}

// ParentView returns the current parent view value, nil before Start
func (a *App) ParentView() *ParentView {
	return a.parent
}
