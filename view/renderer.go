package view

import (
	"slices"
	"sort"

	"github.com/davidroman0O/firm-inout"
	"github.com/davidroman0O/firm-inout/logging"
	"github.com/davidroman0O/firm-inout/model"
)

var log = logging.NewLogger("view")

// Container is an observable list a view can subscribe to
type Container interface {
	Items() []model.Record
	SubscribeOwned(owner *firm.Owner, fn func([]model.Record)) func()
}

// View is a presentation node bound to exactly one container
type View interface {
	Name() string
	Identity() Identity
	Container() Container
	Render(items []model.Record) Frame
}

// Frame is what a view drew on its last render
type Frame struct {
	Title  string
	Action string
	Labels []string
}

type node struct {
	view    View
	owner   *firm.Owner
	sub     *Subscription
	seq     int
	frame   Frame
	renders int
	queued  bool
}

// Renderer keeps the mounted views and redraws the invalidated ones on each
// pass. All methods must be called from the UI goroutine.
type Renderer struct {
	nodes  map[Identity]*node
	dirty  []*node
	seq    int
	inPass bool
	passes int
}

// NewRenderer creates a renderer with nothing mounted
func NewRenderer() *Renderer {
	return &Renderer{nodes: make(map[Identity]*node)}
}

// Mount subscribes v to its container under parent and schedules its first
// render. The returned owner bounds the mount: disposing it, or parent,
// unsubscribes the view. Mounting an identity that is already mounted on the
// same container only swaps the view value and keeps the subscription.
func (r *Renderer) Mount(parent *firm.Owner, v View) *firm.Owner {
	id := v.Identity()
	if existing, ok := r.nodes[id]; ok {
		if existing.view.Container() == v.Container() {
			existing.view = v
			return existing.owner
		}
		existing.owner.Dispose()
	}

	r.seq++
	n := &node{
		view:  v,
		owner: parent.Child(),
		sub:   newSubscription(),
		seq:   r.seq,
	}
	r.nodes[id] = n

	v.Container().SubscribeOwned(n.owner, func([]model.Record) {
		r.notify(n)
	})
	n.sub.moveTo(Subscribed)

	n.owner.OnCleanup(func() {
		if r.nodes[id] == n {
			delete(r.nodes, id)
		}
		if n.queued {
			r.dirty = slices.DeleteFunc(r.dirty, func(queued *node) bool { return queued == n })
			n.queued = false
		}
		n.sub.moveTo(Unsubscribed)
		log.WithField("identity", id).Debugf("%s disappeared", v.Name())
	})

	// The first render is just another notification
	r.notify(n)
	return n.owner
}

func (r *Renderer) notify(n *node) {
	if n.sub.State() == Unsubscribed {
		return
	}
	n.sub.moveTo(Notified)
	log.WithField("identity", n.view.Identity()).Tracef("%s notified", n.view.Name())

	if !n.queued {
		n.queued = true
		r.dirty = append(r.dirty, n)
	}
}

// Pass redraws, in mount order, every view invalidated before the pass began
// and returns their identities. Invalidations raised while the pass runs are
// left for the next pass. A nested call is a no-op.
func (r *Renderer) Pass() []Identity {
	if r.inPass {
		log.Warn("render pass requested while a pass is in flight")
		return nil
	}
	r.inPass = true
	defer func() { r.inPass = false }()

	batch := r.dirty
	r.dirty = nil
	for _, n := range batch {
		n.queued = false
	}
	sort.SliceStable(batch, func(i, j int) bool { return batch[i].seq < batch[j].seq })

	rendered := make([]Identity, 0, len(batch))
	for _, n := range batch {
		if n.sub.State() == Unsubscribed {
			continue
		}

		n.frame = n.view.Render(n.view.Container().Items())
		n.renders++
		rendered = append(rendered, n.view.Identity())

		// A notification raised during this render keeps the pair Notified for the next pass
		if n.sub.State() == Notified && !n.queued {
			n.sub.moveTo(Rendered)
			n.sub.moveTo(Subscribed)
		}

		if n.renders == 1 {
			log.WithField("identity", n.view.Identity()).Debugf("%s appeared", n.view.Name())
		}
	}

	r.passes++
	return rendered
}

// Pending reports how many views wait for the next pass
func (r *Renderer) Pending() int {
	return len(r.dirty)
}

// Passes returns the number of completed passes
func (r *Renderer) Passes() int {
	return r.passes
}

// Mounted reports whether id is currently mounted
func (r *Renderer) Mounted(id Identity) bool {
	_, ok := r.nodes[id]
	return ok
}

// Frame returns the last frame drawn for id
func (r *Renderer) Frame(id Identity) (Frame, bool) {
	n, ok := r.nodes[id]
	if !ok || n.renders == 0 {
		return Frame{}, false
	}
	frame := n.frame
	frame.Labels = slices.Clone(n.frame.Labels)
	return frame, true
}

// Renders returns how many times id has been drawn since it was mounted
func (r *Renderer) Renders(id Identity) int {
	if n, ok := r.nodes[id]; ok {
		return n.renders
	}
	return 0
}

// Subscription returns the subscription of a mounted view
func (r *Renderer) Subscription(id Identity) (*Subscription, bool) {
	n, ok := r.nodes[id]
	if !ok {
		return nil, false
	}
	return n.sub, true
}
