package view

import "fmt"

// historyLimit bounds the transitions kept per subscription
const historyLimit = 64

// SubscriptionState is the position of one (container, view) pair in the
// render loop: Unsubscribed -> Subscribed -> Notified -> Rendered -> Subscribed.
type SubscriptionState int

const (
	Unsubscribed SubscriptionState = iota
	Subscribed
	Notified
	Rendered
)

func (s SubscriptionState) String() string {
	switch s {
	case Unsubscribed:
		return "unsubscribed"
	case Subscribed:
		return "subscribed"
	case Notified:
		return "notified"
	case Rendered:
		return "rendered"
	default:
		return fmt.Sprintf("SubscriptionState(%d)", int(s))
	}
}

// Subscription records the state of a view's binding to its container
type Subscription struct {
	state   SubscriptionState
	history []SubscriptionState
}

func newSubscription() *Subscription {
	return &Subscription{state: Unsubscribed, history: []SubscriptionState{Unsubscribed}}
}

// State returns the current state
func (s *Subscription) State() SubscriptionState {
	return s.state
}

// History returns every state the subscription has been in, oldest first
func (s *Subscription) History() []SubscriptionState {
	out := make([]SubscriptionState, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Subscription) moveTo(to SubscriptionState) {
	if s.state == to {
		return
	}
	s.state = to
	s.history = append(s.history, to)
	if len(s.history) > historyLimit {
		s.history = s.history[len(s.history)-historyLimit:]
	}
}
