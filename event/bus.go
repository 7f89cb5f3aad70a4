// File: bus.go
// Role: the synchronous, single-threaded, cooperative event Bus. Every
// mutation on the graph synchronously invokes every enabled subscriber,
// in subscription order, to completion, before the mutation call
// returns. The Bus carries no internal locking: like graph.Graph, it
// assumes one logical owner thread.
package event

// Handle identifies a subscription for later Unsubscribe/SetEnabled
// calls.
type Handle int

type entry struct {
	sub     Subscriber
	enabled bool
}

// Bus fans out published events to subscribed handlers in subscription
// order.
type Bus struct {
	entries []*entry
}

// NewBus constructs an empty Bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers s, enabled by default, and returns a Handle for
// later SetEnabled/Unsubscribe calls. Subscription order determines
// dispatch order for every future Publish call.
func (b *Bus) Subscribe(s Subscriber) Handle {
	b.entries = append(b.entries, &entry{sub: s, enabled: true})
	return Handle(len(b.entries) - 1)
}

// Unsubscribe removes the subscriber registered under h. A no-op if h is
// out of range or already removed.
func (b *Bus) Unsubscribe(h Handle) {
	if int(h) < 0 || int(h) >= len(b.entries) || b.entries[h] == nil {
		return
	}
	b.entries[h] = nil
}

// SetEnabled globally enables or disables the subscriber registered
// under h; a disabled subscriber silently drops every event.
func (b *Bus) SetEnabled(h Handle, enabled bool) {
	if int(h) < 0 || int(h) >= len(b.entries) || b.entries[h] == nil {
		return
	}
	b.entries[h].enabled = enabled
}

// Publish dispatches e to every enabled subscriber, in subscription
// order, via the matching typed Subscriber method.
func (b *Bus) Publish(e Event) {
	for _, en := range b.entries {
		if en == nil || !en.enabled {
			continue
		}
		dispatch(en.sub, e)
	}
}

func dispatch(s Subscriber, e Event) {
	switch ev := e.(type) {
	case FrameAddedEvent:
		s.OnFrameAdded(ev)
	case FrameRemovedEvent:
		s.OnFrameRemoved(ev)
	case EdgeAddedEvent:
		s.OnEdgeAdded(ev)
	case EdgeRemovedEvent:
		s.OnEdgeRemoved(ev)
	case EdgeModifiedEvent:
		s.OnEdgeModified(ev)
	case ItemAddedEvent:
		s.OnItemAdded(ev)
	case ItemRemovedEvent:
		s.OnItemRemoved(ev)
	}
}

// Merge collapses adjacent mergeable event pairs in events, a batching
// step for a caller-assembled list of events. Neither normal mutation
// dispatch nor graph.EnvireGraph's PublishCurrentState and
// UnpublishCurrentState call it; they deliver every event unmerged.
func Merge(events []Event) []Event {
	out := make([]Event, 0, len(events))
	for i := 0; i < len(events); i++ {
		if i+1 < len(events) && events[i].Mergeable(events[i+1]) {
			i++ // drop both: the pair cancels out
			continue
		}
		out = append(out, events[i])
	}
	return out
}
