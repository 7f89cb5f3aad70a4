// File: dispatcher.go
// Role: the typed dispatcher layered on top of Bus — per-item-type and
// per-frame filtering of item events.
package event

import "github.com/oxideframe/envgraph/item"

// ItemFunc handles one filtered item event.
type ItemFunc func(frameID string, it item.Item)

// TypedDispatcher is a Subscriber that fans item events out to handlers
// registered per runtime type tag, optionally restricted to a single
// frame. Non-item events are ignored. Subscribe the dispatcher to a Bus
// like any other subscriber; registration order within a tag determines
// handler invocation order.
type TypedDispatcher struct {
	BaseSubscriber

	frame     string
	frameOnly bool

	added   map[item.TypeTag][]ItemFunc
	removed map[item.TypeTag][]ItemFunc
}

var _ Subscriber = (*TypedDispatcher)(nil)

// DispatcherOption configures a TypedDispatcher at construction time.
type DispatcherOption func(*TypedDispatcher)

// WithFrame restricts the dispatcher to events whose FrameId equals id;
// events for every other frame are dropped before any tag filtering.
func WithFrame(id string) DispatcherOption {
	return func(d *TypedDispatcher) {
		d.frame = id
		d.frameOnly = true
	}
}

// NewTypedDispatcher constructs an empty dispatcher.
func NewTypedDispatcher(opts ...DispatcherOption) *TypedDispatcher {
	d := &TypedDispatcher{
		added:   make(map[item.TypeTag][]ItemFunc),
		removed: make(map[item.TypeTag][]ItemFunc),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// OnItemTypeAdded registers fn for ItemAdded events whose item carries
// tag.
func (d *TypedDispatcher) OnItemTypeAdded(tag item.TypeTag, fn ItemFunc) {
	d.added[tag] = append(d.added[tag], fn)
}

// OnItemTypeRemoved registers fn for ItemRemoved events whose item
// carries tag.
func (d *TypedDispatcher) OnItemTypeRemoved(tag item.TypeTag, fn ItemFunc) {
	d.removed[tag] = append(d.removed[tag], fn)
}

func (d *TypedDispatcher) wants(frameID string) bool {
	return !d.frameOnly || d.frame == frameID
}

// OnItemAdded implements Subscriber: filters by frame (if restricted)
// and by the item's runtime type tag, then fans out to the matching
// handlers in registration order.
func (d *TypedDispatcher) OnItemAdded(ev ItemAddedEvent) {
	if !d.wants(ev.FrameID) {
		return
	}
	for _, fn := range d.added[ev.Item.TypeTag()] {
		fn(ev.FrameID, ev.Item)
	}
}

// OnItemRemoved implements Subscriber.
func (d *TypedDispatcher) OnItemRemoved(ev ItemRemovedEvent) {
	if !d.wants(ev.FrameID) {
		return
	}
	for _, fn := range d.removed[ev.Item.TypeTag()] {
		fn(ev.FrameID, ev.Item)
	}
}
