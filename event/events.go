// Package event implements the publisher/subscriber plumbing graph.Graph
// uses to announce mutations: a synchronous, single-threaded,
// cooperative Bus; a Subscriber interface exposing the full event
// surface; typed per-item-type dispatch; and Merge, which collapses
// add-then-remove event pairs. The replay protocol that lets a late
// subscriber bootstrap to the current graph state is
// graph.EnvireGraph.PublishCurrentState.
package event

import "github.com/oxideframe/envgraph/item"

// Kind tags an Event for dispatch and for the Mergeable predicate.
type Kind int

// Event kinds.
const (
	KindFrameAdded Kind = iota
	KindFrameRemoved
	KindEdgeAdded
	KindEdgeRemoved
	KindEdgeModified
	KindItemAdded
	KindItemRemoved
)

// Event is the common interface every event kind implements.
type Event interface {
	Kind() Kind
	// Mergeable reports whether other can be merged with this event
	// during replay batching; FrameAdded(x) followed by FrameRemoved(x)
	// cancels out, for example.
	Mergeable(other Event) bool
}

// EdgeHandle identifies a directed edge by its endpoints; since at most
// one edge exists per ordered (origin, target) pair, the pair
// itself is a stable handle.
type EdgeHandle struct {
	Origin, Target string
}

// FrameAddedEvent is published once per new frame.
type FrameAddedEvent struct{ FrameID string }

// Kind implements Event.
func (FrameAddedEvent) Kind() Kind { return KindFrameAdded }

// Mergeable implements Event: mergeable with a later FrameRemoved for the
// same frame.
func (e FrameAddedEvent) Mergeable(other Event) bool {
	r, ok := other.(FrameRemovedEvent)
	return ok && r.FrameID == e.FrameID
}

// FrameRemovedEvent is published once per removed frame.
type FrameRemovedEvent struct{ FrameID string }

// Kind implements Event.
func (FrameRemovedEvent) Kind() Kind { return KindFrameRemoved }

// Mergeable implements Event.
func (FrameRemovedEvent) Mergeable(Event) bool { return false }

// EdgeAddedEvent is published once for origin->target when an edge pair
// is created; the paired target->origin direction is not announced
// separately.
type EdgeAddedEvent struct {
	Origin, Target string
	Edge           EdgeHandle
}

// Kind implements Event.
func (EdgeAddedEvent) Kind() Kind { return KindEdgeAdded }

// Mergeable implements Event.
func (e EdgeAddedEvent) Mergeable(other Event) bool {
	r, ok := other.(EdgeRemovedEvent)
	return ok && r.Origin == e.Origin && r.Target == e.Target
}

// EdgeRemovedEvent is published once for origin->target when an edge
// pair is destroyed.
type EdgeRemovedEvent struct {
	Origin, Target string
	Edge           EdgeHandle
}

// Kind implements Event.
func (EdgeRemovedEvent) Kind() Kind { return KindEdgeRemoved }

// Mergeable implements Event.
func (EdgeRemovedEvent) Mergeable(Event) bool { return false }

// EdgeModifiedEvent is published once when set-edge-payload updates both
// directions of a pair atomically; it carries both edge handles.
type EdgeModifiedEvent struct {
	Origin, Target string
	Edge           EdgeHandle
	InverseEdge    EdgeHandle
}

// Kind implements Event.
func (EdgeModifiedEvent) Kind() Kind { return KindEdgeModified }

// Mergeable implements Event.
func (EdgeModifiedEvent) Mergeable(Event) bool { return false }

// ItemAddedEvent is published once per item added to a frame.
type ItemAddedEvent struct {
	FrameID string
	Item    item.Item
}

// Kind implements Event.
func (ItemAddedEvent) Kind() Kind { return KindItemAdded }

// Mergeable implements Event.
func (e ItemAddedEvent) Mergeable(other Event) bool {
	r, ok := other.(ItemRemovedEvent)
	return ok && r.Item.UUID() == e.Item.UUID()
}

// ItemRemovedEvent is published once per item removed from a frame; the
// item reference is still valid (reference-counted) after this fires.
type ItemRemovedEvent struct {
	FrameID string
	Item    item.Item
}

// Kind implements Event.
func (ItemRemovedEvent) Kind() Kind { return KindItemRemoved }

// Mergeable implements Event.
func (ItemRemovedEvent) Mergeable(Event) bool { return false }
