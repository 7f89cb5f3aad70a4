package graph

import (
	"time"

	"github.com/oxideframe/envgraph/event"
	"github.com/oxideframe/envgraph/frame"
	"github.com/oxideframe/envgraph/item"
	"github.com/oxideframe/envgraph/transform"
)

// EnvireGraph is the concrete environment representation: a
// Graph[*frame.Frame, transform.Transform] plus the item-store and
// replay operations that only make sense for that specific
// instantiation. Go has no per-instantiation method specialization for
// generics, so the wrapper realizes it via composition.
type EnvireGraph struct {
	*Graph[*frame.Frame, transform.Transform]
}

// NewEnvireGraph constructs an empty environment graph. Every frame it
// creates, explicitly or implicitly, is a *frame.Frame with its own
// item.Store.
func NewEnvireGraph(opts ...Option[*frame.Frame, transform.Transform]) *EnvireGraph {
	return &EnvireGraph{Graph: NewGraph[*frame.Frame, transform.Transform](frame.New, opts...)}
}

// GetTransform returns the composed rigid-body transform mapping points
// expressed in target's frame into origin's frame, folding the shortest
// chain of edges between them. Same-frame queries return the identity.
// Every failure (an unknown frame, no chain between the two, a chain
// whose composed pose comes out invalid) is reported as
// ErrUnknownTransform.
func (g *EnvireGraph) GetTransform(origin, target string) (transform.Transform, error) {
	if origin == target {
		if !g.ContainsFrame(origin) {
			return transform.Transform{}, &UnknownTransformError{Origin: origin, Target: target}
		}
		return transform.Identity(time.Time{}), nil
	}
	tr, err := g.Transform(origin, target)
	if err != nil {
		return transform.Transform{}, &UnknownTransformError{Origin: origin, Target: target}
	}
	if !tr.Pose.Valid {
		return transform.Transform{}, &UnknownTransformError{Origin: origin, Target: target}
	}
	return tr, nil
}

// AddItemToFrame attaches it to the frame named frameID and publishes
// ItemAddedEvent.
func (g *EnvireGraph) AddItemToFrame(frameID string, it item.Item) error {
	f, err := g.Frame(frameID)
	if err != nil {
		return err
	}
	f.Items().Add(it)
	g.Bus().Publish(event.ItemAddedEvent{FrameID: frameID, Item: it})
	return nil
}

// RemoveItemFromFrame detaches it from the frame named frameID and
// publishes ItemRemovedEvent. The event carries the item with its frame
// field still naming frameID; the field is cleared once every
// subscriber has seen the removal.
func (g *EnvireGraph) RemoveItemFromFrame(frameID string, it item.Item) error {
	f, err := g.Frame(frameID)
	if err != nil {
		return err
	}
	if err := f.Items().Remove(it); err != nil {
		return err
	}
	g.Bus().Publish(event.ItemRemovedEvent{FrameID: frameID, Item: it})
	it.SetFrame("")
	return nil
}

// RemoveItemAt removes the item at index idx within tag's list in the
// frame named frameID, publishing ItemRemovedEvent, and returns the
// index its successor now occupies. Any index a caller holds into the
// same type list of that frame is invalidated.
func (g *EnvireGraph) RemoveItemAt(frameID string, tag item.TypeTag, idx int) (int, error) {
	f, err := g.Frame(frameID)
	if err != nil {
		return 0, err
	}
	removed, next, err := f.Items().RemoveAt(tag, idx)
	if err != nil {
		return 0, err
	}
	g.Bus().Publish(event.ItemRemovedEvent{FrameID: frameID, Item: removed})
	removed.SetFrame("")
	return next, nil
}

// ClearFrame removes every item from the frame named frameID, publishing
// one ItemRemovedEvent per removed item with the item still carrying
// its frame field; each field is cleared after its event fires.
func (g *EnvireGraph) ClearFrame(frameID string) error {
	f, err := g.Frame(frameID)
	if err != nil {
		return err
	}
	for _, it := range f.Items().Clear() {
		g.Bus().Publish(event.ItemRemovedEvent{FrameID: frameID, Item: it})
		it.SetFrame("")
	}
	return nil
}

// RemoveFrame overrides Graph.RemoveFrame to first clear the frame's
// item store (publishing an ItemRemovedEvent per item) before removing
// the frame itself; a frame's items don't outlive the frame.
func (g *EnvireGraph) RemoveFrame(frameID string) error {
	if err := g.ClearFrame(frameID); err != nil {
		return err
	}
	return g.Graph.RemoveFrame(frameID)
}

// frameIDs returns every frame id in the graph, sorted.
func (g *EnvireGraph) frameIDs() []string { return g.FrameIDs() }

// edgePairs returns every edge as a single (smaller, larger) id pair so
// PublishCurrentState/UnpublishCurrentState announce each pair exactly
// once, independent of original creation order.
func (g *EnvireGraph) edgePairs() []event.EdgeHandle {
	pairs := g.EdgePairs()
	out := make([]event.EdgeHandle, len(pairs))
	for i, p := range pairs {
		out[i] = event.EdgeHandle{Origin: p.Origin, Target: p.Target}
	}
	return out
}

// PublishCurrentState replays the graph's entire current state — every
// frame, edge and item — directly at sub, letting a subscriber that
// joins late bootstrap its internal state without having observed the
// mutations that produced it.
func (g *EnvireGraph) PublishCurrentState(sub event.Subscriber) {
	for _, id := range g.frameIDs() {
		sub.OnFrameAdded(event.FrameAddedEvent{FrameID: id})
	}
	for _, h := range g.edgePairs() {
		sub.OnEdgeAdded(event.EdgeAddedEvent{Origin: h.Origin, Target: h.Target, Edge: h})
	}
	for _, id := range g.frameIDs() {
		f, _ := g.Frame(id)
		for _, tag := range f.Items().Types() {
			items, _ := f.Items().Items(tag)
			for _, it := range items {
				sub.OnItemAdded(event.ItemAddedEvent{FrameID: id, Item: it})
			}
		}
	}
}

// UnpublishCurrentState is PublishCurrentState's inverse: it announces
// the removal of every item, edge and frame currently in the graph to
// sub, in the reverse order PublishCurrentState would have announced
// their creation. It does not mutate the graph; it only lets a
// subscriber about to be dropped tear down state it built up via
// PublishCurrentState.
func (g *EnvireGraph) UnpublishCurrentState(sub event.Subscriber) {
	ids := g.frameIDs()
	for i := len(ids) - 1; i >= 0; i-- {
		f, _ := g.Frame(ids[i])
		types := f.Items().Types()
		for j := len(types) - 1; j >= 0; j-- {
			items, _ := f.Items().Items(types[j])
			for k := len(items) - 1; k >= 0; k-- {
				sub.OnItemRemoved(event.ItemRemovedEvent{FrameID: ids[i], Item: items[k]})
			}
		}
	}
	pairs := g.edgePairs()
	for i := len(pairs) - 1; i >= 0; i-- {
		h := pairs[i]
		sub.OnEdgeRemoved(event.EdgeRemovedEvent{Origin: h.Origin, Target: h.Target, Edge: h})
	}
	for i := len(ids) - 1; i >= 0; i-- {
		sub.OnFrameRemoved(event.FrameRemovedEvent{FrameID: ids[i]})
	}
}
