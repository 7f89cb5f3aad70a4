// File: subscriber.go
// Role: the Subscriber interface and a no-op BaseSubscriber adapter.
package event

// Subscriber is the full event surface a graph mutation may announce:
// one method per event kind. Most subscribers only care about one or
// two of them; embed BaseSubscriber and override the rest.
type Subscriber interface {
	OnFrameAdded(FrameAddedEvent)
	OnFrameRemoved(FrameRemovedEvent)
	OnEdgeAdded(EdgeAddedEvent)
	OnEdgeRemoved(EdgeRemovedEvent)
	OnEdgeModified(EdgeModifiedEvent)
	OnItemAdded(ItemAddedEvent)
	OnItemRemoved(ItemRemovedEvent)
}

// BaseSubscriber implements every Subscriber method as a no-op. Embed it
// in a concrete subscriber (treeview.TreeView, path.Path, a typed item
// dispatcher) to avoid boilerplate for the event kinds it ignores.
type BaseSubscriber struct{}

func (BaseSubscriber) OnFrameAdded(FrameAddedEvent)       {}
func (BaseSubscriber) OnFrameRemoved(FrameRemovedEvent)   {}
func (BaseSubscriber) OnEdgeAdded(EdgeAddedEvent)         {}
func (BaseSubscriber) OnEdgeRemoved(EdgeRemovedEvent)     {}
func (BaseSubscriber) OnEdgeModified(EdgeModifiedEvent)   {}
func (BaseSubscriber) OnItemAdded(ItemAddedEvent)         {}
func (BaseSubscriber) OnItemRemoved(ItemRemovedEvent)     {}
