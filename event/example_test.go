package event_test

import (
	"fmt"

	"github.com/oxideframe/envgraph/event"
)

type printSubscriber struct {
	event.BaseSubscriber
}

func (printSubscriber) OnFrameAdded(e event.FrameAddedEvent) {
	fmt.Println("frame added:", e.FrameID)
}

func (printSubscriber) OnEdgeAdded(e event.EdgeAddedEvent) {
	fmt.Printf("edge added: %s → %s\n", e.Origin, e.Target)
}

// ExampleBus shows synchronous, in-order dispatch to a subscriber that
// only overrides the event kinds it cares about.
func ExampleBus() {
	bus := event.NewBus()
	bus.Subscribe(printSubscriber{})

	bus.Publish(event.FrameAddedEvent{FrameID: "world"})
	bus.Publish(event.FrameAddedEvent{FrameID: "base"})
	bus.Publish(event.EdgeAddedEvent{Origin: "world", Target: "base"})
	// Output:
	// frame added: world
	// frame added: base
	// edge added: world → base
}

// ExampleMerge collapses an add/remove pair during replay batching.
func ExampleMerge() {
	events := []event.Event{
		event.FrameAddedEvent{FrameID: "scratch"},
		event.FrameRemovedEvent{FrameID: "scratch"},
		event.FrameAddedEvent{FrameID: "world"},
	}

	for _, e := range event.Merge(events) {
		fmt.Println(e.(event.FrameAddedEvent).FrameID)
	}
	// Output:
	// world
}
