package event_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/oxideframe/envgraph/event"
	"github.com/oxideframe/envgraph/item"
)

type recorder struct {
	event.BaseSubscriber
	added   []string
	removed []string
}

func (r *recorder) OnFrameAdded(e event.FrameAddedEvent)     { r.added = append(r.added, e.FrameID) }
func (r *recorder) OnFrameRemoved(e event.FrameRemovedEvent) { r.removed = append(r.removed, e.FrameID) }

func TestBus_PublishDispatchesToSubscribersInOrder(t *testing.T) {
	bus := event.NewBus()
	first := &recorder{}
	second := &recorder{}
	bus.Subscribe(first)
	bus.Subscribe(second)

	bus.Publish(event.FrameAddedEvent{FrameID: "odom"})

	assert.Equal(t, []string{"odom"}, first.added)
	assert.Equal(t, []string{"odom"}, second.added)
}

func TestBus_SetEnabledSuppressesDispatch(t *testing.T) {
	bus := event.NewBus()
	r := &recorder{}
	h := bus.Subscribe(r)

	bus.SetEnabled(h, false)
	bus.Publish(event.FrameAddedEvent{FrameID: "odom"})
	assert.Empty(t, r.added)

	bus.SetEnabled(h, true)
	bus.Publish(event.FrameAddedEvent{FrameID: "odom"})
	assert.Equal(t, []string{"odom"}, r.added)
}

func TestBus_UnsubscribeStopsDelivery(t *testing.T) {
	bus := event.NewBus()
	r := &recorder{}
	h := bus.Subscribe(r)
	bus.Unsubscribe(h)

	bus.Publish(event.FrameAddedEvent{FrameID: "odom"})

	assert.Empty(t, r.added)
}

func TestMerge_CollapsesAddThenRemovePair(t *testing.T) {
	it := item.NewBase("vec3", "Vec3", time.Now(), 1)
	events := []event.Event{
		event.FrameAddedEvent{FrameID: "a"},
		event.FrameRemovedEvent{FrameID: "a"},
		event.ItemAddedEvent{FrameID: "b", Item: it},
	}

	merged := event.Merge(events)

	assert.Equal(t, []event.Event{event.ItemAddedEvent{FrameID: "b", Item: it}}, merged)
}

func TestMerge_KeepsNonMergeableEventsInOrder(t *testing.T) {
	events := []event.Event{
		event.FrameAddedEvent{FrameID: "a"},
		event.FrameAddedEvent{FrameID: "b"},
	}

	merged := event.Merge(events)

	assert.Equal(t, events, merged)
}
