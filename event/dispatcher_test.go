package event_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxideframe/envgraph/event"
	"github.com/oxideframe/envgraph/item"
)

func TestTypedDispatcher_FansOutOnlyMatchingTypeTag(t *testing.T) {
	bus := event.NewBus()
	d := event.NewTypedDispatcher()

	var vec3Added []item.Item
	var cloudAdded []item.Item
	d.OnItemTypeAdded("vec3", func(_ string, it item.Item) { vec3Added = append(vec3Added, it) })
	d.OnItemTypeAdded("pointcloud", func(_ string, it item.Item) { cloudAdded = append(cloudAdded, it) })
	bus.Subscribe(d)

	v := item.NewBase("vec3", "Vec3", time.Now(), 1)
	p := item.NewBase("pointcloud", "PointCloud", time.Now(), nil)
	bus.Publish(event.ItemAddedEvent{FrameID: "a", Item: v})
	bus.Publish(event.ItemAddedEvent{FrameID: "a", Item: p})

	require.Len(t, vec3Added, 1)
	assert.Equal(t, v.UUID(), vec3Added[0].UUID())
	require.Len(t, cloudAdded, 1)
	assert.Equal(t, p.UUID(), cloudAdded[0].UUID())
}

func TestTypedDispatcher_FrameRestrictionDropsOtherFrames(t *testing.T) {
	bus := event.NewBus()
	d := event.NewTypedDispatcher(event.WithFrame("camera"))

	var seen []string
	d.OnItemTypeAdded("vec3", func(frameID string, _ item.Item) { seen = append(seen, frameID) })
	d.OnItemTypeRemoved("vec3", func(frameID string, _ item.Item) { seen = append(seen, "removed:"+frameID) })
	bus.Subscribe(d)

	it := item.NewBase("vec3", "Vec3", time.Now(), 1)
	bus.Publish(event.ItemAddedEvent{FrameID: "lidar", Item: it})
	bus.Publish(event.ItemAddedEvent{FrameID: "camera", Item: it})
	bus.Publish(event.ItemRemovedEvent{FrameID: "camera", Item: it})

	assert.Equal(t, []string{"camera", "removed:camera"}, seen)
}

func TestTypedDispatcher_IgnoresNonItemEvents(t *testing.T) {
	bus := event.NewBus()
	d := event.NewTypedDispatcher()
	var calls int
	d.OnItemTypeAdded("vec3", func(string, item.Item) { calls++ })
	bus.Subscribe(d)

	bus.Publish(event.FrameAddedEvent{FrameID: "a"})
	bus.Publish(event.EdgeAddedEvent{Origin: "a", Target: "b"})

	assert.Equal(t, 0, calls)
}
