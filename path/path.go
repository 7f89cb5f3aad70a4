// Package path implements Path: an ordered sequence of FrameIds between
// an origin and a target, built by graph.Graph from a BFS result.
//
// A subscribed Path is itself an event.Subscriber: it listens for
// EdgeRemoved events and, if the removed edge lies on it, marks itself
// dirty rather than recomputing eagerly — the next caller access is
// expected to refresh it. An unsubscribed Path ignores
// events entirely and remains a frozen snapshot.
package path

import (
	"errors"
	"fmt"

	"github.com/oxideframe/envgraph/event"
)

// Sentinel errors.
var (
	// ErrEmptyPath is returned by Origin/Target/At on a Path with no
	// frames (no route existed when it was built).
	ErrEmptyPath = errors.New("path: path is empty")

	// ErrInvalidPath is returned by Origin/Target/At once a subscribed
	// Path has gone dirty; the caller is expected to ask the graph for
	// a fresh Path instead of trusting this snapshot.
	ErrInvalidPath = errors.New("path: path is invalid (dirty)")
)

type edgeKey struct{ origin, target string }

// Path is an ordered FrameId sequence, optionally kept honest by
// subscribing to the graph's event bus.
type Path struct {
	event.BaseSubscriber

	frames []string
	dirty  bool

	autoUpdating bool
	edges        map[edgeKey]bool

	bus        *event.Bus
	handle     event.Handle
	subscribed bool
}

var _ event.Subscriber = (*Path)(nil)

// New constructs a Path over frames (origin first, target last; empty
// means no route was found). If autoUpdating is true and bus is
// non-nil, the Path subscribes to bus immediately.
func New(frames []string, bus *event.Bus, autoUpdating bool) *Path {
	p := &Path{
		frames:       append([]string(nil), frames...),
		autoUpdating: autoUpdating,
	}
	if autoUpdating && bus != nil {
		p.edges = buildEdgeSet(p.frames)
		p.bus = bus
		p.handle = bus.Subscribe(p)
		p.subscribed = true
	}
	return p
}

// buildEdgeSet records both directions of every consecutive pair so an
// EdgeRemoved event naming either (f_i, f_{i+1}) or (f_{i+1}, f_i) is
// matched in O(1).
func buildEdgeSet(frames []string) map[edgeKey]bool {
	edges := make(map[edgeKey]bool, 2*len(frames))
	for i := 0; i+1 < len(frames); i++ {
		a, b := frames[i], frames[i+1]
		edges[edgeKey{a, b}] = true
		edges[edgeKey{b, a}] = true
	}
	return edges
}

// IsAutoUpdating reports whether this Path was constructed to track its
// graph.
func (p *Path) IsAutoUpdating() bool { return p.autoUpdating }

// IsEmpty reports whether the path carries no frames (no route existed).
func (p *Path) IsEmpty() bool { return len(p.frames) == 0 }

// IsDirty reports whether a tracked edge on this path has been removed
// since it was built. Unsubscribe resets it to false.
func (p *Path) IsDirty() bool { return p.dirty }

// Size returns the number of frames in the path.
func (p *Path) Size() int { return len(p.frames) }

// Frames returns a copy of the underlying frame sequence, regardless of
// dirty state; callers that want the raw snapshot use this instead of
// Origin/Target/At.
func (p *Path) Frames() []string {
	return append([]string(nil), p.frames...)
}

// Origin returns the first frame on the path.
func (p *Path) Origin() (string, error) {
	if err := p.checkReadable(); err != nil {
		return "", err
	}
	return p.frames[0], nil
}

// Target returns the last frame on the path.
func (p *Path) Target() (string, error) {
	if err := p.checkReadable(); err != nil {
		return "", err
	}
	return p.frames[len(p.frames)-1], nil
}

// At returns the frame at index i.
func (p *Path) At(i int) (string, error) {
	if err := p.checkReadable(); err != nil {
		return "", err
	}
	if i < 0 || i >= len(p.frames) {
		return "", fmt.Errorf("path: index %d out of range (size %d)", i, len(p.frames))
	}
	return p.frames[i], nil
}

func (p *Path) checkReadable() error {
	if p.dirty {
		return ErrInvalidPath
	}
	if p.IsEmpty() {
		return ErrEmptyPath
	}
	return nil
}

// Unsubscribe detaches the path from its graph: the edge set
// is cleared, dirty is forced false, and the path stops reacting to
// further events, keeping whatever frame sequence it last held as a
// frozen snapshot.
func (p *Path) Unsubscribe() {
	if !p.subscribed {
		return
	}
	p.bus.Unsubscribe(p.handle)
	p.subscribed = false
	p.edges = nil
	p.dirty = false
}

// OnEdgeRemoved implements event.Subscriber: if the removed edge lies on
// this path, mark it dirty. Unsubscribed paths never have this method
// wired to a bus, so it is only ever invoked for subscribed paths.
func (p *Path) OnEdgeRemoved(ev event.EdgeRemovedEvent) {
	if p.edges[edgeKey{ev.Origin, ev.Target}] {
		p.dirty = true
	}
}
