// Package graph implements the labeled, bidirectional spatial graph: a
// generic Graph[F, E] of named Frames connected by paired edges
// carrying some composable, invertible payload, plus EnvireGraph, the
// frame/item-store specialization built on top of it.
//
// A Graph is not internally thread-safe: it assumes a single logical
// owner goroutine mutating it and driving its event.Bus, matching the
// cooperative, synchronous dispatch model of the Bus itself. Callers
// that share a Graph across goroutines must serialize their own
// access.
package graph

import "github.com/oxideframe/envgraph/event"

// FrameProperty is the vertex payload a Graph stores: something
// identified by a stable, mutable FrameID. A Graph calls SetFrameID
// exactly once, right after constructing a new vertex via the supplied
// factory (in EmplaceFrame, or in AddEdge for an unknown endpoint), to
// keep the vertex's own notion of its id in lockstep with the graph's
// label index.
type FrameProperty interface {
	FrameID() string
	SetFrameID(id string)
}

// Payload is the edge payload a Graph stores: something that can be
// inverted (to derive the paired reverse edge) and composed with
// another payload of the same type (to fold a path of edges into one).
type Payload[E any] interface {
	Inverse() E
	Compose(other E) E
}

// Factory builds a fresh vertex property for a newly created frame.
// NewGraph uses it for EmplaceFrame and for any vertex AddEdge has to
// create implicitly.
type Factory[F FrameProperty] func(frameID string) F

// Graph is a labeled multigraph of Frames (vertex property F) joined by
// Edges (payload E), where every edge is created, queried, and removed
// as a mutually-inverse pair, so every edge exists in both directions.
type Graph[F FrameProperty, E Payload[E]] struct {
	frames  map[string]F
	out     map[string]map[string]E
	bus     *event.Bus
	factory Factory[F]
}

// Option configures a Graph at construction time.
type Option[F FrameProperty, E Payload[E]] func(*Graph[F, E])

// WithBus injects an existing event.Bus instead of letting NewGraph
// allocate one. Useful when a caller wants to subscribe before the
// first frame is added.
func WithBus[F FrameProperty, E Payload[E]](bus *event.Bus) Option[F, E] {
	return func(g *Graph[F, E]) {
		if bus != nil {
			g.bus = bus
		}
	}
}

// NewGraph constructs an empty Graph. factory builds the vertex
// property for every frame the graph creates, whether added explicitly
// (EmplaceFrame) or implicitly (AddEdge referencing an unknown frame
// id).
func NewGraph[F FrameProperty, E Payload[E]](factory Factory[F], opts ...Option[F, E]) *Graph[F, E] {
	g := &Graph[F, E]{
		frames:  make(map[string]F),
		out:     make(map[string]map[string]E),
		bus:     event.NewBus(),
		factory: factory,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Bus returns the event bus this graph publishes mutations on.
func (g *Graph[F, E]) Bus() *event.Bus { return g.bus }
