package graph

import (
	"errors"
	"fmt"
	"sort"

	"github.com/oxideframe/envgraph/bfs"
	"github.com/oxideframe/envgraph/event"
	"github.com/oxideframe/envgraph/path"
)

// ContainsFrame reports whether id names a frame in the graph.
func (g *Graph[F, E]) ContainsFrame(id string) bool {
	_, ok := g.frames[id]
	return ok
}

// HasVertex implements bfs.Graph.
func (g *Graph[F, E]) HasVertex(id string) bool { return g.ContainsFrame(id) }

// Neighbors implements bfs.Graph: the frames directly connected to id,
// in a stable (sorted) order. Because every edge exists in both
// directions (invariant), the single outgoing-adjacency map already
// gives full neighbor connectivity; no separate reverse index exists.
func (g *Graph[F, E]) Neighbors(id string) []string {
	adj, ok := g.out[id]
	if !ok {
		return nil
	}
	ns := make([]string, 0, len(adj))
	for n := range adj {
		ns = append(ns, n)
	}
	sort.Strings(ns)
	return ns
}

// NumVertices returns the number of frames in the graph.
func (g *Graph[F, E]) NumVertices() int { return len(g.frames) }

// FrameIDs returns every frame id in the graph, sorted for deterministic
// iteration (used by the replay protocol and the serialization
// boundary).
func (g *Graph[F, E]) FrameIDs() []string {
	ids := make([]string, 0, len(g.frames))
	for id := range g.frames {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// EdgePair is one edge pair reported exactly once, canonicalized so
// Origin is the lexicographically smaller FrameId; Payload is the
// payload stored in the Origin->Target direction.
type EdgePair[E any] struct {
	Origin, Target string
	Payload        E
}

// EdgePairs returns every edge pair in the graph exactly once, sorted
// for deterministic serialization.
func (g *Graph[F, E]) EdgePairs() []EdgePair[E] {
	seen := make(map[[2]string]bool)
	var pairs []EdgePair[E]
	for origin, adj := range g.out {
		for target := range adj {
			a, b := origin, target
			if a > b {
				a, b = b, a
			}
			key := [2]string{a, b}
			if seen[key] {
				continue
			}
			seen[key] = true
			pairs = append(pairs, EdgePair[E]{Origin: a, Target: b, Payload: g.out[a][b]})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Origin != pairs[j].Origin {
			return pairs[i].Origin < pairs[j].Origin
		}
		return pairs[i].Target < pairs[j].Target
	})
	return pairs
}

// NumEdges returns the number of edge pairs in the graph (each pair
// counted once, not once per direction).
func (g *Graph[F, E]) NumEdges() int {
	n := 0
	for _, adj := range g.out {
		n += len(adj)
	}
	return n / 2
}

// ContainsEdge reports whether a direct edge exists between origin and
// target (in either direction, since both always exist together).
func (g *Graph[F, E]) ContainsEdge(origin, target string) bool {
	adj, ok := g.out[origin]
	if !ok {
		return false
	}
	_, ok = adj[target]
	return ok
}

// Frame returns the vertex property stored for id.
func (g *Graph[F, E]) Frame(id string) (F, error) {
	f, ok := g.frames[id]
	if !ok {
		var zero F
		return zero, &UnknownFrameError{FrameID: id}
	}
	return f, nil
}

// AddFrame registers prop under its own FrameID. It is an error if that
// id already names a frame.
func (g *Graph[F, E]) AddFrame(prop F) error {
	id := prop.FrameID()
	if _, exists := g.frames[id]; exists {
		return &FrameAlreadyExistsError{FrameID: id}
	}
	g.frames[id] = prop
	g.out[id] = make(map[string]E)
	g.bus.Publish(event.FrameAddedEvent{FrameID: id})
	return nil
}

// EmplaceFrame builds a fresh F via the graph's factory and registers
// it under id.
func (g *Graph[F, E]) EmplaceFrame(id string) (F, error) {
	if _, exists := g.frames[id]; exists {
		var zero F
		return zero, &FrameAlreadyExistsError{FrameID: id}
	}
	prop := g.factory(id)
	prop.SetFrameID(id)
	g.frames[id] = prop
	g.out[id] = make(map[string]E)
	g.bus.Publish(event.FrameAddedEvent{FrameID: id})
	return prop, nil
}

// ensureFrame returns the frame at id, implicitly creating it via the
// factory if it does not yet exist: adding an edge between two new
// frame names creates both frames.
func (g *Graph[F, E]) ensureFrame(id string) F {
	if f, ok := g.frames[id]; ok {
		return f
	}
	prop := g.factory(id)
	prop.SetFrameID(id)
	g.frames[id] = prop
	g.out[id] = make(map[string]E)
	g.bus.Publish(event.FrameAddedEvent{FrameID: id})
	return prop
}

// RemoveFrame removes the frame named id. It refuses to remove a frame
// that still has at least one edge attached; edges must be removed
// first.
func (g *Graph[F, E]) RemoveFrame(id string) error {
	if _, ok := g.frames[id]; !ok {
		return &UnknownFrameError{FrameID: id}
	}
	if len(g.out[id]) > 0 {
		return &FrameStillConnectedError{FrameID: id}
	}
	delete(g.frames, id)
	delete(g.out, id)
	g.bus.Publish(event.FrameRemovedEvent{FrameID: id})
	return nil
}

// DisconnectFrame removes every edge touching id, leaving the frame
// itself (and its item store) intact; a convenience for callers that
// want to RemoveFrame afterwards without hand-enumerating neighbors.
func (g *Graph[F, E]) DisconnectFrame(id string) error {
	if !g.ContainsFrame(id) {
		return &UnknownFrameError{FrameID: id}
	}
	for _, n := range g.Neighbors(id) {
		if err := g.RemoveEdge(id, n); err != nil {
			return err
		}
	}
	return nil
}

// AddEdge creates the edge pair origin<->target: payload in the
// origin->target direction, payload.Inverse() in the reverse. Either
// endpoint that does not yet name a frame is created implicitly. It is
// an error to add an edge where one already exists between these two
// frames.
func (g *Graph[F, E]) AddEdge(origin, target string, payload E) error {
	if g.ContainsEdge(origin, target) {
		return &EdgeAlreadyExistsError{Origin: origin, Target: target}
	}
	g.ensureFrame(origin)
	g.ensureFrame(target)

	g.out[origin][target] = payload
	g.out[target][origin] = payload.Inverse()

	g.bus.Publish(event.EdgeAddedEvent{
		Origin: origin,
		Target: target,
		Edge:   event.EdgeHandle{Origin: origin, Target: target},
	})
	return nil
}

// RemoveEdge destroys the edge pair between origin and target.
func (g *Graph[F, E]) RemoveEdge(origin, target string) error {
	if !g.ContainsEdge(origin, target) {
		return &UnknownEdgeError{Origin: origin, Target: target}
	}
	delete(g.out[origin], target)
	delete(g.out[target], origin)

	g.bus.Publish(event.EdgeRemovedEvent{
		Origin: origin,
		Target: target,
		Edge:   event.EdgeHandle{Origin: origin, Target: target},
	})
	return nil
}

// EdgePayload returns the payload stored for origin->target.
func (g *Graph[F, E]) EdgePayload(origin, target string) (E, error) {
	adj, ok := g.out[origin]
	if ok {
		if p, ok := adj[target]; ok {
			return p, nil
		}
	}
	var zero E
	return zero, &UnknownEdgeError{Origin: origin, Target: target}
}

// SetEdgePayload atomically replaces both directions of an existing
// edge pair: origin->target becomes payload, target->origin becomes
// payload.Inverse(). It is an error if the pair does not already exist
// (use AddEdge to create one).
func (g *Graph[F, E]) SetEdgePayload(origin, target string, payload E) error {
	if !g.ContainsEdge(origin, target) {
		return &UnknownEdgeError{Origin: origin, Target: target}
	}
	g.out[origin][target] = payload
	g.out[target][origin] = payload.Inverse()

	edge := event.EdgeHandle{Origin: origin, Target: target}
	inverse := event.EdgeHandle{Origin: target, Target: origin}
	g.bus.Publish(event.EdgeModifiedEvent{
		Origin:      origin,
		Target:      target,
		Edge:        edge,
		InverseEdge: inverse,
	})
	return nil
}

// BFS runs a breadth-first traversal rooted at id, applying opts.
func (g *Graph[F, E]) BFS(id string, opts ...bfs.Option) (*bfs.Result, error) {
	return bfs.Walk(g, id, opts...)
}

// FramesBetween returns the sequence of frame ids on the shortest path
// from origin to target (inclusive of both endpoints). The walk stops
// as soon as target is visited.
func (g *Graph[F, E]) FramesBetween(origin, target string) ([]string, error) {
	if !g.ContainsFrame(origin) {
		return nil, &UnknownFrameError{FrameID: origin}
	}
	if !g.ContainsFrame(target) {
		return nil, &UnknownFrameError{FrameID: target}
	}
	found := errors.New("graph: target found")
	res, err := bfs.Walk(g, origin, bfs.WithOnVisit(func(id string, _ int) error {
		if id == target {
			return found
		}
		return nil
	}))
	if err != nil && !errors.Is(err, found) {
		return nil, err
	}
	path, err := res.PathTo(target)
	if err != nil {
		return nil, &InvalidPathError{Origin: origin, Target: target}
	}
	return path, nil
}

// GetPath builds a path.Path from origin to target. The returned Path
// is empty, not an error, when no route
// exists; unknown frame ids still fail. When autoUpdating is true the
// Path subscribes to this graph's event bus and goes dirty if any edge
// along it is later removed.
func (g *Graph[F, E]) GetPath(origin, target string, autoUpdating bool) (*path.Path, error) {
	frames, err := g.FramesBetween(origin, target)
	if err != nil {
		var unknown *UnknownFrameError
		if errors.As(err, &unknown) {
			return nil, err
		}
		frames = nil
	}
	var bus *event.Bus
	if autoUpdating {
		bus = g.bus
	}
	return path.New(frames, bus, autoUpdating), nil
}

// Transform folds the edge payloads along the shortest frame-to-frame
// path from origin to target into a single composed payload, folded
// left-to-right starting from the first edge, so no identity element is
// required.
func (g *Graph[F, E]) Transform(origin, target string) (E, error) {
	var zero E
	if origin == target {
		if !g.ContainsFrame(origin) {
			return zero, &UnknownFrameError{FrameID: origin}
		}
		// An identity-shaped payload isn't derivable generically
		// without an Identity() method on Payload; same-frame callers
		// are expected to special-case this themselves (EnvireGraph
		// does, using transform.Identity).
		return zero, fmt.Errorf("graph: origin and target are the same frame %q", origin)
	}

	path, err := g.FramesBetween(origin, target)
	if err != nil {
		return zero, err
	}

	acc, err := g.EdgePayload(path[0], path[1])
	if err != nil {
		return zero, err
	}
	for i := 1; i < len(path)-1; i++ {
		step, err := g.EdgePayload(path[i], path[i+1])
		if err != nil {
			return zero, err
		}
		acc = acc.Compose(step)
	}
	return acc, nil
}
