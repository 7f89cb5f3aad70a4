// File: subscribe.go
// Role: the reactive half of TreeView — subscription lifecycle plus the
// EdgeAdded/EdgeRemoved event.Subscriber overrides that keep a subscribed
// view in sync with its graph.
package treeview

import (
	"fmt"

	"github.com/oxideframe/envgraph/event"
)

var _ event.Subscriber = (*TreeView)(nil)

// Subscribe attaches tv to bus so future EdgeAdded/EdgeRemoved events
// keep the tree and cross-edge set in sync with the graph it was built
// from. A no-op if tv is already subscribed. A view that was
// unsubscribed can subscribe again, to the same bus or a different one,
// carrying its current snapshot along.
func (tv *TreeView) Subscribe(bus *event.Bus) {
	if tv.subscribed {
		return
	}
	tv.bus = bus
	tv.handle = bus.Subscribe(tv)
	tv.subscribed = true
}

// Unsubscribe detaches tv from its bus. The view keeps its last known
// snapshot but stops reacting to further graph mutations.
func (tv *TreeView) Unsubscribe() {
	if !tv.subscribed {
		return
	}
	tv.bus.Unsubscribe(tv.handle)
	tv.subscribed = false
}

// OnEdgeAdded implements event.Subscriber.
func (tv *TreeView) OnEdgeAdded(ev event.EdgeAddedEvent) {
	tv.handleEdgeAdded(ev.Origin, ev.Target)
}

// OnEdgeRemoved implements event.Subscriber.
func (tv *TreeView) OnEdgeRemoved(ev event.EdgeRemovedEvent) {
	tv.lastErr = nil
	u, v := ev.Origin, ev.Target

	if tv.removeCrossEdge(u, v) {
		return
	}

	var child string
	if p, err := tv.GetParent(v); err == nil && p == u {
		child = v
	} else if p, err := tv.GetParent(u); err == nil && p == v {
		child = u
	} else {
		// Neither endpoint is part of this view's tree structure; the
		// removed edge never touched it.
		return
	}

	if err := tv.collapseSubtree(child); err != nil {
		tv.lastErr = err
	}
}

// handleEdgeAdded sorts a new graph edge into one of five cases,
// depending on which endpoints the tree already holds.
func (tv *TreeView) handleEdgeAdded(u, v string) {
	uIn, vIn := tv.VertexExists(u), tv.VertexExists(v)
	switch {
	case !uIn && !vIn:
		// Case 1: disconnected component, ignored.
		return
	case uIn && !vIn:
		// Case 2: attach v under u, then pull in anything v connects to
		// besides u (a previously disconnected sub-graph joining).
		tv.addTreeEdge(u, v)
		tv.bfsFill(v, u)
	case !uIn && vIn:
		// Case 3: mirror of case 2.
		tv.addTreeEdge(v, u)
		tv.bfsFill(u, v)
	default:
		// u and v both already in the tree.
		if tv.EdgeExists(u, v) {
			// Case 5: back-edge, a tree edge already joins them.
			return
		}
		// Case 4: genuine cross-edge.
		tv.addCrossEdge(u, v)
	}
}

// removeCrossEdge drops the cross-edge between u and v (recorded in
// whichever direction BFS first saw it) and reports whether one was
// found.
func (tv *TreeView) removeCrossEdge(u, v string) bool {
	for i, ce := range tv.cross {
		if (ce.Origin == u && ce.Target == v) || (ce.Origin == v && ce.Target == u) {
			tv.cross = append(tv.cross[:i], tv.cross[i+1:]...)
			return true
		}
	}
	return false
}

// collapseSubtree removes the sub-tree rooted at t (t itself and every
// descendant) bottom-up, emitting one onEdgeRemoved callback per removed
// tree edge, and reclassifies the cross-edges that touch it. Cross-edges
// with both endpoints inside the sub-tree are dropped outright as
// internal; cross-edges with exactly one endpoint inside are
// "tree-leaving" and, if any remain once the collapse is done, are
// reported via the returned error — reattaching the sub-tree through
// one of them is not supported.
func (tv *TreeView) collapseSubtree(t string) error {
	// Post-order walk: every descendant before its own parent, so that
	// when a vertex is removed its parent link is still intact.
	var order []string
	var walk func(id string)
	walk = func(id string) {
		for _, c := range tv.Children(id) {
			walk(c)
		}
		order = append(order, id)
	}
	walk(t)

	inSubtree := make(map[string]bool, len(order))
	for _, id := range order {
		inSubtree[id] = true
	}

	var remaining, leaving []CrossEdge
	for _, ce := range tv.cross {
		oIn, tIn := inSubtree[ce.Origin], inSubtree[ce.Target]
		switch {
		case oIn && tIn:
			// Internal to the sub-tree being removed: dropped outright.
		case oIn || tIn:
			leaving = append(leaving, ce)
		default:
			remaining = append(remaining, ce)
		}
	}
	tv.cross = remaining

	for _, id := range order {
		parent, _ := tv.GetParent(id)
		if parent != "" {
			if pr, ok := tv.tree[parent]; ok {
				delete(pr.children, id)
			}
		}
		delete(tv.tree, id)
		if tv.onEdgeRemoved != nil {
			tv.onEdgeRemoved(parent, id)
		}
	}
	if t == tv.root {
		tv.hasRoot = false
		tv.root = ""
	}

	if len(leaving) > 0 {
		return fmt.Errorf("%w: %d cross-edge(s) would need to reattach %q", ErrCrossEdgeLeavesSubtree, len(leaving), t)
	}
	return nil
}
