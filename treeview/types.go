// Package treeview implements TreeView: an auto-updating spanning tree
// over a subset of a graph's frames, rooted at one frame, plus the set
// of cross/back edges discovered while building it.
//
// A TreeView is itself an event.Subscriber: once built it reacts to
// EdgeAdded/EdgeRemoved events published by the graph it was built
// from, keeping the tree and its cross-edge set in sync without the
// graph needing to know TreeView exists.
package treeview

import (
	"errors"
	"fmt"

	"github.com/oxideframe/envgraph/event"
)

// Sentinel errors.
var (
	// ErrNullVertex is returned by GetParent for the zero-value vertex id.
	ErrNullVertex = errors.New("treeview: encountered a null vertex")

	// ErrNotInTree is returned by GetParent/IsParent for a vertex the
	// view never visited.
	ErrNotInTree = errors.New("treeview: vertex is not part of the tree")

	// ErrCrossEdgeLeavesSubtree is recorded in LastError when an
	// EdgeRemoved event collapses a subtree that still has cross-edges
	// into the remaining tree; reattaching that subtree under its
	// cross-edge is not supported.
	ErrCrossEdgeLeavesSubtree = errors.New("treeview: removing this edge leaves cross-edges into the remaining tree")
)

// CrossEdge is a non-tree edge discovered between two frames that are
// both already part of the view (a back-edge or a genuine cross-edge
// in BFS terms).
type CrossEdge struct {
	Origin, Target string
}

type relation struct {
	parent    string
	hasParent bool
	children  map[string]bool
}

// Graph is the narrow view TreeView needs from the graph it tracks.
// graph.Graph satisfies this structurally.
type Graph interface {
	HasVertex(id string) bool
	Neighbors(id string) []string
}

// TreeView is a spanning tree over the frames reachable from Root,
// plus every cross-edge encountered while building or maintaining it.
//
// TreeView embeds event.BaseSubscriber so it satisfies event.Subscriber
// with no-ops for the item events it never reacts to; OnEdgeAdded and
// OnEdgeRemoved (subscribe.go) override the tree-maintenance behavior.
type TreeView struct {
	event.BaseSubscriber

	root    string
	hasRoot bool
	tree    map[string]*relation
	cross   []CrossEdge

	graph Graph

	bus        *event.Bus
	handle     event.Handle
	subscribed bool
	lastErr    error

	onEdgeAdded      func(origin, target string)
	onCrossEdgeAdded func(origin, target string)
	onEdgeRemoved    func(origin, target string)
}

// Root returns the frame this view is rooted at, and whether a root has
// been set at all.
func (tv *TreeView) Root() (string, bool) { return tv.root, tv.hasRoot }

// IsRoot reports whether id is this view's root.
func (tv *TreeView) IsRoot(id string) bool { return tv.hasRoot && id == tv.root }

// VertexExists reports whether id is part of the tree.
func (tv *TreeView) VertexExists(id string) bool {
	_, ok := tv.tree[id]
	return ok
}

// EdgeExists reports whether a is the parent of b or vice versa.
func (tv *TreeView) EdgeExists(a, b string) bool {
	ra, aok := tv.tree[a]
	rb, bok := tv.tree[b]
	if !aok || !bok {
		return false
	}
	return (rb.hasParent && rb.parent == a) || (ra.hasParent && ra.parent == b)
}

// IsParent reports whether parent is child's immediate parent in the
// tree.
func (tv *TreeView) IsParent(parent, child string) (bool, error) {
	r, ok := tv.tree[child]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrNotInTree, child)
	}
	return r.hasParent && r.parent == parent, nil
}

// GetParent returns node's parent in the tree. Returns ErrNullVertex
// for the empty id and ErrNotInTree if node isn't part of the view.
func (tv *TreeView) GetParent(node string) (string, error) {
	if node == "" {
		return "", ErrNullVertex
	}
	r, ok := tv.tree[node]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotInTree, node)
	}
	if !r.hasParent {
		return "", nil
	}
	return r.parent, nil
}

// Children returns node's immediate children, in no particular order.
func (tv *TreeView) Children(node string) []string {
	r, ok := tv.tree[node]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(r.children))
	for c := range r.children {
		out = append(out, c)
	}
	return out
}

// CrossEdges returns every cross/back edge discovered so far.
func (tv *TreeView) CrossEdges() []CrossEdge {
	out := make([]CrossEdge, len(tv.cross))
	copy(out, tv.cross)
	return out
}

// Size returns the number of vertices currently in the view.
func (tv *TreeView) Size() int { return len(tv.tree) }

// LastError returns the error recorded by the most recent reaction to an
// EdgeRemoved event, or nil. event.Subscriber methods cannot return an
// error directly, so the tree-leaving-cross-edge collapse failure is
// surfaced here instead.
func (tv *TreeView) LastError() error { return tv.lastErr }

// IsSubscribed reports whether tv is currently attached to an event.Bus.
func (tv *TreeView) IsSubscribed() bool { return tv.subscribed }

// OnEdgeAddedFunc registers a callback invoked whenever a tree edge is
// added (parent, child order). Replaces any previously registered
// callback.
func (tv *TreeView) OnEdgeAddedFunc(fn func(origin, target string)) { tv.onEdgeAdded = fn }

// OnCrossEdgeAddedFunc registers a callback invoked whenever a
// cross-edge is discovered.
func (tv *TreeView) OnCrossEdgeAddedFunc(fn func(origin, target string)) { tv.onCrossEdgeAdded = fn }

// OnEdgeRemovedFunc registers a callback invoked whenever a tree edge is
// removed (parent, child order).
func (tv *TreeView) OnEdgeRemovedFunc(fn func(origin, target string)) { tv.onEdgeRemoved = fn }

func (tv *TreeView) ensureNode(id string) *relation {
	r, ok := tv.tree[id]
	if !ok {
		r = &relation{children: make(map[string]bool)}
		tv.tree[id] = r
	}
	return r
}

func (tv *TreeView) addTreeEdge(parent, child string) {
	tv.ensureNode(parent)
	cr := tv.ensureNode(child)
	cr.parent = parent
	cr.hasParent = true
	tv.tree[parent].children[child] = true
	if tv.onEdgeAdded != nil {
		tv.onEdgeAdded(parent, child)
	}
}

// hasCrossEdge reports whether the unordered pair (a, b) is already
// recorded, in either direction.
func (tv *TreeView) hasCrossEdge(a, b string) bool {
	for _, ce := range tv.cross {
		if (ce.Origin == a && ce.Target == b) || (ce.Origin == b && ce.Target == a) {
			return true
		}
	}
	return false
}

func (tv *TreeView) addCrossEdge(origin, target string) {
	if tv.hasCrossEdge(origin, target) {
		return
	}
	tv.cross = append(tv.cross, CrossEdge{Origin: origin, Target: target})
	if tv.onCrossEdgeAdded != nil {
		tv.onCrossEdgeAdded(origin, target)
	}
}
