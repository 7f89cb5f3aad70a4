// Package frame defines Frame, the named container the graph creates for
// every vertex: a FrameId plus an item.Store.
//
// A Frame is created by graph.Graph, mutated only through graph.Graph's
// item-lifecycle methods, and destroyed only once no edge touches it.
package frame

import "github.com/oxideframe/envgraph/item"

// Frame is the per-vertex property the graph stores: a unique, non-empty
// id and the item store attached to it.
type Frame struct {
	id    string
	store *item.Store
}

// New constructs a Frame with the given id and an empty item store. It
// is the factory graph.NewEnvireGraph passes to graph.NewGraph so every
// implicitly-created vertex gets a usable item store from the start.
func New(id string) *Frame {
	return &Frame{id: id, store: item.NewStore(id)}
}

// FrameID implements graph.FrameProperty.
func (f *Frame) FrameID() string { return f.id }

// SetFrameID implements graph.FrameProperty. Only graph.Graph calls this,
// and only to keep the label index and the stored id in lockstep;
// changing a live frame's id elsewhere would break that pairing.
func (f *Frame) SetFrameID(id string) {
	f.id = id
	f.store.Rename(id)
}

// Items returns this frame's item store.
func (f *Frame) Items() *item.Store { return f.store }
