// Package item implements the type-erased, per-frame item store and the
// process-wide item metadata registry the serialization boundary keys
// off.
//
// Polymorphism runs over a closed interface plus a stable string
// TypeTag used for grouping and downcasting, instead of reflection: an
// item's tag decides which list it lives in and which handlers see it.
package item

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// TypeTag identifies an item's runtime type for grouping inside a Store
// and for dispatch in the typed event subscriber (event package) and the
// codec registry (serialize package). Stable once assigned; never
// changes for a given Go type.
type TypeTag string

// Item is the capability set every stored value exposes:
// timestamp, UUID, owning-frame name, runtime type tag, raw data, an
// optional class name for the serialization boundary, Clone, and a
// contents-changed signal.
type Item interface {
	// UUID is assigned at construction and never changes.
	UUID() uuid.UUID
	// Timestamp of the item's contents.
	Timestamp() time.Time
	// Frame returns the owning frame's FrameId, or "" if not currently
	// stored in any frame.
	Frame() string
	// SetFrame is called by Store.Add when the item is added to a frame
	// and by graph.EnvireGraph when it is removed from one; other
	// callers must not call this directly.
	SetFrame(id string)
	// TypeTag is this item's runtime type tag, used to group it inside
	// a Store and for typed event dispatch.
	TypeTag() TypeTag
	// ClassName is the serialization class name understood by the codec
	// registry; empty if the item has no registered codec.
	ClassName() string
	// Data returns the raw payload, type-erased.
	Data() interface{}
	// Clone returns a copy carrying a fresh identity in no frame. Base's
	// Clone shares the original's Data() value rather than copying it.
	Clone() Item
	// ContentsChanged fires every registered callback once, synchronously,
	// passing the receiver. Callers mutate Data() out-of-band and then
	// call this to announce the change.
	ContentsChanged()
	// OnContentsChanged registers fn to run on every future
	// ContentsChanged call and returns a handle for Detach.
	OnContentsChanged(fn func(Item)) CallbackHandle
	// Detach removes a callback previously registered with
	// OnContentsChanged. A no-op if h is unknown.
	Detach(h CallbackHandle)
}

// CallbackHandle identifies a registered contents-changed callback so it
// can later be detached by the same identity it was registered under.
type CallbackHandle uint64

// Base is the concrete Item implementation used throughout envgraph; a
// concrete item type wraps a *Base and supplies its own payload through
// Data(), with TypeTag/ClassName naming it for the store and the codec
// registry.
type Base struct {
	mu        sync.Mutex
	uuid      uuid.UUID
	timestamp time.Time
	frame     string
	typeTag   TypeTag
	className string
	data      interface{}

	nextHandle CallbackHandle
	callbacks  map[CallbackHandle]func(Item)
}

// NewBase constructs a Base with a fresh UUID, ready to be wrapped by a
// concrete item type. data is stored verbatim and returned by Data().
func NewBase(typeTag TypeTag, className string, ts time.Time, data interface{}) *Base {
	return &Base{
		uuid:      uuid.New(),
		timestamp: ts,
		typeTag:   typeTag,
		className: className,
		data:      data,
		callbacks: make(map[CallbackHandle]func(Item)),
	}
}

// RestoreBase rebuilds a Base carrying a specific, already-assigned
// identity. Used exclusively by item codecs to reconstruct an item from
// an archive without minting a new UUID, so identity survives a
// save/load round trip.
func RestoreBase(id uuid.UUID, typeTag TypeTag, className string, ts time.Time, data interface{}) *Base {
	return &Base{
		uuid:      id,
		timestamp: ts,
		typeTag:   typeTag,
		className: className,
		data:      data,
		callbacks: make(map[CallbackHandle]func(Item)),
	}
}

// UUID implements Item.
func (b *Base) UUID() uuid.UUID { return b.uuid }

// Timestamp implements Item.
func (b *Base) Timestamp() time.Time { return b.timestamp }

// Frame implements Item.
func (b *Base) Frame() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.frame
}

// SetFrame implements Item.
func (b *Base) SetFrame(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.frame = id
}

// TypeTag implements Item.
func (b *Base) TypeTag() TypeTag { return b.typeTag }

// ClassName implements Item.
func (b *Base) ClassName() string { return b.className }

// Data implements Item.
func (b *Base) Data() interface{} { return b.data }

// SetData replaces the raw payload; callers typically follow this with
// ContentsChanged().
func (b *Base) SetData(data interface{}) { b.data = data }

// Clone implements Item: returns a fresh Base with a new UUID, detached
// from any frame and with no registered callbacks, carrying the same
// timestamp/type/class/data.
func (b *Base) Clone() Item {
	return NewBase(b.typeTag, b.className, b.timestamp, b.data)
}

// ContentsChanged implements Item.
func (b *Base) ContentsChanged() {
	b.mu.Lock()
	callbacks := make([]func(Item), 0, len(b.callbacks))
	for _, fn := range b.callbacks {
		callbacks = append(callbacks, fn)
	}
	b.mu.Unlock()
	for _, fn := range callbacks {
		fn(b)
	}
}

// OnContentsChanged implements Item.
func (b *Base) OnContentsChanged(fn func(Item)) CallbackHandle {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextHandle++
	h := b.nextHandle
	b.callbacks[h] = fn
	return h
}

// Detach implements Item.
func (b *Base) Detach(h CallbackHandle) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.callbacks, h)
}
