// File: store.go
// Role: per-frame item store — type-tag -> ordered item list.
package item

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Sentinel errors for Store operations.
var (
	// ErrUnknownItem indicates Remove was called with an item not
	// present in the store under its type tag.
	ErrUnknownItem = errors.New("item: unknown item")

	// ErrNoItemsOfType indicates a query for a type tag with no entries.
	ErrNoItemsOfType = errors.New("item: no items of requested type")
)

// UnknownItemError carries the frame and uuid context for ErrUnknownItem.
type UnknownItemError struct {
	Frame string
	UUID  uuid.UUID
}

func (e *UnknownItemError) Error() string {
	return fmt.Sprintf("item: item %s is not part of frame %q", e.UUID, e.Frame)
}

func (e *UnknownItemError) Unwrap() error { return ErrUnknownItem }

// NoItemsOfTypeError carries the frame/type context for ErrNoItemsOfType.
type NoItemsOfTypeError struct {
	Frame string
	Type  TypeTag
}

func (e *NoItemsOfTypeError) Error() string {
	return fmt.Sprintf("item: no items of type %q in frame %q", e.Type, e.Frame)
}

func (e *NoItemsOfTypeError) Unwrap() error { return ErrNoItemsOfType }

// Store is the mapping from runtime TypeTag to an ordered, duplicate-
// tolerant sequence of Items.
type Store struct {
	frame string
	byTag map[TypeTag][]Item
}

// NewStore constructs an empty store owned by frame.
func NewStore(frame string) *Store {
	return &Store{frame: frame, byTag: make(map[TypeTag][]Item)}
}

// Rename updates the frame name new items are tagged with; it does not
// retroactively touch already-stored items (only graph.Graph calls this,
// to keep a Frame's FrameProperty.SetFrameID in lockstep before any item
// has been added).
func (s *Store) Rename(frame string) { s.frame = frame }

// Add appends it to the list for its type tag and marks it owned by this
// store's frame.
func (s *Store) Add(it Item) {
	tag := it.TypeTag()
	s.byTag[tag] = append(s.byTag[tag], it)
	it.SetFrame(s.frame)
}

// Remove locates it by identity (UUID) inside the list for its type tag
// and removes it. The item's frame field is left untouched so the caller
// can publish its removal event with the owning frame still visible,
// then clear it (see graph.EnvireGraph.RemoveItemFromFrame). Returns
// UnknownItemError if it is not present under its own type tag.
func (s *Store) Remove(it Item) error {
	tag := it.TypeTag()
	list := s.byTag[tag]
	for i, candidate := range list {
		if candidate.UUID() == it.UUID() {
			s.byTag[tag] = append(list[:i], list[i+1:]...)
			if len(s.byTag[tag]) == 0 {
				delete(s.byTag, tag)
			}
			return nil
		}
	}
	return &UnknownItemError{Frame: s.frame, UUID: it.UUID()}
}

// RemoveAt removes the item at index idx within tag's list and returns
// it along with the index the successor now occupies (iterator-based
// removal returning the successor). Removal invalidates any index a
// caller holds into the same type list. The item's frame field is left
// untouched; the caller publishes and clears it. Returns
// ErrNoItemsOfType if tag has no entry, or a plain range error
// otherwise.
func (s *Store) RemoveAt(tag TypeTag, idx int) (Item, int, error) {
	list, ok := s.byTag[tag]
	if !ok {
		return nil, 0, &NoItemsOfTypeError{Frame: s.frame, Type: tag}
	}
	if idx < 0 || idx >= len(list) {
		return nil, 0, fmt.Errorf("item: index %d out of range for type %q (len %d)", idx, tag, len(list))
	}
	removed := list[idx]
	list = append(list[:idx], list[idx+1:]...)
	if len(list) == 0 {
		delete(s.byTag, tag)
		return removed, idx, nil
	}
	s.byTag[tag] = list
	return removed, idx, nil
}

// Clear removes every item from the store and returns them with their
// frame fields still set, so the caller can emit one removal event per
// item while the item still names its owning frame, then clear the
// fields (see graph.EnvireGraph.ClearFrame). Items are returned in
// insertion order within each type, types in sorted order.
func (s *Store) Clear() []Item {
	var removed []Item
	for _, tag := range s.Types() {
		removed = append(removed, s.byTag[tag]...)
		delete(s.byTag, tag)
	}
	return removed
}

// Items returns the live slice of items stored under tag. Returns
// ErrNoItemsOfType when the tag has no entry.
func (s *Store) Items(tag TypeTag) ([]Item, error) {
	list, ok := s.byTag[tag]
	if !ok {
		return nil, &NoItemsOfTypeError{Frame: s.frame, Type: tag}
	}
	return list, nil
}

// Count returns the total number of items across all types.
func (s *Store) Count() int {
	n := 0
	for _, list := range s.byTag {
		n += len(list)
	}
	return n
}

// ContainsType reports whether tag has at least one stored item.
func (s *Store) ContainsType(tag TypeTag) bool {
	return len(s.byTag[tag]) > 0
}

// DataOf returns the raw data of every item stored under tag, downcast
// to T via the item's type tag rather than reflection over the whole
// store. An item whose Data() is not a T reports a mismatch error
// naming the tag, since a tag list is homogeneous by construction.
func DataOf[T any](s *Store, tag TypeTag) ([]T, error) {
	list, err := s.Items(tag)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(list))
	for _, it := range list {
		v, ok := it.Data().(T)
		if !ok {
			return nil, fmt.Errorf("item: item %s under tag %q does not carry the requested data type", it.UUID(), tag)
		}
		out = append(out, v)
	}
	return out, nil
}

// Types returns the set of type tags currently populated, sorted for
// deterministic iteration.
func (s *Store) Types() []TypeTag {
	tags := make([]TypeTag, 0, len(s.byTag))
	for tag := range s.byTag {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}
