// File: registry.go
// Role: process-wide item metadata registry, mapping class names to
// type tags for the serialization boundary.
//
// In a deployed system a plugin layer registers each concrete item
// class when its shared library loads. envgraph carries no plugin
// loader; registration instead happens at package-init time or
// explicitly by the embedding application, against the same
// append-only, mutex-guarded, process-wide registry.
package item

import "sync"

// Metadata describes a concrete item type for the serialization boundary.
type Metadata struct {
	ClassName string
	TypeTag   TypeTag
}

var (
	metadataMu       sync.Mutex
	metadataByClass  = make(map[string]Metadata)
	metadataByTypTag = make(map[TypeTag]Metadata)
)

// RegisterMetadata records the class-name <-> type-tag association for a
// concrete item type. Re-registering the same class name with identical
// metadata is a no-op; registering a different TypeTag for an
// already-registered class name panics, since that would silently
// corrupt every future load.
func RegisterMetadata(m Metadata) {
	metadataMu.Lock()
	defer metadataMu.Unlock()
	if existing, ok := metadataByClass[m.ClassName]; ok {
		if existing.TypeTag != m.TypeTag {
			panic("item: conflicting metadata re-registration for class " + m.ClassName)
		}
		return
	}
	metadataByClass[m.ClassName] = m
	metadataByTypTag[m.TypeTag] = m
}

// LookupClass returns the metadata registered for className.
func LookupClass(className string) (Metadata, bool) {
	metadataMu.Lock()
	defer metadataMu.Unlock()
	m, ok := metadataByClass[className]
	return m, ok
}

// LookupTypeTag returns the metadata registered for tag.
func LookupTypeTag(tag TypeTag) (Metadata, bool) {
	metadataMu.Lock()
	defer metadataMu.Unlock()
	m, ok := metadataByTypTag[tag]
	return m, ok
}
