// File: document.go
// Role: the on-disk archive shape — a header, one record per frame
// (with its item map), and one record per edge pair.
package serialize

import (
	"time"

	"github.com/google/uuid"

	"github.com/oxideframe/envgraph/item"
	"github.com/oxideframe/envgraph/transform"
)

// ArchiveVersion tags which encoding convention an archive was written
// with. Legacy archives used host-sized length fields; version 1 fixed
// them at 64 bits. Go reads both identically, so the version byte is
// retained purely to keep every archive self-describing.
type ArchiveVersion uint8

// Recognized archive versions.
const (
	// ArchiveVersionLegacy is the pre-versioning encoding; accepted on
	// load, never written.
	ArchiveVersionLegacy ArchiveVersion = 0
	// ArchiveVersionV1 is the fixed-64-bit-size-field encoding; the only
	// version this package writes.
	ArchiveVersionV1 ArchiveVersion = 1

	// CurrentArchiveVersion is the version SaveGraph stamps on every
	// archive it writes.
	CurrentArchiveVersion = ArchiveVersionV1
)

// GraphHeader is the archive's environment identity: which environment
// this graph describes, under what name.
type GraphHeader struct {
	EnvironmentUUID uuid.UUID      `yaml:"environment_uuid"`
	EnvironmentName string         `yaml:"environment_name"`
	Version         ArchiveVersion `yaml:"version"`
}

// document is the root of the YAML archive.
type document struct {
	Header   GraphHeader    `yaml:"header"`
	Vertices []vertexRecord `yaml:"vertices"`
	Edges    []edgeRecord   `yaml:"edges"`
}

// vertexRecord is one frame: its id and its item map, encoded as the
// count of populated type-tags then, per tag, the items stored under
// it.
type vertexRecord struct {
	FrameID string         `yaml:"frame_id"`
	Items   []itemTagGroup `yaml:"items,omitempty"`
}

// itemTagGroup is every item stored under one runtime type tag in a
// single frame.
type itemTagGroup struct {
	Tag   item.TypeTag `yaml:"tag"`
	Items []itemRecord `yaml:"items"`
}

// itemRecord is one item: a class-name header plus the bytes its
// registered Codec produced. UUID and timestamp are duplicated out of
// the codec bytes so tooling can list an archive without any codec
// loaded.
type itemRecord struct {
	ClassName string    `yaml:"class_name"`
	UUID      uuid.UUID `yaml:"uuid"`
	Timestamp time.Time `yaml:"timestamp"`
	Data      []byte    `yaml:"data"`
}

// edgeRecord is one edge pair, canonicalized to a single direction; the
// reverse is regenerated on load via Payload.Inverse(), since
// graph.Graph.AddEdge guarantees the pairing anyway and deriving it
// keeps the archive half the size without weakening the invariant.
type edgeRecord struct {
	Origin  string              `yaml:"origin"`
	Target  string              `yaml:"target"`
	Payload transform.Transform `yaml:"payload"`
}
