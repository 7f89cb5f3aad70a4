package serialize

import "errors"

// Sentinel errors for the serialization boundary.
var (
	// ErrTypeTagMismatch indicates a loaded item's own runtime type tag
	// differs from the tag its archive group was stored under.
	ErrTypeTagMismatch = errors.New("serialize: loaded item's type tag does not match its archived group")

	// ErrUnsupportedVersion indicates an archive declares a version
	// newer than this package understands.
	ErrUnsupportedVersion = errors.New("serialize: unsupported archive version")
)
