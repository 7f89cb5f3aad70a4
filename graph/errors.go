package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph operations; use errors.Is against these,
// or errors.As against the accompanying typed error for the involved
// frame/edge identifiers.
var (
	// ErrUnknownFrame indicates an operation referenced a frame that
	// does not exist in the graph.
	ErrUnknownFrame = errors.New("graph: unknown frame")

	// ErrFrameAlreadyExists indicates EmplaceFrame/AddFrame was called
	// with an id already present in the graph.
	ErrFrameAlreadyExists = errors.New("graph: frame already exists")

	// ErrFrameStillConnected indicates RemoveFrame was called on a
	// frame that still has at least one edge attached.
	ErrFrameStillConnected = errors.New("graph: frame still connected")

	// ErrUnknownEdge indicates an operation referenced an edge that
	// does not exist between the given two frames.
	ErrUnknownEdge = errors.New("graph: unknown edge")

	// ErrUnknownTransform is returned by EnvireGraph.GetTransform for
	// every failure: an unknown frame, no chain between the two frames,
	// or a composed pose flagged invalid. It is distinct from
	// ErrUnknownEdge.
	ErrUnknownTransform = errors.New("graph: unknown transform")

	// ErrEdgeAlreadyExists indicates AddEdge was called for a pair of
	// frames that are already directly connected.
	ErrEdgeAlreadyExists = errors.New("graph: edge already exists")

	// ErrInvalidPath indicates FramesBetween found no route between the
	// two frames. GetPath does not return it; it returns an empty Path.
	ErrInvalidPath = errors.New("graph: invalid path")

	// ErrNullVertex indicates an internal traversal produced a null
	// vertex reference; this should never happen and signals a bug if
	// it does.
	ErrNullVertex = errors.New("graph: encountered a null vertex")
)

// UnknownFrameError names the frame an operation could not find.
type UnknownFrameError struct{ FrameID string }

func (e *UnknownFrameError) Error() string {
	return fmt.Sprintf("graph: frame %q doesn't exist", e.FrameID)
}
func (e *UnknownFrameError) Unwrap() error { return ErrUnknownFrame }

// FrameAlreadyExistsError names the frame a creation call collided
// with.
type FrameAlreadyExistsError struct{ FrameID string }

func (e *FrameAlreadyExistsError) Error() string {
	return fmt.Sprintf("graph: frame %q already exists", e.FrameID)
}
func (e *FrameAlreadyExistsError) Unwrap() error { return ErrFrameAlreadyExists }

// FrameStillConnectedError names the frame RemoveFrame refused to drop.
type FrameStillConnectedError struct{ FrameID string }

func (e *FrameStillConnectedError) Error() string {
	return fmt.Sprintf("graph: frame %q is still connected to the graph; "+
		"all edges to or from this frame must be removed first", e.FrameID)
}
func (e *FrameStillConnectedError) Unwrap() error { return ErrFrameStillConnected }

// UnknownEdgeError names the endpoint pair an edge-lookup call could
// not find.
type UnknownEdgeError struct{ Origin, Target string }

func (e *UnknownEdgeError) Error() string {
	return fmt.Sprintf("graph: edge between %q and %q doesn't exist", e.Origin, e.Target)
}
func (e *UnknownEdgeError) Unwrap() error { return ErrUnknownEdge }

// UnknownTransformError names the two frames GetTransform could not
// relate.
type UnknownTransformError struct{ Origin, Target string }

func (e *UnknownTransformError) Error() string {
	return fmt.Sprintf("graph: transform between %q and %q doesn't exist", e.Origin, e.Target)
}
func (e *UnknownTransformError) Unwrap() error { return ErrUnknownTransform }

// EdgeAlreadyExistsError names the endpoint pair AddEdge refused to
// duplicate.
type EdgeAlreadyExistsError struct{ Origin, Target string }

func (e *EdgeAlreadyExistsError) Error() string {
	return fmt.Sprintf("graph: edge between %q and %q already exists", e.Origin, e.Target)
}
func (e *EdgeAlreadyExistsError) Unwrap() error { return ErrEdgeAlreadyExists }

// InvalidPathError names the two frames a path-building call could not
// connect.
type InvalidPathError struct{ Origin, Target string }

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("graph: no path from %q to %q", e.Origin, e.Target)
}
func (e *InvalidPathError) Unwrap() error { return ErrInvalidPath }
