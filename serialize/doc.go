// Package serialize implements the whole-graph save/load boundary: a
// versioned YAML archive carrying a graph header, every frame's item
// map, and every edge pair, plus the process-wide item codec registry
// each item's bytes are dispatched through.
//
// The archive is a single yaml.v3 document, versioned so a later format
// change has somewhere to branch from. Per-item bytes remain whatever
// the registered Codec produces; serialize never looks inside them.
package serialize
