// Package envgraph is your in-memory environment representation for
// robotics: a labeled, bidirectional spatial graph whose vertices
// ("frames") are coordinate systems and whose edges carry rigid-body
// transforms.
//
// 🚀 What is envgraph?
//
//	A graph of named coordinate frames connected by 6-DoF transforms,
//	with a type-indexed item store attached to every frame:
//
//	  • transform/  — timestamped rigid-body pose + covariance, compose/inverse
//	  • item/       — type-erased per-frame item store with a class-metadata registry
//	  • frame/      — named frame holding an item store
//	  • graph/      — the labeled multigraph: add/remove frames & edge pairs,
//	                  transform queries, BFS path search
//	  • event/      — publisher/subscriber plumbing for graph mutations
//	  • treeview/   — auto-updating spanning-tree snapshot of the graph
//	  • path/       — auto-invalidating frame sequence between two endpoints
//	  • serialize/  — whole-graph save/load with per-item codec dispatch
//
// ✨ Why envgraph?
//
//   - Single-owner, cooperative — no internal locking; external callers
//     serialize their own mutations (see graph.Graph doc)
//   - Extensible — attach per-item contents-changed callbacks, register
//     new item codecs without touching the core
//   - Every edge pair is enforced mutual-inverse; TreeViews and Paths stay
//     consistent with the graph via the event bus, not polling
//
// Quick ASCII example:
//
//	    world
//	    │
//	    base_link───camera
//
//	three frames, two transform edge-pairs.
package envgraph
