// Package bfs provides breadth-first search over a minimal graph
// surface, HasVertex and Neighbors, which graph.Graph implements.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a
//     start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex to distance (edges) from start
//   - Parent: map from vertex to its predecessor in the BFS tree
//   - Supports functional hooks at three stages: OnEnqueue, OnDequeue,
//     OnVisit (may abort the walk with an error).
//   - Allows filtering of individual neighbor edges via
//     WithFilterNeighbor.
//   - Honors a MaxDepth limit (d>0) or an explicit "no limit" (d==0).
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Drive graph.Graph's FramesBetween, GetPath and Transform.
//     treeview.TreeView builds its spanning tree with its own BFS and
//     does not use this package.
//
// Determinism
//
// Neighbors order is whatever the underlying Graph returns; callers
// that need a reproducible visit order should have Neighbors return a
// stable order.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	result, err := bfs.Walk(g, "start")
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, or a hook error
//	}
//
//	result, err := bfs.Walk(
//	    g, "start",
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr, nbr string) bool { return curr != "skip" }),
//	)
package bfs
