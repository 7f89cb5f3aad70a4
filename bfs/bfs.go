// Package bfs implements breadth-first search over any labeled graph that
// can answer HasVertex and Neighbors, returning unweighted shortest-path
// distances, parent links, and visit order.
package bfs

import (
	"errors"
	"fmt"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// Graph is the narrow view BFS needs. graph.Graph satisfies it
// structurally; so does anything else willing to answer these two
// questions about a labeled vertex set.
type Graph interface {
	HasVertex(id string) bool
	Neighbors(id string) []string
}

type queueItem struct {
	id     string
	depth  int
	parent string // empty for root
}

type walker struct {
	graph   Graph
	opts    Options
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// Walk runs breadth-first search on g starting from startID, applying
// any number of functional Options.
func Walk(g Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0),
		visited: make(map[string]bool),
		res: &Result{
			Order:  make([]string, 0),
			Depth:  make(map[string]int),
			Parent: make(map[string]string),
		},
	}

	w.enqueue(startID, 0, "")
	return w.res, w.loop()
}

func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d, parent: parent})
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		cur := w.dequeue()
		if err := w.visit(cur); err != nil {
			return err
		}
		w.enqueueNeighbors(cur)
	}
	return nil
}

func (w *walker) dequeue() queueItem {
	cur := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(cur.id, cur.depth)
	return cur
}

func (w *walker) visit(cur queueItem) error {
	w.res.Order = append(w.res.Order, cur.id)
	if err := w.opts.OnVisit(cur.id, cur.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", cur.id, err)
	}
	return nil
}

func (w *walker) enqueueNeighbors(cur queueItem) {
	for _, nbr := range w.graph.Neighbors(cur.id) {
		if !w.opts.FilterNeighbor(cur.id, nbr) {
			continue
		}
		nextDepth := cur.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, cur.id)
		}
	}
}
