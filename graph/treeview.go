package graph

import "github.com/oxideframe/envgraph/treeview"

// NewTreeView builds a treeview.TreeView spanning every frame reachable
// from root. When subscribe is true the view attaches to g's event bus
// and stays in sync with future mutations; a
// detached view is a one-shot snapshot.
func (g *Graph[F, E]) NewTreeView(root string, subscribe bool) *treeview.TreeView {
	tv := treeview.New(g, root)
	if subscribe {
		tv.Subscribe(g.bus)
	}
	return tv
}
