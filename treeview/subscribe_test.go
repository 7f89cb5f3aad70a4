package treeview_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxideframe/envgraph/graph"
	"github.com/oxideframe/envgraph/treeview"
)

// A tree rooted at A with children B, C, D, each with two
// grandchildren; removing A-B must emit exactly three edge-removed
// events, in bottom-up order, and leave only C, D and their descendants
// in the view.
func TestSubscribe_RemoveEdgeCollapsesSubtreeBottomUp(t *testing.T) {
	g := buildTreeFixture(t)
	tv := g.NewTreeView("A", true)

	var removedOrder [][2]string
	tv.OnEdgeRemovedFunc(func(parent, child string) {
		removedOrder = append(removedOrder, [2]string{parent, child})
	})

	require.NoError(t, g.RemoveEdge("A", "B"))

	require.Len(t, removedOrder, 3)
	// Children before their own parent link.
	assert.ElementsMatch(t, []string{"B1", "B2"}, []string{removedOrder[0][1], removedOrder[1][1]})
	assert.Equal(t, "B", removedOrder[2][1])
	assert.Equal(t, "A", removedOrder[2][0])

	assert.False(t, tv.VertexExists("B"))
	assert.False(t, tv.VertexExists("B1"))
	assert.False(t, tv.VertexExists("B2"))
	assert.True(t, tv.VertexExists("C"))
	assert.True(t, tv.VertexExists("D"))
	assert.Equal(t, 7, tv.Size()) // A, C, D, C1, C2, D1, D2
}

func TestSubscribe_EdgeAddedCase2AttachesChildAndPullsInSubgraph(t *testing.T) {
	g := graph.NewEnvireGraph()
	require.NoError(t, g.AddEdge("A", "B", translation(1, 0, 0)))
	tv := g.NewTreeView("A", true)

	// A disconnected sub-graph C-D joins the tree in one AddEdge(B, C)
	// call; D is only reachable from C, not from A directly.
	require.NoError(t, g.AddEdge("C", "D", translation(1, 0, 0)))
	require.NoError(t, g.AddEdge("B", "C", translation(1, 0, 0)))

	assert.True(t, tv.VertexExists("C"))
	assert.True(t, tv.VertexExists("D"))
	parent, err := tv.GetParent("C")
	require.NoError(t, err)
	assert.Equal(t, "B", parent)
}

func TestSubscribe_EdgeAddedCase4RecordsCrossEdge(t *testing.T) {
	g := graph.NewEnvireGraph()
	require.NoError(t, g.AddEdge("A", "B", translation(1, 0, 0)))
	require.NoError(t, g.AddEdge("A", "C", translation(1, 0, 0)))
	tv := g.NewTreeView("A", true)

	require.NoError(t, g.AddEdge("B", "C", translation(1, 0, 0)))

	require.Len(t, tv.CrossEdges(), 1)
	ce := tv.CrossEdges()[0]
	assert.ElementsMatch(t, []string{"B", "C"}, []string{ce.Origin, ce.Target})
}

func TestSubscribe_EdgeAddedCase1IgnoresDisconnectedComponent(t *testing.T) {
	g := graph.NewEnvireGraph()
	require.NoError(t, g.AddEdge("A", "B", translation(1, 0, 0)))
	tv := g.NewTreeView("A", true)

	require.NoError(t, g.AddEdge("X", "Y", translation(1, 0, 0)))

	assert.False(t, tv.VertexExists("X"))
	assert.False(t, tv.VertexExists("Y"))
}

func TestSubscribe_RemovingCrossEdgeJustDropsIt(t *testing.T) {
	g := graph.NewEnvireGraph()
	require.NoError(t, g.AddEdge("A", "B", translation(1, 0, 0)))
	require.NoError(t, g.AddEdge("B", "C", translation(1, 0, 0)))
	require.NoError(t, g.AddEdge("C", "A", translation(1, 0, 0)))
	tv := g.NewTreeView("A", true)
	require.Len(t, tv.CrossEdges(), 1)

	// A's two direct neighbors become tree edges (A-B, A-C); B-C is the
	// one left over as the cross edge.
	require.NoError(t, g.RemoveEdge("B", "C"))

	assert.Len(t, tv.CrossEdges(), 0)
	assert.True(t, tv.VertexExists("A"))
	assert.True(t, tv.VertexExists("B"))
	assert.True(t, tv.VertexExists("C"))
	assert.NoError(t, tv.LastError())
}

func TestSubscribe_TreeLeavingCrossEdgeReportsUnimplementedCollapse(t *testing.T) {
	g := graph.NewEnvireGraph()
	require.NoError(t, g.AddEdge("A", "B", translation(1, 0, 0)))
	require.NoError(t, g.AddEdge("A", "C", translation(1, 0, 0)))
	require.NoError(t, g.AddEdge("B", "B1", translation(1, 0, 0)))
	require.NoError(t, g.AddEdge("B1", "C", translation(1, 0, 0)))
	tv := g.NewTreeView("A", true)
	require.Len(t, tv.CrossEdges(), 1)

	// Severing A-B collapses {B, B1}; the B1-C cross-edge still leads
	// out of the collapsed sub-tree, and reattaching through it is not
	// supported, so the view reports the failure instead of silently
	// losing structure.
	require.NoError(t, g.RemoveEdge("A", "B"))

	assert.ErrorIs(t, tv.LastError(), treeview.ErrCrossEdgeLeavesSubtree)
	assert.False(t, tv.VertexExists("B"))
	assert.False(t, tv.VertexExists("B1"))
	assert.True(t, tv.VertexExists("C"))
}

func TestSubscribe_UnsubscribeStopsReacting(t *testing.T) {
	g := graph.NewEnvireGraph()
	require.NoError(t, g.AddEdge("A", "B", translation(1, 0, 0)))
	tv := g.NewTreeView("A", true)
	tv.Unsubscribe()

	require.NoError(t, g.AddEdge("B", "C", translation(1, 0, 0)))
	assert.False(t, tv.VertexExists("C"))
}
