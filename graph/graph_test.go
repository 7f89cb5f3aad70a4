package graph_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxideframe/envgraph/graph"
	"github.com/oxideframe/envgraph/transform"
)

func translation(x, y, z float64) transform.Transform {
	return transform.Transform{
		Time: time.Unix(0, 0),
		Pose: transform.Pose{
			Translation: transform.Vector3{X: x, Y: y, Z: z},
			Rotation:    transform.IdentityQuaternion,
			Valid:       true,
		},
	}
}

func TestEnvireGraph_GetTransformComposesAcrossChain(t *testing.T) {
	g := graph.NewEnvireGraph()
	require.NoError(t, g.AddEdge("A", "B", translation(1, 0, 0)))
	require.NoError(t, g.AddEdge("B", "C", translation(0, 1, 0)))

	ac, err := g.GetTransform("A", "C")
	require.NoError(t, err)
	assert.Equal(t, transform.Vector3{X: 1, Y: 1, Z: 0}, ac.Pose.Translation)

	ca, err := g.GetTransform("C", "A")
	require.NoError(t, err)
	assert.Equal(t, transform.Vector3{X: -1, Y: -1, Z: 0}, ca.Pose.Translation)
}

func TestEnvireGraph_FramesBetweenFailsAfterRemoveEdge(t *testing.T) {
	g := graph.NewEnvireGraph()
	require.NoError(t, g.AddEdge("A", "B", translation(1, 0, 0)))
	require.NoError(t, g.AddEdge("B", "C", translation(1, 0, 0)))
	require.NoError(t, g.AddEdge("C", "D", translation(1, 0, 0)))

	path, err := g.FramesBetween("A", "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, path)

	require.NoError(t, g.RemoveEdge("B", "C"))

	_, err = g.FramesBetween("A", "D")
	assert.Error(t, err)
}

func TestEnvireGraph_AddEdgeTwiceFailsAndLeavesOnePair(t *testing.T) {
	g := graph.NewEnvireGraph()
	require.NoError(t, g.AddEdge("A", "B", translation(1, 0, 0)))

	err := g.AddEdge("A", "B", translation(1, 0, 0))
	assert.ErrorIs(t, err, graph.ErrEdgeAlreadyExists)
	assert.Equal(t, 1, g.NumEdges())
}

func TestEnvireGraph_RemoveFrameRefusesWhileConnected(t *testing.T) {
	g := graph.NewEnvireGraph()
	require.NoError(t, g.AddEdge("A", "B", translation(1, 0, 0)))

	err := g.RemoveFrame("A")
	assert.ErrorIs(t, err, graph.ErrFrameStillConnected)

	require.NoError(t, g.RemoveEdge("A", "B"))
	assert.NoError(t, g.RemoveFrame("A"))
	assert.False(t, g.ContainsFrame("A"))
}

func TestEnvireGraph_DisconnectFrameRemovesAllEdges(t *testing.T) {
	g := graph.NewEnvireGraph()
	require.NoError(t, g.AddEdge("root", "child1", translation(1, 0, 0)))
	require.NoError(t, g.AddEdge("root", "child2", translation(0, 1, 0)))

	require.NoError(t, g.DisconnectFrame("root"))

	assert.Equal(t, 0, g.NumEdges())
	assert.True(t, g.ContainsFrame("root"))
}

func TestEnvireGraph_EmplaceFrameRejectsDuplicate(t *testing.T) {
	g := graph.NewEnvireGraph()
	_, err := g.EmplaceFrame("A")
	require.NoError(t, err)

	_, err = g.EmplaceFrame("A")
	assert.ErrorIs(t, err, graph.ErrFrameAlreadyExists)
}
