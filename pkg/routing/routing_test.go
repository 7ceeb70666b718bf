package routing

import (
	"strings"
	"sync"
	"testing"

	"github.com/natevvv/graph-pathfinder/pkg/config"
	"github.com/natevvv/graph-pathfinder/pkg/geometry"
	"github.com/natevvv/graph-pathfinder/pkg/graph"
	"github.com/natevvv/graph-pathfinder/pkg/graph/path"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nodes = `A 0 0
B 1 0
C 1.5 0.5
D 2 0
E
`

const arcs = `0 1 1
1 3 1
0 2 4
2 3 1
`

func newRouter(t *testing.T, navigator string) *Router {
	t.Helper()
	g, err := graph.NewGraphFromLists(strings.NewReader(nodes), strings.NewReader(arcs), 0, nil)
	require.NoError(t, err)
	search := config.Default().Search
	search.Navigator = navigator
	r, err := NewRouter(g, search)
	require.NoError(t, err)
	return r
}

func TestComputeRoute(t *testing.T) {
	for _, navigator := range config.Navigators {
		t.Run(navigator, func(t *testing.T) {
			r := newRouter(t, navigator)
			assert.Equal(t, navigator, r.NavigatorName())
			route, err := r.ComputeRoute("A", "D")
			require.NoError(t, err)
			assert.True(t, route.Exists)
			assert.Equal(t, 2.0, route.Cost)
			assert.Equal(t, []string{"A", "B", "D"}, route.Path)
			assert.Len(t, route.Waypoints, 3)
			assert.Equal(t, "[A-D] [2]\nA(0)->B(1)->D(1)", route.Description)
			assert.NotEmpty(t, r.GetSearchSpace())
		})
	}
}

func TestUnreachableRoute(t *testing.T) {
	r := newRouter(t, "ucs")
	route, err := r.ComputeRoute("A", "E")
	require.NoError(t, err)
	assert.False(t, route.Exists)
	assert.Empty(t, route.Path)
	assert.Equal(t, graph.Infinity, route.Cost)
}

func TestRouteErrors(t *testing.T) {
	r := newRouter(t, "astar")
	_, err := r.ComputeRoute("A", "X")
	assert.ErrorIs(t, err, ErrUnknownNode)
	_, err = r.ComputeRoute("X", "A")
	assert.ErrorIs(t, err, ErrUnknownNode)

	assert.ErrorIs(t, r.SetNavigator("contraction-hierarchies"), ErrUnknownNavigator)
	assert.Equal(t, "astar", r.NavigatorName())

	_, err = NewRouter(graph.NewGraph(0), config.SearchConfig{Navigator: "nope"})
	assert.ErrorIs(t, err, ErrUnknownNavigator)

	assert.Error(t, r.SetHeuristicMultiplier(0))
	assert.NoError(t, r.SetHeuristicMultiplier(0.5))
}

func TestComputeRouteByPosition(t *testing.T) {
	r := newRouter(t, "astar-precomputed")
	route, err := r.ComputeRouteByPosition(geometry.MakePoint(-0.2, 0.1), geometry.MakePoint(1.6, 0.6))
	require.NoError(t, err)
	assert.Equal(t, "A", route.Origin)
	assert.Equal(t, "C", route.Destination)
	assert.Equal(t, []string{"A", "B", "D", "C"}, route.Path)
	assert.Equal(t, 3.0, route.Cost)

	empty, err := NewRouter(graph.NewGraph(1), config.Default().Search)
	require.NoError(t, err)
	_, err = empty.ComputeRouteByPosition(geometry.MakePoint(0, 0), geometry.MakePoint(1, 1))
	assert.ErrorIs(t, err, ErrNoPositions)
}

func TestTraverse(t *testing.T) {
	r := newRouter(t, "ucs")
	labels, err := r.Traverse("dfs", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, labels)

	labels, err = r.Traverse("bfs", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, labels)
	assert.Len(t, r.GetSearchSpace(), 4)

	_, err = r.Traverse("zigzag", "A")
	assert.ErrorIs(t, err, ErrUnknownTraversal)
	_, err = r.Traverse("dfs", "X")
	assert.ErrorIs(t, err, ErrUnknownNode)
}

func TestGetNodes(t *testing.T) {
	r := newRouter(t, "ucs")
	nodes := r.GetNodes()
	require.Len(t, nodes, 5)
	assert.Equal(t, "C", nodes[2].Label)
	assert.True(t, nodes[2].HasPosition)
	assert.Equal(t, 1.5, nodes[2].Position.X())
	assert.False(t, nodes[4].HasPosition)
}

func TestConcurrentRoutes(t *testing.T) {
	r := newRouter(t, "astar")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			route, err := r.ComputeRoute("C", "A")
			assert.NoError(t, err)
			assert.Equal(t, 3.0, route.Cost)
		}()
	}
	wg.Wait()
}

func TestSpatialIndex(t *testing.T) {
	g := graph.NewGraph(3)
	g.AddNodeWithPosition("A", 0, geometry.MakePoint(0, 0))
	g.AddNodeWithPosition("B", 1, geometry.MakePoint(10, 10))
	g.AddNode("C", 2)
	index := NewSpatialIndex(g)
	assert.Equal(t, 2, index.Size())
	id, ok := index.Nearest(geometry.MakePoint(6, 7))
	assert.True(t, ok)
	assert.Equal(t, 1, id)
	id, _ = index.Nearest(geometry.MakePoint(1, -1))
	assert.Equal(t, 0, id)
}

func TestNewNavigator(t *testing.T) {
	g, err := graph.NewGraphFromLists(strings.NewReader(nodes), strings.NewReader(arcs), 0, nil)
	require.NoError(t, err)

	search := config.SearchConfig{Navigator: "astar", DiscoveryMarking: true}
	nav, err := NewNavigator(g, search)
	require.NoError(t, err)
	bestFirst, ok := nav.(*path.BestFirst)
	require.True(t, ok)
	assert.True(t, bestFirst.Options().IsDiscoveryMarking())
	m, ok := bestFirst.HeuristicMultiplier()
	assert.True(t, ok)
	assert.Equal(t, path.DefaultHeuristicMultiplier, m)

	_, err = NewNavigator(g, config.SearchConfig{Navigator: "dfs"})
	assert.ErrorIs(t, err, ErrUnknownNavigator)
}
