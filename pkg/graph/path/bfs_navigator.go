package path

import (
	"github.com/natevvv/graph-pathfinder/pkg/graph"
	"github.com/natevvv/graph-pathfinder/pkg/graph/traversal"
)

// BFSNavigator finds the path with the least number of arcs using the targeted breadth-first search.
// The returned cost is the sum of the weights along this path, which is not necessarily the cheapest one.
type BFSNavigator struct {
	g     *graph.Graph
	found bool
}

func NewBFSNavigator(g *graph.Graph) *BFSNavigator {
	return &BFSNavigator{g: g}
}

func (nav *BFSNavigator) ComputeShortestPath(origin, destination graph.NodeId) float64 {
	nav.found = traversal.BreadthFirstPlus(nav.g, origin, destination)
	if !nav.found {
		return graph.Infinity
	}
	cost := 0.0
	path := traversal.PathTo(nav.g, destination)
	for i := 1; i < len(path); i++ {
		arc, _ := nav.g.GetArc(path[i-1], path[i])
		cost += arc.Cost()
	}
	return cost
}

func (nav *BFSNavigator) GetPath(origin, destination graph.NodeId) []graph.NodeId {
	if !nav.found {
		return make([]graph.NodeId, 0)
	}
	path := traversal.PathTo(nav.g, destination)
	if len(path) == 0 || path[0] != origin {
		return make([]graph.NodeId, 0)
	}
	return path
}

// Returns all nodes the search discovered
func (nav *BFSNavigator) GetSearchSpace() []*DijkstraItem {
	searchSpace := make([]*DijkstraItem, 0)
	for _, n := range nav.g.Nodes() {
		if n != nil && n.Visited() {
			searchSpace = append(searchSpace, NewDijkstraItem(n.Index(), 0, n.Predecessor(), 0, FORWARD))
		}
	}
	return searchSpace
}

func (nav *BFSNavigator) GetPqPops() int             { return 0 }
func (nav *BFSNavigator) GetPqUpdates() int          { return 0 }
func (nav *BFSNavigator) GetEdgeRelaxations() int    { return 0 }
func (nav *BFSNavigator) GetRelaxationAttempts() int { return 0 }
func (nav *BFSNavigator) GetGraph() *graph.Graph     { return nav.g }
