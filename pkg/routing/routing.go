package routing

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/natevvv/graph-pathfinder/pkg/config"
	"github.com/natevvv/graph-pathfinder/pkg/geometry"
	"github.com/natevvv/graph-pathfinder/pkg/graph"
	"github.com/natevvv/graph-pathfinder/pkg/graph/path"
	"github.com/natevvv/graph-pathfinder/pkg/graph/traversal"
)

var (
	ErrUnknownNode      = errors.New("unknown node")
	ErrUnknownNavigator = errors.New("unknown navigator")
	ErrUnknownTraversal = errors.New("unknown traversal")
	ErrNoPositions      = errors.New("no node has a position")
)

// Route is the result of a route computation
type Route struct {
	Origin      string           // payload of the start node
	Destination string           // payload of the target node
	Exists      bool             // whether a path exists
	Path        []string         // payloads along the path
	Waypoints   []geometry.Point // positions along the path (nodes without position are left out)
	Cost        float64          // total cost, Infinity if no path exists
	Description string           // short path description like "A-(1)-B"
}

// NodeInfo describes a node for clients of the router
type NodeInfo struct {
	Id          graph.NodeId
	Label       string
	Position    geometry.Point
	HasPosition bool
}

// Router runs searches and traversals on one graph.
// The graph holds the state of the running search, so all calls are serialized.
type Router struct {
	mu            sync.Mutex
	graph         *graph.Graph
	navigator     path.Navigator
	navigatorName string
	search        config.SearchConfig
	index         *SpatialIndex
	lastVisited   []graph.NodeId // nodes of the last traversal
}

func NewRouter(g *graph.Graph, search config.SearchConfig) (*Router, error) {
	r := &Router{graph: g, search: search, index: NewSpatialIndex(g)}
	if err := r.SetNavigator(search.Navigator); err != nil {
		return nil, err
	}
	return r, nil
}

// Select the navigator by name (see config.Navigators)
func (r *Router) SetNavigator(navigatorType string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	search := r.search
	search.Navigator = navigatorType
	navigator, err := NewNavigator(r.graph, search)
	if err != nil {
		return err
	}
	r.navigator = navigator
	r.navigatorName = navigatorType
	r.lastVisited = nil
	return nil
}

// Create the navigator named in the search config
func NewNavigator(g *graph.Graph, search config.SearchConfig) (path.Navigator, error) {
	var bestFirst *path.BestFirst
	switch search.Navigator {
	case "ucs":
		bestFirst = path.NewUniformCostSearch(g)
	case "astar":
		bestFirst = path.NewAStar(g, multiplier(search))
	case "astar-precomputed":
		bestFirst = path.NewAStarPrecomputed(g)
	case "dijkstra":
		return path.NewDijkstra(g), nil
	case "bfs":
		return path.NewBFSNavigator(g), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownNavigator, search.Navigator)
	}
	bestFirst.SetOptions(bestFirst.Options().SetDiscoveryMarking(search.DiscoveryMarking))
	return bestFirst, nil
}

func multiplier(search config.SearchConfig) float64 {
	if search.HeuristicMultiplier > 0 {
		return search.HeuristicMultiplier
	}
	return path.DefaultHeuristicMultiplier
}

func (r *Router) NavigatorName() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.navigatorName
}

// Set the multiplier of the on-the-fly A* heuristic. It is used by the current and all later astar navigators.
func (r *Router) SetHeuristicMultiplier(multiplier float64) error {
	if multiplier <= 0 || math.IsNaN(multiplier) {
		return fmt.Errorf("heuristic multiplier %v has to be positive", multiplier)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.search.HeuristicMultiplier = multiplier
	if bestFirst, ok := r.navigator.(*path.BestFirst); ok {
		bestFirst.SetHeuristicMultiplier(multiplier)
	}
	return nil
}

// Compute the route between the nodes with the given labels
func (r *Router) ComputeRoute(origin, destination string) (Route, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	originNode, ok := r.graph.FindByPayload(origin)
	if !ok {
		return Route{}, fmt.Errorf("%w: %q", ErrUnknownNode, origin)
	}
	destNode, ok := r.graph.FindByPayload(destination)
	if !ok {
		return Route{}, fmt.Errorf("%w: %q", ErrUnknownNode, destination)
	}
	return r.computeRoute(originNode, destNode), nil
}

// Compute the route between the nodes closest to the given positions
func (r *Router) ComputeRouteByPosition(origin, destination geometry.Point) (Route, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	originNode, ok := r.index.Nearest(origin)
	if !ok {
		return Route{}, ErrNoPositions
	}
	destNode, _ := r.index.Nearest(destination)
	return r.computeRoute(originNode, destNode), nil
}

func (r *Router) computeRoute(originNode, destNode graph.NodeId) Route {
	r.lastVisited = nil
	route := Route{
		Origin:      r.graph.GetNode(originNode).Payload(),
		Destination: r.graph.GetNode(destNode).Payload(),
		Cost:        r.navigator.ComputeShortestPath(originNode, destNode),
	}
	nodes := r.navigator.GetPath(originNode, destNode)
	if len(nodes) == 0 {
		route.Cost = graph.Infinity
		return route
	}
	route.Exists = true
	route.Path = make([]string, 0, len(nodes))
	route.Waypoints = make([]geometry.Point, 0, len(nodes))
	for _, id := range nodes {
		n := r.graph.GetNode(id)
		route.Path = append(route.Path, n.Payload())
		if p, ok := n.Position(); ok {
			route.Waypoints = append(route.Waypoints, p)
		}
	}
	route.Description = path.MakePairPath(r.graph, nodes).String()
	return route
}

// Walk the graph from the node with the given label. Kind is "dfs" or "bfs".
// Returns the labels in visiting order.
func (r *Router) Traverse(kind, start string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	startNode, ok := r.graph.FindByPayload(start)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, start)
	}

	visited := make([]graph.NodeId, 0)
	collect := func(n *graph.Node) { visited = append(visited, n.Index()) }
	switch kind {
	case "dfs":
		traversal.DepthFirst(r.graph, startNode, collect)
	case "bfs":
		traversal.BreadthFirst(r.graph, startNode, collect)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTraversal, kind)
	}
	r.lastVisited = visited

	labels := make([]string, 0, len(visited))
	for _, id := range visited {
		labels = append(labels, r.graph.GetNode(id).Payload())
	}
	return labels, nil
}

// Return all nodes of the graph
func (r *Router) GetNodes() []NodeInfo {
	r.mu.Lock()
	defer r.mu.Unlock()

	nodes := make([]NodeInfo, 0, r.graph.Count())
	for _, n := range r.graph.Nodes() {
		if n != nil {
			nodes = append(nodes, nodeInfo(n))
		}
	}
	return nodes
}

// Return the nodes the last search settled, or the nodes of the last traversal
func (r *Router) GetSearchSpace() []NodeInfo {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := r.lastVisited
	if ids == nil {
		for _, item := range r.navigator.GetSearchSpace() {
			ids = append(ids, item.NodeId())
		}
	}
	nodes := make([]NodeInfo, 0, len(ids))
	for _, id := range ids {
		if n := r.graph.GetNode(id); n != nil {
			nodes = append(nodes, nodeInfo(n))
		}
	}
	return nodes
}

func nodeInfo(n *graph.Node) NodeInfo {
	p, ok := n.Position()
	return NodeInfo{Id: n.Index(), Label: n.Payload(), Position: p, HasPosition: ok}
}
