package path

import "github.com/natevvv/graph-pathfinder/pkg/graph"

// Create a uniform-cost search: the frontier is ordered by the accumulated cost only
func NewUniformCostSearch(g *graph.Graph) *BestFirst {
	return NewBestFirst(g, "ucs", CostKey, NoHeuristic)
}

// Create an A* search which computes its estimates before every search with a reverse cost pass from the target.
// The estimates are the exact remaining costs scaled by multiplier.
func NewAStar(g *graph.Graph, multiplier float64) *BestFirst {
	return NewBestFirst(g, "astar", EstimateKey, NewReverseCost(multiplier))
}

// Create an A* search which takes its estimates from the heuristic map of the graph.
// The map gets built on the first search if the graph has none.
func NewAStarPrecomputed(g *graph.Graph) *BestFirst {
	return NewBestFirst(g, "astar-precomputed", EstimateKey, &MapHeuristic{})
}

// Return the cheapest path from start to target, empty if target is not reachable
func UniformCostSearch(g *graph.Graph, start, target graph.NodeId) []graph.NodeId {
	return search(NewUniformCostSearch(g), start, target)
}

func AStar(g *graph.Graph, start, target graph.NodeId, multiplier float64) []graph.NodeId {
	return search(NewAStar(g, multiplier), start, target)
}

func AStarPrecomputed(g *graph.Graph, start, target graph.NodeId) []graph.NodeId {
	return search(NewAStarPrecomputed(g), start, target)
}

func search(n Navigator, start, target graph.NodeId) []graph.NodeId {
	n.ComputeShortestPath(start, target)
	return n.GetPath(start, target)
}
