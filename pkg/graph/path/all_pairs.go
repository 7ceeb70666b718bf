package path

import "github.com/natevvv/graph-pathfinder/pkg/graph"

// Compute the paths between all ordered pairs of distinct nodes with the given navigator.
// Unreachable pairs are left out.
func AllPairsPaths(nav Navigator) []PairPath {
	g := nav.GetGraph()
	paths := make([]PairPath, 0)
	for _, from := range g.Nodes() {
		if from == nil {
			continue
		}
		for _, to := range g.Nodes() {
			if to == nil || to == from {
				continue
			}
			nav.ComputeShortestPath(from.Index(), to.Index())
			if path := nav.GetPath(from.Index(), to.Index()); len(path) > 0 {
				paths = append(paths, MakePairPath(g, path))
			}
		}
	}
	return paths
}

// Compute the costs between all ordered pairs of nodes, indexed by node id.
// Unreachable pairs and empty slots have cost graph.Infinity.
func AllPairsCosts(nav Navigator) [][]float64 {
	g := nav.GetGraph()
	costs := make([][]float64, g.Capacity())
	for i := range costs {
		costs[i] = make([]float64, g.Capacity())
		for j := range costs[i] {
			costs[i][j] = graph.Infinity
		}
	}
	for _, from := range g.Nodes() {
		if from == nil {
			continue
		}
		for _, to := range g.Nodes() {
			if to != nil {
				costs[from.Index()][to.Index()] = nav.ComputeShortestPath(from.Index(), to.Index())
			}
		}
	}
	return costs
}
