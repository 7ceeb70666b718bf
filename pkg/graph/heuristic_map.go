package graph

// HeuristicMap caches the Euclidean distance between every ordered pair of nodes, keyed by their payloads.
// It is built once for a configuration of node positions and gets stale if positions change.
type HeuristicMap struct {
	distances map[heuristicKey]float64
}

type heuristicKey struct {
	from, to string
}

// Compute the distances between all nodes of the graph (including each node paired with itself).
// Pairs with a node that has no position are left out, except the pair of a node with itself.
func NewHeuristicMap(g *Graph) *HeuristicMap {
	nodes := make([]*Node, 0, g.Count())
	for _, n := range g.Nodes() {
		if n != nil {
			nodes = append(nodes, n)
		}
	}

	hm := &HeuristicMap{distances: make(map[heuristicKey]float64, len(nodes)*len(nodes))}
	for _, from := range nodes {
		fromPosition, fromOk := from.Position()
		for _, to := range nodes {
			if from == to {
				hm.distances[heuristicKey{from.payload, to.payload}] = 0
				continue
			}
			toPosition, toOk := to.Position()
			if !fromOk || !toOk {
				continue
			}
			hm.distances[heuristicKey{from.payload, to.payload}] = fromPosition.DistanceTo(toPosition)
		}
	}
	return hm
}

// Return the distance between the nodes with the given payloads, Infinity if the pair is unknown
func (hm *HeuristicMap) Lookup(from, to string) float64 {
	if hm == nil {
		return Infinity
	}
	if d, ok := hm.distances[heuristicKey{from, to}]; ok {
		return d
	}
	return Infinity
}

// Return the number of stored pairs
func (hm *HeuristicMap) Len() int {
	if hm == nil {
		return 0
	}
	return len(hm.distances)
}
