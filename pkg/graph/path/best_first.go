package path

import (
	"math"
	"time"

	"github.com/natevvv/graph-pathfinder/pkg/graph"
	"github.com/natevvv/graph-pathfinder/pkg/metrics"
	"github.com/natevvv/graph-pathfinder/pkg/queue"
	"github.com/natevvv/graph-pathfinder/pkg/slice"
	"github.com/natevvv/graph-pathfinder/pkg/trace"
)

type SearchKPIs struct {
	pqPops             int // store the amount of Pops which were performed on the priority queue for the computed search
	pqUpdates          int // store each update or push to the priority queue
	relaxationAttempts int // store the attempt for relaxed edges
	relaxedEdges       int // number of relaxed edges
	rejectedEdges      int // number of relaxations which did not improve the cost
	numSettledNodes    int // number of settled nodes
	reopenedNodes      int // number of finalized nodes which were put back into the frontier
}

// Reset the kpi
func (kpi *SearchKPIs) Reset() {
	*kpi = SearchKPIs{}
}

// BestFirst is the search which uniform-cost search and the A* variants are built on.
// The frontier is ordered by the priority key, the heuristic init sets the estimates before each search.
// The search state (cost, estimate, visited flag, predecessor) is stored in the nodes of the graph.
// Implements the Navigator Interface.
type BestFirst struct {
	g         *graph.Graph
	name      string
	key       PriorityKey
	heuristic HeuristicInit
	options   SearchOptions

	minHeap *queue.MinHeap[*DijkstraItem] // frontier
	items   []*DijkstraItem               // latest item per node, nil if the node was never discovered
	settled []bool                        // finalized nodes

	origin      graph.NodeId // the origin of the current search
	destination graph.NodeId // the destination of the current search
	found       bool

	searchKPIs SearchKPIs
	elapsed    time.Duration
}

func NewBestFirst(g *graph.Graph, name string, key PriorityKey, heuristic HeuristicInit) *BestFirst {
	if heuristic == nil {
		heuristic = NoHeuristic
	}
	return &BestFirst{g: g, name: name, key: key, heuristic: heuristic, options: MakeSearchOptions(), origin: graph.None, destination: graph.None}
}

func (b *BestFirst) Name() string                 { return b.name }
func (b *BestFirst) Options() SearchOptions       { return b.options }
func (b *BestFirst) SetOptions(o SearchOptions)   { b.options = o }
func (b *BestFirst) Heuristic() HeuristicInit     { return b.heuristic }
func (b *BestFirst) SetHeuristic(h HeuristicInit) { b.heuristic = h }
func (b *BestFirst) Found() bool                  { return b.found }
func (b *BestFirst) Elapsed() time.Duration       { return b.elapsed }

// Return the multiplier of the reverse cost heuristic, if this search uses one
func (b *BestFirst) HeuristicMultiplier() (float64, bool) {
	if rc, ok := b.heuristic.(*ReverseCost); ok {
		return rc.Multiplier, true
	}
	return 0, false
}

// Set the multiplier of the reverse cost heuristic. Returns false if the search uses another heuristic.
func (b *BestFirst) SetHeuristicMultiplier(multiplier float64) bool {
	if rc, ok := b.heuristic.(*ReverseCost); ok {
		rc.Multiplier = multiplier
		return true
	}
	return false
}

// Compute the shortest path from the origin to the destination.
// It returns the cost of the found path, graph.Infinity if the destination is not reachable.
// Origin and destination have to exist in the graph.
func (b *BestFirst) ComputeShortestPath(origin, destination graph.NodeId) float64 {
	source, target := b.g.GetNode(origin), b.g.GetNode(destination)
	if source == nil {
		panic("Origin invalid.")
	}
	if target == nil {
		panic("Destination invalid.")
	}

	start := time.Now()
	logger := b.g.Logger()
	trace.Printf(logger, trace.LevelSummary, "New search (%v): %v -> %v", b.name, source.Payload(), target.Payload())

	b.initializeSearch(origin, destination)
	b.heuristic.Init(b.g, destination)
	source.SetG(0)
	b.push(source)

	for b.minHeap.Len() > 0 {
		if b.minHeap.Peek().nodeId == destination {
			b.found = true
			break
		}
		item := b.minHeap.Pop()
		b.searchKPIs.pqPops++
		current := b.g.GetNode(item.nodeId)
		trace.Printf(logger, trace.LevelSearch, "Popped %v (g=%v, priority=%v)", current.Payload(), current.G(), item.priority)

		b.settleNode(current)
		b.relaxEdges(current)
	}

	if b.found {
		b.settleNode(target)
	}
	b.elapsed = time.Since(start)
	if b.found {
		trace.Printf(logger, trace.LevelSummary, "Found path %v -> %v with cost %v in %v", source.Payload(), target.Payload(), target.G(), b.elapsed)
	} else {
		trace.Printf(logger, trace.LevelSummary, "Finished search, %v is not reachable from %v (%v)", target.Payload(), source.Payload(), b.elapsed)
	}
	metrics.ObserveSearch(b.name, b.found, b.elapsed, b.searchKPIs.pqPops, b.searchKPIs.relaxedEdges)
	return target.G()
}

// Get the path of a previous computation. This contains the nodeIds which lie on the path from source to destination.
// Returns an empty path if the destination was not reached.
func (b *BestFirst) GetPath(origin, destination graph.NodeId) []graph.NodeId {
	path := make([]graph.NodeId, 0)
	target := b.g.GetNode(destination)
	if target == nil || math.IsInf(target.G(), 1) {
		return path
	}
	for nodeId := destination; nodeId != graph.None; nodeId = b.g.GetNode(nodeId).Predecessor() {
		path = append(path, nodeId)
		if len(path) > b.g.Count() {
			panic("predecessor cycle")
		}
	}
	// reverse path (to create the correct direction)
	slice.ReverseInPlace(path)
	if path[0] != origin {
		return make([]graph.NodeId, 0)
	}
	return path
}

// Returns the search space of a previous computation. This contains all items which were settled.
func (b *BestFirst) GetSearchSpace() []*DijkstraItem {
	searchSpace := make([]*DijkstraItem, 0)
	for nodeId, settled := range b.settled {
		if !settled {
			continue
		}
		item := b.items[nodeId]
		// removed nodes keep the state of the search
		if n := b.g.GetNode(nodeId); n != nil {
			item.refresh(n, b.key)
		}
		searchSpace = append(searchSpace, item)
	}
	return searchSpace
}

func (b *BestFirst) GetPqPops() int             { return b.searchKPIs.pqPops }
func (b *BestFirst) GetPqUpdates() int          { return b.searchKPIs.pqUpdates }
func (b *BestFirst) GetEdgeRelaxations() int    { return b.searchKPIs.relaxedEdges }
func (b *BestFirst) GetRelaxationAttempts() int { return b.searchKPIs.relaxationAttempts }
func (b *BestFirst) GetRejectedRelaxations() int {
	return b.searchKPIs.rejectedEdges
}
func (b *BestFirst) GetSettledNodesCount() int  { return b.searchKPIs.numSettledNodes }
func (b *BestFirst) GetReopenedNodesCount() int { return b.searchKPIs.reopenedNodes }
func (b *BestFirst) GetGraph() *graph.Graph     { return b.g }

// Initialize a new search
// This resets the search state of the graph and all leftovers of a previous search
func (b *BestFirst) initializeSearch(origin, destination graph.NodeId) {
	b.g.ResetSearchState()
	b.origin = origin
	b.destination = destination
	b.found = false
	b.searchKPIs.Reset()
	b.minHeap = queue.NewMinHeap[*DijkstraItem](nil)
	b.items = make([]*DijkstraItem, b.g.Capacity())
	b.settled = make([]bool, b.g.Capacity())
}

// Put the node into the frontier with its current state
func (b *BestFirst) push(n *graph.Node) {
	item := newNodeItem(n, b.key)
	b.items[n.Index()] = item
	b.minHeap.Push(item)
	b.searchKPIs.pqUpdates++
	if b.options.IsDiscoveryMarking() {
		n.SetVisited(true)
	}
	trace.Printf(b.g.Logger(), trace.LevelSearch, "Pushed %v (priority=%v)", n.Payload(), item.priority)
}

func (b *BestFirst) settleNode(n *graph.Node) {
	if b.settled[n.Index()] {
		return
	}
	b.settled[n.Index()] = true
	b.searchKPIs.numSettledNodes++
	if !b.options.IsDiscoveryMarking() {
		n.SetVisited(true)
	}
}

func (b *BestFirst) relaxEdges(current *graph.Node) {
	logger := b.g.Logger()
	for _, arc := range current.Arcs() {
		b.searchKPIs.relaxationAttempts++
		if b.options.IsSkipPredecessor() && arc.To == current.Predecessor() {
			continue
		}
		child := b.g.GetNode(arc.To)
		candidate := current.G() + arc.Cost()
		if candidate >= child.G() {
			b.searchKPIs.rejectedEdges++
			trace.Printf(logger, trace.LevelSearch, "Rejected %v -> %v: %v >= %v", current.Payload(), child.Payload(), candidate, child.G())
			continue
		}
		reopen := b.settled[child.Index()]
		if reopen && !b.options.IsReopening() {
			b.searchKPIs.rejectedEdges++
			trace.Printf(logger, trace.LevelSearch, "Rejected %v -> %v: %v is settled", current.Payload(), child.Payload(), child.Payload())
			continue
		}

		child.SetG(candidate)
		child.SetPredecessor(current.Index())
		b.searchKPIs.relaxedEdges++
		trace.Printf(logger, trace.LevelSearch, "Relaxed %v -> %v: g=%v", current.Payload(), child.Payload(), candidate)

		if item := b.items[child.Index()]; item != nil && b.minHeap.Contains(item) {
			// decrease key
			item.refresh(child, b.key)
			b.minHeap.Update(item)
			b.searchKPIs.pqUpdates++
			continue
		}
		if reopen {
			b.settled[child.Index()] = false
			b.searchKPIs.numSettledNodes--
			b.searchKPIs.reopenedNodes++
			if !b.options.IsDiscoveryMarking() {
				child.SetVisited(false)
			}
			trace.Printf(logger, trace.LevelSearch, "Reopened %v", child.Payload())
		}
		b.push(child)
	}
}
