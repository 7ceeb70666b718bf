package path

import (
	"container/heap"

	"github.com/natevvv/graph-pathfinder/pkg/graph"
	"github.com/natevvv/graph-pathfinder/pkg/queue"
)

// Dijkstra is a plain Dijkstra which keeps its state in own queue items instead of the nodes of the graph.
// It serves as a reference for the other searches and computes the exact remaining costs for the A* heuristic (BACKWARD direction).
type Dijkstra struct {
	g                  *graph.Graph
	direction          Direction
	reverseArcs        [][]graph.Arc // incoming arcs per node, only used in BACKWARD direction
	dijkstraItems      []*queue.Item
	pqPops             int
	pqUpdates          int
	relaxationAttempts int
	relaxedEdges       int
}

func NewDijkstra(g *graph.Graph) *Dijkstra {
	return &Dijkstra{g: g, direction: FORWARD}
}

// Create a Dijkstra which follows the arcs against their direction.
// The computed distances are the costs to reach the origin.
func NewReverseDijkstra(g *graph.Graph) *Dijkstra {
	return &Dijkstra{g: g, direction: BACKWARD}
}

func (d *Dijkstra) Direction() Direction { return d.direction }

func (d *Dijkstra) arcsFrom(nodeId graph.NodeId) []graph.Arc {
	if d.direction == BACKWARD {
		return d.reverseArcs[nodeId]
	}
	return d.g.GetArcsFrom(nodeId)
}

func (d *Dijkstra) buildReverseArcs() {
	d.reverseArcs = make([][]graph.Arc, d.g.Capacity())
	for _, n := range d.g.Nodes() {
		if n == nil {
			continue
		}
		for _, arc := range n.Arcs() {
			d.reverseArcs[arc.To] = append(d.reverseArcs[arc.To], graph.MakeArc(n.Index(), arc.Weight))
		}
	}
}

// Compute the shortest path from origin to destination and return its length.
// If no path was found, it returns graph.Infinity.
// With destination graph.None the distances to all nodes are computed (see Distance) and 0 is returned.
func (d *Dijkstra) ComputeShortestPath(origin, destination graph.NodeId) float64 {
	if d.g.GetNode(origin) == nil {
		panic("Origin invalid.")
	}
	if d.direction == BACKWARD {
		d.buildReverseArcs()
	}
	d.dijkstraItems = make([]*queue.Item, d.g.Capacity())
	originItem := queue.NewQueueItem(origin, 0, graph.None)
	d.dijkstraItems[origin] = originItem

	pq := make(queue.Queue, 0)
	heap.Init(&pq)
	heap.Push(&pq, d.dijkstraItems[origin])

	d.pqPops = 0
	d.pqUpdates = 0
	d.relaxationAttempts = 0
	d.relaxedEdges = 0

	for len(pq) > 0 {
		currentPqItem := heap.Pop(&pq).(*queue.Item)
		currentNodeId := currentPqItem.ItemId
		d.pqPops++

		if currentNodeId == destination {
			break
		}

		for _, arc := range d.arcsFrom(currentNodeId) {
			d.relaxationAttempts++
			successor := arc.Destination()

			if d.dijkstraItems[successor] == nil {
				newPriority := d.dijkstraItems[currentNodeId].Priority + arc.Cost()
				pqItem := queue.NewQueueItem(successor, newPriority, currentNodeId)
				d.dijkstraItems[successor] = pqItem
				heap.Push(&pq, pqItem)
				d.pqUpdates++
				d.relaxedEdges++
			} else if updatedDistance := d.dijkstraItems[currentNodeId].Priority + arc.Cost(); updatedDistance < d.dijkstraItems[successor].Priority {
				// settled items are never improved, their index is -1
				pq.Update(d.dijkstraItems[successor], updatedDistance)
				d.pqUpdates++
				d.dijkstraItems[successor].Predecessor = currentNodeId
				d.relaxedEdges++
			}
		}
	}

	if destination == graph.None {
		return 0
	}
	return d.Distance(destination)
}

// Return the distance of the node computed by the last search (graph.Infinity if it was not reached)
func (d *Dijkstra) Distance(nodeId graph.NodeId) float64 {
	if nodeId < 0 || nodeId >= len(d.dijkstraItems) || d.dijkstraItems[nodeId] == nil {
		return graph.Infinity
	}
	return d.dijkstraItems[nodeId].Priority
}

func (d *Dijkstra) GetPath(origin, destination graph.NodeId) []graph.NodeId {
	path := make([]graph.NodeId, 0) // by default, a non-existing path is an empty slice
	if destination >= 0 && destination < len(d.dijkstraItems) && d.dijkstraItems[destination] != nil {
		for nodeId := destination; nodeId != graph.None; nodeId = d.dijkstraItems[nodeId].Predecessor {
			path = append([]graph.NodeId{nodeId}, path...)
		}
	}
	return path
}

// Returns the items of all reached nodes
func (d *Dijkstra) GetSearchSpace() []*DijkstraItem {
	searchSpace := make([]*DijkstraItem, 0)
	for _, item := range d.dijkstraItems {
		if item != nil {
			searchSpace = append(searchSpace, NewDijkstraItem(item.ItemId, item.Priority, item.Predecessor, 0, d.direction))
		}
	}
	return searchSpace
}

func (d *Dijkstra) GetPqPops() int             { return d.pqPops }
func (d *Dijkstra) GetPqUpdates() int          { return d.pqUpdates }
func (d *Dijkstra) GetEdgeRelaxations() int    { return d.relaxedEdges }
func (d *Dijkstra) GetRelaxationAttempts() int { return d.relaxationAttempts }
func (d *Dijkstra) GetGraph() *graph.Graph     { return d.g }
