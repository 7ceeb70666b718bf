package path

import (
	"fmt"

	"github.com/natevvv/graph-pathfinder/pkg/graph"
)

type Direction bool

const (
	FORWARD  Direction = false
	BACKWARD Direction = true
)

func (d Direction) String() string {
	if d == FORWARD {
		return "FORWARD"
	}
	if d == BACKWARD {
		return "BACKWARD"
	}
	return "INVALID"
}

// implements queue.Priorizable
type DijkstraItem struct {
	nodeId          graph.NodeId // node id of this item in the graph
	distance        float64      // distance to origin of this node
	heuristic       float64      // estimated distance from node to destination
	priority        float64      // key of the item in the frontier
	predecessor     graph.NodeId // node id of the predecessor
	index           int          // internal usage
	searchDirection Direction    // search direction
}

func NewDijkstraItem(nodeId graph.NodeId, distance float64, predecessor graph.NodeId, heuristic float64, searchDirection Direction) *DijkstraItem {
	return &DijkstraItem{nodeId: nodeId, distance: distance, predecessor: predecessor, index: -1, heuristic: heuristic, priority: distance + heuristic, searchDirection: searchDirection}
}

// Create an item which holds a snapshot of the search state of the node
func newNodeItem(n *graph.Node, key PriorityKey) *DijkstraItem {
	item := NewDijkstraItem(n.Index(), n.G(), n.Predecessor(), n.H(), FORWARD)
	item.priority = key(n)
	return item
}

// Take over the current search state of the node. The caller has to fix the position in the heap.
func (item *DijkstraItem) refresh(n *graph.Node, key PriorityKey) {
	item.distance = n.G()
	item.heuristic = n.H()
	item.predecessor = n.Predecessor()
	item.priority = key(n)
}

func (item *DijkstraItem) NodeId() graph.NodeId      { return item.nodeId }
func (item *DijkstraItem) Distance() float64         { return item.distance }
func (item *DijkstraItem) Heuristic() float64        { return item.heuristic }
func (item *DijkstraItem) Predecessor() graph.NodeId { return item.predecessor }
func (item *DijkstraItem) Direction() Direction      { return item.searchDirection }
func (item *DijkstraItem) Priority() float64         { return item.priority }
func (item *DijkstraItem) TieBreaker() int           { return item.nodeId }
func (item *DijkstraItem) Index() int                { return item.index }
func (item *DijkstraItem) SetIndex(index int)        { item.index = index }
func (item *DijkstraItem) String() string {
	return fmt.Sprintf("%v: %v, %v\n", item.index, item.nodeId, item.Priority())
}
