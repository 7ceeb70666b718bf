package graph

import (
	"fmt"

	"github.com/natevvv/graph-pathfinder/pkg/geometry"
)

// Node is a vertex of the graph. Besides its payload and arcs it carries the state of the
// search which currently runs on the graph. This state is only meaningful during one search
// episode and gets reset by Graph.ResetSearchState.
type Node struct {
	index       NodeId
	payload     string
	position    geometry.Point
	hasPosition bool
	arcs        []Arc

	g           float64 // accumulated cost from the search root
	h           float64 // estimated cost to the search target
	visited     bool
	predecessor NodeId
}

func newNode(index NodeId, payload string) *Node {
	n := &Node{index: index, payload: payload, arcs: make([]Arc, 0)}
	n.resetSearchState()
	return n
}

func (n *Node) Index() NodeId   { return n.index }
func (n *Node) Payload() string { return n.payload }

// Return the position of the node and whether one was set
func (n *Node) Position() (geometry.Point, bool) { return n.position, n.hasPosition }

// The outgoing arcs in insertion order. The slice must not be modified.
func (n *Node) Arcs() []Arc { return n.arcs }

func (n *Node) G() float64              { return n.g }
func (n *Node) H() float64              { return n.h }
func (n *Node) F() float64              { return n.g + n.h }
func (n *Node) Visited() bool           { return n.visited }
func (n *Node) Predecessor() NodeId     { return n.predecessor }
func (n *Node) HasPredecessor() bool    { return n.predecessor != None }
func (n *Node) SetG(g float64)          { n.g = g }
func (n *Node) SetH(h float64)          { n.h = h }
func (n *Node) SetVisited(v bool)       { n.visited = v }
func (n *Node) SetPredecessor(p NodeId) { n.predecessor = p }

// Return the arc to the given node, if any
func (n *Node) arcTo(to NodeId) (int, bool) {
	for i := range n.arcs {
		if n.arcs[i].To == to {
			return i, true
		}
	}
	return -1, false
}

func (n *Node) resetSearchState() {
	n.g = Infinity
	n.h = Infinity
	n.visited = false
	n.predecessor = None
}

func (n *Node) String() string {
	return fmt.Sprintf("%v[%v] g=%v h=%v", n.payload, n.index, n.g, n.h)
}
