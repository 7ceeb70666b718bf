// Package traversal walks the nodes of a graph without weights: depth-first, breadth-first and a
// breadth-first search which stops at a target.
//
// The walks use the visited flags and predecessors of the nodes, so every walk starts by resetting
// the search state of the graph.
package traversal

import (
	"iter"

	"github.com/natevvv/graph-pathfinder/pkg/graph"
	"github.com/natevvv/graph-pathfinder/pkg/slice"
	"github.com/natevvv/graph-pathfinder/pkg/trace"
)

// Visitor is called once for every node a walk reaches
type Visitor func(n *graph.Node)

// Visit the nodes reachable from start in depth-first pre-order. Neighbors are visited in arc order.
func DepthFirst(g *graph.Graph, start graph.NodeId, visit Visitor) {
	for n := range DepthFirstSeq(g, start) {
		visit(n)
	}
}

// Return the depth-first pre-order as a sequence. The sequence can be consumed once.
func DepthFirstSeq(g *graph.Graph, start graph.NodeId) iter.Seq[*graph.Node] {
	return func(yield func(*graph.Node) bool) {
		root := g.GetNode(start)
		if root == nil {
			return
		}
		g.ResetSearchState()
		var recurse func(n *graph.Node) bool
		recurse = func(n *graph.Node) bool {
			n.SetVisited(true)
			trace.Printf(g.Logger(), trace.LevelSearch, "Visiting %v", n.Payload())
			if !yield(n) {
				return false
			}
			for _, arc := range n.Arcs() {
				child := g.GetNode(arc.To)
				if child.Visited() {
					continue
				}
				child.SetPredecessor(n.Index())
				if !recurse(child) {
					return false
				}
			}
			return true
		}
		recurse(root)
	}
}

// Visit the nodes reachable from start in breadth-first order. Nodes are marked when they are enqueued.
func BreadthFirst(g *graph.Graph, start graph.NodeId, visit Visitor) {
	for n := range BreadthFirstSeq(g, start) {
		visit(n)
	}
}

// Return the breadth-first order as a sequence. The sequence can be consumed once.
func BreadthFirstSeq(g *graph.Graph, start graph.NodeId) iter.Seq[*graph.Node] {
	return func(yield func(*graph.Node) bool) {
		root := g.GetNode(start)
		if root == nil {
			return
		}
		g.ResetSearchState()
		root.SetVisited(true)
		fifo := []*graph.Node{root}
		for len(fifo) > 0 {
			n := fifo[0]
			fifo = fifo[1:]
			trace.Printf(g.Logger(), trace.LevelSearch, "Visiting %v", n.Payload())
			if !yield(n) {
				return
			}
			for _, arc := range n.Arcs() {
				child := g.GetNode(arc.To)
				if child.Visited() {
					continue
				}
				child.SetVisited(true)
				child.SetPredecessor(n.Index())
				fifo = append(fifo, child)
			}
		}
	}
}

// Breadth-first search from start which stops as soon as target is discovered.
// Every discovered node gets its discoverer as predecessor, so PathTo(target) returns a path with the least number of hops.
// Returns whether the target was found.
func BreadthFirstPlus(g *graph.Graph, start, target graph.NodeId) bool {
	root, goal := g.GetNode(start), g.GetNode(target)
	if root == nil || goal == nil {
		return false
	}
	g.ResetSearchState()
	root.SetVisited(true)
	if start == target {
		trace.Printf(g.Logger(), trace.LevelSummary, "Found %v", goal.Payload())
		return true
	}

	fifo := []*graph.Node{root}
	for len(fifo) > 0 {
		n := fifo[0]
		fifo = fifo[1:]
		trace.Printf(g.Logger(), trace.LevelSearch, "Visiting %v", n.Payload())
		for _, arc := range n.Arcs() {
			child := g.GetNode(arc.To)
			if child.Visited() {
				continue
			}
			child.SetVisited(true)
			child.SetPredecessor(n.Index())
			if child == goal {
				trace.Printf(g.Logger(), trace.LevelSummary, "Found %v after discovering it from %v", goal.Payload(), n.Payload())
				return true
			}
			fifo = append(fifo, child)
		}
	}
	trace.Printf(g.Logger(), trace.LevelSummary, "%v is not reachable from %v", goal.Payload(), root.Payload())
	return false
}

// Follow the predecessors from target back to the root of the last walk or search.
// Returns the path in root -> target order, or an empty path if target was not reached.
func PathTo(g *graph.Graph, target graph.NodeId) []graph.NodeId {
	path := make([]graph.NodeId, 0)
	n := g.GetNode(target)
	if n == nil || !n.Visited() && !n.HasPredecessor() {
		return path
	}
	for id := target; id != graph.None; id = g.GetNode(id).Predecessor() {
		path = append(path, id)
		if len(path) > g.Count() {
			panic("predecessor cycle")
		}
	}
	slice.ReverseInPlace(path)
	return path
}
