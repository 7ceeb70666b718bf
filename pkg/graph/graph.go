package graph

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/natevvv/graph-pathfinder/pkg/geometry"
	"github.com/natevvv/graph-pathfinder/pkg/metrics"
	"github.com/natevvv/graph-pathfinder/pkg/slice"
	"github.com/natevvv/graph-pathfinder/pkg/trace"
)

type NodeId = int

// None marks a missing node reference, e.g. a node without predecessor
const None NodeId = -1

// Infinity is the value of unset costs and heuristics
var Infinity = math.Inf(1)

// Graph stores the nodes in a fixed number of slots, addressed by their index.
// An index stays valid as long as the node is not removed.
//
// The graph also holds the state of the search which is running on it (see Node),
// so only one search at a time may use a graph.
type Graph struct {
	nodes      []*Node // slots, nil if empty
	count      int     // number of occupied slots
	arcCount   int     // number of arcs in the graph
	heuristics *HeuristicMap
	logger     trace.Logger
}

// Create a graph with the given number of slots
func NewGraph(capacity int) *Graph {
	if capacity < 0 {
		capacity = 0
	}
	return &Graph{nodes: make([]*Node, capacity), logger: trace.Nop}
}

// Set the logging collaborator which receives the trace events of the graph
func (g *Graph) SetLogger(logger trace.Logger) {
	if logger == nil {
		logger = trace.Nop
	}
	g.logger = logger
}

func (g *Graph) Logger() trace.Logger { return g.logger }

// Return the node at the given index or nil if the slot is empty or out of range
func (g *Graph) GetNode(id NodeId) *Node {
	if id < 0 || id >= len(g.nodes) {
		return nil
	}
	return g.nodes[id]
}

// Return all slots of the graph. Empty slots are nil.
func (g *Graph) Nodes() []*Node { return g.nodes }

// Return the arcs of the given node (nil if the node does not exist)
func (g *Graph) GetArcsFrom(id NodeId) []Arc {
	if n := g.GetNode(id); n != nil {
		return n.arcs
	}
	return nil
}

// Return the number of occupied slots
func (g *Graph) Count() int { return g.count }

// Return the number of slots
func (g *Graph) Capacity() int { return len(g.nodes) }

// Return the number of arcs in the graph
func (g *Graph) ArcCount() int { return g.arcCount }

// Add a node to the empty slot index. Returns false if the slot is occupied or out of range.
func (g *Graph) AddNode(payload string, index NodeId) bool {
	if index < 0 || index >= len(g.nodes) || g.nodes[index] != nil {
		return false
	}
	g.nodes[index] = newNode(index, payload)
	g.count++
	trace.Printf(g.logger, trace.LevelMutation, "Adding node: %v", payload)
	return true
}

// Add a node with a position, see AddNode
func (g *Graph) AddNodeWithPosition(payload string, index NodeId, p geometry.Point) bool {
	if !g.AddNode(payload, index) {
		return false
	}
	g.nodes[index].position = p
	g.nodes[index].hasPosition = true
	return true
}

// Set the position of an existing node.
// A heuristic map built before is not updated and needs to get rebuilt.
func (g *Graph) SetPosition(index NodeId, p geometry.Point) bool {
	n := g.GetNode(index)
	if n == nil {
		return false
	}
	n.position = p
	n.hasPosition = true
	return true
}

// Remove the node at index. All arcs pointing to the node get removed first.
func (g *Graph) RemoveNode(index NodeId) {
	node := g.GetNode(index)
	if node == nil {
		return
	}
	for _, n := range g.nodes {
		if n == nil || n == node {
			continue
		}
		before := len(n.arcs)
		n.arcs = removeArcsTo(n.arcs, index)
		if removed := before - len(n.arcs); removed > 0 {
			g.arcCount -= removed
			trace.Printf(g.logger, trace.LevelMutation, "Removing arc from %v to %v", n.payload, node.payload)
		}
	}
	g.arcCount -= len(node.arcs)
	trace.Printf(g.logger, trace.LevelMutation, "Removing node: %v", node.payload)
	g.nodes[index] = nil
	g.count--
}

// Add an arc from -> to. Returns false if one of the nodes does not exist or the arc is already present.
func (g *Graph) AddArc(from, to NodeId, weight float64) bool {
	source, target := g.GetNode(from), g.GetNode(to)
	if source == nil || target == nil {
		return false
	}
	if _, exists := source.arcTo(to); exists {
		return false
	}
	source.arcs = append(source.arcs, MakeArc(to, weight))
	g.arcCount++
	trace.Printf(g.logger, trace.LevelMutation, "Adding arc from %v to %v weight %v", source.payload, target.payload, weight)
	return true
}

// Remove the first arc from -> to. Nothing happens if one of the nodes does not exist.
func (g *Graph) RemoveArc(from, to NodeId) {
	source, target := g.GetNode(from), g.GetNode(to)
	if source == nil || target == nil {
		return
	}
	var removed bool
	source.arcs, removed = slice.RemoveFirst(source.arcs, func(a Arc) bool { return a.To == to })
	if removed {
		g.arcCount--
		trace.Printf(g.logger, trace.LevelMutation, "Removing arc from %v to %v", source.payload, target.payload)
	}
}

// Add arcs in both directions with the same weight.
// Fails if one of the nodes does not exist or if an arc between them exists in either direction.
func (g *Graph) AddDualArc(n1, n2 NodeId, weight float64) bool {
	first, second := g.GetNode(n1), g.GetNode(n2)
	if first == nil || second == nil {
		return false
	}
	_, forward := first.arcTo(n2)
	_, backward := second.arcTo(n1)
	if forward || backward {
		return false
	}
	first.arcs = append(first.arcs, MakeArc(n2, weight))
	g.arcCount++
	if n1 != n2 {
		second.arcs = append(second.arcs, MakeArc(n1, weight))
		g.arcCount++
	}
	trace.Printf(g.logger, trace.LevelMutation, "Adding dual arc between %v and %v weight %v", first.payload, second.payload, weight)
	return true
}

// Remove the arcs in both directions between n1 and n2
func (g *Graph) RemoveDualArc(n1, n2 NodeId) {
	first, second := g.GetNode(n1), g.GetNode(n2)
	if first == nil || second == nil {
		return
	}
	var forward, backward bool
	first.arcs, forward = slice.RemoveFirst(first.arcs, func(a Arc) bool { return a.To == n2 })
	if forward {
		g.arcCount--
	}
	second.arcs, backward = slice.RemoveFirst(second.arcs, func(a Arc) bool { return a.To == n1 })
	if backward {
		g.arcCount--
	}
	if forward || backward {
		trace.Printf(g.logger, trace.LevelMutation, "Removing dual arc between %v and %v", first.payload, second.payload)
	}
}

// Return the arc from -> to
func (g *Graph) GetArc(from, to NodeId) (Arc, bool) {
	source := g.GetNode(from)
	if source == nil || g.GetNode(to) == nil {
		return Arc{}, false
	}
	if i, ok := source.arcTo(to); ok {
		return source.arcs[i], true
	}
	return Arc{}, false
}

// Return the index of the first node carrying the payload
func (g *Graph) FindByPayload(payload string) (NodeId, bool) {
	for _, n := range g.nodes {
		if n != nil && n.payload == payload {
			return n.index, true
		}
	}
	return None, false
}

// Reset the search state (costs, heuristics, visited flags and predecessors) of every node.
// Every search episode starts with this.
func (g *Graph) ResetSearchState() {
	for _, n := range g.nodes {
		if n != nil {
			n.resetSearchState()
			trace.Printf(g.logger, trace.LevelDetail, "%v reset.", n.payload)
		}
	}
	trace.Printf(g.logger, trace.LevelSearch, "Search state of all nodes reset")
}

// Reset only the visited flags
func (g *Graph) ClearMarks() {
	for _, n := range g.nodes {
		if n != nil {
			n.visited = false
		}
	}
	trace.Printf(g.logger, trace.LevelSearch, "Unmarked all nodes")
}

// Build the heuristic map from the current node positions and keep it for later searches
func (g *Graph) BuildHeuristicMap() *HeuristicMap {
	g.heuristics = NewHeuristicMap(g)
	metrics.ObserveHeuristicMapBuild()
	trace.Printf(g.logger, trace.LevelSummary, "Heuristic map generated (%v entries).", g.heuristics.Len())
	return g.heuristics
}

// Return the previously built heuristic map (nil if none was built)
func (g *Graph) HeuristicMap() *HeuristicMap { return g.heuristics }

func (g *Graph) HasHeuristicMap() bool { return g.heuristics != nil }

// Return a human readable string of the graph (fmi format).
// Node lines are "id x y" followed by the payload if it differs from the id.
func (g *Graph) AsString() string {
	var sb strings.Builder

	// write number of nodes and number of edges
	sb.WriteString(fmt.Sprintf("%v\n", g.Count()))
	sb.WriteString(fmt.Sprintf("%v\n", g.ArcCount()))

	sb.WriteString("#Nodes\n")
	// list all nodes structured as "id x y [payload]"
	for _, n := range g.nodes {
		if n == nil {
			continue
		}
		sb.WriteString(fmt.Sprintf("%v %v %v", n.index, n.position.X(), n.position.Y()))
		if n.payload != strconv.Itoa(n.index) {
			sb.WriteString(" " + n.payload)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("#Edges\n")
	// list all edges structured as "fromId targetId weight"
	for _, n := range g.nodes {
		if n == nil {
			continue
		}
		for _, arc := range n.arcs {
			sb.WriteString(fmt.Sprintf("%v %v %v\n", n.index, arc.Destination(), arc.Cost()))
		}
	}
	return sb.String()
}

func removeArcsTo(arcs []Arc, to NodeId) []Arc {
	kept := arcs[:0]
	for _, a := range arcs {
		if a.To != to {
			kept = append(kept, a)
		}
	}
	return kept
}
