package path

import (
	"math"

	"github.com/natevvv/graph-pathfinder/pkg/graph"
	"github.com/natevvv/graph-pathfinder/pkg/trace"
)

// DefaultHeuristicMultiplier scales the exact remaining costs of the reverse cost heuristic
const DefaultHeuristicMultiplier = 0.9

// PriorityKey defines the order of the frontier
type PriorityKey func(n *graph.Node) float64

// Order by accumulated cost (uniform-cost search)
func CostKey(n *graph.Node) float64 { return n.G() }

// Order by accumulated cost plus estimate (A*)
func EstimateKey(n *graph.Node) float64 { return n.F() }

// HeuristicInit sets the heuristic of the nodes before a search towards target starts.
// The search state of the graph is already reset when Init is called.
type HeuristicInit interface {
	Init(g *graph.Graph, target graph.NodeId)
}

// HeuristicFunc adapts a function to HeuristicInit
type HeuristicFunc func(g *graph.Graph, target graph.NodeId)

func (f HeuristicFunc) Init(g *graph.Graph, target graph.NodeId) { f(g, target) }

// NoHeuristic sets every estimate to 0
var NoHeuristic HeuristicInit = HeuristicFunc(func(g *graph.Graph, target graph.NodeId) {
	for _, n := range g.Nodes() {
		if n != nil {
			n.SetH(0)
		}
	}
})

// ReverseCost computes the exact cost from every node to the target with a Dijkstra over the incoming arcs
// and uses these costs scaled by Multiplier as estimate.
// A multiplier in (0, 1] keeps the estimate admissible. Nodes which can't reach the target keep an infinite estimate.
type ReverseCost struct {
	Multiplier float64
}

func NewReverseCost(multiplier float64) *ReverseCost {
	return &ReverseCost{Multiplier: multiplier}
}

func (rc *ReverseCost) Init(g *graph.Graph, target graph.NodeId) {
	d := NewReverseDijkstra(g)
	d.ComputeShortestPath(target, graph.None)
	for _, n := range g.Nodes() {
		if n == nil {
			continue
		}
		if distance := d.Distance(n.Index()); !math.IsInf(distance, 1) {
			n.SetH(rc.Multiplier * distance)
		}
		trace.Printf(g.Logger(), trace.LevelDetail, "h(%v) = %v", n.Payload(), n.H())
	}
}

// MapHeuristic looks up the estimate in a heuristic map.
// If Map is nil, the map of the graph is used and built on first use.
// Pairs missing in the map get an estimate of 0.
type MapHeuristic struct {
	Map *graph.HeuristicMap
}

func (mh *MapHeuristic) Init(g *graph.Graph, target graph.NodeId) {
	hmap := mh.Map
	if hmap == nil {
		if !g.HasHeuristicMap() {
			g.BuildHeuristicMap()
		}
		hmap = g.HeuristicMap()
	}
	targetPayload := g.GetNode(target).Payload()
	for _, n := range g.Nodes() {
		if n == nil {
			continue
		}
		h := hmap.Lookup(targetPayload, n.Payload())
		if math.IsInf(h, 1) {
			h = 0
		}
		n.SetH(h)
		trace.Printf(g.Logger(), trace.LevelDetail, "h(%v) = %v", n.Payload(), h)
	}
}
