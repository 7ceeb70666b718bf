package path

import (
	"fmt"
	"strings"

	"github.com/natevvv/graph-pathfinder/pkg/graph"
)

// PathStep is a node of a path with the cost of the arc which leads to it
type PathStep struct {
	Payload string
	Cost    float64
}

// PairPath is a path of payloads and step costs, independent of the search state of the graph
type PairPath []PathStep

// Create the pair path for a path of node ids. The first step has cost 0.
func MakePairPath(g *graph.Graph, path []graph.NodeId) PairPath {
	pp := make(PairPath, 0, len(path))
	for i, nodeId := range path {
		step := PathStep{Payload: g.GetNode(nodeId).Payload()}
		if i > 0 {
			arc, ok := g.GetArc(path[i-1], nodeId)
			if !ok {
				panic(fmt.Sprintf("no arc %v -> %v on path", path[i-1], nodeId))
			}
			step.Cost = arc.Cost()
		}
		pp = append(pp, step)
	}
	return pp
}

func (pp PairPath) Total() float64 {
	total := 0.0
	for _, step := range pp {
		total += step.Cost
	}
	return total
}

// Header line "[first-last] [total]"
func (pp PairPath) Header() string {
	if len(pp) == 0 {
		return "[] [no path]"
	}
	return fmt.Sprintf("[%v-%v] [%v]", pp[0].Payload, pp[len(pp)-1].Payload, pp.Total())
}

// "A(0)->B(1)->D(1)" with the header in front
func (pp PairPath) String() string {
	var sb strings.Builder
	sb.WriteString(pp.Header())
	sb.WriteString("\n")
	for i, step := range pp {
		if i > 0 {
			sb.WriteString("->")
		}
		sb.WriteString(fmt.Sprintf("%v(%v)", step.Payload, step.Cost))
	}
	return sb.String()
}

// Short form of a path: the header followed by "A-(1)-B-(1)-D"
func FormatShort(g *graph.Graph, path []graph.NodeId) string {
	pp := MakePairPath(g, path)
	var sb strings.Builder
	sb.WriteString(pp.Header())
	sb.WriteString("\n\t")
	for i, step := range pp {
		if i > 0 {
			sb.WriteString(fmt.Sprintf("-(%v)-", step.Cost))
		}
		sb.WriteString(step.Payload)
	}
	return sb.String()
}

// Long form of a path: one line per node with the accumulated cost
func FormatLong(g *graph.Graph, path []graph.NodeId) string {
	pp := MakePairPath(g, path)
	var sb strings.Builder
	accumulated := 0.0
	for _, step := range pp {
		accumulated += step.Cost
		sb.WriteString(fmt.Sprintf("%v\t%v\n", step.Payload, accumulated))
	}
	sb.WriteString(fmt.Sprintf("Path total cost: %v", accumulated))
	return sb.String()
}
