package graph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/natevvv/graph-pathfinder/pkg/geometry"
	"github.com/natevvv/graph-pathfinder/pkg/trace"
)

// The list format consists of two files.
// The node list holds one node per line, either "label" or "label x y". Nodes get sequential indices in file order.
// The arc list holds one arc per line as "fromIndex toIndex weight". Arcs are added in both directions.
// Empty lines and lines starting with '#' are ignored.

var (
	ErrMalformedNode = errors.New("malformed node line")
	ErrMalformedArc  = errors.New("malformed arc line")
)

type NodeRecord struct {
	Label       string
	Position    geometry.Point
	HasPosition bool
}

type ArcRecord struct {
	From   NodeId
	To     NodeId
	Weight float64
}

func ParseNodeList(r io.Reader) ([]NodeRecord, error) {
	records := make([]NodeRecord, 0)
	err := scanLines(r, func(lineNumber int, fields []string) error {
		switch len(fields) {
		case 1:
			records = append(records, NodeRecord{Label: fields[0]})
		case 3:
			x, errX := strconv.ParseFloat(fields[1], 64)
			y, errY := strconv.ParseFloat(fields[2], 64)
			if err := errors.Join(errX, errY); err != nil {
				return fmt.Errorf("%w: line %v: %v", ErrMalformedNode, lineNumber, err)
			}
			records = append(records, NodeRecord{Label: fields[0], Position: geometry.MakePoint(x, y), HasPosition: true})
		default:
			return fmt.Errorf("%w: line %v: expected 1 or 3 fields, got %v", ErrMalformedNode, lineNumber, len(fields))
		}
		return nil
	})
	return records, err
}

func ParseArcList(r io.Reader) ([]ArcRecord, error) {
	records := make([]ArcRecord, 0)
	err := scanLines(r, func(lineNumber int, fields []string) error {
		if len(fields) != 3 {
			return fmt.Errorf("%w: line %v: expected 3 fields, got %v", ErrMalformedArc, lineNumber, len(fields))
		}
		from, errFrom := strconv.Atoi(fields[0])
		to, errTo := strconv.Atoi(fields[1])
		weight, errWeight := strconv.ParseFloat(fields[2], 64)
		if err := errors.Join(errFrom, errTo, errWeight); err != nil {
			return fmt.Errorf("%w: line %v: %v", ErrMalformedArc, lineNumber, err)
		}
		if !ValidWeight(weight) {
			return fmt.Errorf("%w: line %v: invalid weight %v", ErrMalformedArc, lineNumber, weight)
		}
		records = append(records, ArcRecord{From: from, To: to, Weight: weight})
		return nil
	})
	return records, err
}

// Build an undirected graph from a node list and an arc list.
// The capacity is raised to the number of nodes if it is too small.
// Arcs which already exist are skipped, arcs to unknown nodes are an error.
func NewGraphFromLists(nodes, arcs io.Reader, capacity int, logger trace.Logger) (*Graph, error) {
	nodeRecords, err := ParseNodeList(nodes)
	if err != nil {
		return nil, err
	}
	arcRecords, err := ParseArcList(arcs)
	if err != nil {
		return nil, err
	}

	g := NewGraph(max(capacity, len(nodeRecords)))
	g.SetLogger(logger)
	seen := make(map[string]NodeId, len(nodeRecords))
	for i, record := range nodeRecords {
		if first, ok := seen[record.Label]; ok {
			trace.Printf(g.logger, trace.LevelMutation, "Duplicate label %v at %v, lookups by label resolve to %v", record.Label, i, first)
		} else {
			seen[record.Label] = i
		}
		if record.HasPosition {
			g.AddNodeWithPosition(record.Label, i, record.Position)
		} else {
			g.AddNode(record.Label, i)
		}
	}
	for i, record := range arcRecords {
		if g.GetNode(record.From) == nil || g.GetNode(record.To) == nil {
			return nil, fmt.Errorf("%w: arc %v (%v -> %v) references an unknown node", ErrMalformedArc, i+1, record.From, record.To)
		}
		if !g.AddDualArc(record.From, record.To, record.Weight) {
			trace.Printf(g.logger, trace.LevelMutation, "Skipping duplicate arc between %v and %v", record.From, record.To)
		}
	}
	return g, nil
}

func NewGraphFromListFiles(nodesFile, arcsFile string, capacity int, logger trace.Logger) (*Graph, error) {
	nodes, err := os.Open(nodesFile)
	if err != nil {
		return nil, err
	}
	defer nodes.Close()
	arcs, err := os.Open(arcsFile)
	if err != nil {
		return nil, err
	}
	defer arcs.Close()
	return NewGraphFromLists(nodes, arcs, capacity, logger)
}

// Write the graph in list format. Node indices are compacted, so empty slots disappear.
// Every pair of opposite arcs is written once, one-directional arcs are written as they are.
func WriteLists(g *Graph, nodes, arcs io.Writer) error {
	nodeWriter := bufio.NewWriter(nodes)
	arcWriter := bufio.NewWriter(arcs)

	compact := make(map[NodeId]int, g.Count())
	for _, n := range g.Nodes() {
		if n == nil {
			continue
		}
		compact[n.Index()] = len(compact)
		if p, ok := n.Position(); ok {
			fmt.Fprintf(nodeWriter, "%v %v %v\n", n.Payload(), p.X(), p.Y())
		} else {
			fmt.Fprintf(nodeWriter, "%v\n", n.Payload())
		}
	}

	for _, n := range g.Nodes() {
		if n == nil {
			continue
		}
		for _, arc := range n.Arcs() {
			if reverse, ok := g.GetArc(arc.To, n.Index()); ok && reverse.Weight == arc.Weight && arc.To < n.Index() {
				// already written from the other side
				continue
			}
			fmt.Fprintf(arcWriter, "%v %v %v\n", compact[n.Index()], compact[arc.To], arc.Weight)
		}
	}

	return errors.Join(nodeWriter.Flush(), arcWriter.Flush())
}

func scanLines(r io.Reader, handle func(lineNumber int, fields []string) error) error {
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if len(line) < 1 || line[0] == '#' {
			continue
		}
		if err := handle(lineNumber, strings.Fields(line)); err != nil {
			return err
		}
	}
	return scanner.Err()
}
