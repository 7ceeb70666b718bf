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
)

// fmi parse states
const (
	PARSE_NODE_COUNT = iota
	PARSE_EDGE_COUNT = iota
	PARSE_NODES      = iota
	PARSE_EDGES      = iota
)

var ErrInvalidFmi = errors.New("invalid fmi graph")

func WriteFmi(g *Graph, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if _, err := writer.WriteString(g.AsString()); err != nil {
		return err
	}
	return writer.Flush()
}

// Parse a directed graph in fmi format (see Graph.AsString).
// Nodes get sequential indices, the ids of the file are mapped to them.
func NewGraphFromFmi(r io.Reader) (*Graph, error) {
	scanner := bufio.NewScanner(r)

	numNodes := 0
	numParsedNodes := 0
	lineNumber := 0

	var g *Graph
	id2index := make(map[int]int)

	parseState := PARSE_NODE_COUNT
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if len(line) < 1 {
			// skip empty lines
			continue
		} else if line[0] == '#' {
			// skip comments
			continue
		}

		switch parseState {
		case PARSE_NODE_COUNT:
			val, err := strconv.Atoi(line)
			if err != nil {
				return nil, fmt.Errorf("%w: line %v: node count: %v", ErrInvalidFmi, lineNumber, err)
			}
			numNodes = val
			g = NewGraph(numNodes)
			parseState = PARSE_EDGE_COUNT
		case PARSE_EDGE_COUNT:
			if numNodes == 0 {
				parseState = PARSE_EDGES
			} else {
				parseState = PARSE_NODES
			}
		case PARSE_NODES:
			var id int
			var x, y float64
			if _, err := fmt.Sscanf(line, "%d %f %f", &id, &x, &y); err != nil {
				return nil, fmt.Errorf("%w: line %v: %v", ErrInvalidFmi, lineNumber, err)
			}
			payload := strconv.Itoa(id)
			if fields := strings.Fields(line); len(fields) > 3 {
				payload = fields[3]
			}
			id2index[id] = numParsedNodes
			g.AddNodeWithPosition(payload, numParsedNodes, geometry.MakePoint(x, y))
			numParsedNodes++
			if numParsedNodes == numNodes {
				parseState = PARSE_EDGES
			}
		case PARSE_EDGES:
			var from, to int
			var weight float64
			if _, err := fmt.Sscanf(line, "%d %d %f", &from, &to, &weight); err != nil {
				return nil, fmt.Errorf("%w: line %v: %v", ErrInvalidFmi, lineNumber, err)
			}
			if !ValidWeight(weight) {
				return nil, fmt.Errorf("%w: line %v: invalid weight %v", ErrInvalidFmi, lineNumber, weight)
			}
			fromIndex, fromOk := id2index[from]
			toIndex, toOk := id2index[to]
			if !fromOk || !toOk {
				return nil, fmt.Errorf("%w: line %v: arc %v -> %v references an unknown node", ErrInvalidFmi, lineNumber, from, to)
			}
			// duplicates are dropped
			g.AddArc(fromIndex, toIndex, weight)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if g == nil || g.Count() != numNodes {
		return nil, fmt.Errorf("%w: expected %v nodes, got %v", ErrInvalidFmi, numNodes, numParsedNodes)
	}

	return g, nil
}

func NewGraphFromFmiString(fmi string) (*Graph, error) {
	return NewGraphFromFmi(strings.NewReader(fmi))
}

func NewGraphFromFmiFile(filename string) (*Graph, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return NewGraphFromFmi(file)
}
