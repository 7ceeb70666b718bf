package pbf

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/natevvv/graph-pathfinder/pkg/graph"
	"github.com/natevvv/graph-pathfinder/pkg/road"
)

func ExportRoadJson(roads []*road.Segment, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return json.NewEncoder(file).Encode(roads)
}

// Write the graph as node list and arc list files
func ExportGraphLists(g *graph.Graph, nodesFile, arcsFile string) error {
	nodes, err := os.Create(nodesFile)
	if err != nil {
		return err
	}
	defer nodes.Close()
	arcs, err := os.Create(arcsFile)
	if err != nil {
		return err
	}
	defer arcs.Close()

	if err := graph.WriteLists(g, nodes, arcs); err != nil {
		return err
	}
	return errors.Join(nodes.Sync(), arcs.Sync())
}
