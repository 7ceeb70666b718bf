package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/natevvv/graph-pathfinder/pkg/config"
	"github.com/natevvv/graph-pathfinder/pkg/graph"
	"github.com/natevvv/graph-pathfinder/pkg/trace"
)

func newLogger(w io.Writer, c config.LogConfig) *slog.Logger {
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, nil))
	}
	return slog.New(slog.NewTextHandler(w, nil))
}

// Load the graph named in the config. A fmi file takes precedence over the lists.
func loadGraph(c config.GraphConfig, logger trace.Logger) (*graph.Graph, error) {
	if c.Fmi != "" {
		g, err := graph.NewGraphFromFmiFile(c.Fmi)
		if err != nil {
			return nil, fmt.Errorf("load %v: %w", c.Fmi, err)
		}
		g.SetLogger(logger)
		return g, nil
	}
	g, err := graph.NewGraphFromListFiles(c.Nodes, c.Arcs, c.Capacity, logger)
	if err != nil {
		return nil, fmt.Errorf("load %v and %v: %w", c.Nodes, c.Arcs, err)
	}
	return g, nil
}

func lookupNode(g *graph.Graph, label string) (graph.NodeId, error) {
	id, ok := g.FindByPayload(label)
	if !ok {
		return graph.None, fmt.Errorf("node %q does not exist", label)
	}
	return id, nil
}
