package main

import (
	"fmt"
	"iter"
	"strings"

	"github.com/natevvv/graph-pathfinder/pkg/graph"
	"github.com/natevvv/graph-pathfinder/pkg/graph/traversal"
	"github.com/spf13/cobra"
)

var (
	traversalKind string
	reachTarget   string

	traverseCmd = &cobra.Command{
		Use:   "traverse <start>",
		Short: "Walk the graph depth first or breadth first from a node",
		Args:  cobra.ExactArgs(1),
		RunE:  runTraverse,
	}
)

func init() {
	traverseCmd.Flags().StringVarP(&traversalKind, "kind", "k", "dfs", "dfs or bfs")
	traverseCmd.Flags().StringVarP(&reachTarget, "target", "t", "", "only report the breadth first path to this node")
}

func runTraverse(cmd *cobra.Command, args []string) error {
	g, err := loadGraph(cfg.Graph, tracer)
	if err != nil {
		return err
	}
	start, err := lookupNode(g, args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if reachTarget != "" {
		target, err := lookupNode(g, reachTarget)
		if err != nil {
			return err
		}
		if !traversal.BreadthFirstPlus(g, start, target) {
			fmt.Fprintf(out, "%v is not reachable from %v\n", reachTarget, args[0])
			return nil
		}
		fmt.Fprintln(out, labels(g, traversal.PathTo(g, target)))
		return nil
	}

	var seq func(*graph.Graph, graph.NodeId) iter.Seq[*graph.Node]
	switch traversalKind {
	case "dfs":
		seq = traversal.DepthFirstSeq
	case "bfs":
		seq = traversal.BreadthFirstSeq
	default:
		return fmt.Errorf("unknown traversal %q", traversalKind)
	}
	visited := make([]graph.NodeId, 0)
	for n := range seq(g, start) {
		visited = append(visited, n.Index())
	}
	fmt.Fprintln(out, labels(g, visited))
	return nil
}

func labels(g *graph.Graph, nodes []graph.NodeId) string {
	parts := make([]string, 0, len(nodes))
	for _, id := range nodes {
		parts = append(parts, g.GetNode(id).Payload())
	}
	return strings.Join(parts, " ")
}
