package main

import (
	"fmt"

	"github.com/natevvv/graph-pathfinder/pkg/graph/path"
	"github.com/natevvv/graph-pathfinder/pkg/routing"
	"github.com/spf13/cobra"
)

var (
	longFormat bool

	searchCmd = &cobra.Command{
		Use:   "search <start> <target>",
		Short: "Compute the shortest path between two nodes",
		Args:  cobra.ExactArgs(2),
		RunE:  runSearch,
	}
)

func init() {
	searchCmd.Flags().BoolVarP(&longFormat, "long", "l", false, "print one line per node with the accumulated cost")
}

func runSearch(cmd *cobra.Command, args []string) error {
	g, err := loadGraph(cfg.Graph, tracer)
	if err != nil {
		return err
	}
	start, err := lookupNode(g, args[0])
	if err != nil {
		return err
	}
	target, err := lookupNode(g, args[1])
	if err != nil {
		return err
	}
	nav, err := routing.NewNavigator(g, cfg.Search)
	if err != nil {
		return err
	}

	nav.ComputeShortestPath(start, target)
	nodes := nav.GetPath(start, target)
	out := cmd.OutOrStdout()
	if len(nodes) == 0 {
		fmt.Fprintf(out, "%v is not reachable from %v\n", args[1], args[0])
		return nil
	}
	if longFormat {
		fmt.Fprintln(out, path.FormatLong(g, nodes))
	} else {
		fmt.Fprintln(out, path.FormatShort(g, nodes))
	}
	printKPIs(nav)
	return nil
}

func printKPIs(nav path.Navigator) {
	attrs := []any{
		"navigator", cfg.Search.Navigator,
		"pq_pops", nav.GetPqPops(),
		"pq_updates", nav.GetPqUpdates(),
		"relaxation_attempts", nav.GetRelaxationAttempts(),
		"edge_relaxations", nav.GetEdgeRelaxations(),
		"search_space", len(nav.GetSearchSpace()),
	}
	if b, ok := nav.(*path.BestFirst); ok {
		attrs = append(attrs,
			"settled", b.GetSettledNodesCount(),
			"reopened", b.GetReopenedNodesCount(),
			"rejected", b.GetRejectedRelaxations(),
			"elapsed", b.Elapsed(),
		)
	}
	logger.Info("Search finished", attrs...)
}
