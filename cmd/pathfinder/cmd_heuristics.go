package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/natevvv/graph-pathfinder/pkg/graph/path"
	"github.com/spf13/cobra"
)

var (
	printPaths bool

	heuristicsCmd = &cobra.Command{
		Use:   "heuristics",
		Short: "Build the heuristic map and compare it with the exact costs of all node pairs",
		Args:  cobra.NoArgs,
		RunE:  runHeuristics,
	}
)

func init() {
	heuristicsCmd.Flags().BoolVarP(&printPaths, "paths", "p", false, "print the shortest path of every pair instead")
}

func runHeuristics(cmd *cobra.Command, args []string) error {
	g, err := loadGraph(cfg.Graph, tracer)
	if err != nil {
		return err
	}
	hm := g.BuildHeuristicMap()
	ucs := path.NewUniformCostSearch(g)
	out := cmd.OutOrStdout()

	if printPaths {
		for _, pp := range path.AllPairsPaths(ucs) {
			fmt.Fprintln(out, pp)
		}
		return nil
	}

	costs := path.AllPairsCosts(ucs)
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "from\tto\testimate\tcost")
	overestimates := 0
	for _, from := range g.Nodes() {
		if from == nil {
			continue
		}
		for _, to := range g.Nodes() {
			if to == nil || to == from {
				continue
			}
			estimate := hm.Lookup(from.Payload(), to.Payload())
			cost := costs[from.Index()][to.Index()]
			if estimate > cost {
				overestimates++
			}
			fmt.Fprintf(w, "%v\t%v\t%.3f\t%v\n", from.Payload(), to.Payload(), estimate, cost)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	logger.Info("Heuristic map built", "entries", hm.Len(), "overestimates", overestimates)
	return nil
}
