package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/natevvv/graph-pathfinder/internal/pbf"
	"github.com/natevvv/graph-pathfinder/pkg/road"
	"github.com/natevvv/graph-pathfinder/pkg/trace"
)

var flagPbfFile = flag.String("f", "map.osm.pbf", "PBF file")
var flagNodesFile = flag.String("nodes", "nodes.txt", "Output node list")
var flagArcsFile = flag.String("arcs", "arcs.txt", "Output arc list")
var flagRoadsFile = flag.String("roads", "", "Also export the merged roads as JSON")
var flagVerbosity = flag.Int("v", 1, "Trace verbosity")

func main() {
	flag.Parse()
	logger := trace.NewLeveled(slog.New(slog.NewTextHandler(os.Stderr, nil)), *flagVerbosity)

	start := time.Now()

	roadImporter := pbf.NewRoadImporter(*flagPbfFile)
	if err := roadImporter.Import(); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("[TIME] Import: %s\n", time.Since(start))
	fmt.Printf("Road segments: %d (%d nodes without coordinates)\n", len(roadImporter.Roads()), roadImporter.MissingNodes())

	start = time.Now()

	merger := road.NewMerger(roadImporter.Roads())
	merger.Merge()

	fmt.Printf("[TIME] Merge: %s\n", time.Since(start))
	fmt.Printf("Merged road segments: %d\n", len(merger.Roads()))
	fmt.Printf("Merges: %d\n", merger.MergeCount())
	fmt.Printf("Unmergable road segments: %d\n", merger.UnmergableRoadCount())

	start = time.Now()

	g := road.BuildGraph(merger.Roads(), logger)
	if err := pbf.ExportGraphLists(g, *flagNodesFile, *flagArcsFile); err != nil {
		log.Fatal(err)
	}
	if *flagRoadsFile != "" {
		if err := pbf.ExportRoadJson(merger.Roads(), *flagRoadsFile); err != nil {
			log.Fatal(err)
		}
	}

	fmt.Printf("[TIME] Export: %s\n", time.Since(start))
	fmt.Printf("Exported %d nodes and %d arcs to %s and %s\n", g.Count(), g.ArcCount(), *flagNodesFile, *flagArcsFile)
}
