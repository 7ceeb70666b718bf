package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"
	"time"

	"github.com/natevvv/graph-pathfinder/pkg/config"
	"github.com/natevvv/graph-pathfinder/pkg/graph"
	p "github.com/natevvv/graph-pathfinder/pkg/graph/path"
	"github.com/natevvv/graph-pathfinder/pkg/routing"
	"github.com/natevvv/graph-pathfinder/pkg/slice"
)

// origin, destination, reference length, reference hops
type target struct {
	origin, destination graph.NodeId
	length              float64
	hops                int
}

func main() {
	configFile := flag.String("config", "", "YAML config file")
	useRandomTargets := flag.Bool("random", false, "Create (new) random targets")
	amountTargets := flag.Int("n", 100, "How many new targets should get created")
	storeTargets := flag.Bool("store", false, "Store targets (when newly generated)")
	targetFile := flag.String("targets", "targets.txt", "File with the targets")
	algorithm := flag.String("search", "", "Select the search algorithm (default from the config)")
	multiplier := flag.Float64("multiplier", 0, "Heuristic multiplier of astar (default from the config)")
	reopening := flag.Bool("reopening", true, "Allow reopening of settled nodes")
	allPairs := flag.Bool("all-pairs", false, "Compare all pairs instead of the targets")
	cpuProfile := flag.String("cpu", "", "write cpu profile to file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	if *algorithm != "" {
		cfg.Search.Navigator = *algorithm
	}
	if *multiplier > 0 {
		cfg.Search.HeuristicMultiplier = *multiplier
	}

	start := time.Now()
	g, err := loadGraph(cfg.Graph)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("[TIME-Import] = %s\n", time.Since(start))

	navigator, err := routing.NewNavigator(g, cfg.Search)
	if err != nil {
		log.Fatal(err)
	}
	if b, ok := navigator.(*p.BestFirst); ok {
		b.SetOptions(b.Options().SetReopening(*reopening))
	}
	referenceDijkstra := p.NewDijkstra(g)

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if *allPairs {
		compareAllPairs(navigator, referenceDijkstra)
		return
	}

	var targets []target
	if *useRandomTargets {
		targets = createTargets(*amountTargets, referenceDijkstra)
		if *storeTargets {
			if err := writeTargets(targets, *targetFile); err != nil {
				log.Fatal(err)
			}
		}
	} else {
		targets, err = readTargets(*targetFile)
		if err != nil {
			log.Fatal(err)
		}
		if *amountTargets < len(targets) {
			targets = targets[0:*amountTargets]
		}
	}

	benchmark(navigator, targets)
}

func loadGraph(c config.GraphConfig) (*graph.Graph, error) {
	if c.Fmi != "" {
		return graph.NewGraphFromFmiFile(c.Fmi)
	}
	return graph.NewGraphFromListFiles(c.Nodes, c.Arcs, c.Capacity, nil)
}

func readTargets(filename string) ([]target, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	targets := make([]target, 0)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 1 || line[0] == '#' {
			// skip empty lines and comments
			continue
		}
		var t target
		if _, err := fmt.Sscanf(line, "%d %d %g %d", &t.origin, &t.destination, &t.length, &t.hops); err != nil {
			return nil, fmt.Errorf("invalid target %q: %w", line, err)
		}
		targets = append(targets, t)
	}
	return targets, scanner.Err()
}

// Pick random node pairs and compute their reference results
func createTargets(n int, referenceDijkstra *p.Dijkstra) []target {
	g := referenceDijkstra.GetGraph()
	ids := make([]graph.NodeId, 0, g.Count())
	for _, node := range g.Nodes() {
		if node != nil {
			ids = append(ids, node.Index())
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	targets := make([]target, n)
	for i := range targets {
		origin := ids[rng.Intn(len(ids))]
		destination := ids[rng.Intn(len(ids))]
		length := referenceDijkstra.ComputeShortestPath(origin, destination)
		hops := len(referenceDijkstra.GetPath(origin, destination))
		targets[i] = target{origin, destination, length, hops}
	}
	return targets
}

func writeTargets(targets []target, targetFile string) error {
	file, err := os.Create(targetFile)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, t := range targets {
		fmt.Fprintf(writer, "%v %v %v %v\n", t.origin, t.destination, t.length, t.hops)
	}
	return errors.Join(writer.Flush(), file.Sync())
}

// Run all targets with the navigator and compare the results with the reference
func benchmark(navigator p.Navigator, targets []target) {
	var runtime time.Duration = 0
	var runtimeWithPathExtraction time.Duration = 0
	completed := 0

	pqPops := 0
	pqUpdates := 0
	edgeRelaxations := 0
	relaxationAttempts := 0

	invalidLengths := make([]int, 0)
	invalidResults := make([]int, 0)
	invalidHops := make([]int, 0)
	lengths := make([]float64, len(targets))
	hops := make([]int, len(targets))

	showResults := func() {
		if completed == 0 {
			fmt.Println("No target completed")
			return
		}
		fmt.Printf("Average runtime: %.3fms, %.3fms\n", float64(runtime.Microseconds())/float64(completed)/1000, float64(runtimeWithPathExtraction.Microseconds())/float64(completed)/1000)
		fmt.Printf("Average pq pops: %d\n", pqPops/completed)
		fmt.Printf("Average pq updates: %d\n", pqUpdates/completed)
		fmt.Printf("Average relaxations attempts: %d\n", relaxationAttempts/completed)
		fmt.Printf("Average edge relaxations: %d\n", edgeRelaxations/completed)

		fmt.Printf("%v/%v invalid Result (source/target).\n", len(invalidResults), completed)
		for i, result := range invalidResults {
			fmt.Printf("%v: Case %v (%v -> %v) has invalid result\n", i, result, targets[result].origin, targets[result].destination)
		}

		fmt.Printf("%v/%v invalid path lengths.\n", len(invalidLengths), completed)
		for i, testcase := range invalidLengths {
			t := targets[testcase]
			fmt.Printf("%v: Case %v (%v -> %v) has invalid length. Has: %v, Reference: %v, Difference: %v\n", i, testcase, t.origin, t.destination, lengths[testcase], t.length, lengths[testcase]-t.length)
		}

		fmt.Printf("%v/%v invalid hops number.\n", len(invalidHops), completed)
		for i, testcase := range invalidHops {
			t := targets[testcase]
			fmt.Printf("%v: Case %v (%v -> %v) has invalid #hops. Has: %v, reference: %v, difference: %v\n", i, testcase, t.origin, t.destination, hops[testcase], t.hops, hops[testcase]-t.hops)
		}
	}

	// catch interrupt to still show already calculated results
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		showResults()
		os.Exit(0)
	}()

	for i, t := range targets {
		start := time.Now()
		length := navigator.ComputeShortestPath(t.origin, t.destination)
		elapsed := time.Since(start)

		pqPops += navigator.GetPqPops()
		pqUpdates += navigator.GetPqUpdates()
		edgeRelaxations += navigator.GetEdgeRelaxations()
		relaxationAttempts += navigator.GetRelaxationAttempts()

		path := navigator.GetPath(t.origin, t.destination)
		elapsedPath := time.Since(start)

		fmt.Printf("[%3v TIME-Navigate, TIME-Path, PQ Pops, PQ Updates, relaxed Edges, relax attempts] = %12s, %12s, %7d, %7d, %7d, %7d\n", i, elapsed, elapsedPath, navigator.GetPqPops(), navigator.GetPqUpdates(), navigator.GetEdgeRelaxations(), navigator.GetRelaxationAttempts())

		lengths[i] = length
		hops[i] = len(path)
		if !sameLength(length, t.length) {
			invalidLengths = append(invalidLengths, i)
		}
		if len(path) > 0 && (path[0] != t.origin || path[len(path)-1] != t.destination) {
			invalidResults = append(invalidResults, i)
		}
		if t.hops != len(path) {
			invalidHops = append(invalidHops, i)
		}

		runtime += elapsed
		runtimeWithPathExtraction += elapsedPath
		completed++
	}
	// normal termination, show results
	showResults()
}

// Compare the costs of all node pairs with the reference
func compareAllPairs(navigator, reference p.Navigator) {
	start := time.Now()
	costs := p.AllPairsCosts(navigator)
	elapsed := time.Since(start)
	referenceCosts := p.AllPairsCosts(reference)

	invalid := make([]string, 0)
	unreachable := 0
	for i := range costs {
		unreachable += slice.Count(costs[i], func(c float64) bool { return math.IsInf(c, 1) })
		for j := range costs[i] {
			if !sameLength(costs[i][j], referenceCosts[i][j]) {
				invalid = append(invalid, fmt.Sprintf("%v -> %v: has %v, reference %v", i, j, costs[i][j], referenceCosts[i][j]))
			}
		}
	}
	fmt.Printf("[TIME-AllPairs] = %s\n", elapsed)
	fmt.Printf("%v unreachable slots, %v invalid pairs\n", unreachable, len(invalid))
	for _, line := range invalid {
		fmt.Println(line)
	}
	if len(invalid) > 0 {
		os.Exit(1)
	}
}

func sameLength(a, b float64) bool {
	if math.IsInf(a, 1) || math.IsInf(b, 1) {
		return math.IsInf(a, 1) && math.IsInf(b, 1)
	}
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Abs(b))
}
