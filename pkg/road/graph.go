package road

import (
	"strconv"

	"github.com/natevvv/graph-pathfinder/pkg/geometry"
	"github.com/natevvv/graph-pathfinder/pkg/graph"
	"github.com/natevvv/graph-pathfinder/pkg/trace"
	"github.com/paulmach/osm"
)

// Build a graph from road segments.
// Only junctions (nodes shared by several segments) and segment ends become nodes of the graph,
// the inner points between them are collapsed into one arc weighted with the length in meters.
// One-way segments get arcs in their direction only. Node payloads are the OSM node ids.
func BuildGraph(roads []*Segment, logger trace.Logger) *graph.Graph {
	usage := make(map[osm.NodeID]int)
	for _, seg := range roads {
		if len(seg.NodeIDs) < 2 {
			continue
		}
		for _, id := range seg.NodeIDs {
			usage[id]++
		}
	}
	isJunction := func(seg *Segment, i int) bool {
		return i == 0 || i == len(seg.NodeIDs)-1 || usage[seg.NodeIDs[i]] > 1
	}

	index := make(map[osm.NodeID]graph.NodeId)
	positions := make([]geometry.Point, 0)
	ids := make([]osm.NodeID, 0)
	for _, seg := range roads {
		if len(seg.NodeIDs) < 2 {
			continue
		}
		for i, id := range seg.NodeIDs {
			if _, ok := index[id]; ok || !isJunction(seg, i) {
				continue
			}
			index[id] = len(ids)
			ids = append(ids, id)
			positions = append(positions, seg.Points[i])
		}
	}

	g := graph.NewGraph(len(ids))
	g.SetLogger(logger)
	for i, id := range ids {
		g.AddNodeWithPosition(strconv.FormatInt(int64(id), 10), i, positions[i])
	}

	for _, seg := range roads {
		if len(seg.NodeIDs) < 2 {
			continue
		}
		from := 0
		length := 0.0
		for i := 1; i < len(seg.NodeIDs); i++ {
			length += seg.Points[i-1].Haversine(seg.Points[i])
			if !isJunction(seg, i) {
				continue
			}
			source, target := index[seg.NodeIDs[from]], index[seg.NodeIDs[i]]
			if source != target {
				if seg.OneWay {
					g.AddArc(source, target, length)
				} else {
					g.AddDualArc(source, target, length)
				}
			}
			from = i
			length = 0
		}
	}
	trace.Printf(g.Logger(), trace.LevelSummary, "Built road graph with %v nodes and %v arcs", g.Count(), g.ArcCount())
	return g
}
