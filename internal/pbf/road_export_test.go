package pbf

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/natevvv/graph-pathfinder/pkg/geometry"
	"github.com/natevvv/graph-pathfinder/pkg/graph"
	"github.com/natevvv/graph-pathfinder/pkg/road"
	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportGraphLists(t *testing.T) {
	s := road.NewSegment(1, osm.Tags{{Key: "highway", Value: "primary"}})
	s.AddNode(10, geometry.MakePoint(8.0, 50.0))
	s.AddNode(11, geometry.MakePoint(8.001, 50.0))
	s.AddNode(12, geometry.MakePoint(8.002, 50.0))
	g := road.BuildGraph([]*road.Segment{s}, nil)

	dir := t.TempDir()
	nodesFile, arcsFile := filepath.Join(dir, "nodes.txt"), filepath.Join(dir, "arcs.txt")
	require.NoError(t, ExportGraphLists(g, nodesFile, arcsFile))

	reread, err := graph.NewGraphFromListFiles(nodesFile, arcsFile, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, reread.Count())
	assert.Equal(t, 2, reread.ArcCount())
	assert.Equal(t, "10", reread.GetNode(0).Payload())
	arc, ok := reread.GetArc(1, 0)
	require.True(t, ok)
	assert.InDelta(t, s.Length(), arc.Weight, 1e-6)
}

func TestExportRoadJson(t *testing.T) {
	s := road.NewSegment(1, osm.Tags{{Key: "highway", Value: "primary"}})
	s.AddNode(10, geometry.MakePoint(8.0, 50.0))
	filename := filepath.Join(t.TempDir(), "roads.json")
	require.NoError(t, ExportRoadJson([]*road.Segment{s}, filename))

	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(content, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, 1.0, decoded[0]["ID"])
}

func TestConvertTags(t *testing.T) {
	tags := convertTags(map[string]string{"oneway": "yes", "highway": "primary"})
	assert.Equal(t, "primary", tags.Find("highway"))
	assert.Equal(t, "highway", tags[0].Key)
}
