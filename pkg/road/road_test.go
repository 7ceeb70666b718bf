package road

import (
	"testing"

	"github.com/natevvv/graph-pathfinder/pkg/geometry"
	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func segment(id osm.WayID, tags osm.Tags, nodes ...osm.NodeID) *Segment {
	s := NewSegment(id, tags)
	for _, n := range nodes {
		// nodes lie on the equator, 0.001 degree apart
		s.AddNode(n, geometry.MakePoint(float64(n)*0.001, 0))
	}
	return s
}

var primary = osm.Tags{{Key: "highway", Value: "primary"}}

func TestNewSegment(t *testing.T) {
	s := NewSegment(7, osm.Tags{
		{Key: "highway", Value: "motorway_link"},
		{Key: "oneway", Value: "yes"},
		{Key: "maxspeed", Value: "80"},
	})
	assert.Equal(t, Motorway, s.Type)
	assert.True(t, s.OneWay)
	assert.Equal(t, 80, s.MaxSpeed)
	assert.Equal(t, "Motorway", s.Type.String())
	assert.Equal(t, Unknown, ParseRoadType("footway"))
}

func TestMerge(t *testing.T) {
	roads := []*Segment{
		segment(1, primary, 1, 2, 3),
		segment(2, primary, 3, 4),
		segment(3, primary, 4, 5),
		// 5 is a junction
		segment(4, primary, 5, 6),
		segment(5, primary, 5, 7),
		segment(6, primary, 9),
		// other road type
		segment(7, osm.Tags{{Key: "highway", Value: "secondary"}}, 7, 8),
	}
	m := NewMerger(roads)
	m.Merge()

	assert.Equal(t, 2, m.MergeCount())
	assert.Equal(t, 1, m.UnmergableRoadCount())
	require.Len(t, m.Roads(), 4)
	assert.Equal(t, []osm.NodeID{1, 2, 3, 4, 5}, m.Roads()[0].NodeIDs)
	assert.Len(t, m.Roads()[0].Points, 5)
	assert.Equal(t, osm.WayID(1), m.Roads()[0].ID)
}

func TestBuildGraph(t *testing.T) {
	roads := []*Segment{
		segment(1, primary, 1, 2, 3, 4),
		segment(2, primary, 3, 5),
		segment(3, append(osm.Tags{{Key: "oneway", Value: "yes"}}, primary...), 4, 6),
	}
	g := BuildGraph(roads, nil)

	// 2 is an inner node, 3 is a junction
	assert.Equal(t, 5, g.Count())
	_, ok := g.FindByPayload("2")
	assert.False(t, ok)

	one, _ := g.FindByPayload("1")
	three, _ := g.FindByPayload("3")
	four, _ := g.FindByPayload("4")
	six, _ := g.FindByPayload("6")

	arc, ok := g.GetArc(one, three)
	require.True(t, ok)
	assert.InDelta(t, roads[0].Points[0].Haversine(roads[0].Points[2]), arc.Weight, 1e-6)
	_, ok = g.GetArc(three, one)
	assert.True(t, ok)

	_, ok = g.GetArc(four, six)
	assert.True(t, ok)
	_, ok = g.GetArc(six, four)
	assert.False(t, ok, "one way")

	assert.Equal(t, 7, g.ArcCount())
	assert.InDelta(t, 333.9, roads[0].Length(), 1)
}
