package road

import (
	"strconv"

	"github.com/natevvv/graph-pathfinder/pkg/geometry"
	"github.com/paulmach/osm"
)

type RoadType int

const (
	Unknown RoadType = iota
	Motorway
	Trunk
	Primary
	Secondary
	Tertiary
)

func (r RoadType) String() string {
	return []string{"Unknown", "Motorway", "Trunk", "Primary", "Secondary", "Tertiary"}[r]
}

// Return the road type of an OSM highway tag value
func ParseRoadType(highway string) RoadType {
	switch highway {
	case "motorway", "motorway_link":
		return Motorway
	case "trunk", "trunk_link":
		return Trunk
	case "primary", "primary_link":
		return Primary
	case "secondary", "secondary_link":
		return Secondary
	case "tertiary", "tertiary_link":
		return Tertiary
	default:
		return Unknown
	}
}

// Segment is a part of an OSM way. NodeIDs and Points have the same length.
type Segment struct {
	ID       osm.WayID
	Type     RoadType
	NodeIDs  []osm.NodeID
	Points   []geometry.Point
	Tags     osm.Tags
	OneWay   bool
	MaxSpeed int // km/h, 0 if unknown
}

// Create a segment from the tags of a way. The nodes have to be added with AddNode.
func NewSegment(id osm.WayID, tags osm.Tags) *Segment {
	s := &Segment{
		ID:     id,
		Type:   ParseRoadType(tags.Find("highway")),
		Tags:   tags,
		OneWay: tags.Find("oneway") == "yes" || tags.Find("oneway") == "1",
	}
	if speed, err := strconv.Atoi(tags.Find("maxspeed")); err == nil {
		s.MaxSpeed = speed
	}
	return s
}

func (s *Segment) AddNode(id osm.NodeID, p geometry.Point) {
	s.NodeIDs = append(s.NodeIDs, id)
	s.Points = append(s.Points, p)
}

func (s *Segment) First() osm.NodeID { return s.NodeIDs[0] }
func (s *Segment) Last() osm.NodeID  { return s.NodeIDs[len(s.NodeIDs)-1] }

// Length of the segment in meters
func (s *Segment) Length() float64 {
	length := 0.0
	for i := 1; i < len(s.Points); i++ {
		length += s.Points[i-1].Haversine(s.Points[i])
	}
	return length
}
