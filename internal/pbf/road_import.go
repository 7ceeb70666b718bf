package pbf

import (
	"errors"
	"io"
	"os"
	"runtime"

	"github.com/natevvv/graph-pathfinder/pkg/geometry"
	"github.com/natevvv/graph-pathfinder/pkg/road"
	"github.com/paulmach/osm"
	"github.com/qedus/osmpbf"
)

// RoadImporter reads the roads (ways with a known highway type) of a PBF file
type RoadImporter struct {
	filename     string
	roads        []*road.Segment
	nodes        map[osm.NodeID]geometry.Point
	missingNodes int
}

func NewRoadImporter(filename string) *RoadImporter {
	return &RoadImporter{
		filename: filename,
		roads:    make([]*road.Segment, 0),
		nodes:    make(map[osm.NodeID]geometry.Point),
	}
}

func (ri *RoadImporter) Import() error {
	if err := ri.collectNodes(); err != nil {
		return err
	}
	return ri.decode(func(v any) {
		way, ok := v.(*osmpbf.Way)
		if !ok {
			return
		}
		tags := convertTags(way.Tags)
		if road.ParseRoadType(tags.Find("highway")) == road.Unknown {
			return
		}
		segment := road.NewSegment(osm.WayID(way.ID), tags)
		for _, nodeID := range way.NodeIDs {
			if point, ok := ri.nodes[osm.NodeID(nodeID)]; ok {
				segment.AddNode(osm.NodeID(nodeID), point)
			} else {
				ri.missingNodes++
			}
		}
		if len(segment.NodeIDs) > 0 {
			ri.roads = append(ri.roads, segment)
		}
	})
}

func (ri *RoadImporter) Roads() []*road.Segment {
	return ri.roads
}

// Number of way nodes without coordinates in the file
func (ri *RoadImporter) MissingNodes() int {
	return ri.missingNodes
}

func (ri *RoadImporter) collectNodes() error {
	return ri.decode(func(v any) {
		if node, ok := v.(*osmpbf.Node); ok {
			ri.nodes[osm.NodeID(node.ID)] = geometry.MakePoint(node.Lon, node.Lat)
		}
	})
}

// Decode the whole file and hand every entity to handle
func (ri *RoadImporter) decode(handle func(v any)) error {
	file, err := os.Open(ri.filename)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := osmpbf.NewDecoder(file)
	decoder.SetBufferSize(osmpbf.MaxBlobSize)

	if err := decoder.Start(runtime.GOMAXPROCS(-1)); err != nil {
		return err
	}

	for {
		v, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		handle(v)
	}
}

func convertTags(tags map[string]string) osm.Tags {
	converted := make(osm.Tags, 0, len(tags))
	for k, v := range tags {
		converted = append(converted, osm.Tag{Key: k, Value: v})
	}
	converted.SortByKeyValue()
	return converted
}
