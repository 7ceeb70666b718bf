package road

import (
	"github.com/paulmach/osm"
)

// Merger joins segments which continue each other at a node no other segment touches
type Merger struct {
	roads           []*Segment
	mergeCount      int
	unmergableCount int
}

func NewMerger(roads []*Segment) *Merger {
	return &Merger{
		roads: roads,
	}
}

func (m *Merger) Merge() {
	// how many segments touch a node (end points and inner nodes)
	usage := make(map[osm.NodeID]int)
	startingAt := make(map[osm.NodeID][]*Segment)

	valid := make([]*Segment, 0, len(m.roads))
	for _, seg := range m.roads {
		if len(seg.NodeIDs) < 2 {
			m.unmergableCount++
			continue
		}
		valid = append(valid, seg)
		for _, id := range seg.NodeIDs {
			usage[id]++
		}
		startingAt[seg.First()] = append(startingAt[seg.First()], seg)
	}

	merged := make(map[*Segment]bool)
	var newRoads []*Segment

	for _, seg := range valid {
		if merged[seg] {
			continue
		}
		merged[seg] = true

		current := seg
		for {
			end := current.Last()
			if usage[end] != 2 {
				// junction or dead end
				break
			}
			foundNext := false
			for _, next := range startingAt[end] {
				if merged[next] || !canMerge(current, next) {
					continue
				}
				current = mergeTwoSegments(current, next)
				merged[next] = true
				m.mergeCount++
				foundNext = true
				break
			}
			if !foundNext {
				break
			}
		}

		newRoads = append(newRoads, current)
	}

	m.roads = newRoads
}

func canMerge(s1, s2 *Segment) bool {
	return s1.Type == s2.Type &&
		s1.OneWay == s2.OneWay &&
		s1.MaxSpeed == s2.MaxSpeed &&
		s1.First() != s2.Last()
}

func mergeTwoSegments(s1, s2 *Segment) *Segment {
	merged := &Segment{
		ID:       s1.ID,
		Type:     s1.Type,
		OneWay:   s1.OneWay,
		MaxSpeed: s1.MaxSpeed,
		Tags:     s1.Tags,
	}

	// the first node of s2 is the last node of s1
	merged.NodeIDs = append(append(merged.NodeIDs, s1.NodeIDs...), s2.NodeIDs[1:]...)
	merged.Points = append(append(merged.Points, s1.Points...), s2.Points[1:]...)

	return merged
}

func (m *Merger) Roads() []*Segment {
	return m.roads
}

func (m *Merger) MergeCount() int {
	return m.mergeCount
}

func (m *Merger) UnmergableRoadCount() int {
	return m.unmergableCount
}
