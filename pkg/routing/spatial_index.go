package routing

import (
	"github.com/dhconnelly/rtreego"
	"github.com/natevvv/graph-pathfinder/pkg/geometry"
	"github.com/natevvv/graph-pathfinder/pkg/graph"
)

// tolerance of the point rectangles in the tree
const pointTolerance = 1e-9

// nodeEntry wraps a positioned node for R-tree storage
type nodeEntry struct {
	id       graph.NodeId
	position geometry.Point
	bbox     rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (e *nodeEntry) Bounds() rtreego.Rect {
	return e.bbox
}

// SpatialIndex finds the node closest to a position. Only nodes with a position are indexed.
type SpatialIndex struct {
	tree *rtreego.Rtree
}

func NewSpatialIndex(g *graph.Graph) *SpatialIndex {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node
	for _, n := range g.Nodes() {
		if n == nil {
			continue
		}
		if p, ok := n.Position(); ok {
			tree.Insert(&nodeEntry{id: n.Index(), position: p, bbox: rtreego.Point{p.X(), p.Y()}.ToRect(pointTolerance)})
		}
	}
	return &SpatialIndex{tree: tree}
}

func (si *SpatialIndex) Size() int { return si.tree.Size() }

// Return the node closest to p, false if no node has a position
func (si *SpatialIndex) Nearest(p geometry.Point) (graph.NodeId, bool) {
	if si.tree.Size() == 0 {
		return graph.None, false
	}
	nearest := si.tree.NearestNeighbor(rtreego.Point{p.X(), p.Y()})
	if nearest == nil {
		return graph.None, false
	}
	return nearest.(*nodeEntry).id, true
}
