package geometry

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"
)

// A Point in the plane. For graphs imported from OSM data, X is the longitude and Y the latitude.
type Point orb.Point

func MakePoint(x, y float64) Point {
	return Point{x, y}
}

func NewPoint(x, y float64) *Point {
	p := MakePoint(x, y)
	return &p
}

func (p Point) X() float64 { return p[0] }
func (p Point) Y() float64 { return p[1] }

// Lon and Lat are aliases for X and Y on geographic graphs
func (p Point) Lon() float64 { return p[0] }
func (p Point) Lat() float64 { return p[1] }

func (p Point) Orb() orb.Point { return orb.Point(p) }

// Euclidean distance between p and other
func (p Point) DistanceTo(other Point) float64 {
	return planar.Distance(p.Orb(), other.Orb())
}

// Great circle distance in meters, interpreting the points as lon/lat
func (p Point) Haversine(other Point) float64 {
	return geo.DistanceHaversine(p.Orb(), other.Orb())
}

// Rounded great circle distance in meters
func (p Point) IntHaversine(other Point) int {
	return int(p.Haversine(other) + 0.5)
}

func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", p[0], p[1])
}
