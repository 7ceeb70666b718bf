package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceTo(t *testing.T) {
	a := MakePoint(0, 0)
	b := MakePoint(3, 4)
	assert.InDelta(t, 5.0, a.DistanceTo(b), 1e-9)
	assert.InDelta(t, 5.0, b.DistanceTo(a), 1e-9)
	assert.Zero(t, a.DistanceTo(a))
}

func TestHaversine(t *testing.T) {
	// one degree of latitude is roughly 111km
	a := MakePoint(0, 0)
	b := MakePoint(0, 1)
	assert.InDelta(t, 111_320, a.Haversine(b), 500)
	assert.Equal(t, a.IntHaversine(b), b.IntHaversine(a))
}

func TestAccessors(t *testing.T) {
	p := NewPoint(8.5, 47.3)
	assert.Equal(t, 8.5, p.X())
	assert.Equal(t, 47.3, p.Y())
	assert.Equal(t, p.X(), p.Lon())
	assert.Equal(t, p.Y(), p.Lat())
	assert.Equal(t, "(8.5, 47.3)", p.String())
}
