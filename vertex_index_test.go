package osm2routing

import (
	"testing"

	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexIndexNearest(t *testing.T) {
	graph := prepareWayMap(map[string]string{"highway": "residential"}).Materialize()
	index := graph.NewVertexIndex()
	require.Equal(t, 3, index.Len())

	id, ok := index.Nearest(GeoPoint{Lat: 55.7509, Lon: 37.6101})
	require.True(t, ok)
	assert.Equal(t, osm.NodeID(11), id)

	id, ok = index.Nearest(testPoints[12])
	require.True(t, ok)
	assert.Equal(t, osm.NodeID(12), id)

	// Far away query needs several radius expansions
	id, ok = index.Nearest(GeoPoint{Lat: 0, Lon: 0})
	require.True(t, ok)
	assert.Equal(t, osm.NodeID(10), id)
}

func TestVertexIndexEmpty(t *testing.T) {
	index := NewWayMap(nil).Materialize().NewVertexIndex()
	_, ok := index.Nearest(GeoPoint{Lat: 55.75, Lon: 37.61})
	assert.False(t, ok)
	assert.Len(t, index.Within(GeoPoint{Lat: 55.75, Lon: 37.61}, 1000), 0)
}

func TestVertexIndexWithin(t *testing.T) {
	graph := prepareWayMap(map[string]string{"highway": "residential"}).Materialize()
	index := graph.NewVertexIndex()

	assert.Equal(t, []osm.NodeID{10}, index.Within(testPoints[10], 0))
	assert.Equal(t, []osm.NodeID{10, 11}, index.Within(testPoints[10], 150))
	assert.Equal(t, []osm.NodeID{10, 11, 12}, index.Within(testPoints[10], 1000))
	assert.Equal(t, []osm.NodeID{11, 10, 12}, index.Within(testPoints[11], 1000))
}

func TestVertexIndexAntimeridian(t *testing.T) {
	wayMap := NewWayMap(nil)
	wayMap.AddNode(1, GeoPoint{Lat: 0, Lon: 179.9995})
	wayMap.AddNode(2, GeoPoint{Lat: 0, Lon: -179.9995})
	wayMap.AddWay(NewWay(1, []osm.NodeID{1, 2}, map[string]string{"highway": "service"}, nil))
	index := wayMap.Materialize().NewVertexIndex()

	assert.Equal(t, []osm.NodeID{1, 2}, index.Within(GeoPoint{Lat: 0, Lon: 179.9999}, 500))
}
