package osm2routing

import (
	"testing"

	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var (
	testPoints = map[osm.NodeID]GeoPoint{
		10: {Lat: 55.750, Lon: 37.610},
		11: {Lat: 55.751, Lon: 37.610},
		12: {Lat: 55.752, Lon: 37.611},
	}
)

func prepareWayMap(tags map[string]string) *WayMap {
	wayMap := NewWayMap(nil)
	for id, pt := range testPoints {
		wayMap.AddNode(id, pt)
	}
	wayMap.AddWay(NewWay(1, []osm.NodeID{10, 11, 12}, tags, nil))
	return wayMap
}

func TestMaterializeBidirectional(t *testing.T) {
	graph := prepareWayMap(map[string]string{"highway": "residential"}).Materialize()

	assert.Equal(t, 3, graph.VerticesNum())
	require.Equal(t, 4, graph.EdgesNum())
	for _, edge := range graph.Edges() {
		source, ok := graph.Vertex(edge.Source)
		require.True(t, ok)
		target, ok := graph.Vertex(edge.Target)
		require.True(t, ok)
		assert.InDelta(t, source.Point.Distance(target.Point), edge.DistMeters, 1e-9)
		assert.Equal(t, edge.DistMeters, edge.Weight())
		assert.Equal(t, osm.WayID(1), edge.Way.ID)
		assert.Equal(t, CAR_RESIDENTIAL, edge.Car)
		assert.Equal(t, BIKE_ALLOWED, edge.Bike)
		assert.Equal(t, FOOT_ALLOWED, edge.Foot)
	}

	edges := graph.Edges()
	assert.Equal(t, osm.NodeID(10), edges[0].Source)
	assert.Equal(t, osm.NodeID(11), edges[0].Target)
	assert.Equal(t, DIRECTION_FORWARD, edges[0].Direction)
	assert.Equal(t, osm.NodeID(11), edges[1].Source)
	assert.Equal(t, osm.NodeID(10), edges[1].Target)
	assert.Equal(t, DIRECTION_BACKWARD, edges[1].Direction)
	assert.Equal(t, 0, graph.SkippedSegments())
}

func TestMaterializeOneway(t *testing.T) {
	graph := prepareWayMap(map[string]string{"highway": "residential", "oneway": "yes"}).Materialize()

	for _, transport := range []TransportType{TRANSPORT_CAR, TRANSPORT_BIKE} {
		edges := graph.EdgesFor(transport)
		require.Len(t, edges, 2, transport.String())
		for _, edge := range edges {
			assert.Equal(t, DIRECTION_FORWARD, edge.Direction)
		}
	}

	// Pedestrians still walk both ways, so backward edges exist for them only
	assert.Len(t, graph.EdgesFor(TRANSPORT_FOOT), 4)
	for _, edge := range graph.Edges() {
		if edge.Direction != DIRECTION_BACKWARD {
			continue
		}
		assert.Equal(t, CAR_FORBIDDEN, edge.Car)
		assert.Equal(t, BIKE_FORBIDDEN, edge.Bike)
		assert.Equal(t, FOOT_ALLOWED, edge.Foot)
	}
}

func TestMaterializeMotorwayOneway(t *testing.T) {
	graph := prepareWayMap(map[string]string{"highway": "motorway", "oneway": "yes"}).Materialize()
	require.Equal(t, 2, graph.EdgesNum())
	assert.Len(t, graph.EdgesFor(TRANSPORT_BIKE), 0)
	assert.Len(t, graph.EdgesFor(TRANSPORT_FOOT), 0)
	assert.Len(t, graph.EdgesFor(TRANSPORT_CAR), 2)
}

func TestMaterializeMotorwayBicycle(t *testing.T) {
	wayMap := prepareWayMap(map[string]string{"highway": "motorway", "bicycle": "yes"})
	way, ok := wayMap.Way(1)
	require.True(t, ok)
	assert.False(t, way.Accessibility().DirectAccessible(TRANSPORT_BIKE))
	assert.True(t, way.Accessibility().DirectAccessible(TRANSPORT_CAR))

	graph := wayMap.Materialize()
	assert.Len(t, graph.EdgesFor(TRANSPORT_BIKE), 0)
	assert.Len(t, graph.EdgesFor(TRANSPORT_CAR), 4)
}

func TestMaterializeInaccessibleWay(t *testing.T) {
	graph := prepareWayMap(map[string]string{"building": "yes"}).Materialize()
	assert.Equal(t, 0, graph.VerticesNum())
	assert.Equal(t, 0, graph.EdgesNum())
}

func TestMaterializeIdempotent(t *testing.T) {
	wayMap := prepareWayMap(map[string]string{"highway": "tertiary", "junction": "roundabout"})
	wayMap.AddNode(13, GeoPoint{Lat: 55.753, Lon: 37.612})
	wayMap.AddWay(NewWay(2, []osm.NodeID{12, 13, 10}, map[string]string{"highway": "footway"}, nil))

	first := wayMap.Materialize()
	second := wayMap.Materialize()
	assert.Equal(t, first.Vertices(), second.Vertices())
	assert.Equal(t, first.Edges(), second.Edges())
}

func TestMaterializeUnknownNode(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	wayMap := NewWayMap(zap.New(core))
	wayMap.AddNode(10, testPoints[10])
	wayMap.AddNode(11, testPoints[11])
	wayMap.AddWay(NewWay(7, []osm.NodeID{10, 11, 99, 10}, map[string]string{"highway": "service"}, nil))

	graph := wayMap.Materialize()
	assert.Equal(t, 2, graph.SkippedSegments())
	assert.Equal(t, 2, graph.VerticesNum())
	assert.Equal(t, 2, graph.EdgesNum())

	warnings := logs.FilterMessage("Segment references unknown node, skipping it").AllUntimed()
	require.Len(t, warnings, 2)
	assert.Equal(t, int64(7), warnings[0].ContextMap()["way_id"])
	assert.Equal(t, int64(99), warnings[0].ContextMap()["node_id"])
}

func TestRoutableGraphAdjacency(t *testing.T) {
	graph := prepareWayMap(map[string]string{"highway": "primary", "oneway": "yes", "foot": "no"}).Materialize()
	require.Equal(t, 2, graph.EdgesNum())

	outgoing := graph.OutgoingEdges(11)
	require.Len(t, outgoing, 1)
	assert.Equal(t, osm.NodeID(12), outgoing[0].Target)

	incoming := graph.IncomingEdges(11)
	require.Len(t, incoming, 1)
	assert.Equal(t, osm.NodeID(10), incoming[0].Source)

	assert.Len(t, graph.OutgoingEdges(12), 0)
	assert.Nil(t, graph.OutgoingEdges(42))
	assert.Nil(t, graph.IncomingEdges(42))
	_, ok := graph.Vertex(42)
	assert.False(t, ok)
}

func TestRoutableGraphLength(t *testing.T) {
	graph := prepareWayMap(map[string]string{"highway": "residential", "oneway": "yes"}).Materialize()
	total := 0.0
	for _, edge := range graph.EdgesFor(TRANSPORT_CAR) {
		total += edge.Weight()
	}
	assert.InDelta(t, total, graph.Length(TRANSPORT_CAR), 1e-9)
	assert.InDelta(t, 2*total, graph.Length(TRANSPORT_FOOT), 1e-9)
	assert.InDelta(t, graph.Length(TRANSPORT_FOOT), graph.Length(TRANSPORT_ANY), 1e-9)

	line := graph.Geometry(&graph.Edges()[0])
	require.Len(t, line, 2)
	assert.Equal(t, testPoints[10].Lon, line[0].Lon())
	assert.Equal(t, testPoints[10].Lat, line[0].Lat())
}

func TestStreets(t *testing.T) {
	wayMap := NewWayMap(nil)
	wayMap.AddWay(NewWay(3, []osm.NodeID{1, 2}, map[string]string{"highway": "residential", "name": "Main Street"}, nil))
	wayMap.AddWay(NewWay(1, []osm.NodeID{2, 3}, map[string]string{"highway": "primary", "name": "Main Street"}, nil))
	wayMap.AddWay(NewWay(2, []osm.NodeID{3, 4}, map[string]string{"building": "yes", "name": "Town Hall"}, nil))
	wayMap.AddWay(NewWay(4, []osm.NodeID{4, 5}, map[string]string{"highway": "service"}, nil))
	// Greatest ID with the same name, but not a road
	wayMap.AddWay(NewWay(5, []osm.NodeID{5, 6}, map[string]string{"building": "yes", "name": "Main Street"}, nil))

	streets := wayMap.Streets()
	require.Len(t, streets, 1)
	assert.Equal(t, osm.WayID(3), streets["Main Street"].ID)
	assert.True(t, streets["Main Street"].IsHighway())
	_, ok := streets["Town Hall"]
	assert.False(t, ok)
}

func TestStreetsSharedName(t *testing.T) {
	wayMap := NewWayMap(nil)
	wayMap.AddWay(NewWay(1, []osm.NodeID{1, 2}, map[string]string{"building": "yes", "name": "Main Street"}, nil))
	wayMap.AddWay(NewWay(2, []osm.NodeID{2, 3}, map[string]string{"highway": "residential", "name": "Main Street"}, nil))

	streets := wayMap.Streets()
	require.Len(t, streets, 1)
	assert.Equal(t, osm.WayID(2), streets["Main Street"].ID)
}

func TestWayMapAccessors(t *testing.T) {
	wayMap := prepareWayMap(map[string]string{"highway": "residential", "name": "Main Street"})
	wayMap.AddWay(NewWay(5, []osm.NodeID{12, 10}, nil, nil))

	assert.Equal(t, 3, wayMap.NodesNum())
	assert.Equal(t, 2, wayMap.WaysNum())
	assert.Equal(t, []osm.WayID{1, 5}, wayMap.WayIDs())

	pt, ok := wayMap.Node(11)
	require.True(t, ok)
	assert.Equal(t, testPoints[11], pt)
	_, ok = wayMap.Node(99)
	assert.False(t, ok)

	way, ok := wayMap.Way(1)
	require.True(t, ok)
	assert.Equal(t, "Main Street", way.Name())
	assert.True(t, way.IsHighway())
	assert.Equal(t, []osm.NodeID{10, 11, 12}, way.Nodes())

	tags := way.Tags()
	tags["name"] = "Changed"
	value, _ := way.Tag("name")
	assert.Equal(t, "Main Street", value)
}
