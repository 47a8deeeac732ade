package osm2routing

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

// Vertex is graph node placed on OSM node
type Vertex struct {
	incomingEdges []int
	outgoingEdges []int
	ID            osm.NodeID
	Point         GeoPoint
}

// Edge is directed traversal of two consecutive way nodes
type Edge struct {
	Way        *Way
	Source     osm.NodeID
	Target     osm.NodeID
	DistMeters float64
	sourceIdx  int
	targetIdx  int
	Direction  DirectionType
	Car        CarAccess
	Bike       BikeAccess
	Foot       FootAccess
}

// Traversable returns true if edge could be used by given transport
func (edge *Edge) Traversable(transport TransportType) bool {
	switch transport {
	case TRANSPORT_CAR:
		return edge.Car != CAR_FORBIDDEN
	case TRANSPORT_BIKE:
		return edge.Bike != BIKE_FORBIDDEN
	case TRANSPORT_FOOT:
		return edge.Foot != FOOT_FORBIDDEN
	default:
		return edge.Car != CAR_FORBIDDEN || edge.Bike != BIKE_FORBIDDEN || edge.Foot != FOOT_FORBIDDEN
	}
}

// Weight returns cost of edge (meters)
func (edge *Edge) Weight() float64 {
	return edge.DistMeters
}

// RoutableGraph is directed multigraph: arena of vertices and list of edges referencing them by index.
// It is never modified after WayMap.Materialize() returns it.
type RoutableGraph struct {
	vertices        []Vertex
	edges           []Edge
	verticesIdx     map[osm.NodeID]int
	skippedSegments int
}

func newRoutableGraph() *RoutableGraph {
	return &RoutableGraph{
		vertices:    make([]Vertex, 0),
		edges:       make([]Edge, 0),
		verticesIdx: make(map[osm.NodeID]int),
	}
}

func (graph *RoutableGraph) ensureVertex(id osm.NodeID, pt GeoPoint) int {
	if idx, ok := graph.verticesIdx[id]; ok {
		return idx
	}
	idx := len(graph.vertices)
	graph.vertices = append(graph.vertices, Vertex{
		ID:            id,
		Point:         pt,
		incomingEdges: make([]int, 0),
		outgoingEdges: make([]int, 0),
	})
	graph.verticesIdx[id] = idx
	return idx
}

func (graph *RoutableGraph) addEdge(sourceIdx, targetIdx int, way *Way, dist float64, direction DirectionType) {
	car, bike, foot := way.Accessibility().Grades(direction)
	idx := len(graph.edges)
	graph.edges = append(graph.edges, Edge{
		Way:        way,
		Source:     graph.vertices[sourceIdx].ID,
		Target:     graph.vertices[targetIdx].ID,
		DistMeters: dist,
		sourceIdx:  sourceIdx,
		targetIdx:  targetIdx,
		Direction:  direction,
		Car:        car,
		Bike:       bike,
		Foot:       foot,
	})
	graph.vertices[sourceIdx].outgoingEdges = append(graph.vertices[sourceIdx].outgoingEdges, idx)
	graph.vertices[targetIdx].incomingEdges = append(graph.vertices[targetIdx].incomingEdges, idx)
}

// Vertices returns all vertices in order of appearance. Caller must not modify returned slice.
func (graph *RoutableGraph) Vertices() []Vertex {
	return graph.vertices
}

// Edges returns all edges in order of creation. Caller must not modify returned slice.
func (graph *RoutableGraph) Edges() []Edge {
	return graph.edges
}

func (graph *RoutableGraph) VerticesNum() int {
	return len(graph.vertices)
}

func (graph *RoutableGraph) EdgesNum() int {
	return len(graph.edges)
}

// SkippedSegments returns number of way segments dropped because of unknown nodes
func (graph *RoutableGraph) SkippedSegments() int {
	return graph.skippedSegments
}

// Vertex returns vertex for given OSM node
func (graph *RoutableGraph) Vertex(id osm.NodeID) (Vertex, bool) {
	idx, ok := graph.verticesIdx[id]
	if !ok {
		return Vertex{}, false
	}
	return graph.vertices[idx], true
}

// OutgoingEdges returns edges starting in given OSM node
func (graph *RoutableGraph) OutgoingEdges(id osm.NodeID) []Edge {
	idx, ok := graph.verticesIdx[id]
	if !ok {
		return nil
	}
	return graph.collectEdges(graph.vertices[idx].outgoingEdges)
}

// IncomingEdges returns edges ending in given OSM node
func (graph *RoutableGraph) IncomingEdges(id osm.NodeID) []Edge {
	idx, ok := graph.verticesIdx[id]
	if !ok {
		return nil
	}
	return graph.collectEdges(graph.vertices[idx].incomingEdges)
}

func (graph *RoutableGraph) collectEdges(indices []int) []Edge {
	edges := make([]Edge, len(indices))
	for i, edgeIdx := range indices {
		edges[i] = graph.edges[edgeIdx]
	}
	return edges
}

// EdgesFor returns edges which could be used by given transport
func (graph *RoutableGraph) EdgesFor(transport TransportType) []Edge {
	edges := make([]Edge, 0, len(graph.edges))
	for i := range graph.edges {
		if graph.edges[i].Traversable(transport) {
			edges = append(edges, graph.edges[i])
		}
	}
	return edges
}

// Geometry returns edge as line from source to target
func (graph *RoutableGraph) Geometry(edge *Edge) orb.LineString {
	return lineString([]GeoPoint{graph.vertices[edge.sourceIdx].Point, graph.vertices[edge.targetIdx].Point})
}

// Length returns total weight of edges available for given transport (meters)
func (graph *RoutableGraph) Length(transport TransportType) float64 {
	total := 0.0
	for i := range graph.edges {
		if !graph.edges[i].Traversable(transport) {
			continue
		}
		total += graph.edges[i].Weight()
	}
	return total
}
