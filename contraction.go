package osm2routing

import (
	"github.com/LdDl/ch"
	"github.com/pkg/errors"
)

// ContractionGraph returns graph of edges traversable by given transport, ready for contraction.
// Vertex labels are OSM node identifiers.
func (graph *RoutableGraph) ContractionGraph(transport TransportType, units UnitsType) (*ch.Graph, error) {
	chGraph := ch.Graph{}
	for i := range graph.edges {
		edge := &graph.edges[i]
		if !edge.Traversable(transport) {
			continue
		}
		source := int64(edge.Source)
		target := int64(edge.Target)
		err := chGraph.CreateVertex(source)
		if err != nil {
			return nil, errors.Wrapf(err, "Can't create source vertex '%d'", source)
		}
		err = chGraph.CreateVertex(target)
		if err != nil {
			return nil, errors.Wrapf(err, "Can't create target vertex '%d'", target)
		}
		err = chGraph.AddEdge(source, target, units.fromMeters(edge.Weight()))
		if err != nil {
			return nil, errors.Wrapf(err, "Can't add edge '%d' -> '%d'", source, target)
		}
	}
	return &chGraph, nil
}
