package osm2routing

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ExportToCSV writes edges and vertices into '<fname>_edges.csv' and '<fname>_vertices.csv'
func (graph *RoutableGraph) ExportToCSV(fname string, cfg ExportConfiguration) error {
	fnameParts := strings.Split(fname, ".csv")
	fnameEdges := fnameParts[0] + "_edges.csv"
	fnameVertices := fnameParts[0] + "_vertices.csv"

	err := graph.exportEdgesToCSV(fnameEdges, cfg)
	if err != nil {
		return errors.Wrap(err, "Can't export edges")
	}

	err = graph.exportVerticesToCSV(fnameVertices, cfg)
	if err != nil {
		return errors.Wrap(err, "Can't export vertices")
	}
	return nil
}

func (graph *RoutableGraph) exportEdgesToCSV(fname string, cfg ExportConfiguration) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	err = writer.Write([]string{"id", "osm_way_id", "source_node", "target_node", "direction", "weight", "units", "car", "bike", "foot", "name", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	for i := range graph.edges {
		edge := &graph.edges[i]
		if !edge.Traversable(cfg.Transport) {
			continue
		}
		geomStr, err := marshalLineString(graph.Geometry(edge), cfg.GeomFormat)
		if err != nil {
			return errors.Wrapf(err, "Edge ID: '%d'", i)
		}
		err = writer.Write([]string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%d", edge.Way.ID),
			fmt.Sprintf("%d", edge.Source),
			fmt.Sprintf("%d", edge.Target),
			edge.Direction.String(),
			fmt.Sprintf("%f", cfg.Units.fromMeters(edge.Weight())),
			cfg.Units.String(),
			edge.Car.String(),
			edge.Bike.String(),
			edge.Foot.String(),
			edge.Way.Name(),
			geomStr,
		})
		if err != nil {
			return errors.Wrap(err, "Can't write edge")
		}
	}
	return nil
}

func (graph *RoutableGraph) exportVerticesToCSV(fname string, cfg ExportConfiguration) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	err = writer.Write([]string{"osm_node_id", "in_degree", "out_degree", "longitude", "latitude", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	for i := range graph.vertices {
		vertex := &graph.vertices[i]
		geomStr, err := marshalPoint(vertex.Point, cfg.GeomFormat)
		if err != nil {
			return errors.Wrapf(err, "Node ID: '%d'", vertex.ID)
		}
		err = writer.Write([]string{
			fmt.Sprintf("%d", vertex.ID),
			fmt.Sprintf("%d", len(vertex.incomingEdges)),
			fmt.Sprintf("%d", len(vertex.outgoingEdges)),
			fmt.Sprintf("%f", vertex.Point.Lon),
			fmt.Sprintf("%f", vertex.Point.Lat),
			geomStr,
		})
		if err != nil {
			return errors.Wrap(err, "Can't write vertex")
		}
	}
	return nil
}
