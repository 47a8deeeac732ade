package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/LdDl/osm2routing"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	osmFileName   = flag.String("file", "my_graph.osm.pbf", "Filename of *.osm.pbf (or *.osm) file")
	out           = flag.String("out", "my_graph.csv", "Filename of 'Comma-Separated Values' (CSV) formatted file. E.g.: if file name is 'map.csv' then 'map_edges.csv', 'map_vertices.csv' and 'map_shortcuts.csv' will be produced")
	geomFormat    = flag.String("geomf", "wkt", "Format of output geometry. Expected values: wkt / geojson")
	units         = flag.String("units", "m", "Units of output weights. Expected values: km for kilometers / m for meters")
	transport     = flag.String("transport", "any", "Keep edges available for given transport only. Expected values: any / car / bike / foot")
	geojsonOut    = flag.String("geojson", "", "Optional filename for GeoJSON FeatureCollection of edges")
	doContraction = flag.Bool("contract", false, "Prepare contraction hierarchies and export shortcuts?")
	pbfWorkers    = flag.Int("workers", 4, "Number of goroutines for *.osm.pbf decoding")
	verbose       = flag.Bool("verbose", false, "Print development logs?")
)

func main() {
	flag.Parse()

	var logger *zap.Logger
	var err error
	if *verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer logger.Sync()

	err = run(logger)
	if err != nil {
		logger.Error("Can't prepare routing graph", zap.Error(err))
		os.Exit(1)
	}
}

func run(logger *zap.Logger) error {
	cfg := osm2routing.DefaultExportConfiguration()
	var err error
	cfg.Units, err = osm2routing.ParseUnits(*units)
	if err != nil {
		return errors.Wrap(err, "Bad 'units' flag")
	}
	cfg.GeomFormat, err = osm2routing.ParseGeomFormat(*geomFormat)
	if err != nil {
		return errors.Wrap(err, "Bad 'geomf' flag")
	}
	cfg.Transport, err = osm2routing.ParseTransportType(*transport)
	if err != nil {
		return errors.Wrap(err, "Bad 'transport' flag")
	}

	parser := osm2routing.NewParser(
		*osmFileName,
		osm2routing.WithPBFWorkers(*pbfWorkers),
		osm2routing.WithLogger(logger),
	)
	logger.Debug(parser.String())

	wayMap, err := parser.ReadWayMap()
	if err != nil {
		return errors.Wrap(err, "Can't read OSM data")
	}

	logger.Info("Materializing graph...")
	st := time.Now()
	graph := wayMap.Materialize()
	logger.Info("Done",
		zap.Duration("elapsed", time.Since(st)),
		zap.Int("vertices", graph.VerticesNum()),
		zap.Int("edges", graph.EdgesNum()),
		zap.Int("skipped_segments", graph.SkippedSegments()),
		zap.Int("streets", len(wayMap.Streets())),
	)

	err = graph.ExportToCSV(*out, cfg)
	if err != nil {
		return errors.Wrap(err, "Can't export graph")
	}

	if *geojsonOut != "" {
		err = exportGeoJSON(graph, cfg.Transport, *geojsonOut)
		if err != nil {
			return errors.Wrap(err, "Can't export GeoJSON")
		}
	}

	if *doContraction {
		chGraph, err := graph.ContractionGraph(cfg.Transport, cfg.Units)
		if err != nil {
			return errors.Wrap(err, "Can't prepare graph for contraction")
		}
		logger.Info("Starting contraction process...")
		st := time.Now()
		chGraph.PrepareContractionHierarchies()
		logger.Info("Done contraction process", zap.Duration("elapsed", time.Since(st)))
		fnameShortcuts := strings.Split(*out, ".csv")[0] + "_shortcuts.csv"
		err = chGraph.ExportShortcutsToFile(fnameShortcuts)
		if err != nil {
			return errors.Wrap(err, "Can't export shortcuts")
		}
	}
	return nil
}

func exportGeoJSON(graph *osm2routing.RoutableGraph, transport osm2routing.TransportType, fname string) error {
	b, err := graph.GeoJSON(transport).MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "Can't marshal features")
	}
	err = os.WriteFile(fname, b, 0644)
	if err != nil {
		return errors.Wrap(err, "Can't write file")
	}
	return nil
}
